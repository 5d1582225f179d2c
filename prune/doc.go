// Package prune eliminates unwanted regions from a segment.Result by
// merging each into its least-dissimilar neighbor — the generic
// post-processing counterpart to felzen's fixed threshold rule.
//
// What:
//
//   - Batch removes an explicit label set in one pass: the region graph is
//     built once, targets are processed smallest-first (original pixel
//     count, then label id), each folds into the still-present neighbor
//     minimizing the caller's diff, and the whole reassignment commits
//     atomically at the end.
//   - BatchFunc selects the removal set with a predicate over RegionStats
//     (remove every region smaller than N, darker than X, …).
//   - One removes exactly one label in place, rebuilding only the local
//     neighborhood from a single coordinate scan.
//
// Why:
//
//   - diff is caller-supplied and may be asymmetric (diff(removed,
//     neighbor)), so any notion of "closest neighbor" plugs in.
//   - Batch amortizes the graph across the whole removal set: removing k
//     regions costs one O(P·D) build plus one O(P) retag, where k repeated
//     One calls pay the scan k times. The gap is a measured property, not
//     a correctness concern — see bench_test.go.
//
// Determinism:
//
//   - Processing order is fixed from pre-batch pixel counts; neighbor ties
//     break by the optional Less comparator, else ascending label id.
//     Neighborhoods are re-resolved against already-absorbed mass after
//     every fold, so mutually adjacent targets chain predictably.
//
// Two-phase commit:
//
//   - The full plan is computed against working copies first; any error
//     (unknown target, neighborless target) aborts with the Result
//     untouched.
//
// Errors:
//
//   - ErrNilResult, ErrNilDiff: missing inputs.
//   - ErrNoNeighbor: a removal target has no adjacent region.
//   - segment.ErrUnknownLabel: a target absent from the label set.
package prune
