// Package segment defines the Labeled Result: the dense label map plus
// per-region statistics that every lvlseg producer emits and every
// consumer (adjacency builder, pruner, exporter) operates on.
//
// What:
//
//   - Label is a positive integer region id; RegionStats carries the
//     region's pixel count, exact running mean, and standard deviation.
//   - Result owns the label map and the label→RegionStats mapping, and is
//     the single mutable object of the library: a producer creates it, the
//     pruner reassigns labels in place, the façade accessors read it.
//   - ReassignAll applies a whole batch of label reassignments atomically:
//     chains are resolved iteratively, statistics recombined exactly, and
//     the dense map retagged in a single pass.
//
// Why:
//
//   - Decoupling: any algorithm that can produce a partition honoring the
//     invariants below plugs into the merge/prune core via the Producer
//     contract, with no knowledge of how the labeling was made.
//   - Invariants are the contract. At all times:
//     – every coordinate's label is present in the label set, and
//     – Σ Count over all labels equals the total coordinate count.
//     Validate checks both, so externally produced results are verified
//     defensively before any graph is built over them.
//
// Concurrency:
//
//   - A Result is single-writer. Independent Results may be processed in
//     parallel freely; concurrent mutation of one Result is not supported.
//
// Complexity:
//
//   - New: O(P) over P coordinates; accessors O(1) or O(L log L) for the
//     sorted label list; ReassignAll O(P + L).
//
// Errors:
//
//   - ErrCoverage, ErrValueCount, ErrBadLabel: malformed construction input.
//   - ErrUnknownLabel: an operation referenced a label absent from the set.
//   - ErrInconsistent: a result violates the partition invariants.
//   - ErrBadPlan: a reassignment plan maps a label to itself or cycles.
package segment
