// Package adjacency builds weighted region-adjacency graphs over a
// segment.Result and exposes them for merging, pruning, and interchange.
//
// What:
//
//   - Build scans every coordinate under a connectivity kernel and records
//     each unordered pair of distinct touching labels exactly once — a
//     simple undirected graph with the present labels as vertices.
//   - Edge weights come from a caller-supplied dissimilarity function and
//     are computed lazily, once per unique pair, then memoized.
//   - Absorb merges one vertex into another (the pruner's primitive),
//     transferring incident edges and invalidating stale cached weights so
//     they are recomputed lazily on next access.
//   - Gonum exports the graph as a *simple.WeightedUndirectedGraph for
//     interchange with any gonum-based tooling.
//
// Why:
//
//   - The merge and prune engines only ever need "which regions touch, and
//     how different are they" — one builder decouples them from how the
//     labeling was produced.
//   - A region with no differing neighbor stays an isolated vertex, so the
//     vertex set always equals the label set.
//
// Complexity:
//
//   - Build: O(P·D), P = coordinate count, D = kernel size.
//   - Weight: O(1) amortized (memoized); Edges: O(E log E) for ordering.
//   - Absorb: O(degree(r)).
//
// Errors:
//
//   - ErrNilResult, ErrNilDissim: missing inputs.
//   - ErrNoEdge: weight requested for a non-adjacent label pair.
//   - ErrSelfAbsorb: absorbing a label into itself.
//   - segment.ErrUnknownLabel: a vertex absent from the graph.
//   - segment.ErrInconsistent: the result failed its defensive cross-check.
package adjacency
