// Package felzen implements Felzenszwalb–Huttenlocher graph-based region
// merging: grid samples start as atomic regions, every adjacency becomes a
// weighted edge, and components merge greedily in ascending weight order
// under an adaptive per-component threshold tracked in a disjoint-set
// forest.
//
// What:
//
//   - Segment turns a grid of sample values into a segment.Result: edges
//     are generated under a connectivity kernel, weighted by a pluggable
//     sample dissimilarity, stably sorted, and merged; surviving roots
//     become compact labels 1..M in row-major first-appearance order.
//   - MergeEdges is the generalized entry point: any caller-supplied edge
//     list over n atomic regions (pixels or pre-clustered regions alike)
//     merges under the same rule and returns the root assignment.
//   - Segmenter adapts Segment to the segment.Producer contract.
//
// Merge rule:
//
//   - Edges are processed in non-decreasing weight order with stable,
//     insertion-order tie-breaking. An edge (u,v,w) merges the components
//     A=find(u), B=find(v) iff w ≤ min(τ(A), τ(B)), where
//     τ(X) = maxInternalWeight(X) + K/size(X) once X has an internal edge
//     and τ(X) = +∞ while X is still atomic. Larger K biases toward larger
//     regions. On a merge the new root's maxInternalWeight becomes w —
//     valid because weights arrive in ascending order.
//
// MinSize:
//
//   - When Options.MinSize > 0 every surviving component below the bound
//     folds into the neighbor sharing its least-dissimilar boundary edge.
//     The pass is literally prune.Batch with a size predicate and a
//     boundary-edge diff; isolated undersized components stay as they are.
//
// Determinism & concurrency:
//
//   - Identical input and options reproduce bit-identical results. Each
//     call owns its forest and edge list; independent grids may be
//     segmented in parallel with no shared state.
//
// Complexity:
//
//   - O(E log E) for the sort dominates; union-find adds O(E·α(V)).
//     E = O(P·D) under a bounded-degree kernel.
//
// Errors:
//
//   - ErrNegativeK, ErrNegativeMinSize: rejected before any work begins.
//   - ErrValueCount: values do not cover the shape.
//   - ErrAtomCount, ErrEdgeEndpoint: malformed MergeEdges input.
//   - grid.ErrBadShape, grid.ErrBadKernel: malformed geometry.
//
// A zero-coordinate grid yields an empty result, not an error.
package felzen
