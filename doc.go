// Package lvlseg is an in-memory toolkit for partitioning raster and
// volumetric grids into maximal regions of similar value — and for
// reworking that partition after the fact.
//
// 🚀 What is lvlseg?
//
//	A small, deterministic library built around one core pipeline:
//		• grid/      — n-dimensional shapes, row-major indexing & connectivity kernels
//		• segment/   — the labeled result: dense label map + per-region statistics
//		• adjacency/ — weighted region-adjacency graphs (with gonum export)
//		• felzen/    — Felzenszwalb-style graph merging over a disjoint-set forest
//		• prune/     — least-difference removal of unwanted regions, batch or single
//
// ✨ Why choose lvlseg?
//
//   - Deterministic – identical input and parameters reproduce bit-identical results
//   - Producer-agnostic – any labeling that satisfies segment.Result's invariants
//     can be merged, pruned, and exported; the engine never inspects how it was made
//   - All-or-nothing – parameters are validated eagerly and pruning commits in two
//     phases, so a failed call never leaves a half-mutated result
//   - Interchange-ready – region graphs export to gonum for downstream analysis
//
// Quick ASCII example:
//
//	    1 1 3 3
//	    1 1 3 3        three regions on a 4×4 grid;
//	    2 2 2 2        pruning region 3 folds it into its
//	    2 2 2 2        least-dissimilar neighbor.
//
// Dive into each package's doc.go for the full contract, complexity notes,
// and runnable examples.
//
//	go get github.com/katalvlaran/lvlseg
package lvlseg
