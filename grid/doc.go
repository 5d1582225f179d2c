// Package grid defines the coordinate model shared by every lvlseg
// component: n-dimensional shapes, points, row-major linear indexing,
// and the connectivity kernels that decide which samples count as
// spatial neighbors.
//
// What:
//
//   - Shape describes a rectangular n-D grid by its per-dimension extents
//     and maps Point ↔ linear index in row-major order (last axis fastest).
//   - Point is one integer coordinate tuple inside such a grid.
//   - Kernel is the set of neighbor offsets defining adjacency; Orthogonal
//     and Moore build the two standard families for any rank, with Conn4
//     and Conn8 as the familiar 2-D presets.
//
// Why:
//
//   - Segmentation, adjacency building, and pruning all walk the same grid;
//     one shared indexing scheme keeps every pass deterministic.
//   - Kernels are plain offset lists, so callers can supply anisotropic or
//     custom neighborhoods without touching the core algorithms.
//
// Complexity:
//
//   - Index / At / Step: O(rank).
//   - Orthogonal(rank): 2·rank offsets; Moore(rank): 3^rank−1 offsets.
//
// Errors:
//
//   - ErrBadShape: a shape has a negative extent.
//   - ErrBadKernel: a kernel is empty, rank-mismatched, or contains the
//     zero offset.
//   - ErrBounds: a point lies outside its shape.
package grid
