// Package matrix offers square 2×2, 3×3 and 4×4 matrices assembled from
// orientation-aware vectors.
//
// The matrix package provides:
//
//   - Matrix2x2, Matrix3x3, Matrix4x4 built from K vectors of length K that
//     all share one vector.Orientation (ErrMismatchedOrientation otherwise).
//   - Grid2x2, Grid3x3, Grid4x4 shorthands that turn a literal grid of
//     elements into a Row-oriented matrix.
//   - Row-wise scalar arithmetic (Add, Sub, Mul, Div, ScalarOp) returning a
//     new matrix with the same orientation.
//   - A bordered text rendering. Row-oriented matrices print one row per
//     line; Column-oriented matrices print one column per line.
//
// The Row-oriented matrix with rows [10 20] and [30 40] prints as:
//
//	┌─
//	│10 20
//	 30 40│
//	     ─┘
//
// Orientation never reorders storage: Row(i) always returns the i-th vector
// passed to the constructor.
//
// Matrices are plain comparable values; == and Equal agree.
package matrix
