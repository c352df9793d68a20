// Package linalg is a small linear-algebra value library: vectors of
// length 2, 3, 4 and 5+, plus 2×2, 3×3 and 4×4 matrices, generic over any
// integer, float or complex element type.
//
// 🚀 What's inside?
//
//	vector/ — Orientation (Row | Column), Vector2..Vector4, VectorN
//	matrix/ — Matrix2x2, Matrix3x3, Matrix4x4 assembled from vectors
//
// ✨ Ground rules:
//
//   - Every vector carries an Orientation. It is part of equality, decides
//     how the vector prints and which vectors may share a matrix.
//   - Transpose flips the tag in place and never reorders elements.
//   - Scalar arithmetic (Add, Sub, Mul, Div) is element-wise and returns a
//     new value; overflow and division by zero behave as Go does.
//   - Construction errors are sentinels matched with errors.Is:
//     vector.ErrUndersizedVector and matrix.ErrMismatchedOrientation.
//
// Quick example:
//
//	m := matrix.Grid2x2([2][2]int{{10, 20}, {30, 40}})
//	fmt.Println(m.Add(10))
//
//	┌─
//	│20 30
//	 40 50│
//	     ─┘
//
// Out of scope: rectangular matrices, matrix products, determinants,
// inverses and decompositions.
//
//	go get github.com/katalvlaran/linalg
package linalg
