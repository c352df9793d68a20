// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/linalg/vector"

// Matrix2x2 is a square matrix of two Vector2 rows sharing one orientation.
type Matrix2x2[T vector.Number] struct {
	rows [2]vector.Vector2[T]
}

// NewMatrix2x2 stores r0, r1 in order.
// Returns ErrMismatchedOrientation when their orientations differ.
func NewMatrix2x2[T vector.Number](r0, r1 vector.Vector2[T]) (Matrix2x2[T], error) {
	if err := validateOrientation(r0, r1); err != nil {
		return Matrix2x2[T]{}, matrixErrorf("NewMatrix2x2", err)
	}

	return Matrix2x2[T]{rows: [2]vector.Vector2[T]{r0, r1}}, nil
}

// MustMatrix2x2 is like NewMatrix2x2 but panics on error.
func MustMatrix2x2[T vector.Number](r0, r1 vector.Vector2[T]) Matrix2x2[T] {
	m, err := NewMatrix2x2(r0, r1)
	if err != nil {
		panic(err)
	}

	return m
}

// Grid2x2 builds a Row-oriented matrix from a literal grid, one inner array per row.
//
//	m := matrix.Grid2x2([2][2]int{
//		{10, 20},
//		{30, 40},
//	})
func Grid2x2[T vector.Number](g [2][2]T) Matrix2x2[T] {
	return Matrix2x2[T]{rows: [2]vector.Vector2[T]{
		vector.Row2(g[0][0], g[0][1]),
		vector.Row2(g[1][0], g[1][1]),
	}}
}

// Row returns row i. Panics when i is outside [0, 2).
func (m Matrix2x2[T]) Row(i int) vector.Vector2[T] { return m.rows[i] }

// Rows returns a copy of all rows.
func (m Matrix2x2[T]) Rows() [2]vector.Vector2[T] { return m.rows }

// Orientation reports the orientation shared by every row.
func (m Matrix2x2[T]) Orientation() vector.Orientation { return m.rows[0].Orientation() }

// ScalarOp applies op with rhs to every row and returns the new matrix.
// Orientation is preserved, so no re-validation is needed.
func (m Matrix2x2[T]) ScalarOp(op vector.Op, rhs T) Matrix2x2[T] {
	var out Matrix2x2[T]
	for i, r := range m.rows {
		out.rows[i] = r.ScalarOp(op, rhs)
	}

	return out
}

// Add returns m + rhs element-wise.
func (m Matrix2x2[T]) Add(rhs T) Matrix2x2[T] { return m.ScalarOp(vector.OpAdd, rhs) }

// Sub returns m - rhs element-wise.
func (m Matrix2x2[T]) Sub(rhs T) Matrix2x2[T] { return m.ScalarOp(vector.OpSub, rhs) }

// Mul returns m * rhs element-wise.
func (m Matrix2x2[T]) Mul(rhs T) Matrix2x2[T] { return m.ScalarOp(vector.OpMul, rhs) }

// Div returns m / rhs element-wise.
func (m Matrix2x2[T]) Div(rhs T) Matrix2x2[T] { return m.ScalarOp(vector.OpDiv, rhs) }

// Equal reports row-wise equality, row order included. Equivalent to m == n.
func (m Matrix2x2[T]) Equal(n Matrix2x2[T]) bool { return m == n }

// Render renders m as a bordered block with the given options.
func (m Matrix2x2[T]) Render(opts ...vector.RenderOption) string {
	grid := make([][]T, len(m.rows))
	for i, r := range m.rows {
		e := r.Elements()
		grid[i] = e[:]
	}

	return block(grid, m.Orientation(), opts...)
}

// String implements fmt.Stringer.
func (m Matrix2x2[T]) String() string { return m.Render() }
