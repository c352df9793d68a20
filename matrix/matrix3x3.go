// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/linalg/vector"

// Matrix3x3 is a square matrix of three Vector3 rows sharing one orientation.
type Matrix3x3[T vector.Number] struct {
	rows [3]vector.Vector3[T]
}

// NewMatrix3x3 stores r0, r1, r2 in order.
// Returns ErrMismatchedOrientation naming the first row whose orientation
// differs from r0.
func NewMatrix3x3[T vector.Number](r0, r1, r2 vector.Vector3[T]) (Matrix3x3[T], error) {
	if err := validateOrientation(r0, r1, r2); err != nil {
		return Matrix3x3[T]{}, matrixErrorf("NewMatrix3x3", err)
	}

	return Matrix3x3[T]{rows: [3]vector.Vector3[T]{r0, r1, r2}}, nil
}

// MustMatrix3x3 is like NewMatrix3x3 but panics on error.
func MustMatrix3x3[T vector.Number](r0, r1, r2 vector.Vector3[T]) Matrix3x3[T] {
	m, err := NewMatrix3x3(r0, r1, r2)
	if err != nil {
		panic(err)
	}

	return m
}

// Grid3x3 builds a Row-oriented matrix from a literal grid.
func Grid3x3[T vector.Number](g [3][3]T) Matrix3x3[T] {
	var m Matrix3x3[T]
	for i, r := range g {
		m.rows[i] = vector.Row3(r[0], r[1], r[2])
	}

	return m
}

// Row returns row i. Panics when i is outside [0, 3).
func (m Matrix3x3[T]) Row(i int) vector.Vector3[T] { return m.rows[i] }

// Rows returns a copy of all rows.
func (m Matrix3x3[T]) Rows() [3]vector.Vector3[T] { return m.rows }

// Orientation reports the orientation shared by every row.
func (m Matrix3x3[T]) Orientation() vector.Orientation { return m.rows[0].Orientation() }

// ScalarOp applies op with rhs to every row and returns the new matrix.
func (m Matrix3x3[T]) ScalarOp(op vector.Op, rhs T) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i, r := range m.rows {
		out.rows[i] = r.ScalarOp(op, rhs)
	}

	return out
}

// Add returns m + rhs element-wise.
func (m Matrix3x3[T]) Add(rhs T) Matrix3x3[T] { return m.ScalarOp(vector.OpAdd, rhs) }

// Sub returns m - rhs element-wise.
func (m Matrix3x3[T]) Sub(rhs T) Matrix3x3[T] { return m.ScalarOp(vector.OpSub, rhs) }

// Mul returns m * rhs element-wise.
func (m Matrix3x3[T]) Mul(rhs T) Matrix3x3[T] { return m.ScalarOp(vector.OpMul, rhs) }

// Div returns m / rhs element-wise.
func (m Matrix3x3[T]) Div(rhs T) Matrix3x3[T] { return m.ScalarOp(vector.OpDiv, rhs) }

// Equal is equivalent to m == n.
func (m Matrix3x3[T]) Equal(n Matrix3x3[T]) bool { return m == n }

// Render renders m as a bordered block with the given options.
func (m Matrix3x3[T]) Render(opts ...vector.RenderOption) string {
	grid := make([][]T, len(m.rows))
	for i, r := range m.rows {
		e := r.Elements()
		grid[i] = e[:]
	}

	return block(grid, m.Orientation(), opts...)
}

// String implements fmt.Stringer.
func (m Matrix3x3[T]) String() string { return m.Render() }
