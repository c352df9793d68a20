// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/linalg/vector"

// Matrix4x4 is a square matrix of four Vector4 rows sharing one orientation.
type Matrix4x4[T vector.Number] struct {
	rows [4]vector.Vector4[T]
}

// NewMatrix4x4 stores r0..r3 in order.
// Returns ErrMismatchedOrientation naming the first row whose orientation
// differs from r0.
func NewMatrix4x4[T vector.Number](r0, r1, r2, r3 vector.Vector4[T]) (Matrix4x4[T], error) {
	if err := validateOrientation(r0, r1, r2, r3); err != nil {
		return Matrix4x4[T]{}, matrixErrorf("NewMatrix4x4", err)
	}

	return Matrix4x4[T]{rows: [4]vector.Vector4[T]{r0, r1, r2, r3}}, nil
}

// MustMatrix4x4 is like NewMatrix4x4 but panics on error.
func MustMatrix4x4[T vector.Number](r0, r1, r2, r3 vector.Vector4[T]) Matrix4x4[T] {
	m, err := NewMatrix4x4(r0, r1, r2, r3)
	if err != nil {
		panic(err)
	}

	return m
}

// Grid4x4 builds a Row-oriented matrix from a literal grid.
func Grid4x4[T vector.Number](g [4][4]T) Matrix4x4[T] {
	var m Matrix4x4[T]
	for i, r := range g {
		m.rows[i] = vector.Row4(r[0], r[1], r[2], r[3])
	}

	return m
}

// Row returns row i. Panics when i is outside [0, 4).
func (m Matrix4x4[T]) Row(i int) vector.Vector4[T] { return m.rows[i] }

// Rows returns a copy of all rows.
func (m Matrix4x4[T]) Rows() [4]vector.Vector4[T] { return m.rows }

// Orientation reports the orientation shared by every row.
func (m Matrix4x4[T]) Orientation() vector.Orientation { return m.rows[0].Orientation() }

// ScalarOp applies op with rhs to every row and returns the new matrix.
func (m Matrix4x4[T]) ScalarOp(op vector.Op, rhs T) Matrix4x4[T] {
	var out Matrix4x4[T]
	for i, r := range m.rows {
		out.rows[i] = r.ScalarOp(op, rhs)
	}

	return out
}

// Add returns m + rhs element-wise.
func (m Matrix4x4[T]) Add(rhs T) Matrix4x4[T] { return m.ScalarOp(vector.OpAdd, rhs) }

// Sub returns m - rhs element-wise.
func (m Matrix4x4[T]) Sub(rhs T) Matrix4x4[T] { return m.ScalarOp(vector.OpSub, rhs) }

// Mul returns m * rhs element-wise.
func (m Matrix4x4[T]) Mul(rhs T) Matrix4x4[T] { return m.ScalarOp(vector.OpMul, rhs) }

// Div returns m / rhs element-wise.
func (m Matrix4x4[T]) Div(rhs T) Matrix4x4[T] { return m.ScalarOp(vector.OpDiv, rhs) }

// Equal is equivalent to m == n.
func (m Matrix4x4[T]) Equal(n Matrix4x4[T]) bool { return m == n }

// Render renders m as a bordered block with the given options.
func (m Matrix4x4[T]) Render(opts ...vector.RenderOption) string {
	grid := make([][]T, len(m.rows))
	for i, r := range m.rows {
		e := r.Elements()
		grid[i] = e[:]
	}

	return block(grid, m.Orientation(), opts...)
}

// String implements fmt.Stringer.
func (m Matrix4x4[T]) String() string { return m.Render() }
