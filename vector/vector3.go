// SPDX-License-Identifier: MIT

package vector

// Vector3 is a three-element vector with an orientation.
type Vector3[T Number] struct {
	storage     [3]T
	orientation Orientation
}

// NewVector3 returns the vector (x, y, z) with orientation o.
func NewVector3[T Number](x, y, z T, o Orientation) Vector3[T] {
	return Vector3[T]{storage: [3]T{x, y, z}, orientation: o}
}

// Row3 is shorthand for NewVector3(x, y, z, Row).
func Row3[T Number](x, y, z T) Vector3[T] {
	return NewVector3(x, y, z, Row)
}

// X returns the first element.
func (v Vector3[T]) X() T { return v.storage[0] }

// Y returns the second element.
func (v Vector3[T]) Y() T { return v.storage[1] }

// Z returns the third element.
func (v Vector3[T]) Z() T { return v.storage[2] }

// At returns element i. Panics when i is outside [0, 3).
func (v Vector3[T]) At(i int) T { return v.storage[i] }

// Len always returns 3.
func (v Vector3[T]) Len() int { return len(v.storage) }

// Elements returns a copy of the storage.
func (v Vector3[T]) Elements() [3]T { return v.storage }

// Orientation reports whether v is a Row or a Column vector.
func (v Vector3[T]) Orientation() Orientation { return v.orientation }

// Transpose flips the orientation of v in place. Storage order is untouched.
func (v *Vector3[T]) Transpose() {
	v.orientation = v.orientation.Flip()
}

// Transposed returns a copy of v with the orientation flipped.
func (v Vector3[T]) Transposed() Vector3[T] {
	v.Transpose()
	return v
}

// ScalarOp returns a new vector holding v[i] op rhs, with v's orientation.
func (v Vector3[T]) ScalarOp(op Op, rhs T) Vector3[T] {
	out := Vector3[T]{orientation: v.orientation}
	applyAll(out.storage[:], v.storage[:], op, rhs)

	return out
}

// Add returns v + rhs element-wise.
func (v Vector3[T]) Add(rhs T) Vector3[T] { return v.ScalarOp(OpAdd, rhs) }

// Sub returns v - rhs element-wise.
func (v Vector3[T]) Sub(rhs T) Vector3[T] { return v.ScalarOp(OpSub, rhs) }

// Mul returns v * rhs element-wise.
func (v Vector3[T]) Mul(rhs T) Vector3[T] { return v.ScalarOp(OpMul, rhs) }

// Div returns v / rhs element-wise.
func (v Vector3[T]) Div(rhs T) Vector3[T] { return v.ScalarOp(OpDiv, rhs) }

// Equal is equivalent to v == w.
func (v Vector3[T]) Equal(w Vector3[T]) bool { return v == w }

// Render renders v with the given options.
func (v Vector3[T]) Render(opts ...RenderOption) string {
	return format(v.storage[:], v.orientation, opts...)
}

// String implements fmt.Stringer.
func (v Vector3[T]) String() string { return v.Render() }
