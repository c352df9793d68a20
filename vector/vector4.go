// SPDX-License-Identifier: MIT

package vector

// Vector4 is a four-element vector with an orientation.
type Vector4[T Number] struct {
	storage     [4]T
	orientation Orientation
}

// NewVector4 returns the vector (x, y, z, w) with orientation o.
func NewVector4[T Number](x, y, z, w T, o Orientation) Vector4[T] {
	return Vector4[T]{storage: [4]T{x, y, z, w}, orientation: o}
}

// Row4 is shorthand for NewVector4(x, y, z, w, Row).
func Row4[T Number](x, y, z, w T) Vector4[T] {
	return NewVector4(x, y, z, w, Row)
}

// X returns the first element.
func (v Vector4[T]) X() T { return v.storage[0] }

// Y returns the second element.
func (v Vector4[T]) Y() T { return v.storage[1] }

// Z returns the third element.
func (v Vector4[T]) Z() T { return v.storage[2] }

// W returns the fourth element.
func (v Vector4[T]) W() T { return v.storage[3] }

// At returns element i. Panics when i is outside [0, 4).
func (v Vector4[T]) At(i int) T { return v.storage[i] }

// Len always returns 4.
func (v Vector4[T]) Len() int { return len(v.storage) }

// Elements returns a copy of the storage.
func (v Vector4[T]) Elements() [4]T { return v.storage }

// Orientation reports whether v is a Row or a Column vector.
func (v Vector4[T]) Orientation() Orientation { return v.orientation }

// Transpose flips the orientation of v in place. Storage order is untouched.
func (v *Vector4[T]) Transpose() {
	v.orientation = v.orientation.Flip()
}

// Transposed returns a copy of v with the orientation flipped.
func (v Vector4[T]) Transposed() Vector4[T] {
	v.Transpose()
	return v
}

// ScalarOp returns a new vector holding v[i] op rhs, with v's orientation.
func (v Vector4[T]) ScalarOp(op Op, rhs T) Vector4[T] {
	out := Vector4[T]{orientation: v.orientation}
	applyAll(out.storage[:], v.storage[:], op, rhs)

	return out
}

// Add returns v + rhs element-wise.
func (v Vector4[T]) Add(rhs T) Vector4[T] { return v.ScalarOp(OpAdd, rhs) }

// Sub returns v - rhs element-wise.
func (v Vector4[T]) Sub(rhs T) Vector4[T] { return v.ScalarOp(OpSub, rhs) }

// Mul returns v * rhs element-wise.
func (v Vector4[T]) Mul(rhs T) Vector4[T] { return v.ScalarOp(OpMul, rhs) }

// Div returns v / rhs element-wise.
func (v Vector4[T]) Div(rhs T) Vector4[T] { return v.ScalarOp(OpDiv, rhs) }

// Equal is equivalent to v == w.
func (v Vector4[T]) Equal(w Vector4[T]) bool { return v == w }

// Render renders v with the given options.
func (v Vector4[T]) Render(opts ...RenderOption) string {
	return format(v.storage[:], v.orientation, opts...)
}

// String implements fmt.Stringer.
func (v Vector4[T]) String() string { return v.Render() }
