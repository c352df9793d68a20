// SPDX-License-Identifier: MIT

package vector

// Vector2 is a two-element vector with an orientation.
// The zero value is the Row vector [0 0].
type Vector2[T Number] struct {
	storage     [2]T
	orientation Orientation
}

// NewVector2 returns the vector (x, y) with orientation o.
func NewVector2[T Number](x, y T, o Orientation) Vector2[T] {
	return Vector2[T]{storage: [2]T{x, y}, orientation: o}
}

// Row2 is shorthand for NewVector2(x, y, Row).
func Row2[T Number](x, y T) Vector2[T] {
	return NewVector2(x, y, Row)
}

// X returns the first element.
func (v Vector2[T]) X() T { return v.storage[0] }

// Y returns the second element.
func (v Vector2[T]) Y() T { return v.storage[1] }

// At returns element i. Panics when i is outside [0, 2).
func (v Vector2[T]) At(i int) T { return v.storage[i] }

// Len always returns 2.
func (v Vector2[T]) Len() int { return len(v.storage) }

// Elements returns a copy of the storage.
func (v Vector2[T]) Elements() [2]T { return v.storage }

// Orientation reports whether v is a Row or a Column vector.
func (v Vector2[T]) Orientation() Orientation { return v.orientation }

// Transpose flips the orientation of v in place. Storage order is untouched.
func (v *Vector2[T]) Transpose() {
	v.orientation = v.orientation.Flip()
}

// Transposed returns a copy of v with the orientation flipped.
func (v Vector2[T]) Transposed() Vector2[T] {
	v.Transpose()
	return v
}

// ScalarOp returns a new vector holding v[i] op rhs, with v's orientation.
func (v Vector2[T]) ScalarOp(op Op, rhs T) Vector2[T] {
	out := Vector2[T]{orientation: v.orientation}
	applyAll(out.storage[:], v.storage[:], op, rhs)

	return out
}

// Add returns v + rhs element-wise.
func (v Vector2[T]) Add(rhs T) Vector2[T] { return v.ScalarOp(OpAdd, rhs) }

// Sub returns v - rhs element-wise.
func (v Vector2[T]) Sub(rhs T) Vector2[T] { return v.ScalarOp(OpSub, rhs) }

// Mul returns v * rhs element-wise.
func (v Vector2[T]) Mul(rhs T) Vector2[T] { return v.ScalarOp(OpMul, rhs) }

// Div returns v / rhs element-wise.
func (v Vector2[T]) Div(rhs T) Vector2[T] { return v.ScalarOp(OpDiv, rhs) }

// Equal reports whether v and w hold the same elements in the same order
// and share an orientation. It is equivalent to v == w.
func (v Vector2[T]) Equal(w Vector2[T]) bool { return v == w }

// Render renders v with the given options.
func (v Vector2[T]) Render(opts ...RenderOption) string {
	return format(v.storage[:], v.orientation, opts...)
}

// String implements fmt.Stringer.
func (v Vector2[T]) String() string { return v.Render() }
