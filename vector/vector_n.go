// SPDX-License-Identifier: MIT

package vector

import "fmt"

// MinVectorNLen is the smallest element count accepted by NewVectorN.
const MinVectorNLen = 5

// VectorN is a vector of MinVectorNLen or more elements with an orientation.
// Use Vector2, Vector3 or Vector4 for shorter vectors.
//
// VectorN holds a slice, so use Equal rather than == to compare values.
// Every method that returns a VectorN allocates fresh storage; no two
// values returned by this package share a backing array.
type VectorN[T Number] struct {
	storage     []T
	orientation Orientation
}

// NewVectorN copies elems into a new vector with orientation o.
// Stage 1 (Validate): len(elems) must be at least MinVectorNLen.
// Stage 2 (Finalize): copy elems so later caller writes do not leak in.
// Returns ErrUndersizedVector (wrapped with the supplied length) otherwise.
// Complexity: O(n).
func NewVectorN[T Number](elems []T, o Orientation) (VectorN[T], error) {
	if len(elems) < MinVectorNLen {
		return VectorN[T]{}, vectorErrorf("NewVectorN",
			fmt.Errorf("%w: got %d elements, need at least %d", ErrUndersizedVector, len(elems), MinVectorNLen))
	}

	storage := make([]T, len(elems))
	copy(storage, elems)

	return VectorN[T]{storage: storage, orientation: o}, nil
}

// MustVectorN is like NewVectorN but panics on error.
// Intended for literals whose length is known to be valid.
func MustVectorN[T Number](elems []T, o Orientation) VectorN[T] {
	v, err := NewVectorN(elems, o)
	if err != nil {
		panic(err)
	}

	return v
}

// RowN is shorthand for MustVectorN(elems, Row).
func RowN[T Number](elems ...T) VectorN[T] {
	return MustVectorN(elems, Row)
}

// At returns element i. Panics when i is out of range.
func (v VectorN[T]) At(i int) T { return v.storage[i] }

// Len returns the number of elements.
func (v VectorN[T]) Len() int { return len(v.storage) }

// Elements returns a copy of the storage.
func (v VectorN[T]) Elements() []T {
	out := make([]T, len(v.storage))
	copy(out, v.storage)

	return out
}

// Orientation reports whether v is a Row or a Column vector.
func (v VectorN[T]) Orientation() Orientation { return v.orientation }

// Transpose flips the orientation of v in place. Storage order is untouched.
func (v *VectorN[T]) Transpose() {
	v.orientation = v.orientation.Flip()
}

// Transposed returns a copy of v with the orientation flipped.
func (v VectorN[T]) Transposed() VectorN[T] {
	return VectorN[T]{storage: v.Elements(), orientation: v.orientation.Flip()}
}

// ScalarOp returns a new vector holding v[i] op rhs, with v's length and
// orientation. The length invariant holds because the result mirrors v.
// Complexity: O(n).
func (v VectorN[T]) ScalarOp(op Op, rhs T) VectorN[T] {
	out := VectorN[T]{storage: make([]T, len(v.storage)), orientation: v.orientation}
	applyAll(out.storage, v.storage, op, rhs)

	return out
}

// Add returns v + rhs element-wise.
func (v VectorN[T]) Add(rhs T) VectorN[T] { return v.ScalarOp(OpAdd, rhs) }

// Sub returns v - rhs element-wise.
func (v VectorN[T]) Sub(rhs T) VectorN[T] { return v.ScalarOp(OpSub, rhs) }

// Mul returns v * rhs element-wise.
func (v VectorN[T]) Mul(rhs T) VectorN[T] { return v.ScalarOp(OpMul, rhs) }

// Div returns v / rhs element-wise.
func (v VectorN[T]) Div(rhs T) VectorN[T] { return v.ScalarOp(OpDiv, rhs) }

// Equal reports whether v and w have the same length, the same elements in
// the same order and the same orientation.
// Complexity: O(n).
func (v VectorN[T]) Equal(w VectorN[T]) bool {
	if v.orientation != w.orientation || len(v.storage) != len(w.storage) {
		return false
	}
	for i := range v.storage {
		if v.storage[i] != w.storage[i] {
			return false
		}
	}

	return true
}

// Render renders v with the given options.
func (v VectorN[T]) Render(opts ...RenderOption) string {
	return format(v.storage, v.orientation, opts...)
}

// String implements fmt.Stringer.
func (v VectorN[T]) String() string { return v.Render() }
