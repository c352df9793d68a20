// Package vector provides small, orientation-aware vector values over any
// numeric element type.
//
// 🚀 What's inside?
//
//	Vector2, Vector3, Vector4 — fixed-length vectors backed by Go arrays,
//	  so the element count is a property of the type, never a runtime check.
//	VectorN — a variable-length vector for five or more elements.
//	Orientation — the Row/Column tag every vector carries.
//
// ✨ Behavior:
//   - Orientation is part of identity: a Row and a Column vector holding
//     the same elements are not Equal.
//   - Transpose flips the orientation tag in place and never reorders
//     storage, so Transpose twice restores the original value.
//   - Scalar arithmetic (Add, Sub, Mul, Div, ScalarOp) is element-wise,
//     returns a new vector and keeps the orientation. Division by zero
//     behaves exactly as Go does for the element type.
//   - String renders Row vectors as "[1 2 3]" and Column vectors as a box.
//
// A Column vector of 1, 2, 3 prints as:
//
//	┌1┐
//	│2│
//	└3┘
//
// ⚙️ Usage:
//
//	v := vector.NewVector2(10, 20, vector.Row)
//	fmt.Println(v.Add(10))      // [20 30]
//	v.Transpose()
//	fmt.Println(v)              // ┌10┐ / └20┘
//
//	n, err := vector.NewVectorN([]int{1, 2, 3, 4, 5}, vector.Column)
//	if errors.Is(err, vector.ErrUndersizedVector) {
//	  // fewer than five elements: use Vector2..Vector4 instead
//	}
//
// Values carry no locks. Transpose mutates its receiver; copy before
// sharing a vector that is about to be transposed.
package vector
