// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVector2_Operators checks the four scalar operators on [10 20].
func TestVector2_Operators(t *testing.T) {
	t.Parallel()

	v := vector.NewVector2(10, 20, vector.Row)
	assert.Equal(t, vector.NewVector2(20, 30, vector.Row), v.Add(10))
	assert.Equal(t, vector.NewVector2(0, 10, vector.Row), v.Sub(10))
	assert.Equal(t, vector.NewVector2(100, 200, vector.Row), v.Mul(10))
	assert.Equal(t, vector.NewVector2(1, 2, vector.Row), v.Div(10))

	// receiver is never touched
	assert.Equal(t, [2]int{10, 20}, v.Elements())
}

func TestVector3_Operators(t *testing.T) {
	t.Parallel()

	v := vector.NewVector3(10, 20, 30, vector.Column)
	assert.True(t, v.Add(10).Equal(vector.NewVector3(20, 30, 40, vector.Column)))
	assert.True(t, v.Sub(10).Equal(vector.NewVector3(0, 10, 20, vector.Column)))
	assert.True(t, v.Mul(10).Equal(vector.NewVector3(100, 200, 300, vector.Column)))
	assert.True(t, v.Div(10).Equal(vector.NewVector3(1, 2, 3, vector.Column)))
}

func TestVector4_Operators(t *testing.T) {
	t.Parallel()

	v := vector.Row4(10, 20, 30, 40)
	assert.Equal(t, vector.Row4(20, 30, 40, 50), v.ScalarOp(vector.OpAdd, 10))
	assert.Equal(t, vector.Row4(0, 10, 20, 30), v.ScalarOp(vector.OpSub, 10))
	assert.Equal(t, vector.Row4(100, 200, 300, 400), v.ScalarOp(vector.OpMul, 10))
	assert.Equal(t, vector.Row4(1, 2, 3, 4), v.ScalarOp(vector.OpDiv, 10))
}

func TestFixed_Accessors(t *testing.T) {
	t.Parallel()

	v2 := vector.NewVector2(1.5, 2.5, vector.Column)
	assert.Equal(t, 1.5, v2.X())
	assert.Equal(t, 2.5, v2.Y())
	assert.Equal(t, 2, v2.Len())
	assert.Equal(t, vector.Column, v2.Orientation())

	v3 := vector.Row3(int8(1), 2, 3)
	assert.Equal(t, int8(1), v3.X())
	assert.Equal(t, int8(2), v3.Y())
	assert.Equal(t, int8(3), v3.Z())
	assert.Equal(t, int8(2), v3.At(1))
	assert.Equal(t, 3, v3.Len())

	v4 := vector.Row4(uint(1), 2, 3, 4)
	assert.Equal(t, uint(1), v4.X())
	assert.Equal(t, uint(2), v4.Y())
	assert.Equal(t, uint(3), v4.Z())
	assert.Equal(t, uint(4), v4.W())
	assert.Equal(t, [4]uint{1, 2, 3, 4}, v4.Elements())
	assert.Panics(t, func() { _ = v4.At(4) })
}

// TestFixed_TransposeRoundTrip verifies Transpose flips only the tag and
// that two flips restore the original value.
func TestFixed_TransposeRoundTrip(t *testing.T) {
	t.Parallel()

	orig := vector.NewVector3(1, 2, 3, vector.Row)
	v := orig

	v.Transpose()
	require.Equal(t, vector.Column, v.Orientation())
	assert.Equal(t, orig.Elements(), v.Elements(), "storage order must not change")
	assert.NotEqual(t, orig, v)

	v.Transpose()
	assert.Equal(t, orig, v)

	w := vector.Row2(7, 8)
	tw := w.Transposed()
	assert.Equal(t, vector.Row, w.Orientation(), "Transposed must not mutate receiver")
	assert.Equal(t, vector.Column, tw.Orientation())
	assert.Equal(t, w, tw.Transposed())

	x := vector.NewVector4(1, 2, 3, 4, vector.Column)
	x.Transpose()
	x.Transpose()
	assert.Equal(t, vector.NewVector4(1, 2, 3, 4, vector.Column), x)
}

func TestFixed_OrientationSensitiveEquality(t *testing.T) {
	t.Parallel()

	row := vector.NewVector2(10, 20, vector.Row)
	col := vector.NewVector2(10, 20, vector.Column)
	assert.False(t, row.Equal(col))
	assert.False(t, row == col)
	assert.False(t, vector.Row3(1, 2, 3).Equal(vector.NewVector3(1, 2, 3, vector.Column)))
	assert.False(t, vector.Row4(1, 2, 3, 4).Equal(vector.NewVector4(1, 2, 3, 4, vector.Column)))

	// order matters
	assert.False(t, vector.Row2(1, 2).Equal(vector.Row2(2, 1)))
}

// TestFixed_InverseLaws checks (v+c)-c == v and (v*c)/c == v over integers.
func TestFixed_InverseLaws(t *testing.T) {
	t.Parallel()

	vs := []vector.Vector3[int]{
		vector.Row3(0, 0, 0),
		vector.Row3(-7, 3, 11),
		vector.NewVector3(100, -250, 42, vector.Column),
	}
	for _, v := range vs {
		for _, c := range []int{-9, -1, 1, 2, 13} {
			assert.Equal(t, v, v.Add(c).Sub(c), "add/sub c=%d v=%v", c, v)
			assert.Equal(t, v, v.Mul(c).Div(c), "mul/div c=%d v=%v", c, v)
		}
	}
}

// TestFixed_DivisionByZero follows the element type's semantics.
func TestFixed_DivisionByZero(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { _ = vector.Row2(1, 2).Div(0) }, "integer division by zero panics")

	f := vector.Row2(1.0, -1.0).Div(0)
	assert.True(t, math.IsInf(f.X(), 1))
	assert.True(t, math.IsInf(f.Y(), -1))
}

func TestFixed_ComplexElements(t *testing.T) {
	t.Parallel()

	v := vector.Row2(complex(1, 1), complex(2, 0))
	assert.Equal(t, vector.Row2(complex(2, 2), complex(4, 0)), v.Mul(2))
	assert.Equal(t, "[(1+1i) (2+0i)]", v.String())
}
