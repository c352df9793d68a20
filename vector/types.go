// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint shared by every vector and matrix type.
// All members are comparable and support + - * /.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Orientation tags a vector as a Row or a Column.
// It decides how a vector renders and which rows may share a matrix.
type Orientation int

const (
	// Row lays elements out horizontally: [a b c].
	Row Orientation = iota

	// Column lays elements out vertically inside a box.
	Column
)

// Flip returns the other orientation. Values other than Row and Column are
// returned unchanged, so flipping twice always restores o.
func (o Orientation) Flip() Orientation {
	switch o {
	case Row:
		return Column
	case Column:
		return Row
	default:
		return o
	}
}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Row:
		return "Row"
	case Column:
		return "Column"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Op selects the scalar operator applied by ScalarOp.
type Op int

const (
	OpAdd Op = iota // element + rhs
	OpSub           // element - rhs
	OpMul           // element * rhs
	OpDiv           // element / rhs
)

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// apply evaluates a op b. An unknown op is a programmer error and panics.
func apply[T Number](op Op, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		panic(fmt.Sprintf("vector: unknown scalar op %d", int(op)))
	}
}

// applyAll writes src[i] op rhs into dst[i]. len(dst) must equal len(src).
func applyAll[T Number](dst, src []T, op Op, rhs T) {
	for i := range src {
		dst[i] = apply(op, src[i], rhs)
	}
}
