// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Constructors return these sentinels (possibly wrapped with context) and
// tests check them via errors.Is. Panics are reserved for the Must* helpers.

package matrix

import (
	"errors"
	"fmt"
)

// ErrMismatchedOrientation is returned when the vectors passed to a matrix
// constructor do not all share one orientation.
var ErrMismatchedOrientation = errors.New("matrix: mismatched orientation")

// matrixErrorf wraps err with the failing constructor name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
