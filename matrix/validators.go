// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// oriented is satisfied by every fixed-length vector type.
type oriented interface {
	Orientation() vector.Orientation
}

// validateOrientation checks that every row shares rows[0]'s orientation.
// The first offending row is reported by index.
// Complexity: O(K).
func validateOrientation[V oriented](rows ...V) error {
	if len(rows) == 0 {
		return nil
	}
	want := rows[0].Orientation()
	for i := 1; i < len(rows); i++ {
		if got := rows[i].Orientation(); got != want {
			return fmt.Errorf("%w: row %d is %s, row 0 is %s", ErrMismatchedOrientation, i, got, want)
		}
	}

	return nil
}
