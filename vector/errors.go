// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// ErrUndersizedVector is returned by NewVectorN when fewer than MinVectorNLen
// elements are supplied. Fixed sizes below that are served by Vector2..Vector4.
var ErrUndersizedVector = errors.New("vector: undersized vector")

// vectorErrorf prefixes err with the failing call, keeping errors.Is intact.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
