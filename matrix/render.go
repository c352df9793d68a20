// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linalg/internal/render"
	"github.com/katalvlaran/linalg/vector"
)

// block renders a square grid of row vectors' elements as a bordered block.
// Row orientation reads grid row by row; Column orientation reads it column
// by column, so line i holds the i-th element of every row.
// Complexity: O(K²).
func block[T vector.Number](grid [][]T, o vector.Orientation, opts ...vector.RenderOption) string {
	ro := render.Gather(opts...)
	lines := make([][]string, len(grid))
	for i := range grid {
		if o == vector.Column {
			col := make([]T, len(grid))
			for j := range grid {
				col[j] = grid[j][i]
			}
			lines[i] = render.Elements(col, ro)
			continue
		}
		lines[i] = render.Elements(grid[i], ro)
	}

	return render.Block(lines)
}
