// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linalg/internal/render"

// RenderOption configures Render on vectors and matrices.
type RenderOption = render.Option

// WithVerb sets the fmt verb used for every element (default "%v").
// Panics when verb has no '%' directive.
func WithVerb(verb string) RenderOption {
	return render.WithVerb(verb)
}

// format renders elems according to o and the resolved options.
func format[T Number](elems []T, o Orientation, opts ...RenderOption) string {
	cells := render.Elements(elems, render.Gather(opts...))
	if o == Column {
		return render.Column(cells)
	}

	return render.Row(cells)
}
