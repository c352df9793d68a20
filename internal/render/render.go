// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Box-drawing glyphs used by the column and matrix layouts.
const (
	topLeft     = "┌"
	topRight    = "┐"
	bottomLeft  = "└"
	bottomRight = "┘"
	side        = "│"
	rule        = "─"
)

// Elements prints every element with the resolved verb, preserving order.
func Elements[T any](elems []T, o Options) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = fmt.Sprintf(o.verb, e)
	}

	return out
}

// Row renders cells as "[c0 c1 ... cn]".
func Row(cells []string) string {
	return "[" + strings.Join(cells, " ") + "]"
}

// Column renders cells as a vertical box, one cell per line:
//
//	┌c0┐
//	│c1│
//	└cn┘
//
// A single cell renders as its top line only; no cells render as "".
func Column(cells []string) string {
	n := len(cells)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(topLeft + cells[0] + topRight)
	if n == 1 {
		return b.String()
	}
	for _, c := range cells[1 : n-1] {
		b.WriteString("\n" + side + c + side)
	}
	b.WriteString("\n" + bottomLeft + cells[n-1] + bottomRight)

	return b.String()
}

// Block renders body lines (each a slice of cells) as a bordered block:
//
//	┌─
//	│a b
//	 c d│
//	    ─┘
//
// The first body line opens with the left rule, every later one is indented
// by a space and closed by the right rule. The bottom border is padded with
// the widest joined body line, measured in runes, so that its corner sits
// under the closing rules.
func Block(lines [][]string) string {
	var b strings.Builder
	b.WriteString(topLeft + rule)

	width := 0
	for i, cells := range lines {
		text := strings.Join(cells, " ")
		if w := utf8.RuneCountInString(text); w > width {
			width = w
		}
		if i == 0 {
			b.WriteString("\n" + side + text)
			continue
		}
		b.WriteString("\n " + text + side)
	}
	b.WriteString("\n" + strings.Repeat(" ", width) + rule + bottomRight)

	return b.String()
}
