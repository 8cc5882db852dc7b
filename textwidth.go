package flexcell

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultMeasurer measures leaf content in terminal cells. Widths are
// display widths (CJK counts double, combining marks zero, emoji by
// grapheme cluster), and text wraps greedily at word boundaries with a
// hard break for words wider than the bound.
func DefaultMeasurer(node Node, maxWidth int) Size {
	switch node.Kind() {
	case KindSpacer:
		return Size{}
	case KindButton:
		// Rendered as "[ label ]".
		width := cellWidth(node.Content()) + 4
		if width > maxWidth {
			width = maxWidth
		}
		return Size{Width: width, Height: 1}
	case KindInput:
		width := cellWidth(node.Content()) + 1 // room for the cursor
		if width < 8 {
			width = 8
		}
		if width > maxWidth {
			width = maxWidth
		}
		return Size{Width: width, Height: 1}
	default:
		return measureText(node.Content(), maxWidth)
	}
}

// measureText wraps content against maxWidth and returns the bounding
// size of the wrapped block.
func measureText(content string, maxWidth int) Size {
	if content == "" {
		return Size{}
	}
	if maxWidth < 1 {
		maxWidth = 1
	}

	var size Size
	for _, line := range strings.Split(content, "\n") {
		widths := wrapLineWidths(line, maxWidth)
		for _, w := range widths {
			if w > size.Width {
				size.Width = w
			}
			size.Height++
		}
	}
	return size
}

// wrapLineWidths returns the display width of each wrapped row of a
// single source line. An empty line still occupies one row.
func wrapLineWidths(line string, maxWidth int) []int {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []int{0}
	}

	var rows []int
	current := 0
	for _, word := range words {
		w := cellWidth(word)

		// Hard-break words wider than the bound, on grapheme cluster
		// boundaries so emoji sequences stay whole.
		if w > maxWidth {
			if current > 0 {
				rows = append(rows, current)
				current = 0
			}
			for w > maxWidth {
				head, rest := splitAtWidth(word, maxWidth)
				rows = append(rows, cellWidth(head))
				word, w = rest, cellWidth(rest)
			}
			if w == 0 {
				continue
			}
		}

		switch {
		case current == 0:
			current = w
		case current+1+w <= maxWidth:
			current += 1 + w
		default:
			rows = append(rows, current)
			current = w
		}
	}
	if current > 0 || len(rows) == 0 {
		rows = append(rows, current)
	}
	return rows
}

// splitAtWidth splits s at the last grapheme boundary that fits in width
// cells. It always consumes at least one cluster to guarantee progress.
func splitAtWidth(s string, width int) (string, string) {
	g := uniseg.NewGraphemes(s)
	taken := 0
	end := 0
	for g.Next() {
		w := g.Width()
		if end > 0 && taken+w > width {
			break
		}
		taken += w
		_, end = g.Positions()
	}
	return s[:end], s[end:]
}

// cellWidth returns the display width of s in terminal cells.
func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}
