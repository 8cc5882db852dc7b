package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flexcell/flexcell"
)

var (
	idStyle     = lipgloss.NewStyle().Bold(true)
	kindStyle   = lipgloss.NewStyle().Faint(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	statStyle   = lipgloss.NewStyle().Faint(true)
)

// printTable writes one indented line per node with its computed rect and
// any overflow metadata.
func printTable(w io.Writer, node flexcell.Node, result *flexcell.Result, depth int) {
	indent := strings.Repeat("  ", depth)
	name := node.ID()
	if name == "" {
		name = "-"
	}

	rect, placed := result.Rects[node]
	if !placed {
		fmt.Fprintf(w, "%s%s %s (not placed)\n",
			indent, idStyle.Render(name), kindStyle.Render(node.Kind().String()))
	} else {
		line := fmt.Sprintf("%s%s %s x=%d y=%d w=%d h=%d",
			indent, idStyle.Render(name), kindStyle.Render(node.Kind().String()),
			rect.X, rect.Y, rect.Width, rect.Height)
		if ov, ok := result.Overflow[node]; ok {
			line += fmt.Sprintf(" overflow=%dx%d scroll=%d,%d",
				ov.ContentWidth, ov.ContentHeight, ov.ScrollX, ov.ScrollY)
		}
		fmt.Fprintln(w, line)
	}

	for _, child := range node.Children() {
		printTable(w, child, result, depth+1)
	}
}

func printStats(w io.Writer, stats flexcell.Stats) {
	fmt.Fprintln(w, statStyle.Render(fmt.Sprintf(
		"passes=%d skipped=%d measures=%d cache=%d/%d wrap-feedback=%d",
		stats.FullPasses, stats.SkippedPasses, stats.MeasureCalls,
		stats.CacheHits, stats.CacheHits+stats.CacheMisses,
		stats.WrapFeedbackPasses)))
}

// sketch renders the computed boxes onto a rune canvas. Deeper nodes draw
// later, so children appear inside their parents.
func sketch(root flexcell.Node, result *flexcell.Result, width, height int) string {
	canvas := make([][]rune, height)
	for y := range canvas {
		canvas[y] = make([]rune, width)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	var draw func(node flexcell.Node)
	draw = func(node flexcell.Node) {
		if rect, ok := result.Rects[node]; ok {
			drawBox(canvas, rect, node.ID())
		}
		for _, child := range node.Children() {
			draw(child)
		}
	}
	draw(root)

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(borderStyle.Render(string(row)))
		b.WriteByte('\n')
	}
	return b.String()
}

func drawBox(canvas [][]rune, rect flexcell.Rect, label string) {
	height := len(canvas)
	if height == 0 || rect.Width < 1 || rect.Height < 1 {
		return
	}
	width := len(canvas[0])

	set := func(x, y int, r rune) {
		if x >= 0 && x < width && y >= 0 && y < height {
			canvas[y][x] = r
		}
	}

	right, bottom := rect.Right()-1, rect.Bottom()-1
	for x := rect.X; x <= right; x++ {
		set(x, rect.Y, '─')
		set(x, bottom, '─')
	}
	for y := rect.Y; y <= bottom; y++ {
		set(rect.X, y, '│')
		set(right, y, '│')
	}
	set(rect.X, rect.Y, '┌')
	set(right, rect.Y, '┐')
	set(rect.X, bottom, '└')
	set(right, bottom, '┘')

	// Label on the top border, clipped to the box.
	for i, r := range label {
		x := rect.X + 1 + i
		if x >= right {
			break
		}
		set(x, rect.Y, r)
	}
}
