// Package render draws the hit-test classification of a window as a grid of
// characters, one character per cell of window pixels.
package render

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/1broseidon/chromekit/internal/chrome"
	"github.com/1broseidon/chromekit/internal/platform"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DefaultCell is the cell width in pixels used when none is given. Cells are
// twice as tall as they are wide to roughly match terminal glyphs.
const DefaultCell = 10

// Options controls Map.
type Options struct {
	// Cell is the width of one cell in window pixels.
	Cell int
	// Color styles cells with lipgloss.
	Color bool
}

var (
	dragStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160"))
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	clientStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	legendStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

// Glyph returns the character used for r.
func Glyph(r chrome.Region) rune {
	switch r.Kind {
	case chrome.RegionButton:
		switch r.Button {
		case chrome.WindowIcon:
			return 'i'
		case chrome.Help:
			return '?'
		case chrome.Minimize:
			return '_'
		case chrome.Maximize:
			return '+'
		case chrome.Close:
			return 'x'
		}
		return 'b'
	case chrome.RegionDraggable:
		return '='
	case chrome.RegionExcluded:
		return 'o'
	case chrome.RegionOutside:
		return ' '
	default:
		return '.'
	}
}

func styleFor(k chrome.RegionKind) lipgloss.Style {
	switch k {
	case chrome.RegionButton:
		return buttonStyle
	case chrome.RegionDraggable:
		return dragStyle
	case chrome.RegionExcluded:
		return excludedStyle
	default:
		return clientStyle
	}
}

// Map classifies the centre of every cell of a window of the given size and
// returns one line per row of cells.
func Map(c *chrome.Context, size platform.Size, opts Options) string {
	cell := opts.Cell
	if cell <= 0 {
		cell = DefaultCell
	}
	cellH := cell * 2
	cols := (size.Width + cell - 1) / cell
	rows := (size.Height + cellH - 1) / cellH

	var b strings.Builder
	for row := 0; row < rows; row++ {
		y := min(row*cellH+cellH/2, size.Height-1)
		var run []rune
		runKind := chrome.RegionKind(-1)
		flush := func() {
			if len(run) == 0 {
				return
			}
			if opts.Color {
				b.WriteString(styleFor(runKind).Render(string(run)))
			} else {
				b.WriteString(string(run))
			}
			run = run[:0]
		}
		for col := 0; col < cols; col++ {
			x := min(col*cell+cell/2, size.Width-1)
			r := c.Classify(platform.Point{X: x, Y: y})
			if r.Kind != runKind {
				flush()
				runKind = r.Kind
			}
			run = append(run, Glyph(r))
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend explains the glyphs used by Map.
func Legend(color bool) string {
	text := "= drag  o excluded  . client  i icon  ? help  _ minimize  + maximize  x close"
	if color {
		return legendStyle.Render(text)
	}
	return text
}

// FitCell returns the smallest cell width, at least DefaultCell, for which a
// window of the given width fits into columns terminal columns. columns <= 0
// means no limit.
func FitCell(width, columns int) int {
	if columns <= 0 || width <= 0 {
		return DefaultCell
	}
	cell := (width + columns - 1) / columns
	return max(cell, DefaultCell)
}

// TerminalColumns returns the width of f when it is a terminal, or 0.
func TerminalColumns(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// IsTerminal reports whether f is a terminal, which is when Map output is
// coloured by default.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Hex formats c as #rrggbbaa.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Swatch renders a short sample of c. Alpha is ignored.
func Swatch(c color.RGBA) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
