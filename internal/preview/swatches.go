// Package preview renders palettes and hue/chroma planes for the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/collurgy/collurgy/internal/colorspace"
	"github.com/collurgy/collurgy/internal/palette"
	"github.com/lucasb-eyer/go-colorful"
)

const swatchWidth = 9

// labelColor picks black or white text for legibility on c.
func labelColor(c colorful.Color) lipgloss.Color {
	l, _, _ := c.Clamped().Lab()
	if l > 0.55 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

func swatch(s Styles, c colorful.Color, label string) string {
	return s.block("#"+colorspace.Hex(c)).
		Foreground(labelColor(c)).
		Width(swatchWidth).
		Align(lipgloss.Center).
		Render(label)
}

// Swatches renders the palette as two rows of eight labeled blocks, normal
// slots above bright slots.
func Swatches(s Styles, p palette.Palette) string {
	rows := make([]string, 0, 4)
	for base := 0; base < palette.Size; base += 8 {
		indexes := make([]string, 0, 8)
		hexes := make([]string, 0, 8)
		for slot := base; slot < base+8; slot++ {
			indexes = append(indexes, swatch(s, p[slot], fmt.Sprintf("%d", slot)))
			hexes = append(hexes, swatch(s, p[slot], colorspace.Hex(p[slot])))
		}
		rows = append(rows,
			lipgloss.JoinHorizontal(lipgloss.Top, indexes...),
			lipgloss.JoinHorizontal(lipgloss.Top, hexes...),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Sample renders a short shell transcript using the semantic roles.
func Sample(s Styles) string {
	lines := []string{
		s.Accent.Render("~/src/collurgy") + s.Text.Render(" $ ") + s.Title.Render("make test"),
		s.Success.Render("ok  ") + s.Muted.Render("internal/palette    0.012s"),
		s.Error.Render("FAIL") + s.Muted.Render(" internal/exporters  0.031s"),
		s.Warning.Render("warn") + s.Muted.Render(" 2 exporters overridden"),
		s.Info.Render("info") + s.Muted.Render(" theme reloaded"),
	}
	return s.Panel.Render(strings.Join(lines, "\n"))
}

// Render combines swatches and the sample transcript.
func Render(s Styles, p palette.Palette) string {
	return lipgloss.JoinVertical(lipgloss.Left, Swatches(s, p), "", Sample(s))
}
