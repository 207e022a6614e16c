package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/collurgy/collurgy/internal/colorspace"
	"github.com/collurgy/collurgy/internal/palette"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/lucasb-eyer/go-colorful"
)

// Plane is a hue/chroma sweep around one palette slot. Columns run through
// hue 0..360, rows run from the highest chroma at the top down to zero.
type Plane struct {
	Slot      int
	Base      colorspace.Perceptual
	Columns   int
	Rows      int
	MaxChroma float64
	// Cells holds display colors row-major; out-of-gamut samples are
	// already replaced by the marker.
	Cells []colorful.Color
	// Clipped counts cells replaced by the marker.
	Clipped int
}

// BuildPlane samples the hue/chroma plane at the lightness of t's slot. The
// samples are converted with the theme's model and compensation strength.
func BuildPlane(t *theme.Theme, slot, columns, rows int, marker colorful.Color) (*Plane, error) {
	if !palette.ValidSlot(slot) {
		return nil, fmt.Errorf("slot %d out of range", slot)
	}
	if columns < 2 || rows < 2 {
		return nil, fmt.Errorf("plane needs at least 2x2 cells, got %dx%d", columns, rows)
	}

	base := palette.Perceptual(t)[slot]
	maxChroma := math.Max(100, base.C())

	samples := make([]colorspace.Perceptual, 0, columns*rows)
	for row := 0; row < rows; row++ {
		chroma := maxChroma * float64(rows-1-row) / float64(rows-1)
		for col := 0; col < columns; col++ {
			hue := 360 * float64(col) / float64(columns)
			samples = append(samples, colorspace.Perceptual{base.L(), chroma, hue})
		}
	}

	converted := colorspace.Apply(t.Model, samples, colorspace.SRGB, t.High2023)
	clipped := 0
	for _, c := range converted {
		if !colorspace.InGamut(c) {
			clipped++
		}
	}

	return &Plane{
		Slot:      slot,
		Base:      base,
		Columns:   columns,
		Rows:      rows,
		MaxChroma: maxChroma,
		Cells:     colorspace.ClipGamut(converted, marker),
		Clipped:   clipped,
	}, nil
}

// At returns the cell at row, col.
func (p *Plane) At(row, col int) colorful.Color {
	return p.Cells[row*p.Columns+col]
}

// BaseCell returns the cell nearest to the slot's own hue and chroma.
func (p *Plane) BaseCell() (row, col int) {
	hue := math.Mod(p.Base.H(), 360)
	if hue < 0 {
		hue += 360
	}
	col = int(math.Round(hue/360*float64(p.Columns))) % p.Columns
	row = p.Rows - 1 - int(math.Round(p.Base.C()/p.MaxChroma*float64(p.Rows-1)))
	row = min(max(row, 0), p.Rows-1)
	return row, col
}

// RenderPlane draws the plane two characters per cell and marks the base
// color with "<>".
func RenderPlane(s Styles, p *Plane) string {
	baseRow, baseCol := p.BaseCell()

	var b strings.Builder
	title := fmt.Sprintf("%s  L=%.1f C=%.1f H=%.1f  (%d/%d out of gamut)",
		palette.SlotName(p.Slot), p.Base.L(), p.Base.C(), p.Base.H(), p.Clipped, len(p.Cells))
	b.WriteString(s.Title.Render(title))
	b.WriteByte('\n')

	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Columns; col++ {
			c := p.At(row, col)
			cell := "  "
			if row == baseRow && col == baseCol {
				cell = "<>"
			}
			b.WriteString(s.block("#" + colorspace.Hex(c)).Foreground(labelColor(c)).Render(cell))
		}
		b.WriteByte('\n')
	}
	b.WriteString(s.Muted.Render(fmt.Sprintf("hue 0..360 ->, chroma %.0f..0 top to bottom", p.MaxChroma)))
	return b.String()
}
