package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/collurgy/collurgy/internal/colorspace"
	"github.com/collurgy/collurgy/internal/palette"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStyles(p palette.Palette, accent int) Styles {
	return BuildStyles(lipgloss.NewRenderer(&bytes.Buffer{}), TokensFromPalette(p, accent))
}

func TestTokensFromPalette(t *testing.T) {
	p := palette.Compute(theme.Default())

	tokens := TokensFromPalette(p, palette.BrightYellow)
	assert.Equal(t, "#000000", tokens.Background)
	assert.Equal(t, "#FFFFFF", tokens.Text)
	assert.Equal(t, "#"+colorspace.Hex(p[palette.BrightYellow]), tokens.Accent)
	assert.Equal(t, "#"+colorspace.Hex(p[palette.Red]), tokens.Error)

	fallback := TokensFromPalette(p, 99)
	assert.Equal(t, "#"+colorspace.Hex(p[palette.BrightBlue]), fallback.Accent)
}

func TestSwatchesListEverySlot(t *testing.T) {
	p := palette.Compute(theme.Default())
	out := Swatches(testStyles(p, 11), p)

	for _, hex := range p.Hex() {
		assert.Contains(t, out, hex)
	}
	assert.Contains(t, out, "15")
	assert.Len(t, strings.Split(out, "\n"), 4)
}

func TestRenderIncludesSample(t *testing.T) {
	p := palette.Compute(theme.Default())
	out := Render(testStyles(p, 11), p)
	assert.Contains(t, out, "make test")
	assert.Contains(t, out, "theme reloaded")
}

func TestBuildPlane(t *testing.T) {
	th := theme.Default()
	plane, err := BuildPlane(th, palette.Red, 24, 8, colorspace.GamutMarker)
	require.NoError(t, err)

	assert.Len(t, plane.Cells, 24*8)
	assert.Equal(t, 100.0, plane.MaxChroma)

	// Bottom row has zero chroma: every hue yields the same gray.
	gray := plane.At(7, 0)
	for col := 1; col < 24; col++ {
		assert.Equal(t, colorspace.Hex(gray), colorspace.Hex(plane.At(7, col)))
	}

	for _, c := range plane.Cells {
		assert.True(t, colorspace.InGamut(c))
	}
	assert.Positive(t, plane.Clipped, "full chroma at mid lightness leaves sRGB")
	assert.Less(t, plane.Clipped, len(plane.Cells))
}

func TestPlaneBaseCell(t *testing.T) {
	th := theme.Default()
	plane, err := BuildPlane(th, palette.Blue, 36, 21, colorspace.GamutMarker)
	require.NoError(t, err)

	// Blue sits at hue 240 and chroma 35.
	row, col := plane.BaseCell()
	assert.Equal(t, 24, col)
	assert.Equal(t, 20-7, row)

	out := RenderPlane(testStyles(palette.Compute(th), 11), plane)
	assert.Contains(t, out, "blue")
	assert.Contains(t, out, "<>")
}

func TestBuildPlaneRejectsBadInput(t *testing.T) {
	_, err := BuildPlane(theme.Default(), 16, 10, 10, colorspace.GamutMarker)
	assert.Error(t, err)

	_, err = BuildPlane(theme.Default(), 0, 1, 10, colorspace.GamutMarker)
	assert.Error(t, err)
}
