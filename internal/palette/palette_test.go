package palette

import (
	"math"
	"testing"

	"github.com/collurgy/collurgy/internal/colorspace"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTheme(model colorspace.Model) *theme.Theme {
	th := theme.Default()
	th.Model = model
	th.Foreground = colorspace.Perceptual{92, 8, 80}
	th.Background = colorspace.Perceptual{12, 6, 260}
	th.Spectrum = colorspace.Perceptual{45, 40, 25}
	th.SpectrumBright = colorspace.Perceptual{70, 55, 25}
	return th
}

func TestEndpointsMatchBaseColors(t *testing.T) {
	for _, model := range colorspace.Models() {
		for _, comp := range []float64{0, 1} {
			th := sampleTheme(model)
			th.High2023 = comp
			p := Compute(th)

			bg := colorspace.Convert(model, th.Background, colorspace.SRGB, comp)
			fg := colorspace.Convert(model, th.Foreground, colorspace.SRGB, comp)

			assert.InDelta(t, bg.R, p[Black].R, 1e-9)
			assert.InDelta(t, bg.G, p[Black].G, 1e-9)
			assert.InDelta(t, bg.B, p[Black].B, 1e-9)
			assert.InDelta(t, fg.R, p[BrightWhite].R, 1e-9)
			assert.InDelta(t, fg.G, p[BrightWhite].G, 1e-9)
			assert.InDelta(t, fg.B, p[BrightWhite].B, 1e-9)
		}
	}
}

func TestBlendSlots(t *testing.T) {
	th := sampleTheme(colorspace.CIELCH)
	slots := Perceptual(th)

	for axis := 0; axis < 3; axis++ {
		bg, fg := th.Background[axis], th.Foreground[axis]
		assert.InDelta(t, (2*bg+fg)/3, slots[BrightBlack][axis], 1e-12)
		assert.InDelta(t, (2*fg+bg)/3, slots[White][axis], 1e-12)
	}

	p := Compute(th)
	want := colorspace.Convert(th.Model, slots[BrightBlack], colorspace.SRGB, th.High2023)
	assert.InDelta(t, want.R, p[BrightBlack].R, 1e-12)
	assert.InDelta(t, want.G, p[BrightBlack].G, 1e-12)
	assert.InDelta(t, want.B, p[BrightBlack].B, 1e-12)
}

func TestHueRotationSlots(t *testing.T) {
	th := sampleTheme(colorspace.OKLCH)
	slots := Perceptual(th)

	order := []int{Red, Yellow, Green, Cyan, Blue, Magenta}
	for n, slot := range order {
		wantHue := th.Spectrum.H() + 60*float64(n)
		require.Equal(t, th.Spectrum.L(), slots[slot].L())
		require.Equal(t, th.Spectrum.C(), slots[slot].C())
		require.InDelta(t, wantHue, slots[slot].H(), 1e-12, SlotName(slot))

		bright := slot + 8
		require.Equal(t, th.SpectrumBright.L(), slots[bright].L())
		require.Equal(t, th.SpectrumBright.C(), slots[bright].C())
		require.InDelta(t, th.SpectrumBright.H()+60*float64(n), slots[bright].H(), 1e-12, SlotName(bright))
	}

	hues := map[float64]bool{}
	for slot := Red; slot <= Cyan; slot++ {
		hues[math.Mod(slots[slot].H(), 360)] = true
	}
	require.Len(t, hues, 6)
}

func TestHSVSpectrumRotatesHue(t *testing.T) {
	th := theme.Default()
	th.Model = colorspace.HSV
	th.Foreground = colorspace.Perceptual{100, 0, 0}
	th.Background = colorspace.Perceptual{0, 0, 0}
	th.Spectrum = colorspace.Perceptual{80, 80, 25}
	th.SpectrumBright = colorspace.Perceptual{100, 80, 25}
	p := Compute(th)

	require.Equal(t, "FFFFFF", colorspace.Hex(p[BrightWhite]))
	require.Equal(t, "000000", colorspace.Hex(p[Black]))

	for k, slot := range rotationSlots {
		want := 25 + 60*float64(k)

		h, s, v := p[slot].Hsv()
		assert.InDelta(t, want, h, 1e-6, SlotName(slot))
		assert.InDelta(t, 0.8, s, 1e-9, SlotName(slot))
		assert.InDelta(t, 0.8, v, 1e-9, SlotName(slot))

		h, _, v = p[slot+8].Hsv()
		assert.InDelta(t, want, h, 1e-6, SlotName(slot+8))
		assert.InDelta(t, 1.0, v, 1e-9, SlotName(slot+8))
	}
}

func TestDefaultThemeScenario(t *testing.T) {
	th := theme.Default()
	slots := Perceptual(th)

	require.Equal(t, 0.0, slots[Red].H())
	require.Equal(t, 60.0, slots[Yellow].H())
	require.Equal(t, 120.0, slots[Green].H())
	require.Equal(t, 180.0, slots[Cyan].H())
	require.Equal(t, 240.0, slots[Blue].H())
	require.Equal(t, 300.0, slots[Magenta].H())

	hex := Compute(th).Hex()
	require.Equal(t, "000000", hex[Black])
	require.Equal(t, "FFFFFF", hex[BrightWhite])
}

func TestComputeTargetLinear(t *testing.T) {
	th := sampleTheme(colorspace.CIELCH)
	srgb := Compute(th)
	linear := ComputeTarget(th, colorspace.LRGB)

	for i := range srgb {
		r, g, b := srgb[i].LinearRgb()
		assert.InDelta(t, r, linear[i].R, 1e-12)
		assert.InDelta(t, g, linear[i].G, 1e-12)
		assert.InDelta(t, b, linear[i].B, 1e-12)
	}
}

func TestSlotNames(t *testing.T) {
	require.Equal(t, "black", SlotName(Black))
	require.Equal(t, "bright-white", SlotName(BrightWhite))
	require.Empty(t, SlotName(16))
	require.Empty(t, SlotName(-1))

	slot, ok := SlotByName("bright-cyan")
	require.True(t, ok)
	require.Equal(t, BrightCyan, slot)

	_, ok = SlotByName("orange")
	require.False(t, ok)
}
