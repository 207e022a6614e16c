// Package palette derives the 16-slot terminal palette from a theme.
package palette

import (
	"github.com/collurgy/collurgy/internal/colorspace"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of palette slots.
const Size = 16

// Slot indexes follow ANSI terminal order.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var slotNames = [Size]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// SlotName returns the conventional name of a slot, or "" when out of range.
func SlotName(slot int) string {
	if !ValidSlot(slot) {
		return ""
	}
	return slotNames[slot]
}

// SlotByName resolves a conventional slot name.
func SlotByName(name string) (int, bool) {
	for i, n := range slotNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// ValidSlot reports whether slot addresses a palette entry.
func ValidSlot(slot int) bool {
	return slot >= 0 && slot < Size
}

// rotationSlots maps the n-th 60° hue rotation to its normal-intensity slot.
// Bright slots are offset by 8.
var rotationSlots = [6]int{Red, Yellow, Green, Cyan, Blue, Magenta}

// Palette is the display-ready result of Compute.
type Palette [Size]colorful.Color

// Hex returns the upper-case hex string of every slot.
func (p Palette) Hex() [Size]string {
	var out [Size]string
	for i, c := range p {
		out[i] = colorspace.Hex(c)
	}
	return out
}

// Perceptual builds the 16 pre-conversion triples for t.
func Perceptual(t *theme.Theme) [Size]colorspace.Perceptual {
	var slots [Size]colorspace.Perceptual

	slots[Black] = t.Background
	slots[BrightWhite] = t.Foreground
	slots[BrightBlack] = colorspace.Blend(t.Background, 2, t.Foreground, 1)
	slots[White] = colorspace.Blend(t.Foreground, 2, t.Background, 1)

	for n, slot := range rotationSlots {
		deg := 60 * float64(n)
		slots[slot] = t.Spectrum.RotateHue(deg)
		slots[slot+8] = t.SpectrumBright.RotateHue(deg)
	}

	return slots
}

// Compute derives the gamma-encoded sRGB palette for t.
func Compute(t *theme.Theme) Palette {
	return ComputeTarget(t, colorspace.SRGB)
}

// ComputeTarget derives the palette in the requested RGB encoding. All 16
// slots are converted as one batch.
func ComputeTarget(t *theme.Theme, target colorspace.Target) Palette {
	slots := Perceptual(t)
	converted := colorspace.Apply(t.Model, slots[:], target, t.High2023)

	var p Palette
	copy(p[:], converted)
	return p
}
