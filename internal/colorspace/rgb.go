package colorspace

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// GamutMarker is the neutral color substituted for out-of-gamut samples.
var GamutMarker = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// gamutEpsilon absorbs float noise around the cube faces, e.g. white
// converting to 1.0000000002.
const gamutEpsilon = 1e-9

// Quantize maps a float channel to 8 bits: round half away from zero after
// scaling by 255, clamped to 0..255. NaN maps to 0.
func Quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	scaled := math.Round(v * 255)
	switch {
	case scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	default:
		return uint8(scaled)
	}
}

// RGB255 quantizes all three channels.
func RGB255(c colorful.Color) (r, g, b uint8) {
	return Quantize(c.R), Quantize(c.G), Quantize(c.B)
}

// Hex renders the quantized channels as six upper-case hex digits without
// a prefix.
func Hex(c colorful.Color) string {
	r, g, b := RGB255(c)
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}

// InGamut reports whether every channel lies in [0, 1].
func InGamut(c colorful.Color) bool {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || v < -gamutEpsilon || v > 1+gamutEpsilon {
			return false
		}
	}
	return true
}

// ClipGamut returns a copy of colors with every out-of-gamut entry replaced
// by marker. It is a visualization aid and is never applied to exports.
func ClipGamut(colors []colorful.Color, marker colorful.Color) []colorful.Color {
	out := make([]colorful.Color, len(colors))
	for i, c := range colors {
		if InGamut(c) {
			out[i] = c
		} else {
			out[i] = marker
		}
	}
	return out
}
