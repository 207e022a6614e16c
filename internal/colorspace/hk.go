package colorspace

import "math"

// High et al. 2023 Helmholtz–Kohlrausch coefficients.
var high2023 = [4]float64{0.1644, 0.0603, 0.1307, 0.0060}

func hkFby(h float64) float64 {
	return high2023[0]*math.Abs(math.Sin((h-90)/2*math.Pi/180)) + high2023[1]
}

func hkFr(h float64) float64 {
	if h <= 90 || h >= 270 {
		return high2023[2]*math.Abs(math.Cos(h*math.Pi/180)) + high2023[3]
	}
	return 0
}

// HKBrightness estimates how much brighter a native [L, C, H] color looks
// than its lightness implies.
func HKBrightness(native Perceptual) float64 {
	h := wrapHue(native[2])
	return (hkFby(h) + hkFr(h)) * native[1]
}

// compensate shifts native lightness toward uniform perceived brightness.
// strength 0 leaves the color untouched.
func compensate(native Perceptual, q100, q95 Quant, strength float64) Perceptual {
	if strength == 0 || q95[1] == 0 {
		return native
	}
	native[0] += (q100[0]*0.2 - HKBrightness(native)) * (native[1] / q95[1]) * strength
	return native
}
