package colorspace

import "github.com/lucasb-eyer/go-colorful"

// Native rescales a display-unit triple into the model's native range.
// Hue is passed through unchanged, except for HSV where the stored
// [V, S, H] triple is reordered to unit-range [H, S, V].
func (m Model) Native(p Perceptual) Perceptual {
	if m == HSV {
		return Perceptual{p[2] / 360, p[1] / 100, p[0] / 100}
	}
	q100, q95 := m.Quantiles()
	return Perceptual{p[0] / 100 * q100[0], p[1] / 100 * q95[1], p[2]}
}

// Apply converts a batch of display-unit triples to RGB. Every color of the
// batch is rescaled with the same model constants; when compensation is
// non-zero each lightness is corrected for the Helmholtz–Kohlrausch effect
// before conversion. Results are not clipped and may fall outside [0, 1].
func Apply(model Model, colors []Perceptual, target Target, compensation float64) []colorful.Color {
	out := make([]colorful.Color, len(colors))
	if len(colors) == 0 {
		return out
	}

	q100, q95 := model.Quantiles()
	for i, p := range colors {
		native := model.Native(p)
		if model != HSV {
			native = compensate(native, q100, q95, compensation)
		}
		out[i] = toTarget(fromNative(model, native), target)
	}
	return out
}

// Convert is Apply for a single color.
func Convert(model Model, p Perceptual, target Target, compensation float64) colorful.Color {
	return Apply(model, []Perceptual{p}, target, compensation)[0]
}

// fromNative converts native coordinates into gamma-encoded sRGB.
func fromNative(model Model, n Perceptual) colorful.Color {
	switch model {
	case HSV:
		return colorful.Hsv(wrapHue(n[0]*360), n[1], n[2])
	case OKLCH:
		return colorful.OkLch(n[0], n[1], n[2])
	case JZCZHZ:
		return colorful.Xyz(jzczhzToXYZ(n[0], n[1], n[2]))
	default:
		return colorful.Hcl(n[2], n[1], n[0])
	}
}

func toTarget(c colorful.Color, target Target) colorful.Color {
	if target == LRGB {
		r, g, b := c.LinearRgb()
		return colorful.Color{R: r, G: g, B: b}
	}
	return c
}
