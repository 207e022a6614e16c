package colorspace

import (
	"sort"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// quantSteps is the per-channel sample count of the sRGB cube.
const quantSteps = 24

// Quant holds native [L, C, H] reference values for a model.
type Quant [3]float64

// Quantiles returns the 100th and 95th percentile of each native axis over
// the sRGB gamut. Lightness is rescaled by q100 and chroma by q95.
func (m Model) Quantiles() (q100, q95 Quant) {
	switch m {
	case CIELCH:
		q := cielchQuant()
		return q[0], q[1]
	case OKLCH:
		q := oklchQuant()
		return q[0], q[1]
	case JZCZHZ:
		q := jzczhzQuant()
		return q[0], q[1]
	default:
		return Quant{1, 1, 360}, Quant{1, 1, 360}
	}
}

var (
	cielchQuant = sync.OnceValue(func() [2]Quant {
		return sampleQuant(func(c colorful.Color) (float64, float64) {
			_, chroma, l := c.Hcl()
			return l, chroma
		})
	})
	oklchQuant = sync.OnceValue(func() [2]Quant {
		return sampleQuant(func(c colorful.Color) (float64, float64) {
			l, chroma, _ := c.OkLch()
			return l, chroma
		})
	})
	jzczhzQuant = sync.OnceValue(func() [2]Quant {
		return sampleQuant(func(c colorful.Color) (float64, float64) {
			jz, cz, _ := xyzToJzczhz(c.Xyz())
			return jz, cz
		})
	})
)

// sampleQuant walks an evenly spaced sRGB cube (corners included) and
// returns the 100th and 95th percentile of the lightness and chroma axes.
func sampleQuant(native func(colorful.Color) (l, c float64)) [2]Quant {
	total := quantSteps * quantSteps * quantSteps
	ls := make([]float64, 0, total)
	cs := make([]float64, 0, total)

	step := 1.0 / float64(quantSteps-1)
	for r := 0; r < quantSteps; r++ {
		for g := 0; g < quantSteps; g++ {
			for b := 0; b < quantSteps; b++ {
				l, c := native(colorful.Color{
					R: float64(r) * step,
					G: float64(g) * step,
					B: float64(b) * step,
				})
				ls = append(ls, l)
				cs = append(cs, c)
			}
		}
	}

	sort.Float64s(ls)
	sort.Float64s(cs)

	return [2]Quant{
		{percentile(ls, 1.0), percentile(cs, 1.0), 360},
		{percentile(ls, 0.95), percentile(cs, 0.95), 360},
	}
}

func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q * float64(len(sorted)-1))
	return sorted[idx]
}
