// Package colorspace converts model-tagged perceptual coordinates into
// display-ready RGB.
package colorspace

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel is returned when a model tag is not recognized.
var ErrUnknownModel = errors.New("unknown color model")

// Model selects how a Perceptual triple is interpreted.
type Model uint8

const (
	// CIELCH is CIE L*C*h(ab) under D65.
	CIELCH Model = iota
	// HSV is hue, saturation, value over sRGB.
	HSV
	// OKLCH is the polar form of Björn Ottosson's OKLab.
	OKLCH
	// JZCZHZ is the polar form of JzAzBz.
	JZCZHZ
)

var modelNames = map[Model]string{
	CIELCH: "CIELCH",
	HSV:    "HSV",
	OKLCH:  "OKLCH",
	JZCZHZ: "JZCZHZ",
}

// Models lists every persisted model in display order.
func Models() []Model {
	return []Model{HSV, CIELCH, OKLCH, JZCZHZ}
}

// ParseModel parses a model tag, ignoring case and surrounding space.
func ParseModel(value string) (Model, error) {
	tag := strings.ToUpper(strings.TrimSpace(value))
	for model, name := range modelNames {
		if name == tag {
			return model, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownModel, value)
}

// String returns the persisted tag.
func (m Model) String() string {
	if name, ok := modelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Model(%d)", uint8(m))
}

// Valid reports whether m is one of the known models.
func (m Model) Valid() bool {
	_, ok := modelNames[m]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (m Model) MarshalText() ([]byte, error) {
	name, ok := modelNames[m]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownModel, uint8(m))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Model) UnmarshalText(text []byte) error {
	parsed, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Target is the RGB encoding produced by Apply.
type Target uint8

const (
	// SRGB is gamma-encoded sRGB.
	SRGB Target = iota
	// LRGB is linear-light sRGB.
	LRGB
)

// String returns the target's name.
func (t Target) String() string {
	if t == LRGB {
		return "LRGB"
	}
	return "SRGB"
}

// Perceptual is a [L|V, C|S, H] triple in display units: lightness/value and
// chroma/saturation in percent, hue in degrees.
type Perceptual [3]float64

// L returns the lightness (or value) component.
func (p Perceptual) L() float64 { return p[0] }

// C returns the chroma (or saturation) component.
func (p Perceptual) C() float64 { return p[1] }

// H returns the hue component in degrees.
func (p Perceptual) H() float64 { return p[2] }

// RotateHue returns p with deg added to its hue. The result is not wrapped.
func (p Perceptual) RotateHue(deg float64) Perceptual {
	return Perceptual{p[0], p[1], p[2] + deg}
}

// Blend returns the per-axis weighted mean (p*wp + q*wq) / (wp + wq).
func Blend(p Perceptual, wp float64, q Perceptual, wq float64) Perceptual {
	var out Perceptual
	for i := range out {
		out[i] = (p[i]*wp + q[i]*wq) / (wp + wq)
	}
	return out
}
