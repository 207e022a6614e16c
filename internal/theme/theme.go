// Package theme defines the persisted theme record and its document formats.
package theme

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/collurgy/collurgy/internal/colorspace"
)

// ErrInvalidTheme is wrapped by every decode and validation failure.
var ErrInvalidTheme = errors.New("invalid theme")

// Slots is the number of palette entries an index may address.
const Slots = 16

// ValidationError describes a rejected theme field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("theme %s: %s", e.Field, e.Message)
}

// Is lets callers match validation failures with ErrInvalidTheme.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidTheme
}

// Theme is the user-edited input to palette generation and export.
type Theme struct {
	Model          colorspace.Model          `toml:"model" json:"model" yaml:"model"`
	High2023       float64                   `toml:"high2023" json:"high2023" yaml:"high2023"`
	Foreground     colorspace.Perceptual     `toml:"foreground" json:"foreground" yaml:"foreground,flow"`
	Background     colorspace.Perceptual     `toml:"background" json:"background" yaml:"background,flow"`
	Spectrum       colorspace.Perceptual     `toml:"spectrum" json:"spectrum" yaml:"spectrum,flow"`
	SpectrumBright colorspace.Perceptual     `toml:"spectrum_bright" json:"spectrum_bright" yaml:"spectrum_bright,flow"`
	Accent         int                       `toml:"accent" json:"accent" yaml:"accent"`
	Extras         map[string]map[string]int `toml:"extras,omitempty" json:"extras,omitempty" yaml:"extras,omitempty"`
}

// Default returns the stock dark theme.
func Default() *Theme {
	return &Theme{
		Model:          colorspace.CIELCH,
		High2023:       0,
		Foreground:     colorspace.Perceptual{100, 0, 0},
		Background:     colorspace.Perceptual{0, 0, 0},
		Spectrum:       colorspace.Perceptual{35, 35, 0},
		SpectrumBright: colorspace.Perceptual{65, 65, 0},
		Accent:         11, // bright yellow
		Extras:         map[string]map[string]int{},
	}
}

// Clone returns a deep copy of t.
func (t *Theme) Clone() *Theme {
	clone := *t
	clone.Extras = make(map[string]map[string]int, len(t.Extras))
	for exporter, bindings := range t.Extras {
		copied := make(map[string]int, len(bindings))
		for name, slot := range bindings {
			copied[name] = slot
		}
		clone.Extras[exporter] = copied
	}
	return &clone
}

// ExtrasFor returns the theme's bindings for an exporter and whether any
// were declared.
func (t *Theme) ExtrasFor(exporter string) (map[string]int, bool) {
	bindings, ok := t.Extras[exporter]
	return bindings, ok
}

// SetExtra binds name to slot for exporter.
func (t *Theme) SetExtra(exporter, name string, slot int) {
	if t.Extras == nil {
		t.Extras = map[string]map[string]int{}
	}
	if t.Extras[exporter] == nil {
		t.Extras[exporter] = map[string]int{}
	}
	t.Extras[exporter][name] = slot
}

// Validate checks the fields palette generation depends on. Extras
// indices are not checked; exporters skip bindings they cannot resolve.
func (t *Theme) Validate() error {
	if !t.Model.Valid() {
		return &ValidationError{Field: "model", Message: fmt.Sprintf("unknown model %d", uint8(t.Model))}
	}
	if !finite(t.High2023) {
		return &ValidationError{Field: "high2023", Message: "must be a finite number"}
	}
	colors := []struct {
		field string
		value colorspace.Perceptual
	}{
		{"foreground", t.Foreground},
		{"background", t.Background},
		{"spectrum", t.Spectrum},
		{"spectrum_bright", t.SpectrumBright},
	}
	for _, c := range colors {
		for _, v := range c.value {
			if !finite(v) {
				return &ValidationError{Field: c.field, Message: "components must be finite numbers"}
			}
		}
	}
	if t.Accent < 0 || t.Accent >= Slots {
		return &ValidationError{Field: "accent", Message: fmt.Sprintf("slot %d out of range 0..%d", t.Accent, Slots-1)}
	}
	return nil
}

// InvalidExtras lists "exporter.name" bindings whose slot is out of range.
func (t *Theme) InvalidExtras() []string {
	var invalid []string
	for exporter, bindings := range t.Extras {
		for name, slot := range bindings {
			if slot < 0 || slot >= Slots {
				invalid = append(invalid, exporter+"."+name)
			}
		}
	}
	sort.Strings(invalid)
	return invalid
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
