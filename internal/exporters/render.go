package exporters

import (
	"sort"
	"strconv"
	"strings"

	"github.com/collurgy/collurgy/internal/colorspace"
	"github.com/collurgy/collurgy/internal/palette"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/lucasb-eyer/go-colorful"
)

// channels are the placeholder suffixes bound for every color.
var channels = []string{"R", "G", "B", "FR", "FG", "FB", "HEX"}

// AccentPrefix names the accent aliases, e.g. {ACCHEX}.
const AccentPrefix = "ACC"

func channelValues(c colorful.Color) map[string]string {
	r, g, b := colorspace.RGB255(c)
	return map[string]string{
		"R":   strconv.Itoa(int(r)),
		"G":   strconv.Itoa(int(g)),
		"B":   strconv.Itoa(int(b)),
		"FR":  formatFloat(c.R),
		"FG":  formatFloat(c.G),
		"FB":  formatFloat(c.B),
		"HEX": colorspace.Hex(c),
	}
}

// formatFloat prints the shortest decimal that round-trips at float32
// precision. Values are not clamped.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}

// placeholders builds the token table for one render. Slot tokens are
// channel+index ({HEX3}); accent and extras tokens are name+channel
// ({ACCHEX}, {cursorHEX}). Extras are bound last so an explicit binding wins
// over a colliding accent alias.
func placeholders(p palette.Palette, accent int, extras map[string]int) map[string]string {
	table := make(map[string]string, len(channels)*(palette.Size+1+len(extras)))

	for slot, c := range p {
		index := strconv.Itoa(slot)
		for channel, value := range channelValues(c) {
			table[channel+index] = value
		}
	}

	if palette.ValidSlot(accent) {
		for channel, value := range channelValues(p[accent]) {
			table[AccentPrefix+channel] = value
		}
	}

	names := make([]string, 0, len(extras))
	for name := range extras {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		slot := extras[name]
		if !palette.ValidSlot(slot) {
			continue
		}
		for channel, value := range channelValues(p[slot]) {
			table[name+channel] = value
		}
	}

	return table
}

// substitute replaces every {token} found in table in one left-to-right
// pass. Unknown tokens are copied verbatim.
func substitute(text string, table map[string]string) string {
	var out strings.Builder
	out.Grow(len(text))

	for {
		start := strings.IndexByte(text, '{')
		if start < 0 {
			out.WriteString(text)
			break
		}
		out.WriteString(text[:start])
		text = text[start:]

		end := strings.IndexByte(text, '}')
		if end < 0 {
			out.WriteString(text)
			break
		}
		if value, ok := table[text[1:end]]; ok {
			out.WriteString(value)
			text = text[end+1:]
			continue
		}
		out.WriteByte('{')
		text = text[1:]
	}

	return out.String()
}

// Render substitutes palette values into the exporter's formatter. Invalid
// accent or extras slots produce no placeholders and their tokens are left
// in place.
func Render(exp *Exporter, p palette.Palette, accent int, extras map[string]int) string {
	if exp == nil {
		return ""
	}
	return substitute(exp.Formatter, placeholders(p, accent, extras))
}

// ResolveExtras returns the extras bound for exp. The theme's bindings for
// the exporter name replace the exporter's defaults entirely; the defaults
// apply only when the theme declares none for that name.
func ResolveExtras(exp *Exporter, t *theme.Theme) map[string]int {
	source := exp.Extras
	if t != nil {
		if bindings, ok := t.ExtrasFor(exp.Name); ok {
			source = bindings
		}
	}
	resolved := make(map[string]int, len(source))
	for name, slot := range source {
		resolved[name] = slot
	}
	return resolved
}

// Export computes t's palette and renders it through exp.
func Export(t *theme.Theme, exp *Exporter) string {
	return Render(exp, palette.Compute(t), t.Accent, ResolveExtras(exp, t))
}

// Placeholders lists every token Render recognizes for the given extras,
// braces included, in a stable order.
func Placeholders(accent int, extras map[string]int) []string {
	table := placeholders(palette.Palette{}, accent, extras)
	tokens := make([]string, 0, len(table))
	for token := range table {
		tokens = append(tokens, "{"+token+"}")
	}
	sort.Strings(tokens)
	return tokens
}
