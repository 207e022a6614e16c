package preview

import (
	"github.com/collurgy/collurgy/internal/colorspace"
	"github.com/collurgy/collurgy/internal/palette"
)

// Tokens maps semantic roles to "#RRGGBB" colors taken from a palette.
type Tokens struct {
	Background string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Success    string
	Warning    string
	Error      string
	Info       string
}

func hexColor(p palette.Palette, slot int) string {
	return "#" + colorspace.Hex(p[slot])
}

// TokensFromPalette assigns roles the way terminal applications usually
// consume the 16 slots. An out-of-range accent falls back to bright blue.
func TokensFromPalette(p palette.Palette, accent int) Tokens {
	if !palette.ValidSlot(accent) {
		accent = palette.BrightBlue
	}
	return Tokens{
		Background: hexColor(p, palette.Black),
		Text:       hexColor(p, palette.BrightWhite),
		TextMuted:  hexColor(p, palette.White),
		Border:     hexColor(p, palette.BrightBlack),
		Accent:     hexColor(p, accent),
		Success:    hexColor(p, palette.Green),
		Warning:    hexColor(p, palette.Yellow),
		Error:      hexColor(p, palette.Red),
		Info:       hexColor(p, palette.Blue),
	}
}
