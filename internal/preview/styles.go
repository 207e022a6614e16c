package preview

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from palette tokens.
type Styles struct {
	renderer *lipgloss.Renderer

	Tokens  Tokens
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// BuildStyles converts tokens into styles bound to r. A nil renderer uses
// the lipgloss default.
func BuildStyles(r *lipgloss.Renderer, tokens Tokens) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	bg := lipgloss.Color(tokens.Background)

	return Styles{
		renderer: r,
		Tokens:   tokens,
		Title:    r.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(bg).Bold(true),
		Text:     r.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(bg),
		Muted:    r.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)).Background(bg),
		Accent:   r.NewStyle().Foreground(lipgloss.Color(tokens.Accent)).Background(bg).Bold(true),
		Panel:    r.NewStyle().Background(bg).Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Success:  r.NewStyle().Foreground(lipgloss.Color(tokens.Success)).Background(bg),
		Warning:  r.NewStyle().Foreground(lipgloss.Color(tokens.Warning)).Background(bg),
		Error:    r.NewStyle().Foreground(lipgloss.Color(tokens.Error)).Background(bg),
		Info:     r.NewStyle().Foreground(lipgloss.Color(tokens.Info)).Background(bg),
	}
}

// block returns a style painting the cell background with hex.
func (s Styles) block(hex string) lipgloss.Style {
	return s.renderer.NewStyle().Background(lipgloss.Color(hex))
}
