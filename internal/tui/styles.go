package tui

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/config"
)

// Styles carries the lipgloss styles for every rendered element, built
// once from the configured theme.
type Styles struct {
	Text      lipgloss.Style
	Cursor    lipgloss.Style
	Selection lipgloss.Style
	Match     lipgloss.Style
	Title     lipgloss.Style
	ModeTag   lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Prompt    lipgloss.Style
}

// NewStyles builds the style set from the theme colors in cfg.
func NewStyles(cfg *config.Config) Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Text)),

		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(cfg.Theme.Cursor)),

		Selection: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(cfg.Theme.Selection)),

		Match: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(cfg.Theme.Match)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(cfg.Theme.Selection)).
			Padding(0, 1),

		ModeTag: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(cfg.Theme.Selection)).
			Padding(0, 1),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Status)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Error)),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Match)),
	}
}
