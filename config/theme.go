package config

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-built lipgloss styles derived from ThemeConfig, built
// once after loading config and reused across every repl render.
type Styles struct {
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Output    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Separator lipgloss.Style
}

// BuildStyles creates lipgloss.Style instances from ThemeConfig.
func (t ThemeConfig) BuildStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Output: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Output)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
	}
}
