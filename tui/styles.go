// Package tui is the terminal shell over the form-platform core: login
// stub, forms list, builder, preview and responses screens. It is
// presentational glue; all document semantics live in the core packages.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#2196F3")
	colorAccent  = lipgloss.Color("#8BC34A")
	colorWarn    = lipgloss.Color("#FFC107")
	colorDanger  = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("240")
)

// Styles holds the lipgloss styles shared by all screens.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Required  lipgloss.Style
	Badge     lipgloss.Style
	BadgeWarn lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Help      lipgloss.Style
	Panel     lipgloss.Style
	Dot       lipgloss.Style
	DotActive lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Subtitle:  lipgloss.NewStyle().Foreground(colorMuted),
		Muted:     lipgloss.NewStyle().Foreground(colorMuted),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Required:  lipgloss.NewStyle().Foreground(colorDanger),
		Badge:     lipgloss.NewStyle().Foreground(colorAccent),
		BadgeWarn: lipgloss.NewStyle().Foreground(colorWarn),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(colorDanger),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Help:      lipgloss.NewStyle().Foreground(colorMuted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		Dot:       lipgloss.NewStyle().Foreground(colorMuted),
		DotActive: lipgloss.NewStyle().Foreground(colorPrimary),
	}
}
