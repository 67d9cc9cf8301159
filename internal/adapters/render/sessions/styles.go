package sessions

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	name        lipgloss.Style
	current     lipgloss.Style
	detail      lipgloss.Style
	description lipgloss.Style
	section     lipgloss.Style
	empty       lipgloss.Style
	active      lipgloss.Style
	complete    lipgloss.Style
	archived    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		current:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		detail:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		section:     lipgloss.NewStyle().MarginTop(1),
		empty:       lipgloss.NewStyle().Faint(true),
		active:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		complete:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		archived:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
