package catalog

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	product  lipgloss.Style
	account  lipgloss.Style
	detail   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	expired  lipgloss.Style
	current  lipgloss.Style
	status   lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	notice   lipgloss.Style
	selected lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		product:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		account:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		expired:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		current:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		notice:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		selected: lipgloss.NewStyle().Bold(true),
	}
}
