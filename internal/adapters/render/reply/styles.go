package reply

import "github.com/charmbracelet/lipgloss"

type styles struct {
	text      lipgloss.Style
	prompt    lipgloss.Style
	correct   lipgloss.Style
	wrong     lipgloss.Style
	alert     lipgloss.Style
	failure   lipgloss.Style
	faint     lipgloss.Style
	action    lipgloss.Style
	selected  lipgloss.Style
	command   lipgloss.Style
	section   lipgloss.Style
	title     lipgloss.Style
	header    lipgloss.Style
	tenseName lipgloss.Style
	person    lipgloss.Style
	form      lipgloss.Style
}

func newStyles() styles {
	return styles{
		text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		correct:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		wrong:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		alert:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		failure:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		faint:     lipgloss.NewStyle().Faint(true),
		action:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		command:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:   lipgloss.NewStyle().MarginTop(1),
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		tenseName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		person:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12),
		form:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
