package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	agentActive lipgloss.Style
	agentIdle   lipgloss.Style
	detailKey   lipgloss.Style
	detailValue lipgloss.Style
	statusGood  lipgloss.Style
	statusBad   lipgloss.Style
	statusInfo  lipgloss.Style
	stepDone    lipgloss.Style
	stepPending lipgloss.Style
	banner      lipgloss.Style
	section     lipgloss.Style
	sender      lipgloss.Style
	userText    lipgloss.Style
	systemNote  lipgloss.Style
	timestamp   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		agentActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		agentIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		detailKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detailValue: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		statusGood:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		statusBad:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		statusInfo:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		stepDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		stepPending: lipgloss.NewStyle().Faint(true),
		banner:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		section:     lipgloss.NewStyle().MarginTop(1),
		sender:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		userText:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		systemNote:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		timestamp:   lipgloss.NewStyle().Faint(true),
	}
}
