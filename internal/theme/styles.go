package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/breakwise/breakwise/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Countdown styles
var (
	AlarmStyle = lipgloss.NewStyle().
			Foreground(ColorAlarm).
			Bold(true)

	BreakStyle = lipgloss.NewStyle().
			Foreground(ColorBreak).
			Bold(true)

	IdleStyle = lipgloss.NewStyle().
			Foreground(ColorIdle)

	WorkStyle = lipgloss.NewStyle().
			Foreground(ColorWork).
			Bold(true)

	ClockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 2)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(20)
)

// Table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorMuted).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(false)

	OverTimeStyle = lipgloss.NewStyle().
			Foreground(ColorOverTime)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StateStyle returns the countdown style of a session state
func StateStyle(state domain.SessionState) lipgloss.Style {
	switch state {
	case domain.StateWork:
		return WorkStyle
	case domain.StateBreak:
		return BreakStyle
	default:
		return IdleStyle
	}
}
