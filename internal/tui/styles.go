package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorGold     = lipgloss.Color("#D4AF37")
	colorGoldSoft = lipgloss.Color("#F1D27B")
	colorCream    = lipgloss.Color("#FDFCF0")
	colorMuted    = lipgloss.Color("#888888")
	colorDim      = lipgloss.Color("#444444")
	colorOK       = lipgloss.Color("#4CAF50")
	colorWarn     = lipgloss.Color("#F7B801")
	colorAlert    = lipgloss.Color("#FF6B6B")
	colorInfo     = lipgloss.Color("#5B8DEF")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorGoldSoft)
	textStyle     = lipgloss.NewStyle().Foreground(colorCream)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	okStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorOK)
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorWarn)
	alertStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAlert)
	infoStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorInfo)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGold).
			Padding(0, 1).
			MarginBottom(1)
	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAlert).
			Foreground(colorAlert).
			Bold(true).
			Padding(1, 3)
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(colorGold).Underline(true)
)
