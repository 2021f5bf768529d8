package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/quayside/navstack/pkg/config"
)

// Color palette. Populated from the default theme and swappable at
// startup through SetTheme; single source of truth for all navigation
// chrome colors.
var (
	accentColor      lipgloss.Color
	secondaryColor   lipgloss.Color
	confirmColor     lipgloss.Color
	destructiveColor lipgloss.Color
	mutedColor       lipgloss.Color
	textColor        lipgloss.Color
)

var (
	breadcrumbStyle        lipgloss.Style
	breadcrumbTopStyle     lipgloss.Style
	sheetStyle             lipgloss.Style
	popoverStyle           lipgloss.Style
	coverStyle             lipgloss.Style
	alertStyle             lipgloss.Style
	dialogStyle            lipgloss.Style
	overlayTitleStyle      lipgloss.Style
	overlayMessageStyle    lipgloss.Style
	actionStyle            lipgloss.Style
	actionDestructiveStyle lipgloss.Style
	actionCancelStyle      lipgloss.Style
	actionCursorStyle      lipgloss.Style
	helpStyle              lipgloss.Style
)

func init() {
	SetTheme(config.DefaultTheme())
}

// SetTheme rebuilds the navigation chrome styles from a theme. Call before
// the program starts rendering; the styles are process-wide.
func SetTheme(theme config.Theme) {
	accentColor = lipgloss.Color(theme.Accent)
	secondaryColor = lipgloss.Color(theme.Secondary)
	confirmColor = lipgloss.Color(theme.Confirm)
	destructiveColor = lipgloss.Color(theme.Destructive)
	mutedColor = lipgloss.Color(theme.Muted)
	textColor = lipgloss.Color(theme.Text)

	breadcrumbStyle = lipgloss.NewStyle().
		Foreground(mutedColor).
		Padding(0, 1)

	breadcrumbTopStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	sheetStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 2)

	popoverStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(secondaryColor).
		Padding(0, 1)

	coverStyle = lipgloss.NewStyle().
		Padding(1, 2)

	alertStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(destructiveColor).
		Padding(1, 2)

	dialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(textColor)

	overlayMessageStyle = lipgloss.NewStyle().
		Foreground(mutedColor)

	actionStyle = lipgloss.NewStyle().
		Foreground(textColor)

	actionDestructiveStyle = lipgloss.NewStyle().
		Foreground(destructiveColor)

	actionCancelStyle = lipgloss.NewStyle().
		Foreground(mutedColor)

	actionCursorStyle = lipgloss.NewStyle().
		Foreground(confirmColor).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(mutedColor).
		Italic(true)
}
