package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles.
var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1)
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	symbolStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("236"))
	labelStyle      = lipgloss.NewStyle().Bold(true)
	priceStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	gainStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	volumeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	suggestionStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("245")).Padding(0, 1)
	noticeStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 2)
	confirmStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("11")).Padding(0, 2)
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
)

// padOrTrunc pads s with spaces to width, or truncates if longer.
// Truncation counts runes so a multibyte character is never split.
func padOrTrunc(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
