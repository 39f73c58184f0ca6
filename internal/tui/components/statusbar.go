package components

import (
	"fmt"

	"github.com/evhq/horizon/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: keys on the left, live
// mode and alert posture on the right.
func RenderStatusBar(width int, live bool, criticalAlerts, totalAlerts int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [L]ive  [q]uit"

	right := ""
	if totalAlerts > 0 {
		if criticalAlerts > 0 {
			right = fmt.Sprintf("%d alerts (%d critical) ", totalAlerts, criticalAlerts)
		} else {
			right = fmt.Sprintf("%d alerts ", totalAlerts)
		}
	}
	if live {
		right = "● LIVE  " + right
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
