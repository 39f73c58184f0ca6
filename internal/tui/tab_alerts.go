package tui

import (
	"fmt"
	"strings"

	"github.com/evhq/horizon/internal/model"
	"github.com/evhq/horizon/internal/tui/components"
	"github.com/evhq/horizon/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderAlertsTab(cw int) string {
	t := theme.Active

	if len(a.alerts) == 0 {
		body := lipgloss.NewStyle().Foreground(t.Green).Render("All clear.") + "\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).Render("No alerts for the current filter.")
		return components.ContentCard("Alerts", body, cw)
	}

	critical := 0
	for _, al := range a.alerts {
		if al.Severity == model.SeverityCritical {
			critical++
		}
	}

	innerW := components.CardInnerWidth(cw)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(innerW - 4)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, al := range a.alerts {
		b.WriteString(severityDot(al.Severity))
		b.WriteString(" ")
		b.WriteString(severityLabel(al.Severity))
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(al.Title))
		if al.Metric != "" {
			b.WriteString("  ")
			b.WriteString(dimStyle.Render("[" + al.Metric + "]"))
		}
		b.WriteString("\n")
		b.WriteString("    ")
		b.WriteString(msgStyle.Render(al.Message))
		if i < len(a.alerts)-1 {
			b.WriteString("\n\n")
		}
	}

	title := fmt.Sprintf("Alerts (%d, %d critical)", len(a.alerts), critical)
	return components.ContentCard(title, b.String(), cw)
}

func severityLabel(s model.AlertSeverity) string {
	t := theme.Active
	switch s {
	case model.SeverityCritical:
		return lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render("CRITICAL")
	case model.SeverityWarning:
		return lipgloss.NewStyle().Foreground(t.Orange).Render("WARNING ")
	default:
		return lipgloss.NewStyle().Foreground(t.Blue).Render("INFO    ")
	}
}
