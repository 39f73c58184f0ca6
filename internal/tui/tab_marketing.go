package tui

import (
	"fmt"
	"strings"

	"github.com/evhq/horizon/internal/cli"
	"github.com/evhq/horizon/internal/tui/components"
	"github.com/evhq/horizon/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderMarketingTab(cw int) string {
	t := theme.Active
	mkt := a.mkt
	var b strings.Builder

	// Row 1: Channel metric cards
	cards := []components.Metric{
		{Label: "Emails", Value: cli.FormatCount(int64(mkt.EmailsSent)),
			Delta: cli.FormatPercent(mkt.AvgOpenRate) + " avg open rate",
			Alert: mkt.EmailsSent > 0 && mkt.AvgOpenRate < 0.15},
		{Label: "Social", Value: cli.FormatCount(int64(mkt.SocialImpressions)) + " reach"},
		{Label: "Ads", Value: cli.FormatMoneyCompact(mkt.AdSpend),
			Delta: fmt.Sprintf("%s clicks (%.2f%% CTR)", cli.FormatCount(int64(mkt.AdClicks)), mkt.CTR)},
		{Label: "Web", Value: cli.FormatCount(int64(mkt.WebsiteVisits)) + " visits"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Per-project email engagement
	if len(a.data.Marketing) > 0 {
		nameByID := make(map[string]string, len(a.data.Projects))
		for _, p := range a.data.Projects {
			nameByID[p.ID] = p.Name
		}

		innerW := components.CardInnerWidth(cw)
		nameW := innerW / 3
		if nameW < 10 {
			nameW = 10
		}
		barMax := innerW - nameW - 10
		if barMax < 1 {
			barMax = 1
		}

		nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		numStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

		var body strings.Builder
		for _, m := range a.data.Marketing {
			barLen := int(m.OpenRate * float64(barMax))
			if barLen > barMax {
				barLen = barMax
			}
			color := t.Green
			if m.OpenRate < 0.15 {
				color = t.Red
			}
			fmt.Fprintf(&body, "%s %s %s\n",
				nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(nameByID[m.ProjectID], nameW))),
				numStyle.Render(fmt.Sprintf("%6s", cli.FormatPercent(m.OpenRate))),
				lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen)))
		}
		b.WriteString(components.ContentCard("Email Open Rates", body.String(), cw))
		b.WriteString("\n")
	}

	// Row 3: Campaign list
	var campaignBody strings.Builder
	statusStyleFor := func(status string) lipgloss.Style {
		switch status {
		case "Active", "Sent":
			return lipgloss.NewStyle().Foreground(t.Green)
		case "Scheduled":
			return lipgloss.NewStyle().Foreground(t.Yellow)
		default:
			return lipgloss.NewStyle().Foreground(t.TextDim)
		}
	}
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	for _, m := range a.data.Marketing {
		for _, c := range m.Campaigns {
			fmt.Fprintf(&campaignBody, "%s %s  %s  %s\n",
				statusStyleFor(c.Status).Render(fmt.Sprintf("%-9s", c.Status)),
				nameStyle.Render(fmt.Sprintf("%-26s", truncStr(c.Name, 26))),
				dimStyle.Render(fmt.Sprintf("%-6s", c.Channel)),
				dimStyle.Render(c.Metric))
		}
	}
	if campaignBody.Len() > 0 {
		b.WriteString(components.ContentCard("Campaigns", campaignBody.String(), cw))
	}

	return b.String()
}
