package tui

import (
	"fmt"
	"strings"

	"github.com/evhq/horizon/internal/cli"
	"github.com/evhq/horizon/internal/model"
	"github.com/evhq/horizon/internal/tui/components"
	"github.com/evhq/horizon/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	stats := a.stats
	var b strings.Builder

	// Row 1: Metric cards
	revDelta := ""
	if stats.RevenueTarget > 0 {
		revDelta = fmt.Sprintf("%s of %s target",
			cli.FormatPercent(stats.RevenueEffective/stats.RevenueTarget),
			cli.FormatMoneyCompact(stats.RevenueTarget))
	}

	cards := []components.Metric{
		{Label: "Revenue", Value: cli.FormatMoneyCompact(stats.RevenueEffective), Delta: revDelta},
		{Label: "Pipeline", Value: cli.FormatMoneyCompact(stats.PipelineValue),
			Delta: cli.FormatMoneyCompact(stats.WeightedPipeline) + " weighted"},
		{Label: "Speakers", Value: cli.FormatPercent(stats.SpeakerFillRate),
			Delta: fmt.Sprintf("%d of %d confirmed", stats.SpeakersConfirmed, stats.SpeakersTarget)},
		{Label: "Delegates", Value: cli.FormatNumber(int64(stats.TotalDelegates)),
			Delta: fmt.Sprintf("%d projects, %d critical", stats.ActiveProjects, stats.CriticalProjects),
			Alert: stats.CriticalProjects > 0},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Revenue by project
	if len(a.rows) > 0 {
		vals := make([]float64, len(a.rows))
		labels := make([]string, len(a.rows))
		for i, r := range a.rows {
			vals[i] = r.EffectiveRevenue
			labels[i] = shortProject(r.Project.Name)
		}
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			"Revenue by Project",
			components.BarChart(vals, labels, t.Blue, chartInnerW, 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: AI insight + top alerts
	halves := components.LayoutRow(cw, 2)

	insightCard := components.ContentCard("AI Insight", a.renderInsightBody(components.CardInnerWidth(halves[0])), halves[0])
	alertsCard := components.ContentCard("Top Alerts", a.renderTopAlertsBody(components.CardInnerWidth(halves[1])), halves[1])

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("AI Insight", a.renderInsightBody(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Top Alerts", a.renderTopAlertsBody(components.CardInnerWidth(cw)), cw))
	} else {
		b.WriteString(components.CardRow([]string{insightCard, alertsCard}))
	}

	return b.String()
}

func (a App) renderInsightBody(innerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(innerW)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	switch {
	case a.insightLoading:
		return a.spinner.View() + dimStyle.Render(" Analyzing portfolio...")
	case a.insightErr != "":
		return errStyle.Render(truncStr(a.insightErr, innerW*3))
	case a.insight == nil:
		return dimStyle.Render("Press i to generate an AI health read.")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(textStyle.Render(a.insight.Summary))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Risk"))
	b.WriteString("\n")
	b.WriteString(textStyle.Render(a.insight.Risk))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Recommendation"))
	b.WriteString("\n")
	b.WriteString(textStyle.Render(a.insight.Recommendation))
	return b.String()
}

func (a App) renderTopAlertsBody(innerW int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.alerts) == 0 {
		return dimStyle.Render("All clear.")
	}

	limit := 5
	if len(a.alerts) < limit {
		limit = len(a.alerts)
	}

	var b strings.Builder
	for _, al := range a.alerts[:limit] {
		b.WriteString(severityDot(al.Severity))
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Render(truncStr(al.Title, innerW-12)))
		b.WriteString(" ")
		b.WriteString(dimStyle.Render(al.Metric))
		b.WriteString("\n")
	}
	if len(a.alerts) > limit {
		b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more on the Alerts tab", len(a.alerts)-limit)))
	}
	return b.String()
}

func severityDot(s model.AlertSeverity) string {
	t := theme.Active
	switch s {
	case model.SeverityCritical:
		return lipgloss.NewStyle().Foreground(t.Red).Render("●")
	case model.SeverityWarning:
		return lipgloss.NewStyle().Foreground(t.Orange).Render("●")
	default:
		return lipgloss.NewStyle().Foreground(t.Blue).Render("●")
	}
}

// shortProject compresses a project name to a chart-axis label.
func shortProject(name string) string {
	words := strings.Fields(name)
	if len(words) == 1 {
		return truncStr(name, 8)
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]))
	}
	return b.String()
}
