package tui

import (
	"fmt"
	"strings"

	"github.com/evhq/horizon/internal/cli"
	"github.com/evhq/horizon/internal/tui/components"
	"github.com/evhq/horizon/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderChartsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: Delegate registration trend, stacked by category
	if len(a.trend) > 0 {
		series := make([][]float64, len(a.trend))
		labels := make([]string, len(a.trend))
		for i, pt := range a.trend {
			series[i] = []float64{float64(pt.Government), float64(pt.Industry), float64(pt.Student)}
			// Axis labels show the day of month
			if len(pt.Date) == 10 {
				labels[i] = pt.Date[8:]
			}
		}
		colors := []lipgloss.Color{t.Blue, t.Green, t.Yellow}

		legend := lipgloss.NewStyle().Foreground(t.Blue).Render("█ Government") + "  " +
			lipgloss.NewStyle().Foreground(t.Green).Render("█ Industry") + "  " +
			lipgloss.NewStyle().Foreground(t.Yellow).Render("█ Student")

		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			"Delegate Registrations",
			components.StackedBarChart(series, labels, colors, chartInnerW, 10)+"\n"+legend,
			cw,
		))
		b.WriteString("\n")
	}

	// Row 2: Sponsor funnel + revenue gap by project
	halves := components.LayoutRow(cw, 2)

	funnelCard := components.ContentCard("Sponsor Funnel",
		a.renderFunnelBody(components.CardInnerWidth(halves[0])), halves[0])
	gapCard := components.ContentCard("Revenue Gap",
		a.renderGapBody(components.CardInnerWidth(halves[1])), halves[1])

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Sponsor Funnel", a.renderFunnelBody(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Revenue Gap", a.renderGapBody(components.CardInnerWidth(cw)), cw))
	} else {
		b.WriteString(components.CardRow([]string{funnelCard, gapCard}))
	}

	return b.String()
}

func (a App) renderFunnelBody(innerW int) string {
	t := theme.Active

	maxCount := 0
	for _, fs := range a.funnel {
		if fs.Count > maxCount {
			maxCount = fs.Count
		}
	}

	labelW := len("ContractSent")
	barMax := innerW - labelW - 6
	if barMax < 1 {
		barMax = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	numStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var b strings.Builder
	for _, fs := range a.funnel {
		barLen := 0
		if maxCount > 0 {
			barLen = fs.Count * barMax / maxCount
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, string(fs.Stage))),
			numStyle.Render(fmt.Sprintf("%3d", fs.Count)),
			barStyle.Render(strings.Repeat("█", barLen)))
	}
	return b.String()
}

func (a App) renderGapBody(innerW int) string {
	t := theme.Active

	maxGap := 0.0
	for _, r := range a.rows {
		if r.RevenueGap > maxGap {
			maxGap = r.RevenueGap
		}
	}

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

	var b strings.Builder
	for _, r := range a.rows {
		gap := r.RevenueGap
		color := t.Green
		barLen := 0
		if gap > 0 {
			color = t.Red
			if maxGap > 0 {
				barLen = int(gap / maxGap * float64(barMax))
			}
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(r.Project.Name, nameW))),
			numStyle.Render(fmt.Sprintf("%8s", cli.FormatMoneyCompact(gap))),
			lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen)))
	}
	return b.String()
}
