package tui

import (
	"fmt"
	"strings"

	"github.com/evhq/horizon/internal/cli"
	"github.com/evhq/horizon/internal/tui/components"
	"github.com/evhq/horizon/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	fin := a.fin
	var b strings.Builder

	// Row 1: Financial metric cards
	profitDelta := fmt.Sprintf("%.1f%% margin", fin.ProfitMargin)
	cards := []components.Metric{
		{Label: "Revenue", Value: cli.FormatMoneyCompact(fin.Revenue)},
		{Label: "Expenses", Value: cli.FormatMoneyCompact(fin.Expenses),
			Delta: fmt.Sprintf("%.1f%% of budget", fin.BudgetUtilization),
			Alert: fin.BudgetUtilization > 100},
		{Label: "Profit", Value: cli.FormatMoneyCompact(fin.Profit),
			Delta: profitDelta, Alert: fin.Profit < 0},
		{Label: "Budget", Value: cli.FormatMoneyCompact(fin.BudgetTotal)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Per-project budget gauges
	innerW := components.CardInnerWidth(cw)
	labelW := 0
	for _, r := range a.rows {
		if r.Project.BudgetTotal == nil {
			continue
		}
		if n := len(truncStr(r.Project.Name, 24)); n > labelW {
			labelW = n
		}
	}

	var gaugeBody strings.Builder
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	for _, r := range a.rows {
		p := r.Project
		if p.BudgetTotal == nil {
			continue
		}
		spent := 0.0
		if p.ExpensesActual != nil {
			spent = *p.ExpensesActual
		}
		pct := 0.0
		if *p.BudgetTotal > 0 {
			pct = spent / *p.BudgetTotal
		}
		barW := innerW - labelW - 40
		if barW < 10 {
			barW = 10
		}
		detail := fmt.Sprintf("%s of %s", cli.FormatMoneyCompact(spent), cli.FormatMoneyCompact(*p.BudgetTotal))
		gaugeBody.WriteString(components.Gauge(truncStr(p.Name, 24), pct, detail, labelW, barW))
		gaugeBody.WriteString("\n")
	}
	if gaugeBody.Len() == 0 {
		gaugeBody.WriteString(dimStyle.Render("No budgets recorded for the current filter."))
	}
	b.WriteString(components.ContentCard("Budget Utilization", gaugeBody.String(), cw))
	b.WriteString("\n")

	// Row 3: Expense breakdown by category
	if len(a.breakdown) > 0 {
		catW := 0
		for _, cat := range a.breakdown {
			if len(cat.Category) > catW {
				catW = len(cat.Category)
			}
		}
		barMax := innerW - catW - 12
		if barMax < 1 {
			barMax = 1
		}
		maxAmount := a.breakdown[0].Amount

		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		numStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		barStyle := lipgloss.NewStyle().Foreground(t.Accent)

		var body strings.Builder
		for _, cat := range a.breakdown {
			barLen := 0
			if maxAmount > 0 {
				barLen = int(cat.Amount / maxAmount * float64(barMax))
			}
			fmt.Fprintf(&body, "%s %s %s\n",
				labelStyle.Render(fmt.Sprintf("%-*s", catW, cat.Category)),
				numStyle.Render(fmt.Sprintf("%9s", cli.FormatMoneyCompact(cat.Amount))),
				barStyle.Render(strings.Repeat("█", barLen)))
		}
		b.WriteString(components.ContentCard("Expenses by Category", body.String(), cw))
	}

	return b.String()
}
