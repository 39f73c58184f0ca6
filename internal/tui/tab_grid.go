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

func (a App) renderGridTab(cw, contentH int) string {
	t := theme.Active
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.rows) == 0 {
		return dimStyle.Render("\n  No projects match the current filter.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	nameW := 26
	line := fmt.Sprintf("  %-*s %-13s %-10s %10s %10s %9s %10s %7s",
		nameW, "Project", "Date", "Status", "Revenue", "Target", "Speakers", "Delegates", "Signed")
	b.WriteString(headerStyle.Render(line))
	b.WriteString("\n")

	for i, r := range a.rows {
		p := r.Project
		cursor := "  "
		if i == a.gridCursor {
			cursor = "❯ "
		}
		line := fmt.Sprintf("%s%-*s %-13s %-10s %10s %10s %9s %10d %7s",
			cursor,
			nameW, truncStr(p.Name, nameW),
			p.EventDate.Format("Jan 2, 2006"),
			string(p.Status),
			cli.FormatMoneyCompact(r.EffectiveRevenue),
			cli.FormatMoneyCompact(p.RevenueTarget),
			fmt.Sprintf("%d/%d", p.SpeakersConfirmed, p.SpeakersTarget),
			r.Delegates,
			fmt.Sprintf("%d/%d", r.SignedCount, r.SponsorCount))

		if i == a.gridCursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(statusTint(rowStyle, p.Status).Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Detail card for the selected project
	if r := a.rows[a.gridCursor]; true {
		b.WriteString(components.ContentCard(r.Project.Name, a.renderGridDetail(r, components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("  [t]status  [+/-]speakers  [d]+5 delegates  [n]new sponsor  [enter]deep dive"))

	return b.String()
}

// statusTint colors a grid row by project health.
func statusTint(base lipgloss.Style, s model.ProjectStatus) lipgloss.Style {
	t := theme.Active
	switch s {
	case model.StatusCritical:
		return base.Foreground(t.Red)
	case model.StatusCompleted:
		return base.Foreground(t.TextDim)
	default:
		return base
	}
}

func (a App) renderGridDetail(r model.ProjectRow, innerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("Sponsor value:"),
		valueStyle.Render(cli.FormatMoneyCompact(r.SponsorValue)),
		labelStyle.Render("Gap:"),
		valueStyle.Render(cli.FormatMoneyCompact(r.RevenueGap)),
		labelStyle.Render("Fill:"),
		valueStyle.Render(cli.FormatPercent(r.FillRate)))

	fmt.Fprintf(&b, "%s %s",
		labelStyle.Render("Delegates:"),
		valueStyle.Render(fmt.Sprintf("%d  (Gov %d / Ind %d / Stu %d)",
			r.Delegates,
			r.DelegatesByCat[model.CategoryGovernment],
			r.DelegatesByCat[model.CategoryIndustry],
			r.DelegatesByCat[model.CategoryStudent])))

	if r.Project.BudgetTotal != nil {
		spent := 0.0
		if r.Project.ExpensesActual != nil {
			spent = *r.Project.ExpensesActual
		}
		fmt.Fprintf(&b, "   %s %s",
			labelStyle.Render("Budget:"),
			valueStyle.Render(fmt.Sprintf("%s / %s",
				cli.FormatMoneyCompact(spent), cli.FormatMoneyCompact(*r.Project.BudgetTotal))))
	}

	return b.String()
}

// viewDeepDive renders the full-screen deep dive overlay.
func (a App) viewDeepDive() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3).
		Width(minInt(w-8, 100))

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	textStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	errStyle := lipgloss.NewStyle().
		Foreground(t.Red).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Deep Dive: " + a.diveProject))
	b.WriteString("\n\n")

	switch {
	case a.diveLoading:
		b.WriteString(a.spinner.View())
		b.WriteString(dimStyle.Render(" Analyzing project..."))
	case a.diveErr != "":
		b.WriteString(errStyle.Render(a.diveErr))
	case a.dive != nil:
		b.WriteString(sectionStyle.Render("Status Assessment"))
		b.WriteString("\n")
		b.WriteString(textStyle.Render(a.dive.StatusAssessment))
		b.WriteString("\n\n")
		b.WriteString(sectionStyle.Render("Action Plan"))
		b.WriteString("\n")
		for _, step := range a.dive.ActionPlan {
			b.WriteString(textStyle.Render("• " + step))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Stakeholder Email Draft"))
		b.WriteString("\n")
		b.WriteString(textStyle.Render(a.dive.EmailDraft))
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press Esc to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
