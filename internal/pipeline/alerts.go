package pipeline

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/evhq/horizon/internal/model"
)

// EvaluateAlerts runs every health rule against each project in the
// filtered dataset. Rules fire independently; one project can raise
// several alerts. The result is stable-sorted by severity, so alerts for
// a project keep their rule order within each band.
func EvaluateAlerts(data model.Dataset, now time.Time) []model.Alert {
	marketingByID := make(map[string]model.Marketing)
	for _, m := range data.Marketing {
		marketingByID[m.ProjectID] = m
	}
	sponsorSums := SponsorSums(data.Sponsors)

	delegateTotals := make(map[string]int)
	for _, d := range data.Delegates {
		delegateTotals[d.ProjectID] += d.Count
	}

	var alerts []model.Alert
	for _, p := range data.Projects {
		secured := sponsorSums[p.ID]
		gap := p.RevenueTarget - secured
		delegates := delegateTotals[p.ID]

		fill := 1.0
		if p.SpeakersTarget > 0 {
			fill = float64(p.SpeakersConfirmed) / float64(p.SpeakersTarget)
		}

		days := daysUntil(p.EventDate, now)
		upcoming := days > 0 && days <= 30

		if gap > p.RevenueTarget*0.3 && upcoming {
			alerts = append(alerts, model.Alert{
				ID:          "rev-critical-" + p.ID,
				Severity:    model.SeverityCritical,
				ProjectID:   p.ID,
				ProjectName: p.Name,
				Title:       p.Name + ": Revenue At Risk",
				Message: fmt.Sprintf("$%.0fk shortfall with %d days remaining. Only %.0f%% of target secured.",
					gap/1000, days, secured/p.RevenueTarget*100),
				Metric: fmt.Sprintf("$%.0fk gap", gap/1000),
			})
		}

		if fill < 0.5 && upcoming {
			alerts = append(alerts, model.Alert{
				ID:          "speaker-warning-" + p.ID,
				Severity:    model.SeverityWarning,
				ProjectID:   p.ID,
				ProjectName: p.Name,
				Title:       p.Name + ": Speaker Shortage",
				Message: fmt.Sprintf("Only %d of %d speakers confirmed (%.0f%%). Need %d more speakers.",
					p.SpeakersConfirmed, p.SpeakersTarget, fill*100, p.SpeakersTarget-p.SpeakersConfirmed),
				Metric: fmt.Sprintf("%.0f%% filled", fill*100),
			})
		}

		if delegates < 50 && days <= 14 && days > 0 {
			alerts = append(alerts, model.Alert{
				ID:          "delegates-critical-" + p.ID,
				Severity:    model.SeverityCritical,
				ProjectID:   p.ID,
				ProjectName: p.Name,
				Title:       p.Name + ": Low Registration",
				Message: fmt.Sprintf("Only %d delegates registered with %d days until event. Consider boosting marketing efforts.",
					delegates, days),
				Metric: fmt.Sprintf("%d registered", delegates),
			})
		}

		if m, ok := marketingByID[p.ID]; ok && m.OpenRate < 0.15 && m.EmailsSent > 1000 {
			alerts = append(alerts, model.Alert{
				ID:          "email-warning-" + p.ID,
				Severity:    model.SeverityWarning,
				ProjectID:   p.ID,
				ProjectName: p.Name,
				Title:       p.Name + ": Low Email Engagement",
				Message: fmt.Sprintf("Email open rate is only %.1f%%. Consider revising subject lines or segmentation.",
					m.OpenRate*100),
				Metric: fmt.Sprintf("%.1f%% opens", m.OpenRate*100),
			})
		}

		if p.ExpensesActual != nil && p.BudgetTotal != nil && *p.ExpensesActual > *p.BudgetTotal {
			overrun := *p.ExpensesActual - *p.BudgetTotal
			alerts = append(alerts, model.Alert{
				ID:          "budget-critical-" + p.ID,
				Severity:    model.SeverityCritical,
				ProjectID:   p.ID,
				ProjectName: p.Name,
				Title:       p.Name + ": Budget Exceeded",
				Message: fmt.Sprintf("Expenses ($%.0fk) exceed budget by $%.0fk.",
					*p.ExpensesActual/1000, overrun/1000),
				Metric: fmt.Sprintf("+$%.0fk over", overrun/1000),
			})
		}

		if days <= 7 && days > 0 {
			plural := "s"
			if days == 1 {
				plural = ""
			}
			alerts = append(alerts, model.Alert{
				ID:          "upcoming-" + p.ID,
				Severity:    model.SeverityInfo,
				ProjectID:   p.ID,
				ProjectName: p.Name,
				Title:       p.Name + ": Event This Week",
				Message:     fmt.Sprintf("Event starts in %d day%s. Ensure all logistics are finalized.", days, plural),
				Metric:      fmt.Sprintf("%dd away", days),
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity < alerts[j].Severity
	})
	return alerts
}

// daysUntil counts whole days from now to the event, rounding partial
// days up. Past events yield zero or negative values.
func daysUntil(event, now time.Time) int {
	return int(math.Ceil(event.Sub(now).Hours() / 24))
}
