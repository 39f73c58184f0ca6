package pipeline

import (
	"sort"

	"github.com/evhq/horizon/internal/model"
)

// stageWeights discounts sponsor value by funnel position when projecting
// realistic pipeline revenue.
var stageWeights = map[model.SponsorStage]float64{
	model.StageLead:         0,
	model.StageProposal:     0.4,
	model.StageContractSent: 0.8,
	model.StageSigned:       1.0,
}

// StageWeight returns the revenue-projection weight for a funnel stage.
// Unknown stages weigh nothing.
func StageWeight(stage model.SponsorStage) float64 {
	return stageWeights[stage]
}

// SponsorSums returns per-project raw sponsor value totals.
func SponsorSums(sponsors []model.Sponsor) map[string]float64 {
	sums := make(map[string]float64)
	for _, s := range sponsors {
		sums[s.ProjectID] += s.Value
	}
	return sums
}

// EffectiveRevenue reconciles a project's best-known revenue: the sponsor
// value sum when any exists, otherwise the stored actual. Alerts use the
// raw sponsor sum instead; the two definitions are intentionally distinct.
func EffectiveRevenue(p model.Project, sponsorSum float64) float64 {
	if sponsorSum > 0 {
		return sponsorSum
	}
	return p.RevenueActual
}

// Aggregate computes the portfolio rollup from an already-filtered dataset.
func Aggregate(data model.Dataset) model.PortfolioStats {
	var stats model.PortfolioStats
	sums := SponsorSums(data.Sponsors)

	for _, p := range data.Projects {
		stats.ProjectCount++
		if p.Status != model.StatusCompleted {
			stats.ActiveProjects++
		}
		if p.Status == model.StatusCritical {
			stats.CriticalProjects++
		}
		stats.RevenueTarget += p.RevenueTarget
		stats.RevenueEffective += EffectiveRevenue(p, sums[p.ID])
		stats.SpeakersTarget += p.SpeakersTarget
		stats.SpeakersConfirmed += p.SpeakersConfirmed
	}
	stats.RevenueGap = stats.RevenueTarget - stats.RevenueEffective

	for _, s := range data.Sponsors {
		stats.SponsorCount++
		stats.PipelineValue += s.Value
		stats.WeightedPipeline += s.Value * StageWeight(s.Stage)
		if s.Stage == model.StageSigned {
			stats.SignedSponsors++
		}
	}

	for _, d := range data.Delegates {
		stats.TotalDelegates += d.Count
	}

	if stats.SpeakersTarget > 0 {
		stats.SpeakerFillRate = float64(stats.SpeakersConfirmed) / float64(stats.SpeakersTarget)
	}

	return stats
}

// ProjectRows computes the per-project grid lines in dataset order.
func ProjectRows(data model.Dataset) []model.ProjectRow {
	sums := SponsorSums(data.Sponsors)

	sponsorCounts := make(map[string]int)
	signedCounts := make(map[string]int)
	for _, s := range data.Sponsors {
		sponsorCounts[s.ProjectID]++
		if s.Stage == model.StageSigned {
			signedCounts[s.ProjectID]++
		}
	}

	delegateTotals := make(map[string]int)
	delegateByCat := make(map[string]map[model.DelegateCategory]int)
	for _, d := range data.Delegates {
		delegateTotals[d.ProjectID] += d.Count
		byCat, ok := delegateByCat[d.ProjectID]
		if !ok {
			byCat = make(map[model.DelegateCategory]int)
			delegateByCat[d.ProjectID] = byCat
		}
		byCat[d.Category] += d.Count
	}

	rows := make([]model.ProjectRow, 0, len(data.Projects))
	for _, p := range data.Projects {
		effective := EffectiveRevenue(p, sums[p.ID])
		fill := 1.0
		if p.SpeakersTarget > 0 {
			fill = float64(p.SpeakersConfirmed) / float64(p.SpeakersTarget)
		}
		byCat := delegateByCat[p.ID]
		if byCat == nil {
			byCat = make(map[model.DelegateCategory]int)
		}
		rows = append(rows, model.ProjectRow{
			Project:          p,
			SponsorValue:     sums[p.ID],
			EffectiveRevenue: effective,
			RevenueGap:       p.RevenueTarget - effective,
			FillRate:         fill,
			Delegates:        delegateTotals[p.ID],
			DelegatesByCat:   byCat,
			SponsorCount:     sponsorCounts[p.ID],
			SignedCount:      signedCounts[p.ID],
		})
	}
	return rows
}

// Financials computes revenue, spend, and budget posture for the filtered
// portfolio. Projects without budget or expense figures contribute nothing
// to those denominators.
func Financials(data model.Dataset) model.FinancialStats {
	var fin model.FinancialStats
	sums := SponsorSums(data.Sponsors)

	for _, p := range data.Projects {
		fin.Revenue += EffectiveRevenue(p, sums[p.ID])
		if p.ExpensesActual != nil {
			fin.Expenses += *p.ExpensesActual
		}
		if p.BudgetTotal != nil {
			fin.BudgetTotal += *p.BudgetTotal
		}
	}

	fin.Profit = fin.Revenue - fin.Expenses
	if fin.Revenue > 0 {
		fin.ProfitMargin = fin.Profit / fin.Revenue * 100
	}
	if fin.BudgetTotal > 0 {
		fin.BudgetUtilization = fin.Expenses / fin.BudgetTotal * 100
	}
	return fin
}

// ExpenseBreakdown rolls expense lines up by category, largest first.
func ExpenseBreakdown(expenses []model.Expense) []model.ExpenseCategory {
	byCat := make(map[string]float64)
	for _, e := range expenses {
		byCat[e.Category] += e.Amount
	}

	cats := make([]model.ExpenseCategory, 0, len(byCat))
	for cat, amt := range byCat {
		cats = append(cats, model.ExpenseCategory{Category: cat, Amount: amt})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Amount != cats[j].Amount {
			return cats[i].Amount > cats[j].Amount
		}
		return cats[i].Category < cats[j].Category
	})
	return cats
}

// AggregateMarketing sums campaign performance across the filtered
// projects. The open rate is an unweighted mean across projects, matching
// how the channel team reports it.
func AggregateMarketing(records []model.Marketing) model.MarketingStats {
	var stats model.MarketingStats
	var rateSum float64

	for _, m := range records {
		stats.EmailsSent += m.EmailsSent
		stats.SocialImpressions += m.SocialImpressions
		stats.AdSpend += m.AdSpend
		stats.AdClicks += m.AdClicks
		stats.WebsiteVisits += m.WebsiteVisits
		rateSum += m.OpenRate
	}

	if len(records) > 0 {
		stats.AvgOpenRate = rateSum / float64(len(records))
	}
	if stats.AdSpend > 0 {
		stats.CTR = float64(stats.AdClicks) / stats.AdSpend * 100
	}
	return stats
}

// DelegateTrend groups registrations by calendar day, oldest first.
func DelegateTrend(logs []model.DelegateLog) []model.DelegateTrendPoint {
	byDate := make(map[string]*model.DelegateTrendPoint)

	for _, d := range logs {
		pt, ok := byDate[d.DateLogged]
		if !ok {
			pt = &model.DelegateTrendPoint{Date: d.DateLogged}
			byDate[d.DateLogged] = pt
		}
		switch d.Category {
		case model.CategoryGovernment:
			pt.Government += d.Count
		case model.CategoryIndustry:
			pt.Industry += d.Count
		case model.CategoryStudent:
			pt.Student += d.Count
		}
		pt.Total += d.Count
	}

	points := make([]model.DelegateTrendPoint, 0, len(byDate))
	for _, pt := range byDate {
		points = append(points, *pt)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// SponsorFunnel counts sponsors per stage in fixed funnel order. Stages
// with no sponsors still appear with a zero count.
func SponsorFunnel(sponsors []model.Sponsor) []model.FunnelStage {
	counts := make(map[model.SponsorStage]int)
	for _, s := range sponsors {
		counts[s.Stage]++
	}

	funnel := make([]model.FunnelStage, 0, len(model.FunnelStages))
	for _, stage := range model.FunnelStages {
		funnel = append(funnel, model.FunnelStage{Stage: stage, Count: counts[stage]})
	}
	return funnel
}
