package pipeline

import (
	"math"
	"reflect"
	"testing"

	"github.com/evhq/horizon/internal/model"
)

func f64(v float64) *float64 { return &v }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestWeightedPipeline(t *testing.T) {
	sponsors := []model.Sponsor{
		{ProjectID: "P-001", Stage: model.StageLead, Value: 10000},
		{ProjectID: "P-001", Stage: model.StageProposal, Value: 20000},
		{ProjectID: "P-001", Stage: model.StageContractSent, Value: 30000},
		{ProjectID: "P-001", Stage: model.StageSigned, Value: 40000},
	}
	data := model.Dataset{
		Projects: []model.Project{{ID: "P-001", Status: model.StatusOnTrack}},
		Sponsors: sponsors,
	}

	stats := Aggregate(data)
	// 0 + 8000 + 24000 + 40000
	if !approx(stats.WeightedPipeline, 72000) {
		t.Errorf("WeightedPipeline = %f, want 72000", stats.WeightedPipeline)
	}
	if !approx(stats.PipelineValue, 100000) {
		t.Errorf("PipelineValue = %f, want 100000", stats.PipelineValue)
	}

	// Linearity: doubling every value doubles the weighted sum.
	doubled := make([]model.Sponsor, len(sponsors))
	copy(doubled, sponsors)
	for i := range doubled {
		doubled[i].Value *= 2
	}
	data.Sponsors = doubled
	if got := Aggregate(data).WeightedPipeline; !approx(got, 144000) {
		t.Errorf("doubled WeightedPipeline = %f, want 144000", got)
	}
}

func TestSpeakerFillRate(t *testing.T) {
	tests := []struct {
		name     string
		projects []model.Project
		want     float64
	}{
		{"zero targets give zero", []model.Project{{ID: "P-001"}}, 0},
		{"full house", []model.Project{{ID: "P-001", SpeakersTarget: 10, SpeakersConfirmed: 10}}, 1.0},
		{"summed across projects", []model.Project{
			{ID: "P-001", SpeakersTarget: 40, SpeakersConfirmed: 30},
			{ID: "P-002", SpeakersTarget: 60, SpeakersConfirmed: 20},
		}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(model.Dataset{Projects: tt.projects}).SpeakerFillRate
			if !approx(got, tt.want) {
				t.Errorf("SpeakerFillRate = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestEffectiveRevenueFallback(t *testing.T) {
	p := model.Project{ID: "P-001", RevenueTarget: 100000, RevenueActual: 75000}

	if got := EffectiveRevenue(p, 60000); !approx(got, 60000) {
		t.Errorf("with sponsors = %f, want 60000", got)
	}
	if got := EffectiveRevenue(p, 0); !approx(got, 75000) {
		t.Errorf("without sponsors = %f, want stored actual 75000", got)
	}
}

// Portfolio revenue must equal the sum of per-project effective revenue,
// whichever branch each project took.
func TestRevenueReconciliation(t *testing.T) {
	data := model.Dataset{
		Projects: []model.Project{
			{ID: "P-001", RevenueTarget: 100000, RevenueActual: 75000},
			{ID: "P-002", RevenueTarget: 50000, RevenueActual: 20000},
		},
		Sponsors: []model.Sponsor{
			{ProjectID: "P-001", Stage: model.StageSigned, Value: 40000},
			{ProjectID: "P-001", Stage: model.StageLead, Value: 15000},
		},
	}

	stats := Aggregate(data)
	rows := ProjectRows(data)
	var sum float64
	for _, r := range rows {
		sum += r.EffectiveRevenue
	}
	if !approx(stats.RevenueEffective, sum) {
		t.Errorf("portfolio %f != row sum %f", stats.RevenueEffective, sum)
	}
	// P-001 uses sponsor sum 55000, P-002 falls back to 20000.
	if !approx(stats.RevenueEffective, 75000) {
		t.Errorf("RevenueEffective = %f, want 75000", stats.RevenueEffective)
	}
	if !approx(stats.RevenueGap, 150000-75000) {
		t.Errorf("RevenueGap = %f, want 75000", stats.RevenueGap)
	}
}

func TestFinancials(t *testing.T) {
	data := model.Dataset{
		Projects: []model.Project{
			{ID: "P-001", RevenueActual: 100000, BudgetTotal: f64(60000), ExpensesActual: f64(42000)},
			{ID: "P-002", RevenueActual: 50000}, // no budget figures
		},
	}

	fin := Financials(data)
	if !approx(fin.Revenue, 150000) {
		t.Errorf("Revenue = %f, want 150000", fin.Revenue)
	}
	if !approx(fin.Profit, 108000) {
		t.Errorf("Profit = %f, want 108000", fin.Profit)
	}
	if !approx(fin.ProfitMargin, 72) {
		t.Errorf("ProfitMargin = %f, want 72", fin.ProfitMargin)
	}
	if !approx(fin.BudgetUtilization, 70) {
		t.Errorf("BudgetUtilization = %f, want 70", fin.BudgetUtilization)
	}
}

func TestFinancialsZeroRevenue(t *testing.T) {
	fin := Financials(model.Dataset{Projects: []model.Project{{ID: "P-001", ExpensesActual: f64(1000)}}})
	if fin.ProfitMargin != 0 {
		t.Errorf("ProfitMargin = %f, want 0 when revenue is 0", fin.ProfitMargin)
	}
}

func TestBudgetUtilizationUnclamped(t *testing.T) {
	data := model.Dataset{Projects: []model.Project{
		{ID: "P-001", BudgetTotal: f64(100000), ExpensesActual: f64(163000)},
	}}
	if got := Financials(data).BudgetUtilization; !approx(got, 163) {
		t.Errorf("BudgetUtilization = %f, want 163", got)
	}
}

func TestExpenseBreakdownSortedDescending(t *testing.T) {
	cats := ExpenseBreakdown([]model.Expense{
		{Category: "Venue", Amount: 100},
		{Category: "Catering", Amount: 300},
		{Category: "Venue", Amount: 150},
		{Category: "Staff", Amount: 50},
	})
	want := []model.ExpenseCategory{
		{Category: "Catering", Amount: 300},
		{Category: "Venue", Amount: 250},
		{Category: "Staff", Amount: 50},
	}
	if !reflect.DeepEqual(cats, want) {
		t.Errorf("breakdown = %+v, want %+v", cats, want)
	}
}

func TestAggregateMarketing(t *testing.T) {
	stats := AggregateMarketing([]model.Marketing{
		{EmailsSent: 1000, OpenRate: 0.20, AdSpend: 500, AdClicks: 100, SocialImpressions: 5000, WebsiteVisits: 2000},
		{EmailsSent: 3000, OpenRate: 0.30, AdSpend: 1500, AdClicks: 200, SocialImpressions: 15000, WebsiteVisits: 4000},
	})

	if stats.EmailsSent != 4000 {
		t.Errorf("EmailsSent = %d, want 4000", stats.EmailsSent)
	}
	if !approx(stats.AvgOpenRate, 0.25) {
		t.Errorf("AvgOpenRate = %f, want 0.25 (unweighted mean)", stats.AvgOpenRate)
	}
	if !approx(stats.CTR, 300.0/2000*100) {
		t.Errorf("CTR = %f, want 15", stats.CTR)
	}
}

func TestAggregateMarketingZeroSpend(t *testing.T) {
	stats := AggregateMarketing([]model.Marketing{{AdClicks: 50}})
	if stats.CTR != 0 {
		t.Errorf("CTR = %f, want 0 when spend is 0", stats.CTR)
	}
}

func TestDelegateTrendAscendingByDate(t *testing.T) {
	points := DelegateTrend([]model.DelegateLog{
		{DateLogged: "2024-05-03", Category: model.CategoryStudent, Count: 4},
		{DateLogged: "2024-05-01", Category: model.CategoryGovernment, Count: 2},
		{DateLogged: "2024-05-01", Category: model.CategoryIndustry, Count: 3},
		{DateLogged: "2024-05-01", Category: model.CategoryGovernment, Count: 1},
	})

	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	first := points[0]
	if first.Date != "2024-05-01" || first.Government != 3 || first.Industry != 3 || first.Total != 6 {
		t.Errorf("first point = %+v", first)
	}
	if points[1].Date != "2024-05-03" || points[1].Student != 4 {
		t.Errorf("second point = %+v", points[1])
	}
}

func TestSponsorFunnelFixedOrderWithZeros(t *testing.T) {
	funnel := SponsorFunnel([]model.Sponsor{
		{Stage: model.StageSigned},
		{Stage: model.StageLead},
		{Stage: model.StageSigned},
	})

	want := []model.FunnelStage{
		{Stage: model.StageLead, Count: 1},
		{Stage: model.StageProposal, Count: 0},
		{Stage: model.StageContractSent, Count: 0},
		{Stage: model.StageSigned, Count: 2},
	}
	if !reflect.DeepEqual(funnel, want) {
		t.Errorf("funnel = %+v, want %+v", funnel, want)
	}
}

// Aggregation must not mutate its input: running it twice over the same
// dataset yields identical results.
func TestAggregateIdempotent(t *testing.T) {
	data := filterFixture()
	first := Aggregate(data)
	second := Aggregate(data)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation diverged: %+v vs %+v", first, second)
	}
}
