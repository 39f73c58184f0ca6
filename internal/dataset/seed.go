package dataset

import (
	"math/rand"
	"time"

	"github.com/evhq/horizon/internal/model"
)

// Seed builds the built-in demo portfolio: five projects with sponsors,
// sixty days of delegate history, marketing totals, and expense lines.
// Used whenever no spreadsheet is configured and no snapshot exists.
func Seed() model.Dataset {
	now := time.Now()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	f := func(v float64) *float64 { return &v }

	projects := []model.Project{
		{ID: "P-001", Name: "World Edu Summit", EventDate: date("2024-12-12"), Status: model.StatusOnTrack,
			RevenueTarget: 100000, RevenueActual: 75000, SpeakersTarget: 50, SpeakersConfirmed: 45,
			BudgetTotal: f(60000), ExpensesActual: f(42000)},
		{ID: "P-002", Name: "Future Tech Expo", EventDate: date("2024-11-20"), Status: model.StatusCritical,
			RevenueTarget: 250000, RevenueActual: 120000, SpeakersTarget: 100, SpeakersConfirmed: 40,
			BudgetTotal: f(150000), ExpensesActual: f(163000)},
		{ID: "P-003", Name: "Green Energy Forum", EventDate: date("2025-01-15"), Status: model.StatusOnTrack,
			RevenueTarget: 80000, RevenueActual: 30000, SpeakersTarget: 30, SpeakersConfirmed: 10,
			BudgetTotal: f(45000), ExpensesActual: f(18000)},
		{ID: "P-004", Name: "AI Innovators Con", EventDate: date("2024-10-30"), Status: model.StatusCompleted,
			RevenueTarget: 150000, RevenueActual: 160000, SpeakersTarget: 60, SpeakersConfirmed: 60,
			BudgetTotal: f(90000), ExpensesActual: f(87500)},
		{ID: "P-005", Name: "Global Health Symposium", EventDate: date("2024-12-05"), Status: model.StatusCritical,
			RevenueTarget: 120000, RevenueActual: 50000, SpeakersTarget: 45, SpeakersConfirmed: 20,
			BudgetTotal: f(70000), ExpensesActual: f(51000)},
	}

	sponsors := []model.Sponsor{
		{Name: "TechCorp", ProjectID: "P-001", Stage: model.StageSigned, Value: 50000},
		{Name: "EduSystems", ProjectID: "P-001", Stage: model.StageProposal, Value: 20000},
		{Name: "BookHouse", ProjectID: "P-001", Stage: model.StageLead, Value: 10000},
		{Name: "MegaChip", ProjectID: "P-002", Stage: model.StageLead, Value: 100000},
		{Name: "SoftServe", ProjectID: "P-002", Stage: model.StageProposal, Value: 80000},
		{Name: "CloudNet", ProjectID: "P-002", Stage: model.StageSigned, Value: 20000},
		{Name: "GreenLeaf", ProjectID: "P-003", Stage: model.StageContractSent, Value: 30000},
		{Name: "SolarX", ProjectID: "P-003", Stage: model.StageLead, Value: 40000},
		{Name: "BrainWave", ProjectID: "P-004", Stage: model.StageSigned, Value: 80000},
		{Name: "NeuralNet", ProjectID: "P-004", Stage: model.StageSigned, Value: 70000},
		{Name: "PharmaPlus", ProjectID: "P-005", Stage: model.StageLead, Value: 60000},
		{Name: "MediCare", ProjectID: "P-005", Stage: model.StageProposal, Value: 40000},
	}

	rng := rand.New(rand.NewSource(42))
	var delegates []model.DelegateLog
	for _, p := range projects {
		for i := 0; i < 15; i++ {
			delegates = append(delegates, model.DelegateLog{
				DateLogged: day(-rng.Intn(60)),
				ProjectID:  p.ID,
				Category:   model.DelegateCategories[rng.Intn(len(model.DelegateCategories))],
				Count:      rng.Intn(20) + 5,
			})
		}
	}

	var marketing []model.Marketing
	for _, p := range projects {
		critical := p.Status == model.StatusCritical
		openRate := 0.28
		adStatus := "Draft"
		if critical {
			openRate = 0.15
			adStatus = "Active"
		}
		marketing = append(marketing, model.Marketing{
			ProjectID:         p.ID,
			EmailsSent:        rng.Intn(5000) + 1000,
			OpenRate:          openRate,
			SocialPosts:       rng.Intn(50) + 10,
			SocialImpressions: rng.Intn(50000) + 5000,
			AdSpend:           float64(rng.Intn(5000)),
			AdClicks:          rng.Intn(500),
			WebsiteVisits:     rng.Intn(10000) + 2000,
			Campaigns: []model.Campaign{
				{Name: "Early Bird Blast", Channel: "Email", Status: "Sent", Metric: "24% Open", Date: day(-20)},
				{Name: "Speaker Announcement", Channel: "Social", Status: "Active", Metric: "1.2k Likes", Date: day(-5)},
				{Name: "LinkedIn Ads Gen 1", Channel: "Ad", Status: adStatus, Metric: "$500 Spend", Date: day(-2)},
				{Name: "Final Call", Channel: "Email", Status: "Scheduled", Metric: "N/A", Date: day(5)},
			},
		})
	}

	var expenses []model.Expense
	shares := []struct {
		cat  string
		frac float64
	}{
		{"Venue", 0.35},
		{"Catering", 0.20},
		{"AV Production", 0.18},
		{"Marketing", 0.15},
		{"Staff", 0.12},
	}
	for _, p := range projects {
		if p.ExpensesActual == nil {
			continue
		}
		for _, sh := range shares {
			expenses = append(expenses, model.Expense{
				ProjectID:   p.ID,
				Category:    sh.cat,
				Amount:      *p.ExpensesActual * sh.frac,
				Description: sh.cat + " spend for " + p.Name,
			})
		}
	}

	return model.Dataset{
		Projects:  projects,
		Sponsors:  sponsors,
		Delegates: delegates,
		Marketing: marketing,
		Expenses:  expenses,
	}
}
