package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/evhq/horizon/internal/model"
)

var alertNow = time.Date(2024, 11, 10, 12, 0, 0, 0, time.UTC)

func eventIn(days int) time.Time {
	return alertNow.AddDate(0, 0, days)
}

func findAlert(t *testing.T, alerts []model.Alert, id string) model.Alert {
	t.Helper()
	for _, a := range alerts {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("alert %q not found in %d alerts", id, len(alerts))
	return model.Alert{}
}

func hasAlert(alerts []model.Alert, id string) bool {
	for _, a := range alerts {
		if a.ID == id {
			return true
		}
	}
	return false
}

func TestRevenueAtRisk(t *testing.T) {
	data := model.Dataset{
		Projects: []model.Project{
			// 40k gap on a 100k target, event in 10 days: fires.
			{ID: "P-001", Name: "Alpha", RevenueTarget: 100000, SpeakersTarget: 10, SpeakersConfirmed: 10, EventDate: eventIn(10)},
			// Same gap ratio but 60 days out: silent.
			{ID: "P-002", Name: "Beta", RevenueTarget: 80000, SpeakersTarget: 10, SpeakersConfirmed: 10, EventDate: eventIn(60)},
		},
		Sponsors: []model.Sponsor{
			{ProjectID: "P-001", Stage: model.StageSigned, Value: 60000},
			{ProjectID: "P-002", Stage: model.StageSigned, Value: 48000},
		},
	}

	alerts := EvaluateAlerts(data, alertNow)
	a := findAlert(t, alerts, "rev-critical-P-001")
	if a.Severity != model.SeverityCritical {
		t.Errorf("severity = %v, want critical", a.Severity)
	}
	if !strings.Contains(a.Message, "$40k shortfall with 10 days remaining") {
		t.Errorf("message = %q", a.Message)
	}
	if !strings.Contains(a.Message, "60% of target secured") {
		t.Errorf("message = %q", a.Message)
	}
	if hasAlert(alerts, "rev-critical-P-002") {
		t.Error("revenue alert fired for project 60 days out")
	}
}

// Revenue risk measures secured sponsor value only; the stored revenue
// actual never stands in for missing sponsors here.
func TestRevenueAtRiskIgnoresStoredActual(t *testing.T) {
	data := model.Dataset{
		Projects: []model.Project{
			{ID: "P-001", Name: "Alpha", RevenueTarget: 100000, RevenueActual: 90000,
				SpeakersTarget: 10, SpeakersConfirmed: 10, EventDate: eventIn(10)},
		},
	}
	alerts := EvaluateAlerts(data, alertNow)
	if !hasAlert(alerts, "rev-critical-P-001") {
		t.Error("expected revenue alert despite healthy stored actual")
	}
}

func TestSpeakerShortageAndUpcomingBothFire(t *testing.T) {
	data := model.Dataset{
		Projects: []model.Project{
			{ID: "P-001", Name: "Alpha", SpeakersTarget: 50, SpeakersConfirmed: 20, EventDate: eventIn(5)},
		},
		Delegates: []model.DelegateLog{
			{ProjectID: "P-001", Category: model.CategoryIndustry, Count: 60},
		},
	}

	alerts := EvaluateAlerts(data, alertNow)
	a := findAlert(t, alerts, "speaker-warning-P-001")
	if !strings.Contains(a.Message, "Only 20 of 50 speakers confirmed (40%)") {
		t.Errorf("message = %q", a.Message)
	}
	if !strings.Contains(a.Message, "Need 30 more speakers") {
		t.Errorf("message = %q", a.Message)
	}
	findAlert(t, alerts, "upcoming-P-001")
}

func TestZeroSpeakerTargetCountsAsFilled(t *testing.T) {
	data := model.Dataset{
		Projects: []model.Project{
			{ID: "P-001", Name: "Alpha", SpeakersTarget: 0, EventDate: eventIn(10)},
		},
		Delegates: []model.DelegateLog{
			{ProjectID: "P-001", Category: model.CategoryIndustry, Count: 60},
		},
	}
	if hasAlert(EvaluateAlerts(data, alertNow), "speaker-warning-P-001") {
		t.Error("speaker alert fired with no speaker target")
	}
}

func TestLowRegistration(t *testing.T) {
	tests := []struct {
		name      string
		delegates int
		daysOut   int
		want      bool
	}{
		{"few delegates close to event", 30, 10, true},
		{"few delegates but far out", 30, 20, false},
		{"enough delegates", 50, 10, false},
		{"event already passed", 30, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := model.Dataset{
				Projects: []model.Project{
					{ID: "P-001", Name: "Alpha", SpeakersTarget: 10, SpeakersConfirmed: 10, EventDate: eventIn(tt.daysOut)},
				},
				Delegates: []model.DelegateLog{
					{ProjectID: "P-001", Category: model.CategoryStudent, Count: tt.delegates},
				},
			}
			got := hasAlert(EvaluateAlerts(data, alertNow), "delegates-critical-P-001")
			if got != tt.want {
				t.Errorf("fired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmailEngagement(t *testing.T) {
	tests := []struct {
		name      string
		marketing []model.Marketing
		want      bool
	}{
		{"low open rate on large send", []model.Marketing{{ProjectID: "P-001", OpenRate: 0.12, EmailsSent: 2000}}, true},
		{"low open rate, small send", []model.Marketing{{ProjectID: "P-001", OpenRate: 0.12, EmailsSent: 500}}, false},
		{"healthy open rate", []model.Marketing{{ProjectID: "P-001", OpenRate: 0.28, EmailsSent: 2000}}, false},
		{"no marketing record", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := model.Dataset{
				Projects: []model.Project{
					{ID: "P-001", Name: "Alpha", SpeakersTarget: 10, SpeakersConfirmed: 10, EventDate: eventIn(90)},
				},
				Marketing: tt.marketing,
			}
			got := hasAlert(EvaluateAlerts(data, alertNow), "email-warning-P-001")
			if got != tt.want {
				t.Errorf("fired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudgetOverrunNeedsBothFigures(t *testing.T) {
	tests := []struct {
		name     string
		budget   *float64
		expenses *float64
		want     bool
	}{
		{"over budget", f64(100000), f64(163000), true},
		{"under budget", f64(100000), f64(80000), false},
		{"missing budget", nil, f64(163000), false},
		{"missing expenses", f64(100000), nil, false},
		{"both missing", nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := model.Dataset{
				Projects: []model.Project{
					{ID: "P-001", Name: "Alpha", SpeakersTarget: 10, SpeakersConfirmed: 10,
						EventDate: eventIn(90), BudgetTotal: tt.budget, ExpensesActual: tt.expenses},
				},
			}
			alerts := EvaluateAlerts(data, alertNow)
			got := hasAlert(alerts, "budget-critical-P-001")
			if got != tt.want {
				t.Errorf("fired = %v, want %v", got, tt.want)
			}
			if tt.want {
				a := findAlert(t, alerts, "budget-critical-P-001")
				if !strings.Contains(a.Message, "exceed budget by $63k") {
					t.Errorf("message = %q", a.Message)
				}
			}
		})
	}
}

func TestAlertsSortedBySeverityStable(t *testing.T) {
	// One project raising info, one warning, one critical; input order is
	// info-ish project first so sorting has to rearrange.
	data := model.Dataset{
		Projects: []model.Project{
			{ID: "P-003", Name: "Gamma", SpeakersTarget: 10, SpeakersConfirmed: 10, EventDate: eventIn(3)},
			{ID: "P-002", Name: "Beta", SpeakersTarget: 50, SpeakersConfirmed: 10, EventDate: eventIn(20)},
			{ID: "P-001", Name: "Alpha", BudgetTotal: f64(10), ExpensesActual: f64(20),
				SpeakersTarget: 10, SpeakersConfirmed: 10, EventDate: eventIn(90)},
		},
		Delegates: []model.DelegateLog{
			{ProjectID: "P-003", Category: model.CategoryIndustry, Count: 60},
			{ProjectID: "P-002", Category: model.CategoryIndustry, Count: 60},
		},
	}

	alerts := EvaluateAlerts(data, alertNow)
	if len(alerts) != 3 {
		t.Fatalf("got %d alerts, want 3", len(alerts))
	}
	wantOrder := []string{"budget-critical-P-001", "speaker-warning-P-002", "upcoming-P-003"}
	for i, id := range wantOrder {
		if alerts[i].ID != id {
			t.Errorf("alerts[%d] = %q, want %q", i, alerts[i].ID, id)
		}
	}
}

func TestDaysUntilRoundsUp(t *testing.T) {
	event := alertNow.Add(36 * time.Hour)
	if got := daysUntil(event, alertNow); got != 2 {
		t.Errorf("daysUntil = %d, want 2", got)
	}
	if got := daysUntil(alertNow.Add(-1*time.Hour), alertNow); got != 0 {
		t.Errorf("past event daysUntil = %d, want 0", got)
	}
}
