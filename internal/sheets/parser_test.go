package sheets

import (
	"testing"

	"github.com/evhq/horizon/internal/model"
)

func TestParseProjects(t *testing.T) {
	rows := [][]string{
		{"project_id", "project_name", "date", "status", "revenue_target", "revenue_actual", "speaker_target", "speaker_actual", "budget_total", "expenses_actual"},
		{"P-001", "World Edu Summit", "2024-12-12", "On Track", "100000", "75000", "50", "45", "60000", "42000"},
		{"P-002", "Future Tech Expo", "2024-11-20", "Critical", "250000", "120000", "100", "40", "", ""},
	}

	p := newParser()
	projects := p.parseProjects(rows)
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}

	first := projects[0]
	if first.ID != "P-001" || first.Name != "World Edu Summit" {
		t.Errorf("identity = %q/%q", first.ID, first.Name)
	}
	if first.EventDate.Format("2006-01-02") != "2024-12-12" {
		t.Errorf("date = %v", first.EventDate)
	}
	if first.RevenueTarget != 100000 || first.SpeakersConfirmed != 45 {
		t.Errorf("numerics = %+v", first)
	}
	if first.BudgetTotal == nil || *first.BudgetTotal != 60000 {
		t.Errorf("BudgetTotal = %v, want 60000", first.BudgetTotal)
	}

	second := projects[1]
	if second.BudgetTotal != nil || second.ExpensesActual != nil {
		t.Errorf("empty budget cells should parse to nil, got %v/%v", second.BudgetTotal, second.ExpensesActual)
	}
	if p.coerced != 0 {
		t.Errorf("coerced = %d, want 0 for clean rows", p.coerced)
	}
}

func TestParseProjectsLenientCoercion(t *testing.T) {
	rows := [][]string{
		{"header"},
		{"P-001", "Alpha", "not-a-date", "", "n/a", "75000", "fifty", "45", "oops", "0"},
	}

	p := newParser()
	projects := p.parseProjects(rows)
	if len(projects) != 1 {
		t.Fatalf("bad cells must not drop the row")
	}

	got := projects[0]
	if got.Status != model.StatusOnTrack {
		t.Errorf("empty status = %q, want default On Track", got.Status)
	}
	if got.RevenueTarget != 0 || got.SpeakersTarget != 0 {
		t.Errorf("unparseable numerics should coerce to zero: %+v", got)
	}
	if !got.EventDate.IsZero() {
		t.Errorf("unparseable date = %v, want zero time", got.EventDate)
	}
	if got.BudgetTotal != nil {
		t.Errorf("unparseable budget = %v, want nil", got.BudgetTotal)
	}
	if got.ExpensesActual != nil {
		t.Errorf("zero expenses cell = %v, want nil", got.ExpensesActual)
	}
	// date, revenue target, speaker target, budget: 4 coerced cells.
	if p.coerced != 4 {
		t.Errorf("coerced = %d, want 4", p.coerced)
	}
}

func TestParseHeaderOnlyAndEmpty(t *testing.T) {
	p := newParser()
	if got := p.parseProjects([][]string{{"header", "row"}}); got != nil {
		t.Errorf("header-only sheet = %v, want nil", got)
	}
	if got := p.parseSponsors(nil); got != nil {
		t.Errorf("empty sheet = %v, want nil", got)
	}
}

func TestParseSponsors(t *testing.T) {
	rows := [][]string{
		{"sponsor_name", "project_id", "stage", "value"},
		{"TechCorp", "P-001", "Signed", "50000"},
		{"Mystery", "P-002", "", "bad"},
	}

	p := newParser()
	sponsors := p.parseSponsors(rows)
	if len(sponsors) != 2 {
		t.Fatalf("got %d sponsors, want 2", len(sponsors))
	}
	if sponsors[0].Stage != model.StageSigned || sponsors[0].Value != 50000 {
		t.Errorf("sponsor = %+v", sponsors[0])
	}
	if sponsors[1].Stage != model.StageLead {
		t.Errorf("empty stage = %q, want default Lead", sponsors[1].Stage)
	}
	if sponsors[1].Value != 0 || p.coerced != 1 {
		t.Errorf("value = %f coerced = %d, want 0/1", sponsors[1].Value, p.coerced)
	}
}

func TestParseDelegatesShortRows(t *testing.T) {
	rows := [][]string{
		{"date_logged", "project_id", "category", "count"},
		{"2024-05-01", "P-001"}, // trailing cells dropped by the API
	}

	p := newParser()
	logs := p.parseDelegates(rows)
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	if logs[0].Category != model.CategoryIndustry || logs[0].Count != 0 {
		t.Errorf("short row = %+v", logs[0])
	}
}

func TestParseMarketing(t *testing.T) {
	rows := [][]string{
		{"project_id", "emails_sent", "email_open_rate", "social_posts", "social_impressions", "ad_spend", "ad_clicks", "website_visits"},
		{"P-001", "4200", "0.28", "30", "25000", "1800", "320", "9000"},
	}

	p := newParser()
	records := p.parseMarketing(rows)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	m := records[0]
	if m.EmailsSent != 4200 || m.OpenRate != 0.28 || m.AdSpend != 1800 || m.WebsiteVisits != 9000 {
		t.Errorf("marketing = %+v", m)
	}
	if len(m.Campaigns) != 0 {
		t.Errorf("campaigns are not sheet-backed, got %d", len(m.Campaigns))
	}
}

func TestParseExpenses(t *testing.T) {
	rows := [][]string{
		{"project_id", "category", "amount", "description"},
		{"P-001", "Venue", "21000", "Main hall hire"},
		{"P-001", "", "500", ""},
	}

	p := newParser()
	expenses := p.parseExpenses(rows)
	if len(expenses) != 2 {
		t.Fatalf("got %d expenses, want 2", len(expenses))
	}
	if expenses[0].Category != "Venue" || expenses[0].Amount != 21000 {
		t.Errorf("expense = %+v", expenses[0])
	}
	if expenses[1].Category != "Other" {
		t.Errorf("empty category = %q, want default Other", expenses[1].Category)
	}
}
