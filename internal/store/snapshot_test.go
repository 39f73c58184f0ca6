package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/evhq/horizon/internal/model"
)

func openTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestSnapshot(t)

	budget := 60000.0
	data := model.Dataset{
		Projects: []model.Project{
			{ID: "P-001", Name: "World Edu Summit",
				EventDate:     time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC),
				Status:        model.StatusOnTrack,
				RevenueTarget: 100000, RevenueActual: 75000,
				SpeakersTarget: 50, SpeakersConfirmed: 45,
				BudgetTotal: &budget},
			{ID: "P-002", Name: "Future Tech Expo",
				EventDate: time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
				Status:    model.StatusCritical},
		},
		Sponsors: []model.Sponsor{
			{Name: "TechCorp", ProjectID: "P-001", Stage: model.StageSigned, Value: 50000},
			{Name: "EduSystems", ProjectID: "P-001", Stage: model.StageProposal, Value: 20000},
		},
		Delegates: []model.DelegateLog{
			{DateLogged: "2024-10-01", ProjectID: "P-001", Category: model.CategoryIndustry, Count: 12},
		},
		Marketing: []model.Marketing{
			{ProjectID: "P-001", EmailsSent: 4200, OpenRate: 0.28, AdSpend: 1800, AdClicks: 320},
		},
		Expenses: []model.Expense{
			{ProjectID: "P-001", Category: "Venue", Amount: 21000, Description: "Main hall"},
		},
	}
	meta := Meta{FetchedAt: time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC), Source: "sheet-123", Coerced: 2}

	if err := s.Save(data, meta); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Projects) != 2 || len(got.Sponsors) != 2 || len(got.Delegates) != 1 ||
		len(got.Marketing) != 1 || len(got.Expenses) != 1 {
		t.Fatalf("counts = %d/%d/%d/%d/%d", len(got.Projects), len(got.Sponsors),
			len(got.Delegates), len(got.Marketing), len(got.Expenses))
	}

	p := got.Projects[0]
	if p.ID != "P-001" || p.Status != model.StatusOnTrack || p.RevenueTarget != 100000 {
		t.Errorf("project = %+v", p)
	}
	if p.BudgetTotal == nil || *p.BudgetTotal != 60000 {
		t.Errorf("BudgetTotal = %v, want 60000", p.BudgetTotal)
	}
	if p.ExpensesActual != nil {
		t.Errorf("ExpensesActual = %v, want nil", p.ExpensesActual)
	}
	if !p.EventDate.Equal(time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("EventDate = %v", p.EventDate)
	}
	if got.Sponsors[0].Name != "TechCorp" || got.Sponsors[1].Name != "EduSystems" {
		t.Errorf("sponsor order not preserved: %+v", got.Sponsors)
	}
	if got.Expenses[0].Description != "Main hall" {
		t.Errorf("expense = %+v", got.Expenses[0])
	}

	gotMeta, ok, err := s.LoadMeta()
	if err != nil || !ok {
		t.Fatalf("LoadMeta: ok=%v err=%v", ok, err)
	}
	if gotMeta.Source != "sheet-123" || gotMeta.Coerced != 2 {
		t.Errorf("meta = %+v", gotMeta)
	}
	if !gotMeta.FetchedAt.Equal(meta.FetchedAt) {
		t.Errorf("FetchedAt = %v, want %v", gotMeta.FetchedAt, meta.FetchedAt)
	}
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	s := openTestSnapshot(t)

	first := model.Dataset{
		Projects: []model.Project{{ID: "P-001", Name: "Alpha", EventDate: time.Now(), Status: model.StatusOnTrack}},
		Sponsors: []model.Sponsor{{Name: "Old", ProjectID: "P-001", Stage: model.StageLead, Value: 1}},
	}
	if err := s.Save(first, Meta{FetchedAt: time.Now(), Source: "a"}); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	second := model.Dataset{
		Projects: []model.Project{{ID: "P-002", Name: "Beta", EventDate: time.Now(), Status: model.StatusCritical}},
	}
	if err := s.Save(second, Meta{FetchedAt: time.Now(), Source: "b"}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Projects) != 1 || got.Projects[0].ID != "P-002" {
		t.Errorf("projects = %+v, want only P-002", got.Projects)
	}
	if len(got.Sponsors) != 0 {
		t.Errorf("stale sponsors survived replace: %+v", got.Sponsors)
	}
}

func TestLoadMetaEmptyDatabase(t *testing.T) {
	s := openTestSnapshot(t)
	_, ok, err := s.LoadMeta()
	if err != nil {
		t.Fatalf("LoadMeta: %v", err)
	}
	if ok {
		t.Error("ok = true on empty database")
	}
}
