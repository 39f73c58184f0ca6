package dataset

import (
	"testing"
	"time"

	"github.com/evhq/horizon/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := New(model.Dataset{
		Projects: []model.Project{
			{ID: "P-001", Name: "Alpha", Status: model.StatusOnTrack, SpeakersConfirmed: 3},
			{ID: "P-002", Name: "Beta", Status: model.StatusCritical, SpeakersConfirmed: 0},
		},
	})
	s.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		projectID string
		status    model.ProjectStatus
		want      bool
	}{
		{"existing project", "P-001", model.StatusCompleted, true},
		{"critical back to on track", "P-002", model.StatusOnTrack, true},
		{"unknown project", "P-999", model.StatusCompleted, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t)
			if got := s.UpdateStatus(tt.projectID, tt.status); got != tt.want {
				t.Fatalf("UpdateStatus(%q) = %v, want %v", tt.projectID, got, tt.want)
			}
			if !tt.want {
				return
			}
			for _, p := range s.Data().Projects {
				if p.ID == tt.projectID && p.Status != tt.status {
					t.Errorf("status = %q, want %q", p.Status, tt.status)
				}
			}
		})
	}
}

func TestAdjustSpeakerActualClampsAtZero(t *testing.T) {
	tests := []struct {
		name      string
		projectID string
		delta     int
		want      int
	}{
		{"increment", "P-001", 1, 4},
		{"decrement", "P-001", -2, 1},
		{"clamp below zero", "P-001", -10, 0},
		{"decrement at zero stays zero", "P-002", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t)
			if !s.AdjustSpeakerActual(tt.projectID, tt.delta) {
				t.Fatal("project not found")
			}
			for _, p := range s.Data().Projects {
				if p.ID == tt.projectID && p.SpeakersConfirmed != tt.want {
					t.Errorf("SpeakersConfirmed = %d, want %d", p.SpeakersConfirmed, tt.want)
				}
			}
		})
	}
}

func TestAppendDelegateLogDatesToday(t *testing.T) {
	s := testStore(t)
	s.AppendDelegateLog("P-001", model.CategoryGovernment, 12)

	logs := s.Data().Delegates
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	got := logs[0]
	if got.DateLogged != "2025-06-15" {
		t.Errorf("DateLogged = %q, want 2025-06-15", got.DateLogged)
	}
	if got.Category != model.CategoryGovernment || got.Count != 12 || got.ProjectID != "P-001" {
		t.Errorf("unexpected log %+v", got)
	}
}

func TestQuickAddDelegates(t *testing.T) {
	s := testStore(t)
	s.QuickAddDelegates("P-002")

	logs := s.Data().Delegates
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	if logs[0].Category != model.CategoryIndustry || logs[0].Count != 5 {
		t.Errorf("quick add = %+v, want Industry/5", logs[0])
	}
}

func TestAppendSponsor(t *testing.T) {
	s := testStore(t)
	s.AppendSponsor("P-001")

	sponsors := s.Data().Sponsors
	if len(sponsors) != 1 {
		t.Fatalf("got %d sponsors, want 1", len(sponsors))
	}
	got := sponsors[0]
	if got.Name != "New Partner" || got.Stage != model.StageLead || got.Value != 10000 {
		t.Errorf("unexpected sponsor %+v", got)
	}
}

func TestSimulateRegistrationBounds(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 50; i++ {
		s.SimulateRegistration()
	}
	logs := s.Data().Delegates
	if len(logs) != 50 {
		t.Fatalf("got %d logs, want 50", len(logs))
	}
	ids := map[string]bool{"P-001": true, "P-002": true}
	for _, l := range logs {
		if l.Count < 1 || l.Count > 5 {
			t.Errorf("count %d out of range 1..5", l.Count)
		}
		if !ids[l.ProjectID] {
			t.Errorf("unknown project %q", l.ProjectID)
		}
	}
}

func TestSimulateRegistrationEmptyStore(t *testing.T) {
	s := New(model.Dataset{})
	s.SimulateRegistration()
	if len(s.Data().Delegates) != 0 {
		t.Error("expected no logs on empty store")
	}
}
