// Package dataset owns the in-memory portfolio and its mutation operations.
package dataset

import (
	"math/rand"
	"time"

	"github.com/evhq/horizon/internal/model"
)

// Store holds the live collections behind the dashboard. Mutations are
// in-memory only; reloading from a source replaces the whole dataset.
type Store struct {
	data model.Dataset
	now  func() time.Time
	rng  *rand.Rand
}

// New creates a store over the given dataset.
func New(data model.Dataset) *Store {
	return &Store{
		data: data,
		now:  time.Now,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Data returns the current dataset. Callers must not retain the slices
// across mutations.
func (s *Store) Data() model.Dataset {
	return s.data
}

// Replace swaps in a freshly loaded dataset, discarding session edits.
func (s *Store) Replace(data model.Dataset) {
	s.data = data
}

// UpdateStatus sets the status of the matching project. Any transition is
// permitted. Returns false if the project does not exist.
func (s *Store) UpdateStatus(projectID string, status model.ProjectStatus) bool {
	for i := range s.data.Projects {
		if s.data.Projects[i].ID == projectID {
			s.data.Projects[i].Status = status
			return true
		}
	}
	return false
}

// AdjustSpeakerActual moves a project's confirmed-speaker count by delta,
// clamping at zero. Returns false if the project does not exist.
func (s *Store) AdjustSpeakerActual(projectID string, delta int) bool {
	for i := range s.data.Projects {
		if s.data.Projects[i].ID == projectID {
			n := s.data.Projects[i].SpeakersConfirmed + delta
			if n < 0 {
				n = 0
			}
			s.data.Projects[i].SpeakersConfirmed = n
			return true
		}
	}
	return false
}

// AppendDelegateLog records a registration batch dated today.
func (s *Store) AppendDelegateLog(projectID string, category model.DelegateCategory, count int) {
	s.data.Delegates = append(s.data.Delegates, model.DelegateLog{
		DateLogged: s.now().Format("2006-01-02"),
		ProjectID:  projectID,
		Category:   category,
		Count:      count,
	})
}

// QuickAddDelegates is the one-keystroke registration bump used from the
// grid view: five Industry delegates.
func (s *Store) QuickAddDelegates(projectID string) {
	s.AppendDelegateLog(projectID, model.CategoryIndustry, 5)
}

// AppendSponsor attaches a fresh lead to the project with a placeholder
// name and a nominal opening value.
func (s *Store) AppendSponsor(projectID string) {
	s.data.Sponsors = append(s.data.Sponsors, model.Sponsor{
		Name:      "New Partner",
		ProjectID: projectID,
		Stage:     model.StageLead,
		Value:     10000,
	})
}

// SimulateRegistration appends a random delegate log: random project,
// random category, count 1-5. Drives live mode. No-op on an empty store.
func (s *Store) SimulateRegistration() {
	if len(s.data.Projects) == 0 {
		return
	}
	p := s.data.Projects[s.rng.Intn(len(s.data.Projects))]
	cat := model.DelegateCategories[s.rng.Intn(len(model.DelegateCategories))]
	s.AppendDelegateLog(p.ID, cat, s.rng.Intn(5)+1)
}
