// Package pipeline narrows the portfolio to an active subset and computes
// every aggregate the dashboard displays. All functions are pure.
package pipeline

import (
	"time"

	"github.com/evhq/horizon/internal/model"
)

// All is the wildcard accepted by name and status filters.
const All = "All"

// Default filter window when the user has not narrowed the date range.
var (
	DefaultFrom = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	DefaultTo   = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Filter selects a portfolio subset. Zero time bounds fall back to the
// default window. All conditions are ANDed.
type Filter struct {
	Project string // exact project name, or All
	Status  string // exact status, or All
	From    time.Time
	To      time.Time
}

// NewFilter returns the widest filter: every project, default date window.
func NewFilter() Filter {
	return Filter{Project: All, Status: All, From: DefaultFrom, To: DefaultTo}
}

// Apply restricts the dataset to projects matching the filter, then
// restricts every dependent collection to the surviving project IDs.
func Apply(data model.Dataset, f Filter) model.Dataset {
	from := f.From
	if from.IsZero() {
		from = DefaultFrom
	}
	to := f.To
	if to.IsZero() {
		to = DefaultTo
	}

	var projects []model.Project
	active := make(map[string]struct{})
	for _, p := range data.Projects {
		if f.Project != "" && f.Project != All && p.Name != f.Project {
			continue
		}
		if f.Status != "" && f.Status != All && string(p.Status) != f.Status {
			continue
		}
		if !withinDay(p.EventDate, from, to) {
			continue
		}
		projects = append(projects, p)
		active[p.ID] = struct{}{}
	}

	out := model.Dataset{Projects: projects}
	for _, s := range data.Sponsors {
		if _, ok := active[s.ProjectID]; ok {
			out.Sponsors = append(out.Sponsors, s)
		}
	}
	for _, d := range data.Delegates {
		if _, ok := active[d.ProjectID]; ok {
			out.Delegates = append(out.Delegates, d)
		}
	}
	for _, m := range data.Marketing {
		if _, ok := active[m.ProjectID]; ok {
			out.Marketing = append(out.Marketing, m)
		}
	}
	for _, e := range data.Expenses {
		if _, ok := active[e.ProjectID]; ok {
			out.Expenses = append(out.Expenses, e)
		}
	}
	return out
}

// withinDay tests an inclusive calendar-day range, ignoring time of day.
func withinDay(t, from, to time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	lo := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	hi := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(lo) && !day.After(hi)
}

// ProjectNames returns the distinct project names in dataset order,
// prefixed with the wildcard. Used to drive filter cycling in the UI.
func ProjectNames(data model.Dataset) []string {
	names := []string{All}
	for _, p := range data.Projects {
		names = append(names, p.Name)
	}
	return names
}

// StatusNames returns every status value prefixed with the wildcard.
func StatusNames() []string {
	names := []string{All}
	for _, s := range model.AllStatuses {
		names = append(names, string(s))
	}
	return names
}
