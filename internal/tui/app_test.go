package tui

import (
	"testing"

	"github.com/evhq/horizon/internal/config"
	"github.com/evhq/horizon/internal/dataset"
	"github.com/evhq/horizon/internal/model"
	"github.com/evhq/horizon/internal/pipeline"
	"github.com/evhq/horizon/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	a := NewApp(dataset.New(dataset.Seed()), config.DefaultConfig(), pipeline.NewFilter())
	// The wizard intercepts keys on machines without a config file.
	a.needSetup = false
	a.setupForm = nil
	return a
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos++ // separator
			}
		}
	}
}

func TestNextStatusCycles(t *testing.T) {
	tests := []struct {
		in   model.ProjectStatus
		want model.ProjectStatus
	}{
		{model.StatusOnTrack, model.StatusCritical},
		{model.StatusCritical, model.StatusCompleted},
		{model.StatusCompleted, model.StatusOnTrack},
		{"bogus", model.StatusOnTrack},
	}
	for _, tt := range tests {
		if got := nextStatus(tt.in); got != tt.want {
			t.Errorf("nextStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStaleLiveTickIgnored(t *testing.T) {
	a := newTestApp(t)
	a.live = true
	a.liveGen = 2

	before := len(a.store.Data().Delegates)

	// Tick from a previous live session must not mutate the store.
	a.Update(liveTickMsg{gen: 1})
	if got := len(a.store.Data().Delegates); got != before {
		t.Fatalf("stale tick mutated store: %d delegates, want %d", got, before)
	}

	// A current tick registers a delegate.
	a.Update(liveTickMsg{gen: 2})
	if got := len(a.store.Data().Delegates); got != before+1 {
		t.Fatalf("live tick: %d delegates, want %d", got, before+1)
	}
}

func TestLiveTickIgnoredWhenOff(t *testing.T) {
	a := newTestApp(t)
	before := len(a.store.Data().Delegates)

	a.Update(liveTickMsg{gen: a.liveGen})
	if got := len(a.store.Data().Delegates); got != before {
		t.Fatalf("tick while live off mutated store: %d delegates, want %d", got, before)
	}
}

func TestGridCursorClampedOnRecompute(t *testing.T) {
	a := newTestApp(t)
	a.gridCursor = len(a.rows) + 10

	a.recompute()
	if a.gridCursor != len(a.rows)-1 {
		t.Fatalf("gridCursor = %d, want %d", a.gridCursor, len(a.rows)-1)
	}
}

func TestProjectFilterCycleWraps(t *testing.T) {
	a := newTestApp(t)

	seen := map[string]bool{a.filter.Project: true}
	for i := 0; i < len(a.projectNames); i++ {
		next, _ := a.updateKey(keyMsg("p"))
		a = next.(App)
		seen[a.filter.Project] = true
	}

	if a.filter.Project != pipeline.All {
		t.Errorf("after full cycle filter = %q, want %q", a.filter.Project, pipeline.All)
	}
	if len(seen) != len(a.projectNames) {
		t.Errorf("cycle visited %d names, want %d", len(seen), len(a.projectNames))
	}
}

func TestTruncStr(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"Global Summit", 20, "Global Summit"},
		{"Global Summit", 7, "Global…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncStr(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncStr(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}
