package theme

import "testing"

func TestByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dusk", "dusk"},
		{"gala", "gala"},
		{"daybreak", "daybreak"},
		{"mono", "mono"},
		{"solarized", "dusk"}, // unknown names fall back to the default
		{"", "dusk"},
	}
	for _, tt := range tests {
		if got := ByName(tt.in); got.Name != tt.want {
			t.Errorf("ByName(%q).Name = %q, want %q", tt.in, got.Name, tt.want)
		}
	}
}

func TestThemesAreDistinct(t *testing.T) {
	names := make(map[string]bool, len(All))
	backgrounds := make(map[string]bool, len(All))
	for _, th := range All {
		if names[th.Name] {
			t.Errorf("duplicate theme name %q", th.Name)
		}
		names[th.Name] = true
		if th.Name == "mono" {
			continue // ANSI indices, shared palette space
		}
		bg := string(th.Background)
		if backgrounds[bg] {
			t.Errorf("theme %q reuses background %s", th.Name, bg)
		}
		backgrounds[bg] = true
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(Dusk.Name)

	SetActive("daybreak")
	if Active.Name != "daybreak" {
		t.Fatalf("Active.Name = %q, want daybreak", Active.Name)
	}
}
