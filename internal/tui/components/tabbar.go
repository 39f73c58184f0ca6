package components

import (
	"strings"

	"github.com/evhq/horizon/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune // shortcut, always the first letter of the name
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o'},
	{Name: "Charts", Key: 'c'},
	{Name: "Marketing", Key: 'm'},
	{Name: "Budget", Key: 'b'},
	{Name: "Grid", Key: 'g'},
	{Name: "Alerts", Key: 'a'},
}

// TabVisualWidth returns the rendered width of one tab. Mouse hitboxes
// depend on this matching RenderTabBar exactly.
func TabVisualWidth(tab Tab, active bool) int {
	return len(tab.Name) + 2 // one space padding each side
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(" "+tab.Name+" "))
			continue
		}
		// Highlight the shortcut letter of inactive tabs
		parts = append(parts,
			inactiveStyle.Render(" ")+
				keyStyle.Render(tab.Name[:1])+
				inactiveStyle.Render(tab.Name[1:]+" "))
	}

	return strings.Join(parts, "·")
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
