package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/evhq/horizon/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsExactly(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{7, 3},
		{0, 2},
	}
	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d): %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("dusk")

	shortCard := ContentCard("Funnel", "Lead", 22)
	tallCard := ContentCard("Trend", "Mon\nTue\nWed\nThu\nFri", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want tallest card height %d", len(lines), tallLines)
	}
}

func TestMetricCardAlertChangesDeltaColor(t *testing.T) {
	theme.SetActive("dusk")

	m := Metric{Label: "Expenses", Value: "$120k", Delta: "104.3% of budget"}
	calm := MetricCard(m, 30)
	m.Alert = true
	alerting := MetricCard(m, 30)

	if calm == alerting {
		t.Fatal("alert card renders identically to calm card")
	}
	if !strings.Contains(stripAnsi(alerting), "104.3% of budget") {
		t.Error("alert card lost its delta text")
	}
}

func stripAnsi(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('g'); got != 4 {
		t.Errorf("TabIdxByKey('g') = %d, want 4", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestStackedBarChartRendersAxis(t *testing.T) {
	theme.SetActive("dusk")

	series := [][]float64{{3, 2, 1}, {1, 4, 0}, {0, 0, 2}}
	labels := []string{"01", "02", "03"}
	colors := []lipgloss.Color{theme.Active.Blue, theme.Active.Green, theme.Active.Yellow}

	out := StackedBarChart(series, labels, colors, 40, 6)
	if !strings.Contains(out, "└") {
		t.Error("missing x axis")
	}
	if !strings.Contains(out, "█") {
		t.Error("no bars rendered")
	}
}
