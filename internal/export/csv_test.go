package export

import (
	"strings"
	"testing"
	"time"

	"github.com/evhq/horizon/internal/gemini"
	"github.com/evhq/horizon/internal/model"
)

func exportFixture() model.Dataset {
	return model.Dataset{
		Projects: []model.Project{
			{ID: "P-001", Name: "World Edu Summit",
				EventDate: time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC),
				Status:    model.StatusOnTrack,
				RevenueTarget: 100000, RevenueActual: 75000,
				SpeakersTarget: 50, SpeakersConfirmed: 45},
		},
		Sponsors: []model.Sponsor{
			{Name: "TechCorp", ProjectID: "P-001", Stage: model.StageSigned, Value: 50000},
			{Name: "EduSystems", ProjectID: "P-001", Stage: model.StageProposal, Value: 20000},
		},
		Delegates: []model.DelegateLog{
			{DateLogged: "2024-10-01", ProjectID: "P-001", Category: model.CategoryGovernment, Count: 10},
			{DateLogged: "2024-10-02", ProjectID: "P-001", Category: model.CategoryIndustry, Count: 25},
		},
		Marketing: []model.Marketing{
			{ProjectID: "P-001", EmailsSent: 4200, OpenRate: 0.2812, AdSpend: 1800, WebsiteVisits: 9000},
		},
	}
}

func TestProjectsCSV(t *testing.T) {
	got := ProjectsCSV(exportFixture().Projects)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	wantHeader := "project_id,project_name,date,status,revenue_target,revenue_actual,speaker_target,speaker_actual"
	if lines[0] != wantHeader {
		t.Errorf("header = %q", lines[0])
	}
	wantRow := `"P-001","World Edu Summit","2024-12-12","On Track","100000","75000","50","45"`
	if lines[1] != wantRow {
		t.Errorf("row = %q, want %q", lines[1], wantRow)
	}
}

func TestCSVQuoteEscaping(t *testing.T) {
	got := SponsorsCSV([]model.Sponsor{
		{Name: `Acme "Global" Ltd`, ProjectID: "P-001", Stage: model.StageLead, Value: 100},
	})
	if !strings.Contains(got, `"Acme ""Global"" Ltd"`) {
		t.Errorf("embedded quotes not doubled: %q", got)
	}
}

func TestMarketingCSVOpenRatePercent(t *testing.T) {
	got := MarketingCSV(exportFixture().Marketing)
	if !strings.Contains(got, `"28.12%"`) {
		t.Errorf("open rate not rendered as percent: %q", got)
	}
}

func TestCompleteCSV(t *testing.T) {
	got := CompleteCSV(exportFixture())
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	headerCols := strings.Split(lines[0], ",")
	if len(headerCols) != 21 {
		t.Errorf("got %d report columns, want 21", len(headerCols))
	}
	row := lines[1]
	for _, want := range []string{
		`"25000"`,  // revenue gap 100000-75000
		`"90.0%"`,  // speaker fill 45/50
		`"35"`,     // total delegates
		`"10"`,     // government
		`"25"`,     // industry
		`"0"`,      // student
		`"2"`,      // sponsor count
		`"1"`,      // signed
		`"70000"`,  // sponsor value
		`"28.12%"`, // open rate
	} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %s: %q", want, row)
		}
	}
}

func TestCompleteCSVNoMarketing(t *testing.T) {
	data := exportFixture()
	data.Marketing = nil
	got := CompleteCSV(data)
	if !strings.Contains(got, `"N/A"`) {
		t.Errorf("missing marketing should export open rate N/A: %q", got)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 11, 10, 15, 30, 0, 0, time.UTC)
	if got := Filename("projects", now); got != "projects_2024-11-10.csv" {
		t.Errorf("Filename = %q", got)
	}
}

func TestExecutiveSummaryHTML(t *testing.T) {
	html, err := ExecutiveSummaryHTML(exportFixture(), nil, time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ExecutiveSummaryHTML: %v", err)
	}
	for _, want := range []string{
		"$75k",              // total revenue
		"Target: $100k",     // revenue target
		"World Edu Summit",  // project row
		"45 / 50",           // speakers
		"status-on-track",   // badge class
	} {
		if !strings.Contains(html, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	if strings.Contains(html, "AI Strategic Analysis") {
		t.Error("insight section rendered without an insight")
	}
}

func TestExecutiveSummaryHTMLEscapesInsight(t *testing.T) {
	insight := &gemini.PortfolioInsight{
		Summary:        "<script>alert(1)</script>",
		Risk:           "low",
		Recommendation: "none",
	}
	html, err := ExecutiveSummaryHTML(exportFixture(), insight, time.Now())
	if err != nil {
		t.Fatalf("ExecutiveSummaryHTML: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("model output not escaped")
	}
	if !strings.Contains(html, "AI Strategic Analysis") {
		t.Error("insight section missing")
	}
}
