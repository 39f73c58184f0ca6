package export

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/evhq/horizon/internal/gemini"
	"github.com/evhq/horizon/internal/model"
)

// summaryTemplate is a self-contained page meant to be printed to PDF.
var summaryTemplate = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Executive Summary - Event Horizon Analytics</title>
  <style>
    @media print { body { margin: 0; padding: 20px; } }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      line-height: 1.6;
      max-width: 1200px;
      margin: 0 auto;
      padding: 40px 20px;
      color: #1f2937;
    }
    .header { border-bottom: 3px solid #6366f1; padding-bottom: 20px; margin-bottom: 40px; }
    h1 { color: #6366f1; margin: 0 0 10px 0; }
    .timestamp { color: #6b7280; font-size: 14px; }
    .kpis { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin-bottom: 40px; }
    .kpi-card { background: #f9fafb; border: 1px solid #e5e7eb; border-radius: 8px; padding: 20px; }
    .kpi-label { font-size: 12px; text-transform: uppercase; color: #6b7280; font-weight: 600; }
    .kpi-value { font-size: 28px; font-weight: bold; margin: 10px 0; color: #111827; }
    .kpi-subtext { font-size: 14px; color: #6b7280; }
    .ai-section { background: #eef2ff; border: 1px solid #c7d2fe; border-radius: 12px; padding: 24px; margin-bottom: 40px; }
    .ai-section h2 { margin-top: 0; color: #4f46e5; }
    .ai-block { margin-bottom: 20px; }
    .ai-block h3 { font-size: 14px; text-transform: uppercase; color: #6b7280; margin-bottom: 8px; }
    .ai-block p { margin: 0; color: #374151; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 40px; }
    th, td { text-align: left; padding: 12px; border-bottom: 1px solid #e5e7eb; }
    th { background: #f9fafb; font-weight: 600; color: #374151; font-size: 12px; text-transform: uppercase; }
    .status-badge { display: inline-block; padding: 4px 12px; border-radius: 12px; font-size: 12px; font-weight: 600; }
    .status-on-track { background: #d1fae5; color: #065f46; }
    .status-critical { background: #fee2e2; color: #991b1b; }
    .status-completed { background: #dbeafe; color: #1e40af; }
  </style>
</head>
<body>
  <div class="header">
    <h1>Executive Summary Report</h1>
    <p class="timestamp">Generated on {{.Timestamp}}</p>
  </div>

  <div class="kpis">
    <div class="kpi-card">
      <div class="kpi-label">Total Revenue</div>
      <div class="kpi-value">{{.TotalRevenue}}</div>
      <div class="kpi-subtext">Target: {{.RevenueTarget}}</div>
    </div>
    <div class="kpi-card">
      <div class="kpi-label">Total Delegates</div>
      <div class="kpi-value">{{.TotalDelegates}}</div>
      <div class="kpi-subtext">Across all projects</div>
    </div>
    <div class="kpi-card">
      <div class="kpi-label">Sponsors</div>
      <div class="kpi-value">{{.SponsorCount}}</div>
      <div class="kpi-subtext">{{.SignedSponsors}} signed</div>
    </div>
    <div class="kpi-card">
      <div class="kpi-label">Active Projects</div>
      <div class="kpi-value">{{.ProjectCount}}</div>
      <div class="kpi-subtext">{{.CriticalCount}} critical</div>
    </div>
  </div>

  {{if .Insight}}
  <div class="ai-section">
    <h2>AI Strategic Analysis</h2>
    <div class="ai-block">
      <h3>Executive Summary</h3>
      <p>{{.Insight.Summary}}</p>
    </div>
    <div class="ai-block">
      <h3>Key Risk</h3>
      <p>{{.Insight.Risk}}</p>
    </div>
    <div class="ai-block">
      <h3>Strategic Recommendation</h3>
      <p>{{.Insight.Recommendation}}</p>
    </div>
  </div>
  {{end}}

  <h2>Project Overview</h2>
  <table>
    <thead>
      <tr>
        <th>Project Name</th>
        <th>Date</th>
        <th>Status</th>
        <th>Revenue</th>
        <th>Delegates</th>
        <th>Speakers</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr>
        <td><strong>{{.Name}}</strong></td>
        <td>{{.Date}}</td>
        <td><span class="status-badge {{.StatusClass}}">{{.Status}}</span></td>
        <td>{{.Revenue}}</td>
        <td>{{.Delegates}}</td>
        <td>{{.Speakers}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <p style="text-align: center; color: #9ca3af; font-size: 12px; margin-top: 40px;">
    Event Horizon Analytics
  </p>
</body>
</html>
`))

type summaryRow struct {
	Name        string
	Date        string
	Status      string
	StatusClass string
	Revenue     string
	Delegates   int
	Speakers    string
}

type summaryContext struct {
	Timestamp      string
	TotalRevenue   string
	RevenueTarget  string
	TotalDelegates int
	SponsorCount   int
	SignedSponsors int
	ProjectCount   int
	CriticalCount  int
	Insight        *gemini.PortfolioInsight
	Rows           []summaryRow
}

// ExecutiveSummaryHTML renders the printable report. The insight section
// is omitted when insight is nil.
func ExecutiveSummaryHTML(data model.Dataset, insight *gemini.PortfolioInsight, now time.Time) (string, error) {
	ctx := summaryContext{
		Timestamp:    now.Format("Jan 2, 2006 3:04 PM"),
		Insight:      insight,
		ProjectCount: len(data.Projects),
	}

	var revenue, target float64
	for _, p := range data.Projects {
		revenue += p.RevenueActual
		target += p.RevenueTarget
		if p.Status == model.StatusCritical {
			ctx.CriticalCount++
		}
	}
	ctx.TotalRevenue = fmt.Sprintf("$%.0fk", revenue/1000)
	ctx.RevenueTarget = fmt.Sprintf("$%.0fk", target/1000)

	for _, d := range data.Delegates {
		ctx.TotalDelegates += d.Count
	}
	for _, s := range data.Sponsors {
		ctx.SponsorCount++
		if s.Stage == model.StageSigned {
			ctx.SignedSponsors++
		}
	}

	delegatesByID := make(map[string]int)
	for _, d := range data.Delegates {
		delegatesByID[d.ProjectID] += d.Count
	}

	for _, p := range data.Projects {
		statusClass := "status-completed"
		switch p.Status {
		case model.StatusOnTrack:
			statusClass = "status-on-track"
		case model.StatusCritical:
			statusClass = "status-critical"
		}
		ctx.Rows = append(ctx.Rows, summaryRow{
			Name:        p.Name,
			Date:        p.EventDate.Format("2006-01-02"),
			Status:      string(p.Status),
			StatusClass: statusClass,
			Revenue:     fmt.Sprintf("$%.0fk / $%.0fk", p.RevenueActual/1000, p.RevenueTarget/1000),
			Delegates:   delegatesByID[p.ID],
			Speakers:    fmt.Sprintf("%d / %d", p.SpeakersConfirmed, p.SpeakersTarget),
		})
	}

	var b strings.Builder
	if err := summaryTemplate.Execute(&b, ctx); err != nil {
		return "", fmt.Errorf("rendering summary: %w", err)
	}
	return b.String(), nil
}
