// Package export writes the portfolio out as CSV files and a printable
// HTML executive summary.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/evhq/horizon/internal/model"
)

// writeCSV writes rows with every value quoted, doubling embedded
// quotes. The dashboard's spreadsheet consumers expect this exact shape,
// so it is kept by hand rather than delegated to encoding/csv (which
// quotes only when needed).
func writeCSV(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		b.WriteString("\n")
		for i, v := range row {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(`"` + strings.ReplaceAll(v, `"`, `""`) + `"`)
		}
	}
	return b.String()
}

// Filename builds the dated export name, e.g. "projects_2024-11-10.csv".
func Filename(name string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", name, now.Format("2006-01-02"))
}

// WriteFile writes content to dir/name, creating dir if needed.
func WriteFile(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// ProjectsCSV renders the projects collection.
func ProjectsCSV(projects []model.Project) string {
	headers := []string{"project_id", "project_name", "date", "status",
		"revenue_target", "revenue_actual", "speaker_target", "speaker_actual"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.ID, p.Name, p.EventDate.Format("2006-01-02"), string(p.Status),
			num(p.RevenueTarget), num(p.RevenueActual),
			fmt.Sprint(p.SpeakersTarget), fmt.Sprint(p.SpeakersConfirmed),
		})
	}
	return writeCSV(headers, rows)
}

// SponsorsCSV renders the sponsors collection.
func SponsorsCSV(sponsors []model.Sponsor) string {
	headers := []string{"sponsor_name", "project_id", "stage", "value"}
	rows := make([][]string, 0, len(sponsors))
	for _, s := range sponsors {
		rows = append(rows, []string{s.Name, s.ProjectID, string(s.Stage), num(s.Value)})
	}
	return writeCSV(headers, rows)
}

// DelegatesCSV renders the delegate log.
func DelegatesCSV(delegates []model.DelegateLog) string {
	headers := []string{"date_logged", "project_id", "category", "count"}
	rows := make([][]string, 0, len(delegates))
	for _, d := range delegates {
		rows = append(rows, []string{d.DateLogged, d.ProjectID, string(d.Category), fmt.Sprint(d.Count)})
	}
	return writeCSV(headers, rows)
}

// MarketingCSV renders marketing totals; the open rate is exported as a
// percentage string.
func MarketingCSV(records []model.Marketing) string {
	headers := []string{"project_id", "emails_sent", "email_open_rate", "social_posts_count",
		"social_impressions", "ad_spend", "ad_clicks", "website_visits"}
	rows := make([][]string, 0, len(records))
	for _, m := range records {
		rows = append(rows, []string{
			m.ProjectID, fmt.Sprint(m.EmailsSent),
			fmt.Sprintf("%.2f%%", m.OpenRate*100),
			fmt.Sprint(m.SocialPosts), fmt.Sprint(m.SocialImpressions),
			num(m.AdSpend), fmt.Sprint(m.AdClicks), fmt.Sprint(m.WebsiteVisits),
		})
	}
	return writeCSV(headers, rows)
}

// CompleteCSV renders the one-row-per-project management report joining
// every collection.
func CompleteCSV(data model.Dataset) string {
	headers := []string{
		"project_id", "project_name", "date", "status",
		"revenue_target", "revenue_actual", "revenue_gap",
		"speaker_target", "speaker_actual", "speaker_fill_rate",
		"total_delegates", "gov_delegates", "industry_delegates", "student_delegates",
		"total_sponsors", "signed_sponsors", "total_sponsor_value",
		"emails_sent", "email_open_rate", "ad_spend", "website_visits",
	}

	marketingByID := make(map[string]model.Marketing)
	for _, m := range data.Marketing {
		marketingByID[m.ProjectID] = m
	}

	rows := make([][]string, 0, len(data.Projects))
	for _, p := range data.Projects {
		var total, gov, ind, stu int
		for _, d := range data.Delegates {
			if d.ProjectID != p.ID {
				continue
			}
			total += d.Count
			switch d.Category {
			case model.CategoryGovernment:
				gov += d.Count
			case model.CategoryIndustry:
				ind += d.Count
			case model.CategoryStudent:
				stu += d.Count
			}
		}

		var sponsorCount, signed int
		var sponsorValue float64
		for _, s := range data.Sponsors {
			if s.ProjectID != p.ID {
				continue
			}
			sponsorCount++
			sponsorValue += s.Value
			if s.Stage == model.StageSigned {
				signed++
			}
		}

		fillRate := "0.0%"
		if p.SpeakersTarget > 0 {
			fillRate = fmt.Sprintf("%.1f%%", float64(p.SpeakersConfirmed)/float64(p.SpeakersTarget)*100)
		}

		emailsSent, openRate, adSpend, visits := "0", "N/A", "0", "0"
		if m, ok := marketingByID[p.ID]; ok {
			emailsSent = fmt.Sprint(m.EmailsSent)
			openRate = fmt.Sprintf("%.2f%%", m.OpenRate*100)
			adSpend = num(m.AdSpend)
			visits = fmt.Sprint(m.WebsiteVisits)
		}

		rows = append(rows, []string{
			p.ID, p.Name, p.EventDate.Format("2006-01-02"), string(p.Status),
			num(p.RevenueTarget), num(p.RevenueActual), num(p.RevenueTarget - p.RevenueActual),
			fmt.Sprint(p.SpeakersTarget), fmt.Sprint(p.SpeakersConfirmed), fillRate,
			fmt.Sprint(total), fmt.Sprint(gov), fmt.Sprint(ind), fmt.Sprint(stu),
			fmt.Sprint(sponsorCount), fmt.Sprint(signed), num(sponsorValue),
			emailsSent, openRate, adSpend, visits,
		})
	}
	return writeCSV(headers, rows)
}

// num renders a numeric cell without a trailing ".0" for whole values.
func num(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
