package sheets

import (
	"strconv"
	"time"

	"github.com/evhq/horizon/internal/model"
)

// parser coerces raw sheet rows into entities, counting every cell that
// could not be parsed as its expected type.
type parser struct {
	coerced int
}

func newParser() *parser {
	return &parser{}
}

// cell returns the column at idx, or "" past the row's end. Sheets drops
// trailing empty cells, so short rows are routine.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func (p *parser) float(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.coerced++
		return 0
	}
	return v
}

func (p *parser) int(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		p.coerced++
		return 0
	}
	return v
}

// optFloat parses budget-style cells where absence matters downstream:
// empty, unparseable, or zero cells all mean "no figure recorded".
func (p *parser) optFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.coerced++
		return nil
	}
	if v == 0 {
		return nil
	}
	return &v
}

func (p *parser) date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		p.coerced++
		return time.Time{}
	}
	return t
}

// Projects tab: id, name, date, status, revenue target, revenue actual,
// speaker target, speaker actual, budget total, expenses actual.
func (p *parser) parseProjects(rows [][]string) []model.Project {
	if len(rows) <= 1 {
		return nil
	}
	var projects []model.Project
	for _, row := range rows[1:] {
		status := model.ProjectStatus(cell(row, 3))
		if status == "" {
			status = model.StatusOnTrack
		}
		projects = append(projects, model.Project{
			ID:                cell(row, 0),
			Name:              cell(row, 1),
			EventDate:         p.date(cell(row, 2)),
			Status:            status,
			RevenueTarget:     p.float(cell(row, 4)),
			RevenueActual:     p.float(cell(row, 5)),
			SpeakersTarget:    p.int(cell(row, 6)),
			SpeakersConfirmed: p.int(cell(row, 7)),
			BudgetTotal:       p.optFloat(cell(row, 8)),
			ExpensesActual:    p.optFloat(cell(row, 9)),
		})
	}
	return projects
}

// Sponsors tab: name, project id, stage, value.
func (p *parser) parseSponsors(rows [][]string) []model.Sponsor {
	if len(rows) <= 1 {
		return nil
	}
	var sponsors []model.Sponsor
	for _, row := range rows[1:] {
		stage := model.SponsorStage(cell(row, 2))
		if stage == "" {
			stage = model.StageLead
		}
		sponsors = append(sponsors, model.Sponsor{
			Name:      cell(row, 0),
			ProjectID: cell(row, 1),
			Stage:     stage,
			Value:     p.float(cell(row, 3)),
		})
	}
	return sponsors
}

// Delegates tab: date logged, project id, category, count.
func (p *parser) parseDelegates(rows [][]string) []model.DelegateLog {
	if len(rows) <= 1 {
		return nil
	}
	var logs []model.DelegateLog
	for _, row := range rows[1:] {
		category := model.DelegateCategory(cell(row, 2))
		if category == "" {
			category = model.CategoryIndustry
		}
		logs = append(logs, model.DelegateLog{
			DateLogged: cell(row, 0),
			ProjectID:  cell(row, 1),
			Category:   category,
			Count:      p.int(cell(row, 3)),
		})
	}
	return logs
}

// Marketing tab: project id, emails sent, open rate, social posts,
// impressions, ad spend, ad clicks, website visits. Campaign lists are
// not kept in the workbook.
func (p *parser) parseMarketing(rows [][]string) []model.Marketing {
	if len(rows) <= 1 {
		return nil
	}
	var records []model.Marketing
	for _, row := range rows[1:] {
		records = append(records, model.Marketing{
			ProjectID:         cell(row, 0),
			EmailsSent:        p.int(cell(row, 1)),
			OpenRate:          p.float(cell(row, 2)),
			SocialPosts:       p.int(cell(row, 3)),
			SocialImpressions: p.int(cell(row, 4)),
			AdSpend:           p.float(cell(row, 5)),
			AdClicks:          p.int(cell(row, 6)),
			WebsiteVisits:     p.int(cell(row, 7)),
		})
	}
	return records
}

// Expenses tab: project id, category, amount, description.
func (p *parser) parseExpenses(rows [][]string) []model.Expense {
	if len(rows) <= 1 {
		return nil
	}
	var expenses []model.Expense
	for _, row := range rows[1:] {
		category := cell(row, 1)
		if category == "" {
			category = "Other"
		}
		expenses = append(expenses, model.Expense{
			ProjectID:   cell(row, 0),
			Category:    category,
			Amount:      p.float(cell(row, 2)),
			Description: cell(row, 3),
		})
	}
	return expenses
}
