// Package store persists the last fetched portfolio to SQLite so the
// dashboard runs offline after one successful fetch.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/evhq/horizon/internal/model"
)

// Snapshot is a SQLite-backed copy of one fetched dataset. Saving
// replaces the previous snapshot wholesale.
type Snapshot struct {
	db *sql.DB
}

// Meta describes when and from where the snapshot was taken.
type Meta struct {
	FetchedAt time.Time
	Source    string // spreadsheet ID
	Coerced   int    // cells that fell back to zero values during parsing
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Snapshot, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// Close closes the snapshot database.
func (s *Snapshot) Close() error {
	return s.db.Close()
}

// Exists reports whether a snapshot database is present at path.
func Exists(dbPath string) bool {
	_, err := os.Stat(dbPath)
	return err == nil
}

// Save replaces the stored dataset with the given one.
func (s *Snapshot) Save(data model.Dataset, meta Meta) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"projects", "sponsors", "delegate_logs", "marketing", "expenses"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO snapshot_meta (id, fetched_at, source, coerced_cells)
		VALUES (1, ?, ?, ?)`,
		meta.FetchedAt.UTC().Format(time.RFC3339), meta.Source, meta.Coerced)
	if err != nil {
		return err
	}

	for _, p := range data.Projects {
		var budget, expenses any
		if p.BudgetTotal != nil {
			budget = *p.BudgetTotal
		}
		if p.ExpensesActual != nil {
			expenses = *p.ExpensesActual
		}
		_, err = tx.Exec(`INSERT OR REPLACE INTO projects
			(project_id, name, event_date, status, revenue_target, revenue_actual,
			 speaker_target, speaker_actual, budget_total, expenses_actual)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.EventDate.Format("2006-01-02"), string(p.Status),
			p.RevenueTarget, p.RevenueActual, p.SpeakersTarget, p.SpeakersConfirmed,
			budget, expenses)
		if err != nil {
			return err
		}
	}

	for _, sp := range data.Sponsors {
		_, err = tx.Exec(`INSERT INTO sponsors (name, project_id, stage, value) VALUES (?, ?, ?, ?)`,
			sp.Name, sp.ProjectID, string(sp.Stage), sp.Value)
		if err != nil {
			return err
		}
	}

	for _, d := range data.Delegates {
		_, err = tx.Exec(`INSERT INTO delegate_logs (date_logged, project_id, category, count)
			VALUES (?, ?, ?, ?)`,
			d.DateLogged, d.ProjectID, string(d.Category), d.Count)
		if err != nil {
			return err
		}
	}

	for _, m := range data.Marketing {
		_, err = tx.Exec(`INSERT OR REPLACE INTO marketing
			(project_id, emails_sent, open_rate, social_posts, social_impressions,
			 ad_spend, ad_clicks, website_visits)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ProjectID, m.EmailsSent, m.OpenRate, m.SocialPosts, m.SocialImpressions,
			m.AdSpend, m.AdClicks, m.WebsiteVisits)
		if err != nil {
			return err
		}
	}

	for _, e := range data.Expenses {
		_, err = tx.Exec(`INSERT INTO expenses (project_id, category, amount, description)
			VALUES (?, ?, ?, ?)`,
			e.ProjectID, e.Category, e.Amount, e.Description)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load reads the stored dataset back in insertion order.
func (s *Snapshot) Load() (model.Dataset, error) {
	var data model.Dataset

	rows, err := s.db.Query(`SELECT project_id, name, event_date, status,
		revenue_target, revenue_actual, speaker_target, speaker_actual,
		budget_total, expenses_actual FROM projects ORDER BY project_id`)
	if err != nil {
		return data, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var p model.Project
		var dateStr, status string
		var budget, expenses sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.Name, &dateStr, &status,
			&p.RevenueTarget, &p.RevenueActual, &p.SpeakersTarget, &p.SpeakersConfirmed,
			&budget, &expenses); err != nil {
			return data, err
		}
		p.Status = model.ProjectStatus(status)
		p.EventDate, _ = time.Parse("2006-01-02", dateStr)
		if budget.Valid {
			v := budget.Float64
			p.BudgetTotal = &v
		}
		if expenses.Valid {
			v := expenses.Float64
			p.ExpensesActual = &v
		}
		data.Projects = append(data.Projects, p)
	}
	if err := rows.Err(); err != nil {
		return data, err
	}

	spRows, err := s.db.Query(`SELECT name, project_id, stage, value FROM sponsors ORDER BY rowid_ord`)
	if err != nil {
		return data, err
	}
	defer func() { _ = spRows.Close() }()
	for spRows.Next() {
		var sp model.Sponsor
		var stage string
		if err := spRows.Scan(&sp.Name, &sp.ProjectID, &stage, &sp.Value); err != nil {
			return data, err
		}
		sp.Stage = model.SponsorStage(stage)
		data.Sponsors = append(data.Sponsors, sp)
	}
	if err := spRows.Err(); err != nil {
		return data, err
	}

	dRows, err := s.db.Query(`SELECT date_logged, project_id, category, count FROM delegate_logs ORDER BY rowid_ord`)
	if err != nil {
		return data, err
	}
	defer func() { _ = dRows.Close() }()
	for dRows.Next() {
		var d model.DelegateLog
		var category string
		if err := dRows.Scan(&d.DateLogged, &d.ProjectID, &category, &d.Count); err != nil {
			return data, err
		}
		d.Category = model.DelegateCategory(category)
		data.Delegates = append(data.Delegates, d)
	}
	if err := dRows.Err(); err != nil {
		return data, err
	}

	mRows, err := s.db.Query(`SELECT project_id, emails_sent, open_rate, social_posts,
		social_impressions, ad_spend, ad_clicks, website_visits FROM marketing ORDER BY project_id`)
	if err != nil {
		return data, err
	}
	defer func() { _ = mRows.Close() }()
	for mRows.Next() {
		var m model.Marketing
		if err := mRows.Scan(&m.ProjectID, &m.EmailsSent, &m.OpenRate, &m.SocialPosts,
			&m.SocialImpressions, &m.AdSpend, &m.AdClicks, &m.WebsiteVisits); err != nil {
			return data, err
		}
		data.Marketing = append(data.Marketing, m)
	}
	if err := mRows.Err(); err != nil {
		return data, err
	}

	eRows, err := s.db.Query(`SELECT project_id, category, amount, description FROM expenses ORDER BY rowid_ord`)
	if err != nil {
		return data, err
	}
	defer func() { _ = eRows.Close() }()
	for eRows.Next() {
		var e model.Expense
		var desc sql.NullString
		if err := eRows.Scan(&e.ProjectID, &e.Category, &e.Amount, &desc); err != nil {
			return data, err
		}
		e.Description = desc.String
		data.Expenses = append(data.Expenses, e)
	}
	return data, eRows.Err()
}

// LoadMeta returns snapshot provenance, or ok=false when no snapshot
// has ever been saved.
func (s *Snapshot) LoadMeta() (Meta, bool, error) {
	var meta Meta
	var fetchedAt string
	err := s.db.QueryRow(`SELECT fetched_at, source, coerced_cells FROM snapshot_meta WHERE id = 1`).
		Scan(&fetchedAt, &meta.Source, &meta.Coerced)
	if err == sql.ErrNoRows {
		return meta, false, nil
	}
	if err != nil {
		return meta, false, err
	}
	meta.FetchedAt, _ = time.Parse(time.RFC3339, fetchedAt)
	return meta, true, nil
}
