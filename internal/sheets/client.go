// Package sheets loads the portfolio from a Google Sheets workbook.
//
// The workbook holds one tab per collection (Projects, Sponsors,
// Delegates, Marketing, Expenses) with fixed column positions and a
// header row. Cells are coerced leniently: a bad numeric cell becomes
// zero and bumps the load's coercion counter rather than failing the
// whole fetch.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/evhq/horizon/internal/model"
)

// Tab names expected in the workbook.
const (
	tabProjects  = "Projects"
	tabSponsors  = "Sponsors"
	tabDelegates = "Delegates"
	tabMarketing = "Marketing"
	tabExpenses  = "Expenses"
)

// Client reads workbook tabs through the Sheets values API.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// LoadResult is a fetched dataset plus data-quality counters.
type LoadResult struct {
	Dataset model.Dataset
	// Coerced counts cells that failed numeric parsing and fell back
	// to a zero value. Nonzero means the sheet needs attention.
	Coerced int
}

// NewClient builds a read-only Sheets client. The API key grants access
// to public workbooks; no OAuth flow is involved.
func NewClient(ctx context.Context, spreadsheetID, apiKey string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is empty")
	}
	svc, err := sheetsapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Load fetches every tab and assembles the dataset. A tab that is
// missing or empty contributes an empty collection.
func (c *Client) Load(ctx context.Context) (LoadResult, error) {
	var res LoadResult
	p := newParser()

	rows, err := c.tab(ctx, tabProjects)
	if err != nil {
		return res, err
	}
	res.Dataset.Projects = p.parseProjects(rows)

	rows, err = c.tab(ctx, tabSponsors)
	if err != nil {
		return res, err
	}
	res.Dataset.Sponsors = p.parseSponsors(rows)

	rows, err = c.tab(ctx, tabDelegates)
	if err != nil {
		return res, err
	}
	res.Dataset.Delegates = p.parseDelegates(rows)

	rows, err = c.tab(ctx, tabMarketing)
	if err != nil {
		return res, err
	}
	res.Dataset.Marketing = p.parseMarketing(rows)

	rows, err = c.tab(ctx, tabExpenses)
	if err != nil {
		return res, err
	}
	res.Dataset.Expenses = p.parseExpenses(rows)

	res.Coerced = p.coerced
	return res, nil
}

// tab fetches one sheet's full value range as string cells.
func (c *Client) tab(ctx context.Context, name string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, name).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching %s tab: %w", name, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
