package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/evhq/horizon/internal/config"
	"github.com/evhq/horizon/internal/sheets"
	"github.com/evhq/horizon/internal/store"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Pull the portfolio from Google Sheets and snapshot it locally",
	RunE:  runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("no spreadsheet configured; run `horizon setup` first")
	}

	ctx := context.Background()
	client, err := sheets.NewClient(ctx, cfg.Sheets.SpreadsheetID, config.GetSheetsAPIKey(cfg))
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Fetching workbook %s...\n", cfg.Sheets.SpreadsheetID)
	}
	res, err := client.Load(ctx)
	if err != nil {
		return err
	}

	snap, err := store.Open(config.SnapshotPath(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = snap.Close() }()

	meta := store.Meta{
		FetchedAt: time.Now(),
		Source:    cfg.Sheets.SpreadsheetID,
		Coerced:   res.Coerced,
	}
	if err := snap.Save(res.Dataset, meta); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	d := res.Dataset
	fmt.Printf("  Saved snapshot: %d projects, %d sponsors, %d delegate logs, %d marketing rows, %d expenses\n",
		len(d.Projects), len(d.Sponsors), len(d.Delegates), len(d.Marketing), len(d.Expenses))
	if res.Coerced > 0 {
		fmt.Fprintf(os.Stderr, "  %d cells could not be parsed and fell back to defaults\n", res.Coerced)
	}

	return nil
}
