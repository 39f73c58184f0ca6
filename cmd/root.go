package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/evhq/horizon/internal/config"
	"github.com/evhq/horizon/internal/dataset"
	"github.com/evhq/horizon/internal/model"
	"github.com/evhq/horizon/internal/pipeline"
	"github.com/evhq/horizon/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagProject string
	flagStatus  string
	flagFrom    string
	flagTo      string
	flagTheme   string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "horizon",
	Short: "Event portfolio analytics",
	Long:  "Track your event portfolio from the terminal: revenue, sponsors, delegates, marketing, and budgets.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", pipeline.All, "Filter to one project (exact name)")
	rootCmd.PersistentFlags().StringVarP(&flagStatus, "status", "s", pipeline.All, "Filter by status (On Track, Critical, Completed)")
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "Earliest event date, YYYY-MM-DD")
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", "Latest event date, YYYY-MM-DD")
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadData is the shared data loading path used by all commands: the last
// fetched snapshot when one exists, the built-in demo portfolio otherwise.
func loadData() (*dataset.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	dbPath := config.SnapshotPath(cfg)
	if !store.Exists(dbPath) {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  No snapshot yet, using demo portfolio. Run `horizon fetch` to pull real data.\n")
		}
		return dataset.New(dataset.Seed()), cfg, nil
	}

	snap, err := store.Open(dbPath)
	if err != nil {
		// Unreadable snapshot falls back to the demo portfolio.
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Snapshot unreadable (%v), using demo portfolio\n", err)
		}
		return dataset.New(dataset.Seed()), cfg, nil
	}
	defer func() { _ = snap.Close() }()

	data, err := snap.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Snapshot load failed (%v), using demo portfolio\n", err)
		}
		return dataset.New(dataset.Seed()), cfg, nil
	}

	if !flagQuiet {
		if meta, ok, _ := snap.LoadMeta(); ok {
			fmt.Fprintf(os.Stderr, "  Loaded %d projects from snapshot (fetched %s)\n",
				len(data.Projects), meta.FetchedAt.Format("Jan 2 15:04"))
		} else {
			fmt.Fprintf(os.Stderr, "  Loaded %d projects from snapshot\n", len(data.Projects))
		}
	}

	return dataset.New(data), cfg, nil
}

// buildFilter translates the persistent flags into a pipeline filter.
func buildFilter() (pipeline.Filter, error) {
	f := pipeline.NewFilter()
	if flagProject != "" {
		f.Project = flagProject
	}
	if flagStatus != "" {
		f.Status = flagStatus
	}
	if flagFrom != "" {
		t, err := time.Parse("2006-01-02", flagFrom)
		if err != nil {
			return f, fmt.Errorf("invalid --from date %q (want YYYY-MM-DD)", flagFrom)
		}
		f.From = t
	}
	if flagTo != "" {
		t, err := time.Parse("2006-01-02", flagTo)
		if err != nil {
			return f, fmt.Errorf("invalid --to date %q (want YYYY-MM-DD)", flagTo)
		}
		f.To = t
	}
	return f, nil
}

// applyFilter narrows the dataset per the persistent flags.
func applyFilter(data model.Dataset) (model.Dataset, error) {
	f, err := buildFilter()
	if err != nil {
		return data, err
	}
	return pipeline.Apply(data, f), nil
}
