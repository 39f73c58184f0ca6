package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/evhq/horizon/internal/config"
	"github.com/evhq/horizon/internal/export"
	"github.com/evhq/horizon/internal/gemini"
	"github.com/evhq/horizon/internal/model"

	"github.com/spf13/cobra"
)

var flagExportDir string

var exportCmd = &cobra.Command{
	Use:   "export [projects|sponsors|delegates|marketing|complete|report]",
	Short: "Export the filtered portfolio as CSV or an HTML report",
	Long: `Export the filtered portfolio to a dated file.

  projects|sponsors|delegates|marketing   one collection as CSV
  complete                                one-row-per-project management CSV
  report                                  printable HTML executive summary`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportDir, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	ds, cfg, err := loadData()
	if err != nil {
		return err
	}

	data, err := applyFilter(ds.Data())
	if err != nil {
		return err
	}

	now := time.Now()
	var name, content string

	switch args[0] {
	case "projects":
		name, content = export.Filename("projects", now), export.ProjectsCSV(data.Projects)
	case "sponsors":
		name, content = export.Filename("sponsors", now), export.SponsorsCSV(data.Sponsors)
	case "delegates":
		name, content = export.Filename("delegates", now), export.DelegatesCSV(data.Delegates)
	case "marketing":
		name, content = export.Filename("marketing", now), export.MarketingCSV(data.Marketing)
	case "complete":
		name, content = export.Filename("complete_report", now), export.CompleteCSV(data)
	case "report":
		name = fmt.Sprintf("executive_summary_%s.html", now.Format("2006-01-02"))
		content, err = buildReport(data, cfg, now)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export target %q", args[0])
	}

	path, err := export.WriteFile(flagExportDir, name, content)
	if err != nil {
		return err
	}
	fmt.Printf("  Exported %s\n", path)
	return nil
}

// buildReport renders the executive summary, attaching an AI analysis
// section when a Gemini key is configured.
func buildReport(data model.Dataset, cfg config.Config, now time.Time) (string, error) {
	var insight *gemini.PortfolioInsight
	if client := gemini.NewClient(config.GetAIKey(cfg), cfg.AI.BaseURL); client != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Generating AI analysis...\n")
		}
		got, err := client.PortfolioInsight(context.Background(), data)
		if err != nil {
			// The report is still useful without the analysis.
			fmt.Fprintf(os.Stderr, "  AI analysis unavailable: %v\n", err)
		} else {
			insight = got
		}
	}
	return export.ExecutiveSummaryHTML(data, insight, now)
}
