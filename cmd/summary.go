package cmd

import (
	"fmt"
	"time"

	"github.com/evhq/horizon/internal/cli"
	"github.com/evhq/horizon/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Portfolio rollup: revenue, pipeline, speakers, delegates",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	ds, _, err := loadData()
	if err != nil {
		return err
	}

	data, err := applyFilter(ds.Data())
	if err != nil {
		return err
	}
	if len(data.Projects) == 0 {
		fmt.Println("\n  No projects match the current filter.")
		return nil
	}

	stats := pipeline.Aggregate(data)
	alerts := pipeline.EvaluateAlerts(data, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle("EVENT PORTFOLIO"))
	fmt.Println()

	targetPct := "-"
	if stats.RevenueTarget > 0 {
		targetPct = cli.FormatPercent(stats.RevenueEffective / stats.RevenueTarget)
	}

	rows := [][]string{
		{"Projects", fmt.Sprintf("%d (%d active, %d critical)",
			stats.ProjectCount, stats.ActiveProjects, stats.CriticalProjects)},
		{"---"},
		{"Revenue Target", cli.FormatMoney(stats.RevenueTarget)},
		{"Revenue Secured", fmt.Sprintf("%s  (%s of target)", cli.FormatMoney(stats.RevenueEffective), targetPct)},
		{"Revenue Gap", cli.FormatMoney(stats.RevenueGap)},
		{"---"},
		{"Sponsor Pipeline", cli.FormatMoney(stats.PipelineValue)},
		{"Weighted Pipeline", cli.FormatMoney(stats.WeightedPipeline)},
		{"Sponsors", fmt.Sprintf("%d (%d signed)", stats.SponsorCount, stats.SignedSponsors)},
		{"---"},
		{"Speakers", fmt.Sprintf("%d / %d (%s)",
			stats.SpeakersConfirmed, stats.SpeakersTarget, cli.FormatPercent(stats.SpeakerFillRate))},
		{"Delegates", cli.FormatNumber(int64(stats.TotalDelegates))},
		{"Active Alerts", fmt.Sprintf("%d", len(alerts))},
	}

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}

	fmt.Print(cli.RenderTable(table))

	return nil
}
