package cmd

import (
	"fmt"

	"github.com/evhq/horizon/internal/cli"
	"github.com/evhq/horizon/internal/pipeline"

	"github.com/spf13/cobra"
)

var marketingCmd = &cobra.Command{
	Use:   "marketing",
	Short: "Campaign performance: emails, social, ads, web traffic",
	RunE:  runMarketing,
}

func init() {
	rootCmd.AddCommand(marketingCmd)
}

func runMarketing(_ *cobra.Command, _ []string) error {
	ds, _, err := loadData()
	if err != nil {
		return err
	}

	data, err := applyFilter(ds.Data())
	if err != nil {
		return err
	}
	if len(data.Marketing) == 0 {
		fmt.Println("\n  No marketing data for the current filter.")
		return nil
	}

	stats := pipeline.AggregateMarketing(data.Marketing)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MARKETING"))
	fmt.Println()

	rows := [][]string{
		{"Emails Sent", cli.FormatNumber(int64(stats.EmailsSent))},
		{"Avg Open Rate", cli.FormatPercent(stats.AvgOpenRate)},
		{"---"},
		{"Social Impressions", cli.FormatCount(int64(stats.SocialImpressions))},
		{"Website Visits", cli.FormatCount(int64(stats.WebsiteVisits))},
		{"---"},
		{"Ad Spend", cli.FormatMoney(stats.AdSpend)},
		{"Ad Clicks", cli.FormatNumber(int64(stats.AdClicks))},
		{"CTR", fmt.Sprintf("%.2f%%", stats.CTR)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Per-project campaign list when any project carries campaigns.
	var campaignRows [][]string
	for _, m := range data.Marketing {
		for _, c := range m.Campaigns {
			campaignRows = append(campaignRows, []string{
				truncate(c.Name, 24), c.Channel, c.Status, c.Metric, c.Date,
			})
		}
	}
	if len(campaignRows) > 0 {
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Campaigns",
			Headers: []string{"Campaign", "Channel", "Status", "Result", "Date"},
			Rows:    campaignRows,
		}))
	}

	return nil
}
