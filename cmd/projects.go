package cmd

import (
	"fmt"

	"github.com/evhq/horizon/internal/cli"
	"github.com/evhq/horizon/internal/pipeline"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Per-project grid: revenue, speakers, delegates, sponsors",
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
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

	rows := pipeline.ProjectRows(data)

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECTS"))
	fmt.Println()

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		p := r.Project
		tableRows = append(tableRows, []string{
			truncate(p.Name, 24),
			cli.FormatEventDate(p.EventDate),
			string(p.Status),
			cli.FormatMoneyCompact(r.EffectiveRevenue),
			cli.FormatMoneyCompact(p.RevenueTarget),
			fmt.Sprintf("%d/%d", p.SpeakersConfirmed, p.SpeakersTarget),
			fmt.Sprintf("%d", r.Delegates),
			fmt.Sprintf("%d/%d", r.SignedCount, r.SponsorCount),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Project", "Date", "Status", "Revenue", "Target", "Speakers", "Delegates", "Signed"},
		Rows:    tableRows,
	}))

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
