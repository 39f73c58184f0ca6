package cmd

import (
	"fmt"
	"time"

	"github.com/evhq/horizon/internal/cli"
	"github.com/evhq/horizon/internal/pipeline"

	"github.com/spf13/cobra"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Active health alerts, most severe first",
	RunE:  runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(_ *cobra.Command, _ []string) error {
	ds, _, err := loadData()
	if err != nil {
		return err
	}

	data, err := applyFilter(ds.Data())
	if err != nil {
		return err
	}

	alerts := pipeline.EvaluateAlerts(data, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle("ALERTS"))
	fmt.Println()

	if len(alerts) == 0 {
		fmt.Println("  All clear. No alerts for the current filter.")
		return nil
	}

	for _, a := range alerts {
		fmt.Printf("  %s  %s  [%s]\n", cli.RenderSeverity(a.Severity), a.Title, a.Metric)
		fmt.Printf("            %s\n\n", a.Message)
	}

	return nil
}
