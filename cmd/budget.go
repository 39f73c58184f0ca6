package cmd

import (
	"fmt"

	"github.com/evhq/horizon/internal/cli"
	"github.com/evhq/horizon/internal/pipeline"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Financial posture: revenue, expenses, profit, budget burn",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
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

	fin := pipeline.Financials(data)
	breakdown := pipeline.ExpenseBreakdown(data.Expenses)

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET & FINANCIALS"))
	fmt.Println()

	rows := [][]string{
		{"Revenue", cli.FormatMoney(fin.Revenue)},
		{"Expenses", cli.FormatMoney(fin.Expenses)},
		{"Profit", cli.FormatMoney(fin.Profit)},
		{"Profit Margin", fmt.Sprintf("%.1f%%", fin.ProfitMargin)},
		{"---"},
		{"Budget Total", cli.FormatMoney(fin.BudgetTotal)},
		{"Budget Used", fmt.Sprintf("%.1f%%", fin.BudgetUtilization)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if len(breakdown) > 0 {
		fmt.Println()
		fmt.Println("  Expenses by category")
		maxAmount := breakdown[0].Amount
		for _, cat := range breakdown {
			fmt.Println(cli.RenderHorizontalBar(cat.Category, cli.FormatMoneyCompact(cat.Amount), cat.Amount, maxAmount, 30))
		}
		fmt.Println()
	}

	return nil
}
