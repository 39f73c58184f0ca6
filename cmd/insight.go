package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/evhq/horizon/internal/cli"
	"github.com/evhq/horizon/internal/config"
	"github.com/evhq/horizon/internal/gemini"
	"github.com/evhq/horizon/internal/model"

	"github.com/spf13/cobra"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "AI portfolio analysis (or a per-project deep dive with --project)",
	RunE:  runInsight,
}

func init() {
	rootCmd.AddCommand(insightCmd)
}

func runInsight(_ *cobra.Command, _ []string) error {
	ds, cfg, err := loadData()
	if err != nil {
		return err
	}

	client := gemini.NewClient(config.GetAIKey(cfg), cfg.AI.BaseURL)
	if client == nil {
		return fmt.Errorf("no Gemini API key configured; set GEMINI_API_KEY or run `horizon setup`")
	}

	data, err := applyFilter(ds.Data())
	if err != nil {
		return err
	}
	if len(data.Projects) == 0 {
		fmt.Println("\n  No projects match the current filter.")
		return nil
	}

	// A single-project filter gets the deep dive treatment.
	if len(data.Projects) == 1 && flagProject == data.Projects[0].Name {
		return runDeepDive(client, data.Projects[0], data)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("AI PORTFOLIO INSIGHT"))
	fmt.Println()
	fmt.Println("  Analyzing portfolio...")

	insight, err := client.PortfolioInsight(context.Background(), data)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Summary         %s\n\n", insight.Summary)
	fmt.Printf("  Biggest Risk    %s\n\n", insight.Risk)
	fmt.Printf("  Recommendation  %s\n", insight.Recommendation)
	fmt.Println()
	return nil
}

func runDeepDive(client *gemini.Client, p model.Project, data model.Dataset) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("DEEP DIVE: " + p.Name))
	fmt.Println()
	fmt.Println("  Analyzing project...")

	dive, err := client.ProjectDeepDive(context.Background(), p, data, time.Now())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Status Assessment\n  %s\n\n", dive.StatusAssessment)
	fmt.Println("  Action Plan")
	for _, step := range dive.ActionPlan {
		fmt.Printf("   • %s\n", step)
	}
	fmt.Println()
	fmt.Printf("  Stakeholder Email Draft\n\n%s\n", indent(dive.EmailDraft, "  "))
	return nil
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
