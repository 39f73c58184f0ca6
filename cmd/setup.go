package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/evhq/horizon/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to horizon!")
	fmt.Println()
	fmt.Println("  Leave any answer blank to keep the current value.")
	fmt.Println()

	// 1. Spreadsheet
	fmt.Println("  1. Google Sheets spreadsheet ID")
	fmt.Println("     The workbook holding your portfolio. Blank = built-in demo data.")
	if cfg.Sheets.SpreadsheetID != "" {
		fmt.Printf("     Current: %s\n", cfg.Sheets.SpreadsheetID)
	}
	fmt.Print("     > ")
	sheetID, _ := reader.ReadString('\n')
	sheetID = strings.TrimSpace(sheetID)
	if sheetID != "" {
		cfg.Sheets.SpreadsheetID = sheetID
	}
	fmt.Println()

	// 2. Sheets API key
	fmt.Println("  2. Google API key")
	fmt.Println("     Read access to the workbook. Also settable via HORIZON_SHEETS_KEY.")
	if existing := config.GetSheetsAPIKey(cfg); existing != "" {
		fmt.Printf("     Current: %s\n", maskAPIKey(existing))
	}
	fmt.Print("     > ")
	sheetsKey, _ := reader.ReadString('\n')
	sheetsKey = strings.TrimSpace(sheetsKey)
	if sheetsKey != "" {
		cfg.Sheets.APIKey = sheetsKey
	}
	fmt.Println()

	// 3. Gemini API key
	fmt.Println("  3. Gemini API key")
	fmt.Println("     Enables AI insights and deep dives. Also settable via GEMINI_API_KEY.")
	if existing := config.GetAIKey(cfg); existing != "" {
		fmt.Printf("     Current: %s\n", maskAPIKey(existing))
	}
	fmt.Print("     > ")
	aiKey, _ := reader.ReadString('\n')
	aiKey = strings.TrimSpace(aiKey)
	if aiKey != "" {
		cfg.AI.APIKey = aiKey
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Dusk [default]")
	fmt.Println("     (2) Gala")
	fmt.Println("     (3) Daybreak (light)")
	fmt.Println("     (4) Mono (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "gala"
	case "3":
		cfg.Appearance.Theme = "daybreak"
	case "4":
		cfg.Appearance.Theme = "mono"
	default:
		cfg.Appearance.Theme = "dusk"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	if cfg.Sheets.SpreadsheetID != "" {
		fmt.Println("  Run `horizon fetch` to pull your portfolio.")
	}
	fmt.Println("  Run `horizon setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
