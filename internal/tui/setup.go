package tui

import (
	"fmt"
	"strings"

	"github.com/evhq/horizon/internal/config"
	"github.com/evhq/horizon/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	SpreadsheetID string
	SheetsKey     string
	AIKey         string
	Theme         string
}

// newSetupForm builds the first-run wizard shown when no config exists.
func newSetupForm(projectCount int, vals *setupValues) *huh.Form {
	vals.Theme = "dusk"

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to horizon!").
				Description(fmt.Sprintf(
					"The demo portfolio has %d projects loaded.\nA few optional settings and you're in.", projectCount)),

			huh.NewInput().
				Title("Google Sheets spreadsheet ID").
				Description("Workbook holding your portfolio. Blank keeps the demo data.").
				Value(&vals.SpreadsheetID),

			huh.NewInput().
				Title("Google API key").
				Description("Read access to the workbook (or set HORIZON_SHEETS_KEY).").
				EchoMode(huh.EchoModePassword).
				Value(&vals.SheetsKey),

			huh.NewInput().
				Title("Gemini API key").
				Description("Enables AI insights and deep dives (or set GEMINI_API_KEY).").
				EchoMode(huh.EchoModePassword).
				Value(&vals.AIKey),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&vals.Theme),
		),
	)
}

// saveSetupConfig persists the form answers and applies the theme.
func (a *App) saveSetupConfig() {
	cfg := a.cfg

	if v := strings.TrimSpace(a.setupVals.SpreadsheetID); v != "" {
		cfg.Sheets.SpreadsheetID = v
	}
	if v := strings.TrimSpace(a.setupVals.SheetsKey); v != "" {
		cfg.Sheets.APIKey = v
	}
	if v := strings.TrimSpace(a.setupVals.AIKey); v != "" {
		cfg.AI.APIKey = v
	}
	if a.setupVals.Theme != "" {
		cfg.Appearance.Theme = a.setupVals.Theme
		theme.SetActive(cfg.Appearance.Theme)
	}

	// Best-effort save; the session keeps the settings either way.
	_ = config.Save(cfg)
	a.cfg = cfg
}
