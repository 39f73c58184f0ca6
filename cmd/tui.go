package cmd

import (
	"fmt"

	"github.com/evhq/horizon/internal/tui"
	"github.com/evhq/horizon/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// runDashboard is the root command: the full-screen dashboard.
func runDashboard(_ *cobra.Command, _ []string) error {
	ds, cfg, err := loadData()
	if err != nil {
		return err
	}

	themeName := cfg.Appearance.Theme
	if flagTheme != "" {
		themeName = flagTheme
	}
	theme.SetActive(themeName)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	f, err := buildFilter()
	if err != nil {
		return err
	}

	app := tui.NewApp(ds, cfg, f)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
