// Package tui provides the interactive Bubble Tea dashboard for horizon.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/evhq/horizon/internal/config"
	"github.com/evhq/horizon/internal/dataset"
	"github.com/evhq/horizon/internal/gemini"
	"github.com/evhq/horizon/internal/model"
	"github.com/evhq/horizon/internal/pipeline"
	"github.com/evhq/horizon/internal/tui/components"
	"github.com/evhq/horizon/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// InsightMsg is sent when the portfolio insight request completes.
type InsightMsg struct {
	Insight *gemini.PortfolioInsight
	Err     error
}

// DeepDiveMsg is sent when a project deep dive request completes.
type DeepDiveMsg struct {
	ProjectID string
	Dive      *gemini.DeepDive
	Err       error
}

// liveTickMsg drives the live-mode simulation. gen guards against ticks
// from a previous live session arriving after a toggle.
type liveTickMsg struct {
	gen int
}

// App is the root Bubble Tea model.
type App struct {
	store *dataset.Store
	cfg   config.Config

	// Filter state
	filter       pipeline.Filter
	projectNames []string
	statusNames  []string
	projectIdx   int
	statusIdx    int

	// Pre-computed for current filter
	data      model.Dataset
	stats     model.PortfolioStats
	rows      []model.ProjectRow
	fin       model.FinancialStats
	breakdown []model.ExpenseCategory
	mkt       model.MarketingStats
	trend     []model.DelegateTrendPoint
	funnel    []model.FunnelStage
	alerts    []model.Alert

	// Live mode
	live         bool
	liveGen      int
	liveInterval time.Duration

	// AI state
	ai             *gemini.Client
	insight        *gemini.PortfolioInsight
	insightErr     string
	insightLoading bool
	dive           *gemini.DeepDive
	diveProject    string // project name shown in the overlay
	diveErr        string
	diveLoading    bool
	showDive       bool

	// UI state
	width      int
	height     int
	activeTab  int
	showHelp   bool
	gridCursor int
	spinner    spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
)

// NewApp creates the dashboard model over an already-loaded store.
func NewApp(store *dataset.Store, cfg config.Config, filter pipeline.Filter) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	interval := time.Duration(cfg.General.LiveIntervalSeconds) * time.Second
	if interval < time.Second {
		interval = 3 * time.Second
	}

	a := App{
		store:        store,
		cfg:          cfg,
		filter:       filter,
		liveInterval: interval,
		ai:           gemini.NewClient(config.GetAIKey(cfg), cfg.AI.BaseURL),
		spinner:      sp,
		needSetup:    !config.Exists(),
	}
	a.syncFilterIndexes()
	a.recompute()

	if a.needSetup {
		a.setupForm = newSetupForm(len(store.Data().Projects), &a.setupVals)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// syncFilterIndexes aligns the cycling indexes with the current filter.
func (a *App) syncFilterIndexes() {
	a.projectNames = pipeline.ProjectNames(a.store.Data())
	a.statusNames = pipeline.StatusNames()

	a.projectIdx = 0
	for i, name := range a.projectNames {
		if name == a.filter.Project {
			a.projectIdx = i
			break
		}
	}
	a.statusIdx = 0
	for i, name := range a.statusNames {
		if name == a.filter.Status {
			a.statusIdx = i
			break
		}
	}
}

func (a *App) recompute() {
	a.data = pipeline.Apply(a.store.Data(), a.filter)

	a.stats = pipeline.Aggregate(a.data)
	a.rows = pipeline.ProjectRows(a.data)
	a.fin = pipeline.Financials(a.data)
	a.breakdown = pipeline.ExpenseBreakdown(a.data.Expenses)
	a.mkt = pipeline.AggregateMarketing(a.data.Marketing)
	a.trend = pipeline.DelegateTrend(a.data.Delegates)
	a.funnel = pipeline.SponsorFunnel(a.data.Sponsors)
	a.alerts = pipeline.EvaluateAlerts(a.data, time.Now())

	// Clamp grid cursor to the new row count
	if a.gridCursor >= len(a.rows) {
		a.gridCursor = len(a.rows) - 1
	}
	if a.gridCursor < 0 {
		a.gridCursor = 0
	}
}

// cursorProject returns the project under the grid cursor, ok=false when
// the grid is empty.
func (a App) cursorProject() (model.Project, bool) {
	if a.gridCursor < 0 || a.gridCursor >= len(a.rows) {
		return model.Project{}, false
	}
	return a.rows[a.gridCursor].Project, true
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.showDive || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 4 && a.gridCursor > 0 {
				a.gridCursor--
			}
			return a, nil
		case tea.MouseButtonWheelDown:
			if a.activeTab == 4 && a.gridCursor < len(a.rows)-1 {
				a.gridCursor++
			}
			return a, nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case liveTickMsg:
		// Stale ticks from a previous live session are dropped.
		if !a.live || msg.gen != a.liveGen {
			return a, nil
		}
		a.store.SimulateRegistration()
		a.recompute()
		return a, liveTickCmd(a.liveInterval, a.liveGen)

	case InsightMsg:
		a.insightLoading = false
		if msg.Err != nil {
			a.insightErr = msg.Err.Error()
			a.insight = nil
		} else {
			a.insightErr = ""
			a.insight = msg.Insight
		}
		return a, nil

	case DeepDiveMsg:
		a.diveLoading = false
		if msg.Err != nil {
			a.diveErr = msg.Err.Error()
			a.dive = nil
		} else {
			a.diveErr = ""
			a.dive = msg.Dive
		}
		return a, nil

	case spinner.TickMsg:
		if a.insightLoading || a.diveLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Deep dive overlay: any close key dismisses it
	if a.showDive {
		if key == "esc" || key == "q" || key == "enter" {
			a.showDive = false
		}
		return a, nil
	}

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Grid tab has its own keybindings
	if a.activeTab == 4 {
		if handled, next, cmd := a.updateGridKey(key); handled {
			return next, cmd
		}
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "p":
		a.projectIdx = (a.projectIdx + 1) % len(a.projectNames)
		a.filter.Project = a.projectNames[a.projectIdx]
		a.recompute()
		return a, nil

	case "s":
		a.statusIdx = (a.statusIdx + 1) % len(a.statusNames)
		a.filter.Status = a.statusNames[a.statusIdx]
		a.recompute()
		return a, nil

	case "L":
		a.live = !a.live
		a.liveGen++
		if a.live {
			return a, liveTickCmd(a.liveInterval, a.liveGen)
		}
		return a, nil

	case "i":
		if a.ai == nil {
			a.insightErr = "no Gemini API key configured (run `horizon setup`)"
			a.activeTab = 0
			return a, nil
		}
		if a.insightLoading {
			return a, nil
		}
		a.insightLoading = true
		a.insightErr = ""
		a.activeTab = 0
		return a, tea.Batch(a.spinner.Tick, insightCmd(a.ai, a.data))

	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

// updateGridKey handles the grid tab's cursor and mutation keys. Returns
// handled=false for keys the global handler should see.
func (a App) updateGridKey(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.gridCursor < len(a.rows)-1 {
			a.gridCursor++
		}
		return true, a, nil

	case "k", "up":
		if a.gridCursor > 0 {
			a.gridCursor--
		}
		return true, a, nil

	case "t":
		if p, ok := a.cursorProject(); ok {
			a.store.UpdateStatus(p.ID, nextStatus(p.Status))
			a.recompute()
		}
		return true, a, nil

	case "+", "=":
		if p, ok := a.cursorProject(); ok {
			a.store.AdjustSpeakerActual(p.ID, 1)
			a.recompute()
		}
		return true, a, nil

	case "-", "_":
		if p, ok := a.cursorProject(); ok {
			a.store.AdjustSpeakerActual(p.ID, -1)
			a.recompute()
		}
		return true, a, nil

	case "d":
		if p, ok := a.cursorProject(); ok {
			a.store.QuickAddDelegates(p.ID)
			a.recompute()
		}
		return true, a, nil

	case "n":
		if p, ok := a.cursorProject(); ok {
			a.store.AppendSponsor(p.ID)
			a.recompute()
		}
		return true, a, nil

	case "enter":
		p, ok := a.cursorProject()
		if !ok {
			return true, a, nil
		}
		if a.ai == nil {
			a.diveErr = "no Gemini API key configured (run `horizon setup`)"
			a.dive = nil
			a.diveProject = p.Name
			a.showDive = true
			return true, a, nil
		}
		if a.diveLoading {
			return true, a, nil
		}
		a.diveLoading = true
		a.diveErr = ""
		a.dive = nil
		a.diveProject = p.Name
		a.showDive = true
		return true, a, tea.Batch(a.spinner.Tick, deepDiveCmd(a.ai, p, a.data))
	}
	return false, a, nil
}

// nextStatus cycles a project status in display order.
func nextStatus(s model.ProjectStatus) model.ProjectStatus {
	for i, st := range model.AllStatuses {
		if st == s {
			return model.AllStatuses[(i+1)%len(model.AllStatuses)]
		}
	}
	return model.StatusOnTrack
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.ai = gemini.NewClient(config.GetAIKey(a.cfg), a.cfg.AI.BaseURL)
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// ─── Commands ───────────────────────────────────────────────────

func liveTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return liveTickMsg{gen: gen}
	})
}

func insightCmd(client *gemini.Client, data model.Dataset) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		insight, err := client.PortfolioInsight(ctx, data)
		return InsightMsg{Insight: insight, Err: err}
	}
}

func deepDiveCmd(client *gemini.Client, p model.Project, data model.Dataset) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		dive, err := client.ProjectDeepDive(ctx, p, data, time.Now())
		return DeepDiveMsg{ProjectID: p.ID, Dive: dive, Err: err}
	}
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if a.showDive {
		return a.viewDeepDive()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  horizon needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o c m b g a", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move grid cursor"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-11s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Filters & Data"))
	b.WriteString("\n")
	filterBindings := []struct{ key, desc string }{
		{"p", "Cycle project filter"},
		{"s", "Cycle status filter"},
		{"L", "Toggle live registrations"},
		{"i", "AI portfolio insight"},
	}
	for _, bind := range filterBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-11s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Grid Actions"))
	b.WriteString("\n")
	gridBindings := []struct{ key, desc string }{
		{"t", "Cycle project status"},
		{"+ -", "Adjust confirmed speakers"},
		{"d", "Quick-add 5 delegates"},
		{"n", "Add sponsor lead"},
		{"Enter", "AI deep dive"},
	}
	for _, bind := range gridBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-11s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + filter pill
	filterPillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	filterAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	filterStr := filterPillStyle.Render(" ") +
		filterAccentStyle.Render(a.filter.Project) +
		filterPillStyle.Render(" │ ") +
		filterAccentStyle.Render(a.filter.Status)
	if !a.filter.From.IsZero() || !a.filter.To.IsZero() {
		filterStr += filterPillStyle.Render(" │ ") +
			filterAccentStyle.Render(fmt.Sprintf("%s → %s",
				a.filter.From.Format("2006-01-02"), a.filter.To.Format("2006-01-02")))
	}
	filterStr += filterPillStyle.Render(" ")

	filterRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		filterRowStyle.Render(filterStr)

	// 2. Status bar
	critical := 0
	for _, al := range a.alerts {
		if al.Severity == model.SeverityCritical {
			critical++
		}
	}
	statusBar := components.RenderStatusBar(w, a.live, critical, len(a.alerts))

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderChartsTab(cw)
	case 2:
		content = a.renderMarketingTab(cw)
	case 3:
		content = a.renderBudgetTab(cw)
	case 4:
		content = a.renderGridTab(cw, contentH)
	case 5:
		content = a.renderAlertsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Ensure the entire terminal is filled with background
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
