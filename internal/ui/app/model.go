package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "roadmap/internal/modules/catalog/dto"
	progressdto "roadmap/internal/modules/progress/dto"
	reportdto "roadmap/internal/modules/report/dto"
	trackingdto "roadmap/internal/modules/tracking/dto"
	"roadmap/internal/ui/components"
	"roadmap/internal/ui/theme"
	dashboardview "roadmap/internal/ui/views/dashboard"
	goalsview "roadmap/internal/ui/views/goals"
	roadmapview "roadmap/internal/ui/views/roadmap"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type catalogPort interface {
	GetStage(ctx context.Context, id int) (catalogdto.StageOutput, error)
}

type progressPort interface {
	Toggle(ctx context.Context, stageID int, resourceID string) (progressdto.ToggleOutput, error)
	StageProgress(ctx context.Context, stageID int) (progressdto.StageProgressOutput, error)
	Summary(ctx context.Context) (progressdto.SummaryOutput, error)
	Clear(ctx context.Context) error
}

type trackingPort interface {
	goalsview.Port
	SetStatus(ctx context.Context, stageID int, resourceID, status string) (trackingdto.ResourceTrackingOutput, error)
	StageResources(ctx context.Context, stageID int) ([]trackingdto.ResourceTrackingOutput, error)
	AddTime(ctx context.Context, stageID int, resourceID string, minutes int) (trackingdto.ResourceTrackingOutput, error)
	SetSchedule(ctx context.Context, stageID int, startDate, endDate string) (trackingdto.ScheduleOutput, error)
	Schedules(ctx context.Context) ([]trackingdto.ScheduleOutput, error)
	Analytics(ctx context.Context) (trackingdto.AnalyticsOutput, error)
}

type reportPort interface {
	Export(ctx context.Context) (reportdto.ExportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabRoadmap tabID = iota
	tabDashboard
	tabGoals
	tabCount
)

var tabLabels = [tabCount]string{"Roadmap", "Dashboard", "Goals"}

var paletteHints = []string{
	"goal:add <YYYY-MM-DD> <title>",
	"checklist:add <title>",
	"schedule:set <stage> <start> <end>",
	"time:add <minutes>",
	"progress:clear",
	"report:export",
	"tab:roadmap",
	"tab:dashboard",
	"tab:goals",
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Focus   key.Binding
	Toggle  key.Binding
	Status  key.Binding
	Time    key.Binding
	Add     key.Binding
	Delete  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Focus:   key.NewBinding(key.WithKeys("right", "left"), key.WithHelp("←/→", "stages/resources")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Status:  key.NewBinding(key.WithKeys("w", "c", "n"), key.WithHelp("w/c/n", "watching/completed/not started")),
		Time:    key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add 15 min")),
		Add:     key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a/A", "add goal/checklist item")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete goal")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Focus, k.Toggle, k.Status, k.Time},
		{k.Add, k.Delete},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay,
// the command palette and the status bar. Business logic is delegated to
// ports and rendering to sub-views.
type Model struct {
	progress progressPort
	tracking trackingPort
	report   reportPort

	roadmapView   roadmapview.Model
	dashboardView dashboardview.Model
	goalsView     goalsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(catalog catalogPort, progress progressPort, tracking trackingPort, report reportPort) Model {
	return Model{
		progress:      progress,
		tracking:      tracking,
		report:        report,
		roadmapView:   roadmapview.New(roadmapPortBridge{catalog: catalog, progress: progress, tracking: tracking}),
		dashboardView: dashboardview.New(dashboardPortBridge{progress: progress, tracking: tracking}),
		goalsView:     goalsview.New(tracking),
		activeTab:     tabRoadmap,
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(paletteHints),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.roadmapView.Init(),
		m.dashboardView.Init(),
		m.goalsView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	// Load results go to their own view whichever tab is active.
	case roadmapview.SummaryLoadedMsg, roadmapview.StageLoadedMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.roadmapView, cmd = m.roadmapView.Update(msg)
		return m, cmd

	case dashboardview.LoadedMsg:
		var cmd tea.Cmd
		m.dashboardView, cmd = m.dashboardView.Update(msg)
		return m, cmd

	case goalsview.LoadedMsg:
		var cmd tea.Cmd
		m.goalsView, cmd = m.goalsView.Update(msg)
		return m, cmd

	case components.ResultMsg:
		m.status = msg.Status()
		if msg.Changed() {
			return m, m.reloadAll()
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view while it owns the keyboard.
		if m.subViewCapturing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabRoadmap:
		m.roadmapView, tabCmd = m.roadmapView.Update(msg)
	case tabDashboard:
		m.dashboardView, tabCmd = m.dashboardView.Update(msg)
	case tabGoals:
		m.goalsView, tabCmd = m.goalsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabRoadmap:
		return m.roadmapView.View()
	case tabDashboard:
		return m.dashboardView.View()
	case tabGoals:
		return m.goalsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := " " + tabLabels[i] + " "
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(label)
		} else {
			parts[i] = theme.Muted.Render(label)
		}
	}
	bar := "roadmap  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "goal:add":
		if len(parts) < 3 {
			m.status = "usage: goal:add <YYYY-MM-DD> <title>"
			return m, nil
		}
		m.activeTab = tabGoals
		return m, goalsview.AddGoalCmd(m.tracking, strings.Join(parts[1:], " "))

	case "checklist:add":
		if len(parts) < 2 {
			m.status = "usage: checklist:add <title>"
			return m, nil
		}
		title := strings.Join(parts[1:], " ")
		m.activeTab = tabGoals
		return m, components.Result(func() (string, error) {
			_, err := m.tracking.AddChecklistItem(context.Background(), title, "")
			return fmt.Sprintf("Added %q to today's checklist", title), err
		})

	case "schedule:set":
		if len(parts) < 4 {
			m.status = "usage: schedule:set <stage> <start> <end>"
			return m, nil
		}
		stageID, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid stage id"
			return m, nil
		}
		start, end := parts[2], parts[3]
		return m, components.Result(func() (string, error) {
			out, err := m.tracking.SetSchedule(context.Background(), stageID, start, end)
			return fmt.Sprintf("Stage %d scheduled for %d days", stageID, out.EstimatedDuration), err
		})

	case "time:add":
		stageID := m.roadmapView.SelectedStageID()
		resourceID, ok := m.roadmapView.SelectedResourceID()
		if !ok {
			m.status = "no resource selected"
			return m, nil
		}
		if len(parts) < 2 {
			m.status = "usage: time:add <minutes>"
			return m, nil
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid minutes"
			return m, nil
		}
		return m, components.Result(func() (string, error) {
			out, err := m.tracking.AddTime(context.Background(), stageID, resourceID, minutes)
			return fmt.Sprintf("%s: %s spent", out.ResourceName, out.TimeLabel), err
		})

	case "progress:clear":
		return m, components.Result(func() (string, error) {
			return "Progress cleared", m.progress.Clear(context.Background())
		})

	case "report:export":
		if m.report == nil {
			m.status = "report export not configured"
			return m, nil
		}
		return m, components.Result(func() (string, error) {
			out, err := m.report.Export(context.Background())
			return "Report written to " + out.ReportPath, err
		})

	case "tab:roadmap":
		m.activeTab = tabRoadmap
	case "tab:dashboard":
		m.activeTab = tabDashboard
	case "tab:goals":
		m.activeTab = tabGoals

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab is taking free text, in
// which case global key bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabRoadmap:
		return m.roadmapView.Filtering()
	case tabGoals:
		return m.goalsView.Capturing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.roadmapView, _ = m.roadmapView.Update(sz)
	m.dashboardView, _ = m.dashboardView.Update(sz)
	m.goalsView, _ = m.goalsView.Update(sz)
}

func (m Model) reloadAll() tea.Cmd {
	return tea.Batch(m.roadmapView.Reload(), m.dashboardView.Reload(), m.goalsView.Reload())
}

// ─── port bridges ─────────────────────────────────────────────────────────────

type roadmapPortBridge struct {
	catalog  catalogPort
	progress progressPort
	tracking trackingPort
}

func (b roadmapPortBridge) Summary(ctx context.Context) (progressdto.SummaryOutput, error) {
	return b.progress.Summary(ctx)
}
func (b roadmapPortBridge) StageProgress(ctx context.Context, stageID int) (progressdto.StageProgressOutput, error) {
	return b.progress.StageProgress(ctx, stageID)
}
func (b roadmapPortBridge) GetStage(ctx context.Context, id int) (catalogdto.StageOutput, error) {
	return b.catalog.GetStage(ctx, id)
}
func (b roadmapPortBridge) StageResources(ctx context.Context, stageID int) ([]trackingdto.ResourceTrackingOutput, error) {
	return b.tracking.StageResources(ctx, stageID)
}
func (b roadmapPortBridge) Toggle(ctx context.Context, stageID int, resourceID string) (progressdto.ToggleOutput, error) {
	return b.progress.Toggle(ctx, stageID, resourceID)
}
func (b roadmapPortBridge) SetStatus(ctx context.Context, stageID int, resourceID, status string) (trackingdto.ResourceTrackingOutput, error) {
	return b.tracking.SetStatus(ctx, stageID, resourceID, status)
}
func (b roadmapPortBridge) AddTime(ctx context.Context, stageID int, resourceID string, minutes int) (trackingdto.ResourceTrackingOutput, error) {
	return b.tracking.AddTime(ctx, stageID, resourceID, minutes)
}

type dashboardPortBridge struct {
	progress progressPort
	tracking trackingPort
}

func (b dashboardPortBridge) Summary(ctx context.Context) (progressdto.SummaryOutput, error) {
	return b.progress.Summary(ctx)
}
func (b dashboardPortBridge) Analytics(ctx context.Context) (trackingdto.AnalyticsOutput, error) {
	return b.tracking.Analytics(ctx)
}
func (b dashboardPortBridge) Schedules(ctx context.Context) ([]trackingdto.ScheduleOutput, error) {
	return b.tracking.Schedules(ctx)
}
