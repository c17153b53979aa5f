package roadmap

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	catalogdto "roadmap/internal/modules/catalog/dto"
	progressdto "roadmap/internal/modules/progress/dto"
	trackingdto "roadmap/internal/modules/tracking/dto"
	"roadmap/internal/ui/components"
	"roadmap/internal/ui/theme"
)

// minutesStep is added by the "+" key.
const minutesStep = 15

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Summary(ctx context.Context) (progressdto.SummaryOutput, error)
	StageProgress(ctx context.Context, stageID int) (progressdto.StageProgressOutput, error)
	GetStage(ctx context.Context, id int) (catalogdto.StageOutput, error)
	StageResources(ctx context.Context, stageID int) ([]trackingdto.ResourceTrackingOutput, error)
	Toggle(ctx context.Context, stageID int, resourceID string) (progressdto.ToggleOutput, error)
	SetStatus(ctx context.Context, stageID int, resourceID, status string) (trackingdto.ResourceTrackingOutput, error)
	AddTime(ctx context.Context, stageID int, resourceID string, minutes int) (trackingdto.ResourceTrackingOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SummaryLoadedMsg struct {
	Summary progressdto.SummaryOutput
	Err     error
}

type StageLoadedMsg struct {
	Stage    catalogdto.StageOutput
	Progress progressdto.StageProgressOutput
	Tracking []trackingdto.ResourceTrackingOutput
	Err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type stageItem struct {
	stage progressdto.StageProgressOutput
}

func (i stageItem) Title() string { return fmt.Sprintf("%d. %s", i.stage.StageID, i.stage.Title) }
func (i stageItem) Description() string {
	return fmt.Sprintf("%s %3d%%  %d/%d", theme.Bar(i.stage.Percent, 12), i.stage.Percent, i.stage.Completed, i.stage.Total)
}
func (i stageItem) FilterValue() string { return i.stage.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     Port
	list     list.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	loading  bool

	stage       catalogdto.StageOutput
	progress    progressdto.StageProgressOutput
	tracking    []trackingdto.ResourceTrackingOutput
	description string
	cursor      int
	focusRight  bool
	err         error

	width  int
	height int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Stages"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, spinner: sp, loading: true, renderer: newRenderer(0)}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload refreshes the stage list and the open stage.
func (m Model) Reload() tea.Cmd {
	cmds := []tea.Cmd{m.loadSummaryCmd()}
	if m.stage.ID > 0 {
		cmds = append(cmds, m.loadStageCmd(m.stage.ID))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.description = m.renderDescription()

	case SummaryLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		items := make([]list.Item, len(msg.Summary.Stages))
		for i, s := range msg.Summary.Stages {
			items[i] = stageItem{stage: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if m.stage.ID == 0 && len(msg.Summary.Stages) > 0 {
			cmds = append(cmds, m.loadStageCmd(msg.Summary.Stages[0].StageID))
		}
		return m, tea.Batch(cmds...)

	case StageLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		if msg.Stage.ID != m.stage.ID {
			m.cursor = 0
		}
		m.err = nil
		m.stage, m.progress, m.tracking = msg.Stage, msg.Progress, msg.Tracking
		m.description = m.renderDescription()
		if m.cursor >= len(m.stage.Resources) {
			m.cursor = max(0, len(m.stage.Resources)-1)
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if !m.Filtering() {
			if cmd, handled := m.handleKey(msg); handled {
				return m, cmd
			}
		}
	}

	if !m.loading && !m.focusRight {
		prev := m.list.Index()
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prev {
			if item, ok := m.list.SelectedItem().(stageItem); ok {
				cmds = append(cmds, m.loadStageCmd(item.stage.StageID))
			}
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "right", "l", "enter":
		if !m.focusRight && len(m.stage.Resources) > 0 {
			m.focusRight = true
			return nil, true
		}
	case "left", "h", "esc":
		if m.focusRight {
			m.focusRight = false
			return nil, true
		}
	}
	if !m.focusRight {
		return nil, false
	}
	res, ok := m.selectedResource()
	switch msg.String() {
	case "up", "k":
		m.cursor = max(0, m.cursor-1)
	case "down", "j":
		m.cursor = min(len(m.stage.Resources)-1, m.cursor+1)
	case " ", "x":
		if ok {
			return m.toggleCmd(res), true
		}
	case "w":
		if ok {
			return m.statusCmd(res, "watching"), true
		}
	case "c":
		if ok {
			return m.statusCmd(res, "completed"), true
		}
	case "n":
		if ok {
			return m.statusCmd(res, "not-started"), true
		}
	case "+", "=":
		if ok {
			return m.addTimeCmd(res, minutesStep), true
		}
	default:
		return nil, false
	}
	return nil, true
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading roadmap…")
	}
	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())

	style := theme.Pane
	if m.focusRight {
		style = theme.PaneActive
	}
	detailPane := style.Width(detailW - 2).Height(m.height - 2).Render(m.renderStage(detailW - 4))
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the stage list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SelectedStageID is the stage shown in the detail pane.
func (m Model) SelectedStageID() int { return m.stage.ID }

// SelectedResourceID is the resource under the cursor in the detail pane.
func (m Model) SelectedResourceID() (string, bool) {
	res, ok := m.selectedResource()
	return res.ID, ok
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	m.list.SetSize(listW, m.height)
	m.renderer = newRenderer(m.width - listW - 6)
}

func newRenderer(width int) *glamour.TermRenderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width, 0)),
	)
	return r
}

func (m Model) renderDescription() string {
	if m.stage.Description == "" || m.renderer == nil {
		return m.stage.Description
	}
	out, err := m.renderer.Render(m.stage.Description)
	if err != nil {
		return m.stage.Description
	}
	return strings.Trim(out, "\n")
}

func (m Model) renderStage(width int) string {
	if m.err != nil {
		return theme.Warn.Render("Error: " + m.err.Error())
	}
	if m.stage.ID == 0 {
		return theme.Muted.Render("Select a stage")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("%d. %s", m.stage.ID, m.stage.Title)) + "\n")
	sb.WriteString(fmt.Sprintf("%s %d%%  (%d/%d)\n", theme.Bar(m.progress.Percent, max(10, width/3)), m.progress.Percent, m.progress.Completed, m.progress.Total))
	sb.WriteString(m.description + "\n\n")

	for i, res := range m.stage.Resources {
		mark := "[ ]"
		if i < len(m.progress.Resources) && m.progress.Resources[i].Completed {
			mark = theme.Done.Render("[x]")
		}
		status, spent := "not-started", "0m"
		if i < len(m.tracking) {
			status, spent = m.tracking[i].Status, m.tracking[i].TimeLabel
		}
		pointer := "  "
		if m.focusRight && i == m.cursor {
			pointer = theme.Hot.Render("▸ ")
		}
		sb.WriteString(fmt.Sprintf("%s%s %s  %s %s\n", pointer, mark, res.Name, theme.Status(status), theme.Muted.Render(spent)))
		sb.WriteString(theme.Muted.Render("      "+res.Type+"  "+res.URL) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("→ resources  space: done  w/c/n: status  +: 15 min"))
	return sb.String()
}

func (m Model) selectedResource() (catalogdto.ResourceOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.stage.Resources) {
		return catalogdto.ResourceOutput{}, false
	}
	return m.stage.Resources[m.cursor], true
}

func (m Model) loadSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.port.Summary(context.Background())
		return SummaryLoadedMsg{Summary: summary, Err: err}
	}
}

func (m Model) loadStageCmd(stageID int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stage, err := m.port.GetStage(ctx, stageID)
		if err != nil {
			return StageLoadedMsg{Err: err}
		}
		progress, err := m.port.StageProgress(ctx, stageID)
		if err != nil {
			return StageLoadedMsg{Err: err}
		}
		tracking, err := m.port.StageResources(ctx, stageID)
		return StageLoadedMsg{Stage: stage, Progress: progress, Tracking: tracking, Err: err}
	}
}

func (m Model) toggleCmd(res catalogdto.ResourceOutput) tea.Cmd {
	stageID := m.stage.ID
	return components.Result(func() (string, error) {
		out, err := m.port.Toggle(context.Background(), stageID, res.ID)
		state := "not completed"
		if out.Completed {
			state = "completed"
		}
		return fmt.Sprintf("%s marked %s", res.Name, state), err
	})
}

func (m Model) statusCmd(res catalogdto.ResourceOutput, status string) tea.Cmd {
	stageID := m.stage.ID
	return components.Result(func() (string, error) {
		_, err := m.port.SetStatus(context.Background(), stageID, res.ID, status)
		return fmt.Sprintf("%s is %s", res.Name, status), err
	})
}

func (m Model) addTimeCmd(res catalogdto.ResourceOutput, minutes int) tea.Cmd {
	stageID := m.stage.ID
	return components.Result(func() (string, error) {
		out, err := m.port.AddTime(context.Background(), stageID, res.ID, minutes)
		return fmt.Sprintf("%s: %s spent", res.Name, out.TimeLabel), err
	})
}
