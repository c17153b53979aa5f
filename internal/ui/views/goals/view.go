package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	trackingdto "roadmap/internal/modules/tracking/dto"
	"roadmap/internal/ui/components"
	"roadmap/internal/ui/theme"
)

type Port interface {
	Goals(ctx context.Context) ([]trackingdto.GoalOutput, error)
	Checklist(ctx context.Context, date string) ([]trackingdto.ChecklistItemOutput, error)
	AddGoal(ctx context.Context, title, description, targetDate string) (trackingdto.GoalOutput, error)
	ToggleGoal(ctx context.Context, goalID string) (trackingdto.GoalOutput, error)
	DeleteGoal(ctx context.Context, goalID string) error
	AddChecklistItem(ctx context.Context, title, date string) (trackingdto.ChecklistItemOutput, error)
	ToggleChecklistItem(ctx context.Context, itemID string) (trackingdto.ChecklistItemOutput, error)
}

type LoadedMsg struct {
	Goals     []trackingdto.GoalOutput
	Checklist []trackingdto.ChecklistItemOutput
	Err       error
}

type inputMode int

const (
	modeNone inputMode = iota
	modeGoal
	modeChecklist
)

type Model struct {
	port      Port
	goals     []trackingdto.GoalOutput
	checklist []trackingdto.ChecklistItemOutput
	cursor    int
	mode      inputMode
	input     textinput.Model
	err       error
	width     int
	height    int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.CharLimit = 240
	return Model{port: port, input: ti}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		goals, err := m.port.Goals(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		// An empty date selects today.
		items, err := m.port.Checklist(ctx, "")
		return LoadedMsg{Goals: goals, Checklist: items, Err: err}
	}
}

// Capturing reports whether key presses go to the text input.
func (m Model) Capturing() bool { return m.mode != modeNone }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-12, 10)
		return m, nil

	case LoadedMsg:
		m.err = msg.Err
		m.goals, m.checklist = msg.Goals, msg.Checklist
		if total := len(m.goals) + len(m.checklist); m.cursor >= total {
			m.cursor = max(0, total-1)
		}
		return m, nil

	case tea.KeyMsg:
		if m.Capturing() {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Weekly goals") + "\n")
	if len(m.goals) == 0 {
		sb.WriteString(theme.Muted.Render("  No goals yet. Press a to add one.") + "\n")
	}
	for i, g := range m.goals {
		line := fmt.Sprintf("%s %s  %s", checkbox(g.Completed), g.Title, theme.Muted.Render("due "+g.TargetDate))
		sb.WriteString(m.row(i, line))
		if g.Description != "" {
			sb.WriteString(theme.Muted.Render("      "+g.Description) + "\n")
		}
	}

	sb.WriteString("\n" + theme.Title.Render("Today's checklist") + "\n")
	if len(m.checklist) == 0 {
		sb.WriteString(theme.Muted.Render("  Nothing planned. Press A to add an item.") + "\n")
	}
	for i, item := range m.checklist {
		sb.WriteString(m.row(len(m.goals)+i, fmt.Sprintf("%s %s", checkbox(item.Completed), item.Title)))
	}

	sb.WriteString("\n")
	switch m.mode {
	case modeGoal:
		sb.WriteString(theme.Hot.Render("New goal (YYYY-MM-DD title): ") + m.input.View())
	case modeChecklist:
		sb.WriteString(theme.Hot.Render("New checklist item: ") + m.input.View())
	default:
		sb.WriteString(theme.Muted.Render("a: add goal  A: add checklist item  space: toggle  d: delete goal"))
	}
	if m.err != nil {
		sb.WriteString("\n" + theme.Warn.Render("Error: "+m.err.Error()))
	}
	return theme.Pane.Width(max(m.width-2, 0)).Height(max(m.height-2, 0)).Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) row(index int, line string) string {
	pointer := "  "
	if index == m.cursor {
		pointer = theme.Hot.Render("▸ ")
	}
	return pointer + line + "\n"
}

func checkbox(done bool) string {
	if done {
		return theme.Done.Render("[x]")
	}
	return "[ ]"
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	total := len(m.goals) + len(m.checklist)
	switch msg.String() {
	case "up", "k":
		m.cursor = max(0, m.cursor-1)
	case "down", "j":
		m.cursor = max(0, min(total-1, m.cursor+1))
	case "a":
		return m.startInput(modeGoal)
	case "A":
		return m.startInput(modeChecklist)
	case " ", "x":
		return m, m.toggleCmd()
	case "d":
		return m, m.deleteCmd()
	}
	return m, nil
}

func (m Model) startInput(mode inputMode) (Model, tea.Cmd) {
	m.mode = mode
	m.input.Reset()
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeNone
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		if mode == modeGoal {
			return m, AddGoalCmd(m.port, value)
		}
		return m, m.addChecklistCmd(value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// AddGoalCmd parses "YYYY-MM-DD title" and adds the goal.
func AddGoalCmd(port Port, value string) tea.Cmd {
	return components.Result(func() (string, error) {
		target, title, _ := strings.Cut(strings.TrimSpace(value), " ")
		out, err := port.AddGoal(context.Background(), strings.TrimSpace(title), "", target)
		if err != nil {
			return "add goal", err
		}
		return fmt.Sprintf("Added goal %q", out.Title), nil
	})
}

func (m Model) addChecklistCmd(title string) tea.Cmd {
	port := m.port
	return components.Result(func() (string, error) {
		out, err := port.AddChecklistItem(context.Background(), title, "")
		if err != nil {
			return "add checklist item", err
		}
		return fmt.Sprintf("Added %q to today's checklist", out.Title), nil
	})
}

func (m Model) toggleCmd() tea.Cmd {
	port := m.port
	if m.cursor < len(m.goals) {
		goal := m.goals[m.cursor]
		return components.Result(func() (string, error) {
			out, err := port.ToggleGoal(context.Background(), goal.ID)
			return fmt.Sprintf("Goal %q %s", goal.Title, doneLabel(out.Completed)), err
		})
	}
	i := m.cursor - len(m.goals)
	if i < 0 || i >= len(m.checklist) {
		return nil
	}
	item := m.checklist[i]
	return components.Result(func() (string, error) {
		out, err := port.ToggleChecklistItem(context.Background(), item.ID)
		return fmt.Sprintf("%q %s", item.Title, doneLabel(out.Completed)), err
	})
}

func (m Model) deleteCmd() tea.Cmd {
	if m.cursor >= len(m.goals) {
		return nil
	}
	goal := m.goals[m.cursor]
	port := m.port
	return components.Result(func() (string, error) {
		return fmt.Sprintf("Deleted goal %q", goal.Title), port.DeleteGoal(context.Background(), goal.ID)
	})
}

func doneLabel(done bool) string {
	if done {
		return "done"
	}
	return "reopened"
}
