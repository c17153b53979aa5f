package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	progressdto "roadmap/internal/modules/progress/dto"
	trackingdto "roadmap/internal/modules/tracking/dto"
	"roadmap/internal/ui/theme"
)

type Port interface {
	Summary(ctx context.Context) (progressdto.SummaryOutput, error)
	Analytics(ctx context.Context) (trackingdto.AnalyticsOutput, error)
	Schedules(ctx context.Context) ([]trackingdto.ScheduleOutput, error)
}

type LoadedMsg struct {
	Summary   progressdto.SummaryOutput
	Analytics trackingdto.AnalyticsOutput
	Schedules []trackingdto.ScheduleOutput
	Err       error
}

type Model struct {
	port     Port
	viewport viewport.Model
	data     LoadedMsg
	loaded   bool
	width    int
	height   int
}

func New(port Port) Model {
	return Model{port: port, viewport: viewport.New(0, 0)}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		msg := LoadedMsg{}
		if msg.Summary, msg.Err = m.port.Summary(ctx); msg.Err != nil {
			return msg
		}
		if msg.Analytics, msg.Err = m.port.Analytics(ctx); msg.Err != nil {
			return msg
		}
		msg.Schedules, msg.Err = m.port.Schedules(ctx)
		return msg
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 2
		m.viewport.SetContent(m.render())
		return m, nil
	case LoadedMsg:
		m.data, m.loaded = msg, true
		m.viewport.SetContent(m.render())
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return theme.Pane.Width(max(m.width-2, 0)).Height(max(m.height-2, 0)).Render(m.viewport.View())
}

// Content is the unstyled dashboard body.
func (m Model) Content() string { return m.render() }

func (m Model) render() string {
	if !m.loaded {
		return theme.Muted.Render("Loading dashboard…")
	}
	if m.data.Err != nil {
		return theme.Warn.Render("Error: " + m.data.Err.Error())
	}
	s, a := m.data.Summary, m.data.Analytics
	barW := max(10, min(40, m.width/2))

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Overall progress") + "\n")
	sb.WriteString(fmt.Sprintf("%s %d%%  %d/%d resources across %d stages\n", theme.Bar(s.Percent, barW), s.Percent, s.Completed, s.Total, s.StageCount))
	sb.WriteString(theme.Muted.Render(s.Message) + "\n\n")

	sb.WriteString(theme.Title.Render("Analytics") + "\n")
	sb.WriteString(fmt.Sprintf("  Time spent        %s (%dh)\n", a.TotalTimeLabel, a.TotalHours))
	sb.WriteString(fmt.Sprintf("  Completion speed  %s\n", a.CompletionSpeed))
	sb.WriteString(fmt.Sprintf("  Avg completion    %d days\n", a.AverageCompletionTime))
	sb.WriteString(fmt.Sprintf("  Streak            %d days\n", a.StreakDays))
	sb.WriteString(fmt.Sprintf("  Restarted         %d\n", a.TopicsRestarted))
	sb.WriteString(fmt.Sprintf("  Tracked           %d (%d completed)\n", a.TrackedResources, a.CompletedResources))
	if a.LastActivityDate != nil {
		sb.WriteString(fmt.Sprintf("  Last activity     %s\n", a.LastActivityDate.Format("2006-01-02")))
	}
	sb.WriteString("\n")

	sb.WriteString(theme.Title.Render("Weak areas") + "\n")
	if len(a.WeakAreas) == 0 {
		sb.WriteString(theme.Muted.Render("  Nothing in progress") + "\n")
	}
	for _, w := range a.WeakAreas {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", theme.Hot.Render(w.StageTitle), w.Label))
	}
	sb.WriteString("\n")

	sb.WriteString(theme.Title.Render("Schedule") + "\n")
	scheduled := 0
	for _, sc := range m.data.Schedules {
		if !sc.Scheduled {
			continue
		}
		scheduled++
		sb.WriteString(fmt.Sprintf("  %-28s %s → %s  (%d days)\n", sc.StageTitle, sc.StartDate, sc.EndDate, sc.EstimatedDuration))
	}
	if scheduled == 0 {
		sb.WriteString(theme.Muted.Render("  No stages scheduled") + "\n")
	}
	sb.WriteString("\n")

	if len(a.Insights) > 0 {
		sb.WriteString(theme.Title.Render("Insights") + "\n")
		for _, in := range a.Insights {
			sb.WriteString("  • " + in + "\n")
		}
	}
	return sb.String()
}
