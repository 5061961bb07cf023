package timer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	focusdto "najah/internal/modules/focus/dto"
	"najah/internal/ui/theme"
)

// refreshEvery is the redraw cadence; the countdown itself is driven by
// the timer service, not by the view.
const refreshEvery = 250 * time.Millisecond

type TimerPort interface {
	Toggle(ctx context.Context) (focusdto.StateOutput, error)
	Reset(ctx context.Context) (focusdto.StateOutput, error)
	SelectMode(ctx context.Context, mode string) (focusdto.StateOutput, error)
	Snapshot(ctx context.Context) (focusdto.StateOutput, error)
	Stats(ctx context.Context, sinceDays int) (focusdto.StatsOutput, error)
}

type StateMsg struct {
	State focusdto.StateOutput
	Err   error
}

type StatsMsg struct {
	Stats focusdto.StatsOutput
	Err   error
}

type refreshMsg struct{}

type Model struct {
	port   TimerPort
	state  focusdto.StateOutput
	stats  focusdto.StatsOutput
	total  map[string]int
	bar    progress.Model
	err    error
	width  int
	height int
}

// New takes the full length of each mode in seconds, used for the
// progress bar.
func New(port TimerPort, workSeconds, breakSeconds int) Model {
	bar := progress.New(progress.WithGradient(string(theme.Peach), string(theme.Green)), progress.WithoutPercentage())
	return Model{
		port:  port,
		total: map[string]int{"work": workSeconds, "break": breakSeconds},
		bar:   bar,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.snapshotCmd(), m.statsCmd(), refresh())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(m.width-8, 60)

	case refreshMsg:
		return m, tea.Batch(m.snapshotCmd(), refresh())

	case StateMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.state = msg.State
		}

	case StatsMsg:
		if msg.Err == nil {
			m.stats = msg.Stats
		}

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter":
			return m, m.Toggle()
		case "r":
			return m, m.Reset()
		case "w":
			return m, m.SelectMode("work")
		case "b":
			return m, m.SelectMode("break")
		}
	}
	return m, nil
}

func (m Model) View() string {
	mode := "FOCUS"
	if m.state.Mode == "break" {
		mode = "PAUSE"
	}
	status := "en pause"
	if m.state.Running {
		status = "en cours"
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(mode) + "  " + theme.Muted.Render(status) + "\n\n")
	sb.WriteString(theme.Clock.Render(m.state.Clock) + "\n\n")
	sb.WriteString(m.bar.ViewAs(m.elapsedRatio()) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %d\n", theme.Muted.Render("sessions terminées:"), m.state.CompletedWork))
	sb.WriteString(fmt.Sprintf("%s %d min (7 jours)\n", theme.Muted.Render("temps de focus:"), m.stats.FocusMinutes))
	if m.err != nil {
		sb.WriteString("\n" + theme.Error.Render(m.err.Error()) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("space: start/pause  r: reset  w: focus  b: pause"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.Pane.Render(sb.String()))
}

func (m Model) Toggle() tea.Cmd {
	return m.stateCmd(m.port.Toggle)
}

func (m Model) Reset() tea.Cmd {
	return m.stateCmd(m.port.Reset)
}

func (m Model) SelectMode(mode string) tea.Cmd {
	return m.stateCmd(func(ctx context.Context) (focusdto.StateOutput, error) {
		return m.port.SelectMode(ctx, mode)
	})
}

func (m Model) Running() bool { return m.state.Running }

// Completed refreshes counters after an interval ends.
func (m Model) Completed() tea.Cmd {
	return tea.Batch(m.snapshotCmd(), m.statsCmd())
}

func (m Model) elapsedRatio() float64 {
	total := m.total[m.state.Mode]
	if total <= 0 {
		return 0
	}
	return float64(total-m.state.Remaining) / float64(total)
}

func (m Model) stateCmd(call func(context.Context) (focusdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		state, err := call(context.Background())
		return StateMsg{State: state, Err: err}
	}
}

func (m Model) snapshotCmd() tea.Cmd {
	return m.stateCmd(m.port.Snapshot)
}

func (m Model) statsCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.port.Stats(context.Background(), 7)
		return StatsMsg{Stats: stats, Err: err}
	}
}

func refresh() tea.Cmd {
	return tea.Tick(refreshEvery, func(time.Time) tea.Msg { return refreshMsg{} })
}
