package tutor

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	tutordto "najah/internal/modules/tutor/dto"
	"najah/internal/ui/theme"
)

type TutorPort interface {
	Ask(ctx context.Context, question, subject string) tutordto.AskOutput
}

type AnsweredMsg struct {
	Question string
	Answer   tutordto.AskOutput
}

type exchange struct {
	question string
	answer   tutordto.AskOutput
}

type Model struct {
	port     TutorPort
	input    textinput.Model
	thread   viewport.Model
	spinner  spinner.Model
	subject  string
	history  []exchange
	pending  string
	thinking bool
	width    int
	height   int
}

func New(port TutorPort) Model {
	ti := textinput.New()
	ti.Placeholder = "Pose ta question…"
	ti.CharLimit = 1000

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, input: ti, thread: vp, spinner: sp}
}

func (m Model) Init() tea.Cmd { return nil }

// Focus gives the question field the keyboard.
func (m *Model) Focus() tea.Cmd { return m.input.Focus() }

func (m *Model) Blur() { m.input.Blur() }

// SetSubject sets the subject hint sent with later questions.
func (m *Model) SetSubject(subject string) { m.subject = subject }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 6
		m.thread.Width = m.width - 2
		m.thread.Height = m.height - 4
		m.thread.SetContent(m.renderThread())

	case AnsweredMsg:
		m.thinking = false
		m.pending = ""
		m.history = append(m.history, exchange{question: msg.Question, answer: msg.Answer})
		m.thread.SetContent(m.renderThread())
		m.thread.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.thread.SetContent(m.renderThread())
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			cmd := m.Ask(m.input.Value())
			return m, cmd
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.thread, cmd = m.thread.Update(msg)
			return m, cmd
		}
		if m.input.Focused() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// Ask sends question unless it is blank or another one is in flight.
func (m *Model) Ask(question string) tea.Cmd {
	question = strings.TrimSpace(question)
	if question == "" || m.thinking {
		return nil
	}
	m.thinking = true
	m.pending = question
	m.input.SetValue("")
	m.thread.SetContent(m.renderThread())
	m.thread.GotoBottom()
	subject := m.subject
	ask := func() tea.Msg {
		return AnsweredMsg{Question: question, Answer: m.port.Ask(context.Background(), question, subject)}
	}
	return tea.Batch(ask, m.spinner.Tick)
}

func (m Model) View() string {
	header := theme.Title.Render("NAJAH AI")
	if m.subject != "" {
		header += "  " + theme.Muted.Render(m.subject)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.thread.View(),
		"> "+m.input.View(),
	)
}

// Capturing reports whether typed keys belong to the question field.
func (m Model) Capturing() bool { return m.input.Focused() }

func (m Model) renderThread() string {
	if len(m.history) == 0 && !m.thinking {
		return theme.Muted.Render("Une question sur le programme du BAC ? Écris-la ci-dessous.")
	}
	var sb strings.Builder
	wrap := lipgloss.NewStyle().Width(max(m.thread.Width-4, 20))
	for _, ex := range m.history {
		sb.WriteString(theme.Hot.Render("Toi: ") + wrap.Render(ex.question) + "\n\n")
		style := theme.Title
		if ex.answer.Degraded {
			style = theme.Error
		}
		sb.WriteString(style.Render("NAJAH AI: ") + wrap.Render(ex.answer.Answer) + "\n\n")
	}
	if m.thinking {
		sb.WriteString(theme.Hot.Render("Toi: ") + wrap.Render(m.pending) + "\n\n")
		sb.WriteString(m.spinner.View() + theme.Muted.Render(" réflexion…") + "\n")
	}
	return sb.String()
}
