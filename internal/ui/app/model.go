package app

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "najah/internal/modules/catalog/dto"
	profiledto "najah/internal/modules/profile/dto"
	"najah/internal/ui/components"
	"najah/internal/ui/theme"
	catalogview "najah/internal/ui/views/catalog"
	timerview "najah/internal/ui/views/timer"
	tutorview "najah/internal/ui/views/tutor"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Sub-view ports are defined in their own packages; only the profile is
// used at this level.

type profilePort interface {
	Show(ctx context.Context) (profiledto.PreferencesOutput, error)
	Set(ctx context.Context, language, level, track string) (profiledto.PreferencesOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabCatalog
	tabTutor
	tabCount
)

var tabLabels = [tabCount]string{
	"Focus", "Ressources", "Tuteur IA",
}

// ─── async messages ───────────────────────────────────────────────────────────

// CompletionMsg is sent from outside the program when a timer interval
// ends.
type CompletionMsg struct {
	Kind    string
	Message string
}

type profileLoadedMsg struct {
	prefs profiledto.PreferencesOutput
	err   error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Reset   key.Binding
	Modes   key.Binding
	Search  key.Binding
	Filters key.Binding
	Status  key.Binding
	Remove  key.Binding
	Ask     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset timer")),
		Modes:   key.NewBinding(key.WithKeys("w", "b"), key.WithHelp("w/b", "focus/break")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filters: key.NewBinding(key.WithKeys("s", "f", "a", "c"), key.WithHelp("s/f/a/c", "subject/track/active/clear")),
		Status:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle status")),
		Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		Ask:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ask")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Toggle, k.Reset, k.Modes},
		{k.Search, k.Filters, k.Status, k.Remove},
		{k.Ask, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help
// overlay and the command palette; each tab renders through its sub-view.
type Model struct {
	profile profilePort

	timerView   timerview.Model
	catalogView catalogview.Model
	tutorView   tutorview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	prefs     profiledto.PreferencesOutput
	status    string
	width     int
	height    int

	// bell receives the terminal bell on completion; nil keeps it quiet.
	bell io.Writer
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	focus timerview.TimerPort,
	catalog catalogview.CatalogPort,
	tutor tutorview.TutorPort,
	profile profilePort,
	workSeconds, breakSeconds int,
) Model {
	return Model{
		profile:     profile,
		timerView:   timerview.New(focus, workSeconds, breakSeconds),
		catalogView: catalogview.New(catalog),
		tutorView:   tutorview.New(tutor),
		activeTab:   tabTimer,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "prêt",
	}
}

// WithBell rings the terminal bell on w whenever an interval completes.
func (m Model) WithBell(w io.Writer) Model {
	m.bell = w
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.catalogView.Init(),
		m.tutorView.Init(),
		m.loadProfileCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		cmd := m.propagateSize()
		return m, cmd

	case profileLoadedMsg:
		if msg.err != nil {
			m.status = "profil: " + msg.err.Error()
			return m, nil
		}
		m.prefs = msg.prefs
		return m, nil

	case CompletionMsg:
		m.status = msg.Message
		m.activeTab = tabTimer
		m.tutorView.Blur()
		return m, tea.Batch(m.timerView.Completed(), m.ringBell())

	case catalogview.MutatedMsg:
		if msg.Err != nil {
			m.status = "ressources: " + msg.Err.Error()
		} else if msg.Status != "" {
			m.status = msg.Status
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "prêt"
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	cmd := m.broadcast(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		cmd := m.switchTab((m.activeTab + 1) % tabCount)
		return m, cmd
	case "shift+tab":
		cmd := m.switchTab((m.activeTab + tabCount - 1) % tabCount)
		return m, cmd
	}

	// Free-text input owns the keyboard until it lets go.
	switch {
	case m.activeTab == tabCatalog && m.catalogView.Capturing():
		var cmd tea.Cmd
		m.catalogView, cmd = m.catalogView.Update(msg)
		return m, cmd
	case m.activeTab == tabTutor && m.tutorView.Capturing():
		if msg.String() == "esc" {
			m.tutorView.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.tutorView, cmd = m.tutorView.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case ":":
		cmd := m.palette.Open()
		return m, cmd
	case "1", "2", "3":
		cmd := m.switchTab(tabID(msg.String()[0] - '1'))
		return m, cmd
	case "i", "enter":
		if m.activeTab == tabTutor {
			cmd := m.tutorView.Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabTimer:
		m.timerView, cmd = m.timerView.Update(msg)
	case tabCatalog:
		m.catalogView, cmd = m.catalogView.Update(msg)
	case tabTutor:
		m.tutorView, cmd = m.tutorView.Update(msg)
	}
	return m, cmd
}

// broadcast hands non-key messages to every sub-view; each ignores what it
// does not own, so async results land even when their tab is hidden.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds [3]tea.Cmd
	m.timerView, cmds[0] = m.timerView.Update(msg)
	m.catalogView, cmds[1] = m.catalogView.Update(msg)
	m.tutorView, cmds[2] = m.tutorView.Update(msg)
	return tea.Batch(cmds[:]...)
}

func (m *Model) switchTab(tab tabID) tea.Cmd {
	m.activeTab = tab
	if tab == tabTutor {
		return m.tutorView.Focus()
	}
	m.tutorView.Blur()
	return nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

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
	case tabTimer:
		return m.timerView.View()
	case tabCatalog:
		return m.catalogView.View()
	case tabTutor:
		return m.tutorView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "najah  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.prefs.Track != "" {
		left = theme.Hot.Render(m.prefs.Level+" · "+m.prefs.Track) + "  " + left
	}
	right := theme.Muted.Render("?:aide  tab:onglet  :::commandes  q:quitter")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "timer:start", "timer:pause":
		running := m.timerView.Running()
		if (parts[0] == "timer:start") == running {
			return m, nil
		}
		m.activeTab = tabTimer
		cmd := m.timerView.Toggle()
		return m, cmd

	case "timer:reset":
		m.activeTab = tabTimer
		cmd := m.timerView.Reset()
		return m, cmd

	case "timer:mode":
		if rest == "" {
			m.status = "usage: timer:mode <work|break>"
			return m, nil
		}
		m.activeTab = tabTimer
		cmd := m.timerView.SelectMode(rest)
		return m, cmd

	case "resource:add":
		input, ok := parseResource(rest)
		if !ok {
			m.status = "usage: resource:add <title> | <link> [| type] [| subject] [| track]"
			return m, nil
		}
		m.activeTab = tabCatalog
		cmd := m.catalogView.Add(input)
		return m, cmd

	case "resource:toggle":
		m.activeTab = tabCatalog
		cmd := m.catalogView.ToggleSelected()
		return m, cmd

	case "resource:remove":
		m.activeTab = tabCatalog
		m.catalogView.ConfirmRemove()
		return m, nil

	case "filter:subject":
		m.activeTab = tabCatalog
		cmd := m.catalogView.SetFilter(rest, m.catalogView.Track())
		return m, cmd

	case "filter:track":
		m.activeTab = tabCatalog
		cmd := m.catalogView.SetFilter(m.catalogView.Subject(), rest)
		return m, cmd

	case "filter:clear":
		m.activeTab = tabCatalog
		cmd := m.catalogView.SetFilter("", "")
		return m, cmd

	case "tutor:ask":
		cmd := tea.Batch(m.switchTab(tabTutor), m.tutorView.Ask(rest))
		return m, cmd

	case "tutor:subject":
		m.tutorView.SetSubject(rest)
		m.status = "matière du tuteur: " + rest
		return m, nil

	case "profile:track":
		return m, m.saveTrackCmd(rest)

	default:
		m.status = "commande inconnue: " + parts[0]
		if near := components.Matches(parts[0]); len(near) > 0 {
			m.status += " (essayez " + near[0].Name + ")"
		}
	}
	return m, nil
}

// parseResource reads "title | link [| type] [| subject] [| track]".
// Omitted fields take the same defaults as the add form.
func parseResource(raw string) (catalogdto.AddInput, bool) {
	fields := strings.Split(raw, "|")
	if len(fields) < 2 {
		return catalogdto.AddInput{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	input := catalogdto.AddInput{
		Title:     fields[0],
		Link:      fields[1],
		Type:      "Course",
		Provider:  "NAJAH",
		SubjectID: "math",
		Track:     "Sciences Physiques",
	}
	if len(fields) > 2 && fields[2] != "" {
		input.Type = fields[2]
	}
	if len(fields) > 3 && fields[3] != "" {
		input.SubjectID = fields[3]
	}
	if len(fields) > 4 && fields[4] != "" {
		input.Track = fields[4]
	}
	return input, true
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() tea.Cmd {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	var cmds [3]tea.Cmd
	m.timerView, cmds[0] = m.timerView.Update(sz)
	m.catalogView, cmds[1] = m.catalogView.Update(sz)
	m.tutorView, cmds[2] = m.tutorView.Update(sz)
	return tea.Batch(cmds[:]...)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadProfileCmd() tea.Cmd {
	return func() tea.Msg {
		if m.profile == nil {
			return profileLoadedMsg{}
		}
		prefs, err := m.profile.Show(context.Background())
		return profileLoadedMsg{prefs: prefs, err: err}
	}
}

func (m Model) saveTrackCmd(track string) tea.Cmd {
	return func() tea.Msg {
		if m.profile == nil {
			return profileLoadedMsg{}
		}
		prefs, err := m.profile.Set(context.Background(), "", "", track)
		return profileLoadedMsg{prefs: prefs, err: err}
	}
}

func (m Model) ringBell() tea.Cmd {
	if m.bell == nil {
		return nil
	}
	w := m.bell
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return nil
	}
}
