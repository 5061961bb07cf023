package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "najah/internal/modules/catalog/dto"
	"najah/internal/platform/curriculum"
	"najah/internal/ui/theme"
)

const allSubjects = "All"

type CatalogPort interface {
	List(ctx context.Context, text, subjectID, track string, activeOnly bool) ([]catalogdto.ResourceOutput, error)
	Add(ctx context.Context, input catalogdto.AddInput) (catalogdto.ResourceOutput, error)
	Toggle(ctx context.Context, id string) (catalogdto.ResourceOutput, error)
	Remove(ctx context.Context, id string) error
}

type ResourcesLoadedMsg struct {
	Resources []catalogdto.ResourceOutput
	Subjects  []string
	Err       error
}

// MutatedMsg reports the outcome of an add, toggle or remove.
type MutatedMsg struct {
	Status string
	Err    error
}

type resourceItem struct {
	r catalogdto.ResourceOutput
}

func (i resourceItem) Title() string {
	if i.r.Status != "Active" {
		return i.r.Title + " (inactif)"
	}
	return i.r.Title
}

func (i resourceItem) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.r.Type, strings.ToUpper(i.r.SubjectID), i.r.Provider)
}

func (i resourceItem) FilterValue() string { return i.r.Title }

type Model struct {
	port    CatalogPort
	list    list.Model
	preview viewport.Model
	search  textinput.Model

	searching  bool
	text       string
	subject    string
	subjects   []string
	track      string
	activeOnly bool

	confirmID    string
	confirmTitle string

	err    error
	width  int
	height int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Ressources"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	ti := textinput.New()
	ti.Placeholder = "titre ou source…"
	ti.CharLimit = 128

	return Model{
		port:     port,
		list:     l,
		preview:  vp,
		search:   ti,
		subject:  allSubjects,
		subjects: []string{allSubjects},
	}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ResourcesLoadedMsg:
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.subjects = append([]string{allSubjects}, msg.Subjects...)
		items := make([]list.Item, len(msg.Resources))
		for i, r := range msg.Resources {
			items[i] = resourceItem{r: r}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.list.Title = "Ressources " + theme.Muted.Render(m.filterSummary())
		m.preview.SetContent(m.renderDetail())
		return m, tea.Batch(cmds...)

	case MutatedMsg:
		return m, m.Reload()

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.confirmID != "" {
			return m.updateConfirm(msg)
		}
		switch msg.String() {
		case "/":
			m.searching = true
			m.search.SetValue(m.text)
			cmd := m.search.Focus()
			return m, cmd
		case "s":
			m.subject = next(m.subjects, m.subject)
			return m, m.Reload()
		case "f":
			m.track = next(append([]string{""}, curriculum.Tracks...), m.track)
			return m, m.Reload()
		case "a":
			m.activeOnly = !m.activeOnly
			return m, m.Reload()
		case "c":
			m.text, m.subject, m.track, m.activeOnly = "", allSubjects, "", false
			return m, m.Reload()
		case "t":
			return m, m.ToggleSelected()
		case "x", "delete":
			m.ConfirmRemove()
			return m, nil
		}
	}

	prevIdx := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		m.preview.SetContent(m.renderDetail())
	}
	var vCmd tea.Cmd
	m.preview, vCmd = m.preview.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		m.text = m.search.Value()
		return m, m.Reload()
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (Model, tea.Cmd) {
	id, title := m.confirmID, m.confirmTitle
	m.confirmID, m.confirmTitle = "", ""
	if msg.String() != "y" {
		return m, func() tea.Msg { return MutatedMsg{Status: "suppression annulée"} }
	}
	return m, func() tea.Msg {
		if err := m.port.Remove(context.Background(), id); err != nil {
			return MutatedMsg{Err: err}
		}
		return MutatedMsg{Status: "supprimé: " + title}
	}
}

func (m Model) View() string {
	listW := m.width * 5 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	right := m.preview.View()
	switch {
	case m.searching:
		right = theme.Title.Render("Recherche") + "\n" + m.search.View() + "\n\n" + right
	case m.confirmID != "":
		right = theme.Hot.Render(fmt.Sprintf("Supprimer « %s » ? (y/n)", m.confirmTitle)) + "\n\n" + right
	}
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Capturing reports whether the view is reading free text or waiting for a
// confirmation, in which case global keys must pass through.
func (m Model) Capturing() bool {
	return m.searching || m.confirmID != ""
}

func (m Model) SelectedID() (string, bool) {
	if item, ok := m.list.SelectedItem().(resourceItem); ok {
		return item.r.ID, true
	}
	return "", false
}

func (m Model) Reload() tea.Cmd {
	text, subject, track, activeOnly := m.text, m.subject, m.track, m.activeOnly
	return func() tea.Msg {
		ctx := context.Background()
		all, err := m.port.List(ctx, "", "", "", false)
		if err != nil {
			return ResourcesLoadedMsg{Err: err}
		}
		filtered, err := m.port.List(ctx, text, subject, track, activeOnly)
		return ResourcesLoadedMsg{Resources: filtered, Subjects: subjectsOf(all), Err: err}
	}
}

func (m Model) ToggleSelected() tea.Cmd {
	id, ok := m.SelectedID()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		r, err := m.port.Toggle(context.Background(), id)
		if err != nil {
			return MutatedMsg{Err: err}
		}
		return MutatedMsg{Status: fmt.Sprintf("%s: %s", r.Title, r.Status)}
	}
}

func (m Model) Add(input catalogdto.AddInput) tea.Cmd {
	return func() tea.Msg {
		r, err := m.port.Add(context.Background(), input)
		if err != nil {
			return MutatedMsg{Err: err}
		}
		return MutatedMsg{Status: "ajouté: " + r.Title}
	}
}

// ConfirmRemove asks about the selected resource; the next key decides.
func (m *Model) ConfirmRemove() {
	if item, ok := m.list.SelectedItem().(resourceItem); ok {
		m.confirmID, m.confirmTitle = item.r.ID, item.r.Title
	}
}

func (m Model) Subject() string { return m.subject }

func (m Model) Track() string { return m.track }

// SetFilter replaces the subject and track filters.
func (m *Model) SetFilter(subject, track string) tea.Cmd {
	if subject == "" {
		subject = allSubjects
	}
	m.subject, m.track = subject, track
	return m.Reload()
}

func (m *Model) resize() {
	listW := m.width * 5 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
	m.search.Width = detailW - 8
}

func (m Model) filterSummary() string {
	parts := []string{"matière: " + m.subject}
	if m.text != "" {
		parts = append(parts, fmt.Sprintf("« %s »", m.text))
	}
	if m.track != "" {
		parts = append(parts, m.track)
	}
	if m.activeOnly {
		parts = append(parts, "actives")
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderDetail() string {
	if m.err != nil {
		return theme.Error.Render(m.err.Error())
	}
	item, ok := m.list.SelectedItem().(resourceItem)
	if !ok {
		return theme.Muted.Render("Aucune ressource trouvée\n\nc: réinitialiser les filtres")
	}
	r := item.r
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(r.Title) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:       ") + r.ID + "\n")
	sb.WriteString(theme.Muted.Render("type:     ") + r.Type + "\n")
	sb.WriteString(theme.Muted.Render("statut:   ") + r.Status + "\n")
	sb.WriteString(theme.Muted.Render("matière:  ") + r.SubjectID + "\n")
	sb.WriteString(theme.Muted.Render("filière:  ") + r.Track + "\n")
	if r.Year != "" {
		sb.WriteString(theme.Muted.Render("année:    ") + r.Year + "\n")
	}
	sb.WriteString(theme.Muted.Render("source:   ") + r.Provider + "\n")
	sb.WriteString(theme.Muted.Render("lien:     ") + r.Link + "\n")
	sb.WriteString("\n" + theme.Muted.Render("/: chercher  s: matière  f: filière  a: actives  t: activer/désactiver  x: supprimer"))
	return sb.String()
}

func subjectsOf(resources []catalogdto.ResourceOutput) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range resources {
		if r.SubjectID != "" && !seen[r.SubjectID] {
			seen[r.SubjectID] = true
			out = append(out, r.SubjectID)
		}
	}
	sort.Strings(out)
	return out
}

func next(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
