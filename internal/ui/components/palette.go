package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"najah/internal/ui/theme"
)

// PaletteSubmitMsg carries the trimmed command line typed in the palette.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg closes the palette without running anything.
type PaletteCancelMsg struct{}

// PaletteCommand describes one entry of the palette. Name is what
// app.Model.executePalette switches on.
type PaletteCommand struct {
	Name string
	Args string
	Help string
}

// Commands lists the palette entries in display order, grouped by tab.
var Commands = []PaletteCommand{
	{Name: "timer:start", Help: "lancer le minuteur"},
	{Name: "timer:pause", Help: "mettre en pause"},
	{Name: "timer:reset", Help: "revenir à la durée du mode"},
	{Name: "timer:mode", Args: "<work|break>", Help: "travail 25 min ou pause 5 min"},
	{Name: "resource:add", Args: "<titre> | <lien> [| type] [| matière] [| filière]", Help: "ajouter une ressource"},
	{Name: "resource:toggle", Help: "basculer le statut de la sélection"},
	{Name: "resource:remove", Help: "supprimer la sélection"},
	{Name: "filter:subject", Args: "<id|All>", Help: "filtrer par matière"},
	{Name: "filter:track", Args: "<filière|Toutes>", Help: "filtrer par filière"},
	{Name: "filter:clear", Help: "retirer les filtres"},
	{Name: "tutor:ask", Args: "<question>", Help: "poser une question au tuteur"},
	{Name: "tutor:subject", Args: "<matière>", Help: "changer la matière du tuteur"},
	{Name: "profile:track", Args: "<filière>", Help: "enregistrer la filière"},
}

const maxShown = 6

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().Foreground(theme.Peach)
	argStyle  = lipgloss.NewStyle().Foreground(theme.Subtext0)
	helpStyle = lipgloss.NewStyle().Foreground(theme.Subtext0).Italic(true)
)

// Palette is the ":" overlay. Typing narrows Commands by name and tab
// completes the first match.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "timer:start, tutor:ask …"
	ti.CharLimit = 256
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows an empty palette and focuses its input.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

// Value returns the current command line.
func (p Palette) Value() string { return p.input.Value() }

// Matches returns the commands whose name starts with the first word of
// line, ignoring case. Once an argument is being typed only the exact
// command remains.
func Matches(line string) []PaletteCommand {
	line = strings.ToLower(strings.TrimLeft(line, " "))
	word, _, hasArgs := strings.Cut(line, " ")
	var out []PaletteCommand
	for _, c := range Commands {
		if hasArgs {
			if c.Name == word {
				out = append(out, c)
			}
			continue
		}
		if strings.HasPrefix(c.Name, word) {
			out = append(out, c)
		}
	}
	return out
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			line := strings.TrimSpace(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: line} }
		case "tab":
			if m := Matches(p.input.Value()); len(m) > 0 && !strings.Contains(p.input.Value(), " ") {
				p.input.SetValue(m[0].Name + " ")
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	matches := Matches(p.input.Value())

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Commandes") + "\n")
	sb.WriteString(": " + p.input.View() + "\n\n")
	switch {
	case len(matches) == 0:
		sb.WriteString(helpStyle.Render("  aucune commande ne correspond") + "\n")
	default:
		for i, c := range matches {
			if i == maxShown {
				sb.WriteString(argStyle.Render("  …") + "\n")
				break
			}
			line := "  " + nameStyle.Render(c.Name)
			if c.Args != "" {
				line += " " + argStyle.Render(c.Args)
			}
			sb.WriteString(line + "\n    " + helpStyle.Render(c.Help) + "\n")
		}
	}
	sb.WriteString("\n" + argStyle.Render("tab compléter · entrée valider · échap fermer"))

	w := p.width
	if w < 20 {
		w = 72
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
