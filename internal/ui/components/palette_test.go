package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(cmds []PaletteCommand) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.Name)
	}
	return out
}

func TestMatchesByNamePrefix(t *testing.T) {
	assert.Equal(t, []string{"timer:start", "timer:pause", "timer:reset", "timer:mode"}, names(Matches("timer")))
	assert.Equal(t, []string{"filter:subject"}, names(Matches("FILTER:S")))
	assert.Len(t, Matches(""), len(Commands))
	assert.Empty(t, Matches("plugin:exec"))
}

func TestMatchesKeepsOnlyExactCommandOnceArgumentsStart(t *testing.T) {
	assert.Equal(t, []string{"tutor:ask"}, names(Matches("tutor:ask qu'est-ce qu'une limite ?")))
	assert.Empty(t, Matches("tutor:a question"))
}

func TestEveryCommandHasHelp(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Commands {
		assert.NotEmpty(t, c.Help, c.Name)
		assert.False(t, seen[c.Name], "duplicate %s", c.Name)
		seen[c.Name] = true
	}
}

func typeInto(p Palette, s string) Palette {
	for _, r := range s {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestTabCompletesFirstMatch(t *testing.T) {
	p := NewPalette()
	p.Open()
	p = typeInto(p, "tutor:s")

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "tutor:subject ", p.Value())

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "tutor:subject ", p.Value(), "tab does nothing once arguments start")
}

func TestEnterSubmitsTrimmedLineAndCloses(t *testing.T) {
	p := NewPalette()
	p.Open()
	p = typeInto(p, " timer:mode break ")

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, PaletteSubmitMsg{Input: "timer:mode break"}, cmd())
	assert.False(t, p.Visible())
}

func TestEscCancels(t *testing.T) {
	p := NewPalette()
	p.Open()
	p = typeInto(p, "timer")

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, PaletteCancelMsg{}, cmd())
	assert.False(t, p.Visible())
	assert.Empty(t, p.View())
}

func TestViewShowsHelpAndNoMatchHint(t *testing.T) {
	p := NewPalette()
	p.SetWidth(100)
	p.Open()

	p = typeInto(p, "profile")
	assert.Contains(t, p.View(), "enregistrer la filière")

	p = typeInto(p, "zzz")
	assert.Contains(t, p.View(), "aucune commande ne correspond")
}

func TestClosedPaletteIgnoresKeys(t *testing.T) {
	p := NewPalette()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, p.Visible())
}
