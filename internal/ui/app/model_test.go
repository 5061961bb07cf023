package app

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	focusdto "najah/internal/modules/focus/dto"
)

type idleTimer struct{}

func (idleTimer) Toggle(context.Context) (focusdto.StateOutput, error) {
	return focusdto.StateOutput{}, nil
}
func (idleTimer) Reset(context.Context) (focusdto.StateOutput, error) {
	return focusdto.StateOutput{}, nil
}
func (idleTimer) SelectMode(context.Context, string) (focusdto.StateOutput, error) {
	return focusdto.StateOutput{}, nil
}
func (idleTimer) Snapshot(context.Context) (focusdto.StateOutput, error) {
	return focusdto.StateOutput{Mode: "break", Remaining: 300, Clock: "05:00", CompletedWork: 1}, nil
}
func (idleTimer) Stats(context.Context, int) (focusdto.StatsOutput, error) {
	return focusdto.StatsOutput{}, nil
}

// drain runs cmd and every command nested in the batches it yields.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(c)...)
	}
	return out
}

func TestParseResource(t *testing.T) {
	t.Parallel()
	got, ok := parseResource("Série Limites | https://drive.google.com/x | Exercise | math")
	assert.True(t, ok)
	assert.Equal(t, "Série Limites", got.Title)
	assert.Equal(t, "https://drive.google.com/x", got.Link)
	assert.Equal(t, "Exercise", got.Type)
	assert.Equal(t, "math", got.SubjectID)
	assert.Equal(t, "NAJAH", got.Provider)
	assert.Equal(t, "Sciences Physiques", got.Track)

	defaults, ok := parseResource("Fiche | https://x")
	assert.True(t, ok)
	assert.Equal(t, "Course", defaults.Type)

	_, ok = parseResource("only a title")
	assert.False(t, ok)
}

func TestUnknownPaletteCommandSetsStatus(t *testing.T) {
	t.Parallel()
	m := NewModel(nil, nil, nil, nil, 1500, 300)
	next, cmd := m.executePalette("launch:rocket now")
	assert.Nil(t, cmd)
	assert.Equal(t, "commande inconnue: launch:rocket", next.(Model).status)
}

func TestPartialPaletteCommandSuggestsCompletion(t *testing.T) {
	t.Parallel()
	m := NewModel(nil, nil, nil, nil, 1500, 300)
	next, cmd := m.executePalette("filter:tr Toutes")
	assert.Nil(t, cmd)
	assert.Equal(t, "commande inconnue: filter:tr (essayez filter:track)", next.(Model).status)
}

func TestTutorSubjectFromPalette(t *testing.T) {
	t.Parallel()
	m := NewModel(nil, nil, nil, nil, 1500, 300)
	next, _ := m.executePalette("tutor:subject Physique-Chimie")
	assert.Equal(t, "matière du tuteur: Physique-Chimie", next.(Model).status)
}

func TestCompletionRingsBellAndShowsPrompt(t *testing.T) {
	t.Parallel()
	var bell bytes.Buffer
	m := NewModel(idleTimer{}, nil, nil, nil, 1500, 300).WithBell(&bell)
	m.activeTab = tabCatalog

	next, cmd := m.Update(CompletionMsg{Kind: "work-done", Message: "C'est l'heure d'une pause !"})
	drain(cmd)

	assert.Equal(t, "\a", bell.String())
	assert.Equal(t, "C'est l'heure d'une pause !", next.(Model).status)
	assert.Equal(t, tabTimer, next.(Model).activeTab)
}

func TestCompletionWithoutBellStaysQuiet(t *testing.T) {
	t.Parallel()
	m := NewModel(idleTimer{}, nil, nil, nil, 1500, 300)
	assert.Nil(t, m.ringBell())

	next, cmd := m.Update(CompletionMsg{Kind: "break-done", Message: "C'est reparti pour une session focus !"})
	drain(cmd)
	assert.Equal(t, "C'est reparti pour une session focus !", next.(Model).status)
}
