package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dataDir, stdin string, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--data-dir", dataDir}, args...))
	require.NoError(t, root.Execute(), out.String())
	return out.String()
}

func TestResourceCommandsPersistAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	listed := run(t, dir, "", "resource", "list")
	assert.Contains(t, listed, "Fiche 01: Étude des fonctions")
	assert.Contains(t, listed, "Résumé Ondes Mécaniques")

	added := run(t, dir, "", "resource", "add", "--title", "Série Limites", "--link", "https://drive.google.com/file/d/9", "--type", "Exercise")
	assert.Contains(t, added, "added Série Limites")

	filtered := run(t, dir, "", "resource", "list", "--search", "série")
	assert.Contains(t, filtered, "Série Limites")
	assert.NotContains(t, filtered, "Fiche 01")

	toggled := run(t, dir, "", "resource", "toggle", "3")
	assert.Contains(t, toggled, "3 is now Active")

	cancelled := run(t, dir, "n\n", "resource", "remove", "1")
	assert.Contains(t, cancelled, "cancelled")

	removed := run(t, dir, "y\n", "resource", "remove", "1")
	assert.Contains(t, removed, "removed 1")

	active := run(t, dir, "", "resource", "list", "--active", "--subject", "pc")
	assert.Contains(t, active, "Correction National 2024 PC")
	assert.Contains(t, active, "Résumé Ondes Mécaniques")
	assert.NotContains(t, active, "Fiche 01")
}

func TestResourceEditChangesOnlyGivenFlags(t *testing.T) {
	dir := t.TempDir()
	out := run(t, dir, "", "resource", "edit", "2", "--year", "2023")
	assert.Contains(t, out, "year:     2023")
	assert.Contains(t, out, "title:    Correction National 2024 PC")
	assert.Contains(t, out, "provider: Moutamadris")
}

func TestResourceExportYAML(t *testing.T) {
	out := run(t, t.TempDir(), "", "resource", "export", "--format", "yaml")
	assert.Contains(t, out, "Fiche 01: Étude des fonctions")
	assert.Contains(t, out, "subject_id: pc")
}

func TestProfileSetAndShow(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "", "profile", "set", "--lang", "AR", "--track", "Lettres")
	out := run(t, dir, "", "profile", "show")
	assert.Equal(t, "onboarded=true language=AR level=2ème Bac track=Lettres\n", out)
}

func TestTimerStatsStartsEmpty(t *testing.T) {
	out := run(t, t.TempDir(), "", "timer", "stats")
	assert.Contains(t, out, "focus intervals: 0")
}

func TestPlanCommandsPersistAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	listed := run(t, dir, "", "plan", "list")
	assert.Contains(t, listed, "[ ] 1\t2024-10-25\tRéviser les limites - Math")
	assert.Contains(t, listed, "[x] 2")

	added := run(t, dir, "", "plan", "add", "Apprendre", "l'Arabe")
	assert.Contains(t, added, "(Apprendre l'Arabe)")

	assert.Contains(t, run(t, dir, "", "plan", "toggle", "1"), "1 is done")
	assert.Contains(t, run(t, dir, "", "plan", "remove", "3"), "removed 3")

	after := run(t, dir, "", "plan", "list")
	lines := strings.Split(strings.TrimSpace(after), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Apprendre l'Arabe")
	assert.Contains(t, lines[1], "[x] 1")
	assert.NotContains(t, after, "Radioactivité")
}

func TestProgressCommands(t *testing.T) {
	dir := t.TempDir()

	assert.Contains(t, run(t, dir, "", "progress"), "progression: 0% (0/3 chapitres)")
	assert.Contains(t, run(t, dir, "", "progress", "seen", "math-ch1"), "math-ch1 seen=true")
	assert.Contains(t, run(t, dir, "", "progress", "favorite", "pc-ch1"), "pc-ch1 favorite=true")

	dashboard := run(t, dir, "", "progress")
	assert.Contains(t, dashboard, "progression: 33% (1/3 chapitres)")
	assert.Contains(t, dashboard, "dernier chapitre: Limites et Continuité")
	assert.Contains(t, dashboard, "favoris: Ondes Mécaniques Progressives")

	chapters := run(t, dir, "", "progress", "chapters", "--subject", "math")
	assert.Contains(t, chapters, "✓  math-ch1")
	assert.NotContains(t, chapters, "pc-ch1")
}
