package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plannerstore "najah/internal/modules/planner/adapter/out"
	"najah/internal/modules/planner/domain"
	"najah/internal/modules/planner/service"
	"najah/internal/platform/clock"
	apperrors "najah/internal/platform/errors"
	"najah/internal/platform/kv"
	"najah/internal/platform/logging"
)

type counterIDs struct{ n int }

func (g *counterIDs) New() string {
	g.n++
	return fmt.Sprintf("task-%d", g.n)
}

// failingKV refuses every write.
type failingKV struct{ *kv.MemoryStore }

func (failingKV) Set(context.Context, string, string) error { return errors.New("read-only") }

var today = clock.Fixed(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

func newService(store kv.Store) *service.PlannerService {
	return service.NewPlannerService(&counterIDs{}, today, plannerstore.NewKVTaskStore(store), logging.Discard())
}

func taskIDs(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestListStartsFromPersistedSeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := kv.NewMemoryStore()

	assert.Equal(t, []string{"1", "2", "3"}, taskIDs(newService(mem).List(ctx)))
	_, err := mem.Get(ctx, domain.StorageKey)
	assert.NoError(t, err, "seed must be written on first use")
}

func TestAddPutsNewestFirstAndSurvivesRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	svc := newService(mem)

	first, err := svc.Add(ctx, "Apprendre l'Arabe")
	require.NoError(t, err)
	second, err := svc.Add(ctx, "Bac blanc SVT")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", first.DueDate)
	assert.False(t, first.Completed)
	assert.Equal(t, []string{second.ID, first.ID, "1", "2", "3"}, taskIDs(svc.List(ctx)))
	assert.Equal(t, taskIDs(svc.List(ctx)), taskIDs(newService(mem).List(ctx)))
}

func TestAddRejectsBlankText(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(kv.NewMemoryStore())
	for _, text := range []string{"", "   "} {
		_, err := svc.Add(ctx, text)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput), "%q: %v", text, err)
	}
	assert.Len(t, svc.List(ctx), 3)
}

func TestToggleFlipsCompletion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(kv.NewMemoryStore())

	done, err := svc.Toggle(ctx, "1")
	require.NoError(t, err)
	assert.True(t, done.Completed)

	undone, err := svc.Toggle(ctx, "2")
	require.NoError(t, err)
	assert.False(t, undone.Completed)
}

func TestDeleteRemovesOnlyThatTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(kv.NewMemoryStore())
	require.NoError(t, svc.Delete(ctx, "2"))
	assert.Equal(t, []string{"1", "3"}, taskIDs(svc.List(ctx)))
}

func TestUnknownTaskIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(kv.NewMemoryStore())
	_, err := svc.Toggle(ctx, "404")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "%v", err)
	assert.True(t, errors.Is(svc.Delete(ctx, "404"), apperrors.ErrNotFound))
}

func TestFailedSaveKeepsList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(failingKV{kv.NewMemoryStore()})

	_, err := svc.Add(ctx, "nouvelle tâche")
	require.Error(t, err)
	_, err = svc.Toggle(ctx, "1")
	require.Error(t, err)
	require.Error(t, svc.Delete(ctx, "3"))

	got := svc.List(ctx)
	assert.Equal(t, []string{"1", "2", "3"}, taskIDs(got))
	assert.False(t, got[0].Completed)
}
