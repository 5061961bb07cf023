package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profilehandler "najah/internal/modules/profile/adapter/in"
	profilestore "najah/internal/modules/profile/adapter/out"
	"najah/internal/modules/profile/domain"
	"najah/internal/modules/profile/service"
	"najah/internal/modules/profile/usecase"
	"najah/internal/platform/curriculum"
	apperrors "najah/internal/platform/errors"
	"najah/internal/platform/kv"
)

func newHandler(store kv.Store) profilehandler.CLIHandler {
	svc := service.NewProfileService(profilestore.NewKVPreferenceStore(store))
	return profilehandler.NewCLIHandler(usecase.NewInteractor(svc))
}

func TestShowDefaults(t *testing.T) {
	t.Parallel()
	got, err := newHandler(kv.NewMemoryStore()).Show(context.Background())
	require.NoError(t, err)
	assert.False(t, got.Onboarded)
	assert.Equal(t, "FR", got.Language)
	assert.Equal(t, curriculum.LevelBac2, got.Level)
	assert.Equal(t, curriculum.TrackPC, got.Track)
}

func TestSetPersistsKeysAndMarksOnboarded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	h := newHandler(mem)

	got, err := h.Set(ctx, "AR", "", curriculum.TrackSVT)
	require.NoError(t, err)
	assert.True(t, got.Onboarded)
	assert.Equal(t, "AR", got.Language)
	assert.Equal(t, curriculum.LevelBac2, got.Level)

	for key, want := range map[string]string{
		domain.KeyOnboarded: "true",
		domain.KeyLanguage:  "AR",
		domain.KeyLevel:     curriculum.LevelBac2,
		domain.KeyTrack:     curriculum.TrackSVT,
	} {
		v, err := mem.Get(ctx, key)
		require.NoError(t, err, key)
		assert.Equal(t, want, v, key)
	}

	reloaded, err := newHandler(mem).Show(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, reloaded)
}

func TestSetRejectsUnknownValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHandler(kv.NewMemoryStore())
	for _, tc := range [][3]string{{"DE", "", ""}, {"", "3ème Bac", ""}, {"", "", "Médecine"}} {
		_, err := h.Set(ctx, tc[0], tc[1], tc[2])
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput), "%v: %v", tc, err)
	}
	got, err := h.Show(ctx)
	require.NoError(t, err)
	assert.False(t, got.Onboarded)
}

func TestResetClearsOnboardingOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	h := newHandler(mem)
	_, err := h.Set(ctx, "EN", curriculum.LevelBac1, curriculum.TrackECO)
	require.NoError(t, err)

	require.NoError(t, h.Reset(ctx))
	got, err := h.Show(ctx)
	require.NoError(t, err)
	assert.False(t, got.Onboarded)
	assert.Equal(t, "EN", got.Language)
	assert.Equal(t, curriculum.TrackECO, got.Track)
}
