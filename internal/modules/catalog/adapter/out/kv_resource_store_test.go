package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"najah/internal/modules/catalog/adapter/out"
	"najah/internal/modules/catalog/domain"
	apperrors "najah/internal/platform/errors"
	"najah/internal/platform/kv"
)

func TestKVResourceStoreMissingKey(t *testing.T) {
	t.Parallel()
	store := out.NewKVResourceStore(kv.NewMemoryStore())
	_, err := store.Load(context.Background())
	require.True(t, errors.Is(err, apperrors.ErrNotFound), "got %v", err)
}

func TestKVResourceStoreRoundTripSQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := kv.OpenSQLite(filepath.Join(t.TempDir(), "najah.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := out.NewKVResourceStore(db)
	want := domain.Seed()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestKVResourceStoreWireFormat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	require.NoError(t, out.NewKVResourceStore(mem).Save(ctx, domain.Seed()[:1]))

	raw, err := mem.Get(ctx, domain.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","title":"Fiche 01: Étude des fonctions","type":"Course","status":"Active","link":"https://drive.google.com/file/d/1","provider":"Prof Fayssal","subjectId":"math","filiere":"Sciences Physiques"}]`, raw)
}

func TestKVResourceStoreReadsStoredShape(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Set(ctx, domain.StorageKey, `[{"id":"1712","title":"Bac blanc","type":"Exam","status":"Inactive","link":"https://x","provider":"Lycée","subjectId":"svt","filiere":"Toutes","year":"2023"}]`))

	got, err := out.NewKVResourceStore(mem).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Resource{ID: "1712", Title: "Bac blanc", Type: domain.TypeExam, Status: domain.StatusInactive, Link: "https://x", Provider: "Lycée", SubjectID: "svt", Track: "Toutes", Year: "2023"}, got[0])
}

func TestKVResourceStoreCorruptValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Set(ctx, domain.StorageKey, "{not json"))

	_, err := out.NewKVResourceStore(mem).Load(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestKVResourceStoreRejectsInvalidRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for name, raw := range map[string]string{
		"missing title": `[{"id":"1","title":"","type":"Course","status":"Active","link":"https://x"}]`,
		"unknown type":  `[{"id":"1","title":"t","type":"Podcast","status":"Active","link":"https://x"}]`,
		"bad status":    `[{"id":"1","title":"t","type":"Course","status":"Archived","link":"https://x"}]`,
	} {
		mem := kv.NewMemoryStore()
		require.NoError(t, mem.Set(ctx, domain.StorageKey, raw))

		_, err := out.NewKVResourceStore(mem).Load(ctx)
		require.Error(t, err, name)
		assert.False(t, errors.Is(err, apperrors.ErrNotFound), name)
	}
}
