package out

import (
	"context"
	"errors"
	"fmt"

	"najah/internal/modules/profile/domain"
	profileout "najah/internal/modules/profile/port/out"
	apperrors "najah/internal/platform/errors"
	"najah/internal/platform/kv"
)

// KVPreferenceStore keeps one key per preference.
type KVPreferenceStore struct {
	store kv.Store
}

func NewKVPreferenceStore(store kv.Store) profileout.PreferenceStore {
	return &KVPreferenceStore{store: store}
}

func (s *KVPreferenceStore) Load(ctx context.Context) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()
	onboarded, err := s.get(ctx, domain.KeyOnboarded)
	if err != nil {
		return domain.Preferences{}, err
	}
	prefs.Onboarded = onboarded == "true"
	for key, dst := range map[string]*string{
		domain.KeyLanguage: &prefs.Language,
		domain.KeyLevel:    &prefs.Level,
		domain.KeyTrack:    &prefs.Track,
	} {
		v, err := s.get(ctx, key)
		if err != nil {
			return domain.Preferences{}, err
		}
		if v != "" {
			*dst = v
		}
	}
	return prefs, nil
}

func (s *KVPreferenceStore) Save(ctx context.Context, prefs domain.Preferences) error {
	values := [][2]string{
		{domain.KeyLanguage, prefs.Language},
		{domain.KeyLevel, prefs.Level},
		{domain.KeyTrack, prefs.Track},
	}
	if prefs.Onboarded {
		values = append(values, [2]string{domain.KeyOnboarded, "true"})
	}
	for _, pair := range values {
		if err := s.store.Set(ctx, pair[0], pair[1]); err != nil {
			return fmt.Errorf("save %s: %w", pair[0], err)
		}
	}
	return nil
}

func (s *KVPreferenceStore) ClearOnboarded(ctx context.Context) error {
	return s.store.Delete(ctx, domain.KeyOnboarded)
}

func (s *KVPreferenceStore) get(ctx context.Context, key string) (string, error) {
	v, err := s.store.Get(ctx, key)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return v, nil
}
