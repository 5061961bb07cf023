package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"najah/internal/modules/progress/domain"
	progressout "najah/internal/modules/progress/port/out"
	apperrors "najah/internal/platform/errors"
	"najah/internal/platform/kv"
)

// KVProgressStore keeps seen and favourite chapters as JSON id arrays and
// the last opened chapter as a plain id.
type KVProgressStore struct {
	store kv.Store
}

func NewKVProgressStore(store kv.Store) progressout.ProgressStore {
	return &KVProgressStore{store: store}
}

func (s *KVProgressStore) Load(ctx context.Context) (domain.Progress, error) {
	seen, err := s.loadIDs(ctx, domain.KeySeen)
	if err != nil {
		return domain.Progress{}, err
	}
	favorites, err := s.loadIDs(ctx, domain.KeyFavorites)
	if err != nil {
		return domain.Progress{}, err
	}
	last, err := s.get(ctx, domain.KeyLastSeen)
	if err != nil {
		return domain.Progress{}, err
	}
	return domain.Progress{Seen: seen, Favorites: favorites, LastSeen: last}, nil
}

func (s *KVProgressStore) Save(ctx context.Context, p domain.Progress) error {
	if err := s.saveIDs(ctx, domain.KeySeen, p.Seen); err != nil {
		return err
	}
	if err := s.saveIDs(ctx, domain.KeyFavorites, p.Favorites); err != nil {
		return err
	}
	if p.LastSeen == "" {
		return s.store.Delete(ctx, domain.KeyLastSeen)
	}
	if err := s.store.Set(ctx, domain.KeyLastSeen, p.LastSeen); err != nil {
		return fmt.Errorf("save %s: %w", domain.KeyLastSeen, err)
	}
	return nil
}

func (s *KVProgressStore) loadIDs(ctx context.Context, key string) ([]string, error) {
	raw, err := s.get(ctx, key)
	if err != nil || raw == "" {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return ids, nil
}

func (s *KVProgressStore) saveIDs(ctx context.Context, key string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *KVProgressStore) get(ctx context.Context, key string) (string, error) {
	v, err := s.store.Get(ctx, key)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return v, nil
}
