package out

import (
	"context"
	"encoding/json"
	"fmt"

	"najah/internal/modules/catalog/domain"
	catalogout "najah/internal/modules/catalog/port/out"
	"najah/internal/platform/kv"
)

// resourceRecord is the stored JSON shape of a resource.
type resourceRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Link      string `json:"link"`
	Provider  string `json:"provider"`
	SubjectID string `json:"subjectId"`
	Track     string `json:"filiere"`
	Year      string `json:"year,omitempty"`
}

type KVResourceStore struct {
	store kv.Store
	key   string
}

func NewKVResourceStore(store kv.Store) catalogout.ResourceStore {
	return &KVResourceStore{store: store, key: domain.StorageKey}
}

func (s *KVResourceStore) Load(ctx context.Context) ([]domain.Resource, error) {
	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	var records []resourceRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}
	out := make([]domain.Resource, 0, len(records))
	for i, rec := range records {
		r := domain.Resource{
			ID:        rec.ID,
			Title:     rec.Title,
			Type:      domain.ResourceType(rec.Type),
			Status:    domain.Status(rec.Status),
			Link:      rec.Link,
			Provider:  rec.Provider,
			SubjectID: rec.SubjectID,
			Track:     rec.Track,
			Year:      rec.Year,
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("decode %s: record %d: %w", s.key, i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *KVResourceStore) Save(ctx context.Context, resources []domain.Resource) error {
	records := make([]resourceRecord, 0, len(resources))
	for _, r := range resources {
		records = append(records, resourceRecord{
			ID:        r.ID,
			Title:     r.Title,
			Type:      string(r.Type),
			Status:    string(r.Status),
			Link:      r.Link,
			Provider:  r.Provider,
			SubjectID: r.SubjectID,
			Track:     r.Track,
			Year:      r.Year,
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	return s.store.Set(ctx, s.key, string(raw))
}
