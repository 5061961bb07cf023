package out

import (
	"context"
	"encoding/json"
	"fmt"

	"najah/internal/modules/planner/domain"
	plannerout "najah/internal/modules/planner/port/out"
	"najah/internal/platform/kv"
)

type taskRecord struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate"`
}

type KVTaskStore struct {
	store kv.Store
}

func NewKVTaskStore(store kv.Store) plannerout.TaskStore {
	return &KVTaskStore{store: store}
}

func (s *KVTaskStore) Load(ctx context.Context) ([]domain.Task, error) {
	raw, err := s.store.Get(ctx, domain.StorageKey)
	if err != nil {
		return nil, err
	}
	var records []taskRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", domain.StorageKey, err)
	}
	tasks := make([]domain.Task, 0, len(records))
	for i, rec := range records {
		t := domain.Task{ID: rec.ID, Text: rec.Text, Completed: rec.Completed, DueDate: rec.DueDate}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("decode %s: task %d: %w", domain.StorageKey, i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (s *KVTaskStore) Save(ctx context.Context, tasks []domain.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{ID: t.ID, Text: t.Text, Completed: t.Completed, DueDate: t.DueDate})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", domain.StorageKey, err)
	}
	return s.store.Set(ctx, domain.StorageKey, string(raw))
}
