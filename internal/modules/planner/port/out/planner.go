package out

import (
	"context"

	"najah/internal/modules/planner/domain"
)

// TaskStore returns apperrors.ErrNotFound from Load when nothing was saved.
type TaskStore interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}
