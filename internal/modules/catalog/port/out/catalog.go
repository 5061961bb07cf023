package out

import (
	"context"

	"najah/internal/modules/catalog/domain"
)

// ResourceStore persists the whole collection at once. Load returns
// apperrors.ErrNotFound when nothing was ever saved.
type ResourceStore interface {
	Load(ctx context.Context) ([]domain.Resource, error)
	Save(ctx context.Context, resources []domain.Resource) error
}
