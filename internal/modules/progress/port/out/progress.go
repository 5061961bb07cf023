package out

import (
	"context"

	"najah/internal/modules/progress/domain"
)

// ProgressStore reads absent keys as empty progress.
type ProgressStore interface {
	Load(ctx context.Context) (domain.Progress, error)
	Save(ctx context.Context, p domain.Progress) error
}
