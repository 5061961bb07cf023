package in

import (
	"context"

	"najah/internal/modules/catalog/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) ([]dto.ResourceOutput, error)
	Get(ctx context.Context, id string) (dto.ResourceOutput, error)
	Add(ctx context.Context, input dto.AddInput) (dto.ResourceOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.ResourceOutput, error)
	ToggleStatus(ctx context.Context, id string) (dto.ResourceOutput, error)
	Remove(ctx context.Context, id string) error
	Export(ctx context.Context, input dto.ExportInput) ([]byte, error)
}
