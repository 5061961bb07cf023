package in

import (
	"context"

	"najah/internal/modules/planner/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.TaskOutput, error)
	Add(ctx context.Context, input dto.AddInput) (dto.TaskOutput, error)
	Toggle(ctx context.Context, id string) (dto.TaskOutput, error)
	Delete(ctx context.Context, id string) error
}
