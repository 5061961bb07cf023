package in

import (
	"context"

	"najah/internal/modules/planner/dto"
	plannerin "najah/internal/modules/planner/port/in"
)

type CLIHandler struct {
	usecase plannerin.Usecase
}

func NewCLIHandler(usecase plannerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.TaskOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Add(ctx context.Context, text string) (dto.TaskOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{Text: text})
}

func (h CLIHandler) Toggle(ctx context.Context, id string) (dto.TaskOutput, error) {
	return h.usecase.Toggle(ctx, id)
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
