package in

import (
	"context"

	"najah/internal/modules/catalog/dto"
	catalogin "najah/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, text, subjectID, track string, activeOnly bool) ([]dto.ResourceOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Text: text, SubjectID: subjectID, Track: track, ActiveOnly: activeOnly})
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.ResourceOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddInput) (dto.ResourceOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateInput) (dto.ResourceOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Toggle(ctx context.Context, id string) (dto.ResourceOutput, error) {
	return h.usecase.ToggleStatus(ctx, id)
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.usecase.Remove(ctx, id)
}

func (h CLIHandler) Export(ctx context.Context, format string) ([]byte, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Format: format})
}
