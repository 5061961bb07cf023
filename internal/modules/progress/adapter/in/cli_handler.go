package in

import (
	"context"

	"najah/internal/modules/progress/dto"
	progressin "najah/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Chapters(ctx context.Context, subjectID string) ([]dto.ChapterOutput, error) {
	return h.usecase.Chapters(ctx, subjectID)
}

func (h CLIHandler) Seen(ctx context.Context, chapterID string) (dto.ChapterOutput, error) {
	return h.usecase.ToggleSeen(ctx, chapterID)
}

func (h CLIHandler) Favorite(ctx context.Context, chapterID string) (dto.ChapterOutput, error) {
	return h.usecase.ToggleFavorite(ctx, chapterID)
}

func (h CLIHandler) Dashboard(ctx context.Context) (dto.DashboardOutput, error) {
	return h.usecase.Dashboard(ctx)
}
