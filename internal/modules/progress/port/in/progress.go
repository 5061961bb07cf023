package in

import (
	"context"

	"najah/internal/modules/progress/dto"
)

type Usecase interface {
	Chapters(ctx context.Context, subjectID string) ([]dto.ChapterOutput, error)
	ToggleSeen(ctx context.Context, chapterID string) (dto.ChapterOutput, error)
	ToggleFavorite(ctx context.Context, chapterID string) (dto.ChapterOutput, error)
	Dashboard(ctx context.Context) (dto.DashboardOutput, error)
}
