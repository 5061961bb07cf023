package in

import (
	"context"

	"najah/internal/modules/focus/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.StateOutput, error)
	Pause(ctx context.Context) (dto.StateOutput, error)
	Reset(ctx context.Context) (dto.StateOutput, error)
	SelectMode(ctx context.Context, input dto.SelectModeInput) (dto.StateOutput, error)
	Snapshot(ctx context.Context) (dto.StateOutput, error)
	Stats(ctx context.Context, input dto.StatsInput) (dto.StatsOutput, error)
}
