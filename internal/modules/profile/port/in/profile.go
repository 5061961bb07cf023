package in

import (
	"context"

	"najah/internal/modules/profile/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.PreferencesOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.PreferencesOutput, error)
	Reset(ctx context.Context) error
}
