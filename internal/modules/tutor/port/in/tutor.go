package in

import (
	"context"

	"najah/internal/modules/tutor/dto"
)

type Usecase interface {
	Ask(ctx context.Context, input dto.AskInput) dto.AskOutput
}
