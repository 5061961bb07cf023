package in

import (
	"context"

	"najah/internal/modules/profile/dto"
	profilein "najah/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.PreferencesOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Set(ctx context.Context, language, level, track string) (dto.PreferencesOutput, error) {
	return h.usecase.Save(ctx, dto.SaveInput{Language: language, Level: level, Track: track})
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
