package in

import (
	"context"

	focusdto "najah/internal/modules/focus/dto"
	focusin "najah/internal/modules/focus/port/in"
)

type CLIHandler struct {
	usecase focusin.Usecase
}

func NewCLIHandler(usecase focusin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (focusdto.StateOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (focusdto.StateOutput, error) {
	return h.usecase.Pause(ctx)
}

// Toggle starts an idle timer and pauses a running one.
func (h CLIHandler) Toggle(ctx context.Context) (focusdto.StateOutput, error) {
	state, err := h.usecase.Snapshot(ctx)
	if err != nil {
		return focusdto.StateOutput{}, err
	}
	if state.Running {
		return h.usecase.Pause(ctx)
	}
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (focusdto.StateOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) SelectMode(ctx context.Context, mode string) (focusdto.StateOutput, error) {
	return h.usecase.SelectMode(ctx, focusdto.SelectModeInput{Mode: mode})
}

func (h CLIHandler) Snapshot(ctx context.Context) (focusdto.StateOutput, error) {
	return h.usecase.Snapshot(ctx)
}

func (h CLIHandler) Stats(ctx context.Context, sinceDays int) (focusdto.StatsOutput, error) {
	return h.usecase.Stats(ctx, focusdto.StatsInput{SinceDays: sinceDays})
}
