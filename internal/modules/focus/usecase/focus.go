package usecase

import (
	"context"
	"time"

	"najah/internal/modules/focus/domain"
	"najah/internal/modules/focus/dto"
	focusin "najah/internal/modules/focus/port/in"
	"najah/internal/modules/focus/service"
	"najah/internal/platform/clock"
)

type Interactor struct {
	svc   *service.TimerService
	clock clock.Clock
}

func NewInteractor(svc *service.TimerService, clock clock.Clock) focusin.Usecase {
	return &Interactor{svc: svc, clock: clock}
}

func (i *Interactor) Start(ctx context.Context) (dto.StateOutput, error) {
	return toOutput(i.svc.Start(ctx)), nil
}

func (i *Interactor) Pause(ctx context.Context) (dto.StateOutput, error) {
	return toOutput(i.svc.Pause(ctx)), nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.StateOutput, error) {
	return toOutput(i.svc.Reset(ctx)), nil
}

func (i *Interactor) SelectMode(ctx context.Context, input dto.SelectModeInput) (dto.StateOutput, error) {
	state, err := i.svc.SelectMode(ctx, domain.Mode(input.Mode))
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toOutput(state), nil
}

func (i *Interactor) Snapshot(_ context.Context) (dto.StateOutput, error) {
	return toOutput(i.svc.Snapshot()), nil
}

func (i *Interactor) Stats(ctx context.Context, input dto.StatsInput) (dto.StatsOutput, error) {
	var since time.Time
	if input.SinceDays > 0 {
		since = i.clock.Now().AddDate(0, 0, -input.SinceDays)
	}
	totals, err := i.svc.Stats(ctx, since)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{
		WorkIntervals:  totals.WorkIntervals,
		BreakIntervals: totals.BreakIntervals,
		FocusMinutes:   totals.FocusSeconds / 60,
	}, nil
}

func toOutput(state domain.State) dto.StateOutput {
	return dto.StateOutput{
		Mode:          string(state.Mode),
		Remaining:     state.Remaining,
		Clock:         state.Clock(),
		Running:       state.Running,
		CompletedWork: state.CompletedWork,
	}
}
