package usecase

import (
	"context"

	"najah/internal/modules/planner/domain"
	"najah/internal/modules/planner/dto"
	plannerin "najah/internal/modules/planner/port/in"
	"najah/internal/modules/planner/service"
)

type Interactor struct {
	svc *service.PlannerService
}

func NewInteractor(svc *service.PlannerService) plannerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.TaskOutput, error) {
	tasks := i.svc.List(ctx)
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toOutput(t))
	}
	return out, nil
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.TaskOutput, error) {
	t, err := i.svc.Add(ctx, input.Text)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(t), nil
}

func (i *Interactor) Toggle(ctx context.Context, id string) (dto.TaskOutput, error) {
	t, err := i.svc.Toggle(ctx, id)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(t), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func toOutput(t domain.Task) dto.TaskOutput {
	return dto.TaskOutput{ID: t.ID, Text: t.Text, Completed: t.Completed, DueDate: t.DueDate}
}
