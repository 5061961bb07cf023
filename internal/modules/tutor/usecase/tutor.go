package usecase

import (
	"context"

	"najah/internal/modules/tutor/dto"
	tutorin "najah/internal/modules/tutor/port/in"
	"najah/internal/modules/tutor/service"
)

type Interactor struct {
	svc *service.TutorService
}

func NewInteractor(svc *service.TutorService) tutorin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Ask(ctx context.Context, input dto.AskInput) dto.AskOutput {
	answer := i.svc.Ask(ctx, input.Question, input.Subject)
	return dto.AskOutput{Answer: answer.Text, Degraded: answer.Degraded}
}
