package in

import (
	"context"

	"najah/internal/modules/tutor/dto"
	tutorin "najah/internal/modules/tutor/port/in"
)

type CLIHandler struct {
	usecase tutorin.Usecase
}

func NewCLIHandler(usecase tutorin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Ask(ctx context.Context, question, subject string) dto.AskOutput {
	return h.usecase.Ask(ctx, dto.AskInput{Question: question, Subject: subject})
}
