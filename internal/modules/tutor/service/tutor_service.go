package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"najah/internal/modules/tutor/domain"
	tutorout "najah/internal/modules/tutor/port/out"
)

// TutorService relays questions to the generator and turns every failure
// into a fixed answer. Ask never fails.
type TutorService struct {
	generator tutorout.Generator
	timeout   time.Duration
	logger    *slog.Logger
}

// NewTutorService accepts a nil generator, meaning no model is configured.
func NewTutorService(generator tutorout.Generator, timeout time.Duration, logger *slog.Logger) *TutorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TutorService{generator: generator, timeout: timeout, logger: logger}
}

func (s *TutorService) Ask(ctx context.Context, question, subject string) domain.Answer {
	if strings.TrimSpace(question) == "" {
		return domain.Answer{Text: domain.BlankPrompt, Degraded: true}
	}
	if s.generator == nil {
		s.logger.Error("tutor unavailable", "error", "no api key configured")
		return domain.Answer{Text: domain.FailedAnswer, Degraded: true}
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	text, err := s.generator.Generate(ctx, domain.SystemInstruction(subject), question)
	if err != nil {
		s.logger.Error("tutor request failed", "subject", subject, "error", err)
		return domain.Answer{Text: domain.FailedAnswer, Degraded: true}
	}
	if strings.TrimSpace(text) == "" {
		return domain.Answer{Text: domain.EmptyAnswer, Degraded: true}
	}
	return domain.Answer{Text: text}
}
