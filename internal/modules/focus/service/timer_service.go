package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"najah/internal/modules/focus/domain"
	focusout "najah/internal/modules/focus/port/out"
	"najah/internal/platform/clock"
	apperrors "najah/internal/platform/errors"
)

const tickPeriod = time.Second

// TimerService is the single controller of one focus timer. Every control
// call and every scheduled tick runs under mu, so ticks never overlap.
type TimerService struct {
	mu        sync.Mutex
	timer     *domain.Timer
	clock     clock.Clock
	scheduler focusout.Scheduler
	notifier  focusout.NotificationSink
	intervals focusout.IntervalLog
	logger    *slog.Logger

	stop func()
	// gen identifies the current schedule; ticks from a stopped schedule
	// that are already in flight carry an older value and are dropped.
	gen uint64
}

func NewTimerService(
	durations domain.Durations,
	clock clock.Clock,
	scheduler focusout.Scheduler,
	notifier focusout.NotificationSink,
	intervals focusout.IntervalLog,
	logger *slog.Logger,
) *TimerService {
	return &TimerService{
		timer:     domain.NewTimer(durations),
		clock:     clock,
		scheduler: scheduler,
		notifier:  notifier,
		intervals: intervals,
		logger:    logger,
	}
}

func (s *TimerService) Start(_ context.Context) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer.Running() {
		return s.timer.State()
	}
	s.timer.Start()
	s.gen++
	gen := s.gen
	s.stop = s.scheduler.Every(tickPeriod, func() { s.tick(gen) })
	s.logger.Debug("focus timer started", "mode", s.timer.Mode(), "remaining", s.timer.Remaining())
	return s.timer.State()
}

func (s *TimerService) Pause(_ context.Context) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Pause()
	s.cancelLocked()
	return s.timer.State()
}

func (s *TimerService) Reset(_ context.Context) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Reset()
	s.cancelLocked()
	return s.timer.State()
}

func (s *TimerService) SelectMode(_ context.Context, mode domain.Mode) (domain.State, error) {
	if err := mode.Validate(); err != nil {
		return domain.State{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.SelectMode(mode)
	s.cancelLocked()
	return s.timer.State(), nil
}

func (s *TimerService) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.State()
}

func (s *TimerService) Durations() domain.Durations {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.Durations()
}

// Stats sums the interval log; since is ignored when zero.
func (s *TimerService) Stats(ctx context.Context, since time.Time) (domain.Totals, error) {
	if s.intervals == nil {
		return domain.Totals{}, nil
	}
	return s.intervals.Totals(ctx, since)
}

// Close stops the schedule without touching the timer state.
func (s *TimerService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *TimerService) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	completion, done := s.timer.Tick()
	if done {
		s.cancelLocked()
	}
	s.mu.Unlock()

	if done {
		s.complete(completion)
	}
}

func (s *TimerService) complete(c domain.Completion) {
	ctx := context.Background()
	s.logger.Info("focus interval completed", "finished", c.Finished, "next", c.Next)
	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, c.Kind()); err != nil {
			s.logger.Warn("focus notification failed", "kind", c.Kind(), "error", err)
		}
	}
	if s.intervals != nil {
		record := domain.IntervalRecord{Mode: c.Finished, DurationSec: c.Seconds, CompletedAt: s.clock.Now()}
		if err := s.intervals.Append(ctx, record); err != nil {
			s.logger.Warn("focus interval log failed", "error", err)
		}
	}
}

func (s *TimerService) cancelLocked() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	s.gen++
}
