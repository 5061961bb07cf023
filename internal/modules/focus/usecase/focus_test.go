package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	focushandler "najah/internal/modules/focus/adapter/in"
	"najah/internal/modules/focus/domain"
	"najah/internal/modules/focus/service"
	"najah/internal/modules/focus/usecase"
	"najah/internal/platform/clock"
	apperrors "najah/internal/platform/errors"
	"najah/internal/platform/logging"
)

type idleScheduler struct{}

func (idleScheduler) Every(time.Duration, func()) func() { return func() {} }

type sinceIntervals struct {
	since time.Time
}

func (l *sinceIntervals) Append(context.Context, domain.IntervalRecord) error { return nil }

func (l *sinceIntervals) Totals(_ context.Context, since time.Time) (domain.Totals, error) {
	l.since = since
	return domain.Totals{WorkIntervals: 3, BreakIntervals: 2, FocusSeconds: 4500}, nil
}

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newHandler(intervals *sinceIntervals) focushandler.CLIHandler {
	svc := service.NewTimerService(domain.DefaultDurations(), clock.Fixed(now), idleScheduler{}, nil, intervals, logging.Discard())
	return focushandler.NewCLIHandler(usecase.NewInteractor(svc, clock.Fixed(now)))
}

func TestToggleStartsAndPauses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHandler(&sinceIntervals{})

	state, err := h.Toggle(ctx)
	if err != nil || !state.Running {
		t.Fatalf("first toggle should start: %+v, %v", state, err)
	}
	state, err = h.Toggle(ctx)
	if err != nil || state.Running {
		t.Fatalf("second toggle should pause: %+v, %v", state, err)
	}
	if state.Clock != "25:00" || state.Mode != "work" {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestSelectModeMapsOutput(t *testing.T) {
	t.Parallel()
	h := newHandler(&sinceIntervals{})
	state, err := h.SelectMode(context.Background(), "break")
	if err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if state.Mode != "break" || state.Remaining != 300 || state.Clock != "05:00" {
		t.Fatalf("unexpected state: %+v", state)
	}
	if _, err := h.SelectMode(context.Background(), "nap"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestStatsWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	intervals := &sinceIntervals{}
	h := newHandler(intervals)

	stats, err := h.Stats(ctx, 7)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !intervals.since.Equal(now.AddDate(0, 0, -7)) {
		t.Fatalf("expected a 7 day window, got %s", intervals.since)
	}
	if stats.WorkIntervals != 3 || stats.BreakIntervals != 2 || stats.FocusMinutes != 75 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if _, err := h.Stats(ctx, 0); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !intervals.since.IsZero() {
		t.Fatalf("0 days means all time, got %s", intervals.since)
	}
}
