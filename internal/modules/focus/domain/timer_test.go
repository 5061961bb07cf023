package domain_test

import (
	"testing"
	"time"

	"najah/internal/modules/focus/domain"
)

func TestNewTimerDefaults(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer(domain.DefaultDurations())
	got := timer.State()
	want := domain.State{Mode: domain.ModeWork, Remaining: 1500, Running: false, CompletedWork: 0}
	if got != want {
		t.Fatalf("unexpected initial state: %+v", got)
	}
	if got.Clock() != "25:00" {
		t.Fatalf("expected 25:00, got %s", got.Clock())
	}
}

func TestTickDecrementsOnlyWhileRunning(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer(domain.DefaultDurations())
	if _, done := timer.Tick(); done {
		t.Fatalf("idle tick must not complete")
	}
	if timer.Remaining() != 1500 {
		t.Fatalf("idle tick must be a no-op, got %d", timer.Remaining())
	}

	timer.Start()
	for want := 1499; want >= 1490; want-- {
		timer.Tick()
		if timer.Remaining() != want {
			t.Fatalf("expected %d, got %d", want, timer.Remaining())
		}
	}
	timer.Pause()
	timer.Tick()
	if timer.Remaining() != 1490 {
		t.Fatalf("paused tick must be a no-op, got %d", timer.Remaining())
	}
}

func TestFullWorkIntervalCompletesIntoIdleBreak(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer(domain.DefaultDurations())
	timer.Start()

	for i := 0; i < 1500; i++ {
		if _, done := timer.Tick(); done {
			t.Fatalf("completed early at tick %d", i+1)
		}
	}
	if timer.Remaining() != 0 || timer.Mode() != domain.ModeWork || !timer.Running() {
		t.Fatalf("expected running work at 0, got %+v", timer.State())
	}

	completion, done := timer.Tick()
	if !done {
		t.Fatalf("tick at zero must complete the interval")
	}
	if completion.Finished != domain.ModeWork || completion.Next != domain.ModeBreak || completion.Kind() != domain.WorkDone {
		t.Fatalf("unexpected completion: %+v", completion)
	}
	if completion.Seconds != 1500 {
		t.Fatalf("expected 1500 completed seconds, got %d", completion.Seconds)
	}
	got := timer.State()
	want := domain.State{Mode: domain.ModeBreak, Remaining: 300, Running: false, CompletedWork: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestBreakCompletionReturnsToWorkWithoutCounting(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer(domain.DefaultDurations())
	timer.SelectMode(domain.ModeBreak)
	timer.Start()
	ticks := 0
	for {
		ticks++
		completion, done := timer.Tick()
		if done {
			if completion.Kind() != domain.BreakDone {
				t.Fatalf("expected break-done, got %s", completion.Kind())
			}
			break
		}
		if timer.Remaining() < 0 {
			t.Fatalf("remaining went negative")
		}
	}
	if ticks != 301 {
		t.Fatalf("expected completion on tick 301, got %d", ticks)
	}
	got := timer.State()
	want := domain.State{Mode: domain.ModeWork, Remaining: 1500, Running: false, CompletedWork: 0}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSelectModeResetsRemainingRegardlessOfState(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer(domain.DefaultDurations())
	timer.Start()
	for i := 0; i < 42; i++ {
		timer.Tick()
	}
	timer.SelectMode(domain.ModeBreak)
	if timer.Remaining() != 300 || timer.Running() || timer.Mode() != domain.ModeBreak {
		t.Fatalf("unexpected state after select break: %+v", timer.State())
	}
	timer.Start()
	timer.Tick()
	timer.SelectMode(domain.ModeWork)
	if timer.Remaining() != 1500 || timer.Running() || timer.Mode() != domain.ModeWork {
		t.Fatalf("unexpected state after select work: %+v", timer.State())
	}
	timer.SelectMode(domain.ModeWork)
	if timer.Remaining() != 1500 {
		t.Fatalf("selecting the current mode must still reset, got %d", timer.Remaining())
	}
}

func TestCompletedWorkUnaffectedByManualControls(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer(domain.Durations{Work: 2, Break: 1})
	timer.Start()
	for i := 0; i < 3; i++ {
		timer.Tick()
	}
	if timer.CompletedWork() != 1 {
		t.Fatalf("expected one completed work interval, got %d", timer.CompletedWork())
	}

	timer.Reset()
	timer.Pause()
	timer.SelectMode(domain.ModeBreak)
	timer.SelectMode(domain.ModeWork)
	if timer.CompletedWork() != 1 {
		t.Fatalf("manual controls changed the count: %d", timer.CompletedWork())
	}
	if timer.State() != (domain.State{Mode: domain.ModeWork, Remaining: 2, CompletedWork: 1}) {
		t.Fatalf("unexpected state: %+v", timer.State())
	}
}

func TestPauseAndStartAreIdempotent(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer(domain.DefaultDurations())
	timer.Start()
	timer.Tick()
	timer.Pause()
	once := timer.State()
	timer.Pause()
	if timer.State() != once {
		t.Fatalf("second pause changed state: %+v vs %+v", timer.State(), once)
	}
	timer.Start()
	started := timer.State()
	timer.Start()
	if timer.State() != started {
		t.Fatalf("second start changed state")
	}
}

func TestResetKeepsCountAndStops(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer(domain.Durations{Work: 1, Break: 1})
	timer.Start()
	timer.Tick()
	timer.Tick()
	timer.Start()
	timer.Reset()
	if timer.State() != (domain.State{Mode: domain.ModeWork, Remaining: 1, CompletedWork: 1}) {
		t.Fatalf("unexpected state after reset: %+v", timer.State())
	}
}

func TestModeValidateAndDurations(t *testing.T) {
	t.Parallel()
	if err := domain.Mode("work").Validate(); err != nil {
		t.Fatalf("work should be valid: %v", err)
	}
	if err := domain.Mode("nap").Validate(); err == nil {
		t.Fatalf("nap should be invalid")
	}
	d := domain.DurationsFrom(25*time.Minute, 5*time.Minute+500*time.Millisecond)
	if d != domain.DefaultDurations() {
		t.Fatalf("expected default durations, got %+v", d)
	}
}
