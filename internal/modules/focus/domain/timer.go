package domain

import (
	"fmt"
	"time"
)

type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

const (
	DefaultWorkSeconds  = 1500
	DefaultBreakSeconds = 300
)

func (m Mode) Validate() error {
	switch m {
	case ModeWork, ModeBreak:
		return nil
	default:
		return fmt.Errorf("unsupported timer mode %q", string(m))
	}
}

// NotificationKind names the interval that just finished.
type NotificationKind string

const (
	WorkDone  NotificationKind = "work-done"
	BreakDone NotificationKind = "break-done"
)

// Durations holds the configured length of each interval in seconds.
type Durations struct {
	Work  int
	Break int
}

func DefaultDurations() Durations {
	return Durations{Work: DefaultWorkSeconds, Break: DefaultBreakSeconds}
}

// DurationsFrom truncates to whole seconds.
func DurationsFrom(work, brk time.Duration) Durations {
	return Durations{Work: int(work / time.Second), Break: int(brk / time.Second)}
}

func (d Durations) For(m Mode) int {
	if m == ModeBreak {
		return d.Break
	}
	return d.Work
}

// Completion describes an interval that counted down to zero.
type Completion struct {
	Finished Mode
	Next     Mode
	Seconds  int
}

func (c Completion) Kind() NotificationKind {
	if c.Finished == ModeWork {
		return WorkDone
	}
	return BreakDone
}

// Timer is the focus timer state machine. It is not safe for concurrent
// use; the owning service serialises access.
type Timer struct {
	durations     Durations
	mode          Mode
	remaining     int
	running       bool
	completedWork int
}

func NewTimer(d Durations) *Timer {
	return &Timer{durations: d, mode: ModeWork, remaining: d.Work}
}

func (t *Timer) Start() { t.running = true }

func (t *Timer) Pause() { t.running = false }

// Reset returns to an idle Work interval. The completed count is kept.
func (t *Timer) Reset() {
	t.mode = ModeWork
	t.remaining = t.durations.Work
	t.running = false
}

func (t *Timer) SelectMode(m Mode) {
	t.running = false
	t.mode = m
	t.remaining = t.durations.For(m)
}

// Tick advances the countdown by one second. A tick that finds the
// countdown already at zero completes the interval, flips the mode and
// stops the timer; the next interval needs an explicit Start.
func (t *Timer) Tick() (Completion, bool) {
	if !t.running {
		return Completion{}, false
	}
	if t.remaining > 0 {
		t.remaining--
		return Completion{}, false
	}

	finished := t.mode
	seconds := t.durations.For(finished)
	if finished == ModeWork {
		t.completedWork++
		t.mode = ModeBreak
	} else {
		t.mode = ModeWork
	}
	t.remaining = t.durations.For(t.mode)
	t.running = false
	return Completion{Finished: finished, Next: t.mode, Seconds: seconds}, true
}

func (t *Timer) Mode() Mode           { return t.mode }
func (t *Timer) Remaining() int       { return t.remaining }
func (t *Timer) Running() bool        { return t.running }
func (t *Timer) CompletedWork() int   { return t.completedWork }
func (t *Timer) Durations() Durations { return t.durations }

// State is a copy of the timer's observable fields.
type State struct {
	Mode          Mode
	Remaining     int
	Running       bool
	CompletedWork int
}

func (t *Timer) State() State {
	return State{Mode: t.mode, Remaining: t.remaining, Running: t.running, CompletedWork: t.completedWork}
}

// Clock renders the remaining seconds as MM:SS.
func (s State) Clock() string {
	return fmt.Sprintf("%02d:%02d", s.Remaining/60, s.Remaining%60)
}

// IntervalRecord is one naturally completed interval.
type IntervalRecord struct {
	Mode        Mode
	DurationSec int
	CompletedAt time.Time
}

// Totals aggregates the interval log.
type Totals struct {
	WorkIntervals  int
	BreakIntervals int
	FocusSeconds   int
}
