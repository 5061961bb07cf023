package out

import (
	"context"
	"time"

	"najah/internal/modules/focus/domain"
)

// Scheduler calls fn roughly every period until stop is called. stop must
// be safe to call more than once and from inside fn.
type Scheduler interface {
	Every(period time.Duration, fn func()) (stop func())
}

type NotificationSink interface {
	Notify(ctx context.Context, kind domain.NotificationKind) error
}

type IntervalLog interface {
	Append(ctx context.Context, record domain.IntervalRecord) error
	Totals(ctx context.Context, since time.Time) (domain.Totals, error)
}
