package clock

import "time"

// Clock is the time source injected into services.
type Clock interface {
	Now() time.Time
}

// SystemClock reports wall time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
