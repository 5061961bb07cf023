package out

import (
	"sync"
	"time"

	focusout "najah/internal/modules/focus/port/out"
)

// TickerScheduler runs fn on a time.Ticker in its own goroutine.
type TickerScheduler struct{}

func NewTickerScheduler() focusout.Scheduler {
	return TickerScheduler{}
}

func (TickerScheduler) Every(period time.Duration, fn func()) func() {
	ticker := time.NewTicker(period)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
