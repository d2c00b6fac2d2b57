package service

import (
	"context"
	"time"
)

// TimerSleeper is the production Sleeper backed by a real timer.
type TimerSleeper struct{}

func NewTimerSleeper() TimerSleeper {
	return TimerSleeper{}
}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
