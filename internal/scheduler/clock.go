package scheduler

import (
	"context"
	"time"
)

// Clock is the scheduler's source of time and sleep
type Clock interface {
	Now() time.Time
	// Sleep blocks for d. Timer waits use it and are not interrupted.
	Sleep(d time.Duration)
	// SleepContext blocks for d or until ctx is done
	SleepContext(ctx context.Context, d time.Duration) error
}

// RealClock is the wall clock
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }

func (RealClock) SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
