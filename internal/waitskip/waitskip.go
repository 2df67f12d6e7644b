// Package waitskip decides what to do about an action that is busy until T
package waitskip

import (
	"fmt"
	"time"

	"github.com/DrobnyV/ShakesBot/internal/budget"
	"github.com/DrobnyV/ShakesBot/internal/models"
)

// State is the outcome of Decide
type State int

const (
	// Ready means T has passed; the completing command can be sent now
	Ready State = iota
	// Skippable means a skip resource should be spent
	Skippable
	// MustWait means the caller sleeps for Remaining and polls again
	MustWait
)

func (s State) String() string {
	switch s {
	case Ready:
		return "Ready"
	case Skippable:
		return "Skippable"
	case MustWait:
		return "MustWait"
	default:
		return "Unknown"
	}
}

// Option is one skip resource with the stock on hand.
// Callers pass Stock 0 for resources that are not allowed right now.
type Option struct {
	Skip  models.TimeSkip
	Stock int
}

// Decision is the result of Decide
type Decision struct {
	State     State
	Remaining time.Duration
	Skip      models.TimeSkip
}

func (d Decision) String() string {
	switch d.State {
	case Skippable:
		return fmt.Sprintf("skip %s with %s", d.Remaining.Round(time.Second), d.Skip)
	case MustWait:
		return fmt.Sprintf("wait %s", d.Remaining.Round(time.Second))
	default:
		return "ready"
	}
}

// Decide classifies a busy-until condition.
// Options are tried in order; the first affordable one is used.
func Decide(now, busyUntil time.Time, threshold time.Duration, options ...Option) Decision {
	if !busyUntil.After(now) {
		return Decision{State: Ready}
	}

	remaining := busyUntil.Sub(now)
	for _, opt := range options {
		if budget.CanAffordSkip(opt.Stock, remaining, threshold) {
			return Decision{State: Skippable, Remaining: remaining, Skip: opt.Skip}
		}
	}
	return Decision{State: MustWait, Remaining: remaining}
}
