// Package selector holds the per-domain decision policies.
//
// A selector looks at one Snapshot and returns one Decision: a command to
// send, a wait to sit out, or the end of its pass. Selectors keep no state
// between calls, so deciding twice on the same snapshot gives the same
// answer.
package selector

import (
	"fmt"
	"time"

	"github.com/DrobnyV/ShakesBot/internal/models"
)

// Selector is one decision policy run by the scheduler
type Selector interface {
	Name() string
	Decide(snap *models.Snapshot, now time.Time) Decision
}

// Decision is what a selector wants to happen this tick.
// A zero Command with zero Wait and Done false means "poll again".
type Decision struct {
	Command *models.Command
	Wait    time.Duration
	Done    bool
	Reason  string
}

// HasCommand reports whether the decision sends a command
func (d Decision) HasCommand() bool { return d.Command != nil }

func (d Decision) String() string {
	switch {
	case d.Command != nil && d.Done:
		return fmt.Sprintf("%s, then stop: %s", d.Command, d.Reason)
	case d.Command != nil:
		return fmt.Sprintf("%s: %s", d.Command, d.Reason)
	case d.Wait > 0:
		return fmt.Sprintf("wait %s: %s", d.Wait.Round(time.Second), d.Reason)
	case d.Done:
		return "stop: " + d.Reason
	default:
		return "poll again: " + d.Reason
	}
}

func issue(cmd models.Command, format string, args ...any) Decision {
	return Decision{Command: &cmd, Reason: fmt.Sprintf(format, args...)}
}

func issueAndStop(cmd models.Command, format string, args ...any) Decision {
	return Decision{Command: &cmd, Done: true, Reason: fmt.Sprintf(format, args...)}
}

func waitFor(d time.Duration, format string, args ...any) Decision {
	return Decision{Wait: d, Reason: fmt.Sprintf(format, args...)}
}

func done(format string, args ...any) Decision {
	return Decision{Done: true, Reason: fmt.Sprintf(format, args...)}
}

func repoll(format string, args ...any) Decision {
	return Decision{Reason: fmt.Sprintf(format, args...)}
}

// RunSelectorPass returns the command sel would send for snap, if any
func RunSelectorPass(sel Selector, snap *models.Snapshot, now time.Time) (*models.Command, bool) {
	d := sel.Decide(snap, now)
	return d.Command, d.Command != nil
}

// Passes returns the selectors in the order one scheduling round runs them
func Passes(cfg *models.Config) []Selector {
	var tavern Selector = NewQuest(cfg.Budget)
	if cfg.TavernMode == models.TavernExpeditions {
		tavern = NewExpedition(cfg.Budget)
	}
	return []Selector{
		NewEquipment(DefaultItemWeights()),
		tavern,
		NewDungeon(cfg.Budget),
		NewArena(),
	}
}
