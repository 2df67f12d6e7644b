// Package scheduler runs the selectors against a live session.
//
// One round runs every pass in order. A pass ticks one selector until it
// is done: each tick takes the snapshot returned by the previous command
// (or polls for a fresh one), asks the selector for a decision and acts on
// it. Commands are never retried; a failure drops the snapshot and the next
// tick re-evaluates from a fresh poll.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DrobnyV/ShakesBot/internal/journal"
	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/selector"
	"github.com/DrobnyV/ShakesBot/internal/session"
)

// Recorder receives a human readable line for every decision and outcome
type Recorder interface {
	Record(message string)
}

// EntryRecorder is a Recorder that also takes structured entries
type EntryRecorder interface {
	Recorder
	RecordEntry(e journal.Entry)
}

// Options tunes the loop
type Options struct {
	TickDelay       time.Duration
	PassInterval    time.Duration
	MaxTicksPerPass int
	MaxTickFailures int
}

// OptionsFromConfig takes the loop settings from cfg
func OptionsFromConfig(cfg *models.Config) Options {
	return Options{
		TickDelay:       cfg.TickDelay,
		PassInterval:    cfg.PassInterval,
		MaxTicksPerPass: cfg.MaxTicksPerPass,
		MaxTickFailures: cfg.MaxTickFailures,
	}
}

// Scheduler drives one account
type Scheduler struct {
	Clock Clock

	passes []selector.Selector
	rec    Recorder
	opts   Options
}

// New creates a scheduler running passes in the given order
func New(rec Recorder, opts Options, passes ...selector.Selector) *Scheduler {
	if opts.MaxTicksPerPass <= 0 {
		opts.MaxTicksPerPass = 1
	}
	if opts.MaxTickFailures <= 0 {
		opts.MaxTickFailures = 1
	}
	return &Scheduler{
		Clock:  RealClock{},
		passes: passes,
		rec:    rec,
		opts:   opts,
	}
}

// PassResult summarises one pass
type PassResult struct {
	Pass      string
	Ticks     int
	Commands  int
	Abandoned bool
	Reason    string
}

// RunAccountLoop plays until ctx is cancelled or the session fails for good
func (s *Scheduler) RunAccountLoop(ctx context.Context, sess session.Session) error {
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		results, err := s.RunRound(ctx, sess)
		if err != nil {
			return err
		}

		commands := 0
		for _, r := range results {
			commands += r.Commands
		}
		s.record(journal.KindPass, "", 0, "round %d done with %d commands, next in %s", round, commands, s.opts.PassInterval)

		if err := s.Clock.SleepContext(ctx, s.opts.PassInterval); err != nil {
			return err
		}
	}
}

// RunRound runs every pass once
func (s *Scheduler) RunRound(ctx context.Context, sess session.Session) ([]PassResult, error) {
	results := make([]PassResult, 0, len(s.passes))
	for _, sel := range s.passes {
		res, err := s.RunPass(ctx, sess, sel)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// RunPass ticks sel until it is done, the tick limit hits or too many
// calls in a row fail. Only unrecoverable session errors and cancellation
// are returned.
func (s *Scheduler) RunPass(ctx context.Context, sess session.Session, sel selector.Selector) (PassResult, error) {
	res := PassResult{Pass: sel.Name()}
	name := sel.Name()

	var snap *models.Snapshot
	failures := 0

	// fail records a failed call and reports whether the pass must stop
	fail := func(tick int, what string, err error) (bool, error) {
		if errors.Is(err, session.ErrUnrecoverable) {
			s.record(journal.KindError, name, tick, "%s: %v", what, err)
			return true, fmt.Errorf("%s pass: %w", name, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return true, ctxErr
		}
		failures++
		s.record(journal.KindError, name, tick, "%s failed (%d/%d): %v", what, failures, s.opts.MaxTickFailures, err)
		if failures >= s.opts.MaxTickFailures {
			res.Abandoned = true
			res.Reason = fmt.Sprintf("%d failures in a row", failures)
			return true, nil
		}
		return false, nil
	}

	for tick := 1; tick <= s.opts.MaxTicksPerPass; tick++ {
		if tick > 1 {
			if err := s.Clock.SleepContext(ctx, s.opts.TickDelay); err != nil {
				return res, err
			}
		}
		res.Ticks = tick

		if snap == nil {
			polled, err := sess.Poll(ctx)
			if err != nil {
				if stop, ferr := fail(tick, "poll", err); stop {
					return res, ferr
				}
				continue
			}
			failures = 0
			snap = polled
		}

		d := sel.Decide(snap, s.Clock.Now())

		switch {
		case d.Command != nil:
			s.record(journal.KindCommand, name, tick, "%s: %s", d.Command, d.Reason)
			next, err := sess.Execute(ctx, *d.Command)
			if err != nil {
				snap = nil
				if stop, ferr := fail(tick, d.Command.String(), err); stop {
					return res, ferr
				}
				continue
			}
			failures = 0
			res.Commands++
			snap = next
			if d.Done {
				res.Reason = d.Reason
				return res, nil
			}

		case d.Wait > 0:
			s.record(journal.KindWait, name, tick, "wait %s: %s", d.Wait.Round(time.Second), d.Reason)
			s.Clock.Sleep(d.Wait)
			snap = nil

		case d.Done:
			s.record(journal.KindDecision, name, tick, "done: %s", d.Reason)
			res.Reason = d.Reason
			return res, nil

		default:
			s.record(journal.KindDecision, name, tick, "poll again: %s", d.Reason)
			snap = nil
		}
	}

	res.Reason = fmt.Sprintf("stopped after %d ticks", s.opts.MaxTicksPerPass)
	s.record(journal.KindDecision, name, res.Ticks, "%s", res.Reason)
	return res, nil
}

func (s *Scheduler) record(kind journal.Kind, pass string, tick int, format string, args ...any) {
	if s.rec == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if er, ok := s.rec.(EntryRecorder); ok {
		er.RecordEntry(journal.Entry{Time: s.Clock.Now(), Pass: pass, Tick: tick, Kind: kind, Message: msg})
		return
	}
	if pass != "" {
		msg = fmt.Sprintf("[%s #%d] %s", pass, tick, msg)
	}
	s.rec.Record(msg)
}
