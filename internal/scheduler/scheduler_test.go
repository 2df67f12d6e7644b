package scheduler

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/DrobnyV/ShakesBot/internal/journal"
	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/selector"
	"github.com/DrobnyV/ShakesBot/internal/session"
)

type fakeClock struct {
	now       time.Time
	sleeps    []time.Duration
	ctxSleeps []time.Duration
	onSleep   func()
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 10, 14, 0, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) SleepContext(ctx context.Context, d time.Duration) error {
	c.ctxSleeps = append(c.ctxSleeps, d)
	if c.onSleep != nil {
		c.onSleep()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now = c.now.Add(d)
	return nil
}

type fakeSession struct {
	poll     func(n int) (*models.Snapshot, error)
	execute  func(cmd models.Command) (*models.Snapshot, error)
	polls    int
	commands []models.Command
}

func (f *fakeSession) Poll(ctx context.Context) (*models.Snapshot, error) {
	f.polls++
	return f.poll(f.polls)
}

func (f *fakeSession) Execute(ctx context.Context, cmd models.Command) (*models.Snapshot, error) {
	f.commands = append(f.commands, cmd)
	return f.execute(cmd)
}

type memRecorder struct {
	lines   []string
	entries []journal.Entry
}

func (r *memRecorder) Record(message string) { r.lines = append(r.lines, message) }

func (r *memRecorder) RecordEntry(e journal.Entry) { r.entries = append(r.entries, e) }

// lineRecorder only knows plain messages
type lineRecorder struct{ lines []string }

func (r *lineRecorder) Record(message string) { r.lines = append(r.lines, message) }

type stubSelector struct {
	name   string
	decide func(snap *models.Snapshot) selector.Decision
}

func (s stubSelector) Name() string { return s.name }

func (s stubSelector) Decide(snap *models.Snapshot, _ time.Time) selector.Decision {
	return s.decide(snap)
}

func command(cmd models.Command, done bool) selector.Decision {
	return selector.Decision{Command: &cmd, Done: done, Reason: "test"}
}

var testOptions = Options{
	TickDelay:       2 * time.Second,
	PassInterval:    time.Minute,
	MaxTicksPerPass: 20,
	MaxTickFailures: 3,
}

func newTestScheduler(rec Recorder, clock *fakeClock, passes ...selector.Selector) *Scheduler {
	s := New(rec, testOptions, passes...)
	s.Clock = clock
	return s
}

func TestRunPass_QuestLifecycle(t *testing.T) {
	clock := newFakeClock()
	var busyUntil time.Time

	idle := func(quests ...models.Quest) *models.Snapshot {
		s := &models.Snapshot{}
		s.Tavern.Activity.Kind = models.ActivityIdle
		s.Tavern.Quests = quests
		s.Tavern.ThirstSeconds = 6000
		s.Character.Bag = make(models.Inventory, 3)
		return s
	}
	running := func() *models.Snapshot {
		s := idle()
		s.Tavern.Activity = models.Activity{Kind: models.ActivityQuest, BusyUntil: busyUntil}
		return s
	}

	sess := &fakeSession{
		poll: func(n int) (*models.Snapshot, error) {
			if n == 1 {
				return idle(models.Quest{BaseExperience: 100, LengthSeconds: 300}), nil
			}
			return running(), nil
		},
		execute: func(cmd models.Command) (*models.Snapshot, error) {
			switch cmd.Kind {
			case models.CmdStartQuest:
				busyUntil = clock.Now().Add(testOptions.TickDelay + 30*time.Second)
				return running(), nil
			default:
				return idle(), nil
			}
		},
	}

	rec := &memRecorder{}
	s := newTestScheduler(rec, clock, selector.NewQuest(models.DefaultBudgetLimits()))
	res, err := s.RunPass(context.Background(), sess, s.passes[0])
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}

	wantCmds := []models.Command{models.StartQuest(0), models.FinishQuest(models.SkipNone)}
	if !reflect.DeepEqual(sess.commands, wantCmds) {
		t.Errorf("commands = %v, want %v", sess.commands, wantCmds)
	}
	if !reflect.DeepEqual(clock.sleeps, []time.Duration{30 * time.Second}) {
		t.Errorf("timer sleeps = %v, want exactly [30s]", clock.sleeps)
	}
	if sess.polls != 2 {
		t.Errorf("polls = %d, want 2 (start, after the wait)", sess.polls)
	}
	if res.Commands != 2 || res.Abandoned || res.Reason != "no quests offered" {
		t.Errorf("result = %+v", res)
	}

	for _, e := range rec.entries {
		if e.Pass != "quest" {
			t.Errorf("entry without pass name: %+v", e)
		}
	}
}

func TestRunPass_TransientFailuresAbandonPass(t *testing.T) {
	clock := newFakeClock()
	sess := &fakeSession{
		poll: func(int) (*models.Snapshot, error) { return nil, errors.New("connection reset") },
	}
	rec := &memRecorder{}
	sel := stubSelector{name: "stub", decide: func(*models.Snapshot) selector.Decision {
		t.Fatal("selector must not run without a snapshot")
		return selector.Decision{}
	}}

	res, err := newTestScheduler(rec, clock, sel).RunPass(context.Background(), sess, sel)
	if err != nil {
		t.Fatalf("transient failures must not surface: %v", err)
	}
	if !res.Abandoned || sess.polls != testOptions.MaxTickFailures {
		t.Errorf("result = %+v after %d polls, want abandoned after 3", res, sess.polls)
	}

	errorsSeen := 0
	for _, e := range rec.entries {
		if e.Kind == journal.KindError {
			errorsSeen++
		}
	}
	if errorsSeen != 3 {
		t.Errorf("recorded %d errors, want 3", errorsSeen)
	}
}

func TestRunPass_ExecuteFailureRepolls(t *testing.T) {
	clock := newFakeClock()
	execCalls := 0
	sess := &fakeSession{
		poll: func(int) (*models.Snapshot, error) { return &models.Snapshot{}, nil },
		execute: func(models.Command) (*models.Snapshot, error) {
			execCalls++
			if execCalls == 1 {
				return nil, &session.Error{Code: "rejected", Message: "try again"}
			}
			s := &models.Snapshot{}
			s.Character.Level = 1
			return s, nil
		},
	}
	sel := stubSelector{name: "stub", decide: func(snap *models.Snapshot) selector.Decision {
		if snap.Character.Level == 0 {
			return command(models.Update(), false)
		}
		return selector.Decision{Done: true, Reason: "levelled"}
	}}

	res, err := newTestScheduler(&memRecorder{}, clock, sel).RunPass(context.Background(), sess, sel)
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if sess.polls != 2 || execCalls != 2 {
		t.Errorf("polls = %d, executes = %d; want 2 and 2", sess.polls, execCalls)
	}
	if res.Commands != 1 || res.Abandoned || res.Reason != "levelled" {
		t.Errorf("result = %+v", res)
	}
}

func TestRunPass_TickLimit(t *testing.T) {
	clock := newFakeClock()
	sess := &fakeSession{poll: func(int) (*models.Snapshot, error) { return &models.Snapshot{}, nil }}
	sel := stubSelector{name: "stub", decide: func(*models.Snapshot) selector.Decision {
		return selector.Decision{Reason: "stage unknown"}
	}}

	s := newTestScheduler(&memRecorder{}, clock, sel)
	s.opts.MaxTicksPerPass = 5
	res, err := s.RunPass(context.Background(), sess, sel)
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if res.Ticks != 5 || sess.polls != 5 {
		t.Errorf("ticks = %d, polls = %d; want 5", res.Ticks, sess.polls)
	}
	if len(clock.ctxSleeps) != 4 {
		t.Errorf("tick delays = %v, want 4 between 5 ticks", clock.ctxSleeps)
	}
}

func TestRunAccountLoop_StopsOnUnrecoverable(t *testing.T) {
	clock := newFakeClock()
	sess := &fakeSession{
		poll: func(int) (*models.Snapshot, error) {
			return nil, &session.Error{Code: session.CodeAuth, Message: "login rejected"}
		},
	}
	sel := stubSelector{name: "stub", decide: func(*models.Snapshot) selector.Decision { return selector.Decision{Done: true} }}

	err := newTestScheduler(&memRecorder{}, clock, sel).RunAccountLoop(context.Background(), sess)
	if !errors.Is(err, session.ErrUnrecoverable) {
		t.Fatalf("err = %v, want ErrUnrecoverable", err)
	}
	if sess.polls != 1 {
		t.Errorf("polls = %d, want 1", sess.polls)
	}
}

func TestRunAccountLoop_CancelledBetweenRounds(t *testing.T) {
	clock := newFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock.onSleep = cancel

	sess := &fakeSession{poll: func(int) (*models.Snapshot, error) { return &models.Snapshot{}, nil }}
	first := stubSelector{name: "first", decide: func(*models.Snapshot) selector.Decision { return selector.Decision{Done: true} }}
	second := stubSelector{name: "second", decide: func(*models.Snapshot) selector.Decision { return selector.Decision{Done: true} }}

	err := newTestScheduler(&memRecorder{}, clock, first, second).RunAccountLoop(ctx, sess)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if sess.polls != 2 {
		t.Errorf("polls = %d, want one per pass", sess.polls)
	}
	if !reflect.DeepEqual(clock.ctxSleeps, []time.Duration{time.Minute}) {
		t.Errorf("sleeps = %v, want the pass interval", clock.ctxSleeps)
	}
}

func TestRunRound_PassOrder(t *testing.T) {
	clock := newFakeClock()
	var order []string
	mk := func(name string) selector.Selector {
		return stubSelector{name: name, decide: func(*models.Snapshot) selector.Decision {
			order = append(order, name)
			return selector.Decision{Done: true}
		}}
	}
	sess := &fakeSession{poll: func(int) (*models.Snapshot, error) { return &models.Snapshot{}, nil }}

	results, err := newTestScheduler(&memRecorder{}, clock, mk("equipment"), mk("quest"), mk("dungeon"), mk("arena")).
		RunRound(context.Background(), sess)
	if err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	want := []string{"equipment", "quest", "dungeon", "arena"}
	if !reflect.DeepEqual(order, want) || len(results) != 4 {
		t.Errorf("order = %v (%d results), want %v", order, len(results), want)
	}
}

func TestRecord_PlainRecorder(t *testing.T) {
	clock := newFakeClock()
	rec := &lineRecorder{}
	sess := &fakeSession{poll: func(int) (*models.Snapshot, error) { return &models.Snapshot{}, nil }}
	sel := stubSelector{name: "stub", decide: func(*models.Snapshot) selector.Decision {
		return selector.Decision{Done: true, Reason: "nothing to do"}
	}}

	if _, err := newTestScheduler(rec, clock, sel).RunPass(context.Background(), sess, sel); err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if len(rec.lines) != 1 || !strings.HasPrefix(rec.lines[0], "[stub #1] done: nothing to do") {
		t.Errorf("lines = %q", rec.lines)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := models.DefaultConfig()
	got := OptionsFromConfig(cfg)
	want := Options{TickDelay: 2 * time.Second, PassInterval: time.Minute, MaxTicksPerPass: 200, MaxTickFailures: 3}
	if got != want {
		t.Errorf("options = %+v, want %+v", got, want)
	}
}
