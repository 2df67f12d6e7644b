// Package journal records what the bot decided and did.
//
// A Multi fans every entry out to its sinks: the console logger, the sqlite
// decision journal and the compressed JSONL archive. Sink failures are
// logged and swallowed so that recording never blocks play.
package journal

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DrobnyV/ShakesBot/internal/models"
)

// Kind classifies an entry
type Kind string

const (
	KindNote     Kind = "note"
	KindDecision Kind = "decision"
	KindCommand  Kind = "command"
	KindWait     Kind = "wait"
	KindError    Kind = "error"
	KindPass     Kind = "pass"
)

// Entry is one journal line
type Entry struct {
	Time    time.Time `json:"time"`
	Account string    `json:"account"`
	Pass    string    `json:"pass,omitempty"`
	Tick    int       `json:"tick,omitempty"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
}

func (e Entry) String() string {
	if e.Pass == "" {
		return fmt.Sprintf("%s [%s] %s", e.Time.Format(time.DateTime), e.Kind, e.Message)
	}
	return fmt.Sprintf("%s [%s] %s #%d: %s", e.Time.Format(time.DateTime), e.Kind, e.Pass, e.Tick, e.Message)
}

// Sink stores entries
type Sink interface {
	Write(e Entry) error
}

// Multi is the fan-out recorder handed to the scheduler
type Multi struct {
	account string
	sinks   []Sink
	warn    *logrus.Logger
	now     func() time.Time
}

// NewMulti records for account into sinks; sink errors go to warn
func NewMulti(account string, warn *logrus.Logger, sinks ...Sink) *Multi {
	return &Multi{account: account, sinks: sinks, warn: warn, now: time.Now}
}

// Record writes a free-form note
func (m *Multi) Record(message string) {
	m.RecordEntry(Entry{Kind: KindNote, Message: message})
}

// RecordEntry stamps e with time and account and writes it to every sink
func (m *Multi) RecordEntry(e Entry) {
	if e.Time.IsZero() {
		e.Time = m.now()
	}
	if e.Account == "" {
		e.Account = m.account
	}
	for _, s := range m.sinks {
		if err := s.Write(e); err != nil && m.warn != nil {
			m.warn.WithError(err).WithField("sink", fmt.Sprintf("%T", s)).Warn("journal write failed")
		}
	}
}

// Close closes every sink that holds resources
func (m *Multi) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if c, ok := s.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}

// Open builds the journal described by cfg. The console sink is always on;
// sqlite and archive sinks only when configured.
func Open(cfg models.JournalConfig, account string, log *logrus.Logger) (*Multi, error) {
	sinks := []Sink{NewLogRecorder(log)}

	if cfg.SQLite != "" {
		store, err := OpenStore(cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("open journal store: %w", err)
		}
		sinks = append(sinks, store)
	}
	if cfg.ArchiveDir != "" {
		sinks = append(sinks, NewArchive(filepath.Join(cfg.ArchiveDir, account), "journal"))
	}
	return NewMulti(account, log, sinks...), nil
}
