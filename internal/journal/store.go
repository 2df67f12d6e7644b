package journal

import (
	"database/sql"
	"fmt"
	"slices"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the sqlite decision journal
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the journal database at path
func OpenStore(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(2)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		account    TEXT NOT NULL,
		pass       TEXT,
		tick       INTEGER NOT NULL DEFAULT 0,
		kind       TEXT NOT NULL,
		message    TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_account ON entries(account, id);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Write(e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO entries (account, pass, tick, kind, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Account, e.Pass, e.Tick, string(e.Kind), e.Message,
		e.Time.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns the last limit entries in the order they were written.
// An empty account returns entries of every account.
func (s *Store) Recent(account string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT account, COALESCE(pass,''), tick, kind, message, created_at
		 FROM entries WHERE ? = '' OR account = ?
		 ORDER BY id DESC LIMIT ?`,
		account, account, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	slices.Reverse(entries)
	return entries, nil
}

// Count returns the number of stored entries
func (s *Store) Count() int64 {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0
	}
	return n
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind, created string
		if err := rows.Scan(&e.Account, &e.Pass, &e.Tick, &kind, &e.Message, &created); err != nil {
			return nil, err
		}
		e.Kind = Kind(kind)
		t, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		e.Time = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
