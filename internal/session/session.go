// Package session defines the game session the scheduler talks to.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/DrobnyV/ShakesBot/internal/models"
)

// ErrUnrecoverable marks failures that should stop the account loop,
// such as a rejected login.
var ErrUnrecoverable = errors.New("unrecoverable session error")

// Session is a logged-in game account.
// Both calls return the account state after the call completed.
type Session interface {
	Poll(ctx context.Context) (*models.Snapshot, error)
	Execute(ctx context.Context, cmd models.Command) (*models.Snapshot, error)
}

// Error codes the game server may report
const (
	CodeAuth          = "auth"
	CodeUnrecoverable = "unrecoverable"
)

// Error is a failure reported by the server
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("session error %s: %s", e.Code, e.Message)
}

// Unwrap exposes ErrUnrecoverable for auth and unrecoverable codes
func (e *Error) Unwrap() error {
	if e.Unrecoverable() {
		return ErrUnrecoverable
	}
	return nil
}

// Unrecoverable reports whether the code ends the session for good
func (e *Error) Unrecoverable() bool {
	return e.Code == CodeAuth || e.Code == CodeUnrecoverable
}
