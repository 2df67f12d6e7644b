// Package wsclient implements session.Session over a websocket connection.
//
// Every call is one request/response pair:
//
//	-> {"id": 7, "op": "execute", "account": "main", "command": {...}}
//	<- {"id": 7, "snapshot": {...}}
//	<- {"id": 7, "error": {"code": "rejected", "message": "..."}}
//
// A broken connection is dropped and redialled on the next call.
package wsclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/session"
)

const (
	handshakeTimeout = 5 * time.Second
	callTimeout      = 30 * time.Second
)

const (
	opPoll    = "poll"
	opExecute = "execute"
)

type request struct {
	ID      uint64          `json:"id"`
	Op      string          `json:"op"`
	Account string          `json:"account"`
	Command *models.Command `json:"command,omitempty"`
}

type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type response struct {
	ID       uint64           `json:"id"`
	Snapshot *models.Snapshot `json:"snapshot,omitempty"`
	Error    *wireError       `json:"error,omitempty"`
}

// Client is a websocket game session for one account
type Client struct {
	url     string
	account string

	mu     sync.Mutex
	conn   *websocket.Conn
	nextID uint64
}

var _ session.Session = (*Client)(nil)

// Dial connects to url for account
func Dial(ctx context.Context, url, account string) (*Client, error) {
	c := &Client{url: url, account: account}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.connect(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) connect(ctx context.Context) error {
	d := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, resp, err := d.DialContext(ctx, c.url, http.Header{})
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	c.conn = conn
	return nil
}

func (c *Client) Poll(ctx context.Context) (*models.Snapshot, error) {
	return c.roundTrip(ctx, request{Op: opPoll})
}

func (c *Client) Execute(ctx context.Context, cmd models.Command) (*models.Snapshot, error) {
	return c.roundTrip(ctx, request{Op: opExecute, Command: &cmd})
}

// Close closes the connection; later calls redial
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) roundTrip(ctx context.Context, req request) (*models.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		if err := c.connect(ctx); err != nil {
			return nil, err
		}
	}

	c.nextID++
	req.ID = c.nextID
	req.Account = c.account

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(callTimeout)
	}

	// cancellation closes the socket so a blocked read or write returns at once
	conn := c.conn
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	_ = conn.SetWriteDeadline(deadline)
	if err := conn.WriteJSON(req); err != nil {
		c.drop()
		return nil, callError(ctx, "send "+req.Op, err)
	}

	for {
		_ = conn.SetReadDeadline(deadline)
		var resp response
		if err := conn.ReadJSON(&resp); err != nil {
			c.drop()
			return nil, callError(ctx, "read "+req.Op+" response", err)
		}
		if resp.ID != req.ID {
			// late answer to an abandoned call
			continue
		}
		if resp.Error != nil {
			return nil, &session.Error{Code: resp.Error.Code, Message: resp.Error.Message}
		}
		if resp.Snapshot == nil {
			return nil, errors.New("response carries no snapshot")
		}
		return resp.Snapshot, nil
	}
}

// callError prefers the context error once ctx is done
func callError(ctx context.Context, what string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", what, ctxErr)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func (c *Client) drop() {
	_ = c.conn.Close()
	c.conn = nil
}
