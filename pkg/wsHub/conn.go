package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var ErrConnClosed = errors.New("connection closed")

const defaultWriteTimeout = 10 * time.Second

type Conn struct {
	conn         *websocket.Conn
	id           uuid.UUID
	doneCtx      context.Context
	cancel       context.CancelFunc
	writeTimeout time.Duration
	mu           sync.Mutex
	closed       bool
}

// NewConn wraps a websocket connection. The connection context is cancelled by
// Close, by the parent context, or when the peer goes away while Listen runs.
func NewConn(ctx context.Context, id uuid.UUID, conn *websocket.Conn, writeTimeout time.Duration) *Conn {
	ctx, cancel := context.WithCancel(ctx)
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}

	return &Conn{
		conn:         conn,
		id:           id,
		doneCtx:      ctx,
		cancel:       cancel,
		writeTimeout: writeTimeout,
	}
}

func (c *Conn) ID() uuid.UUID {
	return c.id
}

// Context is done once the connection is gone.
func (c *Conn) Context() context.Context {
	return c.doneCtx
}

// Ping checks the peer is still reachable.
func (c *Conn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.usableLocked(); err != nil {
		return err
	}

	if err := c.conn.WriteControl(
		websocket.PingMessage,
		[]byte("ping"),
		time.Now().Add(c.writeTimeout),
	); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Send writes msg as JSON.
func (c *Conn) Send(msg any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.usableLocked(); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	return c.conn.WriteJSON(msg)
}

// Listen reads messages until the peer disconnects or the connection is closed.
// Reading is what notices a closed peer, so the context is cancelled on return.
func (c *Conn) Listen(handler func(msg map[string]any) error) error {
	defer c.cancel()

	for {
		var msg map[string]any
		if err := c.conn.ReadJSON(&msg); err != nil {
			if c.doneCtx.Err() != nil {
				return ErrConnClosed
			}
			return fmt.Errorf("read failed: %w", err)
		}
		if handler == nil {
			continue
		}
		if err := handler(msg); err != nil {
			return fmt.Errorf("handler failed: %w", err)
		}
	}
}

// CloseWithMessage sends a close frame before closing.
func (c *Conn) CloseWithMessage(code int, text string) error {
	c.mu.Lock()
	if c.usableLocked() == nil {
		_ = c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(code, text),
			time.Now().Add(c.writeTimeout),
		)
	}
	c.mu.Unlock()

	return c.Close()
}

func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

func (c *Conn) usableLocked() error {
	if c.conn == nil {
		return errors.New("connection is nil")
	}
	if c.closed || c.doneCtx.Err() != nil {
		return ErrConnClosed
	}
	return nil
}
