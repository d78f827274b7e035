// Package notify delivers change hints for the transactions table over
// Postgres LISTEN/NOTIFY. Hints carry no payload and are at-least-once:
// subscribers treat every hint as "re-run your idempotent fetch and
// aggregate pipeline", which stays correct under duplicate delivery.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// Channel is the Postgres notification channel the transactions trigger
// fires on. The trigger is installed by migration.
const Channel = "transactions_changed"

const reconnectDelay = 5 * time.Second

type Listener struct {
	connStr string

	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewListener(connStr string) *Listener {
	return &Listener{
		connStr: connStr,
		subs:    make(map[chan struct{}]struct{}),
	}
}

// Subscribe returns a channel that receives a hint whenever transactions
// change. A slow subscriber gets hints coalesced, never queued.
func (l *Listener) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)

	l.mu.Lock()
	l.subs[ch] = struct{}{}
	l.mu.Unlock()

	return ch
}

func (l *Listener) Unsubscribe(ch chan struct{}) {
	l.mu.Lock()
	delete(l.subs, ch)
	l.mu.Unlock()
}

// Run blocks listening for notifications until the context is canceled,
// reconnecting with a delay after connection loss. Notifications that fire
// while reconnecting are missed, which at worst delays a recompute until
// the next change.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		slog.Error("notification listener disconnected", "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connStr)
	if err != nil {
		return fmt.Errorf("connecting listener: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return fmt.Errorf("listening on %s: %w", Channel, err)
	}

	for {
		if _, err := conn.WaitForNotification(ctx); err != nil {
			return fmt.Errorf("waiting for notification: %w", err)
		}

		l.broadcast()
	}
}

func (l *Listener) broadcast() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ch := range l.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
