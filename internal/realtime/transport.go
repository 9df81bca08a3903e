package realtime

import "context"

// Conn is one live owner-scoped notification channel. Events() is closed
// when the connection dies or Close is called.
type Conn interface {
	Events() <-chan []byte
	Close() error
}

// Transport opens owner-scoped notification channels. Join must not return
// until the underlying subscription is confirmed: a join announced before
// the channel is actually connected would be silently dropped.
type Transport interface {
	Join(ctx context.Context, ownerID string) (Conn, error)
}
