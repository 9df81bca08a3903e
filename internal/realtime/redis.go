package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ownerChannel is the room naming scheme: one pub/sub channel per owner id.
func ownerChannel(ownerID string) string {
	return "owner:" + ownerID
}

// RedisTransport delivers notifications over redis pub/sub. Reconnection is
// handled by go-redis itself; the subscriber does not re-implement it.
type RedisTransport struct {
	Client *redis.Client
}

func NewRedisTransport(client *redis.Client) *RedisTransport {
	return &RedisTransport{Client: client}
}

func (t *RedisTransport) Join(ctx context.Context, ownerID string) (Conn, error) {
	sub := t.Client.Subscribe(ctx, ownerChannel(ownerID))

	// Receive blocks until the server acknowledges the SUBSCRIBE, so by the
	// time Join returns the room membership is effective.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			out <- []byte(msg.Payload)
		}
	}()

	return &redisConn{sub: sub, out: out}, nil
}

type redisConn struct {
	sub *redis.PubSub
	out chan []byte
}

func (c *redisConn) Events() <-chan []byte {
	return c.out
}

func (c *redisConn) Close() error {
	return c.sub.Close()
}
