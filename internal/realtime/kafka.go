package realtime

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"

	"pickfoo-owner/config"
)

// KafkaTransport consumes the owner-notification topic. Messages are keyed
// by owner id; this connection drops everything not addressed to its owner.
// At-least-once delivery and reconnection come from the kafka reader.
type KafkaTransport struct {
	Topic string
}

func NewKafkaTransport(topic string) *KafkaTransport {
	return &KafkaTransport{Topic: topic}
}

func (t *KafkaTransport) Join(ctx context.Context, ownerID string) (Conn, error) {
	// One consumer group per owner: each identity gets its own offset
	// cursor on the shared topic.
	reader := config.NewKafkaReader(t.Topic, "owner-dashboard-"+ownerID)

	loopCtx, cancel := context.WithCancel(context.Background())
	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			msg, err := reader.ReadMessage(loopCtx)
			if err != nil {
				if loopCtx.Err() != nil {
					return
				}
				log.Printf("[realtime] kafka read error: %v", err)
				return
			}
			if string(msg.Key) != ownerID {
				continue
			}
			select {
			case out <- msg.Value:
			case <-loopCtx.Done():
				return
			}
		}
	}()

	return &kafkaConn{reader: reader, cancel: cancel, out: out}, nil
}

type kafkaConn struct {
	reader *kafka.Reader
	cancel context.CancelFunc
	out    chan []byte
}

func (c *kafkaConn) Events() <-chan []byte {
	return c.out
}

func (c *kafkaConn) Close() error {
	c.cancel()
	return c.reader.Close()
}
