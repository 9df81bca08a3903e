package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"pickfoo-owner/internal/alerts"
	"pickfoo-owner/internal/domain"
	"pickfoo-owner/internal/guard"
)

// Auto-dismiss durations per event kind.
const (
	statusUpdateDuration = 8 * time.Second
	newOrderDuration     = 10 * time.Second
)

// Subscriber owns the live notification channel. There is at most one open
// channel at any time: attaching a new identity closes the previous channel
// first, and detaching closes it outright.
type Subscriber struct {
	Transport Transport
	Alerts    *alerts.Center

	mu    sync.Mutex
	owner string
	conn  Conn
}

func NewSubscriber(transport Transport, center *alerts.Center) *Subscriber {
	return &Subscriber{Transport: transport, Alerts: center}
}

// Attach opens the channel for ownerID. Re-attaching the same identity on a
// live channel is a no-op. Connection failures are logged, never surfaced:
// the transport reconnects on its own.
func (s *Subscriber) Attach(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	if s.conn != nil && s.owner == ownerID {
		s.mu.Unlock()
		return nil
	}
	prev := s.conn
	s.conn = nil
	s.owner = ""
	s.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}

	conn, err := s.Transport.Join(ctx, ownerID)
	if err != nil {
		log.Printf("[realtime] join failed for owner %s: %v", ownerID, err)
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.owner = ownerID
	s.mu.Unlock()

	go s.readLoop(conn)
	log.Printf("[realtime] joined owner room %s", ownerID)
	return nil
}

// Detach closes the channel synchronously. Events already in flight are
// dropped: once the connection is gone no handler remains to see them.
func (s *Subscriber) Detach() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.owner = ""
	s.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

// Owner returns the identity of the live channel, or "".
func (s *Subscriber) Owner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return ""
	}
	return s.owner
}

func (s *Subscriber) readLoop(conn Conn) {
	for raw := range conn.Events() {
		ev, err := decode(raw)
		if err != nil {
			if err != errUnknownEvent {
				log.Printf("[realtime] dropping event: %v", err)
			}
			continue
		}
		s.handle(ev)
	}
}

func (s *Subscriber) handle(ev interface{}) {
	switch ev := ev.(type) {
	case *StatusUpdate:
		s.Alerts.Push(alerts.Alert{
			Title:    "Restaurant Status Update",
			Message:  ev.Message,
			Tone:     domain.RestaurantStatusTone(ev.Status),
			Route:    guard.RouteRestaurants,
			Duration: statusUpdateDuration,
		})
	case *NewOrder:
		s.Alerts.Push(alerts.Alert{
			Title:    "New Order Received",
			Message:  "New order #" + shortOrderID(ev.OrderID) + " received!",
			Tone:     domain.TonePositive,
			Route:    guard.RouteOrders,
			Duration: newOrderDuration,
		})
	}
}
