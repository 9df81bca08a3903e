package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Event names on the notification channel.
const (
	EventStatusUpdate = "restaurant-status-update"
	EventNewOrder     = "new-order"
)

// StatusUpdate reports a change to a restaurant's verification status.
type StatusUpdate struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// NewOrder announces an incoming order.
type NewOrder struct {
	OrderID string `json:"orderId"`
}

type message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

var errUnknownEvent = errors.New("realtime: unknown event")

// decode turns a raw channel payload into one of the two recognized event
// kinds. Unknown events are reported so the read loop can skip them.
func decode(raw []byte) (interface{}, error) {
	var msg message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("realtime: bad payload: %w", err)
	}
	switch msg.Event {
	case EventStatusUpdate:
		var ev StatusUpdate
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			return nil, fmt.Errorf("realtime: bad %s data: %w", msg.Event, err)
		}
		return &ev, nil
	case EventNewOrder:
		var ev NewOrder
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			return nil, fmt.Errorf("realtime: bad %s data: %w", msg.Event, err)
		}
		return &ev, nil
	default:
		return nil, errUnknownEvent
	}
}

// shortOrderID is the display form of an order id: its last six characters.
func shortOrderID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
