package domain

// OrderStatus is the closed set of order states the backend reports.
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out-for-delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// NextStatuses returns the transitions the dashboard offers for an order in
// the given state. The transitions themselves are enforced server-side; this
// only drives which actions are shown.
func (s OrderStatus) NextStatuses() []OrderStatus {
	switch s {
	case OrderPending:
		return []OrderStatus{OrderConfirmed, OrderCancelled}
	case OrderConfirmed:
		return []OrderStatus{OrderPreparing, OrderCancelled}
	case OrderPreparing:
		return []OrderStatus{OrderOutForDelivery}
	case OrderOutForDelivery:
		return []OrderStatus{OrderDelivered}
	case OrderDelivered, OrderCancelled:
		return nil
	default:
		return nil
	}
}

func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderDelivered, OrderCancelled:
		return true
	case OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery:
		return false
	default:
		return false
	}
}

// TransactionStatus is the closed set of settlement states.
type TransactionStatus string

const (
	TxnPending  TransactionStatus = "pending"
	TxnSuccess  TransactionStatus = "success"
	TxnFailed   TransactionStatus = "failed"
	TxnRefunded TransactionStatus = "refunded"
)

// Tone classifies a status value for presentation.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneNegative:
		return "negative"
	case ToneNeutral:
		return "neutral"
	default:
		return "neutral"
	}
}

func (s TransactionStatus) Tone() Tone {
	switch s {
	case TxnSuccess:
		return TonePositive
	case TxnFailed, TxnRefunded:
		return ToneNegative
	case TxnPending:
		return ToneNeutral
	default:
		return ToneNeutral
	}
}

func (s OrderStatus) Tone() Tone {
	switch s {
	case OrderDelivered:
		return TonePositive
	case OrderCancelled:
		return ToneNegative
	case OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery:
		return ToneNeutral
	default:
		return ToneNeutral
	}
}

// RestaurantStatusTone maps a restaurant verification status to a tone.
// Unknown values deliberately land on neutral rather than being rejected:
// the backend owns this vocabulary and may grow it.
func RestaurantStatusTone(status string) Tone {
	switch status {
	case "active", "verified":
		return TonePositive
	case "suspended", "rejected":
		return ToneNegative
	case "pending", "inactive":
		return ToneNeutral
	default:
		return ToneNeutral
	}
}
