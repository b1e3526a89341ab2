package domain

import "time"

type OrderStatus string

const (
	OrderStatusPrepping OrderStatus = "PREPPING"
	OrderStatusCooking  OrderStatus = "COOKING"
	OrderStatusReady    OrderStatus = "READY"
	OrderStatusServed   OrderStatus = "SERVED"
)

// statusRank orders the kitchen lifecycle. SERVED is reached only
// through ServeOrder, never through a plain status update.
var statusRank = map[OrderStatus]int{
	OrderStatusPrepping: 0,
	OrderStatusCooking:  1,
	OrderStatusReady:    2,
	OrderStatusServed:   3,
}

// IsValid reports whether s is one of the closed set of order statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// Active reports whether an order in this status still occupies its
// table. A served order no longer blocks new orders.
func (s OrderStatus) Active() bool {
	return s == OrderStatusPrepping || s == OrderStatusCooking || s == OrderStatusReady
}

// CanTransition reports whether a kitchen status update from s to next
// is allowed: strictly forward, skips permitted, nothing past READY.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok || next == OrderStatusServed {
		return false
	}
	if s == OrderStatusReady {
		return false
	}
	return to > from
}

type OrderItem struct {
	Name       string
	Quantity   int
	PriceCents int64
}

type Order struct {
	ID        int64
	TableID   int64
	Ticket    string
	Items     []OrderItem
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
