package entity

import (
	"slices"
	"time"
)

// OrderStatus is the lifecycle tag of an order. Values are the strings stored in documents.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusProcessed  OrderStatus = "Processed"
	OrderStatusShipped    OrderStatus = "Send you"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusReceived   OrderStatus = "Received"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// orderFlow is the forward path an order travels.
var orderFlow = []OrderStatus{
	OrderStatusProcessing,
	OrderStatusProcessed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusReceived,
}

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusCancelled || slices.Contains(orderFlow, s)
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusReceived || s == OrderStatusCancelled
}

// CanTransitionTo allows forward moves along the flow and cancellation of a live order.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.IsValid() || s.IsTerminal() || s == next {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	return slices.Index(orderFlow, next) > slices.Index(orderFlow, s)
}

// Order is an immutable snapshot of a basket handed over for fulfilment.
// Only Status changes after creation.
type Order struct {
	ID        string      `json:"id"`
	Basket    *FullBasket `json:"basket"`
	Username  string      `json:"username"`
	CreatedAt time.Time   `json:"created"`
	PostIndex int         `json:"post_index"`
	Status    OrderStatus `json:"status"`
}
