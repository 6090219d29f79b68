package valueobjects

import "fmt"

// OrderStatus is the order state machine: pending is the only non-terminal
// state, and a terminal state is never left.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusSuccess OrderStatus = "success"
	OrderStatusFailed  OrderStatus = "failed"
)

// NewOrderStatus validates a stored status string.
func NewOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	switch st {
	case OrderStatusPending, OrderStatusSuccess, OrderStatusFailed:
		return st, nil
	}
	return "", fmt.Errorf("invalid order status: %s", s)
}

// IsFinal reports whether the status is terminal.
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusSuccess || s == OrderStatusFailed
}

func (s OrderStatus) String() string {
	return string(s)
}
