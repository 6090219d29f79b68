// Package billing holds the Order aggregate: a payment intent tracked from
// creation through gateway confirmation.
package billing

import (
	"fmt"
	"time"

	vo "github.com/lumira-inc/lumira/internal/domain/billing/valueobjects"
	"github.com/lumira-inc/lumira/internal/shared/biztime"
	"github.com/lumira-inc/lumira/internal/shared/id"
)

// Order is the aggregate root. Status transitions only pending -> success or
// pending -> failed, each at most once; the reconciler enforces at-most-once
// application under a row lock.
type Order struct {
	orderID       uint
	orderNo       string
	userID        uint
	amount        int64 // minor currency unit
	currency      string
	description   string
	intent        PurchaseIntent
	status        vo.OrderStatus
	gatewayTxnID  *string
	callbackRaw   map[string]string // raw gateway payload, stored on settlement
	createdAt     time.Time
	updatedAt     time.Time
}

// NewOrder creates a pending order for the given intent. The order number is
// globally unique and is the key the gateway echoes back in callbacks.
func NewOrder(userID uint, amount int64, currency string, intent PurchaseIntent) (*Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %d", amount)
	}
	if err := intent.Validate(); err != nil {
		return nil, fmt.Errorf("invalid purchase intent: %w", err)
	}

	orderNo, err := id.GenerateWithPrefix(id.PrefixOrder, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order no: %w", err)
	}

	now := biztime.NowUTC()
	return &Order{
		orderNo:     orderNo,
		userID:      userID,
		amount:      amount,
		currency:    currency,
		description: intent.Description(),
		intent:      intent,
		status:      vo.OrderStatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// MarkSucceeded transitions pending -> success, storing the gateway
// transaction id and raw payload. Terminal orders return ErrOrderFinal.
func (o *Order) MarkSucceeded(gatewayTxnID string, raw map[string]string) error {
	if o.status.IsFinal() {
		return ErrOrderFinal
	}
	o.status = vo.OrderStatusSuccess
	o.gatewayTxnID = &gatewayTxnID
	o.callbackRaw = raw
	o.updatedAt = biztime.NowUTC()
	return nil
}

// MarkFailed transitions pending -> failed. Terminal orders return
// ErrOrderFinal.
func (o *Order) MarkFailed(raw map[string]string) error {
	if o.status.IsFinal() {
		return ErrOrderFinal
	}
	o.status = vo.OrderStatusFailed
	o.callbackRaw = raw
	o.updatedAt = biztime.NowUTC()
	return nil
}

// IsPending reports whether the order still awaits settlement.
func (o *Order) IsPending() bool {
	return o.status == vo.OrderStatusPending
}

// SetID sets the order ID after persistence.
func (o *Order) SetID(orderID uint) {
	o.orderID = orderID
}

func (o *Order) ID() uint                    { return o.orderID }
func (o *Order) OrderNo() string             { return o.orderNo }
func (o *Order) UserID() uint                { return o.userID }
func (o *Order) Amount() int64               { return o.amount }
func (o *Order) Currency() string            { return o.currency }
func (o *Order) Description() string         { return o.description }
func (o *Order) Intent() PurchaseIntent      { return o.intent }
func (o *Order) Status() vo.OrderStatus      { return o.status }
func (o *Order) GatewayTxnID() *string       { return o.gatewayTxnID }
func (o *Order) CallbackRaw() map[string]string { return o.callbackRaw }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) UpdatedAt() time.Time        { return o.updatedAt }

// ReconstructOrder rebuilds an Order from persistence.
func ReconstructOrder(
	orderID uint,
	orderNo string,
	userID uint,
	amount int64,
	currency, description string,
	intent PurchaseIntent,
	status vo.OrderStatus,
	gatewayTxnID *string,
	callbackRaw map[string]string,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		orderID:      orderID,
		orderNo:      orderNo,
		userID:       userID,
		amount:       amount,
		currency:     currency,
		description:  description,
		intent:       intent,
		status:       status,
		gatewayTxnID: gatewayTxnID,
		callbackRaw:  callbackRaw,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}
