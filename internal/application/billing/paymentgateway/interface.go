// Package paymentgateway defines the interface to the external payment
// provider. The production implementation signs requests and verifies
// callback checksums; tests substitute a fake.
package paymentgateway

import (
	"context"
	"errors"
	"net/url"
)

// ErrInvalidSignature means a callback's checksum did not verify. The payload
// must not be trusted, including its status field.
var ErrInvalidSignature = errors.New("callback signature verification failed")

// CallbackStatus is the provider's verdict for a transaction.
type CallbackStatus string

const (
	CallbackSuccess CallbackStatus = "success"
	CallbackFailure CallbackStatus = "failure"
)

// CreateSessionRequest initiates a payment for an order.
type CreateSessionRequest struct {
	OrderNo    string
	Amount     int64 // minor currency unit
	Currency   string
	CustomerID string
}

// Session is what the client needs to open the provider's checkout.
type Session struct {
	Token       string `json:"token"`
	MerchantID  string `json:"merchant_id"`
	CallbackURL string `json:"callback_url"`
}

// CallbackData is a verified, normalized callback payload.
type CallbackData struct {
	OrderNo       string
	TransactionID string
	Status        CallbackStatus
	// Raw preserves the provider's parameters for the audit trail.
	Raw map[string]string
}

// Gateway is the payment provider port.
type Gateway interface {
	// CreateSession registers the order with the provider and returns the
	// checkout session the client opens.
	CreateSession(ctx context.Context, req CreateSessionRequest) (*Session, error)

	// VerifyCallback checks the callback's signature and normalizes it.
	// Returns ErrInvalidSignature when the checksum does not match; the
	// returned data is only meaningful on a nil error.
	VerifyCallback(params url.Values) (*CallbackData, error)
}
