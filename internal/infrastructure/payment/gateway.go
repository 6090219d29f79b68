// Package payment implements the payment gateway port against a
// Paytm-style checkout provider: orders are registered with a signed token
// and callbacks carry an HMAC checksum over their parameters.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/lumira-inc/lumira/internal/application/billing/paymentgateway"
	"github.com/lumira-inc/lumira/internal/shared/config"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

const (
	paramOrderNo  = "ORDERID"
	paramStatus   = "STATUS"
	paramTxnID    = "TXNID"
	paramChecksum = "CHECKSUMHASH"

	statusSuccess = "TXN_SUCCESS"
)

// Gateway signs checkout tokens and verifies callback checksums with the
// merchant key.
type Gateway struct {
	merchantID  string
	merchantKey []byte
	website     string
	callbackURL string
	logger      logger.Interface
}

// NewGateway creates a Gateway from configuration.
func NewGateway(cfg config.GatewayConfig, log logger.Interface) *Gateway {
	return &Gateway{
		merchantID:  cfg.MerchantID,
		merchantKey: []byte(cfg.MerchantKey),
		website:     cfg.Website,
		callbackURL: cfg.CallbackURL,
		logger:      log,
	}
}

// CreateSession produces the signed checkout token for an order. The token is
// the checksum over the order parameters; the provider recomputes it to
// authenticate the checkout.
func (g *Gateway) CreateSession(ctx context.Context, req paymentgateway.CreateSessionRequest) (*paymentgateway.Session, error) {
	if req.OrderNo == "" || req.Amount <= 0 {
		return nil, fmt.Errorf("invalid session request: order %q amount %d", req.OrderNo, req.Amount)
	}

	params := map[string]string{
		"MID":          g.merchantID,
		paramOrderNo:   req.OrderNo,
		"TXN_AMOUNT":   fmt.Sprintf("%.2f", float64(req.Amount)/100),
		"CURRENCY":     req.Currency,
		"CUST_ID":      req.CustomerID,
		"WEBSITE":      g.website,
		"CALLBACK_URL": g.callbackURL,
	}

	return &paymentgateway.Session{
		Token:       g.sign(params),
		MerchantID:  g.merchantID,
		CallbackURL: g.callbackURL,
	}, nil
}

// VerifyCallback authenticates and normalizes a callback. The checksum covers
// every parameter except the checksum itself; a mismatch rejects the payload
// outright.
func (g *Gateway) VerifyCallback(params url.Values) (*paymentgateway.CallbackData, error) {
	checksum := params.Get(paramChecksum)
	if checksum == "" {
		return nil, fmt.Errorf("%w: missing checksum", paymentgateway.ErrInvalidSignature)
	}

	signed := make(map[string]string, len(params))
	for key := range params {
		if key == paramChecksum {
			continue
		}
		signed[key] = params.Get(key)
	}

	expected := g.sign(signed)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(checksum)) != 1 {
		return nil, paymentgateway.ErrInvalidSignature
	}

	orderNo := params.Get(paramOrderNo)
	if orderNo == "" {
		return nil, fmt.Errorf("callback carries no order number")
	}

	status := paymentgateway.CallbackFailure
	if params.Get(paramStatus) == statusSuccess {
		status = paymentgateway.CallbackSuccess
	}

	return &paymentgateway.CallbackData{
		OrderNo:       orderNo,
		TransactionID: params.Get(paramTxnID),
		Status:        status,
		Raw:           signed,
	}, nil
}

// sign computes the HMAC-SHA256 checksum over the parameters in key order.
func (g *Gateway) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}

	mac := hmac.New(sha256.New, g.merchantKey)
	mac.Write([]byte(b.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
