package billing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/lumira-inc/lumira/internal/domain/billing/valueobjects"
	subvo "github.com/lumira-inc/lumira/internal/domain/subscription/valueobjects"
)

func newPlanOrder(t *testing.T) *Order {
	t.Helper()
	intent, err := NewPlanIntent(subvo.PlanPro, subvo.CycleMonthly)
	require.NoError(t, err)
	o, err := NewOrder(1, 199900, "INR", intent)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	o := newPlanOrder(t)

	assert.True(t, strings.HasPrefix(o.OrderNo(), "ord_"))
	assert.Equal(t, vo.OrderStatusPending, o.Status())
	assert.True(t, o.IsPending())
	assert.Equal(t, "Pro Plan (Monthly)", o.Description())
	assert.Nil(t, o.GatewayTxnID())
}

func TestNewOrder_Validation(t *testing.T) {
	intent, err := NewCreditPackIntent(50)
	require.NoError(t, err)

	_, err = NewOrder(0, 50000, "INR", intent)
	assert.Error(t, err, "missing user")

	_, err = NewOrder(1, 0, "INR", intent)
	assert.Error(t, err, "zero amount")

	_, err = NewOrder(1, 50000, "INR", PurchaseIntent{Kind: "mystery"})
	assert.Error(t, err, "unknown intent kind")
}

func TestMarkSucceeded(t *testing.T) {
	o := newPlanOrder(t)
	raw := map[string]string{"STATUS": "TXN_SUCCESS", "TXNID": "TXN123"}

	require.NoError(t, o.MarkSucceeded("TXN123", raw))
	assert.Equal(t, vo.OrderStatusSuccess, o.Status())
	require.NotNil(t, o.GatewayTxnID())
	assert.Equal(t, "TXN123", *o.GatewayTxnID())
	assert.Equal(t, raw, o.CallbackRaw())
}

func TestMarkSucceeded_TerminalIsSticky(t *testing.T) {
	o := newPlanOrder(t)
	require.NoError(t, o.MarkSucceeded("TXN123", nil))

	// Neither transition may leave a terminal state.
	assert.ErrorIs(t, o.MarkSucceeded("TXN456", nil), ErrOrderFinal)
	assert.ErrorIs(t, o.MarkFailed(nil), ErrOrderFinal)
	assert.Equal(t, vo.OrderStatusSuccess, o.Status())
	assert.Equal(t, "TXN123", *o.GatewayTxnID())
}

func TestMarkFailed_TerminalIsSticky(t *testing.T) {
	o := newPlanOrder(t)
	require.NoError(t, o.MarkFailed(map[string]string{"STATUS": "TXN_FAILURE"}))

	assert.ErrorIs(t, o.MarkSucceeded("TXN123", nil), ErrOrderFinal)
	assert.Equal(t, vo.OrderStatusFailed, o.Status())
}

func TestPurchaseIntent_PlanValidation(t *testing.T) {
	_, err := NewPlanIntent(subvo.PlanStarter, subvo.CycleMonthly)
	assert.Error(t, err, "starter is not purchasable")

	_, err = NewCreditPackIntent(0)
	assert.Error(t, err)
}

func TestPurchaseIntent_Description(t *testing.T) {
	plan, err := NewPlanIntent(subvo.PlanBusiness, subvo.CycleYearly)
	require.NoError(t, err)
	assert.Equal(t, "Business Plan (Yearly)", plan.Description())

	pack, err := NewCreditPackIntent(150)
	require.NoError(t, err)
	assert.Equal(t, "150 Credit Pack", pack.Description())
}

func TestOrderStatus_IsFinal(t *testing.T) {
	assert.False(t, vo.OrderStatusPending.IsFinal())
	assert.True(t, vo.OrderStatusSuccess.IsFinal())
	assert.True(t, vo.OrderStatusFailed.IsFinal())

	_, err := vo.NewOrderStatus("refunded")
	assert.Error(t, err)
}
