package usecases

import (
	"context"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumira-inc/lumira/internal/application/billing/paymentgateway"
	"github.com/lumira-inc/lumira/internal/application/testutil"
	"github.com/lumira-inc/lumira/internal/domain/billing"
	vo "github.com/lumira-inc/lumira/internal/domain/billing/valueobjects"
	"github.com/lumira-inc/lumira/internal/domain/subscription"
	subvo "github.com/lumira-inc/lumira/internal/domain/subscription/valueobjects"
	"github.com/lumira-inc/lumira/internal/domain/user"
)

type callbackFixture struct {
	users   *testutil.MockUserRepository
	subs    *testutil.MockSubscriptionRepository
	orders  *testutil.MockOrderRepository
	gateway *testutil.MockGateway
	user    *user.User
	sub     *subscription.Subscription
}

func newCallbackFixture(t *testing.T) (*HandleCallbackUseCase, *callbackFixture) {
	t.Helper()
	f := &callbackFixture{
		users:   testutil.NewMockUserRepository(),
		subs:    testutil.NewMockSubscriptionRepository(),
		orders:  testutil.NewMockOrderRepository(),
		gateway: &testutil.MockGateway{},
	}

	u, err := user.NewUser("sub-1", "Ada", "ada@example.com", true, 5)
	require.NoError(t, err)
	f.user = f.users.Seed(u)

	sub, err := subscription.NewStarterSubscription(f.user.ID())
	require.NoError(t, err)
	f.sub = f.subs.Seed(sub)

	uc := NewHandleCallbackUseCase(
		f.orders, f.users, f.subs, f.gateway,
		&testutil.SerialTxRunner{}, testutil.NewNopLogger(),
	)
	return uc, f
}

func (f *callbackFixture) seedPackOrder(t *testing.T, credits int) *billing.Order {
	t.Helper()
	intent, err := billing.NewCreditPackIntent(credits)
	require.NoError(t, err)
	o, err := billing.NewOrder(f.user.ID(), 50000, "INR", intent)
	require.NoError(t, err)
	return f.orders.Seed(o)
}

func (f *callbackFixture) seedPlanOrder(t *testing.T) *billing.Order {
	t.Helper()
	intent, err := billing.NewPlanIntent(subvo.PlanPro, subvo.CycleMonthly)
	require.NoError(t, err)
	o, err := billing.NewOrder(f.user.ID(), 199900, "INR", intent)
	require.NoError(t, err)
	return f.orders.Seed(o)
}

func successParams(orderNo string) url.Values {
	return url.Values{
		"ORDERID": {orderNo},
		"TXNID":   {"TXN-1"},
		"STATUS":  {"TXN_SUCCESS"},
	}
}

func TestHandleCallback_CreditPackSuccess(t *testing.T) {
	uc, f := newCallbackFixture(t)
	order := f.seedPackOrder(t, 50)

	redirect := uc.Execute(context.Background(), successParams(order.OrderNo()))

	assert.True(t, redirect.Succeeded)
	assert.Equal(t, order.OrderNo(), redirect.OrderNo)
	assert.Equal(t, vo.OrderStatusSuccess, f.orders.Get(order.OrderNo()).Status())
	assert.Equal(t, 55, f.users.Credits(f.user.ID()), "pack credits added on settlement")
}

func TestHandleCallback_PlanSuccess(t *testing.T) {
	uc, f := newCallbackFixture(t)
	order := f.seedPlanOrder(t)

	redirect := uc.Execute(context.Background(), successParams(order.OrderNo()))

	assert.True(t, redirect.Succeeded)
	current := f.subs.Current(f.user.ID())
	assert.Equal(t, subvo.PlanPro, current.Plan())
	assert.True(t, current.IsActive())
	require.NotNil(t, current.CurrentPeriodEnd())
	assert.Equal(t, 5, f.users.Credits(f.user.ID()), "plan purchase grants no credits")
}

func TestHandleCallback_Failure(t *testing.T) {
	uc, f := newCallbackFixture(t)
	order := f.seedPackOrder(t, 50)

	f.gateway.VerifyFn = func(params url.Values) (*paymentgateway.CallbackData, error) {
		return &paymentgateway.CallbackData{
			OrderNo: order.OrderNo(),
			Status:  paymentgateway.CallbackFailure,
			Raw:     map[string]string{"STATUS": "TXN_FAILURE"},
		}, nil
	}

	redirect := uc.Execute(context.Background(), url.Values{"ORDERID": {order.OrderNo()}})

	assert.False(t, redirect.Succeeded)
	assert.Equal(t, vo.OrderStatusFailed, f.orders.Get(order.OrderNo()).Status())
	assert.Equal(t, 5, f.users.Credits(f.user.ID()), "failed payment grants nothing")
}

func TestHandleCallback_DuplicateSuccessGrantsOnce(t *testing.T) {
	uc, f := newCallbackFixture(t)
	order := f.seedPackOrder(t, 50)

	first := uc.Execute(context.Background(), successParams(order.OrderNo()))
	second := uc.Execute(context.Background(), successParams(order.OrderNo()))

	assert.True(t, first.Succeeded)
	assert.True(t, second.Succeeded, "duplicate still redirects to the success page")
	assert.Equal(t, 55, f.users.Credits(f.user.ID()), "credits granted exactly once")
	assert.Equal(t, 1, f.users.AddCalls)
}

func TestHandleCallback_SuccessAfterFailureDoesNotGrant(t *testing.T) {
	uc, f := newCallbackFixture(t)
	order := f.seedPackOrder(t, 50)

	f.gateway.VerifyFn = func(params url.Values) (*paymentgateway.CallbackData, error) {
		status := paymentgateway.CallbackFailure
		if params.Get("STATUS") == "TXN_SUCCESS" {
			status = paymentgateway.CallbackSuccess
		}
		return &paymentgateway.CallbackData{
			OrderNo:       order.OrderNo(),
			TransactionID: params.Get("TXNID"),
			Status:        status,
			Raw:           map[string]string{},
		}, nil
	}

	failed := uc.Execute(context.Background(), url.Values{"ORDERID": {order.OrderNo()}, "STATUS": {"TXN_FAILURE"}})
	assert.False(t, failed.Succeeded)

	// A later success for the same order must not flip the terminal state.
	late := uc.Execute(context.Background(), successParams(order.OrderNo()))
	assert.False(t, late.Succeeded, "terminal failure wins; redirect reports it")
	assert.Equal(t, vo.OrderStatusFailed, f.orders.Get(order.OrderNo()).Status())
	assert.Equal(t, 5, f.users.Credits(f.user.ID()))
}

func TestHandleCallback_ConcurrentDuplicatesGrantOnce(t *testing.T) {
	uc, f := newCallbackFixture(t)
	order := f.seedPackOrder(t, 50)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.Execute(context.Background(), successParams(order.OrderNo()))
		}()
	}
	wg.Wait()

	assert.Equal(t, vo.OrderStatusSuccess, f.orders.Get(order.OrderNo()).Status())
	assert.Equal(t, 55, f.users.Credits(f.user.ID()), "racing duplicates settle exactly once")
	assert.Equal(t, 1, f.users.AddCalls)
}

func TestHandleCallback_InvalidSignature(t *testing.T) {
	uc, f := newCallbackFixture(t)
	order := f.seedPackOrder(t, 50)

	f.gateway.VerifyFn = func(params url.Values) (*paymentgateway.CallbackData, error) {
		return nil, paymentgateway.ErrInvalidSignature
	}

	redirect := uc.Execute(context.Background(), successParams(order.OrderNo()))

	assert.False(t, redirect.Succeeded)
	assert.Equal(t, vo.OrderStatusFailed, f.orders.Get(order.OrderNo()).Status(),
		"unverifiable callback fails the pending order")
	assert.Equal(t, 5, f.users.Credits(f.user.ID()), "forged payload grants nothing")
}

func TestHandleCallback_InvalidSignatureLeavesTerminalOrderAlone(t *testing.T) {
	uc, f := newCallbackFixture(t)
	order := f.seedPackOrder(t, 50)

	// Settle first, then deliver a forged duplicate.
	uc.Execute(context.Background(), successParams(order.OrderNo()))
	f.gateway.VerifyFn = func(params url.Values) (*paymentgateway.CallbackData, error) {
		return nil, paymentgateway.ErrInvalidSignature
	}

	redirect := uc.Execute(context.Background(), successParams(order.OrderNo()))

	assert.False(t, redirect.Succeeded)
	assert.Equal(t, vo.OrderStatusSuccess, f.orders.Get(order.OrderNo()).Status(),
		"settled order is immune to forged callbacks")
	assert.Equal(t, 55, f.users.Credits(f.user.ID()))
}

func TestHandleCallback_UnknownOrder(t *testing.T) {
	uc, _ := newCallbackFixture(t)

	redirect := uc.Execute(context.Background(), successParams("ord_missing"))
	assert.False(t, redirect.Succeeded)
}
