package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumira-inc/lumira/internal/application/testutil"
	"github.com/lumira-inc/lumira/internal/domain/billing"
	vo "github.com/lumira-inc/lumira/internal/domain/billing/valueobjects"
	"github.com/lumira-inc/lumira/internal/domain/user"
	"github.com/lumira-inc/lumira/internal/shared/config"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
)

func testBillingConfig() config.BillingConfig {
	return config.BillingConfig{
		Currency: "INR",
		PlanPrices: map[string]config.PlanPricing{
			"pro":      {Monthly: 199900, Yearly: 1999000},
			"business": {Monthly: 499900, Yearly: 4999000},
		},
		CreditPacks: []config.CreditPack{
			{Name: "Small", Credits: 50, Price: 50000},
			{Name: "Medium", Credits: 150, Price: 120000},
			{Name: "Large", Credits: 500, Price: 300000},
		},
		StarterCredits: 5,
	}
}

func newCreateOrderFixture(t *testing.T) (*CreateOrderUseCase, *testutil.MockOrderRepository, *testutil.MockUserRepository) {
	t.Helper()
	users := testutil.NewMockUserRepository()
	orders := testutil.NewMockOrderRepository()

	u, err := user.NewUser("sub-1", "Ada", "ada@example.com", true, 5)
	require.NoError(t, err)
	users.Seed(u)

	uc := NewCreateOrderUseCase(users, orders, &testutil.MockGateway{}, testBillingConfig(), testutil.NewNopLogger())
	return uc, orders, users
}

func TestCreateOrder_Plan(t *testing.T) {
	uc, orders, _ := newCreateOrderFixture(t)

	res, err := uc.Execute(context.Background(), CreateOrderCommand{
		SubjectID: "sub-1", Plan: "pro", Cycle: "yearly",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1999000), res.Amount, "price comes from the catalogue")
	assert.Equal(t, "INR", res.Currency)
	assert.Equal(t, "Pro Plan (Yearly)", res.Description)
	assert.NotEmpty(t, res.Token)

	stored := orders.Get(res.OrderNo)
	require.NotNil(t, stored)
	assert.Equal(t, vo.OrderStatusPending, stored.Status())
	assert.Equal(t, billing.IntentPlan, stored.Intent().Kind)
}

func TestCreateOrder_CreditPack(t *testing.T) {
	uc, orders, _ := newCreateOrderFixture(t)

	res, err := uc.Execute(context.Background(), CreateOrderCommand{
		SubjectID: "sub-1", PackCredits: 150,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(120000), res.Amount)
	stored := orders.Get(res.OrderNo)
	require.NotNil(t, stored)
	assert.Equal(t, billing.IntentCreditPack, stored.Intent().Kind)
	assert.Equal(t, 150, stored.Intent().Credits)
}

func TestCreateOrder_Validation(t *testing.T) {
	uc, _, _ := newCreateOrderFixture(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateOrderCommand{SubjectID: "sub-1"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation), "empty purchase")

	_, err = uc.Execute(ctx, CreateOrderCommand{SubjectID: "sub-1", Plan: "pro", Cycle: "monthly", PackCredits: 50})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation), "plan and pack together")

	_, err = uc.Execute(ctx, CreateOrderCommand{SubjectID: "sub-1", Plan: "starter", Cycle: "monthly"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation), "free tier is not purchasable")

	_, err = uc.Execute(ctx, CreateOrderCommand{SubjectID: "sub-1", Plan: "pro", Cycle: "weekly"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation), "unknown cycle")

	_, err = uc.Execute(ctx, CreateOrderCommand{SubjectID: "sub-1", PackCredits: 33})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound), "pack not in catalogue")

	_, err = uc.Execute(ctx, CreateOrderCommand{SubjectID: "sub-1", Plan: "enterprise", Cycle: "monthly"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound), "plan without a configured price")
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	users := testutil.NewMockUserRepository()
	orders := testutil.NewMockOrderRepository()
	u, err := user.NewUser("sub-1", "Ada", "ada@example.com", true, 5)
	require.NoError(t, err)
	users.Seed(u)

	gateway := &testutil.MockGateway{SessionErr: assert.AnError}
	uc := NewCreateOrderUseCase(users, orders, gateway, testBillingConfig(), testutil.NewNopLogger())

	_, err = uc.Execute(context.Background(), CreateOrderCommand{SubjectID: "sub-1", Plan: "pro", Cycle: "monthly"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternalFailure))
}
