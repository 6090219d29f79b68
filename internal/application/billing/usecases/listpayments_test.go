package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumira-inc/lumira/internal/application/testutil"
	"github.com/lumira-inc/lumira/internal/domain/billing"
	"github.com/lumira-inc/lumira/internal/domain/user"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
)

func TestListPayments(t *testing.T) {
	users := testutil.NewMockUserRepository()
	orders := testutil.NewMockOrderRepository()

	u, err := user.NewUser("sub-1", "Ada", "ada@example.com", true, 5)
	require.NoError(t, err)
	seeded := users.Seed(u)

	// One settled, one failed, one still pending: only the settled one shows.
	intent, err := billing.NewCreditPackIntent(50)
	require.NoError(t, err)

	settled, err := billing.NewOrder(seeded.ID(), 50000, "INR", intent)
	require.NoError(t, err)
	require.NoError(t, settled.MarkSucceeded("TXN-1", nil))
	orders.Seed(settled)

	failed, err := billing.NewOrder(seeded.ID(), 50000, "INR", intent)
	require.NoError(t, err)
	require.NoError(t, failed.MarkFailed(nil))
	orders.Seed(failed)

	pending, err := billing.NewOrder(seeded.ID(), 50000, "INR", intent)
	require.NoError(t, err)
	orders.Seed(pending)

	uc := NewListPaymentsUseCase(users, orders, testutil.NewNopLogger())

	items, err := uc.Execute(context.Background(), "sub-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, settled.OrderNo(), items[0].OrderNo)
	assert.Equal(t, "500.00", items[0].Amount)
	assert.Equal(t, "50 Credit Pack", items[0].Description)
}

func TestListPayments_UnknownUser(t *testing.T) {
	uc := NewListPaymentsUseCase(
		testutil.NewMockUserRepository(),
		testutil.NewMockOrderRepository(),
		testutil.NewNopLogger(),
	)

	_, err := uc.Execute(context.Background(), "nobody")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
