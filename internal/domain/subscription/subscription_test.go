package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/lumira-inc/lumira/internal/domain/subscription/valueobjects"
)

func TestNewStarterSubscription(t *testing.T) {
	sub, err := NewStarterSubscription(1)
	require.NoError(t, err)

	assert.Equal(t, vo.PlanStarter, sub.Plan())
	assert.True(t, sub.IsActive())
	assert.Nil(t, sub.CurrentPeriodEnd(), "free tier has no billing period")
}

func TestNewStarterSubscription_RequiresUser(t *testing.T) {
	_, err := NewStarterSubscription(0)
	assert.Error(t, err)
}

func TestActivatePlan_Monthly(t *testing.T) {
	sub, err := NewStarterSubscription(1)
	require.NoError(t, err)

	before := time.Now().UTC()
	require.NoError(t, sub.ActivatePlan(vo.PlanPro, vo.CycleMonthly))

	assert.Equal(t, vo.PlanPro, sub.Plan())
	assert.True(t, sub.IsActive())
	require.NotNil(t, sub.CurrentPeriodEnd())

	// Period end lands one month out, give or take test runtime.
	want := before.AddDate(0, 1, 0)
	assert.WithinDuration(t, want, *sub.CurrentPeriodEnd(), time.Minute)
}

func TestActivatePlan_Yearly(t *testing.T) {
	sub, err := NewStarterSubscription(1)
	require.NoError(t, err)

	before := time.Now().UTC()
	require.NoError(t, sub.ActivatePlan(vo.PlanBusiness, vo.CycleYearly))

	require.NotNil(t, sub.CurrentPeriodEnd())
	want := before.AddDate(1, 0, 0)
	assert.WithinDuration(t, want, *sub.CurrentPeriodEnd(), time.Minute)
}

func TestActivatePlan_RejectsFreeTier(t *testing.T) {
	sub, err := NewStarterSubscription(1)
	require.NoError(t, err)

	assert.Error(t, sub.ActivatePlan(vo.PlanStarter, vo.CycleMonthly))
}

func TestBillingCycle_Validation(t *testing.T) {
	_, err := vo.NewBillingCycle("weekly")
	assert.Error(t, err)

	c, err := vo.NewBillingCycle("yearly")
	require.NoError(t, err)
	assert.Equal(t, vo.CycleYearly, c)
}

func TestPlanType_Validation(t *testing.T) {
	_, err := vo.NewPlanType("platinum")
	assert.Error(t, err)

	p, err := vo.NewPlanType("pro")
	require.NoError(t, err)
	assert.True(t, p.IsPaid())

	starter, err := vo.NewPlanType("starter")
	require.NoError(t, err)
	assert.False(t, starter.IsPaid())
}
