// Package subscription holds the Subscription aggregate: the single row per
// user that is authoritative for entitlement checks.
package subscription

import (
	"fmt"
	"time"

	vo "github.com/lumira-inc/lumira/internal/domain/subscription/valueobjects"
	"github.com/lumira-inc/lumira/internal/shared/biztime"
)

// Subscription is the aggregate root. Mutated only at signup (starter grant)
// and by the payment reconciler on a confirmed plan purchase.
type Subscription struct {
	id               uint
	userID           uint
	plan             vo.PlanType
	status           vo.SubscriptionStatus
	currentPeriodEnd *time.Time // nil for the free tier, which has no period
	createdAt        time.Time
	updatedAt        time.Time
}

// NewStarterSubscription creates the free-tier subscription granted on first
// login. It is active immediately and has no billing period.
func NewStarterSubscription(userID uint) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	now := biztime.NowUTC()
	return &Subscription{
		userID:    userID,
		plan:      vo.PlanStarter,
		status:    vo.StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ActivatePlan switches the subscription to a paid plan and advances the
// period end one billing cycle from now. Called by the payment reconciler
// inside the order-settlement transaction.
func (s *Subscription) ActivatePlan(plan vo.PlanType, cycle vo.BillingCycle) error {
	if !plan.IsPaid() {
		return fmt.Errorf("cannot activate non-paid plan %s", plan)
	}
	now := biztime.NowUTC()
	periodEnd := cycle.NextPeriodEnd(now)

	s.plan = plan
	s.status = vo.StatusActive
	s.currentPeriodEnd = &periodEnd
	s.updatedAt = now
	return nil
}

// IsActive reports whether the subscription currently grants entitlements.
func (s *Subscription) IsActive() bool {
	return s.status.IsActive()
}

// SetID sets the subscription ID after persistence.
func (s *Subscription) SetID(id uint) {
	s.id = id
}

func (s *Subscription) ID() uint                     { return s.id }
func (s *Subscription) UserID() uint                 { return s.userID }
func (s *Subscription) Plan() vo.PlanType            { return s.plan }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) CurrentPeriodEnd() *time.Time { return s.currentPeriodEnd }
func (s *Subscription) CreatedAt() time.Time         { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time         { return s.updatedAt }

// ReconstructSubscription rebuilds a Subscription from persistence.
func ReconstructSubscription(
	id, userID uint,
	plan vo.PlanType,
	status vo.SubscriptionStatus,
	currentPeriodEnd *time.Time,
	createdAt, updatedAt time.Time,
) *Subscription {
	return &Subscription{
		id:               id,
		userID:           userID,
		plan:             plan,
		status:           status,
		currentPeriodEnd: currentPeriodEnd,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}
