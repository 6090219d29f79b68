package billing

import (
	"fmt"

	subvo "github.com/lumira-inc/lumira/internal/domain/subscription/valueobjects"
)

// IntentKind discriminates what an order buys.
type IntentKind string

const (
	IntentPlan       IntentKind = "plan"
	IntentCreditPack IntentKind = "credit_pack"
)

// PurchaseIntent is the tagged variant carried structurally on every Order.
// Settlement dispatches on Kind; the human-readable order description is
// derived from it for display only and is never parsed back.
type PurchaseIntent struct {
	Kind IntentKind `json:"kind"`

	// Plan purchase fields.
	Plan  subvo.PlanType     `json:"plan,omitempty"`
	Cycle subvo.BillingCycle `json:"cycle,omitempty"`

	// Credit pack fields.
	Credits int `json:"credits,omitempty"`
}

// NewPlanIntent builds a plan-purchase intent.
func NewPlanIntent(plan subvo.PlanType, cycle subvo.BillingCycle) (PurchaseIntent, error) {
	if !plan.IsPaid() {
		return PurchaseIntent{}, fmt.Errorf("plan %q is not purchasable", plan)
	}
	return PurchaseIntent{Kind: IntentPlan, Plan: plan, Cycle: cycle}, nil
}

// NewCreditPackIntent builds a credit-pack intent.
func NewCreditPackIntent(credits int) (PurchaseIntent, error) {
	if credits <= 0 {
		return PurchaseIntent{}, fmt.Errorf("credit count must be positive, got %d", credits)
	}
	return PurchaseIntent{Kind: IntentCreditPack, Credits: credits}, nil
}

// Validate checks structural consistency, e.g. after loading from storage.
func (i PurchaseIntent) Validate() error {
	switch i.Kind {
	case IntentPlan:
		if !i.Plan.IsPaid() {
			return fmt.Errorf("plan intent with non-purchasable plan %q", i.Plan)
		}
		if _, err := subvo.NewBillingCycle(i.Cycle.String()); err != nil {
			return err
		}
		return nil
	case IntentCreditPack:
		if i.Credits <= 0 {
			return fmt.Errorf("credit pack intent with count %d", i.Credits)
		}
		return nil
	default:
		return fmt.Errorf("unknown purchase intent kind %q", i.Kind)
	}
}

// Description renders the intent for humans (receipts, payment history).
func (i PurchaseIntent) Description() string {
	switch i.Kind {
	case IntentPlan:
		cycle := "Monthly"
		if i.Cycle == subvo.CycleYearly {
			cycle = "Yearly"
		}
		return fmt.Sprintf("%s Plan (%s)", titleCase(i.Plan.String()), cycle)
	case IntentCreditPack:
		return fmt.Sprintf("%d Credit Pack", i.Credits)
	}
	return "Unknown purchase"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
