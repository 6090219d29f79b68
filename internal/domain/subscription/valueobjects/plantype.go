package valueobjects

import "fmt"

// PlanType is the closed set of subscription plans.
type PlanType string

const (
	PlanStarter    PlanType = "starter"
	PlanPro        PlanType = "pro"
	PlanBusiness   PlanType = "business"
	PlanEnterprise PlanType = "enterprise"
)

// NewPlanType validates a plan identifier.
func NewPlanType(s string) (PlanType, error) {
	p := PlanType(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid plan type: %s", s)
	}
	return p, nil
}

func (p PlanType) IsValid() bool {
	switch p {
	case PlanStarter, PlanPro, PlanBusiness, PlanEnterprise:
		return true
	}
	return false
}

// IsPaid reports whether the plan is purchasable. Starter is the free tier
// assigned at signup.
func (p PlanType) IsPaid() bool {
	return p.IsValid() && p != PlanStarter
}

func (p PlanType) String() string {
	return string(p)
}
