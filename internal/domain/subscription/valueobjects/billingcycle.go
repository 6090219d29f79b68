package valueobjects

import (
	"fmt"
	"time"
)

// BillingCycle is how often a paid plan renews.
type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

// NewBillingCycle validates a billing cycle string.
func NewBillingCycle(s string) (BillingCycle, error) {
	c := BillingCycle(s)
	if c != CycleMonthly && c != CycleYearly {
		return "", fmt.Errorf("invalid billing cycle: %s", s)
	}
	return c, nil
}

// NextPeriodEnd returns the period end one cycle after from.
func (c BillingCycle) NextPeriodEnd(from time.Time) time.Time {
	if c == CycleYearly {
		return from.UTC().AddDate(1, 0, 0)
	}
	return from.UTC().AddDate(0, 1, 0)
}

func (c BillingCycle) String() string {
	return string(c)
}
