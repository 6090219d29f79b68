// Package entitlement decides which generation styles a plan permits.
package entitlement

import (
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
	subvo "github.com/lumira-inc/lumira/internal/domain/subscription/valueobjects"
)

// Checker is a pure domain service: no state, no side effects.
type Checker struct{}

func NewChecker() *Checker {
	return &Checker{}
}

// CheckStyle decides whether a plan permits the requested style. The starter
// tier permits exactly the baseline style; every paid tier permits all
// styles. An inactive subscription permits nothing.
func (c *Checker) CheckStyle(plan subvo.PlanType, active bool, style vo.EditStyle) error {
	if !active {
		return ErrNoActiveSubscription
	}
	if !plan.IsValid() {
		return ErrNoActiveSubscription
	}
	if plan == subvo.PlanStarter && !style.IsBaseline() {
		return ErrStyleNotPermitted
	}
	return nil
}

// PermittedStyles lists the styles a plan grants, for the profile endpoint.
func (c *Checker) PermittedStyles(plan subvo.PlanType, active bool) []vo.EditStyle {
	if !active || !plan.IsValid() {
		return nil
	}
	if plan == subvo.PlanStarter {
		return []vo.EditStyle{vo.BaselineStyle}
	}
	return vo.AllStyles()
}
