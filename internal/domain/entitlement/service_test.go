package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
	subvo "github.com/lumira-inc/lumira/internal/domain/subscription/valueobjects"
)

func TestCheckStyle(t *testing.T) {
	checker := NewChecker()

	tests := []struct {
		name    string
		plan    subvo.PlanType
		active  bool
		style   vo.EditStyle
		wantErr error
	}{
		{"starter baseline allowed", subvo.PlanStarter, true, vo.StyleEcommerce, nil},
		{"starter catalog denied", subvo.PlanStarter, true, vo.StyleCatalog, ErrStyleNotPermitted},
		{"starter advertising denied", subvo.PlanStarter, true, vo.StyleAdvertising, ErrStyleNotPermitted},
		{"pro any style", subvo.PlanPro, true, vo.StyleAdvertising, nil},
		{"business any style", subvo.PlanBusiness, true, vo.StyleSocialMedia, nil},
		{"enterprise baseline", subvo.PlanEnterprise, true, vo.StyleEcommerce, nil},
		{"inactive subscription", subvo.PlanPro, false, vo.StyleEcommerce, ErrNoActiveSubscription},
		{"unknown plan", subvo.PlanType("platinum"), true, vo.StyleEcommerce, ErrNoActiveSubscription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checker.CheckStyle(tt.plan, tt.active, tt.style)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPermittedStyles(t *testing.T) {
	checker := NewChecker()

	assert.Equal(t, []vo.EditStyle{vo.BaselineStyle}, checker.PermittedStyles(subvo.PlanStarter, true))
	assert.Len(t, checker.PermittedStyles(subvo.PlanPro, true), 4)
	assert.Nil(t, checker.PermittedStyles(subvo.PlanPro, false))
}
