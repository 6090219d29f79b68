package mappers

import (
	"fmt"

	"github.com/lumira-inc/lumira/internal/domain/subscription"
	vo "github.com/lumira-inc/lumira/internal/domain/subscription/valueobjects"
	"github.com/lumira-inc/lumira/internal/infrastructure/persistence/models"
)

func SubscriptionToModel(s *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:               s.ID(),
		UserID:           s.UserID(),
		Plan:             s.Plan().String(),
		Status:           s.Status().String(),
		CurrentPeriodEnd: s.CurrentPeriodEnd(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func SubscriptionToDomain(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	plan, err := vo.NewPlanType(model.Plan)
	if err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	status, err := vo.NewSubscriptionStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status: %w", err)
	}
	return subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		plan,
		status,
		model.CurrentPeriodEnd,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
