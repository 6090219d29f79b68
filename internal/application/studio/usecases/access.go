// Package usecases implements the studio application services: proposing
// concepts, rendering shots with credit settlement, and listing history.
package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumira-inc/lumira/internal/domain/entitlement"
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
	"github.com/lumira-inc/lumira/internal/domain/subscription"
	"github.com/lumira-inc/lumira/internal/domain/user"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

// studioAccess is the shared admission gate: both studio use cases require a
// verified user whose current plan covers the requested style.
type studioAccess struct {
	userRepo user.Repository
	subRepo  subscription.Repository
	checker  *entitlement.Checker
	logger   logger.Interface
}

func (a *studioAccess) loadVerifiedUser(ctx context.Context, subjectID string) (*user.User, error) {
	u, err := a.userRepo.GetBySubjectID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		a.logger.Errorw("failed to load user", "subject_id", subjectID, "error", err)
		return nil, apperrors.NewInternalError("Failed to load user")
	}
	if !u.Verified() {
		return nil, apperrors.NewForbiddenError("Please verify your email address to use the studio")
	}
	return u, nil
}

func (a *studioAccess) checkEntitlement(ctx context.Context, userID uint, style vo.EditStyle) error {
	sub, err := a.subRepo.GetCurrentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, subscription.ErrNotFound) {
			return apperrors.NewForbiddenError("No subscription found; please sign in again")
		}
		a.logger.Errorw("failed to load subscription", "user_id", userID, "error", err)
		return apperrors.NewInternalError("Failed to load subscription")
	}
	if err := a.checker.CheckStyle(sub.Plan(), sub.IsActive(), style); err != nil {
		switch {
		case errors.Is(err, entitlement.ErrNoActiveSubscription):
			return apperrors.NewForbiddenError("An active subscription is required")
		case errors.Is(err, entitlement.ErrStyleNotPermitted):
			return apperrors.NewForbiddenError(
				fmt.Sprintf("The %s style requires a paid plan", style.DisplayName()))
		default:
			return apperrors.NewInternalError("Entitlement check failed", err.Error())
		}
	}
	return nil
}
