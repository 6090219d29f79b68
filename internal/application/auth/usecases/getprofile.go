package usecases

import (
	"context"
	"errors"

	"github.com/lumira-inc/lumira/internal/domain/entitlement"
	"github.com/lumira-inc/lumira/internal/domain/subscription"
	"github.com/lumira-inc/lumira/internal/domain/user"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

// GetProfileUseCase is the read-only profile lookup: no provisioning, no
// verification sync.
type GetProfileUseCase struct {
	userRepo user.Repository
	subRepo  subscription.Repository
	checker  *entitlement.Checker
	logger   logger.Interface
}

// NewGetProfileUseCase creates a new GetProfileUseCase.
func NewGetProfileUseCase(
	userRepo user.Repository,
	subRepo subscription.Repository,
	checker *entitlement.Checker,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		subRepo:  subRepo,
		checker:  checker,
		logger:   logger,
	}
}

// Execute returns the profile for an already-provisioned user.
func (uc *GetProfileUseCase) Execute(ctx context.Context, subjectID string) (*ProfileResult, error) {
	u, err := uc.userRepo.GetBySubjectID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		uc.logger.Errorw("failed to load user", "subject_id", subjectID, "error", err)
		return nil, apperrors.NewInternalError("Failed to load user")
	}
	sub, err := uc.subRepo.GetCurrentByUserID(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("Failed to load subscription")
	}
	return buildProfile(u, sub, uc.checker), nil
}
