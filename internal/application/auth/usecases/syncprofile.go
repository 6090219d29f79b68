// Package usecases implements the auth application services.
package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumira-inc/lumira/internal/application/auth/identity"
	"github.com/lumira-inc/lumira/internal/domain/entitlement"
	"github.com/lumira-inc/lumira/internal/domain/subscription"
	"github.com/lumira-inc/lumira/internal/domain/user"
	"github.com/lumira-inc/lumira/internal/shared/db"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
	"github.com/lumira-inc/lumira/internal/shared/logger"
	"github.com/lumira-inc/lumira/internal/shared/utils"
)

// ProfileResult is the application-side view of the signed-in user.
type ProfileResult struct {
	SubjectID        string     `json:"subject_id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Verified         bool       `json:"verified"`
	Role             string     `json:"role"`
	Credits          int        `json:"credits"`
	Plan             string     `json:"plan"`
	PlanActive       bool       `json:"plan_active"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	PermittedStyles  []string   `json:"permitted_styles"`
}

// SyncProfileUseCase materializes a verified identity into the application's
// own user row. First login creates the profile with the starter credit grant
// and a free-tier subscription, in one transaction; later logins re-sync the
// email-verified flag.
type SyncProfileUseCase struct {
	userRepo       user.Repository
	subRepo        subscription.Repository
	checker        *entitlement.Checker
	txRunner       db.Runner
	starterCredits int
	logger         logger.Interface
}

// NewSyncProfileUseCase creates a new SyncProfileUseCase.
func NewSyncProfileUseCase(
	userRepo user.Repository,
	subRepo subscription.Repository,
	checker *entitlement.Checker,
	txRunner db.Runner,
	starterCredits int,
	logger logger.Interface,
) *SyncProfileUseCase {
	return &SyncProfileUseCase{
		userRepo:       userRepo,
		subRepo:        subRepo,
		checker:        checker,
		txRunner:       txRunner,
		starterCredits: starterCredits,
		logger:         logger,
	}
}

// Execute upserts the profile for a verified identity and returns it.
func (uc *SyncProfileUseCase) Execute(ctx context.Context, ident identity.Identity) (*ProfileResult, error) {
	var (
		u   *user.User
		sub *subscription.Subscription
	)
	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.userRepo.GetBySubjectID(txCtx, ident.SubjectID)
		switch {
		case err == nil:
			u = existing
			if u.SyncVerification(ident.EmailVerified) {
				if err := uc.userRepo.UpdateVerification(txCtx, u.ID(), u.Verified()); err != nil {
					return fmt.Errorf("failed to sync verification: %w", err)
				}
			}

		case errors.Is(err, user.ErrNotFound):
			created, err := user.NewUser(
				ident.SubjectID,
				utils.SanitizeUserText(ident.Name),
				ident.Email,
				ident.EmailVerified,
				uc.starterCredits,
			)
			if err != nil {
				return fmt.Errorf("failed to build user: %w", err)
			}
			if err := uc.userRepo.Create(txCtx, created); err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			starter, err := subscription.NewStarterSubscription(created.ID())
			if err != nil {
				return fmt.Errorf("failed to build starter subscription: %w", err)
			}
			if err := uc.subRepo.Create(txCtx, starter); err != nil {
				return fmt.Errorf("failed to create starter subscription: %w", err)
			}
			u = created
			sub = starter
			uc.logger.Infow("user provisioned",
				"subject_id", ident.SubjectID, "starter_credits", uc.starterCredits)

		default:
			return fmt.Errorf("failed to load user: %w", err)
		}

		if sub == nil {
			loaded, err := uc.subRepo.GetCurrentByUserID(txCtx, u.ID())
			if err != nil {
				return fmt.Errorf("failed to load subscription: %w", err)
			}
			sub = loaded
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("profile sync failed", "subject_id", ident.SubjectID, "error", err)
		return nil, apperrors.NewInternalError("Failed to sync profile")
	}

	return buildProfile(u, sub, uc.checker), nil
}

// buildProfile assembles the profile view shared by sync and read-only
// profile lookups.
func buildProfile(u *user.User, sub *subscription.Subscription, checker *entitlement.Checker) *ProfileResult {
	styles := checker.PermittedStyles(sub.Plan(), sub.IsActive())
	names := make([]string, 0, len(styles))
	for _, s := range styles {
		names = append(names, s.String())
	}
	return &ProfileResult{
		SubjectID:        u.SubjectID(),
		Name:             u.Name(),
		Email:            u.Email(),
		Verified:         u.Verified(),
		Role:             u.Role(),
		Credits:          u.Credits(),
		Plan:             sub.Plan().String(),
		PlanActive:       sub.IsActive(),
		CurrentPeriodEnd: sub.CurrentPeriodEnd(),
		PermittedStyles:  names,
	}
}
