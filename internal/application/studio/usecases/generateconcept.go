package usecases

import (
	"context"
	"fmt"

	"github.com/lumira-inc/lumira/internal/application/studio/generation"
	"github.com/lumira-inc/lumira/internal/domain/entitlement"
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
	"github.com/lumira-inc/lumira/internal/domain/subscription"
	"github.com/lumira-inc/lumira/internal/domain/user"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
	"github.com/lumira-inc/lumira/internal/shared/logger"
	"github.com/lumira-inc/lumira/internal/shared/utils"
)

// GenerateConceptCommand asks for a shoot concept for an uploaded product.
type GenerateConceptCommand struct {
	SubjectID    string
	SourceData   string
	SourceMime   string
	Style        string
	Tier         string
	CustomPrompt string
	IncludeModel bool
}

// GenerateConceptResult is the proposed concept the client can approve and
// send back for rendering. Proposing is free; only rendering is billed.
type GenerateConceptResult struct {
	Category  string   `json:"category"`
	Theme     string   `json:"theme"`
	Shots     []string `json:"shots"`
	ShotCount int      `json:"shot_count"`
	Cost      int      `json:"cost"`
}

// GenerateConceptUseCase classifies the product and proposes a themed shot
// list sized for the requested tier.
type GenerateConceptUseCase struct {
	access    studioAccess
	concepts  generation.ConceptGenerator
	tierCosts map[string]int
	logger    logger.Interface
}

// NewGenerateConceptUseCase creates a new GenerateConceptUseCase.
func NewGenerateConceptUseCase(
	userRepo user.Repository,
	subRepo subscription.Repository,
	checker *entitlement.Checker,
	concepts generation.ConceptGenerator,
	tierCosts map[string]int,
	logger logger.Interface,
) *GenerateConceptUseCase {
	return &GenerateConceptUseCase{
		access:    studioAccess{userRepo: userRepo, subRepo: subRepo, checker: checker, logger: logger},
		concepts:  concepts,
		tierCosts: tierCosts,
		logger:    logger,
	}
}

// Execute proposes a concept. No credits are spent here, but affordability is
// still checked so the user learns about an empty balance before approving a
// concept they cannot render.
func (uc *GenerateConceptUseCase) Execute(ctx context.Context, cmd GenerateConceptCommand) (*GenerateConceptResult, error) {
	style, err := vo.NewEditStyle(cmd.Style)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid edit style", err.Error())
	}
	tier, err := vo.NewShotTier(cmd.Tier)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid shot tier", err.Error())
	}
	cost, ok := uc.tierCosts[tier.String()]
	if !ok || cost <= 0 {
		return nil, apperrors.NewInternalError("Shot tier is not configured", tier.String())
	}
	if cmd.SourceData == "" {
		return nil, apperrors.NewValidationError("A source image is required")
	}

	u, err := uc.access.loadVerifiedUser(ctx, cmd.SubjectID)
	if err != nil {
		return nil, err
	}
	if err := uc.access.checkEntitlement(ctx, u.ID(), style); err != nil {
		return nil, err
	}
	if !u.CanAfford(cost) {
		return nil, apperrors.NewInsufficientCreditsError(
			"Not enough credits for this shot tier",
			fmt.Sprintf("need %d, have %d", cost, u.Credits()))
	}

	src := generation.SourceImage{Data: cmd.SourceData, MimeType: cmd.SourceMime}

	category, err := uc.concepts.IdentifyCategory(ctx, src)
	if err != nil {
		// Classification is best effort; a generic concept is still useful.
		uc.logger.Warnw("category identification failed", "user_id", u.ID(), "error", err)
		category = vo.CategoryOther
	}

	concept, err := uc.concepts.ProposeConcept(ctx, generation.ConceptRequest{
		Source:       src,
		Category:     category,
		Style:        style,
		ShotCount:    cost,
		CustomPrompt: utils.SanitizeUserText(cmd.CustomPrompt),
		IncludeModel: cmd.IncludeModel,
	})
	if err != nil {
		uc.logger.Errorw("concept proposal failed", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewExternalFailureError("Could not generate a concept; please try again")
	}
	if len(concept.Shots) != cost {
		uc.logger.Errorw("concept shot count mismatch",
			"user_id", u.ID(), "want", cost, "got", len(concept.Shots))
		return nil, apperrors.NewExternalFailureError("Could not generate a concept; please try again")
	}

	return &GenerateConceptResult{
		Category:  category.String(),
		Theme:     concept.Theme,
		Shots:     concept.Shots,
		ShotCount: cost,
		Cost:      cost,
	}, nil
}
