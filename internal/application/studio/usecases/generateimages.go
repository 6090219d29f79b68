package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lumira-inc/lumira/internal/application/studio/generation"
	"github.com/lumira-inc/lumira/internal/domain/entitlement"
	"github.com/lumira-inc/lumira/internal/domain/studio"
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
	"github.com/lumira-inc/lumira/internal/domain/subscription"
	"github.com/lumira-inc/lumira/internal/domain/user"
	"github.com/lumira-inc/lumira/internal/shared/db"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
	"github.com/lumira-inc/lumira/internal/shared/goroutine"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

// GenerateImagesCommand carries the concept the client approved plus the
// source image it was proposed for.
type GenerateImagesCommand struct {
	SubjectID    string
	SourceData   string
	SourceMime   string
	Style        string
	Tier         string
	Category     string
	Theme        string
	Shots        []string
	IncludeModel bool
}

// GenerateImagesResult is the outcome of a billed generation.
type GenerateImagesResult struct {
	RecordSID   string                  `json:"record_id"`
	Theme       string                  `json:"theme"`
	Images      []studio.GeneratedImage `json:"images"`
	CreditsUsed int                     `json:"credits_used"`
	CreditsLeft int                     `json:"credits_left"`
}

// GenerateImagesUseCase renders a concept's shots and settles the charge.
//
// The flow is deliberately lock-free around the external calls: entitlement
// and affordability are checked first against a plain read, the model calls
// fan out with no lock or reservation held, and the debit happens only at the
// end, as a conditional decrement in the same transaction that inserts the
// history record. Under concurrency the decrement's balance condition is the
// only authority; the earlier affordability check is a courtesy that avoids
// pointless model calls.
type GenerateImagesUseCase struct {
	access     studioAccess
	recordRepo studio.RecordRepository
	generator  generation.ImageGenerator
	txRunner   db.Runner
	tierCosts  map[string]int
	// billReturned bills by images actually produced instead of shots
	// requested. Off by default: a shot that returns nothing is still work
	// the model attempted.
	billReturned bool
	logger       logger.Interface
}

// NewGenerateImagesUseCase creates a new GenerateImagesUseCase.
func NewGenerateImagesUseCase(
	userRepo user.Repository,
	subRepo subscription.Repository,
	recordRepo studio.RecordRepository,
	checker *entitlement.Checker,
	generator generation.ImageGenerator,
	txRunner db.Runner,
	tierCosts map[string]int,
	billReturned bool,
	logger logger.Interface,
) *GenerateImagesUseCase {
	return &GenerateImagesUseCase{
		access:       studioAccess{userRepo: userRepo, subRepo: subRepo, checker: checker, logger: logger},
		recordRepo:   recordRepo,
		generator:    generator,
		txRunner:     txRunner,
		tierCosts:    tierCosts,
		billReturned: billReturned,
		logger:       logger,
	}
}

// Execute runs the full generate-and-settle flow.
func (uc *GenerateImagesUseCase) Execute(ctx context.Context, cmd GenerateImagesCommand) (*GenerateImagesResult, error) {
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
	if len(cmd.Shots) != cost {
		return nil, apperrors.NewValidationError(
			"Concept does not match the requested tier",
			fmt.Sprintf("tier %s requires %d shots, got %d", tier, cost, len(cmd.Shots)))
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

	images := uc.renderShots(ctx, cmd, style)
	if len(images) == 0 {
		return nil, apperrors.NewExternalFailureError(
			"Image generation produced no results; you have not been charged")
	}

	billed := cost
	if uc.billReturned {
		billed = len(images)
	}

	record, err := studio.NewGenerationRecord(u.ID(), cmd.Theme, style, cmd.SourceData, cmd.SourceMime, images)
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to build generation record", err.Error())
	}

	// Settle on a context detached from the request: once images exist the
	// charge and the record must land together even if the client went away.
	settleCtx := context.WithoutCancel(ctx)
	var creditsLeft int
	err = uc.txRunner.RunInTransaction(settleCtx, func(txCtx context.Context) error {
		if err := uc.recordRepo.Create(txCtx, record); err != nil {
			return fmt.Errorf("failed to create generation record: %w", err)
		}
		left, err := uc.access.userRepo.DebitCredits(txCtx, u.ID(), billed)
		if err != nil {
			return fmt.Errorf("failed to debit credits: %w", err)
		}
		creditsLeft = left
		return nil
	})
	if err != nil {
		if errors.Is(err, user.ErrInsufficientCredits) {
			// The balance was spent between the pre-check and settlement. The
			// rollback discarded the record; the images are not delivered.
			uc.logger.Warnw("generation discarded: balance changed during render",
				"user_id", u.ID(), "billed", billed)
			return nil, apperrors.NewConflictError(
				"Your credits were spent by another request while this generation was running")
		}
		uc.logger.Errorw("generation settlement failed", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("Failed to record generation")
	}

	uc.logger.Infow("generation settled",
		"user_id", u.ID(),
		"record_sid", record.SID(),
		"shots", len(cmd.Shots),
		"images", len(images),
		"billed", billed,
		"credits_left", creditsLeft,
	)

	return &GenerateImagesResult{
		RecordSID:   record.SID(),
		Theme:       cmd.Theme,
		Images:      images,
		CreditsUsed: billed,
		CreditsLeft: creditsLeft,
	}, nil
}

// renderShots fans one model call out per shot and flattens the successful
// results in shot order. Individual shot failures are logged and skipped; the
// caller decides what an empty total means.
func (uc *GenerateImagesUseCase) renderShots(ctx context.Context, cmd GenerateImagesCommand, style vo.EditStyle) []studio.GeneratedImage {
	src := generation.SourceImage{Data: cmd.SourceData, MimeType: cmd.SourceMime}
	category := vo.NormalizeCategory(cmd.Category)

	results := make([][]studio.GeneratedImage, len(cmd.Shots))
	var wg sync.WaitGroup
	for i, shot := range cmd.Shots {
		wg.Add(1)
		i, shot := i, shot
		goroutine.SafeGo(uc.logger, "render-shot", func() {
			defer wg.Done()
			imgs, err := uc.generator.GenerateShot(ctx, generation.ShotRequest{
				Source:       src,
				Description:  shot,
				Theme:        cmd.Theme,
				Style:        style,
				Category:     category,
				IncludeModel: cmd.IncludeModel,
			})
			if err != nil {
				uc.logger.Warnw("shot render failed", "shot_index", i, "error", err)
				return
			}
			results[i] = imgs
		})
	}
	wg.Wait()

	var images []studio.GeneratedImage
	for _, r := range results {
		images = append(images, r...)
	}
	return images
}
