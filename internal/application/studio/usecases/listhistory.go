package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/lumira-inc/lumira/internal/domain/studio"
	"github.com/lumira-inc/lumira/internal/domain/user"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

// HistoryItem is one past generation, newest first. The original upload is
// included so the client can show a before/after strip.
type HistoryItem struct {
	RecordSID    string                  `json:"record_id"`
	Theme        string                  `json:"theme"`
	Style        string                  `json:"style"`
	OriginalData string                  `json:"original_data"`
	OriginalMime string                  `json:"original_mime"`
	Images       []studio.GeneratedImage `json:"images"`
	CreatedAt    time.Time               `json:"created_at"`
}

// ListHistoryUseCase returns the caller's generation history.
type ListHistoryUseCase struct {
	userRepo   user.Repository
	recordRepo studio.RecordRepository
	logger     logger.Interface
}

// NewListHistoryUseCase creates a new ListHistoryUseCase.
func NewListHistoryUseCase(
	userRepo user.Repository,
	recordRepo studio.RecordRepository,
	logger logger.Interface,
) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		userRepo:   userRepo,
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// Execute lists the user's generation records newest first.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, subjectID string) ([]HistoryItem, error) {
	u, err := uc.userRepo.GetBySubjectID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		uc.logger.Errorw("failed to load user", "subject_id", subjectID, "error", err)
		return nil, apperrors.NewInternalError("Failed to load user")
	}

	records, err := uc.recordRepo.ListByUserID(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to list generation records", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("Failed to load history")
	}

	items := make([]HistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, HistoryItem{
			RecordSID:    r.SID(),
			Theme:        r.Theme(),
			Style:        r.Style().String(),
			OriginalData: r.OriginalData(),
			OriginalMime: r.OriginalMime(),
			Images:       r.Images(),
			CreatedAt:    r.CreatedAt(),
		})
	}
	return items, nil
}
