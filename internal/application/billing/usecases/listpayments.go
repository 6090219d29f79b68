package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumira-inc/lumira/internal/domain/billing"
	"github.com/lumira-inc/lumira/internal/domain/user"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

// PaymentItem is one settled payment for the history view. Amount is
// formatted in major units for display.
type PaymentItem struct {
	OrderNo     string    `json:"order_no"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	PaidAt      time.Time `json:"paid_at"`
}

// ListPaymentsUseCase returns the caller's successful payments.
type ListPaymentsUseCase struct {
	userRepo  user.Repository
	orderRepo billing.OrderRepository
	logger    logger.Interface
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase.
func NewListPaymentsUseCase(
	userRepo user.Repository,
	orderRepo billing.OrderRepository,
	logger logger.Interface,
) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Execute lists the user's successful payments newest first. Pending and
// failed orders are not part of payment history.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, subjectID string) ([]PaymentItem, error) {
	u, err := uc.userRepo.GetBySubjectID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		uc.logger.Errorw("failed to load user", "subject_id", subjectID, "error", err)
		return nil, apperrors.NewInternalError("Failed to load user")
	}

	orders, err := uc.orderRepo.ListSucceededByUserID(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to list orders", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("Failed to load payment history")
	}

	items := make([]PaymentItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, PaymentItem{
			OrderNo:     o.OrderNo(),
			Description: o.Description(),
			Amount:      fmt.Sprintf("%.2f", float64(o.Amount())/100),
			Currency:    o.Currency(),
			PaidAt:      o.UpdatedAt(),
		})
	}
	return items, nil
}
