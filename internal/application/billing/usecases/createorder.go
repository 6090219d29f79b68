// Package usecases implements the billing application services: creating
// orders, settling gateway callbacks, and listing payment history.
package usecases

import (
	"context"
	"errors"

	"github.com/lumira-inc/lumira/internal/application/billing/paymentgateway"
	"github.com/lumira-inc/lumira/internal/domain/billing"
	subvo "github.com/lumira-inc/lumira/internal/domain/subscription/valueobjects"
	"github.com/lumira-inc/lumira/internal/domain/user"
	"github.com/lumira-inc/lumira/internal/shared/config"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

// CreateOrderCommand starts a purchase. Exactly one of Plan or PackCredits
// must be set: a plan purchase names the plan and cycle, a pack purchase
// names the pack by its credit count. Prices always come from the configured
// catalogue, never from the client.
type CreateOrderCommand struct {
	SubjectID   string
	Plan        string
	Cycle       string
	PackCredits int
}

// CreateOrderResult is what the client needs to open checkout.
type CreateOrderResult struct {
	OrderNo     string `json:"order_no"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Token       string `json:"token"`
	MerchantID  string `json:"merchant_id"`
	CallbackURL string `json:"callback_url"`
}

// CreateOrderUseCase creates a pending order and registers it with the
// payment gateway.
type CreateOrderUseCase struct {
	userRepo  user.Repository
	orderRepo billing.OrderRepository
	gateway   paymentgateway.Gateway
	billing   config.BillingConfig
	logger    logger.Interface
}

// NewCreateOrderUseCase creates a new CreateOrderUseCase.
func NewCreateOrderUseCase(
	userRepo user.Repository,
	orderRepo billing.OrderRepository,
	gateway paymentgateway.Gateway,
	billingCfg config.BillingConfig,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		gateway:   gateway,
		billing:   billingCfg,
		logger:    logger,
	}
}

// Execute creates the order and the gateway checkout session.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	u, err := uc.userRepo.GetBySubjectID(ctx, cmd.SubjectID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		uc.logger.Errorw("failed to load user", "subject_id", cmd.SubjectID, "error", err)
		return nil, apperrors.NewInternalError("Failed to load user")
	}

	intent, amount, err := uc.resolvePurchase(cmd)
	if err != nil {
		return nil, err
	}

	order, err := billing.NewOrder(u.ID(), amount, uc.billing.Currency, intent)
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to create order", err.Error())
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		uc.logger.Errorw("failed to persist order", "order_no", order.OrderNo(), "error", err)
		return nil, apperrors.NewInternalError("Failed to create order")
	}

	session, err := uc.gateway.CreateSession(ctx, paymentgateway.CreateSessionRequest{
		OrderNo:    order.OrderNo(),
		Amount:     order.Amount(),
		Currency:   order.Currency(),
		CustomerID: cmd.SubjectID,
	})
	if err != nil {
		uc.logger.Errorw("gateway session creation failed", "order_no", order.OrderNo(), "error", err)
		return nil, apperrors.NewExternalFailureError("Payment provider is unavailable; please try again")
	}

	uc.logger.Infow("order created",
		"order_no", order.OrderNo(),
		"user_id", u.ID(),
		"kind", string(intent.Kind),
		"amount", amount,
	)

	return &CreateOrderResult{
		OrderNo:     order.OrderNo(),
		Amount:      order.Amount(),
		Currency:    order.Currency(),
		Description: order.Description(),
		Token:       session.Token,
		MerchantID:  session.MerchantID,
		CallbackURL: session.CallbackURL,
	}, nil
}

// resolvePurchase maps the command onto the configured catalogue.
func (uc *CreateOrderUseCase) resolvePurchase(cmd CreateOrderCommand) (billing.PurchaseIntent, int64, error) {
	switch {
	case cmd.Plan != "" && cmd.PackCredits != 0:
		return billing.PurchaseIntent{}, 0,
			apperrors.NewValidationError("Specify either a plan or a credit pack, not both")

	case cmd.Plan != "":
		plan, err := subvo.NewPlanType(cmd.Plan)
		if err != nil || !plan.IsPaid() {
			return billing.PurchaseIntent{}, 0, apperrors.NewValidationError("Unknown plan", cmd.Plan)
		}
		cycle, err := subvo.NewBillingCycle(cmd.Cycle)
		if err != nil {
			return billing.PurchaseIntent{}, 0, apperrors.NewValidationError("Unknown billing cycle", cmd.Cycle)
		}
		pricing, ok := uc.billing.PlanPrices[plan.String()]
		if !ok {
			return billing.PurchaseIntent{}, 0, apperrors.NewNotFoundError("Plan is not for sale", plan.String())
		}
		amount := pricing.Monthly
		if cycle == subvo.CycleYearly {
			amount = pricing.Yearly
		}
		if amount <= 0 {
			return billing.PurchaseIntent{}, 0, apperrors.NewNotFoundError("Plan is not for sale", plan.String())
		}
		intent, err := billing.NewPlanIntent(plan, cycle)
		if err != nil {
			return billing.PurchaseIntent{}, 0, apperrors.NewValidationError("Invalid plan purchase", err.Error())
		}
		return intent, amount, nil

	case cmd.PackCredits != 0:
		for _, pack := range uc.billing.CreditPacks {
			if pack.Credits == cmd.PackCredits {
				intent, err := billing.NewCreditPackIntent(pack.Credits)
				if err != nil {
					return billing.PurchaseIntent{}, 0, apperrors.NewValidationError("Invalid credit pack", err.Error())
				}
				return intent, pack.Price, nil
			}
		}
		return billing.PurchaseIntent{}, 0, apperrors.NewNotFoundError("No such credit pack")

	default:
		return billing.PurchaseIntent{}, 0,
			apperrors.NewValidationError("Specify a plan or a credit pack to purchase")
	}
}
