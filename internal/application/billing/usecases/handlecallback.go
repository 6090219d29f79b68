package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/lumira-inc/lumira/internal/application/billing/paymentgateway"
	"github.com/lumira-inc/lumira/internal/domain/billing"
	vo "github.com/lumira-inc/lumira/internal/domain/billing/valueobjects"
	"github.com/lumira-inc/lumira/internal/domain/subscription"
	"github.com/lumira-inc/lumira/internal/domain/user"
	"github.com/lumira-inc/lumira/internal/shared/db"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

// RedirectIntent tells the HTTP layer where to send the user's browser after
// a callback. Callbacks always end in a redirect, never an API error, because
// the user is mid-checkout in the provider's page flow.
type RedirectIntent struct {
	Succeeded bool
	OrderNo   string
}

// HandleCallbackUseCase settles gateway callbacks.
//
// Settlement is idempotent and at-most-once: the order row is read under a
// row lock, so concurrent callbacks for the same order serialize, and a
// terminal order is never transitioned again. The benefit grant (plan
// activation or credit top-up) commits in the same transaction as the status
// flip, so a crash can never grant without marking or mark without granting.
type HandleCallbackUseCase struct {
	orderRepo billing.OrderRepository
	userRepo  user.Repository
	subRepo   subscription.Repository
	gateway   paymentgateway.Gateway
	txRunner  db.Runner
	logger    logger.Interface
}

// NewHandleCallbackUseCase creates a new HandleCallbackUseCase.
func NewHandleCallbackUseCase(
	orderRepo billing.OrderRepository,
	userRepo user.Repository,
	subRepo subscription.Repository,
	gateway paymentgateway.Gateway,
	txRunner db.Runner,
	logger logger.Interface,
) *HandleCallbackUseCase {
	return &HandleCallbackUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		subRepo:   subRepo,
		gateway:   gateway,
		txRunner:  txRunner,
		logger:    logger,
	}
}

// Execute verifies and settles one callback. It always returns a redirect
// intent; failures are logged rather than surfaced, since the gateway does
// not retry on our HTTP status and the user is waiting on a redirect.
func (uc *HandleCallbackUseCase) Execute(ctx context.Context, params url.Values) RedirectIntent {
	data, err := uc.gateway.VerifyCallback(params)
	if err != nil {
		orderNo := params.Get("ORDERID")
		uc.logger.Warnw("callback rejected", "order_no", orderNo, "error", err)
		if errors.Is(err, paymentgateway.ErrInvalidSignature) && orderNo != "" {
			// A forged or corrupted callback must not settle the order, but a
			// still-pending order is marked failed so the user is not left
			// waiting on a payment that will never confirm.
			uc.failIfPending(ctx, orderNo, map[string]string{"reason": "invalid signature"})
		}
		return RedirectIntent{Succeeded: false, OrderNo: orderNo}
	}

	var succeeded bool
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		order, err := uc.orderRepo.GetByOrderNoForUpdate(txCtx, data.OrderNo)
		if err != nil {
			return fmt.Errorf("failed to load order %s: %w", data.OrderNo, err)
		}

		if !order.IsPending() {
			// Duplicate delivery. Report the already-settled outcome and
			// change nothing.
			succeeded = order.Status() == vo.OrderStatusSuccess
			uc.logger.Infow("duplicate callback ignored",
				"order_no", order.OrderNo(), "status", order.Status().String())
			return nil
		}

		if data.Status != paymentgateway.CallbackSuccess {
			if err := order.MarkFailed(data.Raw); err != nil {
				return err
			}
			succeeded = false
			return uc.orderRepo.Update(txCtx, order)
		}

		if err := order.MarkSucceeded(data.TransactionID, data.Raw); err != nil {
			return err
		}
		if err := uc.orderRepo.Update(txCtx, order); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		if err := uc.applyIntent(txCtx, order); err != nil {
			return err
		}
		succeeded = true
		return nil
	})
	if err != nil {
		uc.logger.Errorw("callback settlement failed", "order_no", data.OrderNo, "error", err)
		return RedirectIntent{Succeeded: false, OrderNo: data.OrderNo}
	}

	uc.logger.Infow("callback settled",
		"order_no", data.OrderNo, "succeeded", succeeded, "txn_id", data.TransactionID)
	return RedirectIntent{Succeeded: succeeded, OrderNo: data.OrderNo}
}

// applyIntent grants what the order bought. Runs inside the settlement
// transaction.
func (uc *HandleCallbackUseCase) applyIntent(ctx context.Context, order *billing.Order) error {
	intent := order.Intent()
	switch intent.Kind {
	case billing.IntentPlan:
		sub, err := uc.subRepo.GetCurrentByUserID(ctx, order.UserID())
		if err != nil {
			return fmt.Errorf("failed to load subscription for user %d: %w", order.UserID(), err)
		}
		if err := sub.ActivatePlan(intent.Plan, intent.Cycle); err != nil {
			return fmt.Errorf("failed to activate plan: %w", err)
		}
		return uc.subRepo.Update(ctx, sub)

	case billing.IntentCreditPack:
		return uc.userRepo.AddCredits(ctx, order.UserID(), intent.Credits)

	default:
		return fmt.Errorf("order %s has unknown intent kind %q", order.OrderNo(), intent.Kind)
	}
}

// failIfPending marks a pending order failed without granting anything.
// Terminal orders are left untouched.
func (uc *HandleCallbackUseCase) failIfPending(ctx context.Context, orderNo string, raw map[string]string) {
	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		order, err := uc.orderRepo.GetByOrderNoForUpdate(txCtx, orderNo)
		if err != nil {
			return err
		}
		if !order.IsPending() {
			return nil
		}
		if err := order.MarkFailed(raw); err != nil {
			return err
		}
		return uc.orderRepo.Update(txCtx, order)
	})
	if err != nil && !errors.Is(err, billing.ErrOrderNotFound) {
		uc.logger.Errorw("failed to mark order failed", "order_no", orderNo, "error", err)
	}
}
