package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/lumira-inc/lumira/internal/domain/billing"
	vo "github.com/lumira-inc/lumira/internal/domain/billing/valueobjects"
	"github.com/lumira-inc/lumira/internal/infrastructure/persistence/models"
)

func OrderToModel(o *billing.Order) (*models.OrderModel, error) {
	intent, err := json.Marshal(o.Intent())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal intent: %w", err)
	}

	model := &models.OrderModel{
		ID:           o.ID(),
		OrderNo:      o.OrderNo(),
		UserID:       o.UserID(),
		Amount:       o.Amount(),
		Currency:     o.Currency(),
		Description:  o.Description(),
		Intent:       intent,
		Status:       o.Status().String(),
		GatewayTxnID: o.GatewayTxnID(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}

	if raw := o.CallbackRaw(); len(raw) > 0 {
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal callback payload: %w", err)
		}
		model.CallbackRaw = data
	}

	return model, nil
}

func OrderToDomain(model *models.OrderModel) (*billing.Order, error) {
	var intent billing.PurchaseIntent
	if err := json.Unmarshal(model.Intent, &intent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intent: %w", err)
	}
	if err := intent.Validate(); err != nil {
		return nil, fmt.Errorf("stored intent for order %s is invalid: %w", model.OrderNo, err)
	}

	status, err := vo.NewOrderStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid order status: %w", err)
	}

	var raw map[string]string
	if len(model.CallbackRaw) > 0 {
		if err := json.Unmarshal(model.CallbackRaw, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal callback payload: %w", err)
		}
	}

	return billing.ReconstructOrder(
		model.ID,
		model.OrderNo,
		model.UserID,
		model.Amount,
		model.Currency,
		model.Description,
		intent,
		status,
		model.GatewayTxnID,
		raw,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
