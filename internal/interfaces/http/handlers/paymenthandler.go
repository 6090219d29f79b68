package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumira-inc/lumira/internal/application/billing/usecases"
	"github.com/lumira-inc/lumira/internal/interfaces/http/middleware"
	"github.com/lumira-inc/lumira/internal/shared/logger"
	"github.com/lumira-inc/lumira/internal/shared/utils"
)

// PaymentHandler handles order creation and gateway callbacks.
type PaymentHandler struct {
	createOrderUseCase *usecases.CreateOrderUseCase
	callbackUseCase    *usecases.HandleCallbackUseCase
	clientBaseURL      string
	logger             logger.Interface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(
	createOrderUC *usecases.CreateOrderUseCase,
	callbackUC *usecases.HandleCallbackUseCase,
	clientBaseURL string,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		createOrderUseCase: createOrderUC,
		callbackUseCase:    callbackUC,
		clientBaseURL:      clientBaseURL,
		logger:             logger,
	}
}

// CreateOrderRequest names what is being bought. Exactly one of plan or
// pack_credits is set; prices come from the server-side catalogue.
type CreateOrderRequest struct {
	Plan        string `json:"plan"`
	Cycle       string `json:"cycle"`
	PackCredits int    `json:"pack_credits"`
}

// CreateOrder handles POST /api/v1/payments/orders
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create order", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createOrderUseCase.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		SubjectID:   middleware.SubjectID(c),
		Plan:        req.Plan,
		Cycle:       req.Cycle,
		PackCredits: req.PackCredits,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "order created", result)
}

// Callback handles POST /api/v1/payments/callback. The gateway posts the
// transaction result here as a form, unauthenticated, and the user's browser
// follows our redirect back to the client app. Settlement outcomes never
// surface as HTTP errors; the redirect target carries the result instead.
func (h *PaymentHandler) Callback(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.logger.Warnw("unparseable payment callback", "error", err)
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/payment/failure", h.clientBaseURL))
		return
	}

	intent := h.callbackUseCase.Execute(c.Request.Context(), c.Request.Form)

	outcome := "failure"
	if intent.Succeeded {
		outcome = "success"
	}
	target := fmt.Sprintf("%s/payment/%s", h.clientBaseURL, outcome)
	if intent.OrderNo != "" {
		target = fmt.Sprintf("%s?order_no=%s", target, intent.OrderNo)
	}
	c.Redirect(http.StatusFound, target)
}
