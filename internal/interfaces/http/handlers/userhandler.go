package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUsecases "github.com/lumira-inc/lumira/internal/application/auth/usecases"
	billingUsecases "github.com/lumira-inc/lumira/internal/application/billing/usecases"
	"github.com/lumira-inc/lumira/internal/interfaces/http/middleware"
	"github.com/lumira-inc/lumira/internal/shared/logger"
	"github.com/lumira-inc/lumira/internal/shared/utils"
)

// UserHandler serves the caller's own profile and payment history.
type UserHandler struct {
	getProfileUseCase   *authUsecases.GetProfileUseCase
	listPaymentsUseCase *billingUsecases.ListPaymentsUseCase
	logger              logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	getProfileUC *authUsecases.GetProfileUseCase,
	listPaymentsUC *billingUsecases.ListPaymentsUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getProfileUseCase:   getProfileUC,
		listPaymentsUseCase: listPaymentsUC,
		logger:              logger,
	}
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetProfile handles GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.getProfileUseCase.Execute(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile retrieved", profile)
}

// ListPayments handles GET /api/v1/users/me/payments
func (h *UserHandler) ListPayments(c *gin.Context) {
	items, err := h.listPaymentsUseCase.Execute(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payments retrieved", gin.H{
		"payments": items,
		"total":    len(items),
	})
}
