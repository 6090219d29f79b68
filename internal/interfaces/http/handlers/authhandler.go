package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUsecases "github.com/lumira-inc/lumira/internal/application/auth/usecases"
	"github.com/lumira-inc/lumira/internal/interfaces/http/middleware"
	"github.com/lumira-inc/lumira/internal/shared/logger"
	"github.com/lumira-inc/lumira/internal/shared/utils"
)

type AuthHandler struct {
	syncProfileUC *authUsecases.SyncProfileUseCase
	logger        logger.Interface
}

func NewAuthHandler(
	syncProfileUC *authUsecases.SyncProfileUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		syncProfileUC: syncProfileUC,
		logger:        logger,
	}
}

// SyncProfile upserts the caller's profile from the verified token. The
// client calls this right after sign-in; first login provisions the account.
func (h *AuthHandler) SyncProfile(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	profile, err := h.syncProfileUC.Execute(c.Request.Context(), *ident)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile synced", profile)
}
