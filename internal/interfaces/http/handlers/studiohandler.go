package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumira-inc/lumira/internal/application/studio/usecases"
	"github.com/lumira-inc/lumira/internal/interfaces/http/middleware"
	"github.com/lumira-inc/lumira/internal/shared/logger"
	"github.com/lumira-inc/lumira/internal/shared/utils"
)

// StudioHandler handles concept proposal, shot generation and history.
type StudioHandler struct {
	conceptUseCase  *usecases.GenerateConceptUseCase
	generateUseCase *usecases.GenerateImagesUseCase
	historyUseCase  *usecases.ListHistoryUseCase
	logger          logger.Interface
}

// NewStudioHandler creates a new studio handler
func NewStudioHandler(
	conceptUC *usecases.GenerateConceptUseCase,
	generateUC *usecases.GenerateImagesUseCase,
	historyUC *usecases.ListHistoryUseCase,
	logger logger.Interface,
) *StudioHandler {
	return &StudioHandler{
		conceptUseCase:  conceptUC,
		generateUseCase: generateUC,
		historyUseCase:  historyUC,
		logger:          logger,
	}
}

// ProposeConceptRequest carries the uploaded product image and the shoot
// parameters. The image travels as a base64 data payload with its mime type.
type ProposeConceptRequest struct {
	ImageData    string `json:"image_data" binding:"required"`
	MimeType     string `json:"mime_type" binding:"required"`
	Style        string `json:"style" binding:"required"`
	Tier         string `json:"tier" binding:"required"`
	CustomPrompt string `json:"custom_prompt"`
	IncludeModel bool   `json:"include_model"`
}

// ProposeConcept handles POST /api/v1/studio/concepts
func (h *StudioHandler) ProposeConcept(c *gin.Context) {
	var req ProposeConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for propose concept", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.conceptUseCase.Execute(c.Request.Context(), usecases.GenerateConceptCommand{
		SubjectID:    middleware.SubjectID(c),
		SourceData:   req.ImageData,
		SourceMime:   req.MimeType,
		Style:        req.Style,
		Tier:         req.Tier,
		CustomPrompt: req.CustomPrompt,
		IncludeModel: req.IncludeModel,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "concept proposed", result)
}

// GenerateImagesRequest carries the approved concept back for rendering. The
// shot list must match what the concept step proposed for the tier.
type GenerateImagesRequest struct {
	ImageData    string   `json:"image_data" binding:"required"`
	MimeType     string   `json:"mime_type" binding:"required"`
	Style        string   `json:"style" binding:"required"`
	Tier         string   `json:"tier" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Theme        string   `json:"theme" binding:"required"`
	Shots        []string `json:"shots" binding:"required,min=1"`
	IncludeModel bool     `json:"include_model"`
}

// GenerateImages handles POST /api/v1/studio/generations
func (h *StudioHandler) GenerateImages(c *gin.Context) {
	var req GenerateImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for generate images", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateUseCase.Execute(c.Request.Context(), usecases.GenerateImagesCommand{
		SubjectID:    middleware.SubjectID(c),
		SourceData:   req.ImageData,
		SourceMime:   req.MimeType,
		Style:        req.Style,
		Tier:         req.Tier,
		Category:     req.Category,
		Theme:        req.Theme,
		Shots:        req.Shots,
		IncludeModel: req.IncludeModel,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "images generated", result)
}

// ListHistory handles GET /api/v1/studio/generations
func (h *StudioHandler) ListHistory(c *gin.Context) {
	items, err := h.historyUseCase.Execute(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "history retrieved", gin.H{
		"generations": items,
		"total":       len(items),
	})
}
