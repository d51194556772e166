package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutriblendai/nutriblend-backend/internal/dto"
	"github.com/nutriblendai/nutriblend-backend/internal/service"
)

// AnalysisHandler handles meal photo analysis requests
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// AnalyzeStructured forwards a meal image upstream and returns a macro
// estimate draft. Nothing is persisted here.
func (h *AnalysisHandler) AnalyzeStructured(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	analysis, err := h.analysisService.AnalyzeMeal(c.Request.Context(), req.ImageData)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AnalysisResponse{Analysis: analysis})
}
