package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/internal/dto"
	"github.com/nutriblendai/nutriblend-backend/internal/service"
)

// IntakeHandler handles meal record requests
type IntakeHandler struct {
	intakeService service.IntakeService
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intakeService service.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

// Create persists a meal record for the current user
func (h *IntakeHandler) Create(c *gin.Context) {
	var req dto.CreateIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	intake, err := h.intakeService.Add(c.Request.Context(), c.GetString(ContextUserID), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.IntakeResponse{
		Message: "Intake saved",
		Data:    intake,
	})
}

// List returns the current user's intakes, optionally for one date
func (h *IntakeHandler) List(c *gin.Context) {
	intakes, err := h.intakeService.List(c.Request.Context(), c.GetString(ContextUserID), dateQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if intakes == nil {
		intakes = []*domain.Intake{}
	}
	c.JSON(http.StatusOK, intakes)
}

// Stats returns the meal count and calorie sum for the filtered set
func (h *IntakeHandler) Stats(c *gin.Context) {
	stats, err := h.intakeService.Stats(c.Request.Context(), c.GetString(ContextUserID), dateQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func dateQuery(c *gin.Context) *string {
	if date := c.Query("date"); date != "" {
		return &date
	}
	return nil
}
