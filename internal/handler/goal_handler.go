package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutriblendai/nutriblend-backend/internal/dto"
	"github.com/nutriblendai/nutriblend-backend/internal/service"
)

// GoalHandler handles goal and weight-log requests
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// SetGoal replaces the user's active goal
func (h *GoalHandler) SetGoal(c *gin.Context) {
	var req dto.SetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	goal, err := h.goalService.SetGoal(c.Request.Context(), c.GetString(ContextUserID), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.GoalResponse{
		Message: "Goal saved",
		Goal:    goal,
	})
}

// GetGoal returns the user's active goal
func (h *GoalHandler) GetGoal(c *gin.Context) {
	goal, err := h.goalService.GetGoal(c.Request.Context(), c.GetString(ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// CreateWeightLog records a weight measurement
func (h *GoalHandler) CreateWeightLog(c *gin.Context) {
	var req dto.CreateWeightLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	log, err := h.goalService.AddWeightLog(c.Request.Context(), c.GetString(ContextUserID), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.WeightLogResponse{
		Message:   "Weight log saved",
		WeightLog: log,
	})
}
