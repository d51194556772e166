package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/internal/dto"
	"github.com/nutriblendai/nutriblend-backend/internal/service"
)

// AnalyticsHandler handles derived-statistics requests
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Past30DaysMacros returns per-date macro sums for the trailing 30 days
func (h *AnalyticsHandler) Past30DaysMacros(c *gin.Context) {
	totals, err := h.analyticsService.Past30DaysMacros(c.Request.Context(), c.GetString(ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	if totals == nil {
		totals = []domain.DailyMacroTotals{}
	}
	c.JSON(http.StatusOK, totals)
}

// MonthlyMacros returns per-month macro sums for one year
func (h *AnalyticsHandler) MonthlyMacros(c *gin.Context) {
	yearStr := c.Query("year")
	if yearStr == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: "year query param required",
		})
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: "year must be a number",
		})
		return
	}

	totals, err := h.analyticsService.MonthlyMacros(c.Request.Context(), c.GetString(ContextUserID), year)
	if err != nil {
		respondError(c, err)
		return
	}

	if totals == nil {
		totals = []domain.MonthlyMacroTotals{}
	}
	c.JSON(http.StatusOK, totals)
}

// WeightHistory returns the trailing weight log window
func (h *AnalyticsHandler) WeightHistory(c *gin.Context) {
	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Validation failed",
				Message: "days must be a positive number",
			})
			return
		}
		days = parsed
	}

	logs, err := h.analyticsService.WeightHistory(c.Request.Context(), c.GetString(ContextUserID), days)
	if err != nil {
		respondError(c, err)
		return
	}

	if logs == nil {
		logs = []*domain.WeightLog{}
	}
	c.JSON(http.StatusOK, logs)
}

// GoalProgress projects the weight trend against the active goal
func (h *AnalyticsHandler) GoalProgress(c *gin.Context) {
	progress, err := h.analyticsService.GoalProgress(c.Request.Context(), c.GetString(ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GoalProgressResponse{
		Goal:                progress.Goal,
		Progress:            progress.Progress,
		FirstLog:            progress.FirstLog,
		LastLog:             progress.LastLog,
		DailyChange:         progress.DailyChange,
		PredictedDaysToGoal: progress.PredictedDaysToGoal,
	})
}

// DailyCalories returns exactly 7 points, oldest first, zero-filled
func (h *AnalyticsHandler) DailyCalories(c *gin.Context) {
	series, err := h.analyticsService.DailyCaloriesLast7Days(c.Request.Context(), c.GetString(ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}
