package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutriblendai/nutriblend-backend/internal/dto"
	"github.com/nutriblendai/nutriblend-backend/internal/service"
	"go.uber.org/zap"
)

// respondError maps service failures onto the HTTP error taxonomy. Unknown
// errors are logged and collapsed to a generic message; no internal detail
// crosses the boundary.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrEmailExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   "Conflict",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: "Invalid token",
		})
	case errors.Is(err, service.ErrExpiredToken):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error:   "Forbidden",
			Message: "Token expired",
		})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not found",
			Message: "User not found",
		})
	case errors.Is(err, service.ErrNoActiveGoal):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not found",
			Message: "No active goal found",
		})
	case errors.Is(err, service.ErrAnalysisRefused):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Refused",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrAnalysisMalformed),
		errors.Is(err, service.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:   "Upstream error",
			Message: "Analysis failed",
		})
	default:
		zap.L().Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal server error",
			Message: "An unexpected error occurred",
		})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Validation failed",
		Message: err.Error(),
	})
}
