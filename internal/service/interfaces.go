package service

import (
	"context"
	"time"

	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/internal/dto"
)

// AuthService defines methods for the authentication/session lifecycle
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error)
	// Refresh consumes the presented refresh token and issues a new pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	// RequestPasswordReset returns an empty token when the email is unknown;
	// callers respond identically either way.
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	// ValidateAccessToken is stateless: signature and expiry only.
	ValidateAccessToken(token string) (*domain.TokenClaims, error)
}

// IntakeService defines the meal write/read contract
type IntakeService interface {
	Add(ctx context.Context, userID string, req *dto.CreateIntakeRequest) (*domain.Intake, error)
	List(ctx context.Context, userID string, date *string) ([]*domain.Intake, error)
	Stats(ctx context.Context, userID string, date *string) (*domain.IntakeStats, error)
}

// AnalyticsService computes derived statistics from intake and weight records
type AnalyticsService interface {
	Past30DaysMacros(ctx context.Context, userID string) ([]domain.DailyMacroTotals, error)
	MonthlyMacros(ctx context.Context, userID string, year int) ([]domain.MonthlyMacroTotals, error)
	WeightHistory(ctx context.Context, userID string, days int) ([]*domain.WeightLog, error)
	GoalProgress(ctx context.Context, userID string) (*GoalProgress, error)
	DailyCaloriesLast7Days(ctx context.Context, userID string) ([]domain.DailyCalories, error)
}

// GoalService manages the per-user active goal and weight logs
type GoalService interface {
	SetGoal(ctx context.Context, userID string, req *dto.SetGoalRequest) (*domain.Goal, error)
	GetGoal(ctx context.Context, userID string) (*domain.Goal, error)
	AddWeightLog(ctx context.Context, userID string, req *dto.CreateWeightLogRequest) (*domain.WeightLog, error)
}

// AnalysisService is the vision proxy. Results are drafts, never persisted.
type AnalysisService interface {
	AnalyzeMeal(ctx context.Context, imageData string) (*domain.MealAnalysis, error)
}

// TokenBlacklist parks revoked refresh tokens until their natural expiry
type TokenBlacklist interface {
	AddToken(ctx context.Context, token string, expiry time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

// Limiter is a fixed-budget sliding-window rate limiter
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Remaining(ctx context.Context, key string, limit int, window time.Duration) (int, error)
}
