package repository

import (
	"context"

	"github.com/nutriblendai/nutriblend-backend/internal/domain"
)

// UserRepository defines methods for user operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// TokenRepository defines methods for refresh token operations
type TokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	// Consume deletes the token record and returns ErrNotFound when it was
	// already gone. Exactly one concurrent caller can succeed per token.
	Consume(ctx context.Context, tokenHash string) error
	// Delete removes the token record; missing records are not an error.
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) error
}

// IntakeRepository defines methods for meal records and their aggregations
type IntakeRepository interface {
	Create(ctx context.Context, intake *domain.Intake) error
	// List returns the owner's intakes newest-first, optionally restricted to
	// one exact calendar date.
	List(ctx context.Context, userID string, date *string) ([]*domain.Intake, error)
	Stats(ctx context.Context, userID string, date *string) (*domain.IntakeStats, error)
	// SumByDate groups intakes by their stored date string over [from, to],
	// ascending; dates with no intakes are absent.
	SumByDate(ctx context.Context, userID, from, to string) ([]domain.DailyMacroTotals, error)
	// SumByMonth groups one calendar year of intakes by the YYYY-MM prefix of
	// the date string, ascending.
	SumByMonth(ctx context.Context, userID string, year int) ([]domain.MonthlyMacroTotals, error)
}

// GoalRepository defines methods for goal operations
type GoalRepository interface {
	// SetActive inserts the goal as the user's active goal, deactivating any
	// previous one in the same transaction.
	SetActive(ctx context.Context, goal *domain.Goal) error
	GetActive(ctx context.Context, userID string) (*domain.Goal, error)
}

// WeightLogRepository defines methods for weight log operations
type WeightLogRepository interface {
	Create(ctx context.Context, log *domain.WeightLog) error
	// ListRange returns logs with date in [from, to], ascending by date.
	ListRange(ctx context.Context, userID, from, to string) ([]*domain.WeightLog, error)
	// ListAll returns every log for the user, ascending by date.
	ListAll(ctx context.Context, userID string) ([]*domain.WeightLog, error)
}
