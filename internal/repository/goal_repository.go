package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/pkg/database"
)

// goalRepository implements GoalRepository interface
type goalRepository struct {
	db *database.Postgres
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *database.Postgres) GoalRepository {
	return &goalRepository{db: db}
}

// SetActive deactivates the user's previous goal and inserts the new one as
// active, inside one transaction. At most one goal per user is ever active,
// even when two goals share a creation timestamp.
func (r *goalRepository) SetActive(ctx context.Context, goal *domain.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}
	goal.IsActive = true

	tx, err := r.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deactivate := `UPDATE goals SET is_active = FALSE WHERE user_id = $1 AND is_active`
	if _, err := tx.ExecContext(ctx, deactivate, goal.UserID); err != nil {
		return fmt.Errorf("failed to deactivate previous goal: %w", err)
	}

	insert := `
		INSERT INTO goals (id, user_id, target_weight, target_date, daily_calorie_target,
		                   carbs_ratio, protein_ratio, fats_ratio, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.ExecContext(ctx, insert,
		goal.ID,
		goal.UserID,
		goal.TargetWeight,
		goal.TargetDate,
		goal.DailyCalorieTarget,
		goal.MacrosRatio.Carbs,
		goal.MacrosRatio.Protein,
		goal.MacrosRatio.Fats,
		goal.IsActive,
		goal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit goal: %w", err)
	}

	return nil
}

// GetActive retrieves the user's active goal
func (r *goalRepository) GetActive(ctx context.Context, userID string) (*domain.Goal, error) {
	query := `
		SELECT id, user_id, target_weight, target_date, daily_calorie_target,
		       carbs_ratio, protein_ratio, fats_ratio, is_active, created_at
		FROM goals
		WHERE user_id = $1 AND is_active
	`

	goal := &domain.Goal{}
	err := r.db.DB.QueryRowContext(ctx, query, userID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.TargetWeight,
		&goal.TargetDate,
		&goal.DailyCalorieTarget,
		&goal.MacrosRatio.Carbs,
		&goal.MacrosRatio.Protein,
		&goal.MacrosRatio.Fats,
		&goal.IsActive,
		&goal.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("active goal for user %s not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get active goal: %w", err)
	}

	return goal, nil
}
