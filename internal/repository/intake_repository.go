package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/pkg/database"
)

// intakeRepository implements IntakeRepository interface
type intakeRepository struct {
	db *database.Postgres
}

// NewIntakeRepository creates a new intake repository
func NewIntakeRepository(db *database.Postgres) IntakeRepository {
	return &intakeRepository{db: db}
}

// Create writes an immutable intake record
func (r *intakeRepository) Create(ctx context.Context, intake *domain.Intake) error {
	query := `
		INSERT INTO intakes (id, user_id, meal, calories, carbs, protein, fats, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if intake.ID == "" {
		intake.ID = uuid.New().String()
	}
	if intake.CreatedAt.IsZero() {
		intake.CreatedAt = time.Now()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		intake.ID,
		intake.UserID,
		intake.Meal,
		intake.Calories,
		intake.Macros.Carbs,
		intake.Macros.Protein,
		intake.Macros.Fats,
		intake.Date,
		intake.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create intake: %w", err)
	}

	return nil
}

// List returns the user's intakes newest-first, optionally for one date
func (r *intakeRepository) List(ctx context.Context, userID string, date *string) ([]*domain.Intake, error) {
	query := `
		SELECT id, user_id, meal, calories, carbs, protein, fats, date, created_at
		FROM intakes
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if date != nil {
		query += ` AND date = $2`
		args = append(args, *date)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list intakes: %w", err)
	}
	defer rows.Close()

	var intakes []*domain.Intake
	for rows.Next() {
		intake := &domain.Intake{}
		err := rows.Scan(
			&intake.ID,
			&intake.UserID,
			&intake.Meal,
			&intake.Calories,
			&intake.Macros.Carbs,
			&intake.Macros.Protein,
			&intake.Macros.Fats,
			&intake.Date,
			&intake.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan intake: %w", err)
		}
		intakes = append(intakes, intake)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate intakes: %w", err)
	}

	return intakes, nil
}

// Stats reduces the filtered intake set to a meal count and a calorie sum
func (r *intakeRepository) Stats(ctx context.Context, userID string, date *string) (*domain.IntakeStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(calories), 0)
		FROM intakes
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if date != nil {
		query += ` AND date = $2`
		args = append(args, *date)
	}

	stats := &domain.IntakeStats{}
	err := r.db.DB.QueryRowContext(ctx, query, args...).Scan(&stats.TotalMeals, &stats.TotalCalories)
	if err != nil {
		return nil, fmt.Errorf("failed to compute intake stats: %w", err)
	}

	return stats, nil
}

// SumByDate groups by the stored date string, ascending
func (r *intakeRepository) SumByDate(ctx context.Context, userID, from, to string) ([]domain.DailyMacroTotals, error) {
	query := `
		SELECT date,
		       COALESCE(SUM(calories), 0),
		       COALESCE(SUM(carbs), 0),
		       COALESCE(SUM(protein), 0),
		       COALESCE(SUM(fats), 0)
		FROM intakes
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY date
		ORDER BY date ASC
	`

	rows, err := r.db.DB.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum intakes by date: %w", err)
	}
	defer rows.Close()

	var totals []domain.DailyMacroTotals
	for rows.Next() {
		var t domain.DailyMacroTotals
		if err := rows.Scan(&t.Date, &t.TotalCalories, &t.TotalCarbs, &t.TotalProtein, &t.TotalFats); err != nil {
			return nil, fmt.Errorf("failed to scan daily totals: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily totals: %w", err)
	}

	return totals, nil
}

// SumByMonth groups by the YYYY-MM prefix of the date string, ascending
func (r *intakeRepository) SumByMonth(ctx context.Context, userID string, year int) ([]domain.MonthlyMacroTotals, error) {
	query := `
		SELECT substr(date, 1, 7) AS month,
		       COALESCE(SUM(calories), 0),
		       COALESCE(SUM(carbs), 0),
		       COALESCE(SUM(protein), 0),
		       COALESCE(SUM(fats), 0)
		FROM intakes
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY month
		ORDER BY month ASC
	`

	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-12-31", year)

	rows, err := r.db.DB.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum intakes by month: %w", err)
	}
	defer rows.Close()

	var totals []domain.MonthlyMacroTotals
	for rows.Next() {
		var t domain.MonthlyMacroTotals
		if err := rows.Scan(&t.Month, &t.TotalCalories, &t.TotalCarbs, &t.TotalProtein, &t.TotalFats); err != nil {
			return nil, fmt.Errorf("failed to scan monthly totals: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly totals: %w", err)
	}

	return totals, nil
}
