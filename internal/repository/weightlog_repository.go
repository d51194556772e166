package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/pkg/database"
)

// weightLogRepository implements WeightLogRepository interface
type weightLogRepository struct {
	db *database.Postgres
}

// NewWeightLogRepository creates a new weight log repository
func NewWeightLogRepository(db *database.Postgres) WeightLogRepository {
	return &weightLogRepository{db: db}
}

// Create writes a weight measurement
func (r *weightLogRepository) Create(ctx context.Context, log *domain.WeightLog) error {
	query := `
		INSERT INTO weight_logs (id, user_id, date, weight, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		log.ID,
		log.UserID,
		log.Date,
		log.Weight,
		log.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create weight log: %w", err)
	}

	return nil
}

// ListRange returns logs with date in [from, to], ascending by date
func (r *weightLogRepository) ListRange(ctx context.Context, userID, from, to string) ([]*domain.WeightLog, error) {
	query := `
		SELECT id, user_id, date, weight, created_at
		FROM weight_logs
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	return r.queryLogs(ctx, query, userID, from, to)
}

// ListAll returns every log for the user, ascending by date
func (r *weightLogRepository) ListAll(ctx context.Context, userID string) ([]*domain.WeightLog, error) {
	query := `
		SELECT id, user_id, date, weight, created_at
		FROM weight_logs
		WHERE user_id = $1
		ORDER BY date ASC
	`

	return r.queryLogs(ctx, query, userID)
}

func (r *weightLogRepository) queryLogs(ctx context.Context, query string, args ...interface{}) ([]*domain.WeightLog, error) {
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.WeightLog
	for rows.Next() {
		log := &domain.WeightLog{}
		if err := rows.Scan(&log.ID, &log.UserID, &log.Date, &log.Weight, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan weight log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weight logs: %w", err)
	}

	return logs, nil
}
