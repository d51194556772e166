package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/internal/repository"
	"github.com/nutriblendai/nutriblend-backend/internal/utils"
)

const notEnoughDataMessage = "Not enough weight logs to predict trend"

// GoalProgress is the projection of the weight trend against the active
// goal. PredictedDaysToGoal stays nil unless the trend actually moves toward
// the target; a diverging or flat trend is not extrapolated.
type GoalProgress struct {
	Goal                *domain.Goal
	Progress            string // set when there is not enough data
	FirstLog            *domain.WeightLog
	LastLog             *domain.WeightLog
	DailyChange         *float64
	PredictedDaysToGoal *int
}

// analyticsService implements AnalyticsService interface
type analyticsService struct {
	intakeRepo repository.IntakeRepository
	weightRepo repository.WeightLogRepository
	goalRepo   repository.GoalRepository

	// now is replaceable in tests
	now func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	intakeRepo repository.IntakeRepository,
	weightRepo repository.WeightLogRepository,
	goalRepo repository.GoalRepository,
) AnalyticsService {
	return &analyticsService{
		intakeRepo: intakeRepo,
		weightRepo: weightRepo,
		goalRepo:   goalRepo,
		now:        time.Now,
	}
}

// Past30DaysMacros returns per-date macro sums for the 30 calendar days
// ending today, ascending; only dates with at least one intake appear.
func (s *analyticsService) Past30DaysMacros(ctx context.Context, userID string) ([]domain.DailyMacroTotals, error) {
	end := s.now()
	start := end.AddDate(0, 0, -29)

	return s.intakeRepo.SumByDate(ctx, userID, utils.FormatDate(start), utils.FormatDate(end))
}

// MonthlyMacros returns per-month macro sums for one calendar year, ascending
func (s *analyticsService) MonthlyMacros(ctx context.Context, userID string, year int) ([]domain.MonthlyMacroTotals, error) {
	if year < 1000 || year > 9999 {
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidDate)
	}
	return s.intakeRepo.SumByMonth(ctx, userID, year)
}

// WeightHistory returns weight logs in the trailing window, ascending by date
func (s *analyticsService) WeightHistory(ctx context.Context, userID string, days int) ([]*domain.WeightLog, error) {
	if days <= 0 {
		days = 30
	}

	end := s.now()
	start := end.AddDate(0, 0, -(days - 1))

	return s.weightRepo.ListRange(ctx, userID, utils.FormatDate(start), utils.FormatDate(end))
}

// GoalProgress projects the weight trend against the active goal
func (s *analyticsService) GoalProgress(ctx context.Context, userID string) (*GoalProgress, error) {
	goal, err := s.goalRepo.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveGoal
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	logs, err := s.weightRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight logs: %w", err)
	}

	if len(logs) < 2 {
		return &GoalProgress{Goal: goal, Progress: notEnoughDataMessage}, nil
	}

	first := logs[0]
	last := logs[len(logs)-1]

	firstDate, err := utils.ParseDate(first.Date)
	if err != nil {
		return nil, fmt.Errorf("malformed weight log date %q: %w", first.Date, err)
	}
	lastDate, err := utils.ParseDate(last.Date)
	if err != nil {
		return nil, fmt.Errorf("malformed weight log date %q: %w", last.Date, err)
	}

	daysBetween := lastDate.Sub(firstDate).Hours() / 24
	if daysBetween <= 0 {
		// All logs on one day: no trend to project.
		return &GoalProgress{Goal: goal, Progress: notEnoughDataMessage}, nil
	}

	dailyChange := (last.Weight - first.Weight) / daysBetween

	progress := &GoalProgress{
		Goal:        goal,
		FirstLog:    first,
		LastLog:     last,
		DailyChange: &dailyChange,
	}

	// Extrapolate only a converging trend: losing weight while still above
	// the target. Anything else leaves the projection nil.
	weightToLose := last.Weight - goal.TargetWeight
	if dailyChange < 0 && weightToLose > 0 {
		predicted := int(math.Ceil(math.Abs(weightToLose / dailyChange)))
		progress.PredictedDaysToGoal = &predicted
	}

	return progress, nil
}

// DailyCaloriesLast7Days returns exactly 7 points, oldest first, with zero
// calories on days that have no intakes. Charting consumers rely on the
// fixed width.
func (s *analyticsService) DailyCaloriesLast7Days(ctx context.Context, userID string) ([]domain.DailyCalories, error) {
	end := s.now()
	start := end.AddDate(0, 0, -6)

	totals, err := s.intakeRepo.SumByDate(ctx, userID, utils.FormatDate(start), utils.FormatDate(end))
	if err != nil {
		return nil, fmt.Errorf("failed to sum daily calories: %w", err)
	}

	byDate := make(map[string]float64, len(totals))
	for _, t := range totals {
		byDate[t.Date] = t.TotalCalories
	}

	series := make([]domain.DailyCalories, 0, 7)
	for i := 0; i < 7; i++ {
		date := utils.FormatDate(start.AddDate(0, 0, i))
		series = append(series, domain.DailyCalories{
			Date:     date,
			Calories: byDate[date],
		})
	}

	return series, nil
}
