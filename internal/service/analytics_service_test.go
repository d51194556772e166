package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriblendai/nutriblend-backend/internal/domain"
)

const testUserID = "user-123"

func newTestAnalyticsService(now time.Time) (*analyticsService, *fakeIntakeRepo, *fakeWeightLogRepo, *fakeGoalRepo) {
	intakeRepo := newFakeIntakeRepo()
	weightRepo := newFakeWeightLogRepo()
	goalRepo := newFakeGoalRepo()

	svc := &analyticsService{
		intakeRepo: intakeRepo,
		weightRepo: weightRepo,
		goalRepo:   goalRepo,
		now:        func() time.Time { return now },
	}
	return svc, intakeRepo, weightRepo, goalRepo
}

func addIntake(t *testing.T, repo *fakeIntakeRepo, date string, calories float64, macros domain.Macros) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &domain.Intake{
		UserID:   testUserID,
		Meal:     "meal",
		Calories: calories,
		Macros:   macros,
		Date:     date,
	}))
}

func addWeight(t *testing.T, repo *fakeWeightLogRepo, date string, weight float64) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &domain.WeightLog{
		UserID: testUserID,
		Date:   date,
		Weight: weight,
	}))
}

func TestPast30DaysMacros(t *testing.T) {
	// The 30-day window ending 2024-01-30 starts on 2024-01-01.
	now := time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC)
	svc, intakeRepo, _, _ := newTestAnalyticsService(now)

	addIntake(t, intakeRepo, "2024-01-01", 300, domain.Macros{Carbs: 30, Protein: 20, Fats: 10})
	addIntake(t, intakeRepo, "2024-01-01", 200, domain.Macros{Carbs: 10, Protein: 10, Fats: 5})
	addIntake(t, intakeRepo, "2024-01-15", 500, domain.Macros{Carbs: 50, Protein: 25, Fats: 15})
	addIntake(t, intakeRepo, "2023-12-31", 999, domain.Macros{})

	totals, err := svc.Past30DaysMacros(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, totals, 2)
	assert.Equal(t, "2024-01-01", totals[0].Date)
	assert.Equal(t, 500.0, totals[0].TotalCalories)
	assert.Equal(t, 40.0, totals[0].TotalCarbs)
	assert.Equal(t, 30.0, totals[0].TotalProtein)
	assert.Equal(t, 15.0, totals[0].TotalFats)
	assert.Equal(t, "2024-01-15", totals[1].Date)
}

func TestMonthlyMacros(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, intakeRepo, _, _ := newTestAnalyticsService(now)

	addIntake(t, intakeRepo, "2024-01-10", 300, domain.Macros{Carbs: 30})
	addIntake(t, intakeRepo, "2024-01-20", 200, domain.Macros{Carbs: 20})
	addIntake(t, intakeRepo, "2024-03-05", 400, domain.Macros{Protein: 40})
	addIntake(t, intakeRepo, "2023-01-10", 999, domain.Macros{})

	totals, err := svc.MonthlyMacros(context.Background(), testUserID, 2024)
	require.NoError(t, err)

	require.Len(t, totals, 2)
	assert.Equal(t, "2024-01", totals[0].Month)
	assert.Equal(t, 500.0, totals[0].TotalCalories)
	assert.Equal(t, "2024-03", totals[1].Month)
	assert.Equal(t, 40.0, totals[1].TotalProtein)
}

func TestMonthlyMacrosRejectsBadYear(t *testing.T) {
	svc, _, _, _ := newTestAnalyticsService(time.Now())

	_, err := svc.MonthlyMacros(context.Background(), testUserID, 42)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWeightHistoryWindow(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	svc, _, weightRepo, _ := newTestAnalyticsService(now)

	addWeight(t, weightRepo, "2024-02-01", 81)
	addWeight(t, weightRepo, "2024-02-09", 80)
	addWeight(t, weightRepo, "2024-01-20", 85)

	logs, err := svc.WeightHistory(context.Background(), testUserID, 10)
	require.NoError(t, err)

	require.Len(t, logs, 2)
	assert.Equal(t, "2024-02-01", logs[0].Date)
	assert.Equal(t, "2024-02-09", logs[1].Date)

	// Zero and negative fall back to the 30-day default.
	logs, err = svc.WeightHistory(context.Background(), testUserID, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}

func TestGoalProgressPrediction(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, weightRepo, goalRepo := newTestAnalyticsService(now)

	require.NoError(t, goalRepo.SetActive(context.Background(), &domain.Goal{
		UserID:       testUserID,
		TargetWeight: 70,
	}))

	// 80kg to 75kg over 5 days toward a 70kg target: losing 1kg/day, 5 days
	// of loss left.
	addWeight(t, weightRepo, "2024-02-01", 80)
	addWeight(t, weightRepo, "2024-02-06", 75)

	progress, err := svc.GoalProgress(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Empty(t, progress.Progress)
	require.NotNil(t, progress.DailyChange)
	assert.InDelta(t, -1.0, *progress.DailyChange, 1e-9)
	require.NotNil(t, progress.PredictedDaysToGoal)
	assert.Equal(t, 5, *progress.PredictedDaysToGoal)
	assert.Equal(t, "2024-02-01", progress.FirstLog.Date)
	assert.Equal(t, "2024-02-06", progress.LastLog.Date)
}

// A gaining trend is never extrapolated to a weight-loss target.
func TestGoalProgressDivergingTrend(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, weightRepo, goalRepo := newTestAnalyticsService(now)

	require.NoError(t, goalRepo.SetActive(context.Background(), &domain.Goal{
		UserID:       testUserID,
		TargetWeight: 70,
	}))

	addWeight(t, weightRepo, "2024-02-01", 75)
	addWeight(t, weightRepo, "2024-02-06", 80)

	progress, err := svc.GoalProgress(context.Background(), testUserID)
	require.NoError(t, err)

	require.NotNil(t, progress.DailyChange)
	assert.InDelta(t, 1.0, *progress.DailyChange, 1e-9)
	assert.Nil(t, progress.PredictedDaysToGoal)
}

// Already at or below the target: nothing left to predict.
func TestGoalProgressTargetReached(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, weightRepo, goalRepo := newTestAnalyticsService(now)

	require.NoError(t, goalRepo.SetActive(context.Background(), &domain.Goal{
		UserID:       testUserID,
		TargetWeight: 80,
	}))

	addWeight(t, weightRepo, "2024-02-01", 82)
	addWeight(t, weightRepo, "2024-02-06", 79)

	progress, err := svc.GoalProgress(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Nil(t, progress.PredictedDaysToGoal)
}

func TestGoalProgressNotEnoughData(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, weightRepo, goalRepo := newTestAnalyticsService(now)

	require.NoError(t, goalRepo.SetActive(context.Background(), &domain.Goal{
		UserID:       testUserID,
		TargetWeight: 70,
	}))

	progress, err := svc.GoalProgress(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, "Not enough weight logs to predict trend", progress.Progress)
	assert.Nil(t, progress.DailyChange)

	// Two logs on the same day still give no trend.
	addWeight(t, weightRepo, "2024-02-01", 80)
	addWeight(t, weightRepo, "2024-02-01", 79)

	progress, err = svc.GoalProgress(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, "Not enough weight logs to predict trend", progress.Progress)
	assert.Nil(t, progress.PredictedDaysToGoal)
}

func TestGoalProgressRequiresActiveGoal(t *testing.T) {
	svc, _, _, _ := newTestAnalyticsService(time.Now())

	_, err := svc.GoalProgress(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrNoActiveGoal)
}

func TestDailyCaloriesLast7DaysZeroFilled(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	svc, intakeRepo, _, _ := newTestAnalyticsService(now)

	addIntake(t, intakeRepo, "2024-01-01", 300, domain.Macros{})
	addIntake(t, intakeRepo, "2024-01-03", 500, domain.Macros{})

	series, err := svc.DailyCaloriesLast7Days(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, series, 7)
	assert.Equal(t, "2023-12-28", series[0].Date)
	assert.Equal(t, "2024-01-03", series[6].Date)

	byDate := make(map[string]float64)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date, series[i].Date)
		byDate[series[i].Date] = series[i].Calories
	}
	byDate[series[0].Date] = series[0].Calories

	assert.Equal(t, 300.0, byDate["2024-01-01"])
	assert.Equal(t, 0.0, byDate["2024-01-02"])
	assert.Equal(t, 500.0, byDate["2024-01-03"])
	assert.Equal(t, 0.0, byDate["2023-12-30"])
}

func TestDailyCaloriesAlwaysSevenEntries(t *testing.T) {
	svc, _, _, _ := newTestAnalyticsService(time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC))

	series, err := svc.DailyCaloriesLast7Days(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Len(t, series, 7)
	for _, point := range series {
		assert.Zero(t, point.Calories)
	}
}
