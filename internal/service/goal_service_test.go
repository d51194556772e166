package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriblendai/nutriblend-backend/internal/dto"
	"github.com/nutriblendai/nutriblend-backend/internal/utils"
)

func newTestGoalService() (GoalService, *fakeGoalRepo, *fakeWeightLogRepo) {
	goalRepo := newFakeGoalRepo()
	weightRepo := newFakeWeightLogRepo()
	return NewGoalService(goalRepo, weightRepo), goalRepo, weightRepo
}

func TestSetGoalDefaults(t *testing.T) {
	svc, _, _ := newTestGoalService()

	goal, err := svc.SetGoal(context.Background(), testUserID, &dto.SetGoalRequest{
		TargetWeight: 70,
		TargetDate:   "2024-12-31",
	})
	require.NoError(t, err)

	assert.Equal(t, 70.0, goal.TargetWeight)
	assert.Equal(t, 2000.0, goal.DailyCalorieTarget)
	assert.Equal(t, 40.0, goal.MacrosRatio.Carbs)
	assert.Equal(t, 30.0, goal.MacrosRatio.Protein)
	assert.Equal(t, 30.0, goal.MacrosRatio.Fats)
	assert.True(t, goal.IsActive)
}

func TestSetGoalOverrides(t *testing.T) {
	svc, _, _ := newTestGoalService()

	target := 1800.0
	goal, err := svc.SetGoal(context.Background(), testUserID, &dto.SetGoalRequest{
		TargetWeight:       65,
		TargetDate:         "2024-12-31",
		DailyCalorieTarget: &target,
		MacrosRatio: &dto.MacrosPayload{
			Carbs:   floatPtr(50),
			Protein: floatPtr(25),
			Fats:    floatPtr(25),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1800.0, goal.DailyCalorieTarget)
	assert.Equal(t, 50.0, goal.MacrosRatio.Carbs)
}

func TestSetGoalRejectsBadDate(t *testing.T) {
	svc, _, _ := newTestGoalService()

	_, err := svc.SetGoal(context.Background(), testUserID, &dto.SetGoalRequest{
		TargetWeight: 70,
		TargetDate:   "31-12-2024",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

// Setting a second goal replaces the first; GetGoal only ever sees one.
func TestSetGoalReplacesActive(t *testing.T) {
	svc, _, _ := newTestGoalService()

	_, err := svc.SetGoal(context.Background(), testUserID, &dto.SetGoalRequest{
		TargetWeight: 70,
		TargetDate:   "2024-12-31",
	})
	require.NoError(t, err)

	second, err := svc.SetGoal(context.Background(), testUserID, &dto.SetGoalRequest{
		TargetWeight: 68,
		TargetDate:   "2025-06-30",
	})
	require.NoError(t, err)

	active, err := svc.GetGoal(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	assert.Equal(t, 68.0, active.TargetWeight)
}

func TestGetGoalWithoutActive(t *testing.T) {
	svc, _, _ := newTestGoalService()

	_, err := svc.GetGoal(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrNoActiveGoal)
}

func TestAddWeightLog(t *testing.T) {
	svc, _, weightRepo := newTestGoalService()

	log, err := svc.AddWeightLog(context.Background(), testUserID, &dto.CreateWeightLogRequest{
		Date:   "2024-04-01",
		Weight: 78.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", log.Date)
	assert.Equal(t, 78.5, log.Weight)

	logs, err := weightRepo.ListAll(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestAddWeightLogDefaultsToToday(t *testing.T) {
	svc, _, _ := newTestGoalService()

	log, err := svc.AddWeightLog(context.Background(), testUserID, &dto.CreateWeightLogRequest{
		Weight: 78.5,
	})
	require.NoError(t, err)
	assert.Equal(t, utils.Today(), log.Date)
}

func TestAddWeightLogRejectsBadDate(t *testing.T) {
	svc, _, _ := newTestGoalService()

	_, err := svc.AddWeightLog(context.Background(), testUserID, &dto.CreateWeightLogRequest{
		Date:   "bad",
		Weight: 78.5,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
