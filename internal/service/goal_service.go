package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/internal/dto"
	"github.com/nutriblendai/nutriblend-backend/internal/repository"
	"github.com/nutriblendai/nutriblend-backend/internal/utils"
)

const defaultDailyCalorieTarget = 2000

// defaultMacrosRatio is the 40/30/30 carbs/protein/fats percentage split
var defaultMacrosRatio = domain.Macros{Carbs: 40, Protein: 30, Fats: 30}

// goalService implements GoalService interface
type goalService struct {
	goalRepo   repository.GoalRepository
	weightRepo repository.WeightLogRepository
}

// NewGoalService creates a new goal service
func NewGoalService(goalRepo repository.GoalRepository, weightRepo repository.WeightLogRepository) GoalService {
	return &goalService{goalRepo: goalRepo, weightRepo: weightRepo}
}

// SetGoal makes the new goal the user's single active goal
func (s *goalService) SetGoal(ctx context.Context, userID string, req *dto.SetGoalRequest) (*domain.Goal, error) {
	targetDate, err := utils.ParseDate(req.TargetDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	goal := &domain.Goal{
		UserID:             userID,
		TargetWeight:       req.TargetWeight,
		TargetDate:         targetDate,
		DailyCalorieTarget: defaultDailyCalorieTarget,
		MacrosRatio:        defaultMacrosRatio,
	}
	if req.DailyCalorieTarget != nil {
		goal.DailyCalorieTarget = *req.DailyCalorieTarget
	}
	if req.MacrosRatio != nil {
		goal.MacrosRatio = domain.Macros{
			Carbs:   *req.MacrosRatio.Carbs,
			Protein: *req.MacrosRatio.Protein,
			Fats:    *req.MacrosRatio.Fats,
		}
	}

	if err := s.goalRepo.SetActive(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to set goal: %w", err)
	}

	return goal, nil
}

// GetGoal returns the user's active goal
func (s *goalService) GetGoal(ctx context.Context, userID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveGoal
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// AddWeightLog records a weight measurement for trend projection
func (s *goalService) AddWeightLog(ctx context.Context, userID string, req *dto.CreateWeightLogRequest) (*domain.WeightLog, error) {
	date := req.Date
	if date == "" {
		date = utils.Today()
	} else if !utils.ValidateDate(date) {
		return nil, ErrInvalidDate
	}

	log := &domain.WeightLog{
		UserID: userID,
		Date:   date,
		Weight: req.Weight,
	}

	if err := s.weightRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save weight log: %w", err)
	}

	return log, nil
}
