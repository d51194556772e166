package service

import (
	"context"
	"fmt"

	"github.com/nutriblendai/nutriblend-backend/internal/domain"
	"github.com/nutriblendai/nutriblend-backend/internal/dto"
	"github.com/nutriblendai/nutriblend-backend/internal/repository"
	"github.com/nutriblendai/nutriblend-backend/internal/utils"
)

// intakeService implements IntakeService interface
type intakeService struct {
	intakeRepo repository.IntakeRepository
}

// NewIntakeService creates a new intake service
func NewIntakeService(intakeRepo repository.IntakeRepository) IntakeService {
	return &intakeService{intakeRepo: intakeRepo}
}

// Add persists a meal record. The date defaults to the current calendar day;
// the record is immutable once created.
func (s *intakeService) Add(ctx context.Context, userID string, req *dto.CreateIntakeRequest) (*domain.Intake, error) {
	date := req.Date
	if date == "" {
		date = utils.Today()
	} else if !utils.ValidateDate(date) {
		return nil, ErrInvalidDate
	}

	intake := &domain.Intake{
		UserID:   userID,
		Meal:     req.Meal,
		Calories: *req.Calories,
		Macros: domain.Macros{
			Carbs:   *req.Macros.Carbs,
			Protein: *req.Macros.Protein,
			Fats:    *req.Macros.Fats,
		},
		Date: date,
	}

	if err := s.intakeRepo.Create(ctx, intake); err != nil {
		return nil, fmt.Errorf("failed to save intake: %w", err)
	}

	return intake, nil
}

// List returns the user's intakes newest-first, optionally for one date
func (s *intakeService) List(ctx context.Context, userID string, date *string) ([]*domain.Intake, error) {
	if date != nil && !utils.ValidateDate(*date) {
		return nil, ErrInvalidDate
	}
	return s.intakeRepo.List(ctx, userID, date)
}

// Stats reduces the filtered intake set to a meal count and calorie sum
func (s *intakeService) Stats(ctx context.Context, userID string, date *string) (*domain.IntakeStats, error) {
	if date != nil && !utils.ValidateDate(*date) {
		return nil, ErrInvalidDate
	}
	return s.intakeRepo.Stats(ctx, userID, date)
}
