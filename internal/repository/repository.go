package repository

import (
	"github.com/nutriblendai/nutriblend-backend/pkg/database"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User      UserRepository
	Token     TokenRepository
	Intake    IntakeRepository
	Goal      GoalRepository
	WeightLog WeightLogRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Postgres) *Repositories {
	return &Repositories{
		User:      NewUserRepository(db),
		Token:     NewTokenRepository(db),
		Intake:    NewIntakeRepository(db),
		Goal:      NewGoalRepository(db),
		WeightLog: NewWeightLogRepository(db),
	}
}
