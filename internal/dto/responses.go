package dto

import "github.com/nutriblendai/nutriblend-backend/internal/domain"

// UserInfo represents user information in auth responses
type UserInfo struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Message      string   `json:"message"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresIn    int      `json:"expiresIn"`
	User         UserInfo `json:"user"`
}

// RefreshResponse carries the rotated token pair
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

// UserResponse represents a user profile response
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ForgotPasswordResponse is deliberately identical whether or not the email
// exists; the reset token is only populated when one was issued.
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

// IntakeResponse wraps a created intake record
type IntakeResponse struct {
	Message string         `json:"message"`
	Data    *domain.Intake `json:"data"`
}

// GoalResponse wraps a saved goal
type GoalResponse struct {
	Message string       `json:"message"`
	Goal    *domain.Goal `json:"goal"`
}

// WeightLogResponse wraps a created weight log
type WeightLogResponse struct {
	Message   string            `json:"message"`
	WeightLog *domain.WeightLog `json:"weightLog"`
}

// GoalProgressResponse is the projection over the active goal and the weight
// trend. PredictedDaysToGoal is null whenever the trend does not move toward
// the target.
type GoalProgressResponse struct {
	Goal                *domain.Goal      `json:"goal"`
	Progress            string            `json:"progress,omitempty"`
	FirstLog            *domain.WeightLog `json:"firstLog,omitempty"`
	LastLog             *domain.WeightLog `json:"lastLog,omitempty"`
	DailyChange         *float64          `json:"dailyChange,omitempty"`
	PredictedDaysToGoal *int              `json:"predictedDaysToGoal"`
}

// AnalysisResponse wraps a vision draft
type AnalysisResponse struct {
	Analysis *domain.MealAnalysis `json:"analysis"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
