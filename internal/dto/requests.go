package dto

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token being exchanged
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest carries the refresh token being revoked
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest starts the reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the reset flow
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// MacrosPayload mirrors the stored macro breakdown; all grams, non-negative
type MacrosPayload struct {
	Carbs   *float64 `json:"carbs" binding:"required,gte=0"`
	Protein *float64 `json:"protein" binding:"required,gte=0"`
	Fats    *float64 `json:"fats" binding:"required,gte=0"`
}

// CreateIntakeRequest represents a meal write. Date defaults to the current
// calendar day when omitted.
type CreateIntakeRequest struct {
	Meal     string        `json:"meal" binding:"required"`
	Calories *float64      `json:"calories" binding:"required,gte=0"`
	Macros   MacrosPayload `json:"macros" binding:"required"`
	Date     string        `json:"date"`
}

// SetGoalRequest represents an active-goal write
type SetGoalRequest struct {
	TargetWeight       float64        `json:"targetWeight" binding:"required,gt=0"`
	TargetDate         string         `json:"targetDate" binding:"required"`
	DailyCalorieTarget *float64       `json:"dailyCalorieTarget" binding:"omitempty,gt=0"`
	MacrosRatio        *MacrosPayload `json:"macrosRatio"`
}

// CreateWeightLogRequest represents a weight measurement write
type CreateWeightLogRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
}

// AnalyzeRequest carries a base64 (or data-URL) encoded meal photo
type AnalyzeRequest struct {
	ImageData string `json:"imageData" binding:"required"`
}
