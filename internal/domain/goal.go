package domain

import "time"

// Goal is a weight target. Exactly one goal per user carries IsActive; setting
// a new goal deactivates the previous one in the same transaction.
type Goal struct {
	ID                 string    `json:"id" db:"id"`
	UserID             string    `json:"user_id" db:"user_id"`
	TargetWeight       float64   `json:"targetWeight" db:"target_weight"`
	TargetDate         time.Time `json:"targetDate" db:"target_date"`
	DailyCalorieTarget float64   `json:"dailyCalorieTarget" db:"daily_calorie_target"`
	MacrosRatio        Macros    `json:"macrosRatio"`
	IsActive           bool      `json:"-" db:"is_active"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// WeightLog is one weight measurement on a calendar day, used only for trend
// projection.
type WeightLog struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Date      string    `json:"date" db:"date"`
	Weight    float64   `json:"weight" db:"weight"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
