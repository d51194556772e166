package domain

import "time"

// Macros is a macronutrient breakdown in grams.
type Macros struct {
	Carbs   float64 `json:"carbs" db:"carbs"`
	Protein float64 `json:"protein" db:"protein"`
	Fats    float64 `json:"fats" db:"fats"`
}

// Intake is one logged meal. Date is the user-facing calendar day as a
// YYYY-MM-DD string, distinct from CreatedAt. Records are immutable once
// written.
type Intake struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Meal      string    `json:"meal" db:"meal"`
	Calories  float64   `json:"calories" db:"calories"`
	Macros    Macros    `json:"macros"`
	Date      string    `json:"date" db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IntakeStats is the reduction over a filtered intake set.
type IntakeStats struct {
	TotalMeals    int     `json:"totalMeals"`
	TotalCalories float64 `json:"totalCalories"`
}

// DailyMacroTotals is one aggregated calendar day.
type DailyMacroTotals struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"totalCalories"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalFats     float64 `json:"totalFats"`
}

// MonthlyMacroTotals is one aggregated YYYY-MM month.
type MonthlyMacroTotals struct {
	Month         string  `json:"month"`
	TotalCalories float64 `json:"totalCalories"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalFats     float64 `json:"totalFats"`
}

// DailyCalories is one point of the fixed-width 7-day calorie series.
type DailyCalories struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}
