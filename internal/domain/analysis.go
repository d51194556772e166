package domain

// MealAnalysis is the normalized estimate returned by the vision proxy. It is
// always a draft: the client edits and confirms it before the intake write
// path persists anything.
type MealAnalysis struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fats     float64 `json:"fats"`
	Notes    string  `json:"notes"`
}
