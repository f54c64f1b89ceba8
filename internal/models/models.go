package models

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

type CalorieInput struct {
	Sex                Sex
	HeightFeet         float64
	HeightInches       float64
	WeightKg           float64
	AgeYears           float64
	ActivityMultiplier float64
}

// HeightCm combines feet and inches into centimeters.
func (in CalorieInput) HeightCm() float64 {
	return (in.HeightFeet*12 + in.HeightInches) * 2.54
}

type Macro struct {
	Name        string  `json:"name"`
	Share       float64 `json:"share"`
	KcalPerGram float64 `json:"kcal_per_gram"`
	Grams       int     `json:"grams"`
	Calories    int     `json:"calories"`
}

type CalorieOutput struct {
	DailyCalories int   `json:"daily_calories"`
	Protein       Macro `json:"protein"`
	Carbs         Macro `json:"carbs"`
	Fat           Macro `json:"fat"`
}

// Macros returns the breakdown in display order.
func (out CalorieOutput) Macros() []Macro {
	return []Macro{out.Protein, out.Carbs, out.Fat}
}

type StepsInput struct {
	StepCount int
	WeightKg  float64
	HeightM   float64
	PaceSpeed float64
}

type StepsOutput struct {
	CaloriesBurned  float64 `json:"calories_burned"`
	CaloriesPerStep float64 `json:"calories_per_step"`
	ElapsedMinutes  float64 `json:"elapsed_minutes"`
	CaloriesPerHour float64 `json:"calories_per_hour"`
}
