package estimator

import "calorie-calculator/internal/models"

type ActivityLevel struct {
	Multiplier float64 `json:"value"`
	Label      string  `json:"label"`
}

var ActivityLevels = []ActivityLevel{
	{Multiplier: 1.2, Label: "Sedentary (little/no exercise)"},
	{Multiplier: 1.4, Label: "Slightly active (1-2 days/week)"},
	{Multiplier: 1.6, Label: "Moderately active (2-3 days/week)"},
	{Multiplier: 1.75, Label: "Very active (4-5 days/week)"},
	{Multiplier: 2.0, Label: "Extra active (6-7 days/week)"},
	{Multiplier: 2.3, Label: "Professional athlete"},
}

// Pace pairs a walking speed with its MET value. Speed is compared by
// exact equality; there is no nearest-pace fallback.
type Pace struct {
	Speed       float64 `json:"speed"`
	MET         float64 `json:"met"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

var Paces = []Pace{
	{Speed: 0.9, MET: 2.8, Label: "Slow", Description: "2 miles/hour (3.2 km/h)"},
	{Speed: 1.34, MET: 3.5, Label: "Average", Description: "3 miles/hour (4.8 km/h)"},
	{Speed: 1.79, MET: 5.0, Label: "Fast", Description: "4 miles/hour (6.4 km/h)"},
}

const DefaultPaceSpeed = 1.34

func LookupPace(speed float64) (Pace, bool) {
	for _, p := range Paces {
		if p.Speed == speed {
			return p, true
		}
	}
	return Pace{}, false
}

func LookupActivity(multiplier float64) (ActivityLevel, bool) {
	for _, a := range ActivityLevels {
		if a.Multiplier == multiplier {
			return a, true
		}
	}
	return ActivityLevel{}, false
}

// Fixed macronutrient split by calorie share.
var macroSplit = []models.Macro{
	{Name: "Protein", Share: 0.225, KcalPerGram: 4},
	{Name: "Carbs", Share: 0.5, KcalPerGram: 4},
	{Name: "Fat", Share: 0.275, KcalPerGram: 9},
}
