package estimator

import (
	"math"

	"calorie-calculator/internal/models"
)

// EstimateCalories computes daily calorie needs with the Mifflin-St Jeor
// equation scaled by the activity multiplier. ok is false when weight,
// combined height, age or multiplier is missing or not positive; no result
// is produced in that case.
func EstimateCalories(in models.CalorieInput) (out models.CalorieOutput, ok bool) {
	heightCm := in.HeightCm()
	if !positive(in.WeightKg) || !positive(heightCm) || !positive(in.AgeYears) || !positive(in.ActivityMultiplier) {
		return models.CalorieOutput{}, false
	}

	bmr, err := BMR(in.Sex, in.WeightKg, heightCm, in.AgeYears)
	if err != nil {
		return models.CalorieOutput{}, false
	}

	daily, ok := roundHalfUp(bmr * in.ActivityMultiplier)
	if !ok {
		return models.CalorieOutput{}, false
	}
	return models.CalorieOutput{
		DailyCalories: daily,
		Protein:       macroFor(macroSplit[0], daily),
		Carbs:         macroFor(macroSplit[1], daily),
		Fat:           macroFor(macroSplit[2], daily),
	}, true
}

// BMR returns the basal metabolic rate. Only male uses the male constant;
// every other value is treated as female.
func BMR(sex models.Sex, weightKg, heightCm, ageYears float64) (float64, error) {
	f := mifflinFemale
	if sex == models.Male {
		f = mifflinMale
	}
	return f.eval(map[string]interface{}{
		"weight_kg": weightKg,
		"height_cm": heightCm,
		"age_years": ageYears,
	})
}

func macroFor(m models.Macro, daily int) models.Macro {
	kcal := float64(daily) * m.Share
	m.Grams, _ = roundHalfUp(kcal / m.KcalPerGram)
	m.Calories, _ = roundHalfUp(kcal)
	return m
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// roundHalfUp rounds .5 toward positive infinity. ok is false when the
// rounded value is NaN or does not fit in an int.
func roundHalfUp(v float64) (int, bool) {
	r := math.Floor(v + 0.5)
	if !fitsInt(r) {
		return 0, false
	}
	return int(r), true
}

func fitsInt(v float64) bool {
	return v >= math.MinInt && v < math.MaxInt
}
