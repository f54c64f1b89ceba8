package estimator

import (
	"math"

	"calorie-calculator/internal/models"
)

const strideFactor = 0.414

// EstimateSteps converts a step count into walking time and energy burned.
// ok is false for a missing or non-positive field, or a pace speed that is
// not exactly one of Paces.
func EstimateSteps(in models.StepsInput) (out models.StepsOutput, ok bool) {
	if in.StepCount <= 0 || !positive(in.WeightKg) || !positive(in.HeightM) || !positive(in.PaceSpeed) {
		return models.StepsOutput{}, false
	}
	pace, ok := LookupPace(in.PaceSpeed)
	if !ok {
		return models.StepsOutput{}, false
	}

	steps := float64(in.StepCount)
	stride := in.HeightM * strideFactor
	distance := stride * steps
	timeHours := distance / (pace.Speed * 3600)

	calories, err := metEnergy.eval(map[string]interface{}{
		"time_hours": timeHours,
		"met":        pace.MET,
		"weight_kg":  in.WeightKg,
	})
	if err != nil {
		return models.StepsOutput{}, false
	}

	out = models.StepsOutput{
		CaloriesBurned:  calories,
		CaloriesPerStep: calories / steps,
		ElapsedMinutes:  timeHours * 60,
		CaloriesPerHour: calories / timeHours,
	}
	// Minutes and kcal per hour are displayed as whole numbers.
	if !fitsInt(out.ElapsedMinutes) || !fitsInt(out.CaloriesPerHour) || math.IsInf(out.CaloriesBurned, 0) {
		return models.StepsOutput{}, false
	}
	return out, true
}
