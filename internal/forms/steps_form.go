package forms

import (
	"net/url"
	"strconv"

	"calorie-calculator/internal/estimator"
	"calorie-calculator/internal/models"
)

const (
	FieldSteps  = "steps"
	FieldHeight = "height"
	FieldPace   = "pace"
)

var StepsFields = []string{FieldSteps, FieldWeight, FieldHeight, FieldPace}

type StepsForm struct {
	Steps  string
	Weight string
	Height string
	Pace   string
}

func NewStepsForm() StepsForm {
	return StepsForm{Pace: strconv.FormatFloat(estimator.DefaultPaceSpeed, 'f', -1, 64)}
}

func StepsFormFromValues(v url.Values) StepsForm {
	return applyValues(NewStepsForm(), StepsFields, v)
}

func (f StepsForm) With(field, value string) (StepsForm, error) {
	switch field {
	case FieldSteps:
		f.Steps = value
	case FieldWeight:
		f.Weight = value
	case FieldHeight:
		f.Height = value
	case FieldPace:
		f.Pace = value
	default:
		return f, unknownField("steps", field)
	}
	return f, nil
}

func (f StepsForm) Values() url.Values {
	v := url.Values{}
	v.Set(FieldSteps, f.Steps)
	v.Set(FieldWeight, f.Weight)
	v.Set(FieldHeight, f.Height)
	v.Set(FieldPace, f.Pace)
	return v
}

// Input parses the raw fields. Steps must be a whole number.
func (f StepsForm) Input() (models.StepsInput, bool) {
	steps, ok := parseCount(f.Steps)
	if !ok {
		return models.StepsInput{}, false
	}
	weight, ok := parseNumber(f.Weight)
	if !ok {
		return models.StepsInput{}, false
	}
	height, ok := parseNumber(f.Height)
	if !ok {
		return models.StepsInput{}, false
	}
	pace, ok := parseNumber(f.Pace)
	if !ok {
		return models.StepsInput{}, false
	}
	return models.StepsInput{
		StepCount: steps,
		WeightKg:  weight,
		HeightM:   height,
		PaceSpeed: pace,
	}, true
}

func (f StepsForm) Estimate() (models.StepsOutput, bool) {
	in, ok := f.Input()
	if !ok {
		return models.StepsOutput{}, false
	}
	return estimator.EstimateSteps(in)
}
