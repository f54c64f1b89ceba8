package forms

import (
	"net/url"
	"strconv"
	"strings"

	"calorie-calculator/internal/estimator"
	"calorie-calculator/internal/models"
)

const (
	FieldSex           = "sex"
	FieldFeet          = "feet"
	FieldInches        = "inches"
	FieldWeight        = "weight"
	FieldAge           = "age"
	FieldActivityLevel = "activity_level"
)

var CalorieFields = []string{FieldSex, FieldFeet, FieldInches, FieldWeight, FieldAge, FieldActivityLevel}

type CalorieForm struct {
	Sex           string
	Feet          string
	Inches        string
	Weight        string
	Age           string
	ActivityLevel string
}

func NewCalorieForm() CalorieForm {
	return CalorieForm{
		Sex:           string(models.Male),
		ActivityLevel: strconv.FormatFloat(estimator.ActivityLevels[0].Multiplier, 'f', -1, 64),
	}
}

func CalorieFormFromValues(v url.Values) CalorieForm {
	return applyValues(NewCalorieForm(), CalorieFields, v)
}

func (f CalorieForm) With(field, value string) (CalorieForm, error) {
	switch field {
	case FieldSex:
		f.Sex = value
	case FieldFeet:
		f.Feet = value
	case FieldInches:
		f.Inches = value
	case FieldWeight:
		f.Weight = value
	case FieldAge:
		f.Age = value
	case FieldActivityLevel:
		f.ActivityLevel = value
	default:
		return f, unknownField("calorie", field)
	}
	return f, nil
}

func (f CalorieForm) Values() url.Values {
	v := url.Values{}
	v.Set(FieldSex, f.Sex)
	v.Set(FieldFeet, f.Feet)
	v.Set(FieldInches, f.Inches)
	v.Set(FieldWeight, f.Weight)
	v.Set(FieldAge, f.Age)
	v.Set(FieldActivityLevel, f.ActivityLevel)
	return v
}

// Input parses the raw fields. A blank inches field counts as zero; every
// other numeric field is required. Positivity is left to the estimator.
func (f CalorieForm) Input() (models.CalorieInput, bool) {
	sex, ok := parseSex(f.Sex)
	if !ok {
		return models.CalorieInput{}, false
	}
	feet, ok := parseNumber(f.Feet)
	if !ok || feet < 0 {
		return models.CalorieInput{}, false
	}
	inches := 0.0
	if strings.TrimSpace(f.Inches) != "" {
		if inches, ok = parseNumber(f.Inches); !ok || inches < 0 {
			return models.CalorieInput{}, false
		}
	}
	weight, ok := parseNumber(f.Weight)
	if !ok {
		return models.CalorieInput{}, false
	}
	age, ok := parseNumber(f.Age)
	if !ok {
		return models.CalorieInput{}, false
	}
	activity, ok := parseNumber(f.ActivityLevel)
	if !ok {
		return models.CalorieInput{}, false
	}
	return models.CalorieInput{
		Sex:                sex,
		HeightFeet:         feet,
		HeightInches:       inches,
		WeightKg:           weight,
		AgeYears:           age,
		ActivityMultiplier: activity,
	}, true
}

func (f CalorieForm) Estimate() (models.CalorieOutput, bool) {
	in, ok := f.Input()
	if !ok {
		return models.CalorieOutput{}, false
	}
	return estimator.EstimateCalories(in)
}

func parseSex(s string) (models.Sex, bool) {
	switch models.Sex(strings.ToLower(strings.TrimSpace(s))) {
	case models.Male, "":
		return models.Male, true
	case models.Female:
		return models.Female, true
	}
	return "", false
}
