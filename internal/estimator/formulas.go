package estimator

import (
	"fmt"

	"github.com/Knetic/govaluate"
)

// Every binary operation is parenthesized so the evaluation order is the
// same as the written equation, bit for bit.
const (
	mifflinMaleExpr   = "(((10 * weight_kg) + (6.25 * height_cm)) - (5 * age_years)) + 5"
	mifflinFemaleExpr = "(((10 * weight_kg) + (6.25 * height_cm)) - (5 * age_years)) - 161"
	metEnergyExpr     = "(((time_hours * met) * 3.5) * weight_kg) / 200"
)

var (
	mifflinMale   = mustFormula("mifflin_male", mifflinMaleExpr)
	mifflinFemale = mustFormula("mifflin_female", mifflinFemaleExpr)
	metEnergy     = mustFormula("met_energy", metEnergyExpr)
)

type formula struct {
	name string
	expr *govaluate.EvaluableExpression
}

func newFormula(name, src string) (formula, error) {
	expr, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return formula{}, fmt.Errorf("compile %s: %w", name, err)
	}
	return formula{name: name, expr: expr}, nil
}

func mustFormula(name, src string) formula {
	f, err := newFormula(name, src)
	if err != nil {
		panic(err)
	}
	return f
}

// eval runs the expression; all parameters must be float64.
func (f formula) eval(params map[string]interface{}) (float64, error) {
	result, err := f.expr.Evaluate(params)
	if err != nil {
		return 0, fmt.Errorf("evaluate %s: %w", f.name, err)
	}
	v, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("evaluate %s: unexpected result %T", f.name, result)
	}
	return v, nil
}
