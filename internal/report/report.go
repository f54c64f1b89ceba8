// Package report renders calculator results as plain text for the CLI and
// the interactive shell.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"calorie-calculator/internal/models"
)

// Round rounds half up, the way the page displays whole numbers.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Fixed formats v with a fixed number of decimals.
func Fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func Calories(w io.Writer, out models.CalorieOutput) error {
	if _, err := fmt.Fprintf(w, "Your Daily Calorie Needs: %d kcal\n", out.DailyCalories); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Recommended Macronutrient Distribution"); err != nil {
		return err
	}
	for _, m := range out.Macros() {
		if _, err := fmt.Fprintf(w, "  %s: %d g (%d kcal)\n", m.Name, m.Grams, m.Calories); err != nil {
			return err
		}
	}
	return nil
}

func Steps(w io.Writer, steps int, out models.StepsOutput) error {
	_, err := fmt.Fprintf(w,
		"Calories burned: %s kcal\nCalories per step: %s kcal\n"+
			"Taking %d steps at this pace takes about %d minutes, which means you're burning around %d kcal per hour.\n",
		Fixed(out.CaloriesBurned, 2), Fixed(out.CaloriesPerStep, 5),
		steps, Round(out.ElapsedMinutes), Round(out.CaloriesPerHour))
	return err
}

func NoResult(w io.Writer) error {
	_, err := fmt.Fprintln(w, "no result")
	return err
}
