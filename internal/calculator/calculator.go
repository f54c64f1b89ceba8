package calculator

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"calorie-calculator/internal/estimator"
	"calorie-calculator/internal/forms"
	"calorie-calculator/internal/metrics"
	"calorie-calculator/internal/panel"
)

const maxBodyBytes = 1 << 16

// Field accepts a JSON string or number and keeps its raw text, so API
// payloads go through the same parsing as the page forms.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = Field(n.String())
	return nil
}

type CaloriesRequest struct {
	Sex           Field `json:"sex"`
	Feet          Field `json:"feet"`
	Inches        Field `json:"inches"`
	Weight        Field `json:"weight"`
	Age           Field `json:"age"`
	ActivityLevel Field `json:"activity_level"`
}

func (r CaloriesRequest) Form() forms.CalorieForm {
	f := forms.NewCalorieForm()
	if r.Sex != "" {
		f.Sex = string(r.Sex)
	}
	if r.ActivityLevel != "" {
		f.ActivityLevel = string(r.ActivityLevel)
	}
	f.Feet = string(r.Feet)
	f.Inches = string(r.Inches)
	f.Weight = string(r.Weight)
	f.Age = string(r.Age)
	return f
}

type StepsRequest struct {
	Steps  Field `json:"steps"`
	Weight Field `json:"weight"`
	Height Field `json:"height"`
	Pace   Field `json:"pace"`
}

func (r StepsRequest) Form() forms.StepsForm {
	f := forms.NewStepsForm()
	if r.Pace != "" {
		f.Pace = string(r.Pace)
	}
	f.Steps = string(r.Steps)
	f.Weight = string(r.Weight)
	f.Height = string(r.Height)
	return f
}

type OptionsResponse struct {
	ActivityLevels []estimator.ActivityLevel `json:"activity_levels"`
	Paces          []estimator.Pace          `json:"paces"`
}

func CaloriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CaloriesRequest
		if !decode(w, r, &req) {
			return
		}
		start := time.Now()
		out, ok := req.Form().Estimate()
		metrics.ObserveCalculation(panel.CaloriesPanel, ok, time.Since(start))
		if !ok {
			http.Error(w, "insufficient input", http.StatusUnprocessableEntity)
			return
		}
		writeJSON(w, out)
	}
}

func StepsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StepsRequest
		if !decode(w, r, &req) {
			return
		}
		start := time.Now()
		out, ok := req.Form().Estimate()
		metrics.ObserveCalculation(panel.StepsPanel, ok, time.Since(start))
		if !ok {
			http.Error(w, "insufficient input", http.StatusUnprocessableEntity)
			return
		}
		writeJSON(w, out)
	}
}

func OptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, OptionsResponse{
			ActivityLevels: estimator.ActivityLevels,
			Paces:          estimator.Paces,
		})
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("calculator: encode response: %v", err)
	}
}
