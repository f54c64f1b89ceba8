// Package forms holds the raw text-field state of the calculator panels.
// Forms are values: every edit returns a new record and never mutates the
// receiver.
package forms

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

var ErrUnknownField = errors.New("unknown field")

func unknownField(form, field string) error {
	return fmt.Errorf("%s form: %w %q", form, ErrUnknownField, field)
}

// parseNumber accepts a single decimal comma followed by one or two
// digits ("70,5"). A thousands-style comma ("1,000") is malformed. Blank
// or malformed text reports ok=false, which callers treat the same as a
// missing field.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), false
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		frac := s[i+1:]
		if strings.Contains(s[:i], ".") || !isDigits(frac) || len(frac) > 2 {
			return math.NaN(), false
		}
		s = s[:i] + "." + frac
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), false
	}
	return v, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseCount parses a whole positive number.
func parseCount(s string) (int, bool) {
	v, ok := parseNumber(s)
	if !ok || v <= 0 || v > math.MaxInt32 || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// applyValues replays every known field present in v onto the form.
func applyValues[F interface {
	With(field, value string) (F, error)
}](f F, fields []string, v url.Values) F {
	for _, name := range fields {
		if !v.Has(name) {
			continue
		}
		if next, err := f.With(name, v.Get(name)); err == nil {
			f = next
		}
	}
	return f
}
