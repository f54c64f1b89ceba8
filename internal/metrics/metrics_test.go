package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCalculation(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(calculations.WithLabelValues("steps", OutcomeNoResult))
	ObserveCalculation("steps", false, time.Millisecond)
	after := testutil.ToFloat64(calculations.WithLabelValues("steps", OutcomeNoResult))
	if after != before+1 {
		t.Fatalf("expected no_result counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestIncPanelOpened(t *testing.T) {
	before := testutil.ToFloat64(panelOpened.WithLabelValues("none"))
	IncPanelOpened("")
	if got := testutil.ToFloat64(panelOpened.WithLabelValues("none")); got != before+1 {
		t.Fatalf("expected none counter %v, got %v", before+1, got)
	}
}
