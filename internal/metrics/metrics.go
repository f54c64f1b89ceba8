package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeResult   = "result"
	OutcomeNoResult = "no_result"
)

var (
	once sync.Once

	calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calorie_calculator",
			Name:      "calculations_total",
			Help:      "Count of calculations by calculator and outcome.",
		},
		[]string{"calculator", "outcome"},
	)

	calculationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "calorie_calculator",
			Name:      "calculation_duration_seconds",
			Help:      "Time spent parsing and evaluating a calculator form.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
		[]string{"calculator"},
	)

	panelOpened = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calorie_calculator",
			Name:      "panel_opened_total",
			Help:      "Count of landing page renders by open panel.",
		},
		[]string{"panel"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(calculations, calculationDuration, panelOpened)
	})
}

func ObserveCalculation(calculator string, ok bool, elapsed time.Duration) {
	outcome := OutcomeResult
	if !ok {
		outcome = OutcomeNoResult
	}
	calculations.WithLabelValues(calculator, outcome).Inc()
	calculationDuration.WithLabelValues(calculator).Observe(elapsed.Seconds())
}

func IncPanelOpened(panel string) {
	if panel == "" {
		panel = "none"
	}
	panelOpened.WithLabelValues(panel).Inc()
}
