package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine-level Prometheus metrics. HTTP metrics
// live in the middleware package.
type Metrics struct {
	ReconciliationRuns     prometheus.Counter
	ReconciliationFailures prometheus.Counter
	ReconciliationDuration prometheus.Histogram

	DebtsCreated     prometheus.Counter
	InterestAccruals prometheus.Counter
	WorkoutsLogged   prometheus.Counter
	BonusesAwarded   *prometheus.CounterVec

	NotificationFailures prometheus.Counter
}

// New creates and registers all engine metrics.
func New() *Metrics {
	return &Metrics{
		ReconciliationRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accountability_reconciliation_runs_total",
			Help: "Total number of completed nightly reconciliation runs",
		}),
		ReconciliationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accountability_reconciliation_failures_total",
			Help: "Total number of aborted reconciliation runs",
		}),
		ReconciliationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "accountability_reconciliation_duration_seconds",
			Help:    "Duration of reconciliation runs",
			Buckets: prometheus.DefBuckets,
		}),
		DebtsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accountability_debts_created_total",
			Help: "Total number of debts created",
		}),
		InterestAccruals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accountability_interest_accruals_total",
			Help: "Total number of per-debt interest applications",
		}),
		WorkoutsLogged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accountability_workouts_logged_total",
			Help: "Total number of workout sessions logged",
		}),
		BonusesAwarded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountability_bonuses_awarded_total",
				Help: "Total bonuses awarded by type",
			},
			[]string{"type"},
		),
		NotificationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accountability_notification_failures_total",
			Help: "Total failed webhook deliveries",
		}),
	}
}
