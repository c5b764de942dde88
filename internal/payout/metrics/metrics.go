package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the payout pipeline.
type Metrics struct {
	RunsTotal       prometheus.Counter
	RunFailures     prometheus.Counter
	BatchesSent     prometheus.Counter
	BatchesFailed   prometheus.Counter
	RecordFailures  prometheus.Counter
	AmountPaid      prometheus.Counter
	EligibleWorkers prometheus.Gauge
	RunDuration     prometheus.Histogram
}

// New creates and registers all payout metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		RunsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "poolpay_runs_total",
			Help: "Total number of payout pipeline runs started",
		}),
		RunFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "poolpay_run_failures_total",
			Help: "Total number of payout runs aborted before planning",
		}),
		BatchesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "poolpay_batches_sent_total",
			Help: "Total number of transfer batches confirmed by the wallet daemon",
		}),
		BatchesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "poolpay_batches_failed_total",
			Help: "Total number of transfer batches rejected by the wallet daemon",
		}),
		RecordFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "poolpay_record_failures_total",
			Help: "Total number of ledger writes that failed after a confirmed transfer; each one needs manual reconciliation",
		}),
		AmountPaid: promauto.NewCounter(prometheus.CounterOpts{
			Name: "poolpay_amount_paid_total",
			Help: "Total amount settled and recorded, in the smallest currency unit",
		}),
		EligibleWorkers: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "poolpay_eligible_workers",
			Help: "Number of workers above the minimum payment threshold in the last run",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "poolpay_run_duration_seconds",
			Help:    "Duration of one full payout pipeline run",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
