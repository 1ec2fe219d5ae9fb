package sweep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels of the run counter.
const (
	resultOK      = "ok"
	resultError   = "error"
	resultResumed = "resumed"
)

// Metrics are the sweep's Prometheus collectors.
type Metrics struct {
	points      *prometheus.CounterVec
	runs        *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	entropy     *prometheus.HistogramVec
	checkpoints *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		points: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cliffordsim",
			Subsystem: "sweep",
			Name:      "points_total",
			Help:      "Parameter points completed, by simulator and result.",
		}, []string{"simulator", "result"}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cliffordsim",
			Subsystem: "sweep",
			Name:      "runs_total",
			Help:      "Runs completed, by simulator and result.",
		}, []string{"simulator", "result"}),
		runDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cliffordsim",
			Subsystem: "sweep",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"simulator"}),
		entropy: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cliffordsim",
			Subsystem: "sweep",
			Name:      "entropy",
			Help:      "Sampled Rényi-2 entropies.",
			Buckets:   prometheus.LinearBuckets(0, 2, 16),
		}, []string{"simulator"}),
		checkpoints: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cliffordsim",
			Subsystem: "sweep",
			Name:      "checkpoints_total",
			Help:      "Checkpoint operations, by op (save, hit, miss).",
		}, []string{"op"}),
	}
}
