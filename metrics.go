package treesync

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	stageWalk  = "walk"
	stageApply = "apply"
)

// Metrics records sync activity. A nil *Metrics records nothing.
type Metrics struct {
	operationsTotal *prometheus.CounterVec
	syncDuration    prometheus.Histogram
	syncErrorsTotal *prometheus.CounterVec
	entriesTotal    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treesync_operations_total",
				Help: "Total number of operations applied to destination trees",
			},
			[]string{"kind"},
		),
		syncDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "treesync_sync_duration_seconds",
				Help:    "Time to walk, diff and apply one sync",
				Buckets: prometheus.DefBuckets,
			},
		),
		syncErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treesync_sync_errors_total",
				Help: "Total number of failed syncs by stage",
			},
			[]string{"stage"},
		),
		entriesTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "treesync_source_entries",
				Help: "Number of entries in the last source snapshot",
			},
		),
	}
}

func (m *Metrics) recordOperation(op Operation) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(string(op.Kind)).Inc()
}

func (m *Metrics) recordSync(started time.Time, entries int) {
	if m == nil {
		return
	}
	m.syncDuration.Observe(time.Since(started).Seconds())
	m.entriesTotal.Set(float64(entries))
}

func (m *Metrics) recordError(stage string) {
	if m == nil {
		return
	}
	m.syncErrorsTotal.WithLabelValues(stage).Inc()
}
