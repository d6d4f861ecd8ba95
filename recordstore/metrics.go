package recordstore

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of a store.
type Metrics struct {
	OpsTotal    *prometheus.CounterVec
	OpDuration  *prometheus.HistogramVec
	RecordBytes prometheus.Histogram
}

// NewMetrics creates the store collectors and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		OpsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "formdoc",
				Subsystem: "recordstore",
				Name:      "operations_total",
				Help:      "Total number of record store operations",
			},
			[]string{"op", "result"},
		),
		OpDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "formdoc",
				Subsystem: "recordstore",
				Name:      "operation_duration_seconds",
				Help:      "Record store operation duration in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"op"},
		),
		RecordBytes: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "formdoc",
				Subsystem: "recordstore",
				Name:      "record_bytes",
				Help:      "Size of serialized documents written to the store",
				Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
			},
		),
	}
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	m.OpsTotal.WithLabelValues(op, result).Inc()
	m.OpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
