// Package metrics provides listing load metrics for observability
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ListingMetrics contains Prometheus metrics for listing loads
type ListingMetrics struct {
	loadsTotal   *prometheus.CounterVec
	loadDuration prometheus.Histogram
	lastItems    prometheus.Gauge
}

// NewListingMetrics creates and registers listing metrics
func NewListingMetrics(registry prometheus.Registerer) (*ListingMetrics, error) {
	m := &ListingMetrics{
		loadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listing_loads_total",
				Help: "Total number of listing loads from the marketplace backend",
			},
			[]string{"status"}, // status: success, error
		),
		loadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "listing_load_duration_seconds",
				Help: "Time taken to load the listing",
				// 50ms .. ~25s
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
		),
		lastItems: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "listing_last_items",
				Help: "Number of records in the last successful listing load",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.loadsTotal, m.loadDuration, m.lastItems} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveLoad records one load outcome.
func (m *ListingMetrics) ObserveLoad(status string, elapsed time.Duration, count int) {
	m.loadsTotal.WithLabelValues(status).Inc()
	m.loadDuration.Observe(elapsed.Seconds())
	if status == "success" {
		m.lastItems.Set(float64(count))
	}
}
