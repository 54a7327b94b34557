package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/9seconds/geoframe/geolib"
	"github.com/9seconds/geoframe/readers"
)

const metricsNamespace = "geoframe"

type metrics struct {
	registry      *prometheus.Registry
	rows          *prometheus.CounterVec
	batchDuration prometheus.Histogram
	nodeCount     *prometheus.GaugeVec
}

func (m *metrics) ObserveBatch(summary geolib.BatchSummary) {
	m.rows.WithLabelValues("found").Add(float64(summary.Found))
	m.rows.WithLabelValues("not_found").Add(float64(summary.NotFound))
	m.rows.WithLabelValues("malformed").Add(float64(summary.Malformed))
	m.rows.WithLabelValues("lookup_error").Add(float64(summary.LookupError))
	m.batchDuration.Observe(summary.Elapsed.Seconds())
}

func (m *metrics) SetDatabase(meta readers.Metadata) {
	m.nodeCount.WithLabelValues(meta.DatabaseType, meta.Mode).Set(float64(meta.NodeCount))
}

func (m *metrics) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("cannot write metrics to %s: %w", path, err)
	}

	return nil
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		rows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "rows_total",
				Help:      "Number of geolocated rows by outcome",
			},
			[]string{"outcome"},
		),
		batchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "batch_duration_seconds",
				Help:      "Time spent on a single batch",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			},
		),
		nodeCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "database_node_count",
				Help:      "Number of nodes in a search tree of the database",
			},
			[]string{"database_type", "mode"},
		),
	}
}
