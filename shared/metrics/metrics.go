// Package metrics exposes collection counters and timings to prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bestevents"

const (
	OperationAdd    = "add"
	OperationUpdate = "update"
	OperationRemove = "remove"
)

// Metrics is safe to use as a nil pointer, every method is then a no-op.
type Metrics struct {
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	persistDuration *prometheus.HistogramVec
	records         *prometheus.GaugeVec
}

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collection_mutations_total",
			Help:      "Mutations applied to a collection.",
		}, []string{"collection", "operation"}),
		persistFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collection_persist_failures_total",
			Help:      "Collection saves that could not be written to storage.",
		}, []string{"collection"}),
		persistDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collection_persist_duration_seconds",
			Help:      "Time spent writing a whole collection to storage.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection"}),
		records: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_records",
			Help:      "Records currently held by a collection.",
		}, []string{"collection"}),
	}
}

func (m *Metrics) Mutation(collection, operation string) {
	if m == nil {
		return
	}

	m.mutations.WithLabelValues(collection, operation).Inc()
}

func (m *Metrics) Persisted(collection string, started time.Time, err error) {
	if m == nil {
		return
	}

	m.persistDuration.WithLabelValues(collection).Observe(time.Since(started).Seconds())

	if err != nil {
		m.persistFailures.WithLabelValues(collection).Inc()
	}
}

func (m *Metrics) Records(collection string, count int) {
	if m == nil {
		return
	}

	m.records.WithLabelValues(collection).Set(float64(count))
}
