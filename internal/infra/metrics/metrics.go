// Package metrics defines the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "serviceability"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics groups every collector the service exports.
type Metrics struct {
	gatherer prometheus.Gatherer

	// HTTP metrics
	RequestDuration *prometheus.HistogramVec
	RequestCount    *prometheus.CounterVec

	// Business metrics
	OnboardingRecords *prometheus.CounterVec
	OnboardingBatches *prometheus.HistogramVec
	Mutations         *prometheus.CounterVec
	Queries           *prometheus.CounterVec
	QueryPincodes     prometheus.Histogram
	Tombstones        prometheus.Counter
	PublishFailures   prometheus.Counter
}

// New registers all collectors on registry.
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		gatherer: registry,

		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		RequestCount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		OnboardingRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "onboarding_records_total",
				Help:      "Onboarding records processed by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		OnboardingBatches: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "onboarding_batch_size",
				Help:      "Number of records per onboarding request",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"source"},
		),
		Mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "merchant_mutations_total",
				Help:      "Merchant mutations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		Queries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Serviceability queries by form",
			},
			[]string{"form"},
		),
		QueryPincodes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_pincodes",
				Help:      "Distinct pincodes per serviceability query",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		Tombstones: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "query_tombstones_total",
				Help:      "Merchants that disappeared between the index read and the store read",
			},
		),
		PublishFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_publish_failures_total",
				Help:      "Onboarding events that could not be published",
			},
		),
	}
}

// Outcome maps an error to an outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}

	return OutcomeSuccess
}

// RegisterDirectoryGauges exports the current directory size, read on every scrape.
func RegisterDirectoryGauges(registry *prometheus.Registry, stats func() (merchants, pincodes int)) {
	factory := promauto.With(registry)

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "merchants",
			Help:      "Merchants currently in the directory",
		},
		func() float64 {
			merchants, _ := stats()

			return float64(merchants)
		},
	)
	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "serviced_pincodes",
			Help:      "Pincodes serviced by at least one merchant",
		},
		func() float64 {
			_, pincodes := stats()

			return float64(pincodes)
		},
	)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}
