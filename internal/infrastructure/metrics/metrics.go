// Package metrics exposes Prometheus counters for the ingestion pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	// IngestRuns counts ingestion runs by outcome (ok, not_found, upstream_error, error)
	IngestRuns *prometheus.CounterVec

	// UpstreamErrors counts failed provider calls by provider (fedex, onasset)
	UpstreamErrors *prometheus.CounterVec

	// AlertsEmitted counts temperature alerts by type (below_min, above_max)
	AlertsEmitted *prometheus.CounterVec

	// RowsDeduplicated counts rows skipped by the dedup check, by entity
	// (status_history, sensor_data)
	RowsDeduplicated *prometheus.CounterVec

	// RowsStored counts rows written during ingestion, by entity
	RowsStored *prometheus.CounterVec
}

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		IngestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coldchain",
			Name:      "ingest_runs_total",
			Help:      "Ingestion runs by outcome.",
		}, []string{"outcome"}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coldchain",
			Name:      "upstream_errors_total",
			Help:      "Failed provider calls by provider.",
		}, []string{"provider"}),
		AlertsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coldchain",
			Name:      "temperature_alerts_total",
			Help:      "Temperature alerts recorded by alert type.",
		}, []string{"alert_type"}),
		RowsDeduplicated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coldchain",
			Name:      "rows_deduplicated_total",
			Help:      "Rows skipped because an identical row was already stored.",
		}, []string{"entity"}),
		RowsStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coldchain",
			Name:      "rows_stored_total",
			Help:      "Rows written during ingestion by entity.",
		}, []string{"entity"}),
	}

	registry.MustRegister(
		m.IngestRuns,
		m.UpstreamErrors,
		m.AlertsEmitted,
		m.RowsDeduplicated,
		m.RowsStored,
	)

	return m
}

// Handler returns the HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
