// Package metrics exposes Prometheus counters for extractions and decisions.
package metrics

import (
	"net/http"

	"github.com/pario-ai/anggaran/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PatternNone labels extractions where no pattern matched.
const PatternNone = "none"

// Metrics holds the counters for one registry.
//
// Metrics:
//   - anggaran_extractions_total{pattern} - extractions by the pattern that matched
//   - anggaran_decisions_total{tier} - decisions by tier (none, a, b)
type Metrics struct {
	registry *prometheus.Registry

	ExtractionsTotal *prometheus.CounterVec
	DecisionsTotal   *prometheus.CounterVec
}

// New creates Metrics on a private registry, so several servers can
// coexist in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ExtractionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "anggaran_extractions_total",
				Help: "Total budget extractions by matched pattern",
			},
			[]string{"pattern"},
		),
		DecisionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "anggaran_decisions_total",
				Help: "Total checklist decisions by tier",
			},
			[]string{"tier"},
		),
	}
}

// ObserveExtraction counts one extraction. An empty pattern counts as PatternNone.
func (m *Metrics) ObserveExtraction(pattern string) {
	if m == nil {
		return
	}
	if pattern == "" {
		pattern = PatternNone
	}
	m.ExtractionsTotal.WithLabelValues(pattern).Inc()
}

// ObserveDecision counts one decision.
func (m *Metrics) ObserveDecision(d models.Decision) {
	if m == nil {
		return
	}
	m.DecisionsTotal.WithLabelValues(string(d)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
