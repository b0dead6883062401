// Package metrics records favicon tracker outcomes with Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bnema/tabicon/internal/application/port"
)

// FaviconMetrics implements port.FaviconMetrics on a private registry.
type FaviconMetrics struct {
	registry   *prometheus.Registry
	candidates *prometheus.CounterVec
}

// NewFaviconMetrics creates the counters and registers them.
func NewFaviconMetrics() *FaviconMetrics {
	candidates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tabicon",
		Name:      "candidates_total",
		Help:      "Favicon candidates offered to tab trackers, by outcome.",
	}, []string{"outcome"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(candidates)

	// Pre-create every series so exports always list all outcomes.
	for _, o := range []port.CandidateOutcome{
		port.CandidateKept,
		port.CandidateRejected,
		port.CandidateIgnored,
		port.CandidateRescaleFailed,
	} {
		candidates.WithLabelValues(string(o))
	}

	return &FaviconMetrics{registry: registry, candidates: candidates}
}

// RecordCandidate increments the counter for outcome.
func (m *FaviconMetrics) RecordCandidate(outcome port.CandidateOutcome) {
	m.candidates.WithLabelValues(string(outcome)).Inc()
}

// Registry exposes the underlying registry.
func (m *FaviconMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the counters in the node-exporter textfile format.
func (m *FaviconMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Counts returns the current value of every outcome counter.
func (m *FaviconMetrics) Counts() (map[port.CandidateOutcome]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	counts := make(map[port.CandidateOutcome]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "outcome" {
					counts[port.CandidateOutcome(label.GetValue())] = metric.GetCounter().GetValue()
				}
			}
		}
	}
	return counts, nil
}
