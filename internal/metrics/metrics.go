// Package metrics holds the Prometheus collectors of the identifier service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "library_id"

// Metrics groups the service counters.
type Metrics struct {
	Generated       *prometheus.CounterVec
	Validations     *prometheus.CounterVec
	BooksRegistered *prometheus.CounterVec
}

// New registers the collectors with reg. Use prometheus.DefaultRegisterer to
// expose them through promhttp.Handler, or a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Generated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "Identifiers generated, by scheme.",
		}, []string{"scheme"}),
		Validations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Identifier validations, by scheme and result.",
		}, []string{"scheme", "result"}),
		BooksRegistered: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "books_registered_total",
			Help:      "Book records sent to the catalog backend, by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveGenerated adds n identifiers of scheme.
func (m *Metrics) ObserveGenerated(scheme string, n int) {
	m.Generated.WithLabelValues(scheme).Add(float64(n))
}

// ObserveValidation counts one validation.
func (m *Metrics) ObserveValidation(scheme string, valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.Validations.WithLabelValues(scheme, result).Inc()
}

// ObserveBook counts one book registration attempt.
func (m *Metrics) ObserveBook(err error) {
	outcome := "created"
	if err != nil {
		outcome = "failed"
	}
	m.BooksRegistered.WithLabelValues(outcome).Inc()
}
