// Package prometheus instruments shopinsight services with Prometheus
// metrics and exposes them over HTTP.
package prometheus

import (
	"net/http"

	"github.com/fwojciec/shopinsight"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shopinsight"

// Metrics holds the collectors shared by the instrumented decorators.
type Metrics struct {
	// Outbound page fetches
	FetchesTotal  *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	FetchedBytes  prometheus.Counter

	// Model completions
	CompletionsTotal   *prometheus.CounterVec
	CompletionDuration prometheus.Histogram

	// End-to-end extractions
	ExtractionsTotal   *prometheus.CounterVec
	ExtractionDuration prometheus.Histogram
	ProductsExtracted  prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetches_total",
			Help:      "Page fetches by outcome (ok, unreachable, error).",
		}, []string{"outcome"}),
		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time to fetch a single page.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		FetchedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetched_bytes_total",
			Help:      "Bytes of HTML fetched.",
		}),
		CompletionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completions_total",
			Help:      "Model completion calls by outcome (ok, error).",
		}, []string{"outcome"}),
		CompletionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "completion_duration_seconds",
			Help:      "Time for a single model completion.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		ExtractionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Brand insight extractions by error code (empty on success).",
		}, []string{"code"}),
		ExtractionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "End-to-end brand insight extraction time.",
			Buckets:   []float64{1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		ProductsExtracted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "products_extracted_total",
			Help:      "Catalog and hero products returned by successful extractions.",
		}),
		gatherer: reg,
	}
}

// Handler returns the HTTP handler serving the registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func fetchOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case shopinsight.ErrorCode(err) == shopinsight.EUNREACHABLE:
		return "unreachable"
	default:
		return "error"
	}
}
