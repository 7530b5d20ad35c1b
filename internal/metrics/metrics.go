package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry     *prometheus.Registry
	registryOnce sync.Once

	// AnalysesTotal counts completed analyses by engine
	// ("manipulation" or "confidence").
	AnalysesTotal *prometheus.CounterVec

	// FlagsTotal counts emitted flags by category.
	FlagsTotal *prometheus.CounterVec

	// AnalysisDuration tracks per-engine analysis latency.
	AnalysisDuration *prometheus.HistogramVec

	// WrathDeployedTotal counts analyses in which the subject pushed
	// back at least once.
	WrathDeployedTotal prometheus.Counter
)

// Init registers all collectors on a private registry. Safe to call
// more than once; only the first call does work.
func Init() {
	registryOnce.Do(func() {
		registry = prometheus.NewRegistry()

		AnalysesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wrath_analyses_total",
				Help: "Total number of completed analyses by engine",
			},
			[]string{"engine"},
		)

		FlagsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wrath_flags_total",
				Help: "Total number of emitted flags by category",
			},
			[]string{"category"},
		)

		AnalysisDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wrath_analysis_duration_seconds",
				Help:    "Analysis latency by engine",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"engine"},
		)

		WrathDeployedTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wrath_deployed_total",
				Help: "Analyses in which the subject pushed back",
			},
		)

		registry.MustRegister(
			AnalysesTotal,
			FlagsTotal,
			AnalysisDuration,
			WrathDeployedTotal,
		)
	})
}

// Handler serves the private registry in Prometheus exposition format.
func Handler() http.Handler {
	Init()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		Registry:          registry,
	})
}
