// Package metrics records search statistics with Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vinom_pathfinder"

// SearchRecorder counts and times finished searches. Each recorder owns its
// registry so that several can coexist in one process.
type SearchRecorder struct {
	registry *prometheus.Registry
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	steps    *prometheus.HistogramVec
	visited  *prometheus.HistogramVec
}

var _ i.SearchRecorder = (*SearchRecorder)(nil)

// NewSearchRecorder registers the search metrics on a fresh registry.
func NewSearchRecorder() *SearchRecorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &SearchRecorder{
		registry: reg,
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of finished searches by policy and outcome",
		}, []string{"policy", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"policy"}),
		steps: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_steps",
			Help:      "Number of agent steps per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"policy"}),
		visited: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_visited_cells",
			Help:      "Number of distinct cells expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"policy"}),
	}
}

func (r *SearchRecorder) ObserveSearch(policy, outcome string, steps, visited int, duration time.Duration) {
	r.searches.WithLabelValues(policy, outcome).Inc()
	r.duration.WithLabelValues(policy).Observe(duration.Seconds())
	r.steps.WithLabelValues(policy).Observe(float64(steps))
	r.visited.WithLabelValues(policy).Observe(float64(visited))
}

// Registry exposes the underlying registry, mostly for tests.
func (r *SearchRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorded metrics in the Prometheus exposition format.
func (r *SearchRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
