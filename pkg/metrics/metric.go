package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric holds the prometheus collectors of the routing engine and its HTTP API.
type Metric struct {
	registry *prometheus.Registry

	SearchesTotal   *prometheus.CounterVec
	SearchDuration  *prometheus.HistogramVec
	SearchPopCount  prometheus.Histogram
	CacheLookups    *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPRequestTime *prometheus.HistogramVec
}

var (
	defaultMetric *Metric
	once          sync.Once
)

// DefaultMetric returns the process wide instance.
func DefaultMetric() *Metric {
	once.Do(func() {
		defaultMetric = NewMetric()
	})
	return defaultMetric
}

func NewMetric() *Metric {
	reg := prometheus.NewRegistry()
	met := &Metric{registry: reg}

	met.SearchesTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "astar_searches_total",
			Help: "Total number of route searches by outcome",
		},
		[]string{"outcome"},
	)
	met.SearchDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "astar_search_duration_seconds",
			Help:    "Route search duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"outcome"},
	)
	met.SearchPopCount = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "astar_search_pop_count",
			Help:    "Number of labels removed from the frontier per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)
	met.CacheLookups = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "astar_result_cache_lookups_total",
			Help: "Result cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)
	met.HTTPRequests = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "astar_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	met.HTTPRequestTime = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "astar_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	return met
}

// ObserveSearch records one finished search.
func (met *Metric) ObserveSearch(outcome string, popCount int, elapsed time.Duration) {
	met.SearchesTotal.WithLabelValues(outcome).Inc()
	met.SearchDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	met.SearchPopCount.Observe(float64(popCount))
}

func (met *Metric) ObserveCacheHit(hit bool) {
	if hit {
		met.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	met.CacheLookups.WithLabelValues("miss").Inc()
}

func (met *Metric) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	met.HTTPRequests.WithLabelValues(method, path, status).Inc()
	met.HTTPRequestTime.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (met *Metric) GetRegistry() *prometheus.Registry {
	return met.registry
}

// Handler exposes the registry in the prometheus text format.
func (met *Metric) Handler() http.Handler {
	return promhttp.HandlerFor(met.registry, promhttp.HandlerOpts{})
}
