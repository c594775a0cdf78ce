package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the planner's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "planner",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	generatorCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "breakdown",
			Name:      "calls_total",
			Help:      "Breakdown generator calls by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	generatorDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "planner",
			Subsystem: "breakdown",
			Name:      "call_duration_seconds",
			Help:      "Duration of breakdown generator calls.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 9), // 250ms to ~1m
		},
		[]string{"provider"},
	)

	draftsProduced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "breakdown",
			Name:      "drafts_total",
			Help:      "Drafts returned by the breakdown generator.",
		},
		[]string{"kind"},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "breakdown",
			Name:      "cache_lookups_total",
			Help:      "Breakdown cache lookups by result (hit, miss, error).",
		},
		[]string{"result"},
	)

	staleEnrichments = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "sweeper",
			Name:      "failed_enrichments_total",
			Help:      "Pending enrichments marked failed by the sweeper.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		generatorCalls,
		generatorDuration,
		draftsProduced,
		cacheLookups,
		staleEnrichments,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency labelled by the matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveGeneration records one generator call.
func ObserveGeneration(provider, outcome string, d time.Duration) {
	generatorCalls.WithLabelValues(provider, outcome).Inc()
	generatorDuration.WithLabelValues(provider).Observe(d.Seconds())
}

func AddDrafts(kind string, n int) {
	draftsProduced.WithLabelValues(kind).Add(float64(n))
}

func CacheLookup(result string) {
	cacheLookups.WithLabelValues(result).Inc()
}

func StaleEnrichmentsFailed(n int64) {
	staleEnrichments.Add(float64(n))
}
