// Package metrics exposes Prometheus instrumentation for the HTTP surface and the query engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pgnest/pg-listing-search/internal/domain"
)

// Namespace prefixes every metric name.
const Namespace = "pgsearch"

// Metrics owns the collectors and the registry they are registered with.
// Each instance has its own registry, so tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
	queryResults        *prometheus.HistogramVec
	queryDuration       *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go runtime
// and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path", "status"},
		),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		queryResults: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "query_results",
				Help:      "Number of listings returned per search",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000},
			},
			[]string{"sort_by"},
		),

		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "query_duration_seconds",
				Help:      "Time spent filtering and sorting per search",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"sort_by"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestDuration,
		m.httpRequestsTotal,
		m.queryResults,
		m.queryDuration,
	)

	return m
}

// Registry returns the registry the collectors are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordSearch observes one completed search. It satisfies usecase.SearchRecorder.
func (m *Metrics) RecordSearch(sortBy domain.SortKey, results int, duration time.Duration) {
	label := string(sortBy)
	m.queryResults.WithLabelValues(label).Observe(float64(results))
	m.queryDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// Middleware records HTTP request duration and count.
// Paths are labelled by route pattern (e.g. /api/v1/listings/:id) to keep cardinality bounded.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let Echo's error handler write the response so the status is final
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			path := normalizePath(c.Path())
			method := c.Request().Method

			m.httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()

			return nil
		}
	}
}

// normalizePath maps unmatched routes to a single label value.
func normalizePath(path string) string {
	if path == "" {
		return "unknown"
	}
	return path
}
