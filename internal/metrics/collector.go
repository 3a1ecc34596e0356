// Package metrics exposes Prometheus counters and histograms for the risk
// engines and the HTTP API. Every metric lives on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
)

// Calculation outcomes
const (
	OutcomeOK         = "ok"
	OutcomeValidation = "validation_error"
	OutcomeGreyCell   = "grey_cell"
	OutcomeError      = "error"
)

// DefaultNamespace prefixes every metric name
const DefaultNamespace = "sora"

// Engine calls are table lookups, so the buckets start in the microseconds
var calculationBuckets = []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01}

// Collector owns the registry and every metric the service records
type Collector struct {
	registry *prometheus.Registry

	calculations        *prometheus.CounterVec
	calculationDuration *prometheus.HistogramVec
	greyCells           *prometheus.CounterVec
	sailLevels          *prometheus.CounterVec
	categoryC           *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// NewCollector registers the service metrics under namespace on a new
// registry. An empty namespace uses DefaultNamespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Risk calculations by engine, SORA version and outcome.",
		}, []string{"engine", "version", "outcome"}),
		calculationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Time spent inside an engine call.",
			Buckets:   calculationBuckets,
		}, []string{"engine", "version"}),
		greyCells: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grey_cells_total",
			Help:      "Requests that landed on an undefined table cell.",
		}, []string{"version"}),
		sailLevels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sail_levels_total",
			Help:      "SAIL levels assigned, by SORA version.",
		}, []string{"version", "sail"}),
		categoryC: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_c_total",
			Help:      "Operations classified outside the SAIL framework.",
		}, []string{"version"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	c.registry.MustRegister(
		c.calculations,
		c.calculationDuration,
		c.greyCells,
		c.sailLevels,
		c.categoryC,
		c.httpRequests,
		c.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// ObserveCalculation records one engine call
func (c *Collector) ObserveCalculation(engine string, version sora.Version, outcome string, elapsed time.Duration) {
	v := string(version)
	c.calculations.WithLabelValues(engine, v, outcome).Inc()
	c.calculationDuration.WithLabelValues(engine, v).Observe(elapsed.Seconds())
	if outcome == OutcomeGreyCell {
		c.greyCells.WithLabelValues(v).Inc()
	}
}

// ObserveSAIL records the level or category a SAIL calculation produced
func (c *Collector) ObserveSAIL(result sora.SAILResult) {
	v := string(result.Version)
	if result.IsCategoryC() {
		c.categoryC.WithLabelValues(v).Inc()
		return
	}
	c.sailLevels.WithLabelValues(v, result.Level().String()).Inc()
}

// ObserveHTTPRequest records one served request. route is the route pattern,
// never the raw path, to keep label cardinality fixed.
func (c *Collector) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry returns the private registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
