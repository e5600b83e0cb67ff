package metrics

import (
	"net/http"
	"strconv"
	"time"

	"p2p-offerbook/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all Prometheus metrics of the offer book node.
type Registry struct {
	registry *prometheus.Registry

	// Engine metrics
	FilterRuns      *prometheus.CounterVec
	VisibleOffers   *prometheus.GaugeVec
	Selections      *prometheus.CounterVec
	PriceFeedPushes *prometheus.CounterVec

	// HTTP metrics
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StreamClients   prometheus.Gauge
}

// NewRegistry creates a registry with every offer book metric registered on a
// private prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		FilterRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offerbook_filter_runs_total",
				Help: "Total number of filter predicate re-evaluations by view",
			},
			[]string{"direction"},
		),

		VisibleOffers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "offerbook_visible_offers",
				Help: "Number of offers passing the filter by view",
			},
			[]string{"direction"},
		),

		Selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offerbook_selections_total",
				Help: "Total number of selection changes by view, dimension and kind",
			},
			[]string{"direction", "dimension", "kind"},
		),

		PriceFeedPushes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offerbook_price_feed_pushes_total",
				Help: "Total number of currency codes pushed to the price feed",
			},
			[]string{"direction", "currency"},
		),

		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offerbook_http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "offerbook_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"method", "route"},
		),

		StreamClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "offerbook_stream_clients",
				Help: "Number of connected websocket stream clients",
			},
		),
	}

	r.registry.MustRegister(
		r.FilterRuns,
		r.VisibleOffers,
		r.Selections,
		r.PriceFeedPushes,
		r.Requests,
		r.RequestDuration,
		r.StreamClients,
	)
	return r
}

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// FilterApplied records one filter re-evaluation and the resulting row count.
func (r *Registry) FilterApplied(direction domain.Direction, visible int) {
	r.FilterRuns.WithLabelValues(string(direction)).Inc()
	r.VisibleOffers.WithLabelValues(string(direction)).Set(float64(visible))
}

// SelectionChanged records a currency or payment method selection.
func (r *Registry) SelectionChanged(direction domain.Direction, dimension string, kind domain.SelectionKind) {
	r.Selections.WithLabelValues(string(direction), dimension, kind.String()).Inc()
}

// PriceFeedPushed records a currency code handed to the price feed.
func (r *Registry) PriceFeedPushed(direction domain.Direction, code string) {
	r.PriceFeedPushes.WithLabelValues(string(direction), code).Inc()
}

// StreamOpened and StreamClosed track websocket subscribers.
func (r *Registry) StreamOpened() { r.StreamClients.Inc() }

func (r *Registry) StreamClosed() { r.StreamClients.Dec() }

// Middleware records request count and latency per matched route.
func (r *Registry) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.Requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		r.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
