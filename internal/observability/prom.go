package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Prom struct {
	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec

	// Backend (upstream API) metrics
	UpstreamTotal    *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec

	// Toasts by kind
	NotificationsTotal *prometheus.CounterVec
}

func NewProm(reg prometheus.Registerer) *Prom {
	p := &Prom{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "techexpo",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "techexpo",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "techexpo",
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method", "route"},
		),
		UpstreamTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "techexpo",
				Subsystem: "backend",
				Name:      "requests_total",
				Help:      "Requests issued to the exhibition backend by method and status.",
			},
			[]string{"method", "status"},
		),
		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "techexpo",
				Subsystem: "backend",
				Name:      "request_duration_seconds",
				Help:      "Backend round-trip latency.",
				Buckets:   []float64{0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.35, 0.5, 1, 2, 5},
			},
			[]string{"method", "status"},
		),
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "techexpo",
				Subsystem: "console",
				Name:      "notifications_total",
				Help:      "Toast notifications emitted by kind.",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(p.RequestsTotal, p.RequestsDuration, p.InFlight, p.UpstreamTotal, p.UpstreamDuration, p.NotificationsTotal)

	return p
}

// RegisterLoaderGauge exposes the global loading indicator as a gauge.
// activeFn is sampled on scrape.
func (p *Prom) RegisterLoaderGauge(reg prometheus.Registerer, activeFn func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "techexpo",
			Subsystem: "console",
			Name:      "loader_active_requests",
			Help:      "Requests currently tracked by the global loading indicator.",
		},
		func() float64 { return float64(activeFn()) },
	))
}

func (p *Prom) GinHandleMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		// route template is only available after routing; best effort:
		route := ctx.FullPath()

		if route == "" {
			route = "unmatched"
		}

		method := ctx.Request.Method
		p.InFlight.WithLabelValues(method, route).Inc()
		defer p.InFlight.WithLabelValues(method, route).Dec()
		ctx.Next()

		status := strconv.Itoa(ctx.Writer.Status())
		secs := time.Since(start).Seconds()

		p.RequestsTotal.WithLabelValues(method, route, status).Inc()
		p.RequestsDuration.WithLabelValues(method, route, status).Observe(secs)
	}
}

// ObserveUpstream records one backend round trip. status is 0 when the
// request never produced a response.
func (p *Prom) ObserveUpstream(method string, status int, elapsed time.Duration) {
	s := strconv.Itoa(status)
	p.UpstreamTotal.WithLabelValues(method, s).Inc()
	p.UpstreamDuration.WithLabelValues(method, s).Observe(elapsed.Seconds())
}

// CountNotification feeds the toast counter; plugged in behind the
// notification hub.
func (p *Prom) CountNotification(kind string) {
	p.NotificationsTotal.WithLabelValues(kind).Inc()
}
