package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vetadmin"

// Collector agrupa las métricas del admin con su propio registry
// (así los tests pueden crear tantos como quieran sin colisiones).
type Collector struct {
	registry *prometheus.Registry

	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	PageRequests     *prometheus.CounterVec
	PageDuration     *prometheus.HistogramVec
}

func New() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Llamadas a la API remota por recurso, operación y resultado",
		}, []string{"resource", "op", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duración de las llamadas a la API remota",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource", "op"}),
		PageRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests servidos por el admin",
		}, []string{"method", "status_code"}),
		PageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de los requests servidos por el admin",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	reg.MustRegister(c.UpstreamRequests, c.UpstreamDuration, c.PageRequests, c.PageDuration)
	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveUpstream registra una llamada a la API remota. nil-safe.
func (c *Collector) ObserveUpstream(resource, op, outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.UpstreamRequests.WithLabelValues(resource, op, outcome).Inc()
	c.UpstreamDuration.WithLabelValues(resource, op).Observe(d.Seconds())
}

// ObservePage registra un request servido. nil-safe.
func (c *Collector) ObservePage(method string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.PageRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.PageDuration.WithLabelValues(method).Observe(d.Seconds())
}
