package metrics

import (
	"net/http"
	"strconv"
	"time"

	"machine_monitoring/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "htm"

// Feed message outcomes.
const (
	FeedAccepted    = "accepted"
	FeedDecodeError = "decode_error"
	FeedMissingID   = "missing_device_id"
	FeedDropped     = "dropped"
)

// Metrics holds the service collectors on a dedicated registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec

	readingsTotal   *prometheus.CounterVec
	temperature     *prometheus.GaugeVec
	consumption     *prometheus.GaugeVec
	hourlyCost      *prometheus.GaugeVec
	componentFails  *prometheus.CounterVec
	feedMessages    *prometheus.CounterVec
	publishFailures *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of HTTP request durations by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		readingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_total",
			Help:      "Generated readings by machine and status.",
		}, []string{"machine", "status"}),
		temperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "temperature_celsius",
			Help:      "Last generated temperature per machine.",
		}, []string{"machine"}),
		consumption: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "electricity_consumption_kwh",
			Help:      "Last generated electricity consumption per machine.",
		}, []string{"machine"}),
		hourlyCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hourly_cost_zar",
			Help:      "Running electricity cost of the current hour bucket per machine.",
		}, []string{"machine"}),
		componentFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "component_failures_total",
			Help:      "Readings whose temperature fell outside the process range.",
		}, []string{"machine", "process"}),
		feedMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_messages_total",
			Help:      "Broker feed messages by outcome.",
		}, []string{"result"}),
		publishFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_failures_total",
			Help:      "Failed reading publications by sink.",
		}, []string{"sink"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.readingsTotal,
		m.temperature,
		m.consumption,
		m.hourlyCost,
		m.componentFails,
		m.feedMessages,
		m.publishFailures,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request count and latency keyed by the matched route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) ObserveReading(r models.Reading) {
	if m == nil {
		return
	}
	m.readingsTotal.WithLabelValues(r.MachineID, r.Status).Inc()
	m.temperature.WithLabelValues(r.MachineID).Set(r.Temperature)
	m.consumption.WithLabelValues(r.MachineID).Set(r.ConsumptionKWh)
	if r.ComponentStatus == models.ComponentFail {
		m.componentFails.WithLabelValues(r.MachineID, r.Process).Inc()
	}
}

func (m *Metrics) SetHourlyTotal(t models.HourlyTotal) {
	if m == nil {
		return
	}
	m.hourlyCost.WithLabelValues(t.MachineID).Set(t.TotalCost)
}

func (m *Metrics) FeedMessage(result string) {
	if m == nil {
		return
	}
	m.feedMessages.WithLabelValues(result).Inc()
}

func (m *Metrics) PublishFailed(sink string) {
	if m == nil {
		return
	}
	m.publishFailures.WithLabelValues(sink).Inc()
}
