package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values for DecodeTotal.
const (
	ResultOK         = "ok"
	ResultMalformed  = "malformed"
	ResultTooShort   = "too_short"
	ResultBadRequest = "bad_request"
)

// NewRegistry returns a registry with the Go and process collectors attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// DecodeMetrics are the decoder's own counters.
type DecodeMetrics struct {
	DecodeTotal    *prometheus.CounterVec   // labels: product, result
	DecodeDuration *prometheus.HistogramVec // labels: product
	LogLinesTotal  *prometheus.CounterVec   // labels: outcome=decoded|failed|skipped
	RateLimited    prometheus.Counter
}

// NewDecodeMetrics registers the decoder metrics on reg.
func NewDecodeMetrics(reg prometheus.Registerer) *DecodeMetrics {
	m := &DecodeMetrics{
		DecodeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ewpayload_decode_total",
			Help: "Frame decode attempts by product and result.",
		}, []string{"product", "result"}),
		DecodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ewpayload_decode_duration_seconds",
			Help:    "Time spent decoding a single frame.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"product"}),
		LogLinesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ewpayload_log_lines_total",
			Help: "Log lines seen by batch decoding, by outcome.",
		}, []string{"outcome"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ewpayload_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		}),
	}
	reg.MustRegister(m.DecodeTotal, m.DecodeDuration, m.LogLinesTotal, m.RateLimited)
	return m
}

// ObserveDecode records one decode attempt. A nil receiver is a no-op.
func (m *DecodeMetrics) ObserveDecode(product, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DecodeTotal.WithLabelValues(product, result).Inc()
	m.DecodeDuration.WithLabelValues(product).Observe(elapsed.Seconds())
}

// ObserveBatch records the line outcomes of one batch run.
func (m *DecodeMetrics) ObserveBatch(decoded, failed, skipped int) {
	if m == nil {
		return
	}
	m.LogLinesTotal.WithLabelValues("decoded").Add(float64(decoded))
	m.LogLinesTotal.WithLabelValues("failed").Add(float64(failed))
	m.LogLinesTotal.WithLabelValues("skipped").Add(float64(skipped))
}
