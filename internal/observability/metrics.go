package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	contactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome.",
		},
		[]string{"outcome"},
	)
	visitorsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "visitors",
			Name:      "recorded_total",
			Help:      "Page views recorded by visitor tracking.",
		},
	)
	catalogReloads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "content",
			Name:      "reloads_total",
			Help:      "Successful content catalog reloads.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, contactSubmissions, visitorsRecorded, catalogReloads)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordContact(success bool) {
	RegisterMetrics()
	outcome := "sent"
	if !success {
		outcome = "failed"
	}
	contactSubmissions.WithLabelValues(outcome).Inc()
}

func RecordVisitor() {
	RegisterMetrics()
	visitorsRecorded.Inc()
}

func RecordCatalogReload() {
	RegisterMetrics()
	catalogReloads.Inc()
}
