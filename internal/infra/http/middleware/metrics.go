package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	installersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "installers_registered_total",
			Help: "Total number of installer applications received",
		},
	)

	installersReviewed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "installers_reviewed_total",
			Help: "Total number of installer applications reviewed",
		},
		[]string{"decision"},
	)

	leadsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of leads created",
		},
	)

	proposalsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proposals_submitted_total",
			Help: "Total number of proposals submitted",
		},
	)

	leadDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_decisions_total",
			Help: "Total number of lead decisions",
		},
		[]string{"decision"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordInstallerRegistered() {
	installersRegistered.Inc()
}

func RecordInstallerReview(decision string) {
	installersReviewed.WithLabelValues(decision).Inc()
}

func RecordLeadCreated() {
	leadsCreated.Inc()
}

func RecordProposalSubmitted() {
	proposalsSubmitted.Inc()
}

func RecordLeadDecision(decision string) {
	leadDecisions.WithLabelValues(decision).Inc()
}
