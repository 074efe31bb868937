package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce      sync.Once
	apiRequestsTotal  *prometheus.CounterVec
	apiLatencySeconds *prometheus.HistogramVec
	quizAttemptsTotal *prometheus.CounterVec
	authzDeniedTotal  *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "safezard_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "safezard_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		quizAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "safezard_quiz_attempts_total",
			Help: "Total number of quiz attempts logged.",
		}, []string{"scenario"})

		authzDeniedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "safezard_authz_denied_total",
			Help: "Total number of denied authorization checks.",
		}, []string{"reason", "required_role"})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, quizAttemptsTotal, authzDeniedTotal)
	})
}

// APIRequests exposes the counter for served requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// QuizAttempts exposes the counter for logged quiz attempts.
func QuizAttempts() *prometheus.CounterVec {
	RegisterMetrics()
	return quizAttemptsTotal
}

// AuthzDenied exposes the counter for denied authorization checks.
func AuthzDenied() *prometheus.CounterVec {
	RegisterMetrics()
	return authzDeniedTotal
}
