// Package metrics exposes Prometheus instruments for profile operations.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/profile-site/internal/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Save results.
const (
	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	// reconcileNodes counts nodes touched by reconciliation by kind and action
	reconcileNodes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_reconcile_nodes_total",
		Help: "Nodes inserted, updated or deleted by profile saves",
	}, []string{"kind", "action"})

	// saves counts profile saves by result
	saves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_saves_total",
		Help: "Profile saves by result",
	}, []string{"result"})

	// saveDuration tracks end-to-end save latency
	saveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "profile_save_duration_seconds",
		Help:    "Profile save duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	})

	// activations counts successful active-profile flips
	activations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profile_activations_total",
		Help: "Successful active profile changes",
	})

	// httpRequests counts handled requests by route pattern and status
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})
)

// RecordChanges adds a reconciliation summary to the node counters.
func RecordChanges(ch *profile.Changes) {
	if ch == nil {
		return
	}
	for kind, n := range ch.Inserted {
		reconcileNodes.WithLabelValues(string(kind), "inserted").Add(float64(n))
	}
	for kind, n := range ch.Updated {
		reconcileNodes.WithLabelValues(string(kind), "updated").Add(float64(n))
	}
	for kind, n := range ch.Deleted {
		reconcileNodes.WithLabelValues(string(kind), "deleted").Add(float64(n))
	}
}

// ObserveSave records one save attempt.
func ObserveSave(result string, d time.Duration) {
	saves.WithLabelValues(result).Inc()
	saveDuration.Observe(d.Seconds())
}

// RecordActivation counts one successful activation.
func RecordActivation() {
	activations.Inc()
}

// RecordRequest counts one handled HTTP request.
func RecordRequest(method, route string, status int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
