package server

import (
	"net/http"
	"strconv"

	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	batchItems     *prometheus.CounterVec
	tasksSubmitted *prometheus.CounterVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "instructor_api",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		batchItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "instructor_api",
			Name:      "enrollment_batch_items_total",
			Help:      "Enrollment batch items by action and outcome.",
		}, []string{"action", "outcome"}),
		tasksSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "instructor_api",
			Name:      "tasks_submitted_total",
			Help:      "Background tasks submitted by type.",
		}, []string{"task_type"}),
	}
	m.registry.MustRegister(m.requests, m.batchItems, m.tasksSubmitted)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeRequest(route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) observeBatch(action string, total, failed int) {
	m.batchItems.WithLabelValues(action, "ok").Add(float64(total - failed))
	m.batchItems.WithLabelValues(action, "error").Add(float64(failed))
}

func (m *Metrics) observeTask(taskType config.TaskType) {
	m.tasksSubmitted.WithLabelValues(string(taskType)).Inc()
}
