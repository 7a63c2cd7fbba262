// Package metrics holds the Prometheus collectors of the catering service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catering"

// Metrics groups the collectors registered on one registry. Tests build their
// own with a fresh prometheus.NewRegistry.
type Metrics struct {
	OrdersPlaced       prometheus.Counter
	OrdersCancelled    *prometheus.CounterVec
	StatusTransitions  *prometheus.CounterVec
	SideEffectFailures *prometheus.CounterVec
	RemindersSent      prometheus.Counter
	HTTPRequests       *prometheus.CounterVec
	HTTPLatency        *prometheus.HistogramVec
	BrokerBreakerState *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OrdersPlaced: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders placed by customers.",
		}),
		OrdersCancelled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_cancelled_total",
			Help:      "Orders cancelled, by whether stock was released.",
		}, []string{"stock_released"}),
		StatusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Accepted status transitions, by destination status.",
		}, []string{"to"}),
		SideEffectFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "side_effect_failures_total",
			Help:      "Post-commit notifications and event publications that failed.",
		}, []string{"effect"}),
		RemindersSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "equipment_reminders_sent_total",
			Help:      "Equipment return reminders handed to the notifier.",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BrokerBreakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "broker_breaker_state",
			Help:      "Circuit breaker state per Kafka topic: 0 closed, 1 half-open, 2 open.",
		}, []string{"topic"}),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
