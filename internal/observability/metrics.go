// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhaf_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheLookups counts cache-aside reads by key family and result.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhaf_cache_lookups_total",
		Help: "Cache reads by key family and hit or miss",
	}, []string{"family", "result"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nhaf_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// WebSocketConnectionsTotal is the gauge of connected staff dashboards.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nhaf_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// WebSocketBackpressureDrops counts messages dropped due to backpressure by hub and reason.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhaf_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"hub", "reason"})

	// NotificationsCreated counts staff notifications by category.
	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhaf_notifications_created_total",
		Help: "Total staff notifications created by category",
	}, []string{"category"})

	// PaymentEvents counts payment outcomes by gateway and resulting status.
	PaymentEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhaf_payment_events_total",
		Help: "Payment state transitions by gateway and status",
	}, []string{"gateway", "status"})

	// PaymentGatewayLatency records outbound gateway call latency.
	PaymentGatewayLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nhaf_payment_gateway_latency_seconds",
		Help:    "Latency of outbound payment gateway calls",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"gateway", "operation", "outcome"})

	// ChatMessages counts chat transcript writes by sender.
	ChatMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhaf_chat_messages_total",
		Help: "Chat messages stored by sender type",
	}, []string{"sender"})

	// FormSubmissions counts public form submissions.
	FormSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhaf_form_submissions_total",
		Help: "Public form submissions by form",
	}, []string{"form"})

	// MemberIDsAssigned counts generated member identifiers by member type.
	MemberIDsAssigned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhaf_member_ids_assigned_total",
		Help: "Member identifiers generated by member type",
	}, []string{"member_type"})

	PromotionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nhaf_promotion_failures_total",
		Help: "Approved applications that could not be published to the directory",
	}, []string{"kind"})
)

// ObserveQuery records one database statement started at start.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// ObserveGatewayCall records one outbound payment gateway call.
func ObserveGatewayCall(gateway, operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	PaymentGatewayLatency.WithLabelValues(gateway, operation, outcome).Observe(time.Since(start).Seconds())
}
