package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	commandsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "avrctl",
			Subsystem: "eiscp",
			Name:      "commands_sent_total",
			Help:      "Commands framed and written to the receiver.",
		},
		[]string{"device", "code"},
	)
	messagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "avrctl",
			Subsystem: "eiscp",
			Name:      "messages_received_total",
			Help:      "Notifications decoded from the receiver stream.",
		},
		[]string{"device", "code"},
	)
	reconnectAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "avrctl",
			Subsystem: "eiscp",
			Name:      "reconnect_attempts_total",
			Help:      "Driver reconnect attempts after close or connect failure.",
		},
		[]string{"device"},
	)
	connectedState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "avrctl",
			Subsystem: "eiscp",
			Name:      "connected",
			Help:      "Whether the receiver transport is established (1) or not (0).",
		},
		[]string{"device"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "avrctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "avrctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			commandsSent,
			messagesReceived,
			reconnectAttempts,
			connectedState,
			httpRequests,
			httpDuration,
		)
	})
}

func RecordCommand(device, code string) {
	commandsSent.WithLabelValues(device, code).Inc()
}

func RecordMessage(device, code string) {
	messagesReceived.WithLabelValues(device, code).Inc()
}

func RecordReconnectAttempt(device string) {
	reconnectAttempts.WithLabelValues(device).Inc()
}

func SetConnected(device string, connected bool) {
	v := 0.0
	if connected {
		v = 1.0
	}
	connectedState.WithLabelValues(device).Set(v)
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	labels := []string{node, method, path, strconv.Itoa(status)}
	httpRequests.WithLabelValues(labels...).Inc()
	httpDuration.WithLabelValues(labels...).Observe(duration.Seconds())
}
