package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reservations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketing_reservations_total",
			Help: "Reservation attempts by event type and result",
		},
		[]string{"event_type", "result"},
	)

	payments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketing_payments_total",
			Help: "Payment attempts by result",
		},
		[]string{"result"},
	)

	cancellations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketing_cancellations_total",
			Help: "Reservation cancellations by result",
		},
		[]string{"result"},
	)

	exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketing_ticket_exports_total",
			Help: "Ticket document exports by result",
		},
		[]string{"result"},
	)

	backendLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ticketing_backend_request_duration_seconds",
			Help:    "Duration of calls to the ticketing backend",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"operation", "status"},
	)
)

// Result labels shared by the counters.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
)

func TrackReservation(eventType, result string) {
	reservations.WithLabelValues(eventType, result).Inc()
}

func TrackPayment(result string) {
	payments.WithLabelValues(result).Inc()
}

func TrackCancellation(result string) {
	cancellations.WithLabelValues(result).Inc()
}

func TrackExport(result string) {
	exports.WithLabelValues(result).Inc()
}

func ObserveBackendCall(operation, status string, duration time.Duration) {
	backendLatency.WithLabelValues(operation, status).Observe(duration.Seconds())
}
