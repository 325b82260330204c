package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repnowait_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "repnowait_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repnowait_booking_transitions_total",
			Help: "Total number of committed booking transitions",
		},
		[]string{"transition"},
	)

	LedgerAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repnowait_ledger_adjustments_total",
			Help: "Total number of zone counter adjustments",
		},
		[]string{"zone", "direction"},
	)

	LedgerUnmappedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "repnowait_ledger_unmapped_total",
			Help: "Bookings whose equipment has no zone and left the ledger untouched",
		},
	)

	LedgerReconcileCorrections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repnowait_ledger_reconcile_corrections_total",
			Help: "Zones whose stored count was rewritten by a reconcile run",
		},
		[]string{"zone"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repnowait_events_published_total",
			Help: "Booking events handed to the broker",
		},
		[]string{"type", "status"},
	)
)

const (
	TransitionCreated   = "created"
	TransitionCompleted = "completed"
	TransitionCancelled = "cancelled"

	DirectionUp   = "up"
	DirectionDown = "down"
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingTransition(transition string) {
	BookingTransitionsTotal.WithLabelValues(transition).Inc()
}

func RecordLedgerAdjustment(zone string, delta int) {
	direction := DirectionUp
	if delta < 0 {
		direction = DirectionDown
	}

	LedgerAdjustmentsTotal.WithLabelValues(zone, direction).Inc()
}

func RecordLedgerUnmapped() {
	LedgerUnmappedTotal.Inc()
}

func RecordReconcileCorrection(zone string) {
	LedgerReconcileCorrections.WithLabelValues(zone).Inc()
}

func RecordEventPublished(eventType string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}

	EventsPublishedTotal.WithLabelValues(eventType, status).Inc()
}
