package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studiobook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studiobook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studiobook_booking_decisions_total",
			Help: "Booking requests by decision outcome",
		},
		[]string{"outcome"},
	)

	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studiobook_cancellations_total",
			Help: "Booking cancellations by resulting status",
		},
		[]string{"status"},
	)

	StrikesIssuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "studiobook_strikes_issued_total",
			Help: "Late-cancellation strikes issued",
		},
	)

	SuspensionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studiobook_suspensions_total",
			Help: "Booking suspensions applied, by window",
		},
		[]string{"window"},
	)

	CalendarSyncJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studiobook_calendar_sync_jobs_total",
			Help: "Calendar sync jobs by action and outcome",
		},
		[]string{"action", "status"},
	)

	CalendarQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "studiobook_calendar_queue_length",
			Help: "Current length of the calendar sync queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingDecision(outcome string) {
	BookingDecisionsTotal.WithLabelValues(outcome).Inc()
}

func RecordCancellation(status string) {
	CancellationsTotal.WithLabelValues(status).Inc()
}

func RecordStrike() {
	StrikesIssuedTotal.Inc()
}

func RecordSuspension(window string) {
	SuspensionsTotal.WithLabelValues(window).Inc()
}

func RecordCalendarJob(action, status string) {
	CalendarSyncJobsTotal.WithLabelValues(action, status).Inc()
}
