package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/bookings", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/bookings", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordBookingDecision(t *testing.T) {
	BookingDecisionsTotal.Reset()

	RecordBookingDecision("accepted")
	RecordBookingDecision("accepted")
	RecordBookingDecision("slot_taken")

	accepted := testutil.ToFloat64(BookingDecisionsTotal.WithLabelValues("accepted"))
	taken := testutil.ToFloat64(BookingDecisionsTotal.WithLabelValues("slot_taken"))

	assert.Equal(t, float64(2), accepted)
	assert.Equal(t, float64(1), taken)
}

func TestRecordCancellation(t *testing.T) {
	CancellationsTotal.Reset()

	RecordCancellation("cancelled")
	RecordCancellation("cancelled_late")

	assert.Equal(t, float64(1), testutil.ToFloat64(CancellationsTotal.WithLabelValues("cancelled")))
	assert.Equal(t, float64(1), testutil.ToFloat64(CancellationsTotal.WithLabelValues("cancelled_late")))
}

func TestRecordStrikeAndSuspension(t *testing.T) {
	SuspensionsTotal.Reset()

	before := testutil.ToFloat64(StrikesIssuedTotal)
	RecordStrike()
	assert.Equal(t, before+1, testutil.ToFloat64(StrikesIssuedTotal))

	RecordSuspension("seven_days")
	RecordSuspension("month_end")
	RecordSuspension("month_end")

	assert.Equal(t, float64(1), testutil.ToFloat64(SuspensionsTotal.WithLabelValues("seven_days")))
	assert.Equal(t, float64(2), testutil.ToFloat64(SuspensionsTotal.WithLabelValues("month_end")))
}

func TestRecordCalendarJob(t *testing.T) {
	CalendarSyncJobsTotal.Reset()

	RecordCalendarJob("delete", "queued")
	RecordCalendarJob("delete", "sent")

	assert.Equal(t, float64(1), testutil.ToFloat64(CalendarSyncJobsTotal.WithLabelValues("delete", "queued")))
	assert.Equal(t, float64(1), testutil.ToFloat64(CalendarSyncJobsTotal.WithLabelValues("delete", "sent")))
}
