package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResourceField = "field"
	ResourcePool  = "pool"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "club_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_bookings_total",
			Help: "Booking attempts by resource and outcome kind",
		},
		[]string{"resource", "outcome"},
	)

	BookingCancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
		[]string{"resource"},
	)

	PurgedBookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_purged_bookings_total",
			Help: "Bookings removed by member purges",
		},
		[]string{"resource"},
	)

	CascadeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_member_cascade_total",
			Help: "Outcome of the booking purge triggered by member deletion",
		},
		[]string{"result"},
	)

	MembershipChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_membership_checks_total",
			Help: "Membership lookups issued by the ledger",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(service, method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(service, method, path).Observe(duration)
}

// RecordBooking counts a booking attempt; outcome is "success" or an error kind.
func RecordBooking(resource, outcome string) {
	BookingsTotal.WithLabelValues(resource, outcome).Inc()
}

func RecordCancellation(resource string) {
	BookingCancellationsTotal.WithLabelValues(resource).Inc()
}

func RecordPurge(resource string, n int64) {
	PurgedBookingsTotal.WithLabelValues(resource).Add(float64(n))
}

func RecordCascade(result string) {
	CascadeTotal.WithLabelValues(result).Inc()
}

func RecordMembershipCheck(result string) {
	MembershipChecksTotal.WithLabelValues(result).Inc()
}
