package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gym_bookings_created_total",
		Help: "Number of bookings confirmed.",
	})
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gym_bookings_cancelled_total",
		Help: "Number of bookings cancelled.",
	})
	BookingsRejectedFull = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gym_bookings_rejected_full_total",
		Help: "Number of booking attempts rejected because the class was full.",
	})
	MembershipsRenewed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gym_memberships_renewed_total",
		Help: "Number of membership renewals.",
	})
)
