package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reservation_app",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	reservationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reservation_app",
			Name:      "reservations_created_total",
			Help:      "Reservations successfully created.",
		},
	)

	tablesSeated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reservation_app",
			Name:      "tables_seated_total",
			Help:      "Seat operations committed.",
		},
	)

	tablesCleared = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reservation_app",
			Name:      "tables_cleared_total",
			Help:      "Clear operations committed.",
		},
	)
)

// Register registers all collectors. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, reservationsCreated, tablesSeated, tablesCleared)
	})
}

// IncHTTP counts one request for a route label.
func IncHTTP(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

func IncReservationsCreated() {
	reservationsCreated.Inc()
}

func IncTablesSeated() {
	tablesSeated.Inc()
}

func IncTablesCleared() {
	tablesCleared.Inc()
}
