package apiclient

import "github.com/prometheus/client_golang/prometheus"

var upstreamRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "manyas_upstream_requests_total",
		Help: "Requests sent to the Manyas API, by method and status class.",
	},
	[]string{"method", "status"},
)

// Collectors returns the metrics this package records, for registration
// by the process that serves /metrics.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{upstreamRequests}
}

func observe(method string, code int) {
	upstreamRequests.WithLabelValues(method, statusClass(code)).Inc()
}
