package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsRateLimited отклонённые лимитером запросы, по шаблону маршрута.
var HTTPRequestsRateLimited = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_rate_limited_total",
		Help: "Requests rejected with 429 by the global token bucket",
	},
	[]string{"method", "route"},
)
