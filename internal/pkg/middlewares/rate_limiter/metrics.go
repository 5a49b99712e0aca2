package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "local_api_rate_limited_total",
		Help: "Local API requests rejected by the rate limiter",
	},
	[]string{"method", "route"},
)
