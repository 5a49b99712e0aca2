package connectivity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MonitorOnline = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "connectivity_online",
		Help: "1 when the remote delivery service is reachable",
	},
)
