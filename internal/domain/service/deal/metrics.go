package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var dealsCreated = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "deals_created_total",
	Help: "Number of deals registered through the lifecycle API.",
})
