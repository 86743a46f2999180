package metrics

import (
	grpcprometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Registry = prometheus.NewRegistry()

	GRPCClient = grpcprometheus.NewClientMetrics(
		func(c *prometheus.CounterOpts) {
			c.Namespace = "RingSplit"
		},
	)

	PlanningRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "RingSplit",
		Name:      "planning_retries_total",
		Help:      "planning units resubmitted after a failure",
	})

	SplitsProduced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "RingSplit",
		Name:      "splits_produced_total",
		Help:      "splits handed to the batch framework",
	})

	TopologyRanges = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "RingSplit",
		Name:      "topology_ranges",
		Help:      "token ranges reported by the last ring describe",
	})

	PlanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "RingSplit",
		Name:      "plan_duration_seconds",
		Help:      "wall time of a whole planning pass",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	})
)

func init() {
	Registry.MustRegister(
		GRPCClient,
		PlanningRetries,
		SplitsProduced,
		TopologyRanges,
		PlanDuration,
	)
}
