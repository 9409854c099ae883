package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// planTotal counts plan calls by strategy and status
	planTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_plan_total",
		Help: "Total plan calls by strategy and status",
	}, []string{"strategy", "status"})

	// planDuration tracks planning latency
	planDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "planner_plan_duration_seconds",
		Help:    "Plan call duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 16), // 50µs to ~1.6s
	}, []string{"strategy"})

	// planExpanded tracks closed nodes per search
	planExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "planner_expanded_nodes",
		Help:    "Nodes expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"strategy"})

	// planWaypoints tracks waypoint counts of successful plans
	planWaypoints = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_path_waypoints",
		Help:    "Waypoints per successful plan",
		Buckets: []float64{1, 2, 3, 5, 10, 20, 50, 100, 500, 1000},
	})
)

func observePlan(strategy Strategy, res PlanResult) {
	planTotal.WithLabelValues(strategy.String(), res.Status.String()).Inc()
	planDuration.WithLabelValues(strategy.String()).Observe(res.Elapsed.Seconds())
	if res.Expanded > 0 {
		planExpanded.WithLabelValues(strategy.String()).Observe(float64(res.Expanded))
	}
	if res.Status == StatusOK {
		planWaypoints.Observe(float64(len(res.Path)))
	}
}
