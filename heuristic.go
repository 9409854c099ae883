package main

import (
	"fmt"
	"math"
	"strings"
)

// Metric selects the distance estimate used as the heuristic
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricOctile
	MetricManhattan
	MetricChebyshev
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "euclidean"
	case MetricOctile:
		return "octile"
	case MetricManhattan:
		return "manhattan"
	case MetricChebyshev:
		return "chebyshev"
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// ParseMetric accepts a metric name, case-insensitively; "diagonal" is an alias for octile
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "euclidean", "euclid":
		return MetricEuclidean, nil
	case "octile", "diagonal":
		return MetricOctile, nil
	case "manhattan":
		return MetricManhattan, nil
	case "chebyshev":
		return MetricChebyshev, nil
	}
	return MetricEuclidean, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// cells returns the metric distance for a displacement of (dr, dc) cells
func (m Metric) cells(dr, dc int) float64 {
	ar, ac := math.Abs(float64(dr)), math.Abs(float64(dc))
	switch m {
	case MetricOctile:
		return math.Max(ar, ac) + (math.Sqrt2-1)*math.Min(ar, ac)
	case MetricManhattan:
		return ar + ac
	case MetricChebyshev:
		return math.Max(ar, ac)
	}
	return euclidCells(dr, dc)
}

// admissible reports whether the metric never overestimates for the given move set
func (m Metric) admissible(anyAngle, diagonal bool) bool {
	switch m {
	case MetricEuclidean:
		return true
	case MetricOctile:
		return !anyAngle
	case MetricChebyshev:
		return true
	case MetricManhattan:
		return !anyAngle && !diagonal
	}
	return false
}

func euclidCells(dr, dc int) float64 {
	return math.Sqrt(float64(dr*dr + dc*dc))
}

// costModel scales cell distances into world units
type costModel struct {
	metric     Metric
	weight     float64
	resolution float64
}

// heuristic estimates the remaining cost from a to the goal
func (cm costModel) heuristic(a, goal Cell) float64 {
	return cm.weight * cm.metric.cells(goal.Row-a.Row, goal.Col-a.Col) * cm.resolution
}

// step is the traversal cost between two cell centres. For grid neighbours this is
// 1 or sqrt(2) times the resolution; for any-angle edges it is the full segment length.
func (cm costModel) step(a, b Cell) float64 {
	return euclidCells(b.Row-a.Row, b.Col-a.Col) * cm.resolution
}
