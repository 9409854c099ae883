package main

import (
	"log"
	"math"
)

// Options configures a plan call.
//
// Metric            – heuristic metric, euclidean by default.
// HeuristicWeight   – factor applied to the heuristic; values below 1 are raised to 1.
// TieBreak          – which node wins among equal f-values, lower g by default.
// Diagonal          – 8-connected expansion when true, 4-connected otherwise.
// Corners           – how diagonal moves and line-of-sight corner crossings treat side cells.
// ObstacleThreshold – cell values at or above this are obstacles; negative values always are.
// DensePath         – also return the cell-by-cell trace of the path.
type Options struct {
	Metric            Metric
	HeuristicWeight   float64
	TieBreak          TieBreak
	Diagonal          bool
	Corners           CornerPolicy
	ObstacleThreshold int
	DensePath         bool
}

// Option is a functional option for Plan
type Option func(*Options)

// DefaultOptions returns euclidean, unweighted, g-min, 8-connected search with strict
// corners and every non-zero cell treated as an obstacle.
func DefaultOptions() Options {
	return Options{
		Metric:            MetricEuclidean,
		HeuristicWeight:   1,
		TieBreak:          TieBreakGMin,
		Diagonal:          true,
		Corners:           CornerStrict,
		ObstacleThreshold: defaultObstacleThreshold,
	}
}

// WithMetric sets the heuristic metric
func WithMetric(m Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithHeuristicWeight sets the weighted-A* factor
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) { o.HeuristicWeight = w }
}

// WithTieBreak sets the tie-breaking rule among equal f-values
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) { o.TieBreak = tb }
}

// WithDiagonal enables or disables diagonal moves
func WithDiagonal(enabled bool) Option {
	return func(o *Options) { o.Diagonal = enabled }
}

// WithCorners sets the corner policy
func WithCorners(p CornerPolicy) Option {
	return func(o *Options) { o.Corners = p }
}

// WithObstacleThreshold sets the value at which a cell becomes an obstacle
func WithObstacleThreshold(t int) Option {
	return func(o *Options) { o.ObstacleThreshold = t }
}

// WithDensePath requests the cell-by-cell trace alongside the waypoints
func WithDensePath() Option {
	return func(o *Options) { o.DensePath = true }
}

// normalize fixes values the search cannot use and warns about inadmissible heuristics
func (o *Options) normalize(anyAngle bool) {
	if math.IsNaN(o.HeuristicWeight) || o.HeuristicWeight < 1 {
		log.Printf("⚠️  Heuristic weight %v is below 1, using 1\n", o.HeuristicWeight)
		o.HeuristicWeight = 1
	}
	if !o.Diagonal {
		o.Corners = CornerStrict
	}
	if !o.Metric.admissible(anyAngle, o.Diagonal) {
		log.Printf("⚠️  Metric %s is not admissible for this search, paths may be suboptimal\n", o.Metric)
	}
}
