package main

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var planTracer = otel.Tracer("grid-planner")

// PlanRequest describes one planning query over a row-major grid
type PlanRequest struct {
	Origin     [2]float64 `json:"origin"`
	Dims       [2]int     `json:"dims"` // height, width
	Values     []int      `json:"values"`
	Start      [2]float64 `json:"start"`
	Goal       [2]float64 `json:"goal"`
	Resolution float64    `json:"resolution"`
	AnyAngle   bool       `json:"anyAngle"`

	// Zones are burned into a copy of the grid as obstacles before searching
	Zones []orb.Polygon `json:"-"`
}

// PlanResult is the outcome of a plan call. Path holds waypoints in world
// coordinates, Cells the matching grid cells. Dense is only filled when
// requested with WithDensePath.
type PlanResult struct {
	Status   Status
	Strategy Strategy
	Path     []Point
	Cells    []Cell
	Dense    []Cell
	Cost     float64
	Expanded int
	Created  int
	Elapsed  time.Duration
	Err      error
}

// ElapsedMs returns the planning time in milliseconds
func (r PlanResult) ElapsedMs() float64 {
	return float64(r.Elapsed.Microseconds()) / 1000
}

// Pairs returns the path as [x, y] pairs
func (r PlanResult) Pairs() [][2]float64 {
	out := make([][2]float64, len(r.Path))
	for i, p := range r.Path {
		out[i] = p.Pair()
	}
	return out
}

// Feature exports the result as a GeoJSON LineString feature
func (r PlanResult) Feature() *geojson.Feature {
	f := geojson.NewFeature(LineString(r.Path))
	f.Properties["status"] = r.Status.String()
	f.Properties["strategy"] = r.Strategy.String()
	f.Properties["cost"] = r.Cost
	f.Properties["expanded"] = r.Expanded
	f.Properties["elapsedMs"] = r.ElapsedMs()
	if r.Err != nil {
		f.Properties["error"] = r.Err.Error()
	}
	return f
}

// Plan searches for a collision-free path from req.Start to req.Goal. A* is used unless
// req.AnyAngle is set, in which case Theta* returns any-angle waypoints.
// Plan keeps no state between calls and is safe for concurrent use.
func Plan(ctx context.Context, req PlanRequest, opts ...Option) PlanResult {
	started := time.Now()

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize(req.AnyAngle)

	strategy := StrategyAStar
	if req.AnyAngle {
		strategy = StrategyThetaStar
	}

	_, span := planTracer.Start(ctx, "planner.Plan",
		trace.WithAttributes(
			attribute.String("strategy", strategy.String()),
			attribute.Int("height", req.Dims[0]),
			attribute.Int("width", req.Dims[1]),
			attribute.Float64("resolution", req.Resolution),
			attribute.String("metric", o.Metric.String()),
		),
	)
	defer span.End()

	res := search(req, o, strategy)
	res.Strategy = strategy
	res.Elapsed = time.Since(started)
	observePlan(strategy, res)

	span.SetAttributes(
		attribute.String("status", res.Status.String()),
		attribute.Int("expanded", res.Expanded),
		attribute.Int("waypoints", len(res.Path)),
	)
	switch res.Status {
	case StatusOK:
		span.SetStatus(codes.Ok, "path found")
	case StatusNoPath:
		span.AddEvent("no_path")
	default:
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Status.String())
	}
	return res
}

func search(req PlanRequest, o Options, strategy Strategy) PlanResult {
	grid, err := NewOccupancyGrid(pointFromPair(req.Origin), req.Dims[0], req.Dims[1], req.Resolution, req.Values)
	if err != nil {
		return failed(err)
	}
	grid.Threshold = o.ObstacleThreshold
	if len(req.Zones) > 0 {
		grid = grid.WithZones(req.Zones)
	}

	start, err := grid.WorldToCell(pointFromPair(req.Start))
	if err != nil {
		return failed(fmt.Errorf("start: %w", err))
	}
	goal, err := grid.WorldToCell(pointFromPair(req.Goal))
	if err != nil {
		return failed(fmt.Errorf("goal: %w", err))
	}
	if grid.IsObstacle(start) {
		return failed(fmt.Errorf("%w: %v", ErrStartBlocked, start))
	}
	if grid.IsObstacle(goal) {
		return failed(fmt.Errorf("%w: %v", ErrGoalBlocked, goal))
	}

	if start == goal {
		return succeeded(grid, []Cell{start}, 0, o)
	}

	r := newRunner(grid, o, strategy, start, goal)
	r.init()
	found := r.process()
	closed, open := r.pool.counts()

	if !found {
		res := failed(fmt.Errorf("%w: from %v to %v", ErrNoPath, start, goal))
		res.Expanded = r.expanded
		res.Created = closed + open
		return res
	}

	res := succeeded(grid, r.path(), r.goalCost(), o)
	res.Expanded = r.expanded
	res.Created = closed + open
	return res
}

func failed(err error) PlanResult {
	return PlanResult{Status: StatusOf(err), Err: err}
}

func succeeded(grid *OccupancyGrid, cells []Cell, cost float64, o Options) PlanResult {
	path := make([]Point, len(cells))
	for i, c := range cells {
		path[i] = grid.CellToWorld(c)
	}
	res := PlanResult{
		Status: StatusOK,
		Path:   path,
		Cells:  cells,
		Cost:   cost,
	}
	if o.DensePath {
		res.Dense = traceCells(cells)
	}
	return res
}

// Plan2D is the flat entry point: dims is [height, width], values are row-major.
// It returns the status code, the path as [x, y] pairs and the elapsed milliseconds.
func Plan2D(origin [2]float64, dims [2]int, values []int, start, goal [2]float64, resolution float64, useAnyAngle bool) (Status, [][2]float64, float64) {
	res := Plan(context.Background(), PlanRequest{
		Origin:     origin,
		Dims:       dims,
		Values:     values,
		Start:      start,
		Goal:       goal,
		Resolution: resolution,
		AnyAngle:   useAnyAngle,
	})
	return res.Status, res.Pairs(), res.ElapsedMs()
}
