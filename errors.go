package main

import "errors"

// Status is the numeric outcome of a plan call
type Status int

const (
	StatusOK            Status = 0
	StatusNoPath        Status = 1
	StatusInvalidInput  Status = 2
	StatusMalformedGrid Status = 3
)

var (
	// ErrBadDimensions indicates a grid with a non-positive height or width.
	ErrBadDimensions = errors.New("planner: grid dimensions must be positive")
	// ErrBadResolution indicates a non-positive or non-finite resolution.
	ErrBadResolution = errors.New("planner: resolution must be a positive finite number")
	// ErrMalformedGrid indicates the value array does not match the declared dimensions.
	ErrMalformedGrid = errors.New("planner: grid values do not match dimensions")
	// ErrOutOfBounds indicates a world point outside the grid.
	ErrOutOfBounds = errors.New("planner: point lies outside the grid")
	// ErrStartBlocked indicates the start cell is an obstacle.
	ErrStartBlocked = errors.New("planner: start cell is an obstacle")
	// ErrGoalBlocked indicates the goal cell is an obstacle.
	ErrGoalBlocked = errors.New("planner: goal cell is an obstacle")
	// ErrNoPath indicates the frontier was exhausted before the goal was reached.
	ErrNoPath = errors.New("planner: no path between start and goal")
	// ErrNoFreeCells indicates the sampler could not find suitable free cells.
	ErrNoFreeCells = errors.New("planner: not enough free cells to sample endpoints")
	// ErrUnknownMetric indicates an unrecognised heuristic metric name.
	ErrUnknownMetric = errors.New("planner: unknown heuristic metric")
)

// StatusOf maps an error returned by the planner to its status code
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNoPath):
		return StatusNoPath
	case errors.Is(err, ErrBadDimensions), errors.Is(err, ErrBadResolution), errors.Is(err, ErrMalformedGrid):
		return StatusMalformedGrid
	default:
		return StatusInvalidInput
	}
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoPath:
		return "no_path"
	case StatusInvalidInput:
		return "invalid_input"
	case StatusMalformedGrid:
		return "malformed_grid"
	}
	return "unknown"
}
