package main

import (
	"fmt"
	"math/rand"
)

// SampleEndpoints picks two distinct free cells at least minSeparation cells apart and
// returns their centres. The start is redrawn along with the goal after every
// maxAttempts/4 misses so a start in a small pocket does not exhaust the budget.
func SampleEndpoints(grid *OccupancyGrid, rng *rand.Rand, minSeparation float64, maxAttempts int) (start, goal Point, err error) {
	free := grid.FreeCells()
	if len(free) < 2 {
		return Point{}, Point{}, fmt.Errorf("%w: %d free", ErrNoFreeCells, len(free))
	}
	if maxAttempts <= 0 {
		maxAttempts = 1000
	}
	reseed := maxAttempts/4 + 1

	s := grid.cellAt(free[rng.Intn(len(free))])
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		gl := grid.cellAt(free[rng.Intn(len(free))])
		if gl != s && euclidCells(gl.Row-s.Row, gl.Col-s.Col) >= minSeparation {
			return grid.CellToWorld(s), grid.CellToWorld(gl), nil
		}
		if attempt%reseed == 0 {
			s = grid.cellAt(free[rng.Intn(len(free))])
		}
	}
	return Point{}, Point{}, fmt.Errorf("%w: no pair %.1f cells apart after %d attempts", ErrNoFreeCells, minSeparation, maxAttempts)
}
