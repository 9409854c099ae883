package main

import (
	"fmt"
	"math"
)

// defaultObstacleThreshold marks any non-zero cell as an obstacle
const defaultObstacleThreshold = 1

// obstacleValue is written into cells burned in by zones
const obstacleValue = 100

// Cell addresses one grid cell by row and column
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// OccupancyGrid is a row-major 2D map of cell values.
// Rows grow along world Y and columns along world X from Origin.
// It is never mutated by a plan call and may be shared read-only.
type OccupancyGrid struct {
	Origin     Point
	Height     int
	Width      int
	Resolution float64
	Values     []int
	Threshold  int // values >= Threshold are obstacles, as are negative values
}

// NewOccupancyGrid validates the geometry and wraps values without copying them.
// Returns ErrBadDimensions, ErrBadResolution or ErrMalformedGrid.
func NewOccupancyGrid(origin Point, height, width int, resolution float64, values []int) (*OccupancyGrid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, height, width)
	}
	if resolution <= 0 || !isFinite(resolution) {
		return nil, fmt.Errorf("%w: got %v", ErrBadResolution, resolution)
	}
	if !isFinite(origin.X) || !isFinite(origin.Y) {
		return nil, fmt.Errorf("%w: origin (%v, %v) is not finite", ErrMalformedGrid, origin.X, origin.Y)
	}
	if height > math.MaxInt32/width {
		return nil, fmt.Errorf("%w: %dx%d cells exceed the addressable maximum", ErrMalformedGrid, height, width)
	}
	if len(values) != height*width {
		return nil, fmt.Errorf("%w: %d values for %dx%d cells", ErrMalformedGrid, len(values), height, width)
	}

	return &OccupancyGrid{
		Origin:     origin,
		Height:     height,
		Width:      width,
		Resolution: resolution,
		Values:     values,
		Threshold:  defaultObstacleThreshold,
	}, nil
}

// InBounds reports whether c lies within the grid
func (g *OccupancyGrid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

func (g *OccupancyGrid) index(c Cell) int {
	return c.Row*g.Width + c.Col
}

func (g *OccupancyGrid) cellAt(idx int) Cell {
	return Cell{Row: idx / g.Width, Col: idx % g.Width}
}

// Value returns the stored value of an in-bounds cell
func (g *OccupancyGrid) Value(c Cell) int {
	return g.Values[g.index(c)]
}

// IsObstacle reports whether c is blocked; cells off the grid count as blocked
func (g *OccupancyGrid) IsObstacle(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked(g.Values[g.index(c)])
}

// blocked treats negative values (unknown) and values at or above the threshold as obstacles
func (g *OccupancyGrid) blocked(v int) bool {
	return v < 0 || v >= g.Threshold
}

// WorldToCell returns the cell enclosing p using floor((p - origin) / resolution)
func (g *OccupancyGrid) WorldToCell(p Point) (Cell, error) {
	fx := math.Floor((p.X - g.Origin.X) / g.Resolution)
	fy := math.Floor((p.Y - g.Origin.Y) / g.Resolution)
	if !isFinite(fx) || !isFinite(fy) ||
		fx < 0 || fy < 0 || fx >= float64(g.Width) || fy >= float64(g.Height) {
		return Cell{}, fmt.Errorf("%w: (%v, %v)", ErrOutOfBounds, p.X, p.Y)
	}
	return Cell{Row: int(fy), Col: int(fx)}, nil
}

// CellToWorld returns the world coordinate of the centre of c
func (g *OccupancyGrid) CellToWorld(c Cell) Point {
	return Point{
		X: g.Origin.X + (float64(c.Col)+0.5)*g.Resolution,
		Y: g.Origin.Y + (float64(c.Row)+0.5)*g.Resolution,
	}
}

// FreeCells returns the row-major indices of every traversable cell
func (g *OccupancyGrid) FreeCells() []int {
	free := make([]int, 0, len(g.Values))
	for i, v := range g.Values {
		if !g.blocked(v) {
			free = append(free, i)
		}
	}
	return free
}

// Clone returns a grid with its own copy of the values
func (g *OccupancyGrid) Clone() *OccupancyGrid {
	c := *g
	c.Values = make([]int, len(g.Values))
	copy(c.Values, g.Values)
	return &c
}
