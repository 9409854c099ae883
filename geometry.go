package main

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is a position in world coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Orb converts the point to an orb.Point
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// pointFromPair reads an [x, y] pair as used by the plan_2d interface
func pointFromPair(v [2]float64) Point {
	return Point{X: v[0], Y: v[1]}
}

// Pair returns the point as an [x, y] pair
func (p Point) Pair() [2]float64 {
	return [2]float64{p.X, p.Y}
}

// LineString converts a path to an orb.LineString
func LineString(path []Point) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, p := range path {
		ls[i] = p.Orb()
	}
	return ls
}

// PathLength returns the summed segment length of a path in world units
func PathLength(path []Point) float64 {
	if len(path) < 2 {
		return 0
	}
	return planar.Length(LineString(path))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
