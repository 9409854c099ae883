package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// LoadZones reads obstacle zones from a GeoJSON FeatureCollection file
func LoadZones(filename string) ([]orb.Polygon, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones: %w", err)
	}
	zones, err := ParseZones(data)
	if err != nil {
		return nil, err
	}
	log.Printf("   ✅ Loaded %d zones from %s\n", len(zones), filepath.Base(filename))
	return zones, nil
}

// ParseZones extracts every Polygon and MultiPolygon member of a FeatureCollection.
// Other geometry types are skipped.
func ParseZones(data []byte) ([]orb.Polygon, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse zones: %w", err)
	}
	return ZonesFromCollection(fc), nil
}

// ZonesFromCollection collects the polygons of a decoded FeatureCollection
func ZonesFromCollection(fc *geojson.FeatureCollection) []orb.Polygon {
	var zones []orb.Polygon
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			zones = append(zones, g)
		case orb.MultiPolygon:
			zones = append(zones, g...)
		default:
			if f.Geometry != nil {
				log.Printf("⚠️  Skipping %s geometry in zones\n", f.Geometry.GeoJSONType())
			}
		}
	}
	return zones
}

// SimplifyZones reduces zone vertex counts with Douglas-Peucker; epsilon <= 0 returns zones unchanged
func SimplifyZones(zones []orb.Polygon, epsilon float64) []orb.Polygon {
	if epsilon <= 0 {
		return zones
	}
	dp := simplify.DouglasPeucker(epsilon)
	out := make([]orb.Polygon, 0, len(zones))
	for _, z := range zones {
		s := dp.Simplify(z.Clone())
		if p, ok := s.(orb.Polygon); ok && len(p) > 0 && len(p[0]) >= 4 {
			out = append(out, p)
			continue
		}
		out = append(out, z) // collapsed, keep the input zone
	}
	return out
}

// WithZones returns a copy of the grid where every cell whose centre lies inside a zone
// is an obstacle. Holes in a zone stay untouched.
func (g *OccupancyGrid) WithZones(zones []orb.Polygon) *OccupancyGrid {
	out := g.Clone()
	if len(zones) == 0 {
		return out
	}

	index := NewZoneIndex(zones)
	burn := obstacleValue
	if g.Threshold > burn {
		burn = g.Threshold
	}

	burned := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := Cell{Row: row, Col: col}
			if out.IsObstacle(c) {
				continue
			}
			centre := g.CellToWorld(c).Orb()
			for _, z := range index.Query(orb.Bound{Min: centre, Max: centre}) {
				if planar.PolygonContains(z, centre) {
					out.Values[g.index(c)] = burn
					burned++
					break
				}
			}
		}
	}
	log.Printf("   Burned %d cells from %d zones\n", burned, len(zones))
	return out
}
