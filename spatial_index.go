package main

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// minExtent keeps degenerate bounds valid as rtreego rectangles
const minExtent = 1e-9

// zoneEntry wraps a zone for R-tree storage
type zoneEntry struct {
	zone orb.Polygon
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (z *zoneEntry) Bounds() rtreego.Rect {
	return z.bbox
}

// ZoneIndex answers which zones may contain a region
type ZoneIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewZoneIndex creates a new spatial index; empty zones are skipped
func NewZoneIndex(zones []orb.Polygon) *ZoneIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	idx := &ZoneIndex{tree: tree}
	for _, z := range zones {
		if len(z) == 0 || len(z[0]) == 0 {
			continue
		}
		bbox, err := boundToRect(z.Bound())
		if err != nil {
			continue
		}
		tree.Insert(&zoneEntry{zone: z, bbox: bbox})
		idx.size++
	}
	return idx
}

// Len returns the number of indexed zones
func (zi *ZoneIndex) Len() int {
	return zi.size
}

// Query returns zones whose bounds intersect b
func (zi *ZoneIndex) Query(b orb.Bound) []orb.Polygon {
	rect, err := boundToRect(b)
	if err != nil {
		return nil
	}

	results := zi.tree.SearchIntersect(rect)
	zones := make([]orb.Polygon, 0, len(results))
	for _, item := range results {
		zones = append(zones, item.(*zoneEntry).zone)
	}
	return zones
}

// boundToRect converts an orb bound, padding zero-length sides
func boundToRect(b orb.Bound) (rtreego.Rect, error) {
	w := b.Max.X() - b.Min.X()
	h := b.Max.Y() - b.Min.Y()
	if w < minExtent {
		w = minExtent
	}
	if h < minExtent {
		h = minExtent
	}
	return rtreego.NewRect(rtreego.Point{b.Min.X(), b.Min.Y()}, []float64{w, h})
}
