package main

// CornerPolicy decides whether a diagonal move, or a segment passing exactly
// through a cell corner, may slip between the two cells sharing that corner
type CornerPolicy int

const (
	// CornerStrict blocks when either side cell is an obstacle
	CornerStrict CornerPolicy = iota
	// CornerCut blocks only when both side cells are obstacles
	CornerCut
	// CornerSqueeze never blocks on side cells
	CornerSqueeze
)

// passes reports whether the corner between side cells a and b can be crossed
func (g *OccupancyGrid) passes(policy CornerPolicy, a, b Cell) bool {
	switch policy {
	case CornerSqueeze:
		return true
	case CornerCut:
		return !(g.IsObstacle(a) && g.IsObstacle(b))
	}
	return !g.IsObstacle(a) && !g.IsObstacle(b)
}

// traverseCells walks every cell crossed by the segment between the centres of a and b,
// in order, starting with a and ending with b. visit returns false to stop early.
// corner is called with the two side cells whenever the segment passes exactly through
// a cell corner; returning false stops the walk. traverseCells reports whether the walk
// reached b.
//
// All arithmetic is on integers: with centres at half-integer offsets the k-th row
// boundary is crossed at t = (2k-1)/(2·dr) and the m-th column boundary at
// t = (2m-1)/(2·dc), so comparing (2k-1)·dc with (2m-1)·dr orders the crossings exactly.
// The set of visited cells depends only on the segment, so the walk is symmetric.
func traverseCells(a, b Cell, visit func(Cell) bool, corner func(Cell, Cell) bool) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	sr, sc := 1, 1
	if dr < 0 {
		sr, dr = -1, -dr
	}
	if dc < 0 {
		sc, dc = -1, -dc
	}

	cur := a
	if !visit(cur) {
		return false
	}
	k, m := 1, 1 // next row and column boundary to cross
	for cur != b {
		switch {
		case dc == 0:
			cur.Row += sr
		case dr == 0:
			cur.Col += sc
		default:
			rowT, colT := (2*k-1)*dc, (2*m-1)*dr
			switch {
			case rowT < colT:
				cur.Row += sr
				k++
			case rowT > colT:
				cur.Col += sc
				m++
			default:
				if corner != nil && !corner(Cell{Row: cur.Row + sr, Col: cur.Col}, Cell{Row: cur.Row, Col: cur.Col + sc}) {
					return false
				}
				cur.Row += sr
				cur.Col += sc
				k++
				m++
			}
		}
		if !visit(cur) {
			return false
		}
	}
	return true
}

// LineOfSight reports whether the straight segment between the centres of a and b
// crosses only free, in-bounds cells. Identical cells see each other when free.
func (g *OccupancyGrid) LineOfSight(a, b Cell, policy CornerPolicy) bool {
	return traverseCells(a, b,
		func(c Cell) bool { return !g.IsObstacle(c) },
		func(s1, s2 Cell) bool { return g.passes(policy, s1, s2) },
	)
}

// canStep reports whether the grid move from c by (dr, dc) is allowed
func (g *OccupancyGrid) canStep(c Cell, dr, dc int, policy CornerPolicy) bool {
	next := Cell{Row: c.Row + dr, Col: c.Col + dc}
	if g.IsObstacle(next) {
		return false
	}
	if dr != 0 && dc != 0 {
		return g.passes(policy, Cell{Row: c.Row + dr, Col: c.Col}, Cell{Row: c.Row, Col: c.Col + dc})
	}
	return true
}

// traceCells expands a waypoint path into the contiguous list of cells it crosses
func traceCells(waypoints []Cell) []Cell {
	if len(waypoints) == 0 {
		return nil
	}
	trace := []Cell{waypoints[0]}
	for i := 1; i < len(waypoints); i++ {
		traverseCells(waypoints[i-1], waypoints[i], func(c Cell) bool {
			if c != trace[len(trace)-1] {
				trace = append(trace, c)
			}
			return true
		}, nil)
	}
	return trace
}
