package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridFromRows(t *testing.T, rows ...string) *OccupancyGrid {
	t.Helper()
	h, w := len(rows), len(rows[0])
	values := make([]int, 0, h*w)
	for _, r := range rows {
		require.Len(t, r, w)
		for _, ch := range r {
			if ch == '#' {
				values = append(values, 1)
			} else {
				values = append(values, 0)
			}
		}
	}
	g, err := NewOccupancyGrid(Point{}, h, w, 1, values)
	require.NoError(t, err)
	return g
}

func collectCells(a, b Cell) []Cell {
	var out []Cell
	traverseCells(a, b, func(c Cell) bool {
		out = append(out, c)
		return true
	}, nil)
	return out
}

func TestTraverseCells_Order(t *testing.T) {
	assert.Equal(t, []Cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, collectCells(Cell{0, 0}, Cell{2, 1}))
	assert.Equal(t, []Cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, collectCells(Cell{0, 0}, Cell{0, 3}))
	assert.Equal(t, []Cell{{3, 2}, {2, 2}, {1, 2}}, collectCells(Cell{3, 2}, Cell{1, 2}))
	assert.Equal(t, []Cell{{0, 0}, {1, 1}, {2, 2}}, collectCells(Cell{0, 0}, Cell{2, 2}))
	assert.Equal(t, []Cell{{4, 4}}, collectCells(Cell{4, 4}, Cell{4, 4}))
}

func TestTraverseCells_ReverseVisitsSameCells(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := Cell{Row: rng.Intn(20), Col: rng.Intn(20)}
		b := Cell{Row: rng.Intn(20), Col: rng.Intn(20)}
		fwd := collectCells(a, b)
		rev := collectCells(b, a)
		require.Len(t, rev, len(fwd))
		for j := range fwd {
			assert.Equal(t, fwd[j], rev[len(rev)-1-j], "%v -> %v", a, b)
		}
	}
}

func TestLineOfSight_Blocked(t *testing.T) {
	g := gridFromRows(t,
		"..#..",
		".....",
	)
	assert.False(t, g.LineOfSight(Cell{0, 0}, Cell{0, 4}, CornerStrict))
	assert.True(t, g.LineOfSight(Cell{1, 0}, Cell{1, 4}, CornerStrict))
	assert.False(t, g.LineOfSight(Cell{0, 2}, Cell{0, 2}, CornerStrict), "an obstacle does not see itself")
	assert.True(t, g.LineOfSight(Cell{1, 1}, Cell{1, 1}, CornerStrict))
	assert.False(t, g.LineOfSight(Cell{1, 1}, Cell{1, 5}, CornerStrict), "off-grid target")
}

func TestLineOfSight_CornerPolicies(t *testing.T) {
	one := gridFromRows(t,
		".#",
		"..",
	)
	assert.False(t, one.LineOfSight(Cell{0, 0}, Cell{1, 1}, CornerStrict))
	assert.True(t, one.LineOfSight(Cell{0, 0}, Cell{1, 1}, CornerCut))
	assert.True(t, one.LineOfSight(Cell{0, 0}, Cell{1, 1}, CornerSqueeze))

	both := gridFromRows(t,
		".#",
		"#.",
	)
	assert.False(t, both.LineOfSight(Cell{0, 0}, Cell{1, 1}, CornerStrict))
	assert.False(t, both.LineOfSight(Cell{0, 0}, Cell{1, 1}, CornerCut))
	assert.True(t, both.LineOfSight(Cell{0, 0}, Cell{1, 1}, CornerSqueeze))
	assert.False(t, both.LineOfSight(Cell{1, 0}, Cell{0, 1}, CornerSqueeze), "endpoints are obstacles")
}

func TestLineOfSight_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 12
	values := make([]int, n*n)
	for i := range values {
		if rng.Float64() < 0.25 {
			values[i] = 1
		}
	}
	g, err := NewOccupancyGrid(Point{}, n, n, 1, values)
	require.NoError(t, err)

	for _, policy := range []CornerPolicy{CornerStrict, CornerCut, CornerSqueeze} {
		for a := 0; a < n*n; a++ {
			for b := a; b < n*n; b++ {
				ca, cb := g.cellAt(a), g.cellAt(b)
				require.Equal(t, g.LineOfSight(ca, cb, policy), g.LineOfSight(cb, ca, policy),
					"policy %d %v <-> %v", policy, ca, cb)
			}
		}
	}
}

func TestCanStep(t *testing.T) {
	g := gridFromRows(t,
		".#.",
		"...",
		"...",
	)
	assert.True(t, g.canStep(Cell{1, 1}, 1, 1, CornerStrict))
	assert.False(t, g.canStep(Cell{1, 0}, -1, 1, CornerStrict), "target is an obstacle")
	assert.False(t, g.canStep(Cell{0, 0}, 1, 1, CornerStrict), "side cell (0,1) is an obstacle")
	assert.True(t, g.canStep(Cell{0, 0}, 1, 1, CornerCut))
	assert.False(t, g.canStep(Cell{0, 0}, -1, 0, CornerStrict), "off the grid")
}

func TestTraceCells(t *testing.T) {
	assert.Nil(t, traceCells(nil))
	assert.Equal(t, []Cell{{0, 0}}, traceCells([]Cell{{0, 0}}))
	assert.Equal(t,
		[]Cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}},
		traceCells([]Cell{{0, 0}, {0, 2}, {2, 2}}),
	)
}
