package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleEndpoints(t *testing.T) {
	g, err := NewOccupancyGrid(Point{}, 10, 10, 1, wallGrid())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		start, goal, err := SampleEndpoints(g, rng, 5, 0)
		require.NoError(t, err)

		sc, err := g.WorldToCell(start)
		require.NoError(t, err)
		gc, err := g.WorldToCell(goal)
		require.NoError(t, err)

		assert.False(t, g.IsObstacle(sc))
		assert.False(t, g.IsObstacle(gc))
		assert.GreaterOrEqual(t, euclidCells(gc.Row-sc.Row, gc.Col-sc.Col), 5.0)
		assert.Equal(t, g.CellToWorld(sc), start, "endpoints are cell centres")
	}
}

func TestSampleEndpoints_Deterministic(t *testing.T) {
	g, err := NewOccupancyGrid(Point{}, 10, 10, 1, wallGrid())
	require.NoError(t, err)

	s1, g1, err := SampleEndpoints(g, rand.New(rand.NewSource(9)), 3, 0)
	require.NoError(t, err)
	s2, g2, err := SampleEndpoints(g, rand.New(rand.NewSource(9)), 3, 0)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Equal(t, g1, g2)
}

func TestSampleEndpoints_NotEnoughCells(t *testing.T) {
	g, err := NewOccupancyGrid(Point{}, 1, 3, 1, []int{1, 0, 1})
	require.NoError(t, err)
	_, _, err = SampleEndpoints(g, rand.New(rand.NewSource(1)), 0, 10)
	assert.ErrorIs(t, err, ErrNoFreeCells)

	g, err = NewOccupancyGrid(Point{}, 1, 3, 1, []int{0, 0, 0})
	require.NoError(t, err)
	_, _, err = SampleEndpoints(g, rand.New(rand.NewSource(1)), 10, 20)
	assert.ErrorIs(t, err, ErrNoFreeCells)
	assert.Equal(t, StatusInvalidInput, StatusOf(err))
}
