package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetric_Cells(t *testing.T) {
	cases := []struct {
		metric Metric
		dr, dc int
		want   float64
	}{
		{MetricEuclidean, 3, 4, 5},
		{MetricEuclidean, -3, -4, 5},
		{MetricOctile, 3, 7, 4 + 3*math.Sqrt2},
		{MetricOctile, -7, 3, 4 + 3*math.Sqrt2},
		{MetricManhattan, 3, -7, 10},
		{MetricChebyshev, -3, 7, 7},
		{MetricEuclidean, 0, 0, 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, tc.metric.cells(tc.dr, tc.dc), 1e-12, "%s (%d,%d)", tc.metric, tc.dr, tc.dc)
	}
}

func TestMetric_Admissible(t *testing.T) {
	assert.True(t, MetricEuclidean.admissible(true, true))
	assert.True(t, MetricOctile.admissible(false, true))
	assert.False(t, MetricOctile.admissible(true, true))
	assert.True(t, MetricManhattan.admissible(false, false))
	assert.False(t, MetricManhattan.admissible(false, true))
	assert.False(t, MetricManhattan.admissible(true, false))
	assert.True(t, MetricChebyshev.admissible(true, true))
}

func TestParseMetric(t *testing.T) {
	for in, want := range map[string]Metric{
		"":          MetricEuclidean,
		"Euclid":    MetricEuclidean,
		"diagonal":  MetricOctile,
		" octile ":  MetricOctile,
		"MANHATTAN": MetricManhattan,
		"chebyshev": MetricChebyshev,
	} {
		got, err := ParseMetric(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMetric("taxicab")
	assert.ErrorIs(t, err, ErrUnknownMetric)
	assert.Equal(t, StatusInvalidInput, StatusOf(err))
}

func TestCostModel(t *testing.T) {
	cm := costModel{metric: MetricEuclidean, weight: 1, resolution: 0.5}
	assert.InDelta(t, 0.5, cm.step(Cell{0, 0}, Cell{0, 1}), 1e-12)
	assert.InDelta(t, 0.5*math.Sqrt2, cm.step(Cell{0, 0}, Cell{1, 1}), 1e-12)
	assert.InDelta(t, 2.5, cm.heuristic(Cell{0, 0}, Cell{3, 4}), 1e-12)

	cm.weight = 2
	assert.InDelta(t, 5, cm.heuristic(Cell{0, 0}, Cell{3, 4}), 1e-12)
	assert.InDelta(t, 2.5, cm.step(Cell{0, 0}, Cell{3, 4}), 1e-12, "weight only scales the heuristic")
}
