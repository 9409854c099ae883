package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applied(t *testing.T, cfg SearchConfig) Options {
	t.Helper()
	opts, err := cfg.Options()
	require.NoError(t, err)
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func TestSearchConfig_DefaultsMatchOptions(t *testing.T) {
	assert.Equal(t, DefaultOptions(), applied(t, DefaultSearchConfig()))
}

func TestLoadSearchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"metric": "octile",
		"heuristicWeight": 1.5,
		"tieBreak": "gmax",
		"cutCorners": true,
		"densePath": true
	}`), 0644))

	cfg, err := LoadSearchConfig(path)
	require.NoError(t, err)

	o := applied(t, cfg)
	assert.Equal(t, MetricOctile, o.Metric)
	assert.Equal(t, 1.5, o.HeuristicWeight)
	assert.Equal(t, TieBreakGMax, o.TieBreak)
	assert.True(t, o.Diagonal)
	assert.Equal(t, CornerCut, o.Corners)
	assert.True(t, o.DensePath)
	assert.Equal(t, defaultObstacleThreshold, o.ObstacleThreshold)
}

func TestLoadSearchConfig_Errors(t *testing.T) {
	_, err := LoadSearchConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"metric": `), 0644))
	_, err = LoadSearchConfig(path)
	assert.Error(t, err)
}

func TestSearchConfig_Normalize(t *testing.T) {
	off := false
	cfg := SearchConfig{
		HeuristicWeight: 0.5,
		TieBreak:        "fifo",
		AllowDiagonal:   &off,
		CutCorners:      true,
		AllowSqueeze:    true,
	}
	cfg.Normalize()

	assert.Equal(t, 1.0, cfg.HeuristicWeight)
	assert.Equal(t, "gmin", cfg.TieBreak)
	assert.False(t, cfg.CutCorners)
	assert.False(t, cfg.AllowSqueeze)
	assert.Equal(t, defaultObstacleThreshold, cfg.ObstacleThreshold)

	on := true
	squeeze := SearchConfig{AllowDiagonal: &on, CutCorners: true, AllowSqueeze: true}
	assert.Equal(t, CornerSqueeze, applied(t, squeeze).Corners)

	noCut := SearchConfig{AllowDiagonal: &on, AllowSqueeze: true}
	assert.Equal(t, CornerStrict, applied(t, noCut).Corners)
}

func TestSearchConfig_UnknownMetric(t *testing.T) {
	_, err := SearchConfig{Metric: "hamming"}.Options()
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestSearchConfig_DrivesPlan(t *testing.T) {
	off := false
	opts, err := SearchConfig{Metric: "manhattan", AllowDiagonal: &off}.Options()
	require.NoError(t, err)

	res := Plan(context.Background(), request(make([]int, 16), 4, 4, centre(0, 0), centre(3, 3), false), opts...)
	require.Equal(t, StatusOK, res.Status)
	assert.InDelta(t, 6, res.Cost, eps)
}
