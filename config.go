package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// SearchConfig is the JSON form of the search options
type SearchConfig struct {
	Metric            string  `json:"metric"`
	HeuristicWeight   float64 `json:"heuristicWeight"`
	TieBreak          string  `json:"tieBreak"` // "gmin" or "gmax"
	AllowDiagonal     *bool   `json:"allowDiagonal,omitempty"`
	CutCorners        bool    `json:"cutCorners"`
	AllowSqueeze      bool    `json:"allowSqueeze"`
	ObstacleThreshold int     `json:"obstacleThreshold,omitempty"`
	DensePath         bool    `json:"densePath"`
}

// DefaultSearchConfig mirrors DefaultOptions
func DefaultSearchConfig() SearchConfig {
	diagonal := true
	return SearchConfig{
		Metric:            MetricEuclidean.String(),
		HeuristicWeight:   1,
		TieBreak:          "gmin",
		AllowDiagonal:     &diagonal,
		ObstacleThreshold: defaultObstacleThreshold,
	}
}

// LoadSearchConfig reads a JSON config file; missing fields keep their defaults
func LoadSearchConfig(filename string) (SearchConfig, error) {
	log.Printf("📂 Loading search config from %s...\n", filename)

	cfg := DefaultSearchConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize repairs inconsistent settings and logs what was changed
func (c *SearchConfig) Normalize() {
	if c.AllowDiagonal == nil {
		diagonal := true
		c.AllowDiagonal = &diagonal
	}
	if c.HeuristicWeight < 1 {
		log.Printf("⚠️  heuristicWeight %v is below 1, using 1\n", c.HeuristicWeight)
		c.HeuristicWeight = 1
	}
	if !*c.AllowDiagonal && c.CutCorners {
		log.Println("⚠️  cutCorners has no effect without allowDiagonal, disabling")
		c.CutCorners = false
	}
	if !c.CutCorners && c.AllowSqueeze {
		log.Println("⚠️  allowSqueeze requires cutCorners, disabling")
		c.AllowSqueeze = false
	}
	if c.TieBreak != "gmin" && c.TieBreak != "gmax" {
		if c.TieBreak != "" {
			log.Printf("⚠️  Unknown tieBreak %q, using gmin\n", c.TieBreak)
		}
		c.TieBreak = "gmin"
	}
	if c.ObstacleThreshold <= 0 {
		c.ObstacleThreshold = defaultObstacleThreshold
	}
}

// Options converts the config into plan options.
// Returns ErrUnknownMetric for an unrecognised metric name.
func (c SearchConfig) Options() ([]Option, error) {
	c.Normalize()

	metric, err := ParseMetric(c.Metric)
	if err != nil {
		return nil, err
	}

	tieBreak := TieBreakGMin
	if c.TieBreak == "gmax" {
		tieBreak = TieBreakGMax
	}

	corners := CornerStrict
	switch {
	case c.AllowSqueeze:
		corners = CornerSqueeze
	case c.CutCorners:
		corners = CornerCut
	}

	opts := []Option{
		WithMetric(metric),
		WithHeuristicWeight(c.HeuristicWeight),
		WithTieBreak(tieBreak),
		WithDiagonal(*c.AllowDiagonal),
		WithCorners(corners),
		WithObstacleThreshold(c.ObstacleThreshold),
	}
	if c.DensePath {
		opts = append(opts, WithDensePath())
	}
	return opts, nil
}
