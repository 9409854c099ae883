package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	addr string

	mapPath       string
	imageLevel    int
	darkObstacles bool
	originFlag    string
	resolution    float64
	startFlag     string
	goalFlag      string
	anyAngle      bool
	compare       bool
	sample        bool
	seed          int64
	minSeparation float64
	zonesPath     string
	simplifyEps   float64
	configPath    string
	metricFlag    string
	outPath       string
	show          bool
)

var rootCmd = &cobra.Command{
	Use:   "grid-planner",
	Short: "A* and Theta* path planning on 2D occupancy grids",
	Long:  `Plans collision-free paths over occupancy grids, either grid-constrained (A*) or any-angle (Theta*), from the command line or over HTTP.`,

	// main prints the error once
	SilenceErrors: true,
	SilenceUsage:  true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the planning HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(addr)
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a path over an image map",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd)
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on.")

	f := planCmd.Flags()
	f.StringVar(&mapPath, "map", "", "PNG or JPEG map, one cell per pixel.")
	f.IntVar(&imageLevel, "level", defaultImageLevel, "Gray level above which a pixel is occupied.")
	f.BoolVar(&darkObstacles, "dark", false, "Treat pixels at or below --level as occupied instead.")
	f.StringVar(&originFlag, "origin", "0,0", "World coordinate x,y of the grid origin.")
	f.Float64Var(&resolution, "resolution", 1.0, "Cell size in world units.")
	f.StringVar(&startFlag, "start", "", "Start point x,y in world coordinates.")
	f.StringVar(&goalFlag, "goal", "", "Goal point x,y in world coordinates.")
	f.BoolVar(&anyAngle, "any-angle", false, "Use Theta* instead of A*.")
	f.BoolVar(&compare, "compare", false, "Run both A* and Theta* and report both.")
	f.BoolVar(&sample, "sample", false, "Pick random free start and goal points.")
	f.Int64Var(&seed, "seed", 0, "Random seed for --sample; 0 uses the clock.")
	f.Float64Var(&minSeparation, "min-separation", 10, "Minimum start-goal distance in cells for --sample.")
	f.StringVar(&zonesPath, "zones", "", "GeoJSON file of obstacle zones to burn into the map.")
	f.Float64Var(&simplifyEps, "simplify", 0, "Douglas-Peucker tolerance applied to zones.")
	f.StringVar(&configPath, "config", "", "JSON search config.")
	f.StringVar(&metricFlag, "metric", "", "Heuristic metric: euclidean, octile, manhattan, chebyshev.")
	f.StringVar(&outPath, "out", "", "Write the result as GeoJSON to this file.")
	f.BoolVar(&show, "show", false, "Show the result in the terminal.")

	rootCmd.AddCommand(serveCmd, planCmd)
}

func runPlan(cmd *cobra.Command) error {
	if mapPath == "" {
		return fmt.Errorf("--map is required")
	}
	if imageLevel < 0 || imageLevel > 255 {
		return fmt.Errorf("--level must be within 0..255, got %d", imageLevel)
	}

	cfg := DefaultSearchConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadSearchConfig(configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("metric") {
		cfg.Metric = metricFlag
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	height, width, values, err := LoadImageGrid(mapPath, uint8(imageLevel), darkObstacles)
	if err != nil {
		return err
	}
	origin, err := parsePair(originFlag)
	if err != nil {
		return fmt.Errorf("--origin: %w", err)
	}
	log.Printf("🗺️  Map %s: %dx%d cells @ %.3f\n", mapPath, height, width, resolution)

	req := PlanRequest{
		Origin:     origin,
		Dims:       [2]int{height, width},
		Values:     values,
		Resolution: resolution,
		AnyAngle:   anyAngle,
	}
	if zonesPath != "" {
		zones, err := LoadZones(zonesPath)
		if err != nil {
			return err
		}
		req.Zones = SimplifyZones(zones, simplifyEps)
	}

	grid, err := NewOccupancyGrid(pointFromPair(origin), height, width, resolution, values)
	if err != nil {
		return err
	}
	grid.Threshold = cfg.ObstacleThreshold
	grid = grid.WithZones(req.Zones)

	if sample {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		start, goal, err := SampleEndpoints(grid, rand.New(rand.NewSource(seed)), minSeparation, 0)
		if err != nil {
			return err
		}
		req.Start, req.Goal = start.Pair(), goal.Pair()
		log.Printf("🎲 Sampled endpoints with seed %d\n", seed)
	} else {
		if req.Start, err = parsePair(startFlag); err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		if req.Goal, err = parsePair(goalFlag); err != nil {
			return fmt.Errorf("--goal: %w", err)
		}
	}
	log.Printf("   Start: (%.3f, %.3f)\n", req.Start[0], req.Start[1])
	log.Printf("   Goal:  (%.3f, %.3f)\n", req.Goal[0], req.Goal[1])
	log.Printf("   Straight-line distance: %.3f\n", pointFromPair(req.Start).Distance(pointFromPair(req.Goal)))

	var results []PlanResult
	if compare {
		for _, aa := range []bool{false, true} {
			req.AnyAngle = aa
			results = append(results, Plan(context.Background(), req, opts...))
		}
	} else {
		results = append(results, Plan(context.Background(), req, opts...))
	}
	for _, res := range results {
		logResult(res)
	}

	if outPath != "" {
		if err := SavePlans(outPath, results...); err != nil {
			return err
		}
	}
	if show {
		if err := showPlan(grid, results[len(results)-1]); err != nil {
			return err
		}
	}

	if last := results[len(results)-1]; last.Err != nil {
		return last.Err
	}
	return nil
}

func logResult(res PlanResult) {
	if res.Err != nil {
		log.Printf("❌ %s %s: %v\n", res.Strategy, res.Status, res.Err)
		return
	}
	log.Printf("✅ %s: %d waypoints, cost %.3f\n", res.Strategy, len(res.Path), res.Cost)
	log.Printf("   Expanded %d of %d created nodes in %.2f ms\n", res.Expanded, res.Created, res.ElapsedMs())
}

// parsePair reads "x,y"
func parsePair(s string) ([2]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]float64{}, fmt.Errorf("expected x,y, got %q", s)
	}
	var out [2]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [2]float64{}, fmt.Errorf("expected x,y, got %q", s)
		}
		out[i] = v
	}
	return out, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
