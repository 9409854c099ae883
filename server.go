package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// planRequestBody is the JSON body of POST /plan
type planRequestBody struct {
	PlanRequest
	Zones  *geojson.FeatureCollection `json:"zones,omitempty"`
	Config *SearchConfig              `json:"config,omitempty"`
}

// PlanResponse is the JSON body returned by POST /plan
type PlanResponse struct {
	Status     Status       `json:"status"`
	StatusText string       `json:"statusText"`
	Strategy   string       `json:"strategy"`
	Path       [][2]float64 `json:"path"`
	Dense      []Cell       `json:"dense,omitempty"`
	Cost       float64      `json:"cost"`
	Expanded   int          `json:"expanded"`
	ElapsedMs  float64      `json:"elapsedMs"`
	Message    string       `json:"message,omitempty"`
}

var serverStarted = time.Now()

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// POST /plan - Plan a path over the grid in the request body
func planHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Plan request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body planRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cfg := DefaultSearchConfig()
	if body.Config != nil {
		cfg = *body.Config
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Printf("❌ Invalid config: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := body.PlanRequest
	if body.Zones != nil {
		req.Zones = ZonesFromCollection(body.Zones)
	}

	log.Printf("   Grid:  %dx%d @ %.3f\n", req.Dims[0], req.Dims[1], req.Resolution)
	log.Printf("   Start: (%.3f, %.3f)\n", req.Start[0], req.Start[1])
	log.Printf("   Goal:  (%.3f, %.3f)\n", req.Goal[0], req.Goal[1])

	res := Plan(r.Context(), req, opts...)

	response := PlanResponse{
		Status:     res.Status,
		StatusText: res.Status.String(),
		Strategy:   res.Strategy.String(),
		Path:       res.Pairs(),
		Dense:      res.Dense,
		Cost:       res.Cost,
		Expanded:   res.Expanded,
		ElapsedMs:  res.ElapsedMs(),
	}
	if res.Err != nil {
		log.Printf("❌ %s: %v\n", res.Status, res.Err)
		response.Message = res.Err.Error()
	} else {
		log.Printf("✅ Path found with %d waypoints\n", len(res.Path))
		log.Printf("   Cost: %.3f, expanded %d nodes in %.2f ms\n", res.Cost, res.Expanded, res.ElapsedMs())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
	log.Println("========================================")
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":        "ready",
		"uptimeSeconds": int(time.Since(serverStarted).Seconds()),
	})
}

func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/plan", corsMiddleware(planHandler))
	mux.HandleFunc("/health", corsMiddleware(healthHandler))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func serve(addr string) error {
	log.Println("========================================")
	log.Println("🚀 Grid Path Planner Server")
	log.Println("========================================")
	log.Printf("Server starting on %s\n", addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /plan     - Plan a path over an occupancy grid")
	log.Println("  GET  /health   - Check server status")
	log.Println("  GET  /metrics  - Prometheus metrics")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")

	return http.ListenAndServe(addr, newServeMux())
}
