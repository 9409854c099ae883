package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb/geojson"
)

// PlanCollection bundles plan results into one GeoJSON FeatureCollection
func PlanCollection(results ...PlanResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, res := range results {
		fc.Append(res.Feature())
	}
	return fc
}

// SavePlans writes plan results to a GeoJSON file
func SavePlans(filename string, results ...PlanResult) error {
	log.Printf("💾 Saving %d plan(s) to %s...\n", len(results), filename)

	data, err := json.MarshalIndent(PlanCollection(results...), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plans: %w", err)
	}

	err = os.WriteFile(filename, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("   ✅ Plans saved (%d bytes)\n", len(data))
	return nil
}
