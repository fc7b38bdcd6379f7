// Package config loads an optional YAML override of the venue topology
// (see config/venue.example.yaml), falling back to
// schedule.DefaultVenueConfig when no override path is configured.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duskbar/rota/schedule"
)

// venueFile mirrors config/venue.example.yaml's shape.
type venueFile struct {
	ActiveRing       []schedule.SlotIndex `yaml:"active_ring"`
	GeneralLocations []schedule.Location  `yaml:"general_locations"`
	BarLocations     []schedule.Location  `yaml:"bar_locations"`
	BarWindowStart   schedule.SlotIndex   `yaml:"bar_window_start"`
	BarWindowEnd     schedule.SlotIndex   `yaml:"bar_window_end"`
	WeeklyCap        int                  `yaml:"weekly_cap"`
}

// LoadVenue reads a VenueConfig from the YAML file at path. An empty path
// returns schedule.DefaultVenueConfig() unchanged.
func LoadVenue(path string) (schedule.VenueConfig, error) {
	if path == "" {
		return schedule.DefaultVenueConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return schedule.VenueConfig{}, fmt.Errorf("config: read venue file: %w", err)
	}

	var vf venueFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return schedule.VenueConfig{}, fmt.Errorf("config: parse venue file: %w", err)
	}

	v := schedule.DefaultVenueConfig()
	if len(vf.ActiveRing) > 0 {
		v.ActiveRing = vf.ActiveRing
	}
	if len(vf.GeneralLocations) > 0 {
		v.GeneralLocations = vf.GeneralLocations
	}
	if len(vf.BarLocations) > 0 {
		v.BarLocations = vf.BarLocations
	}
	if vf.BarWindowStart != 0 || vf.BarWindowEnd != 0 {
		v.BarWindowStart = vf.BarWindowStart
		v.BarWindowEnd = vf.BarWindowEnd
	}
	if vf.WeeklyCap > 0 {
		v.WeeklyCap = vf.WeeklyCap
	}
	return v, nil
}
