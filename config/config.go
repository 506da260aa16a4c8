// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config holds map generation settings shared by the commands.
package config

import (
	"fmt"
	"os"

	"github.com/SoftbearStudios/terrainlab/cloud"
	"github.com/SoftbearStudios/terrainlab/terrain"
	"github.com/SoftbearStudios/terrainlab/terrain/noise"
	jsoniter "github.com/json-iterator/go"
)

const (
	// ModeVoxel extrudes gradient noise into a voxel volume.
	ModeVoxel = "voxel"
	// ModeBiome smooths layered perlin noise and colors it by biome.
	ModeBiome = "biome"
	// ModeHeights draws gradient noise as a height ramp.
	ModeHeights = "heights"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config holds the generation settings.
type Config struct {
	Mode     string  `json:"mode"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Depth    int     `json:"depth"`
	Zoom     float64 `json:"zoom"`
	Octaves  int     `json:"octaves"`
	Seed     int64   `json:"seed"`
	Passes   int     `json:"passes"`
	TileSize int     `json:"tile_size"`

	Out      string `json:"out"`      // directory for rendered images
	Snapshot bool   `json:"snapshot"` // dump a debug snapshot
	Label    string `json:"label"`    // snapshot label
	RunLog   string `json:"run_log"`  // CSV file to append runs to, if set

	Cloud cloud.Options `json:"cloud"`
}

// Default returns a Config with the defaults for mode.
func Default(mode string) *Config {
	cfg := &Config{
		Mode:     mode,
		Width:    50,
		Height:   50,
		Depth:    50,
		Zoom:     18,
		Octaves:  3,
		Seed:     terrain.Seed,
		TileSize: 30,
		Out:      ".",
		Cloud:    cloud.Options{Dir: "snapshots"},
	}
	if mode == ModeBiome {
		cfg.Width = 200
		cfg.Height = 200
		cfg.Passes = 3
		cfg.TileSize = 2
	}
	return cfg
}

// Load reads a JSON config file on top of the defaults for its mode.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mode struct {
		Mode string `json:"mode"`
	}
	if err = json.Unmarshal(buf, &mode); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if mode.Mode == "" {
		mode.Mode = ModeVoxel
	}

	cfg := Default(mode.Mode)
	if err = json.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["mode"] {
		cfg.Mode = fromFile.Mode
	}
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["depth"] {
		cfg.Depth = fromFile.Depth
	}
	if !explicitFlags["zoom"] {
		cfg.Zoom = fromFile.Zoom
	}
	if !explicitFlags["octaves"] {
		cfg.Octaves = fromFile.Octaves
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["passes"] {
		cfg.Passes = fromFile.Passes
	}
	if !explicitFlags["tile"] {
		cfg.TileSize = fromFile.TileSize
	}
	if !explicitFlags["out"] {
		cfg.Out = fromFile.Out
	}
	if !explicitFlags["snapshot"] {
		cfg.Snapshot = fromFile.Snapshot
	}
	if !explicitFlags["label"] {
		cfg.Label = fromFile.Label
	}
	if !explicitFlags["run-log"] {
		cfg.RunLog = fromFile.RunLog
	}
	if !explicitFlags["stage"] {
		cfg.Cloud.Stage = fromFile.Cloud.Stage
	}
	if !explicitFlags["region"] {
		cfg.Cloud.Region = fromFile.Cloud.Region
	}
	if !explicitFlags["snapshot-dir"] {
		cfg.Cloud.Dir = fromFile.Cloud.Dir
	}
}

// Validate checks the settings the selected mode uses.
func (cfg *Config) Validate() error {
	switch cfg.Mode {
	case ModeVoxel, ModeBiome, ModeHeights:
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if err := terrain.CheckDimensions(cfg.Width, cfg.Height); err != nil {
		return err
	}
	if cfg.Mode == ModeVoxel && cfg.Depth <= 0 {
		return fmt.Errorf("%w: depth %d", terrain.ErrInvalidDimension, cfg.Depth)
	}
	if cfg.Passes < 0 {
		return fmt.Errorf("%w: %d", terrain.ErrInvalidPasses, cfg.Passes)
	}
	if cfg.Mode != ModeBiome {
		return cfg.NoiseOptions().Validate()
	}
	return nil
}

// NoiseOptions returns the gradient noise settings.
func (cfg *Config) NoiseOptions() noise.Options {
	return noise.Options{Zoom: cfg.Zoom, Octaves: cfg.Octaves, Seed: cfg.Seed}
}

// Source returns the field generator for the mode.
func (cfg *Config) Source() (terrain.Source, error) {
	if cfg.Mode == ModeBiome {
		return noise.NewLayered(cfg.Seed), nil
	}
	return noise.New(cfg.NoiseOptions())
}
