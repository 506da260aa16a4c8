// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pipeline runs the generation steps a config asks for:
// field -> smoothing -> voxels.
package pipeline

import (
	"fmt"
	"image"

	"github.com/SoftbearStudios/terrainlab/config"
	"github.com/SoftbearStudios/terrainlab/snapshot"
	"github.com/SoftbearStudios/terrainlab/terrain"
	"github.com/SoftbearStudios/terrainlab/terrain/render"
	"github.com/SoftbearStudios/terrainlab/terrain/voxel"
)

// Result is the output of Run. Voxels is only set in voxel mode.
type Result struct {
	Config *config.Config
	Grid   *terrain.Grid
	Voxels *voxel.Grid
}

// Run generates the field for cfg and derives whatever its mode needs.
func Run(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source, err := cfg.Source()
	if err != nil {
		return nil, err
	}

	grid, err := source.Generate(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	if cfg.Passes > 0 {
		if grid, err = terrain.Smooth(grid, cfg.Passes); err != nil {
			return nil, err
		}
	}

	result := &Result{Config: cfg, Grid: grid}

	if cfg.Mode == config.ModeVoxel {
		// Heights are voxelized at the precision they're displayed at.
		heights := grid.Clone().Round(terrain.Decimals)
		if result.Voxels, err = voxel.Columnize(heights, cfg.Depth); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Params describes the run for snapshots and logs.
func (result *Result) Params() snapshot.Params {
	cfg := result.Config
	params := snapshot.Params{
		Mode:   cfg.Mode,
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   cfg.Seed,
		Passes: cfg.Passes,
	}
	if cfg.Mode != config.ModeBiome {
		params.Zoom = cfg.Zoom
		params.Octaves = cfg.Octaves
	}
	if result.Voxels != nil {
		params.Depth = result.Voxels.Depth
	}
	return params
}

// Image renders the map for the mode. In voxel mode it is level z.
func (result *Result) Image(ctx render.Context, z int) (image.Image, error) {
	switch result.Config.Mode {
	case config.ModeBiome:
		return render.Biomes(ctx, result.Grid), nil
	case config.ModeHeights:
		return render.Heights(ctx, result.Grid), nil
	case config.ModeVoxel:
		if z < 0 || z >= result.Voxels.Depth {
			return nil, fmt.Errorf("level %d out of range [0, %d)", z, result.Voxels.Depth)
		}
		return render.Slice(ctx, result.Voxels, z), nil
	}
	return nil, fmt.Errorf("unknown mode %q", result.Config.Mode)
}

// Images renders every picture for the mode: one per level in voxel mode,
// otherwise a single image.
func (result *Result) Images(ctx render.Context) ([]image.Image, error) {
	if result.Config.Mode != config.ModeVoxel {
		img, err := result.Image(ctx, 0)
		if err != nil {
			return nil, err
		}
		return []image.Image{img}, nil
	}

	slices := render.Slices(ctx, result.Voxels)
	images := make([]image.Image, len(slices))
	for z, slice := range slices {
		images[z] = slice
	}
	return images, nil
}

// Context returns the render context for the config.
func (result *Result) Context() render.Context {
	ctx := render.DefaultContext()
	ctx.TileSize = result.Config.TileSize
	if result.Config.Mode == config.ModeVoxel {
		ctx.Solid = terrain.Gray(40)
		ctx.Shade = 0.5
	}
	return ctx
}
