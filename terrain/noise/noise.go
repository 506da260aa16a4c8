// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise synthesizes scalar fields from seeded gradient noise.
package noise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/SoftbearStudios/terrainlab/terrain"
)

const (
	// Per octave amplitude and frequency factors.
	persistence = 0.5
	lacunarity  = 2.0
)

// Options configures a Generator.
type Options struct {
	// Zoom divides sample coordinates, so larger is smoother.
	Zoom float64 `json:"zoom"`
	// Octaves is the number of summed noise layers.
	Octaves int   `json:"octaves"`
	Seed    int64 `json:"seed"`
}

// Validate checks zoom and octaves.
func (o Options) Validate() error {
	if !(o.Zoom > 0) || math.IsInf(o.Zoom, 0) {
		return fmt.Errorf("%w: %v", terrain.ErrInvalidZoom, o.Zoom)
	}
	if o.Octaves <= 0 {
		return fmt.Errorf("%w: %d", terrain.ErrInvalidOctaves, o.Octaves)
	}
	return nil
}

// Generator generates fractal gradient noise remapped to [0, 1].
// The same options and dimensions always produce the same grid.
type Generator struct {
	Options
}

// New creates a new Generator after validating opts.
func New(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Generator{Options: opts}, nil
}

// Generate is the one shot form of New(...).Generate(width, height).
func Generate(width, height int, zoom float64, octaves int, seed int64) (*terrain.Grid, error) {
	if err := terrain.CheckDimensions(width, height); err != nil {
		return nil, err
	}
	g, err := New(Options{Zoom: zoom, Octaves: octaves, Seed: seed})
	if err != nil {
		return nil, err
	}
	return g.Generate(width, height)
}

// Generate implements terrain.Source.Generate.
func (g *Generator) Generate(width, height int) (*terrain.Grid, error) {
	grid, err := terrain.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	field := NewGradientField(width, height, rand.New(rand.NewSource(g.Seed)))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.Cells[x+y*width] = g.sample(field, x, y)
		}
	}

	return grid, nil
}

// sample sums every octave at one cell.
func (g *Generator) sample(field *GradientField, x, y int) float64 {
	amplitude := 1.0
	frequency := 1.0

	var value, total float64
	for i := 0; i < g.Octaves; i++ {
		fx := float64(x) / frequency / g.Zoom
		fy := float64(y) / frequency / g.Zoom

		// Enclosing cell and position within it.
		x0, y0 := math.Floor(fx), math.Floor(fy)
		xf, yf := fx-x0, fy-y0
		ix, iy := corner(x0, field.width), corner(y0, field.height)

		d00 := field.at(ix, iy).dot(xf, yf)
		d10 := field.at(ix+1, iy).dot(xf-1, yf)
		d01 := field.at(ix, iy+1).dot(xf, yf-1)
		d11 := field.at(ix+1, iy+1).dot(xf-1, yf-1)

		blendX := interpolate(d00, d10, xf)
		blendY := interpolate(d01, d11, xf)
		value += interpolate(blendX, blendY, yf) * amplitude
		total += amplitude

		amplitude *= persistence
		frequency *= lacunarity
	}

	// Each octave is within [-1, 1], so the weighted mean is too.
	return clamp((value/total+1)/2, 0, 1)
}
