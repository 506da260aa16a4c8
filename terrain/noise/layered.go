// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"math/rand"

	"github.com/SoftbearStudios/terrainlab/terrain"
	"github.com/aquilax/go-perlin"
)

// Layer is one perlin noise layer of a Layered field.
type Layer struct {
	// Frequency scales the normalized sample position.
	Frequency float64 `json:"frequency"`
	// Weight multiplies the layer. If Jitter is set, each cell instead gets
	// a weight drawn uniformly from [0, Weight).
	Weight float64 `json:"weight"`
	Jitter bool    `json:"jitter"`
}

// DefaultLayers is a detailed base layer plus three coarse layers of
// decreasing, randomly jittered, strength.
var DefaultLayers = []Layer{
	{Frequency: 8, Weight: 1},
	{Frequency: 1, Weight: 3, Jitter: true},
	{Frequency: 1, Weight: 0.5, Jitter: true},
	{Frequency: 1, Weight: 0.1, Jitter: true},
}

const (
	layerAlpha      = 2.0
	layerBeta       = 2.0
	layerIterations = 1
)

// Layered sums several perlin noise layers into a field roughly centered on
// zero, suitable for biome classification. Jittered weights make the raw
// field speckled, so it is usually smoothed before use.
type Layered struct {
	seed   int64
	layers []Layer
	noises []*perlin.Perlin
}

// NewLayered creates a Layered with a seed. Each layer gets its own seed
// derived from it. With no layers, DefaultLayers are used.
func NewLayered(seed int64, layers ...Layer) *Layered {
	if len(layers) == 0 {
		layers = DefaultLayers
	}

	l := &Layered{
		seed:   seed,
		layers: append([]Layer(nil), layers...),
		noises: make([]*perlin.Perlin, len(layers)),
	}
	for i := range l.layers {
		l.noises[i] = perlin.NewPerlin(layerAlpha, layerBeta, layerIterations, seed+int64(i))
	}
	return l
}

// Generate implements terrain.Source.Generate.
func (l *Layered) Generate(width, height int) (*terrain.Grid, error) {
	grid, err := terrain.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	// Jitter draws come from their own source so they repeat per seed.
	r := rand.New(rand.NewSource(l.seed))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nx := float64(x) / float64(width)
			ny := float64(y) / float64(height)

			var v float64
			for i, layer := range l.layers {
				weight := layer.Weight
				if layer.Jitter {
					weight *= r.Float64()
				}
				v += weight * l.noises[i].Noise2D(nx*layer.Frequency, ny*layer.Frequency)
			}
			grid.Cells[x+y*width] = v
		}
	}

	return grid, nil
}
