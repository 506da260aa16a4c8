// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "image/color"

// Biome is a band of the noise scalar range with a display color.
type Biome uint8

const (
	DeepOcean Biome = iota
	Ocean
	Beach
	DarkSand
	Plains
	Forest
	Mountains
	SnowPeak
	biomeCount
)

// RGB is an opaque 8 bit color.
type RGB struct {
	R, G, B uint8
}

var biomeColors = [biomeCount]RGB{
	DeepOcean: {28, 114, 114},
	Ocean:     {69, 229, 229},
	Beach:     {240, 228, 192},
	DarkSand:  {194, 178, 128},
	Plains:    {18, 200, 68},
	Forest:    {34, 139, 34},
	Mountains: {139, 137, 137},
	SnowPeak:  {255, 255, 255},
}

var biomeNames = [biomeCount]string{
	DeepOcean: "deep ocean",
	Ocean:     "ocean",
	Beach:     "beach",
	DarkSand:  "dark sand",
	Plains:    "plains",
	Forest:    "forest",
	Mountains: "mountains",
	SnowPeak:  "snow peak",
}

// Classify maps a noise value, roughly in [-1, 1], to a biome.
// Bands are tested in order and the first match wins. The beach band
// overlaps ocean, so in practice it only covers [-0.1, -0.05).
func Classify(v float64) Biome {
	switch {
	case v < -0.35:
		return DeepOcean
	case v < -0.1:
		return Ocean
	case -0.2 < v && v < -0.05:
		return Beach
	case v < 0.1:
		return DarkSand
	case v < 0.3:
		return Plains
	case v < 0.5:
		return Forest
	case v < 0.7:
		return Mountains
	default:
		return SnowPeak
	}
}

// ClassifyColor is shorthand for Classify(v).RGB().
func ClassifyColor(v float64) RGB {
	return Classify(v).RGB()
}

func (b Biome) RGB() RGB {
	if b >= biomeCount {
		return RGB{}
	}
	return biomeColors[b]
}

func (b Biome) String() string {
	if b >= biomeCount {
		return "unknown"
	}
	return biomeNames[b]
}

// Biomes returns every biome in band order.
func Biomes() []Biome {
	biomes := make([]Biome, biomeCount)
	for i := range biomes {
		biomes[i] = Biome(i)
	}
	return biomes
}

func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Vec converts to float color space for blending.
func (c RGB) Vec() ColorVec {
	return RGBVec(c.R, c.G, c.B)
}
