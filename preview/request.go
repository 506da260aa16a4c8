// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package preview

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/SoftbearStudios/terrainlab/config"
	jsoniter "github.com/json-iterator/go"
)

// Larger maps are rejected to keep a request from tying up the server.
const (
	maxSide   = 512
	maxDepth  = 256
	maxCells  = maxSide * maxSide
	maxVoxels = 256 * 256 * 128
	// maxImageSide caps rendered images, shrinking the tile size if needed.
	maxImageSide = 2048
)

var json = jsoniter.Config{
	EscapeHTML:                    false,
	SortMapKeys:                   true,
	MarshalFloatWith6Digits:       true,
	ObjectFieldMustBeSimpleString: true,
	CaseSensitive:                 true,
}.Froze()

// Request overrides the server's base config. Nil fields keep the base value.
type Request struct {
	Mode    *string  `json:"mode,omitempty"`
	Width   *int     `json:"width,omitempty"`
	Height  *int     `json:"height,omitempty"`
	Depth   *int     `json:"depth,omitempty"`
	Zoom    *float64 `json:"zoom,omitempty"`
	Octaves *int     `json:"octaves,omitempty"`
	Seed    *int64   `json:"seed,omitempty"`
	Passes  *int     `json:"passes,omitempty"`
	// Z is the voxel level to draw.
	Z int `json:"z"`
	// Thumb, if positive, caps the image's longest side in pixels.
	Thumb int `json:"thumb,omitempty"`
}

// Frame answers a Request.
type Frame struct {
	Mode     string  `json:"mode"`
	Z        int     `json:"z"`
	Depth    int     `json:"depth,omitempty"`
	Occupied int     `json:"occupied,omitempty"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	PNG      []byte  `json:"png,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// apply returns a copy of base with r's overrides, validated and size checked.
func (r *Request) apply(base *config.Config) (*config.Config, error) {
	cfg := *base
	if r.Mode != nil {
		// Mode changes start from that mode's defaults.
		cfg = *config.Default(*r.Mode)
		cfg.Seed = base.Seed
	}
	if r.Width != nil {
		cfg.Width = *r.Width
	}
	if r.Height != nil {
		cfg.Height = *r.Height
	}
	if r.Depth != nil {
		cfg.Depth = *r.Depth
	}
	if r.Zoom != nil {
		cfg.Zoom = *r.Zoom
	}
	if r.Octaves != nil {
		cfg.Octaves = *r.Octaves
	}
	if r.Seed != nil {
		cfg.Seed = *r.Seed
	}
	if r.Passes != nil {
		cfg.Passes = *r.Passes
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Sides are checked first so the products below cannot overflow.
	if cfg.Width > maxSide || cfg.Height > maxSide {
		return nil, fmt.Errorf("map too large: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Mode == config.ModeVoxel && cfg.Depth > maxDepth {
		return nil, fmt.Errorf("map too deep: %d", cfg.Depth)
	}
	if cfg.Width*cfg.Height > maxCells {
		return nil, fmt.Errorf("map too large: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Mode == config.ModeVoxel && cfg.Width*cfg.Height*cfg.Depth > maxVoxels {
		return nil, fmt.Errorf("volume too large: %dx%dx%d", cfg.Width, cfg.Height, cfg.Depth)
	}
	cfg.TileSize = previewTileSize(cfg.TileSize, cfg.Width, cfg.Height)
	return &cfg, nil
}

// parseQuery reads a Request from URL query values.
func parseQuery(values url.Values) (*Request, error) {
	var r Request

	if v := values.Get("mode"); v != "" {
		r.Mode = &v
	}

	ints := []struct {
		name string
		dst  **int
	}{
		{"width", &r.Width},
		{"height", &r.Height},
		{"depth", &r.Depth},
		{"octaves", &r.Octaves},
		{"passes", &r.Passes},
	}
	for _, field := range ints {
		v := values.Get(field.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", field.name, err)
		}
		*field.dst = &n
	}

	if v := values.Get("zoom"); v != "" {
		zoom, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid zoom: %w", err)
		}
		r.Zoom = &zoom
	}
	if v := values.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
		r.Seed = &seed
	}
	if v := values.Get("z"); v != "" {
		z, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid z: %w", err)
		}
		r.Z = z
	}
	if v := values.Get("thumb"); v != "" {
		thumb, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid thumb: %w", err)
		}
		r.Thumb = thumb
	}

	return &r, nil
}

// previewTileSize shrinks tile so the image fits in maxImageSide.
func previewTileSize(tile, width, height int) int {
	longest := width
	if height > longest {
		longest = height
	}
	if limit := maxImageSide / longest; tile > limit {
		tile = limit
	}
	if tile < 1 {
		tile = 1
	}
	return tile
}
