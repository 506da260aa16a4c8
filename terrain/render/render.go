// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render draws grids and voxel slices into images.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/SoftbearStudios/terrainlab/terrain"
	"github.com/SoftbearStudios/terrainlab/terrain/voxel"
	"github.com/chewxy/math32"
	"github.com/nfnt/resize"
)

// Context holds everything a draw call needs. It is passed by value, so
// draws never share state.
type Context struct {
	// TileSize is the pixel width/height of one cell.
	TileSize int
	// Background fills empty voxels.
	Background terrain.ColorVec
	// Solid fills occupied voxels, darkened with depth by Shade.
	Solid terrain.ColorVec
	Shade float32
	// Low and High are the ends of the height ramp.
	Low, High terrain.ColorVec
}

func DefaultContext() Context {
	return Context{
		TileSize:   2,
		Background: terrain.Gray(255),
		Solid:      terrain.Gray(0),
		Shade:      0,
		Low:        terrain.RGBVec(0, 50, 115),
		High:       terrain.Gray(220),
	}
}

func (ctx Context) tile() int {
	if ctx.TileSize < 1 {
		return 1
	}
	return ctx.TileSize
}

func (ctx Context) fill(img *image.RGBA, x, y int, c color.RGBA) {
	s := ctx.tile()
	for j := 0; j < s; j++ {
		for i := 0; i < s; i++ {
			img.SetRGBA(x*s+i, y*s+j, c)
		}
	}
}

func (ctx Context) canvas(width, height int) *image.RGBA {
	s := ctx.tile()
	return image.NewRGBA(image.Rect(0, 0, width*s, height*s))
}

// Biomes draws each cell in the color of its biome.
func Biomes(ctx Context, grid *terrain.Grid) *image.RGBA {
	img := ctx.canvas(grid.Width, grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			ctx.fill(img, x, y, terrain.ClassifyColor(grid.At(x, y)).Color())
		}
	}
	return img
}

// Heights draws the grid as a ramp from Low to High across its bounds.
func Heights(ctx Context, grid *terrain.Grid) *image.RGBA {
	img := ctx.canvas(grid.Width, grid.Height)
	lo, hi := grid.Bounds()

	scale := float32(0)
	if hi > lo {
		scale = float32(1 / (hi - lo))
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			t := float32(grid.At(x, y)-lo) * scale
			ctx.fill(img, x, y, ctx.Low.Lerp(ctx.High, t).Color())
		}
	}
	return img
}

// Slice draws level z of the volume, looking down.
func Slice(ctx Context, voxels *voxel.Grid, z int) *image.RGBA {
	img := ctx.canvas(voxels.Width, voxels.Height)

	// Deeper levels are darker when Shade > 0.
	var depth float32
	if voxels.Depth > 1 {
		depth = float32(z) / float32(voxels.Depth-1)
	}
	solid := ctx.Solid.Mul(1 - terrain.Clamp01(ctx.Shade)*math32.Sqrt(1-terrain.Clamp01(depth))).Color()
	empty := ctx.Background.Color()

	for y := 0; y < voxels.Height; y++ {
		for x := 0; x < voxels.Width; x++ {
			c := empty
			if voxels.Occupied(x, y, z) {
				c = solid
			}
			ctx.fill(img, x, y, c)
		}
	}
	return img
}

// Slices draws every level, bottom first.
func Slices(ctx Context, voxels *voxel.Grid) []*image.RGBA {
	images := make([]*image.RGBA, voxels.Depth)
	for z := range images {
		images[z] = Slice(ctx, voxels, z)
	}
	return images
}

// EncodePNG encodes img as a PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Thumbnail scales img down to fit in size x size, keeping its aspect ratio.
// Images that already fit are returned as is. Nearest neighbor keeps the
// band edges hard.
func Thumbnail(img image.Image, size int) image.Image {
	if size <= 0 {
		return img
	}
	return resize.Thumbnail(uint(size), uint(size), img, resize.NearestNeighbor)
}
