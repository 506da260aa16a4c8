// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/SoftbearStudios/terrainlab/terrain"
	"github.com/SoftbearStudios/terrainlab/terrain/voxel"
)

func TestBiomes(t *testing.T) {
	grid, _ := terrain.NewGrid(2, 1)
	copy(grid.Cells, []float64{-0.5, 0.8})

	ctx := DefaultContext()
	ctx.TileSize = 3
	img := Biomes(ctx, grid)

	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("expected 6x3 image got %v", b)
	}

	deep := color.RGBA{R: 28, G: 114, B: 114, A: 255}
	snow := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < 3; y++ {
		if c := img.RGBAAt(2, y); c != deep {
			t.Errorf("(2, %d) expected %v got %v", y, deep, c)
		}
		if c := img.RGBAAt(3, y); c != snow {
			t.Errorf("(3, %d) expected %v got %v", y, snow, c)
		}
	}
}

func TestHeights(t *testing.T) {
	grid, _ := terrain.NewGrid(3, 1)
	copy(grid.Cells, []float64{0, 0.5, 1})

	ctx := DefaultContext()
	ctx.TileSize = 1
	ctx.Low = terrain.Gray(0)
	ctx.High = terrain.Gray(255)
	img := Heights(ctx, grid)

	expected := []uint8{0, 128, 255}
	for x, v := range expected {
		if c := img.RGBAAt(x, 0); c.R != v || c.G != v || c.B != v {
			t.Errorf("x=%d expected gray %d got %v", x, v, c)
		}
	}
}

func TestSlice(t *testing.T) {
	grid, _ := terrain.NewGrid(2, 1)
	copy(grid.Cells, []float64{0.25, 1})
	voxels, err := voxel.Columnize(grid, 4)
	if err != nil {
		t.Fatal(err)
	}
	// Heights 0 and 3.

	ctx := DefaultContext()
	ctx.TileSize = 1
	images := Slices(ctx, voxels)
	if len(images) != 4 {
		t.Fatalf("expected 4 slices got %d", len(images))
	}

	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for z, img := range images {
		if c := img.RGBAAt(0, 0); c != white {
			t.Errorf("z=%d empty column expected %v got %v", z, white, c)
		}
		expected := white
		if z < 3 {
			expected = black
		}
		if c := img.RGBAAt(1, 0); c != expected {
			t.Errorf("z=%d expected %v got %v", z, expected, c)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	grid, _ := terrain.NewGrid(4, 4)
	buf, err := EncodePNG(Biomes(DefaultContext(), grid))
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("expected 8x8 got %v", b)
	}
}

func TestThumbnail(t *testing.T) {
	grid, _ := terrain.NewGrid(4, 2)
	ctx := DefaultContext()
	ctx.TileSize = 10
	img := Biomes(ctx, grid)

	if b := Thumbnail(img, 10).Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Errorf("expected 10x5 thumbnail got %v", b)
	}
	if b := Thumbnail(img, 100).Bounds(); b != img.Bounds() {
		t.Errorf("expected unchanged %v got %v", img.Bounds(), b)
	}
	if b := Thumbnail(img, 0).Bounds(); b != img.Bounds() {
		t.Errorf("expected unchanged %v got %v", img.Bounds(), b)
	}
}
