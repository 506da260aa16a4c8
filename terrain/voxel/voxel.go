// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package voxel extrudes heightfields into boolean occupancy volumes.
package voxel

import (
	"fmt"
	"math"

	"github.com/SoftbearStudios/terrainlab/terrain"
)

// Grid is a Width x Height x Depth occupancy volume. Every column is solid
// from z = 0 up to its height and empty above.
type Grid struct {
	Width  int
	Height int
	Depth  int
	cells  []bool
	// heights caches each column's occupied count.
	heights []int
}

// Columnize extrudes a heightfield with values in [0, 1] into depth levels.
// A column with value v is occupied for z < floor(v*depth - 1).
func Columnize(heightfield *terrain.Grid, depth int) (*Grid, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: depth %d", terrain.ErrInvalidDimension, depth)
	}
	if err := terrain.CheckDimensions(heightfield.Width, heightfield.Height); err != nil {
		return nil, err
	}
	if cells := heightfield.Width * heightfield.Height; cells > terrain.MaxInt/depth {
		return nil, fmt.Errorf("%w: %d columns of depth %d", terrain.ErrInvalidDimension, cells, depth)
	}
	for i, v := range heightfield.Cells {
		if !(v >= 0 && v <= 1) {
			return nil, fmt.Errorf("%w: cell %d is %v", terrain.ErrHeightOutOfRange, i, v)
		}
	}

	w, h := heightfield.Width, heightfield.Height
	g := &Grid{
		Width:   w,
		Height:  h,
		Depth:   depth,
		cells:   make([]bool, w*h*depth),
		heights: make([]int, w*h),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := ExtrudedHeight(heightfield.Cells[x+y*w], depth)
			g.heights[x+y*w] = top
			for z := 0; z < top; z++ {
				g.cells[g.index(x, y, z)] = true
			}
		}
	}

	return g, nil
}

// ExtrudedHeight is the number of occupied voxels a value extrudes to.
func ExtrudedHeight(v float64, depth int) int {
	top := int(math.Floor(v*float64(depth) - 1))
	if top < 0 {
		return 0
	}
	if top > depth {
		return depth
	}
	return top
}

func (g *Grid) index(x, y, z int) int {
	return z + (x+y*g.Width)*g.Depth
}

// Occupied reports whether the voxel is solid. Out of range is empty.
func (g *Grid) Occupied(x, y, z int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height || z < 0 || z >= g.Depth {
		return false
	}
	return g.cells[g.index(x, y, z)]
}

// ColumnHeight returns the occupied count of the column at x, y.
func (g *Grid) ColumnHeight(x, y int) int {
	return g.heights[x+y*g.Width]
}

// Heights returns every column height, row-major.
func (g *Grid) Heights() []int {
	heights := make([]int, len(g.heights))
	copy(heights, g.heights)
	return heights
}

// Slice returns the occupancy of level z, indexed x + y*Width.
func (g *Grid) Slice(z int) []bool {
	slice := make([]bool, g.Width*g.Height)
	if z < 0 || z >= g.Depth {
		return slice
	}
	for i, top := range g.heights {
		slice[i] = z < top
	}
	return slice
}

// Count returns the total number of occupied voxels.
func (g *Grid) Count() int {
	var n int
	for _, top := range g.heights {
		n += top
	}
	return n
}

func (g *Grid) String() string {
	return fmt.Sprintf("voxels %dx%dx%d (%d occupied)", g.Width, g.Height, g.Depth, g.Count())
}
