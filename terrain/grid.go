// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"math"
)

// Grid is a fixed size rectangle of scalar values, such as a noise field
// or a heightmap. Cells are stored row-major, so x is the fast axis.
type Grid struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cells  []float64 `json:"cells"`
}

// NewGrid allocates a zeroed grid.
func NewGrid(width, height int) (*Grid, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]float64, width*height),
	}, nil
}

// MaxInt is the largest int.
const MaxInt = int(^uint(0) >> 1)

// CheckDimensions returns ErrInvalidDimension unless both are positive and
// their product fits in an int.
func CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxInt/height {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

// At returns the value at x, y. Panics if out of bounds, like a slice.
func (g *Grid) At(x, y int) float64 {
	return g.Cells[g.index(x, y)]
}

// Set stores v at x, y.
func (g *Grid) Set(x, y int, v float64) {
	g.Cells[g.index(x, y)] = v
}

func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		panic(fmt.Sprintf("grid index (%d, %d) out of range %dx%d", x, y, g.Width, g.Height))
	}
	return x + y*g.Width
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]float64, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Bounds returns the smallest and largest cell values.
func (g *Grid) Bounds() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.Cells {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}

// Round rounds every cell to a number of decimal places, in place.
func (g *Grid) Round(decimals int) *Grid {
	for i, v := range g.Cells {
		g.Cells[i] = roundTo(v, decimals)
	}
	return g
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func (g *Grid) String() string {
	lo, hi := g.Bounds()
	return fmt.Sprintf("grid %dx%d [%.2f, %.2f]", g.Width, g.Height, lo, hi)
}
