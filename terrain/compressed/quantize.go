// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package compressed

import (
	"math"

	"github.com/SoftbearStudios/terrainlab/terrain"
)

// Quantize maps each cell onto a byte between the grid's bounds, which are
// returned for Dequantize.
func Quantize(grid *terrain.Grid) (raw []byte, lo, hi float64) {
	lo, hi = grid.Bounds()
	raw = make([]byte, len(grid.Cells))

	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}

	for i, v := range grid.Cells {
		raw[i] = clampToByte(math.Round((v - lo) * scale))
	}
	return
}

// Dequantize reverses Quantize to within (hi-lo)/510 per cell.
func Dequantize(raw []byte, width, height int, lo, hi float64) (*terrain.Grid, error) {
	grid, err := terrain.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if len(raw) != len(grid.Cells) {
		return nil, ErrCorrupt
	}

	step := (hi - lo) / 255
	for i, b := range raw {
		grid.Cells[i] = lo + float64(b)*step
	}
	return grid, nil
}

func clampToByte(f float64) byte {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return byte(f)
}
