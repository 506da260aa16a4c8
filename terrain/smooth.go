// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "fmt"

// SmoothDecimals is the precision each smoothed cell is rounded to.
const SmoothDecimals = 2

// Smooth box blurs a copy of grid passes times. Each interior cell becomes
// the mean of its 8 neighbors, then the border rows and columns are
// replicated from the adjacent interior ones so they don't go stale.
func Smooth(grid *Grid, passes int) (*Grid, error) {
	if passes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPasses, passes)
	}

	src := grid.Clone()

	// No interior to average.
	if grid.Width < 3 || grid.Height < 3 {
		return src, nil
	}

	dst := grid.Clone()
	for i := 0; i < passes; i++ {
		smoothPass(src, dst)
		src, dst = dst, src
	}

	return src, nil
}

// smoothPass writes one pass of src into dst, which must have the same size.
func smoothPass(src, dst *Grid) {
	w, h := src.Width, src.Height

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var total float64
			for j := y - 1; j <= y+1; j++ {
				for i := x - 1; i <= x+1; i++ {
					if i == x && j == y {
						continue
					}
					total += src.Cells[i+j*w]
				}
			}
			dst.Cells[x+y*w] = roundTo(total/8, SmoothDecimals)
		}
	}

	replicateEdges(dst)
}

// replicateEdges copies the outermost interior rows and columns onto the border.
func replicateEdges(g *Grid) {
	w, h := g.Width, g.Height

	// Top and bottom rows, sized by width.
	for x := 0; x < w; x++ {
		g.Cells[x] = g.Cells[x+w]
		g.Cells[x+(h-1)*w] = g.Cells[x+(h-2)*w]
	}

	// Left and right columns, sized by height.
	for y := 0; y < h; y++ {
		g.Cells[y*w] = g.Cells[1+y*w]
		g.Cells[w-1+y*w] = g.Cells[w-2+y*w]
	}
}
