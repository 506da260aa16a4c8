// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"math"
	"math/rand"
)

// gradientLength keeps every corner dot product within [-1, 1], since an
// offset inside a unit cell is at most sqrt(2) long.
const gradientLength = math.Sqrt2 / 2

type gradient struct {
	X, Y float64
}

func (g gradient) dot(x, y float64) float64 {
	return g.X*x + g.Y*y
}

// GradientField holds one gradient per lattice corner. It only lives for
// the duration of a single Generate call.
type GradientField struct {
	width, height int
	gradients     []gradient
}

// NewGradientField fills a field with random directions drawn from r.
func NewGradientField(width, height int, r *rand.Rand) *GradientField {
	f := &GradientField{
		width:     width,
		height:    height,
		gradients: make([]gradient, width*height),
	}
	for i := range f.gradients {
		angle := r.Float64() * 2 * math.Pi
		f.gradients[i] = gradient{
			X: math.Cos(angle) * gradientLength,
			Y: math.Sin(angle) * gradientLength,
		}
	}
	return f
}

// at returns the gradient at a corner, clamping corners past the far edge.
func (f *GradientField) at(x, y int) gradient {
	return f.gradients[clampIndex(x, f.width)+clampIndex(y, f.height)*f.width]
}

// corner converts a floored lattice coordinate to an index that is safe to
// add 1 to before clamping.
func corner(c float64, n int) int {
	if c > float64(n-1) {
		return n - 1
	}
	if c < 0 {
		return 0
	}
	return int(c)
}

func clampIndex(i, n int) int {
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}
