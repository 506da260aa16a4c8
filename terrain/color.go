// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// ColorVec is a color with components in [0, 1].
type ColorVec [3]float32

func Gray(v byte) ColorVec {
	return RGBVec(v, v, v)
}

func RGBVec(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

func (vec ColorVec) String() string {
	return fmt.Sprintf("rgb(%.3f, %.3f, %.3f)", vec[0], vec[1], vec[2])
}

func (vec ColorVec) Mul(v float32) ColorVec {
	vec[0] *= v
	vec[1] *= v
	vec[2] *= v
	return vec
}

func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	factor = Clamp01(factor)
	for i := range vec {
		vec[i] += (other[i] - vec[i]) * factor
	}
	return vec
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}

// Clamp01 clamps f to [0, 1].
func Clamp01(f float32) float32 {
	return math32.Min(math32.Max(f, 0), 1)
}

func floatToByte(f float32) byte {
	return byte(Clamp01(f)*255 + 0.5)
}
