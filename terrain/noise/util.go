// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// interpolate blends a and b with a smoothstep weighted t.
func interpolate(a, b, t float64) float64 {
	return a + smoothstep(t)*(b-a)
}

func clamp(f, minimum, maximum float64) float64 {
	if f < minimum {
		return minimum
	}
	if f > maximum {
		return maximum
	}
	return f
}
