// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terrain holds the scalar grids that noise generators produce and
// the pure operations on them: smoothing and biome classification.
package terrain

/*
	Seeds that look good at the defaults:
		42 (voxel, zoom 18)
		7 (biome)
		56
*/

const (
	// Seed default seed.
	Seed = int64(42)
	// Decimals is the precision heightfields are rounded to before voxelization.
	Decimals = 2
)

// Source generates a scalar field.
type Source interface {
	Generate(width, height int) (*Grid, error)
}
