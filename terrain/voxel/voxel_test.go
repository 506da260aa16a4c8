// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package voxel

import (
	"errors"
	"math"
	"testing"

	"github.com/SoftbearStudios/terrainlab/terrain"
)

func uniform(width, height int, v float64) *terrain.Grid {
	g, _ := terrain.NewGrid(width, height)
	for i := range g.Cells {
		g.Cells[i] = v
	}
	return g
}

func TestColumnize_Full(t *testing.T) {
	const depth = 10
	v, err := Columnize(uniform(3, 4, 1.0), depth)
	if err != nil {
		t.Fatal(err)
	}

	// floor(1.0*10 - 1) = 9, the top level is always left open.
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			if h := v.ColumnHeight(x, y); h != depth-1 {
				t.Errorf("(%d, %d) expected height %d got %d", x, y, depth-1, h)
			}
			for z := 0; z < depth; z++ {
				if expected := z < depth-1; v.Occupied(x, y, z) != expected {
					t.Errorf("(%d, %d, %d) expected %v", x, y, z, expected)
				}
			}
		}
	}
	if n := v.Count(); n != 3*4*(depth-1) {
		t.Errorf("expected %d occupied got %d", 3*4*(depth-1), n)
	}
}

func TestColumnize_Contiguous(t *testing.T) {
	g, _ := terrain.NewGrid(5, 1)
	copy(g.Cells, []float64{0, 0.0625, 0.375, 0.75, 0.96875})
	v, err := Columnize(g, 20)
	if err != nil {
		t.Fatal(err)
	}

	expected := []int{0, 0, 6, 14, 18}
	for x, top := range expected {
		if h := v.ColumnHeight(x, 0); h != top {
			t.Errorf("x=%d expected height %d got %d", x, top, h)
		}
		for z := 0; z < v.Depth; z++ {
			if v.Occupied(x, 0, z) != (z < top) {
				t.Errorf("x=%d z=%d gap in column", x, z)
			}
		}
	}
}

func TestColumnize_Monotonic(t *testing.T) {
	for _, depth := range []int{1, 7, 40} {
		last := -1
		for i := 0; i <= 1000; i++ {
			h := ExtrudedHeight(float64(i)/1000, depth)
			if h < last {
				t.Fatalf("depth %d: height decreased from %d to %d at %v", depth, last, h, float64(i)/1000)
			}
			if h < 0 || h > depth {
				t.Fatalf("depth %d: height %d out of range", depth, h)
			}
			last = h
		}
	}
}

func TestColumnize_Invalid(t *testing.T) {
	if _, err := Columnize(uniform(2, 2, 0.5), 0); !errors.Is(err, terrain.ErrInvalidDimension) {
		t.Errorf("expected %v got %v", terrain.ErrInvalidDimension, err)
	}
	if _, err := Columnize(uniform(2, 2, 0.5), terrain.MaxInt/2); !errors.Is(err, terrain.ErrInvalidDimension) {
		t.Errorf("huge depth expected %v got %v", terrain.ErrInvalidDimension, err)
	}
	for _, bad := range []float64{-0.01, 1.01, math.NaN()} {
		if _, err := Columnize(uniform(2, 2, bad), 10); !errors.Is(err, terrain.ErrHeightOutOfRange) {
			t.Errorf("value %v expected %v got %v", bad, terrain.ErrHeightOutOfRange, err)
		}
	}
}

func TestGrid_Slice(t *testing.T) {
	g, _ := terrain.NewGrid(2, 2)
	copy(g.Cells, []float64{0.25, 0.5, 0.875, 1})
	v, _ := Columnize(g, 10)
	// Heights 1, 4, 7, 9.

	tests := []struct {
		z        int
		expected []bool
	}{
		{0, []bool{true, true, true, true}},
		{3, []bool{false, true, true, true}},
		{8, []bool{false, false, false, true}},
		{9, []bool{false, false, false, false}},
		{-1, []bool{false, false, false, false}},
	}

	for _, test := range tests {
		slice := v.Slice(test.z)
		for i := range slice {
			if slice[i] != test.expected[i] {
				t.Errorf("Slice(%d) expected %v got %v", test.z, test.expected, slice)
				break
			}
		}
	}

	if v.Occupied(5, 0, 0) || v.Occupied(0, 0, 10) {
		t.Error("expected out of range voxels to be empty")
	}
}
