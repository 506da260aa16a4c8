// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(2, 1, 0.75)
	if g.Cells[5] != 0.75 || g.At(2, 1) != 0.75 {
		t.Errorf("expected row-major storage, got %v", g.Cells)
	}

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, -1}, {MaxInt/2 + 1, 2}, {MaxInt, MaxInt}} {
		if _, err := NewGrid(size[0], size[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewGrid(%d, %d) expected %v got %v", size[0], size[1], ErrInvalidDimension, err)
		}
	}
}

func TestGrid_OutOfRange(t *testing.T) {
	g, _ := NewGrid(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	g.At(2, 0)
}

func TestGrid_BoundsRound(t *testing.T) {
	g, _ := NewGrid(2, 2)
	copy(g.Cells, []float64{0.123, -0.456, 0.5, 0.999})

	lo, hi := g.Bounds()
	if lo != -0.456 || hi != 0.999 {
		t.Errorf("expected [-0.456, 0.999] got [%v, %v]", lo, hi)
	}

	g.Round(2)
	expected := []float64{0.12, -0.46, 0.5, 1}
	for i := range expected {
		if g.Cells[i] != expected[i] {
			t.Errorf("cell %d expected %v got %v", i, expected[i], g.Cells[i])
		}
	}
}
