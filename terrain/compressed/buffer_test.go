// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package compressed

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/SoftbearStudios/terrainlab/terrain"
)

func TestCompressedBuffer_Write(t *testing.T) {
	const n = 1024
	var buffer Buffer

	_, _ = buffer.Write(make([]byte, n))

	// 256 per run, 2 bytes each.
	if buf := buffer.Buffer(); len(buf) != n/maxRun*2 {
		t.Error("Buffer.Write(make([]byte, 1024) expected", n/maxRun*2, "got", len(buf))
		t.Error(buf)
	}
}

func TestCompressedBuffer_Read(t *testing.T) {
	const n = 1024
	var buffer Buffer

	input := make([]byte, n)
	for i := range input {
		// Short runs of random values.
		input[i] = byte(rand.Intn(4) * 60)
	}

	_, _ = buffer.Write(input)

	output := make([]byte, n*2)
	r, _ := buffer.Read(output)
	output = output[:r]

	if !bytes.Equal(input, output) {
		t.Error("Buffer.Read expected", len(input), "got", len(output), "\ninput:", input, "\noutput:", output)
	}
}

// Reads smaller than a run must resume mid run.
func TestCompressedBuffer_ReadSmall(t *testing.T) {
	input := append(bytes.Repeat([]byte{7}, 300), 1, 2, 2, 3)
	data := Compress(input)

	var buffer Buffer
	buffer.Reset(data)

	var output []byte
	chunk := make([]byte, 3)
	for {
		n, err := buffer.Read(chunk)
		output = append(output, chunk[:n]...)
		if err != nil {
			break
		}
	}

	if !bytes.Equal(input, output) {
		t.Error("expected", input, "got", output)
	}
}

func TestDecompress(t *testing.T) {
	input := []byte{0, 0, 0, 9, 9, 255}
	data := Compress(input)

	raw, err := Decompress(data, len(input))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, raw) {
		t.Error("expected", input, "got", raw)
	}

	if _, err := Decompress(data, len(input)+1); err == nil {
		t.Error("expected error for short data")
	}
	if _, err := Decompress(data, len(input)-1); !errors.Is(err, ErrCorrupt) {
		t.Error("expected", ErrCorrupt, "got", err)
	}
	if _, err := Decompress(data[:len(data)-1], len(input)); err == nil {
		t.Error("expected error for dangling byte")
	}
}

func TestQuantize(t *testing.T) {
	grid, _ := terrain.NewGrid(3, 3)
	for i := range grid.Cells {
		grid.Cells[i] = rand.Float64()*4 - 2
	}

	raw, lo, hi := Quantize(grid)
	back, err := Dequantize(raw, 3, 3, lo, hi)
	if err != nil {
		t.Fatal(err)
	}

	tolerance := (hi-lo)/510 + 1e-9
	for i := range grid.Cells {
		if math.Abs(grid.Cells[i]-back.Cells[i]) > tolerance {
			t.Errorf("cell %d expected %v got %v", i, grid.Cells[i], back.Cells[i])
		}
	}

	if _, err := Dequantize(raw[:4], 3, 3, lo, hi); !errors.Is(err, ErrCorrupt) {
		t.Error("expected", ErrCorrupt, "got", err)
	}
}

func TestQuantize_Flat(t *testing.T) {
	grid, _ := terrain.NewGrid(2, 2)
	for i := range grid.Cells {
		grid.Cells[i] = 0.4
	}

	raw, lo, hi := Quantize(grid)
	if !bytes.Equal(raw, []byte{0, 0, 0, 0}) || lo != 0.4 || hi != 0.4 {
		t.Error("expected zeros at 0.4, got", raw, lo, hi)
	}
}
