// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SoftbearStudios/terrainlab/cloud"
	"github.com/SoftbearStudios/terrainlab/config"
	"github.com/SoftbearStudios/terrainlab/pipeline"
)

func TestWithProfile_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.prof")
	failure := errors.New("generation failed")

	if err := withProfile(path, func() error { return failure }); err != failure {
		t.Fatalf("expected %v got %v", failure, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("expected profile to be flushed")
	}
}

func TestWithProfile_None(t *testing.T) {
	var ran bool
	if err := withProfile("", func() error { ran = true; return nil }); err != nil || !ran {
		t.Errorf("expected fn to run, got ran=%v err=%v", ran, err)
	}
}

func TestWriteImages(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default(config.ModeVoxel)
	cfg.Width, cfg.Height, cfg.Depth, cfg.TileSize = 6, 4, 3, 1
	cfg.Out = dir

	result, err := pipeline.Run(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := writeImages(result, cloud.Offline(filepath.Join(dir, "snapshots"))); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"voxel-42-z000.png", "voxel-42-z001.png", "voxel-42-z002.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}
