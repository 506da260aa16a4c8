// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SoftbearStudios/terrainlab/terrain"
	"github.com/SoftbearStudios/terrainlab/terrain/noise"
)

func TestDefault(t *testing.T) {
	for _, mode := range []string{ModeVoxel, ModeBiome, ModeHeights} {
		if err := Default(mode).Validate(); err != nil {
			t.Errorf("Default(%s) invalid: %v", mode, err)
		}
	}

	biome := Default(ModeBiome)
	if biome.Width != 200 || biome.Passes != 3 {
		t.Errorf("unexpected biome defaults %+v", biome)
	}
}

func TestLoadMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"mode":"biome","seed":7,"width":64,"cloud":{"dir":"dumps"}}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	fromFile, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if fromFile.Mode != ModeBiome || fromFile.Seed != 7 || fromFile.Width != 64 || fromFile.Height != 200 || fromFile.Cloud.Dir != "dumps" {
		t.Errorf("unexpected config %+v", fromFile)
	}

	cfg := Default(ModeVoxel)
	cfg.Width = 10
	Merge(cfg, fromFile, map[string]bool{"width": true})

	if cfg.Width != 10 {
		t.Errorf("expected explicit width 10 got %d", cfg.Width)
	}
	if cfg.Seed != 7 || cfg.Mode != ModeBiome || cfg.Passes != 3 {
		t.Errorf("expected file values, got %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	_ = os.WriteFile(path, []byte(`{"mode":`), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		edit func(*Config)
		err  error
	}{
		{func(c *Config) { c.Width = 0 }, terrain.ErrInvalidDimension},
		{func(c *Config) { c.Depth = 0 }, terrain.ErrInvalidDimension},
		{func(c *Config) { c.Zoom = 0 }, terrain.ErrInvalidZoom},
		{func(c *Config) { c.Octaves = 0 }, terrain.ErrInvalidOctaves},
		{func(c *Config) { c.Passes = -1 }, terrain.ErrInvalidPasses},
	}

	for i, test := range tests {
		cfg := Default(ModeVoxel)
		test.edit(cfg)
		if err := cfg.Validate(); !errors.Is(err, test.err) {
			t.Errorf("test %d: expected %v got %v", i, test.err, err)
		}
	}

	cfg := Default(ModeVoxel)
	cfg.Mode = "plot"
	if err := cfg.Validate(); err == nil {
		t.Error("expected unknown mode error")
	}
}

func TestSource(t *testing.T) {
	source, err := Default(ModeVoxel).Source()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := source.(*noise.Generator); !ok {
		t.Errorf("expected *noise.Generator got %T", source)
	}

	source, _ = Default(ModeBiome).Source()
	if _, ok := source.(*noise.Layered); !ok {
		t.Errorf("expected *noise.Layered got %T", source)
	}
}
