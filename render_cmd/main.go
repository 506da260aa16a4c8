// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command render_cmd generates a map and writes it as PNG images: one per
// level in voxel mode, otherwise a single image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/SoftbearStudios/terrainlab/cloud"
	"github.com/SoftbearStudios/terrainlab/config"
	"github.com/SoftbearStudios/terrainlab/pipeline"
	"github.com/SoftbearStudios/terrainlab/snapshot"
	"github.com/SoftbearStudios/terrainlab/terrain/render"
)

func main() {
	var (
		configFile string
		cpuProfile string
		mode       string
	)

	flag.StringVar(&mode, "mode", config.ModeVoxel, "voxel, biome or heights")
	flag.StringVar(&configFile, "config", "", "JSON config `file`")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")

	// Defaults depend on the mode, so they're applied after parsing.
	cfg := &config.Config{}
	flag.IntVar(&cfg.Width, "width", 0, "map width in cells")
	flag.IntVar(&cfg.Height, "height", 0, "map height in cells")
	flag.IntVar(&cfg.Depth, "depth", 0, "voxel levels")
	flag.Float64Var(&cfg.Zoom, "zoom", 0, "noise zoom, larger is smoother")
	flag.IntVar(&cfg.Octaves, "octaves", 0, "noise octaves")
	flag.Int64Var(&cfg.Seed, "seed", 0, "noise seed")
	flag.IntVar(&cfg.Passes, "passes", 0, "smoothing passes")
	flag.IntVar(&cfg.TileSize, "tile", 0, "pixels per cell")
	flag.StringVar(&cfg.Out, "out", "", "output directory")
	flag.BoolVar(&cfg.Snapshot, "snapshot", false, "dump a debug snapshot and read it back")
	flag.StringVar(&cfg.Label, "label", "", "snapshot label")
	flag.StringVar(&cfg.RunLog, "run-log", "", "CSV `file` to append a line per run to")
	flag.StringVar(&cfg.Cloud.Stage, "stage", "", "AWS stage; empty stores files locally")
	flag.StringVar(&cfg.Cloud.Region, "region", "", "AWS region")
	flag.StringVar(&cfg.Cloud.Dir, "snapshot-dir", "", "local snapshot directory")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	base := config.Default(mode)
	if configFile != "" {
		var err error
		if base, err = config.Load(configFile); err != nil {
			log.Fatal("could not load config: ", err)
		}
		if explicit["mode"] {
			base.Mode = mode
		}
	}
	// The mode flag is not bound to cfg, so it always comes from base.
	delete(explicit, "mode")
	config.Merge(cfg, base, explicit)

	if err := withProfile(cpuProfile, func() error { return run(cfg) }); err != nil {
		log.Fatal(err)
	}
}

// withProfile runs fn, writing a CPU profile to path unless it is empty.
// The profile is complete even if fn fails.
func withProfile(path string, fn func() error) error {
	if path == "" {
		return fn()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	defer f.Close()

	if err = pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	defer pprof.StopCPUProfile()

	return fn()
}

func run(cfg *config.Config) error {
	result, err := pipeline.Run(cfg)
	if err != nil {
		return err
	}
	log.Println(result.Grid)

	c, err := cloud.New(cfg.Cloud)
	if err != nil {
		return err
	}

	if err = writeImages(result, c); err != nil {
		return err
	}

	if cfg.RunLog != "" {
		if err = snapshot.LogRun(cfg.RunLog, result.Params(), result.Grid); err != nil {
			return err
		}
	}

	if cfg.Snapshot {
		return dumpSnapshot(result, c)
	}
	return nil
}

// writeImages stores PNGs in the output directory, or the cloud when a
// stage is set.
func writeImages(result *pipeline.Result, c *cloud.Cloud) error {
	if result.Voxels != nil {
		log.Println(result.Voxels)
	}

	images, err := result.Images(result.Context())
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s-%d", result.Config.Mode, result.Config.Seed)
	for z, img := range images {
		buf, err := render.EncodePNG(img)
		if err != nil {
			return err
		}

		filename := name + ".png"
		if result.Voxels != nil {
			filename = fmt.Sprintf("%s-z%03d.png", name, z)
		}

		if c.Stage != "" {
			err = c.Filesystem.WriteFile(filename, buf)
		} else {
			err = writeFile(filepath.Join(result.Config.Out, filename), buf)
		}
		if err != nil {
			return err
		}
	}

	log.Printf("wrote %d image(s) to %s", len(images), c)
	return nil
}

func writeFile(path string, buf []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// dumpSnapshot saves a snapshot, reads it back and logs what came back.
func dumpSnapshot(result *pipeline.Result, c *cloud.Cloud) error {
	snap, err := snapshot.New(result.Params(), result.Config.Label, result.Grid, result.Voxels)
	if err != nil {
		return err
	}
	if err = snapshot.Save(c.Filesystem, c.Database, snap); err != nil {
		return err
	}

	loaded, err := snapshot.Load(c.Filesystem, snap.ID)
	if err != nil {
		return err
	}
	grid, err := loaded.Grid()
	if err != nil {
		return err
	}

	columns, err := loaded.ColumnHeights()
	if err != nil {
		return err
	}

	log.Println(loaded)
	log.Println("decoded", grid, "with", len(columns), "voxel columns")
	return nil
}
