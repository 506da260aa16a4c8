// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package snapshot dumps generated maps for debugging. Snapshots are a
// diagnostic aid and their format may change between versions.
package snapshot

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/SoftbearStudios/terrainlab/cloud/db"
	"github.com/SoftbearStudios/terrainlab/cloud/fs"
	"github.com/SoftbearStudios/terrainlab/terrain"
	"github.com/SoftbearStudios/terrainlab/terrain/compressed"
	"github.com/SoftbearStudios/terrainlab/terrain/voxel"
	"github.com/finnbear/moderation"
	"github.com/gofrs/uuid"
)

const maxLabelLength = 64

// Lifetime is how long an index entry is kept before the database expires it.
const Lifetime = 30 * 24 * time.Hour

var (
	ErrInappropriateLabel = errors.New("inappropriate label")
	ErrLabelTooLong       = errors.New("label too long")
	ErrNoIndex            = errors.New("no snapshot index")
)

// Params are the inputs a map was generated from.
type Params struct {
	Mode    string  `json:"mode"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Depth   int     `json:"depth,omitempty"`
	Zoom    float64 `json:"zoom,omitempty"`
	Octaves int     `json:"octaves,omitempty"`
	Seed    int64   `json:"seed"`
	Passes  int     `json:"passes,omitempty"`
}

// Snapshot is a compressed, lossy copy of a generated field and optionally
// the column heights of its voxel volume.
type Snapshot struct {
	ID      string `json:"id"`
	Label   string `json:"label,omitempty"`
	Created int64  `json:"created"`
	Params  Params `json:"params"`
	// Lo and Hi are the field bounds that Heights is quantized between.
	Lo      float64 `json:"lo"`
	Hi      float64 `json:"hi"`
	Heights []byte  `json:"heights"`
	// Columns is only present when the depth fits in a byte.
	Columns []byte `json:"columns,omitempty"`
}

// New snapshots grid and, if not nil, voxels.
func New(params Params, label string, grid *terrain.Grid, voxels *voxel.Grid) (*Snapshot, error) {
	if err := CheckLabel(label); err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	raw, lo, hi := compressed.Quantize(grid)
	snap := &Snapshot{
		ID:      id.String(),
		Label:   label,
		Created: time.Now().Unix(),
		Params:  params,
		Lo:      lo,
		Hi:      hi,
		Heights: compressed.Compress(raw),
	}
	snap.Params.Width = grid.Width
	snap.Params.Height = grid.Height

	if voxels != nil && voxels.Depth <= math.MaxUint8 {
		heights := voxels.Heights()
		columns := make([]byte, len(heights))
		for i, h := range heights {
			columns[i] = byte(h)
		}
		snap.Params.Depth = voxels.Depth
		snap.Columns = compressed.Compress(columns)
	}

	return snap, nil
}

// CheckLabel rejects labels that shouldn't be published.
func CheckLabel(label string) error {
	if len(label) > maxLabelLength {
		return fmt.Errorf("%w: %d bytes", ErrLabelTooLong, len(label))
	}
	if moderation.Scan(label).Is(moderation.Inappropriate) {
		return ErrInappropriateLabel
	}
	return nil
}

// Grid decodes the stored field.
func (snap *Snapshot) Grid() (*terrain.Grid, error) {
	raw, err := compressed.Decompress(snap.Heights, snap.Params.Width*snap.Params.Height)
	if err != nil {
		return nil, err
	}
	return compressed.Dequantize(raw, snap.Params.Width, snap.Params.Height, snap.Lo, snap.Hi)
}

// ColumnHeights decodes the stored voxel column heights, or returns nil if
// there are none.
func (snap *Snapshot) ColumnHeights() ([]int, error) {
	if snap.Columns == nil {
		return nil, nil
	}
	raw, err := compressed.Decompress(snap.Columns, snap.Params.Width*snap.Params.Height)
	if err != nil {
		return nil, err
	}
	heights := make([]int, len(raw))
	for i, b := range raw {
		heights[i] = int(b)
	}
	return heights, nil
}

func (snap *Snapshot) String() string {
	return fmt.Sprintf("snapshot %s %q %s %dx%d seed %d [%.2f, %.2f] %d bytes",
		snap.ID, snap.Label, snap.Params.Mode, snap.Params.Width, snap.Params.Height,
		snap.Params.Seed, snap.Lo, snap.Hi, len(snap.Heights)+len(snap.Columns))
}

// Filename is where a snapshot with id is stored.
func Filename(id string) string {
	return id + ".json"
}

// Save writes snap to files and, if index isn't nil, records it there.
func Save(files fs.Filesystem, index db.Database, snap *Snapshot) error {
	buf, err := JSON.Marshal(snap)
	if err != nil {
		return err
	}
	if err = files.WriteFile(Filename(snap.ID), buf); err != nil {
		return err
	}
	if index == nil {
		return nil
	}

	return index.PutSnapshot(db.Snapshot{
		Mode:    snap.Params.Mode,
		ID:      snap.ID,
		Label:   snap.Label,
		File:    Filename(snap.ID),
		Seed:    snap.Params.Seed,
		Width:   snap.Params.Width,
		Height:  snap.Params.Height,
		Depth:   snap.Params.Depth,
		Zoom:    snap.Params.Zoom,
		Octaves: snap.Params.Octaves,
		Created: snap.Created,
		TTL:     snap.Created + int64(Lifetime/time.Second),
	})
}

// List returns indexed snapshots, newest first. An empty mode lists all.
func List(index db.Database, mode string) ([]db.Snapshot, error) {
	if index == nil {
		return nil, ErrNoIndex
	}

	var (
		snapshots []db.Snapshot
		err       error
	)
	if mode == "" {
		snapshots, err = index.ReadSnapshots()
	} else {
		snapshots, err = index.ReadSnapshotsByMode(mode)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].Created > snapshots[j].Created
	})
	return snapshots, nil
}

// Load reads the snapshot with id from files.
func Load(files fs.Filesystem, id string) (*Snapshot, error) {
	buf, err := files.ReadFile(Filename(id))
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err = JSON.Unmarshal(buf, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
