// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

type Database interface {
	PutSnapshot(snapshot Snapshot) error
	ReadSnapshots() (snapshots []Snapshot, err error)
	ReadSnapshotsByMode(mode string) (snapshots []Snapshot, err error)
}
