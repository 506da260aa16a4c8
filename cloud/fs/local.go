// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// LocalFilesystem stores files in a directory, creating it on first write.
type LocalFilesystem struct {
	dir string
}

func NewLocalFilesystem(dir string) *LocalFilesystem {
	return &LocalFilesystem{dir: dir}
}

func (local *LocalFilesystem) path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	return filepath.Join(local.dir, filename), nil
}

func (local *LocalFilesystem) WriteFile(filename string, data []byte) error {
	path, err := local.path(filename)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(local.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (local *LocalFilesystem) ReadFile(filename string) ([]byte, error) {
	path, err := local.path(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotExist, filename)
	}
	return data, err
}
