// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import "errors"

// ErrNotExist is returned by ReadFile for a missing file.
var ErrNotExist = errors.New("file does not exist")

type Filesystem interface {
	WriteFile(filename string, data []byte) error
	ReadFile(filename string) ([]byte, error)
}
