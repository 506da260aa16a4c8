// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestLocalFilesystem(t *testing.T) {
	local := NewLocalFilesystem(filepath.Join(t.TempDir(), "snapshots"))

	data := []byte(`{"seed":42}`)
	if err := local.WriteFile("a.json", data); err != nil {
		t.Fatal(err)
	}

	read, err := local.ReadFile("a.json")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, read) {
		t.Errorf("expected %s got %s", data, read)
	}

	if _, err := local.ReadFile("missing.json"); !errors.Is(err, ErrNotExist) {
		t.Errorf("expected %v got %v", ErrNotExist, err)
	}

	for _, bad := range []string{"", "../escape.json", "dir/file.json"} {
		if err := local.WriteFile(bad, data); err == nil {
			t.Errorf("expected error writing %q", bad)
		}
	}
}
