// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package snapshot

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/SoftbearStudios/terrainlab/terrain"
)

// AppendLog appends one CSV record to filename, creating it if needed.
func AppendLog(filename string, fields []interface{}) (err error) {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)

	var fieldStrings []string

	for _, field := range fields {
		var fieldString string

		switch v := field.(type) {
		case float32, float64:
			fieldString = fmt.Sprintf("%.2f", v)
		default:
			fieldString = fmt.Sprint(v)
		}

		fieldStrings = append(fieldStrings, fieldString)
	}

	if err = w.Write(fieldStrings); err != nil {
		return
	}

	w.Flush()
	return w.Error()
}

// LogRun appends a record describing one generated field.
func LogRun(filename string, params Params, grid *terrain.Grid) error {
	lo, hi := grid.Bounds()
	return AppendLog(filename, []interface{}{
		time.Now().UTC().Format(time.RFC3339),
		params.Mode,
		params.Seed,
		grid.Width,
		grid.Height,
		params.Zoom,
		params.Octaves,
		lo,
		hi,
	})
}
