// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "errors"

// Rejected-input errors. Callers should match them with errors.Is, since
// they are usually wrapped with the offending value.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidZoom      = errors.New("invalid zoom")
	ErrInvalidOctaves   = errors.New("invalid octaves")
	ErrInvalidPasses    = errors.New("invalid smoothing passes")
	ErrHeightOutOfRange = errors.New("height out of range")
)
