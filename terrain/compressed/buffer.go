// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package compressed run length encodes byte quantized fields for snapshots.
package compressed

import (
	"errors"
	"io"
)

// ErrCorrupt is returned when encoded data has a dangling value byte.
var ErrCorrupt = errors.New("corrupt run length data")

const maxRun = 256

// Buffer uses run length encoding.
// Each run is two bytes: the value followed by the count - 1.
type Buffer struct {
	buf []byte
	off int // Read position, in bytes
	rep int // Bytes of the current run already read
}

func (buffer *Buffer) Reset(buf []byte) {
	buffer.buf = buf
	buffer.off = 0
	buffer.rep = 0
}

func (buffer *Buffer) writeByte(b byte) {
	buf := buffer.buf
	end := len(buf) - 2

	if end >= buffer.off && buf[end] == b && int(buf[end+1]) < maxRun-1 {
		// Add 1 to count
		buf[end+1]++
	} else {
		// Start new run
		buf = append(buf, b, 0)
	}

	buffer.buf = buf
}

func (buffer *Buffer) Write(buf []byte) (int, error) {
	for _, b := range buf {
		buffer.writeByte(b)
	}
	return len(buf), nil
}

func (buffer *Buffer) Read(buf []byte) (int, error) {
	i := 0

	for i < len(buf) && buffer.off < len(buffer.buf) {
		if buffer.off+1 >= len(buffer.buf) {
			return i, ErrCorrupt
		}

		value := buffer.buf[buffer.off]
		count := int(buffer.buf[buffer.off+1]) + 1

		for ; buffer.rep < count && i < len(buf); buffer.rep++ {
			buf[i] = value
			i++
		}

		if buffer.rep == count {
			buffer.off += 2
			buffer.rep = 0
		}
	}

	if i == 0 && len(buf) > 0 {
		return 0, io.EOF
	}

	return i, nil
}

// Grow makes space for about n elements
func (buffer *Buffer) Grow(n int) {
	compressed := n / 2
	if old := buffer.Buffer(); cap(old)-len(old) < compressed {
		buf := make([]byte, len(old), len(old)+compressed)
		copy(buf, old)
		buffer.buf = buf
		buffer.off = 0
	}
}

// Buffer returns the unread encoded bytes.
func (buffer *Buffer) Buffer() []byte {
	return buffer.buf[buffer.off:]
}

// Compress encodes raw into a new slice.
func Compress(raw []byte) []byte {
	var buffer Buffer
	buffer.Grow(len(raw))
	_, _ = buffer.Write(raw)
	return buffer.Buffer()
}

// Decompress decodes data, which must hold exactly length bytes.
func Decompress(data []byte, length int) ([]byte, error) {
	var buffer Buffer
	buffer.Reset(data)

	raw := make([]byte, length)
	n, err := io.ReadFull(&buffer, raw)
	if err != nil {
		return nil, err
	}
	if n != length || len(buffer.Buffer()) > 0 {
		return nil, ErrCorrupt
	}
	return raw, nil
}
