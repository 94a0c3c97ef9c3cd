// SPDX-License-Identifier: MIT

package store

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/mat4/matrix"
)

// File format constants.
const (
	Magic      = "MAT4"
	Version    = 1
	HeaderSize = 32
	RecordSize = matrix.ByteSize
)

// header field offsets
const (
	offMagic    = 0
	offVersion  = 4
	offRecSize  = 8
	offLength   = 12
	offCapacity = 16
)

// header is the decoded fixed-size file prefix.
type header struct {
	version  uint32
	recSize  uint32
	length   uint32
	capacity uint32
}

func (h header) fileSize() int64 {
	return HeaderSize + int64(h.capacity)*int64(h.recSize)
}

// encode writes h into b[:HeaderSize], zeroing the reserved bytes.
func (h header) encode(b []byte) {
	copy(b[offMagic:offMagic+4], Magic)
	binary.LittleEndian.PutUint32(b[offVersion:], h.version)
	binary.LittleEndian.PutUint32(b[offRecSize:], h.recSize)
	binary.LittleEndian.PutUint32(b[offLength:], h.length)
	binary.LittleEndian.PutUint32(b[offCapacity:], h.capacity)
	clear(b[offCapacity+4 : HeaderSize])
}

// decodeHeader parses and validates the header of a file of size bytes.
func decodeHeader(b []byte, size int64) (header, error) {
	if len(b) < HeaderSize {
		return header{}, fmt.Errorf("file too small (%d bytes): %w", len(b), ErrBadHeader)
	}
	if string(b[offMagic:offMagic+4]) != Magic {
		return header{}, fmt.Errorf("magic %q: %w", b[offMagic:offMagic+4], ErrBadHeader)
	}

	h := header{
		version:  binary.LittleEndian.Uint32(b[offVersion:]),
		recSize:  binary.LittleEndian.Uint32(b[offRecSize:]),
		length:   binary.LittleEndian.Uint32(b[offLength:]),
		capacity: binary.LittleEndian.Uint32(b[offCapacity:]),
	}
	switch {
	case h.version != Version:
		return header{}, fmt.Errorf("version %d: %w", h.version, ErrBadHeader)
	case h.recSize != RecordSize:
		return header{}, fmt.Errorf("record size %d: %w", h.recSize, ErrBadHeader)
	case h.capacity == 0 || h.length > h.capacity:
		return header{}, fmt.Errorf("length %d, capacity %d: %w", h.length, h.capacity, ErrBadHeader)
	case h.fileSize() != size:
		return header{}, fmt.Errorf("file size %d, want %d: %w", size, h.fileSize(), ErrBadHeader)
	}

	return h, nil
}
