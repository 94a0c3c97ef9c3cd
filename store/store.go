// SPDX-License-Identifier: MIT

package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/mat4/matrix"
)

// operation tags
const (
	opCreate = "store.Create"
	opOpen   = "store.Open"
	opGet    = "store.Get"
	opPut    = "store.Put"
	opAppend = "store.Append"
	opAll    = "store.All"
	opFlush  = "store.Flush"
	opClose  = "store.Close"
)

// Store is a fixed-capacity table of Matrix4 records backed by a
// memory-mapped file. All methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	file     *os.File
	data     mmap.MMap
	path     string
	length   int
	capacity int
	readOnly bool
	closed   bool
	log      *slog.Logger
}

// Create makes (or truncates) the file at path and sizes it for capacity
// records. The returned store is empty and writable.
// Implementation:
//   - Stage 1: reject capacity <= 0 or beyond the uint32 header field.
//   - Stage 2: open with O_TRUNC, grow to HeaderSize + capacity*RecordSize.
//   - Stage 3: map read-write and write the header.
func Create(path string, capacity int, opts ...Option) (*Store, error) {
	o := gatherOptions(opts...)
	if capacity <= 0 || uint64(capacity) > uint64(^uint32(0)) {
		return nil, storeErrorf(opCreate, path, fmt.Errorf("capacity %d: %w", capacity, ErrBadCapacity))
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, storeErrorf(opCreate, path, err)
	}
	h := header{version: Version, recSize: RecordSize, capacity: uint32(capacity)}
	if err = f.Truncate(h.fileSize()); err != nil {
		_ = f.Close()
		return nil, storeErrorf(opCreate, path, err)
	}
	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		_ = f.Close()
		return nil, storeErrorf(opCreate, path, err)
	}
	h.encode(data)

	s := &Store{file: f, data: data, path: path, capacity: capacity, log: o.logger}
	s.log.Debug("store created", "path", path, "capacity", capacity)

	return s, nil
}

// Open maps an existing store file. The header must match the file size
// exactly, otherwise Open fails with ErrBadHeader.
func Open(path string, opts ...Option) (*Store, error) {
	o := gatherOptions(opts...)

	flag, prot := os.O_RDWR, mmap.RDWR
	if o.readOnly {
		flag, prot = os.O_RDONLY, mmap.RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, storeErrorf(opOpen, path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, storeErrorf(opOpen, path, err)
	}
	// mmap rejects empty files; report them as a bad header instead
	if fi.Size() < HeaderSize {
		_ = f.Close()
		return nil, storeErrorf(opOpen, path, fmt.Errorf("file too small (%d bytes): %w", fi.Size(), ErrBadHeader))
	}

	data, err := mmap.Map(f, prot, 0)
	if err != nil {
		_ = f.Close()
		return nil, storeErrorf(opOpen, path, err)
	}
	h, err := decodeHeader(data, fi.Size())
	if err != nil {
		_ = data.Unmap()
		_ = f.Close()
		return nil, storeErrorf(opOpen, path, err)
	}

	s := &Store{
		file:     f,
		data:     data,
		path:     path,
		length:   int(h.length),
		capacity: int(h.capacity),
		readOnly: o.readOnly,
		log:      o.logger,
	}
	s.log.Debug("store opened", "path", path, "len", s.length, "cap", s.capacity, "readOnly", s.readOnly)

	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of records in use.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.length
}

// Cap returns the number of records the file was sized for.
func (s *Store) Cap() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.capacity
}

// record returns the mapped bytes of record i. Caller holds mu.
func (s *Store) record(i int) []byte {
	off := HeaderSize + i*RecordSize

	return s.data[off : off+RecordSize : off+RecordSize]
}

// Get decodes record i.
func (s *Store) Get(i int) (matrix.Matrix4, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m matrix.Matrix4
	if s.closed {
		return m, storeErrorf(opGet, s.path, ErrClosed)
	}
	if i < 0 || i >= s.length {
		return m, storeErrorf(opGet, s.path, fmt.Errorf("index %d, len %d: %w", i, s.length, ErrOutOfRange))
	}
	if err := m.UnmarshalBinary(s.record(i)); err != nil {
		return m, storeErrorf(opGet, s.path, fmt.Errorf("record %d: %w", i, err))
	}

	return m, nil
}

// Put overwrites record i, which must already be in use. Non-finite
// matrices are rejected with matrix.ErrNaNInf.
func (s *Store) Put(i int, m matrix.Matrix4) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writable(); err != nil {
		return storeErrorf(opPut, s.path, err)
	}
	if i < 0 || i >= s.length {
		return storeErrorf(opPut, s.path, fmt.Errorf("index %d, len %d: %w", i, s.length, ErrOutOfRange))
	}
	if !m.IsFinite() {
		return storeErrorf(opPut, s.path, matrix.ErrNaNInf)
	}
	if _, err := m.AppendBinary(s.record(i)[:0]); err != nil {
		return storeErrorf(opPut, s.path, err)
	}

	return nil
}

// Append stores m in the next free slot and returns its index.
func (s *Store) Append(m matrix.Matrix4) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writable(); err != nil {
		return -1, storeErrorf(opAppend, s.path, err)
	}
	if s.length == s.capacity {
		return -1, storeErrorf(opAppend, s.path, fmt.Errorf("cap %d: %w", s.capacity, ErrFull))
	}
	if !m.IsFinite() {
		return -1, storeErrorf(opAppend, s.path, matrix.ErrNaNInf)
	}
	i := s.length
	if _, err := m.AppendBinary(s.record(i)[:0]); err != nil {
		return -1, storeErrorf(opAppend, s.path, err)
	}
	s.length++
	binary.LittleEndian.PutUint32(s.data[offLength:], uint32(s.length))

	return i, nil
}

// All decodes every record in use, in index order.
func (s *Store) All() ([]matrix.Matrix4, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storeErrorf(opAll, s.path, ErrClosed)
	}
	out := make([]matrix.Matrix4, s.length)
	for i := range out {
		if err := out[i].UnmarshalBinary(s.record(i)); err != nil {
			return nil, storeErrorf(opAll, s.path, fmt.Errorf("record %d: %w", i, err))
		}
	}

	return out, nil
}

// Flush writes dirty pages back to the file. A no-op for read-only stores.
func (s *Store) Flush() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return storeErrorf(opFlush, s.path, ErrClosed)
	}
	if s.readOnly {
		return nil
	}
	if err := s.data.Flush(); err != nil {
		return storeErrorf(opFlush, s.path, err)
	}
	s.log.Debug("store flushed", "path", s.path, "len", s.length)

	return nil
}

// Close flushes, unmaps and closes the file. Calling Close twice returns
// ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storeErrorf(opClose, s.path, ErrClosed)
	}
	s.closed = true

	var errs []error
	if !s.readOnly {
		errs = append(errs, s.data.Flush())
	}
	errs = append(errs, s.data.Unmap(), s.file.Close())
	s.data, s.file = nil, nil
	if err := errors.Join(errs...); err != nil {
		return storeErrorf(opClose, s.path, err)
	}
	s.log.Debug("store closed", "path", s.path, "len", s.length)

	return nil
}

// writable reports why the store cannot be mutated, if it cannot. Caller
// holds mu.
func (s *Store) writable() error {
	switch {
	case s.closed:
		return ErrClosed
	case s.readOnly:
		return ErrReadOnly
	}

	return nil
}
