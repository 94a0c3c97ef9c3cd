// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by every method once Close has run.
	ErrClosed = errors.New("store: closed")

	// ErrFull is returned by Append when length == capacity.
	ErrFull = errors.New("store: capacity exhausted")

	// ErrBadHeader signals a file whose header does not describe a valid store.
	ErrBadHeader = errors.New("store: invalid header")

	// ErrOutOfRange indicates a record index outside [0, Len()).
	ErrOutOfRange = errors.New("store: record index out of range")

	// ErrReadOnly is returned by mutating methods on a store opened WithReadOnly.
	ErrReadOnly = errors.New("store: read-only")

	// ErrBadCapacity is returned by Create for a non-positive capacity.
	ErrBadCapacity = errors.New("store: capacity must be > 0")
)

// storeErrorf wraps err with an operation tag and the store path.
func storeErrorf(op, path string, err error) error {
	return fmt.Errorf("%s %s: %w", op, path, err)
}
