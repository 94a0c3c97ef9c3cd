// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
)

// ItemError reports the failure of a single item of a batch.
type ItemError struct {
	Index int   // position in the input slice
	Err   error // underlying cause, e.g. a *matrix.SingularError
}

// Error implements error.
func (e *ItemError) Error() string {
	return fmt.Sprintf("batch: item %d: %v", e.Index, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *ItemError) Unwrap() error { return e.Err }

// ItemErrors extracts the per-item failures from an error returned by Map or
// its wrappers, in index order. It returns nil for a nil error and for errors
// that carry no item failures, such as a context cancellation.
func ItemErrors(err error) []*ItemError {
	if err == nil {
		return nil
	}
	var errs []error
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		errs = j.Unwrap()
	} else {
		errs = []error{err}
	}

	var out []*ItemError
	for _, e := range errs {
		var ie *ItemError
		if errors.As(e, &ie) {
			out = append(out, ie)
		}
	}

	return out
}
