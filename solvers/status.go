// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package solvers

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status is a raw status code returned by a vendor primitive. Zero means
// success; any other value is defined by the vendor library and passed through
// this layer unchanged.
type Status int32

// Ok reports whether the status is the vendor success code.
func (s Status) Ok() bool { return s == 0 }

// BatchError reports the first batch element whose underlying single-matrix
// call failed. The loop stops there: elements after Index were never attempted,
// and their per-matrix info slots keep whatever the caller initialized them to.
type BatchError struct {
	Routine Routine
	Index   int
	Status  Status
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: batch element %d failed with vendor status %d", e.Routine, e.Index, e.Status)
}

// ErrNotImplemented indicates a routine is not provided by the active backend
// family. Check for it with errors.Is.
var ErrNotImplemented = errors.New("routine not implemented by this backend")
