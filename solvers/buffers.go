// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package solvers

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// Buffer is a dtype-tagged view of a flat, driver-owned array holding a batch
// of same-shaped matrices (or vectors, or per-matrix info slots) back to back.
//
// This layer never allocates, frees or resizes one -- it only walks it with a
// Cursor. The zero Buffer stands for "no buffer", used for outputs a job mode
// does not produce.
type Buffer struct {
	dtype dtypes.DType

	// flat is always a []T with dtypes.FromGenericsType[T]() == dtype, or nil.
	flat any
}

// NewBuffer wraps a driver-owned slice into a Buffer. Zero-copy: the Buffer
// aliases data.
func NewBuffer[T dtypes.Supported](data []T) Buffer {
	return Buffer{dtype: dtypes.FromGenericsType[T](), flat: data}
}

// DType of the elements of the buffer. The zero Buffer reports InvalidDType.
func (b Buffer) DType() dtypes.DType { return b.dtype }

// IsNil reports whether b is the zero Buffer.
func (b Buffer) IsNil() bool { return b.flat == nil }

// Flat returns the underlying []T of b, or nil for the zero Buffer. It panics
// if T does not match the type the buffer was created with: that is a bug in
// the dispatching backend, not a data error.
func Flat[T dtypes.Supported](b Buffer) []T {
	if b.flat == nil {
		return nil
	}
	data, ok := b.flat.([]T)
	if !ok {
		var t T
		exceptions.Panicf("solvers.Flat[%T] called on a buffer holding %s", t, b.dtype)
	}
	return data
}

// Cursor is a mutable position over a flat batch buffer, advanced by a fixed
// per-element stride after each successful single-matrix call. It replaces the
// raw pointer arithmetic of the vendor C APIs with a checked re-slice.
//
// Its lifetime is one batch-loop invocation.
type Cursor[T any] struct {
	data   []T
	stride int
	off    int
}

// NewCursor builds a cursor over data, validating up front that data can hold
// batch elements of the given stride, so that each later Advance is already
// known to be in bounds. A zero stride pins the cursor in place (used for
// outputs a job mode does not produce, and data may then be nil).
func NewCursor[T any](data []T, stride, batch int) (*Cursor[T], error) {
	if stride < 0 || batch < 0 {
		return nil, errors.Errorf("invalid cursor geometry: stride=%d, batch=%d", stride, batch)
	}
	if need := stride * batch; len(data) < need {
		return nil, errors.Errorf("buffer holds %d elements, a batch of %d with stride %d needs %d",
			len(data), batch, stride, need)
	}
	return &Cursor[T]{data: data, stride: stride}, nil
}

// Window returns the slice from the current position to the end of the buffer.
// This is what gets handed to the vendor primitive for the current element.
func (c *Cursor[T]) Window() []T { return c.data[c.off:] }

// Advance moves the cursor to the next batch element.
func (c *Cursor[T]) Advance() {
	c.off += c.stride
	if c.off > len(c.data) {
		exceptions.Panicf("cursor advanced to offset %d past its buffer of %d elements -- capacity was validated at construction, this is a bug",
			c.off, len(c.data))
	}
}

// Offset returns the current position, in elements from the start of the buffer.
func (c *Cursor[T]) Offset() int { return c.off }
