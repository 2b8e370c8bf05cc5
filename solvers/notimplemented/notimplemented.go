// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package notimplemented implements a solvers.Backend whose every routine
// returns solvers.ErrNotImplemented.
//
// It is the no-vendor build stub, and can be embedded to bootstrap a partial
// backend implementation: embed Backend and override the routines you support.
package notimplemented

import (
	"github.com/pkg/errors"

	"github.com/gomlx/batchsolver/solvers"
	"github.com/gomlx/gopjrt/dtypes"
)

// Backend is a dummy backend that can be embedded to create partial or mock backends.
type Backend struct{}

var _ solvers.Backend = &Backend{}

// Name returns the short name of the backend.
func (b *Backend) Name() string {
	return "notimplemented"
}

// String returns the same as Name.
func (b *Backend) String() string {
	return b.Name()
}

// Description is a longer description of the Backend.
func (b *Backend) Description() string {
	return "Not Implemented Backend (stub for builds without a vendor solver)"
}

// Capabilities returns empty capabilities.
func (b *Backend) Capabilities() solvers.Capabilities {
	return solvers.Capabilities{
		Routines: make(map[solvers.Routine]bool),
		DTypes:   make(map[dtypes.DType]bool),
	}
}

// GesvdBatched implements solvers.Backend.
func (b *Backend) GesvdBatched(h solvers.Handle, jobU, jobVT solvers.SVDJob, m, n int,
	a, s, u, vt, work solvers.Buffer, lwork int, info solvers.Buffer, batch int) error {
	return errors.Wrapf(solvers.ErrNotImplemented, "gesvd on backend %q", b.Name())
}

// GeqrfBatched implements solvers.Backend.
func (b *Backend) GeqrfBatched(h solvers.Handle, m, n int, a solvers.Buffer, lda int,
	tau, work solvers.Buffer, lwork int, info solvers.Buffer, batch int) error {
	return errors.Wrapf(solvers.ErrNotImplemented, "geqrf on backend %q", b.Name())
}

// OrgqrBatched implements solvers.Backend.
func (b *Backend) OrgqrBatched(h solvers.Handle, m, n, k int, a solvers.Buffer, lda int,
	tau, work solvers.Buffer, lwork int, info solvers.Buffer, batch int, originN int) error {
	return errors.Wrapf(solvers.ErrNotImplemented, "orgqr on backend %q", b.Name())
}

// Finalize does nothing.
func (b *Backend) Finalize() {}
