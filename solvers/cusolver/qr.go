// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package cusolver

import (
	"github.com/pkg/errors"

	"github.com/gomlx/batchsolver/internal/batchloop"
	"github.com/gomlx/batchsolver/solvers"
	"github.com/gomlx/gopjrt/dtypes"
)

// GeqrfBatched implements solvers.Backend.
func (b *Backend) GeqrfBatched(h solvers.Handle, m, n int, a solvers.Buffer, lda int,
	tau, work solvers.Buffer, lwork int, info solvers.Buffer, batch int) error {
	switch a.DType() {
	case dtypes.Float32:
		return batchloop.Geqrf(batchloop.GeqrfFunc[float32](b.lib.Sgeqrf),
			h, m, n, solvers.Flat[float32](a), lda, solvers.Flat[float32](tau),
			solvers.Flat[float32](work), lwork, solvers.Flat[int32](info), batch)
	case dtypes.Float64:
		return batchloop.Geqrf(batchloop.GeqrfFunc[float64](b.lib.Dgeqrf),
			h, m, n, solvers.Flat[float64](a), lda, solvers.Flat[float64](tau),
			solvers.Flat[float64](work), lwork, solvers.Flat[int32](info), batch)
	case dtypes.Complex64:
		return batchloop.Geqrf(batchloop.GeqrfFunc[complex64](b.lib.Cgeqrf),
			h, m, n, solvers.Flat[complex64](a), lda, solvers.Flat[complex64](tau),
			solvers.Flat[complex64](work), lwork, solvers.Flat[int32](info), batch)
	case dtypes.Complex128:
		return batchloop.Geqrf(batchloop.GeqrfFunc[complex128](b.lib.Zgeqrf),
			h, m, n, solvers.Flat[complex128](a), lda, solvers.Flat[complex128](tau),
			solvers.Flat[complex128](work), lwork, solvers.Flat[int32](info), batch)
	}
	return errors.Errorf("cusolver: geqrf does not support dtype %s", a.DType())
}

// OrgqrBatched implements solvers.Backend. The complex kinds dispatch to the
// ungqr vendor primitives, their unitary counterpart.
func (b *Backend) OrgqrBatched(h solvers.Handle, m, n, k int, a solvers.Buffer, lda int,
	tau, work solvers.Buffer, lwork int, info solvers.Buffer, batch int, originN int) error {
	switch a.DType() {
	case dtypes.Float32:
		return batchloop.Orgqr(batchloop.OrgqrFunc[float32](b.lib.Sorgqr),
			h, m, n, k, solvers.Flat[float32](a), lda, solvers.Flat[float32](tau),
			solvers.Flat[float32](work), lwork, solvers.Flat[int32](info), batch, originN)
	case dtypes.Float64:
		return batchloop.Orgqr(batchloop.OrgqrFunc[float64](b.lib.Dorgqr),
			h, m, n, k, solvers.Flat[float64](a), lda, solvers.Flat[float64](tau),
			solvers.Flat[float64](work), lwork, solvers.Flat[int32](info), batch, originN)
	case dtypes.Complex64:
		return batchloop.Orgqr(batchloop.OrgqrFunc[complex64](b.lib.Cungqr),
			h, m, n, k, solvers.Flat[complex64](a), lda, solvers.Flat[complex64](tau),
			solvers.Flat[complex64](work), lwork, solvers.Flat[int32](info), batch, originN)
	case dtypes.Complex128:
		return batchloop.Orgqr(batchloop.OrgqrFunc[complex128](b.lib.Zungqr),
			h, m, n, k, solvers.Flat[complex128](a), lda, solvers.Flat[complex128](tau),
			solvers.Flat[complex128](work), lwork, solvers.Flat[int32](info), batch, originN)
	}
	return errors.Errorf("cusolver: orgqr does not support dtype %s", a.DType())
}
