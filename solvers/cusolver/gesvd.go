// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package cusolver

import (
	"github.com/pkg/errors"

	"github.com/gomlx/batchsolver/internal/batchloop"
	"github.com/gomlx/batchsolver/solvers"
	"github.com/gomlx/gopjrt/dtypes"
)

// GesvdBatched implements solvers.Backend.
//
// The switch below is the numeric-kind dispatch: exactly one vendor primitive
// per supported kind, with the real companion type (float32 for complex64,
// float64 for complex128) bound alongside, since singular values are always
// real. Kinds outside the closed set are rejected before any vendor call.
func (b *Backend) GesvdBatched(h solvers.Handle, jobU, jobVT solvers.SVDJob, m, n int,
	a, s, u, vt, work solvers.Buffer, lwork int, info solvers.Buffer, batch int) error {
	switch a.DType() {
	case dtypes.Float32:
		return batchloop.Gesvd(batchloop.GesvdFunc[float32, float32](b.lib.Sgesvd),
			h, jobU, jobVT, m, n,
			solvers.Flat[float32](a), solvers.Flat[float32](s),
			solvers.Flat[float32](u), solvers.Flat[float32](vt),
			solvers.Flat[float32](work), lwork, solvers.Flat[int32](info), batch)
	case dtypes.Float64:
		return batchloop.Gesvd(batchloop.GesvdFunc[float64, float64](b.lib.Dgesvd),
			h, jobU, jobVT, m, n,
			solvers.Flat[float64](a), solvers.Flat[float64](s),
			solvers.Flat[float64](u), solvers.Flat[float64](vt),
			solvers.Flat[float64](work), lwork, solvers.Flat[int32](info), batch)
	case dtypes.Complex64:
		return batchloop.Gesvd(batchloop.GesvdFunc[complex64, float32](b.lib.Cgesvd),
			h, jobU, jobVT, m, n,
			solvers.Flat[complex64](a), solvers.Flat[float32](s),
			solvers.Flat[complex64](u), solvers.Flat[complex64](vt),
			solvers.Flat[complex64](work), lwork, solvers.Flat[int32](info), batch)
	case dtypes.Complex128:
		return batchloop.Gesvd(batchloop.GesvdFunc[complex128, float64](b.lib.Zgesvd),
			h, jobU, jobVT, m, n,
			solvers.Flat[complex128](a), solvers.Flat[float64](s),
			solvers.Flat[complex128](u), solvers.Flat[complex128](vt),
			solvers.Flat[complex128](work), lwork, solvers.Flat[int32](info), batch)
	}
	return errors.Errorf("cusolver: gesvd does not support dtype %s", a.DType())
}
