// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package batchloop

import (
	"github.com/pkg/errors"

	"github.com/gomlx/batchsolver/solvers"
)

// Gesvd runs fn over batch consecutive m×n matrices stored back to back in a.
//
// Leading dimensions are fixed by the driver contract of this layer: lda=m,
// ldu=m, ldvt=n; rwork is always nil. Per successful iteration the cursors
// advance by m·n (a), min(m,n) (s), the jobU/jobVT vector strides (u, vt) and
// 1 (info); work is handed unchanged to every call.
//
// On the first non-zero status the loop stops and returns a
// *solvers.BatchError with that element's index and raw status; the remaining
// elements and their info slots are left untouched.
func Gesvd[T solvers.Element, R solvers.Real](fn GesvdFunc[T, R], h solvers.Handle,
	jobU, jobVT solvers.SVDJob, m, n int, a []T, s []R, u, vt []T,
	work []T, lwork int, info []int32, batch int) error {
	const routine = solvers.RoutineGesvd
	if !jobU.Valid() || !jobVT.Valid() {
		return errors.Errorf("%s: invalid job codes jobU=%q, jobVT=%q", routine, jobU, jobVT)
	}
	if err := checkShape(routine, m, n, batch); err != nil {
		return err
	}
	if err := checkWorkspace(routine, len(work), lwork); err != nil {
		return err
	}

	k := min(m, n)
	aCur, err := solvers.NewCursor(a, m*n, batch)
	if err != nil {
		return errors.WithMessagef(err, "%s: input matrices", routine)
	}
	sCur, err := solvers.NewCursor(s, k, batch)
	if err != nil {
		return errors.WithMessagef(err, "%s: singular values", routine)
	}
	uCur, err := solvers.NewCursor(u, jobU.VectorStride(m, k), batch)
	if err != nil {
		return errors.WithMessagef(err, "%s: left singular vectors (jobU=%q)", routine, jobU)
	}
	vtCur, err := solvers.NewCursor(vt, jobVT.VectorStride(n, k), batch)
	if err != nil {
		return errors.WithMessagef(err, "%s: right singular vectors (jobVT=%q)", routine, jobVT)
	}
	infoCur, err := solvers.NewCursor(info, 1, batch)
	if err != nil {
		return errors.WithMessagef(err, "%s: info slots", routine)
	}

	for i := 0; i < batch; i++ {
		status := fn(h, byte(jobU), byte(jobVT), m, n,
			aCur.Window(), m, sCur.Window(), uCur.Window(), m, vtCur.Window(), n,
			work, lwork, nil, infoCur.Window())
		if !status.Ok() {
			return &solvers.BatchError{Routine: routine, Index: i, Status: status}
		}
		aCur.Advance()
		sCur.Advance()
		uCur.Advance()
		vtCur.Advance()
		infoCur.Advance()
	}
	return nil
}
