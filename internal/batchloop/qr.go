// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package batchloop

import (
	"github.com/pkg/errors"

	"github.com/gomlx/batchsolver/solvers"
)

// Geqrf runs fn over batch consecutive m×n matrices factored in place in a.
// Per successful iteration the cursors advance by m·n (a), min(m,n) (tau) and
// 1 (info); work is handed unchanged to every call. Same stop-on-first-failure
// policy as Gesvd.
//
// Vendor families that compute workspace and info internally (rocSOLVER)
// simply ignore those arguments inside fn; the info cursor still advances so
// the external contract stays uniform across families.
func Geqrf[T solvers.Element](fn GeqrfFunc[T], h solvers.Handle, m, n int,
	a []T, lda int, tau []T, work []T, lwork int, info []int32, batch int) error {
	const routine = solvers.RoutineGeqrf
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
	tauCur, err := solvers.NewCursor(tau, k, batch)
	if err != nil {
		return errors.WithMessagef(err, "%s: tau scalars", routine)
	}
	infoCur, err := solvers.NewCursor(info, 1, batch)
	if err != nil {
		return errors.WithMessagef(err, "%s: info slots", routine)
	}

	for i := 0; i < batch; i++ {
		status := fn(h, m, n, aCur.Window(), lda, tauCur.Window(), work, lwork, infoCur.Window())
		if !status.Ok() {
			return &solvers.BatchError{Routine: routine, Index: i, Status: status}
		}
		aCur.Advance()
		tauCur.Advance()
		infoCur.Advance()
	}
	return nil
}

// Orgqr runs fn over batch factored matrices in a, rebuilding each explicit Q
// in place from k elementary reflectors.
//
// The matrix cursor advances by m·originN, NOT m·n: orgqr operates in place on
// a buffer whose storage width was fixed by the earlier factorization, which
// may have been allocated wider than the logical n. tau advances by k and info
// by 1; work is reused. Same stop-on-first-failure policy as Gesvd.
func Orgqr[T solvers.Element](fn OrgqrFunc[T], h solvers.Handle, m, n, k int,
	a []T, lda int, tau []T, work []T, lwork int, info []int32, batch int, originN int) error {
	const routine = solvers.RoutineOrgqr
	if err := checkShape(routine, m, n, batch); err != nil {
		return err
	}
	if k < 0 || k > min(m, n) {
		return errors.Errorf("%s: reflector count k=%d out of range [0, min(m=%d, n=%d)]", routine, k, m, n)
	}
	if originN < n {
		return errors.Errorf("%s: storage width originN=%d smaller than logical n=%d", routine, originN, n)
	}
	if err := checkWorkspace(routine, len(work), lwork); err != nil {
		return err
	}

	aCur, err := solvers.NewCursor(a, m*originN, batch)
	if err != nil {
		return errors.WithMessagef(err, "%s: factored matrices", routine)
	}
	tauCur, err := solvers.NewCursor(tau, k, batch)
	if err != nil {
		return errors.WithMessagef(err, "%s: tau scalars", routine)
	}
	infoCur, err := solvers.NewCursor(info, 1, batch)
	if err != nil {
		return errors.WithMessagef(err, "%s: info slots", routine)
	}

	for i := 0; i < batch; i++ {
		status := fn(h, m, n, k, aCur.Window(), lda, tauCur.Window(), work, lwork, infoCur.Window())
		if !status.Ok() {
			return &solvers.BatchError{Routine: routine, Index: i, Status: status}
		}
		aCur.Advance()
		tauCur.Advance()
		infoCur.Advance()
	}
	return nil
}
