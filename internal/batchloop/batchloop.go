// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package batchloop implements the serial batch loops shared by the solver
// backends: each adapts a single-matrix vendor primitive to a batch of
// contiguous matrices by issuing one call per element, advancing the output
// cursors by their per-element strides, and stopping at the first failure.
//
// The loops are generic over the numeric kind and take the primitive as a
// function value, so they do not depend on which backend family is active.
//
// Two preconditions are owned by the driver and only documented here:
//   - the Handle is already bound to the intended execution stream;
//   - the workspace is sized for ONE matrix. It is reused by every iteration
//     (never advanced), which is also why the loop is strictly serial.
package batchloop

import (
	"github.com/pkg/errors"

	"github.com/gomlx/batchsolver/solvers"
)

// GesvdFunc is the single-matrix SVD primitive for element type T with real
// companion type R. The slices are windows starting at the current matrix.
type GesvdFunc[T solvers.Element, R solvers.Real] func(h solvers.Handle, jobU, jobVT byte,
	m, n int, a []T, lda int, s []R, u []T, ldu int, vt []T, ldvt int,
	work []T, lwork int, rwork []R, info []int32) solvers.Status

// GeqrfFunc is the single-matrix QR-factorization primitive for element type T.
type GeqrfFunc[T solvers.Element] func(h solvers.Handle, m, n int, a []T, lda int,
	tau []T, work []T, lwork int, info []int32) solvers.Status

// OrgqrFunc is the single-matrix explicit-Q primitive for element type T.
type OrgqrFunc[T solvers.Element] func(h solvers.Handle, m, n, k int, a []T, lda int,
	tau []T, work []T, lwork int, info []int32) solvers.Status

func checkShape(routine solvers.Routine, m, n, batch int) error {
	if m < 0 || n < 0 {
		return errors.Errorf("%s: negative dimensions m=%d, n=%d", routine, m, n)
	}
	if batch < 0 {
		return errors.Errorf("%s: negative batch size %d", routine, batch)
	}
	return nil
}

func checkWorkspace(routine solvers.Routine, work int, lwork int) error {
	if lwork < 0 {
		return errors.Errorf("%s: negative workspace size %d", routine, lwork)
	}
	if work < lwork {
		return errors.Errorf("%s: workspace holds %d elements, lwork says %d -- it must be sized for one matrix",
			routine, work, lwork)
	}
	return nil
}
