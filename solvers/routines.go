// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package solvers

// Routine enumerates the batched routine families of this layer.
type Routine int

const (
	// RoutineGesvd is the singular value decomposition of a general matrix.
	RoutineGesvd Routine = iota

	// RoutineGeqrf is the QR factorization into reflectors plus R.
	RoutineGeqrf

	// RoutineOrgqr is the in-place reconstruction of the explicit Q factor
	// (ungqr for the complex kinds).
	RoutineOrgqr

	// NumRoutines is the number of valid Routine values.
	NumRoutines
)

// String implements fmt.Stringer using the LAPACK-style family names.
func (r Routine) String() string {
	switch r {
	case RoutineGesvd:
		return "gesvd"
	case RoutineGeqrf:
		return "geqrf"
	case RoutineOrgqr:
		return "orgqr"
	}
	return "invalid_routine"
}
