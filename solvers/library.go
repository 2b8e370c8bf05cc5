// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package solvers

// Element are the Go types corresponding to the numeric kinds the dense solver
// routines are specialized for. Singular values of a complex matrix are still
// real-valued, hence the separate Real constraint.
type Element interface {
	float32 | float64 | complex64 | complex128
}

// Real are the companion types used for singular values: float32 for
// float32/complex64 matrices, float64 for float64/complex128 ones.
type Real interface {
	float32 | float64
}

// GesvdLibrary holds the single-matrix SVD primitives, one per numeric kind,
// mirroring the cusolverDn<t>gesvd / hipsolverDn<t>gesvd entry points.
//
// The slice arguments are windows into the driver-owned flat buffers, starting
// at the current matrix; each primitive reads/writes only the leading elements
// implied by the dimensions and job codes. rwork may be nil. The returned
// Status is the raw vendor code, 0 meaning success.
type GesvdLibrary interface {
	Sgesvd(h Handle, jobU, jobVT byte, m, n int, a []float32, lda int, s []float32,
		u []float32, ldu int, vt []float32, ldvt int,
		work []float32, lwork int, rwork []float32, info []int32) Status
	Dgesvd(h Handle, jobU, jobVT byte, m, n int, a []float64, lda int, s []float64,
		u []float64, ldu int, vt []float64, ldvt int,
		work []float64, lwork int, rwork []float64, info []int32) Status
	Cgesvd(h Handle, jobU, jobVT byte, m, n int, a []complex64, lda int, s []float32,
		u []complex64, ldu int, vt []complex64, ldvt int,
		work []complex64, lwork int, rwork []float32, info []int32) Status
	Zgesvd(h Handle, jobU, jobVT byte, m, n int, a []complex128, lda int, s []float64,
		u []complex128, ldu int, vt []complex128, ldvt int,
		work []complex128, lwork int, rwork []float64, info []int32) Status
}

// GeqrfLibrary holds the single-matrix QR-factorization primitives, one per
// numeric kind, mirroring the cusolverDn<t>geqrf / hipsolver<t>geqrf entry
// points. Some vendor families (rocSOLVER) accept but ignore work, lwork and
// info, computing them internally.
type GeqrfLibrary interface {
	Sgeqrf(h Handle, m, n int, a []float32, lda int, tau []float32,
		work []float32, lwork int, info []int32) Status
	Dgeqrf(h Handle, m, n int, a []float64, lda int, tau []float64,
		work []float64, lwork int, info []int32) Status
	Cgeqrf(h Handle, m, n int, a []complex64, lda int, tau []complex64,
		work []complex64, lwork int, info []int32) Status
	Zgeqrf(h Handle, m, n int, a []complex128, lda int, tau []complex128,
		work []complex128, lwork int, info []int32) Status
}

// OrgqrLibrary holds the single-matrix explicit-Q primitives, one per numeric
// kind. The complex kinds map to the "ungqr" vendor names, their unitary
// counterpart.
type OrgqrLibrary interface {
	Sorgqr(h Handle, m, n, k int, a []float32, lda int, tau []float32,
		work []float32, lwork int, info []int32) Status
	Dorgqr(h Handle, m, n, k int, a []float64, lda int, tau []float64,
		work []float64, lwork int, info []int32) Status
	Cungqr(h Handle, m, n, k int, a []complex64, lda int, tau []complex64,
		work []complex64, lwork int, info []int32) Status
	Zungqr(h Handle, m, n, k int, a []complex128, lda int, tau []complex128,
		work []complex128, lwork int, info []int32) Status
}

// Library is the full set of single-matrix vendor primitives a backend loops
// over. It is the boundary to the external driver: bindings (cgo or dynamically
// loaded) implement it and register themselves with the backend package of the
// matching family; tests implement it with mocks.
//
// Backends that only adapt a subset (the HIP family has no gesvd loop) consume
// the narrower sub-interfaces instead.
type Library interface {
	GesvdLibrary
	GeqrfLibrary
	OrgqrLibrary
}
