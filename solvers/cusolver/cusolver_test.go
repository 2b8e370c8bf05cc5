package cusolver

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/batchsolver/solvers"
)

// mockLibrary implements solvers.Library counting calls per vendor entry
// point, so the tests can check the numeric-kind dispatch picks the right one.
type mockLibrary struct {
	counts   map[string]int
	statuses []solvers.Status // returned in call order, 0 past the end
	total    int
}

func newMockLibrary(statuses ...solvers.Status) *mockLibrary {
	return &mockLibrary{counts: make(map[string]int), statuses: statuses}
}

func (l *mockLibrary) called(name string, info []int32) solvers.Status {
	var status solvers.Status
	if l.total < len(l.statuses) {
		status = l.statuses[l.total]
	}
	l.total++
	l.counts[name]++
	if len(info) > 0 {
		info[0] = int32(status)
	}
	return status
}

func (l *mockLibrary) Sgesvd(h solvers.Handle, jobU, jobVT byte, m, n int, a []float32, lda int, s []float32,
	u []float32, ldu int, vt []float32, ldvt int, work []float32, lwork int, rwork []float32, info []int32) solvers.Status {
	return l.called("Sgesvd", info)
}

func (l *mockLibrary) Dgesvd(h solvers.Handle, jobU, jobVT byte, m, n int, a []float64, lda int, s []float64,
	u []float64, ldu int, vt []float64, ldvt int, work []float64, lwork int, rwork []float64, info []int32) solvers.Status {
	return l.called("Dgesvd", info)
}

func (l *mockLibrary) Cgesvd(h solvers.Handle, jobU, jobVT byte, m, n int, a []complex64, lda int, s []float32,
	u []complex64, ldu int, vt []complex64, ldvt int, work []complex64, lwork int, rwork []float32, info []int32) solvers.Status {
	return l.called("Cgesvd", info)
}

func (l *mockLibrary) Zgesvd(h solvers.Handle, jobU, jobVT byte, m, n int, a []complex128, lda int, s []float64,
	u []complex128, ldu int, vt []complex128, ldvt int, work []complex128, lwork int, rwork []float64, info []int32) solvers.Status {
	return l.called("Zgesvd", info)
}

func (l *mockLibrary) Sgeqrf(h solvers.Handle, m, n int, a []float32, lda int, tau []float32,
	work []float32, lwork int, info []int32) solvers.Status {
	return l.called("Sgeqrf", info)
}

func (l *mockLibrary) Dgeqrf(h solvers.Handle, m, n int, a []float64, lda int, tau []float64,
	work []float64, lwork int, info []int32) solvers.Status {
	return l.called("Dgeqrf", info)
}

func (l *mockLibrary) Cgeqrf(h solvers.Handle, m, n int, a []complex64, lda int, tau []complex64,
	work []complex64, lwork int, info []int32) solvers.Status {
	return l.called("Cgeqrf", info)
}

func (l *mockLibrary) Zgeqrf(h solvers.Handle, m, n int, a []complex128, lda int, tau []complex128,
	work []complex128, lwork int, info []int32) solvers.Status {
	return l.called("Zgeqrf", info)
}

func (l *mockLibrary) Sorgqr(h solvers.Handle, m, n, k int, a []float32, lda int, tau []float32,
	work []float32, lwork int, info []int32) solvers.Status {
	return l.called("Sorgqr", info)
}

func (l *mockLibrary) Dorgqr(h solvers.Handle, m, n, k int, a []float64, lda int, tau []float64,
	work []float64, lwork int, info []int32) solvers.Status {
	return l.called("Dorgqr", info)
}

func (l *mockLibrary) Cungqr(h solvers.Handle, m, n, k int, a []complex64, lda int, tau []complex64,
	work []complex64, lwork int, info []int32) solvers.Status {
	return l.called("Cungqr", info)
}

func (l *mockLibrary) Zungqr(h solvers.Handle, m, n, k int, a []complex128, lda int, tau []complex128,
	work []complex128, lwork int, info []int32) solvers.Status {
	return l.called("Zungqr", info)
}

var _ solvers.Library = (*mockLibrary)(nil)

func gesvdOnce[T solvers.Element, R solvers.Real](t *testing.T, b *Backend) {
	err := b.GesvdBatched(0, solvers.SVDJobNone, solvers.SVDJobNone, 1, 1,
		solvers.NewBuffer(make([]T, 1)), solvers.NewBuffer(make([]R, 1)),
		solvers.Buffer{}, solvers.Buffer{},
		solvers.NewBuffer(make([]T, 1)), 1, solvers.NewBuffer(make([]int32, 1)), 1)
	require.NoError(t, err)
}

// TestGesvdDispatchPerKind checks each of the four numeric kinds reaches its
// one vendor entry point, with the right real companion type for the complex ones.
func TestGesvdDispatchPerKind(t *testing.T) {
	lib := newMockLibrary()
	b := NewWithLibrary(lib)
	gesvdOnce[float32, float32](t, b)
	gesvdOnce[float64, float64](t, b)
	gesvdOnce[complex64, float32](t, b)
	gesvdOnce[complex128, float64](t, b)
	assert.Equal(t, map[string]int{"Sgesvd": 1, "Dgesvd": 1, "Cgesvd": 1, "Zgesvd": 1}, lib.counts)
}

func geqrfOnce[T solvers.Element](t *testing.T, b *Backend) {
	err := b.GeqrfBatched(0, 1, 1, solvers.NewBuffer(make([]T, 1)), 1,
		solvers.NewBuffer(make([]T, 1)), solvers.NewBuffer(make([]T, 1)), 1,
		solvers.NewBuffer(make([]int32, 1)), 1)
	require.NoError(t, err)
}

func orgqrOnce[T solvers.Element](t *testing.T, b *Backend) {
	err := b.OrgqrBatched(0, 1, 1, 1, solvers.NewBuffer(make([]T, 1)), 1,
		solvers.NewBuffer(make([]T, 1)), solvers.NewBuffer(make([]T, 1)), 1,
		solvers.NewBuffer(make([]int32, 1)), 1, 1)
	require.NoError(t, err)
}

func TestQRDispatchPerKind(t *testing.T) {
	lib := newMockLibrary()
	b := NewWithLibrary(lib)
	geqrfOnce[float32](t, b)
	geqrfOnce[float64](t, b)
	geqrfOnce[complex64](t, b)
	geqrfOnce[complex128](t, b)
	orgqrOnce[float32](t, b)
	orgqrOnce[float64](t, b)
	orgqrOnce[complex64](t, b)
	orgqrOnce[complex128](t, b)
	assert.Equal(t, map[string]int{
		"Sgeqrf": 1, "Dgeqrf": 1, "Cgeqrf": 1, "Zgeqrf": 1,
		"Sorgqr": 1, "Dorgqr": 1, "Cungqr": 1, "Zungqr": 1,
	}, lib.counts)
}

func TestUnsupportedDTypeFailsClosed(t *testing.T) {
	b := NewWithLibrary(newMockLibrary())
	err := b.GeqrfBatched(0, 1, 1, solvers.NewBuffer([]int32{0}), 1,
		solvers.NewBuffer([]int32{0}), solvers.Buffer{}, 0,
		solvers.NewBuffer(make([]int32, 1)), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support dtype")
}

// TestStatusPassthrough makes sure the raw vendor status crosses the backend
// layer unchanged, wrapped in a BatchError with the failing index.
func TestStatusPassthrough(t *testing.T) {
	lib := newMockLibrary(0, 0, 9)
	b := NewWithLibrary(lib)
	const batch = 5
	info := []int32{-7, -7, -7, -7, -7}
	err := b.GeqrfBatched(0, 2, 2, solvers.NewBuffer(make([]float32, 4*batch)), 2,
		solvers.NewBuffer(make([]float32, 2*batch)), solvers.NewBuffer(make([]float32, 4)), 4,
		solvers.NewBuffer(info), batch)
	var batchErr *solvers.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 2, batchErr.Index)
	assert.Equal(t, solvers.Status(9), batchErr.Status)
	assert.Equal(t, 3, lib.counts["Sgeqrf"])
	assert.Equal(t, []int32{0, 0, 9, -7, -7}, info)
}

func TestCapabilities(t *testing.T) {
	b := NewWithLibrary(newMockLibrary())
	caps := b.Capabilities()
	assert.True(t, caps.Routines[solvers.RoutineGesvd])
	assert.True(t, caps.Routines[solvers.RoutineGeqrf])
	assert.True(t, caps.Routines[solvers.RoutineOrgqr])
	assert.True(t, caps.DTypes[dtypes.Complex128])
	assert.False(t, caps.DTypes[dtypes.Int32])
	assert.Equal(t, BackendName, b.Name())
}

func TestLibraryRegistry(t *testing.T) {
	lib := newMockLibrary()
	RegisterLibrary("mock-registry-test", lib)
	backend := New("mock-registry-test")
	assert.Equal(t, BackendName, backend.Name())

	assert.Panics(t, func() { RegisterLibrary("mock-registry-test", lib) },
		"double registration must panic")
	assert.Panics(t, func() { New("no-such-library") })
}
