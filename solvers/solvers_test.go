package solvers_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/batchsolver/solvers"
	"github.com/gomlx/batchsolver/solvers/notimplemented"
)

// fakeBackend records the config it was constructed with.
type fakeBackend struct {
	notimplemented.Backend
	name, config string
}

func (b *fakeBackend) Name() string { return b.name }

func registerFake(name string) *[]string {
	var configs []string
	solvers.Register(name, func(config string) solvers.Backend {
		configs = append(configs, config)
		return &fakeBackend{name: name, config: config}
	})
	return &configs
}

func TestNewWithConfig(t *testing.T) {
	configs := registerFake("testbackend")
	backend := solvers.NewWithConfig("testbackend:some-option")
	assert.Equal(t, "testbackend", backend.Name())
	require.Equal(t, []string{"some-option"}, *configs,
		"the part after the first colon goes to the backend constructor")

	assert.Panics(t, func() { solvers.NewWithConfig("no-such-backend:x") })
}

func TestNewUsesEnvironment(t *testing.T) {
	configs := registerFake("testenvbackend")
	t.Setenv(solvers.BATCHSOLVER_BACKEND, "testenvbackend:from-env")
	backend := solvers.New()
	assert.Equal(t, "testenvbackend", backend.Name())
	assert.Equal(t, []string{"from-env"}, *configs)
}

func TestBatchError(t *testing.T) {
	var err error = &solvers.BatchError{
		Routine: solvers.RoutineOrgqr,
		Index:   7,
		Status:  solvers.Status(3),
	}
	assert.Equal(t, "orgqr: batch element 7 failed with vendor status 3", err.Error())

	wrapped := errors.WithMessage(err, "while rebuilding Q")
	var batchErr *solvers.BatchError
	require.ErrorAs(t, wrapped, &batchErr)
	assert.Equal(t, 7, batchErr.Index)
}

func TestStatusOk(t *testing.T) {
	assert.True(t, solvers.Status(0).Ok())
	assert.False(t, solvers.Status(-1).Ok())
	assert.False(t, solvers.Status(2).Ok())
}

func TestRoutineString(t *testing.T) {
	assert.Equal(t, "gesvd", solvers.RoutineGesvd.String())
	assert.Equal(t, "geqrf", solvers.RoutineGeqrf.String())
	assert.Equal(t, "orgqr", solvers.RoutineOrgqr.String())
}

func TestNotImplementedBackend(t *testing.T) {
	backend := &notimplemented.Backend{}
	err := backend.GeqrfBatched(0, 2, 2, solvers.Buffer{}, 2, solvers.Buffer{}, solvers.Buffer{}, 0, solvers.Buffer{}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, solvers.ErrNotImplemented)
	assert.Empty(t, backend.Capabilities().Routines)
}

func TestCapabilitiesClone(t *testing.T) {
	caps := solvers.Capabilities{
		Routines: map[solvers.Routine]bool{solvers.RoutineGeqrf: true},
	}
	cloned := caps.Clone()
	cloned.Routines[solvers.RoutineGesvd] = true
	assert.False(t, caps.Routines[solvers.RoutineGesvd], "Clone must deep-copy the maps")
}
