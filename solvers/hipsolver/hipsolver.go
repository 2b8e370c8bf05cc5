// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package hipsolver implements the HIP/ROCm-family batchsolver backend,
// adapting the single-matrix hipSOLVER routines into batched calls.
//
// The family differs from cuSOLVER in two ways carried through here:
//   - there is no batched gesvd adaptation: GesvdBatched reports
//     solvers.ErrNotImplemented and the capability map omits it;
//   - the underlying geqrf computes workspace and per-matrix info internally
//     (rocSOLVER), so those arguments are accepted and forwarded but ignored
//     by the primitive. The info cursor still advances, keeping the external
//     contract uniform with the CUDA family.
//
// Build with the `hip` tag to make it the default backend via solvers/default.
package hipsolver

import (
	"maps"
	"slices"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/batchsolver/solvers"
)

// BackendName to be used in BATCHSOLVER_BACKEND to specify this backend.
const BackendName = "hip"

// Registers New() as the default constructor for the "hip" backend.
func init() {
	solvers.Register(BackendName, New)
}

// Library is the subset of vendor primitives the HIP family provides a batch
// adaptation for. Bindings register implementations with RegisterLibrary.
type Library interface {
	solvers.GeqrfLibrary
	solvers.OrgqrLibrary
}

var (
	muLibraries     sync.Mutex
	libraries       = make(map[string]Library)
	firstRegistered string
)

// RegisterLibrary makes a hipSOLVER binding available under the given name.
// The config string given to New selects among registered libraries.
func RegisterLibrary(name string, lib Library) {
	muLibraries.Lock()
	defer muLibraries.Unlock()
	if _, found := libraries[name]; found {
		exceptions.Panicf("hipsolver: library %q registered twice", name)
	}
	if len(libraries) == 0 {
		firstRegistered = name
	}
	libraries[name] = lib
	klog.V(1).Infof("hipsolver: registered vendor library %q", name)
}

// New constructs a hipSOLVER backend. The config string is the name of a
// registered library binding; empty means the first one registered.
func New(config string) solvers.Backend {
	muLibraries.Lock()
	defer muLibraries.Unlock()
	if len(libraries) == 0 {
		exceptions.Panicf("hipsolver: no vendor library registered for backend %q -- "+
			"link a hipSOLVER binding and have it call hipsolver.RegisterLibrary", BackendName)
	}
	name := config
	if name == "" {
		name = firstRegistered
	}
	lib, found := libraries[name]
	if !found {
		known := slices.Sorted(maps.Keys(libraries))
		exceptions.Panicf("hipsolver: library %q not registered (have %q)", name, known)
	}
	klog.V(1).Infof("hipsolver: creating backend with library %q", name)
	return NewWithLibrary(lib)
}

// NewWithLibrary constructs a hipSOLVER backend directly over lib, bypassing
// the library registry.
func NewWithLibrary(lib Library) *Backend {
	return &Backend{lib: lib}
}

// Backend implements the solvers.Backend interface over a hipSOLVER binding.
type Backend struct {
	lib Library
}

var _ solvers.Backend = (*Backend)(nil)

// Name returns the short name of the backend.
func (b *Backend) Name() string { return BackendName }

// String implements fmt.Stringer.
func (b *Backend) String() string { return BackendName }

// Description is a longer description of the Backend that can be used to pretty-print.
func (b *Backend) Description() string {
	return "hipSOLVER/rocSOLVER dense routines, loop-based batching"
}

// Capabilities returns information about what is supported by this backend.
// Notice gesvd is absent.
func (b *Backend) Capabilities() solvers.Capabilities {
	return Capabilities
}

// GesvdBatched implements solvers.Backend. The HIP family provides no batched
// gesvd adaptation, so it fails closed instead of pretending success.
func (b *Backend) GesvdBatched(h solvers.Handle, jobU, jobVT solvers.SVDJob, m, n int,
	a, s, u, vt, work solvers.Buffer, lwork int, info solvers.Buffer, batch int) error {
	return errors.Wrapf(solvers.ErrNotImplemented, "gesvd on backend %q", BackendName)
}

// Finalize drops the reference to the vendor library and makes the backend invalid.
func (b *Backend) Finalize() {
	b.lib = nil
}
