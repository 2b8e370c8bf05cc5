// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package cusolver implements the CUDA-family batchsolver backend: it adapts
// the single-matrix cuSOLVER dense routines (gesvd, geqrf, orgqr/ungqr) into
// batched calls by looping them on one stream.
//
// Simply import it with import _ "github.com/gomlx/batchsolver/solvers/cusolver"
// (or via solvers/default) to make it available, and have a cuSOLVER binding
// register itself with RegisterLibrary during its initialization.
package cusolver

import (
	"maps"
	"slices"
	"sync"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"

	"github.com/gomlx/batchsolver/solvers"
)

// BackendName to be used in BATCHSOLVER_BACKEND to specify this backend.
const BackendName = "cuda"

// Registers New() as the default constructor for the "cuda" backend.
func init() {
	solvers.Register(BackendName, New)
}

var (
	muLibraries     sync.Mutex
	libraries       = make(map[string]solvers.Library)
	firstRegistered string
)

// RegisterLibrary makes a cuSOLVER binding available under the given name
// (e.g. "cuda12", or the name of a custom build). The config string given to
// New selects among registered libraries.
//
// Usually called from the init() of the binding package.
func RegisterLibrary(name string, lib solvers.Library) {
	muLibraries.Lock()
	defer muLibraries.Unlock()
	if _, found := libraries[name]; found {
		exceptions.Panicf("cusolver: library %q registered twice", name)
	}
	if len(libraries) == 0 {
		firstRegistered = name
	}
	libraries[name] = lib
	klog.V(1).Infof("cusolver: registered vendor library %q", name)
}

// New constructs a cuSOLVER backend. The config string is the name of a
// registered library binding; empty means the first one registered.
//
// It panics if no binding was registered, or the named one is unknown.
func New(config string) solvers.Backend {
	muLibraries.Lock()
	defer muLibraries.Unlock()
	if len(libraries) == 0 {
		exceptions.Panicf("cusolver: no vendor library registered for backend %q -- "+
			"link a cuSOLVER binding and have it call cusolver.RegisterLibrary", BackendName)
	}
	name := config
	if name == "" {
		name = firstRegistered
	}
	lib, found := libraries[name]
	if !found {
		known := slices.Sorted(maps.Keys(libraries))
		exceptions.Panicf("cusolver: library %q not registered (have %q)", name, known)
	}
	klog.V(1).Infof("cusolver: creating backend with library %q", name)
	return NewWithLibrary(lib)
}

// NewWithLibrary constructs a cuSOLVER backend directly over lib, bypassing
// the library registry.
func NewWithLibrary(lib solvers.Library) *Backend {
	return &Backend{lib: lib}
}

// Backend implements the solvers.Backend interface over a cuSOLVER binding.
type Backend struct {
	lib solvers.Library
}

// Compile-time check that cusolver.Backend implements solvers.Backend.
var _ solvers.Backend = (*Backend)(nil)

// Name returns the short name of the backend.
func (b *Backend) Name() string { return BackendName }

// String implements fmt.Stringer.
func (b *Backend) String() string { return BackendName }

// Description is a longer description of the Backend that can be used to pretty-print.
func (b *Backend) Description() string {
	return "cuSOLVER dense routines, loop-based batching"
}

// Capabilities returns information about what is supported by this backend.
func (b *Backend) Capabilities() solvers.Capabilities {
	return Capabilities
}

// Finalize drops the reference to the vendor library and makes the backend
// invalid. The library handle itself is owned (and eventually unloaded) by the
// binding that registered it.
func (b *Backend) Finalize() {
	b.lib = nil
}
