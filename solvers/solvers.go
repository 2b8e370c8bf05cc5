// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package solvers defines the interface a batched dense-solver backend needs to
// implement to be used by batchsolver, along with the registry used to select
// one at runtime.
//
// A backend adapts a vendor library of single-matrix dense routines (SVD via
// gesvd, QR factorization via geqrf, explicit-Q reconstruction via orgqr/ungqr)
// into batched calls: one serial loop per routine over a contiguous array of
// same-shaped matrices, stopping at the first failing element.
//
// This layer never owns memory: all buffers -- matrices, factors, workspace,
// per-matrix info slots -- are allocated, sized and freed by the driver, which
// also binds the execution Handle to the intended stream before any call.
package solvers

import (
	"os"
	"strings"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Handle identifies an execution context (stream/session) of the vendor solver
// library. The driver creates it and binds it to a stream before any batched
// call; this layer passes it through without interpreting it.
type Handle uintptr

// Backend is the API that needs to be implemented by a batchsolver backend.
//
// Each batched routine issues one single-matrix vendor call per batch element,
// serially, on the stream the Handle is bound to. The workspace is sized for a
// single matrix and reused across the whole batch -- which is also why elements
// are never run concurrently within one call.
//
// On the first element whose vendor call returns a non-zero status the routine
// stops and returns a *BatchError carrying that element's index and raw status;
// later elements are never attempted and their info slots keep whatever the
// caller initialized them to.
type Backend interface {
	// Name returns the short name of the backend, e.g. "cuda" for the cuSOLVER family.
	Name() string

	// Description is a longer description of the Backend that can be used to pretty-print.
	Description() string

	// Capabilities returns the routines and data types supported by this backend.
	Capabilities() Capabilities

	// GesvdBatched computes the singular value decomposition of batch m×n
	// matrices stored back to back in a. Singular values land in s (always
	// real-valued), and the left/right singular vectors in u and vt according
	// to jobU and jobVT. u and vt may be zero Buffers for job modes that do
	// not produce them.
	GesvdBatched(h Handle, jobU, jobVT SVDJob, m, n int, a, s, u, vt, work Buffer,
		lwork int, info Buffer, batch int) error

	// GeqrfBatched computes the QR factorization of batch m×n matrices in
	// place in a, writing min(m,n) elementary-reflector scalars per matrix
	// into tau.
	GeqrfBatched(h Handle, m, n int, a Buffer, lda int, tau, work Buffer,
		lwork int, info Buffer, batch int) error

	// OrgqrBatched overwrites, in place, each factored matrix in a with the
	// first n columns of its explicit orthogonal (or unitary) factor Q, using
	// k elementary reflectors from tau. originN is the storage column count
	// the matrices were allocated with, which may exceed the logical n when
	// the factorization step over-allocated; the batch stride follows the
	// storage layout, not the logical shape.
	OrgqrBatched(h Handle, m, n, k int, a Buffer, lda int, tau, work Buffer,
		lwork int, info Buffer, batch int, originN int) error

	// Finalize releases the associated resources and makes the backend invalid.
	Finalize()
}

// Constructor takes a config string (optionally empty) and returns a Backend.
type Constructor func(config string) Backend

var (
	registeredConstructors = make(map[string]Constructor)
	firstRegistered        string
)

// Register backend with the given name, and a default constructor that takes as
// input a configuration string that is passed along to the backend constructor.
//
// To be safe, call Register during initialization of a package.
func Register(name string, constructor Constructor) {
	if len(registeredConstructors) == 0 {
		firstRegistered = name
	}
	registeredConstructors[name] = constructor
}

// DefaultConfig is the backend configuration to use if none is specified.
//
// See NewWithConfig for the format of the configuration string.
var DefaultConfig string

// BATCHSOLVER_BACKEND is the environment variable with the default backend
// configuration to use.
//
// The format of config is "<backend_name>:<backend_configuration>".
// The "<backend_name>" is the name of a registered backend (e.g.: "cuda") and
// "<backend_configuration>" is backend specific (e.g.: for the cuda backend,
// the name of a registered cuSOLVER library binding).
const BATCHSOLVER_BACKEND = "BATCHSOLVER_BACKEND"

// New returns a new default Backend.
//
// The default is:
//
// 1. The environment BATCHSOLVER_BACKEND is used as a configuration if defined.
// 2. Next the variable DefaultConfig is used as a configuration if defined.
// 3. The first registered backend is used with an empty configuration.
//
// It panics if no backend was registered.
func New() Backend {
	config, found := os.LookupEnv(BATCHSOLVER_BACKEND)
	if found {
		return NewWithConfig(config)
	}
	if DefaultConfig != "" {
		return NewWithConfig(DefaultConfig)
	}
	return NewWithConfig("")
}

// NewWithConfig creates a Backend from a configuration string formatted as
// "<backend_name>:<backend_configuration>".
//
// The "<backend_name>" is the name of a registered backend (e.g.: "cuda") and
// "<backend_configuration>" is backend specific.
func NewWithConfig(config string) Backend {
	if len(registeredConstructors) == 0 {
		exceptions.Panicf(`no registered backends for batchsolver -- maybe import the default one with import _ "github.com/gomlx/batchsolver/solvers/default"?`)
	}
	backendName := firstRegistered
	backendConfig := config
	if idx := strings.Index(config, ":"); idx != -1 {
		backendName = config[:idx]
		backendConfig = config[idx+1:]
	}
	constructor, found := registeredConstructors[backendName]
	if !found {
		exceptions.Panicf("can't find backend %q for configuration %q given", backendName, config)
	}
	klog.V(1).Infof("solvers: creating backend %q with configuration %q", backendName, backendConfig)
	return constructor(backendConfig)
}
