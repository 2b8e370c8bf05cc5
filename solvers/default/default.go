// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

//go:build !hip

// Package _default links in the default solver backend for the build: the
// CUDA family, or the HIP family when building with the `hip` tag.
//
// To use it simply include:
//
//	import _ "github.com/gomlx/batchsolver/solvers/default"
package _default

import (
	_ "github.com/gomlx/batchsolver/solvers/cusolver"
)
