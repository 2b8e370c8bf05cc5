// Copyright 2024-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package solvers

// SVDJob selects how much of the left (U) or right (Vᵗ) singular vectors
// gesvd produces, and where. The set is closed; anything else is rejected
// before the batch loop starts.
type SVDJob byte

const (
	// SVDJobAll produces the full square singular-vector matrix (m×m for U, n×n for Vᵗ).
	SVDJobAll SVDJob = 'A'

	// SVDJobSingular produces only the leading min(m,n) singular vectors (the economy form).
	SVDJobSingular SVDJob = 'S'

	// SVDJobOverwrite writes the vectors over the input matrix; the separate
	// output buffer is not used.
	SVDJobOverwrite SVDJob = 'O'

	// SVDJobNone skips the vectors entirely.
	SVDJobNone SVDJob = 'N'
)

// Valid reports whether j is one of the four defined job codes.
func (j SVDJob) Valid() bool {
	switch j {
	case SVDJobAll, SVDJobSingular, SVDJobOverwrite, SVDJobNone:
		return true
	}
	return false
}

// VectorStride returns how many elements of the corresponding vector output one
// batch element occupies: dim·dim for SVDJobAll, dim·k for SVDJobSingular and 0
// for the modes that write nothing to the separate output buffer. dim is m for
// U and n for Vᵗ; k is min(m,n).
func (j SVDJob) VectorStride(dim, k int) int {
	switch j {
	case SVDJobAll:
		return dim * dim
	case SVDJobSingular:
		return dim * k
	}
	return 0
}

// String implements fmt.Stringer.
func (j SVDJob) String() string {
	return string(rune(j))
}
