package hipsolver

import (
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/batchsolver/solvers"
)

// Capabilities of the hipSOLVER backend: the QR family only, over the four
// dense numeric kinds. Gesvd is not provided by this family.
var Capabilities = solvers.Capabilities{
	Routines: map[solvers.Routine]bool{
		solvers.RoutineGeqrf: true,
		solvers.RoutineOrgqr: true,
	},
	DTypes: map[dtypes.DType]bool{
		dtypes.Float32:    true,
		dtypes.Float64:    true,
		dtypes.Complex64:  true,
		dtypes.Complex128: true,
	},
}
