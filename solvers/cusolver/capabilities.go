package cusolver

import (
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/batchsolver/solvers"
)

// Capabilities of the cuSOLVER backend: all three routine families, over the
// four dense numeric kinds.
var Capabilities = solvers.Capabilities{
	Routines: map[solvers.Routine]bool{
		solvers.RoutineGesvd: true,
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
