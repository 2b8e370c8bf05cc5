package solvers

import "maps"

import "github.com/gomlx/gopjrt/dtypes"

// Capabilities holds mappings of what is supported by a backend.
type Capabilities struct {
	// Routines supported by a backend.
	// If not listed, it's assumed to be false, hence not supported.
	Routines map[Routine]bool

	// DTypes list the data types supported by a backend.
	// If not listed, it's assumed to be false, hence not supported.
	DTypes map[dtypes.DType]bool
}

// Clone makes a deep copy of the Capabilities.
func (c Capabilities) Clone() Capabilities {
	var c2 Capabilities
	c2.Routines = make(map[Routine]bool, len(c.Routines))
	maps.Copy(c2.Routines, c.Routines)
	c2.DTypes = make(map[dtypes.DType]bool, len(c.DTypes))
	maps.Copy(c2.DTypes, c.DTypes)
	return c2
}
