//go:build hip

package _default

import _ "github.com/gomlx/batchsolver/solvers/hipsolver"
