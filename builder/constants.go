// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// Builder method name constants, used to prefix errors with the
// constructor name for context.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
	MethodCafe         = "Cafe"
)

// Minimum sizes per constructor.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4 // rim cycle needs n-1 ≥ 3
	MinCompleteNodes = 2
	MinGridDim       = 1 // each dimension; rows*cols must still reach MinGridNodes
	MinGridNodes     = 2
	MinRandomNodes   = 2
)

// Probability domain for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
