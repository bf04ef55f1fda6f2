// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Node ids are row-major: id(r,c) = r*cols + c.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewNodes).
//   • For each cell emits Right (r,c+1) then Bottom (r+1,c) where present.
//     Directed mode therefore yields arcs pointing right and down only.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/lvroute/core"

// GridID returns the node id of cell (r, c) in a grid with cols columns.
func GridID(r, c, cols int) core.NodeID {
	return core.NodeID(r*cols + c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "rows*cols", rows*cols, MinGridNodes); err != nil {
			return err
		}
		if err := ensureNodes(g, rows*cols); err != nil {
			return err
		}

		var r, c, u int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = r*cols + c
				if c+1 < cols {
					if err := connect(g, cfg, MethodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, MethodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
