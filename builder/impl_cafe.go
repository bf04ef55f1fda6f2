// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_cafe.go — the café fixture: six cafés joined by nine two-way walks,
// weighted in walking minutes.
//
// Contract:
//   • Grows g to at least CafeCount nodes; ids follow the Cafe* constants.
//   • Weights are fixed; cfg.weightFn and cfg.directed are ignored
//     (every walk is two-way).
//   • Edge order is fixed (see cafeWalks).

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Café node ids.
const (
	CafeFullStack core.NodeID = iota
	CafeDigInn
	CafeDubliner
	CafeStarbucks
	CafeGrumpy
	CafeInsomniaCookies

	// CafeCount is the number of cafés in the fixture.
	CafeCount = 6
)

// CafeNames maps café ids to display names.
var CafeNames = [CafeCount]string{
	"FULLSTACK",
	"DIGINN",
	"DUBLINER",
	"STARBUCKS",
	"CAFEGRUMPY",
	"INSOMNIACOOKIES",
}

// cafeWalks lists (u, v, minutes) in insertion order.
var cafeWalks = [...]struct {
	u, v core.NodeID
	w    float64
}{
	{CafeDigInn, CafeFullStack, 7},
	{CafeFullStack, CafeStarbucks, 6},
	{CafeDigInn, CafeDubliner, 4},
	{CafeFullStack, CafeDubliner, 2},
	{CafeDubliner, CafeStarbucks, 3},
	{CafeDigInn, CafeGrumpy, 9},
	{CafeGrumpy, CafeInsomniaCookies, 5},
	{CafeDubliner, CafeInsomniaCookies, 7},
	{CafeStarbucks, CafeInsomniaCookies, 6},
}

// Cafe returns a Constructor that emits the café fixture.
func Cafe() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := ensureNodes(g, CafeCount); err != nil {
			return err
		}
		for _, e := range cafeWalks {
			if err := g.AddBidirEdge(e.u, e.v, e.w); err != nil {
				return fmt.Errorf("%s: AddBidirEdge(%d—%d, w=%g): %w", MethodCafe, e.u, e.v, e.w, err)
			}
		}

		return nil
	}
}

// CafeByName resolves a café name (case-insensitive) to its id.
func CafeByName(name string) (core.NodeID, bool) {
	for i, n := range CafeNames {
		if strings.EqualFold(n, name) {
			return core.NodeID(i), true
		}
	}

	return core.NoNode, false
}
