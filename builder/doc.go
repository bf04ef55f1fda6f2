// SPDX-License-Identifier: MIT

// Package builder constructs indexed template graphs for lvroute from
// composable, deterministic topology constructors.
//
// Components:
//
//   - Orchestrators:
//     – BuildGraph(bopts, cons...): new graph, grown from core.MinNodes.
//     – Extend(g, bopts, cons...): overlay onto an existing graph.
//   - Constructors (impl_*.go): Path, Cycle, Star, Wheel, Complete, Grid,
//     RandomSparse, Cafe.
//   - Options: WithSeed, WithRand, WithWeightFn, WithDirected,
//     WithConstantWeight, WithUniformWeight.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn, IntUniformWeightFn,
//     NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Node ids are dense and fixed per constructor (documented in each file);
//     constructors grow the graph but never renumber it.
//   - Same options, seed and constructor order ⇒ identical adjacency.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; runtime parameter errors are wrapped sentinels.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 10)},
//		builder.Grid(32, 32),
//	)
package builder
