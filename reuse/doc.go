// SPDX-License-Identifier: MIT

// Package reuse solves many shortest-path queries against one template
// graph without rebuilding it.
//
// Every query clones the template, appends its own nodes and edges to the
// clone, and runs dijkstra.CalculateFor on the result. The template is only
// read, so any number of queries may run concurrently:
//
//	r, _ := reuse.NewRunner(template, reuse.WithWorkers(8))
//	results, err := r.Run(ctx, queries)
//
// Runner logs through an injected charmbracelet/log logger and, when given a
// Metrics, records query outcomes and timings as Prometheus collectors.
package reuse
