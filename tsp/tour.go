// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tsp implements traveling-salesman heuristics (cheapest
// insertion construction, 2-opt local search) and structural graph
// isomorphism, grounded on the teacher pack's tsp package (two_opt.go's
// first-improvement scan structure and doc-comment register; no
// example carries a working blossom matching, so the constructive step
// here uses cheapest insertion rather than Christofides).
package tsp

import "github.com/arcgraph/arcgraph/graph"

// CostFunc is a pairwise travel cost between two nodes, independent of
// whether an arc exists between them in any particular graph (TSP
// operates over a conceptually complete cost matrix).
type CostFunc func(u, v graph.Node) float64

// TourCost sums cost(tour[i], tour[i+1]) around the closed tour
// (including the edge from the last node back to the first).
func TourCost(tour []graph.Node, cost CostFunc) float64 {
	if len(tour) < 2 {
		return 0
	}
	total := 0.0
	for i := range tour {
		j := (i + 1) % len(tour)
		total += cost(tour[i], tour[j])
	}
	return total
}

// CheapestInsertion builds a closed tour over nodes by starting from a
// 2-node cycle and repeatedly inserting the remaining node that
// increases the tour length least, at the position that minimizes
// that increase. O(n^3) overall.
func CheapestInsertion(nodes []graph.Node, cost CostFunc) []graph.Node {
	if len(nodes) <= 2 {
		return append([]graph.Node(nil), nodes...)
	}

	tour := []graph.Node{nodes[0], nodes[1]}
	remaining := append([]graph.Node(nil), nodes[2:]...)

	for len(remaining) > 0 {
		bestNode, bestPos, bestDelta := -1, -1, 0.0
		for ri, cand := range remaining {
			for pos := 0; pos < len(tour); pos++ {
				a := tour[pos]
				b := tour[(pos+1)%len(tour)]
				delta := cost(a, cand) + cost(cand, b) - cost(a, b)
				if bestNode == -1 || delta < bestDelta {
					bestNode, bestPos, bestDelta = ri, pos+1, delta
				}
			}
		}
		node := remaining[bestNode]
		remaining = append(remaining[:bestNode], remaining[bestNode+1:]...)
		tour = append(tour[:bestPos], append([]graph.Node{node}, tour[bestPos:]...)...)
	}
	return tour
}

// TwoOpt runs deterministic first-improvement 2-opt on a closed tour:
// it repeatedly reverses a segment [i..k] whenever doing so shortens
// the tour, continuing the same scan after every accepted move, and
// repeats full passes until one finds no improving move.
func TwoOpt(tour []graph.Node, cost CostFunc) []graph.Node {
	cur := append([]graph.Node(nil), tour...)
	n := len(cur)
	if n < 4 {
		return cur
	}

	improved := true
	for improved {
		improved = false
		for i := 0; i < n-1; i++ {
			a, b := cur[i], cur[i+1]
			for k := i + 2; k < n; k++ {
				if i == 0 && k == n-1 {
					continue // would reverse the entire tour, a no-op
				}
				c, d := cur[k], cur[(k+1)%n]
				delta := cost(a, c) + cost(b, d) - cost(a, b) - cost(c, d)
				if delta < -1e-9 {
					reverse(cur, i+1, k)
					improved = true
					a, b = cur[i], cur[i+1]
				}
			}
		}
	}
	return cur
}

func reverse(s []graph.Node, i, j int) {
	for i < j {
		s[i], s[j] = s[j], s[i]
		i++
		j--
	}
}
