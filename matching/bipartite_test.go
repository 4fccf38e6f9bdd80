// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/matching"
)

// assignmentGraph builds a 3x3 bipartite assignment problem: left
// nodes l0,l1,l2, right nodes r0,r1,r2, with costs chosen so the
// unique minimum-cost perfect matching is l0-r0, l1-r1, l2-r2 (cost
// 1 each) rather than any cross assignment (cost >= 5 each).
func assignmentGraph() (g *graph.Graph, lefts, rights []graph.Node, left graph.BipartitionFunc, cost graph.CostFunc) {
	g = graph.New()
	lefts = []graph.Node{g.AddNode(), g.AddNode(), g.AddNode()}
	rights = []graph.Node{g.AddNode(), g.AddNode(), g.AddNode()}
	leftSet := make(map[int64]bool)
	for _, l := range lefts {
		leftSet[l.ID()] = true
	}
	left = func(n graph.Node) bool { return leftSet[n.ID()] }

	w := make(map[int64]float64)
	for i, l := range lefts {
		for j, r := range rights {
			c := 5.0
			if i == j {
				c = 1.0
			}
			arc := g.AddArc(l, r, graph.Directed)
			w[arc.ID()] = c
		}
	}
	cost = func(a graph.Arc) float64 { return w[a.ID()] }
	return g, lefts, rights, left, cost
}

func TestBipartiteMaxCardinalityOnAssignmentGraph(t *testing.T) {
	g, lefts, _, left, _ := assignmentGraph()

	b := matching.NewBipartite(g, left)
	m := b.MaxCardinality()
	require.Len(t, m, len(lefts))
}

func TestBipartiteMaxCardinalityOnPartialGraph(t *testing.T) {
	g := graph.New()
	l0, l1 := g.AddNode(), g.AddNode()
	r0 := g.AddNode()
	leftSet := map[int64]bool{l0.ID(): true, l1.ID(): true}
	left := func(n graph.Node) bool { return leftSet[n.ID()] }
	g.AddArc(l0, r0, graph.Directed)
	g.AddArc(l1, r0, graph.Directed)

	b := matching.NewBipartite(g, left)
	m := b.MaxCardinality()
	// only one right node exists, so at most one left node can be matched.
	assert.Len(t, m, 1)
}

func TestBipartiteMinCostPicksTheDiagonalAssignment(t *testing.T) {
	g, lefts, rights, left, cost := assignmentGraph()

	b := matching.NewBipartite(g, left)
	m, err := b.MinCost(cost, matching.Perfect)
	require.NoError(t, err)
	require.Len(t, m, len(lefts))

	var total float64
	for _, a := range m {
		total += cost(a)
	}
	assert.Equal(t, 3.0, total) // three diagonal edges at cost 1 each

	matched := make(map[int64]int64)
	for _, a := range m {
		matched[g.U(a).ID()] = g.V(a).ID()
	}
	for i, l := range lefts {
		assert.Equal(t, rights[i].ID(), matched[l.ID()])
	}
}

func TestBipartiteMinCostPerfectReturnsInfeasibleWhenUnsaturatable(t *testing.T) {
	g := graph.New()
	l0, l1 := g.AddNode(), g.AddNode()
	r0 := g.AddNode()
	leftSet := map[int64]bool{l0.ID(): true, l1.ID(): true}
	left := func(n graph.Node) bool { return leftSet[n.ID()] }
	g.AddArc(l0, r0, graph.Directed)
	g.AddArc(l1, r0, graph.Directed)
	cost := func(graph.Arc) float64 { return 1 }

	b := matching.NewBipartite(g, left)
	_, err := b.MinCost(cost, matching.Perfect)
	assert.ErrorIs(t, err, graph.ErrInfeasible)
}

func TestBipartiteMinCostBestEffortReturnsPartialMatchingWithoutError(t *testing.T) {
	g := graph.New()
	l0, l1 := g.AddNode(), g.AddNode()
	r0 := g.AddNode()
	leftSet := map[int64]bool{l0.ID(): true, l1.ID(): true}
	left := func(n graph.Node) bool { return leftSet[n.ID()] }
	g.AddArc(l0, r0, graph.Directed)
	g.AddArc(l1, r0, graph.Directed)
	cost := func(graph.Arc) float64 { return 1 }

	b := matching.NewBipartite(g, left)
	m, err := b.MinCost(cost, matching.BestEffort)
	require.NoError(t, err)
	assert.Len(t, m, 1)
}
