// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/path"
)

// hourglass builds two source-target routes that share only their
// endpoints: the cheaper src->m1->dst (cost 1+1) and the costlier
// src->m2->dst (cost 2+2).
func hourglass() (g *graph.Graph, src, m1, m2, dst graph.Node, cost graph.CostFunc) {
	g = graph.New()
	src, m1, m2, dst = g.AddNode(), g.AddNode(), g.AddNode(), g.AddNode()
	w := make(map[int64]float64)
	set := func(u, v graph.Node, weight float64) {
		arc := g.AddArc(u, v, graph.Directed)
		w[arc.ID()] = weight
	}
	set(src, m1, 1)
	set(m1, dst, 1)
	set(src, m2, 2)
	set(m2, dst, 2)
	cost = func(arc graph.Arc) float64 { return w[arc.ID()] }
	return g, src, m1, m2, dst, cost
}

func TestDisjointShortestPathsEdgeDisjointFindsBothRoutes(t *testing.T) {
	g, src, _, _, dst, cost := hourglass()

	paths := path.DisjointShortestPaths(g, cost, src, dst, 2, path.EdgeDisjoint)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.Equal(t, src, p.FirstNode())
		assert.Equal(t, dst, p.LastNode())
		assert.Len(t, p.OrderedArcs(), 2)
	}
}

func TestDisjointShortestPathsNodeDisjointStopsWhenInteriorReused(t *testing.T) {
	g := graph.New()
	src, hub, dst := g.AddNode(), g.AddNode(), g.AddNode()
	w := make(map[int64]float64)
	set := func(u, v graph.Node, weight float64) {
		arc := g.AddArc(u, v, graph.Directed)
		w[arc.ID()] = weight
	}
	set(src, hub, 1)
	set(hub, dst, 1)
	// A second src->dst route does not exist except through hub, so a
	// second node-disjoint path is unreachable and the search yields
	// only the first.
	cost := func(arc graph.Arc) float64 { return w[arc.ID()] }

	paths := path.DisjointShortestPaths(g, cost, src, dst, 2, path.NodeDisjoint)
	require.Len(t, paths, 1)
	assert.Len(t, paths[0].OrderedArcs(), 2)
}

func TestDisjointShortestPathsModeDivergesOnSharedInteriorNode(t *testing.T) {
	g := graph.New()
	src, hub, dst := g.AddNode(), g.AddNode(), g.AddNode()
	// Two parallel arc pairs through the same hub: edge-disjoint, but
	// not node-disjoint.
	g.AddArc(src, hub, graph.Directed)
	g.AddArc(hub, dst, graph.Directed)
	g.AddArc(src, hub, graph.Directed)
	g.AddArc(hub, dst, graph.Directed)
	cost := func(graph.Arc) float64 { return 1 }

	edgeDisjoint := path.DisjointShortestPaths(g, cost, src, dst, 2, path.EdgeDisjoint)
	assert.Len(t, edgeDisjoint, 2)

	nodeDisjoint := path.DisjointShortestPaths(g, cost, src, dst, 2, path.NodeDisjoint)
	assert.Len(t, nodeDisjoint, 1)
}

func TestDisjointShortestPathsPrefersCheaperRoutesFirst(t *testing.T) {
	g, src, m1, _, dst, cost := hourglass()

	paths := path.DisjointShortestPaths(g, cost, src, dst, 1, path.EdgeDisjoint)
	require.Len(t, paths, 1)
	// the cheapest route goes through m1 (weight 1+1=2) rather than m2 (2+2=4).
	assert.ElementsMatch(t, []int64{src.ID(), m1.ID(), dst.ID()}, nodeIDs(paths[0].Nodes()))
}

func nodeIDs(nodes []graph.Node) []int64 {
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	return ids
}

func TestTwoDisjointShortestPathsOnHourglass(t *testing.T) {
	g, src, m1, m2, dst, cost := hourglass()

	paths := path.TwoDisjointShortestPaths(g, cost, src, dst)
	require.Len(t, paths, 2)

	var sawM1, sawM2 bool
	for _, p := range paths {
		assert.Equal(t, src, p.FirstNode())
		assert.Equal(t, dst, p.LastNode())
		ids := nodeIDs(p.Nodes())
		for _, id := range ids {
			if id == m1.ID() {
				sawM1 = true
			}
			if id == m2.ID() {
				sawM2 = true
			}
		}
	}
	assert.True(t, sawM1)
	assert.True(t, sawM2)
}

func TestTwoDisjointShortestPathsUnreachableTargetReturnsNil(t *testing.T) {
	g := graph.New()
	a := g.AddNode()
	isolated := g.AddNode()

	paths := path.TwoDisjointShortestPaths(g, func(graph.Arc) float64 { return 1 }, a, isolated)
	assert.Nil(t, paths)
}

func TestTwoDisjointShortestPathsFallsBackToSingleWhenNoSecondRouteExists(t *testing.T) {
	g := graph.New()
	src, hub, dst := g.AddNode(), g.AddNode(), g.AddNode()
	g.AddArc(src, hub, graph.Directed)
	g.AddArc(hub, dst, graph.Directed)
	cost := func(graph.Arc) float64 { return 1 }

	paths := path.TwoDisjointShortestPaths(g, cost, src, dst)
	require.Len(t, paths, 1)
	assert.Equal(t, src, paths[0].FirstNode())
	assert.Equal(t, dst, paths[0].LastNode())
}
