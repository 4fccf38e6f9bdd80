// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcgraph/arcgraph/graph"
)

func ids[T interface{ ID() int64 }](items []T) []int64 {
	out := make([]int64, len(items))
	for i, n := range items {
		out[i] = n.ID()
	}
	return out
}

func TestGraphAddAndEnumerate(t *testing.T) {
	g := graph.New()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()

	ab := g.AddArc(a, b, graph.Directed)
	bc := g.AddArc(b, c, graph.Undirected)

	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 2, g.ArcCount(graph.All))
	require.Equal(t, 1, g.ArcCount(graph.EdgeFilter))

	assert.Equal(t, a, g.U(ab))
	assert.Equal(t, b, g.V(ab))
	assert.False(t, g.IsEdge(ab))
	assert.True(t, g.IsEdge(bc))

	forwardA := g.ArcsAt(a, graph.Forward)
	require.Len(t, forwardA, 1)
	assert.Equal(t, ab, forwardA[0])

	backwardA := g.ArcsAt(a, graph.Backward)
	assert.Empty(t, backwardA)

	// b is the edge's endpoint from both directions under Forward/Backward.
	forwardB := g.ArcsAt(b, graph.Forward)
	assert.Contains(t, ids(forwardB), bc.ID())
}

func TestGraphDeleteArcRemovesFromAdjacency(t *testing.T) {
	g := graph.New()
	a := g.AddNode()
	b := g.AddNode()
	ab := g.AddArc(a, b, graph.Directed)

	g.DeleteArc(ab)

	assert.Equal(t, 0, g.ArcCount(graph.All))
	assert.Empty(t, g.ArcsAt(a, graph.Forward))
	assert.Empty(t, g.ArcsAt(b, graph.Backward))
}

func TestGraphDeleteNodeRemovesIncidentArcs(t *testing.T) {
	g := graph.New()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	g.AddArc(a, b, graph.Directed)
	g.AddArc(b, c, graph.Directed)

	g.DeleteNode(b)

	require.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 0, g.ArcCount(graph.All))
	assert.Equal(t, graph.InvalidNode, g.NodeAt(int(b.ID())))
}

func TestOtherPanicsOnForeignNode(t *testing.T) {
	g := graph.New()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	ab := g.AddArc(a, b, graph.Directed)

	assert.Panics(t, func() { g.Other(ab, c) })
}

func TestInvalidSentinels(t *testing.T) {
	assert.False(t, graph.InvalidNode.IsValid())
	assert.False(t, graph.InvalidArc.IsValid())
}
