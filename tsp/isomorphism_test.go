// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/tsp"
)

func triangle() *graph.Graph {
	g := graph.New()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.AddArc(a, b, graph.Undirected)
	g.AddArc(b, c, graph.Undirected)
	g.AddArc(c, a, graph.Undirected)
	return g
}

func TestIsomorphicToMatchesATriangleAgainstItself(t *testing.T) {
	g := triangle()
	assert.True(t, tsp.IsomorphicTo(g, g))
}

func TestIsomorphicToMatchesRelabeledTriangles(t *testing.T) {
	g1 := triangle()

	g2 := graph.New()
	x, y, z := g2.AddNode(), g2.AddNode(), g2.AddNode()
	// same cycle shape, nodes added and wired in a different order.
	g2.AddArc(z, x, graph.Undirected)
	g2.AddArc(x, y, graph.Undirected)
	g2.AddArc(y, z, graph.Undirected)

	assert.True(t, tsp.IsomorphicTo(g1, g2))
}

func TestIsomorphicToRejectsDifferentNodeCounts(t *testing.T) {
	g1 := triangle()

	g2 := graph.New()
	a, b := g2.AddNode(), g2.AddNode()
	g2.AddArc(a, b, graph.Undirected)

	assert.False(t, tsp.IsomorphicTo(g1, g2))
}

func TestIsomorphicToRejectsTriangleAgainstPath(t *testing.T) {
	g1 := triangle()

	// a 3-node path has the same node count but one edge fewer (2 vs
	// 3), and a different degree sequence (2,2,2 vs 1,2,1).
	g2 := graph.New()
	a, b, c := g2.AddNode(), g2.AddNode(), g2.AddNode()
	g2.AddArc(a, b, graph.Undirected)
	g2.AddArc(b, c, graph.Undirected)

	assert.False(t, tsp.IsomorphicTo(g1, g2))
}

func TestIsomorphicToRejectsMismatchedArcDirection(t *testing.T) {
	g1 := graph.New()
	a, b, c := g1.AddNode(), g1.AddNode(), g1.AddNode()
	g1.AddArc(a, b, graph.Directed)
	g1.AddArc(b, c, graph.Directed)

	g2 := graph.New()
	x, y, z := g2.AddNode(), g2.AddNode(), g2.AddNode()
	g2.AddArc(x, y, graph.Directed)
	g2.AddArc(z, y, graph.Directed) // reversed relative to g1's second arc

	assert.False(t, tsp.IsomorphicTo(g1, g2))
}
