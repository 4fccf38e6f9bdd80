// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/traverse"
)

// diamond builds a -> {b, c} -> d.
func diamond() (*graph.Graph, graph.Node, graph.Node, graph.Node, graph.Node) {
	g := graph.New()
	a, b, c, d := g.AddNode(), g.AddNode(), g.AddNode(), g.AddNode()
	g.AddArc(a, b, graph.Directed)
	g.AddArc(a, c, graph.Directed)
	g.AddArc(b, d, graph.Directed)
	g.AddArc(c, d, graph.Directed)
	return g, a, b, c, d
}

func TestBreadthFirstLevels(t *testing.T) {
	g, a, b, c, d := diamond()
	bfs := traverse.NewBreadthFirst(g)
	bfs.AddSource(a)
	bfs.Run()

	assert.Equal(t, 0, bfs.Level(a))
	assert.Equal(t, 1, bfs.Level(b))
	assert.Equal(t, 1, bfs.Level(c))
	assert.Equal(t, 2, bfs.Level(d))
}

func TestBreadthFirstRunUntilFixed(t *testing.T) {
	g, a, _, _, d := diamond()
	bfs := traverse.NewBreadthFirst(g)
	bfs.AddSource(a)
	require.True(t, bfs.RunUntilFixed(d))
	assert.True(t, bfs.Reached(d))
}

func TestBreadthFirstUnreachedNodeHasNoPath(t *testing.T) {
	g := graph.New()
	a := g.AddNode()
	isolated := g.AddNode()
	bfs := traverse.NewBreadthFirst(g)
	bfs.AddSource(a)
	bfs.Run()

	assert.Nil(t, bfs.Path(isolated))
	assert.Equal(t, -1, bfs.Level(isolated))
}

func TestBreadthFirstPathReconstruction(t *testing.T) {
	g, a, _, _, d := diamond()
	bfs := traverse.NewBreadthFirst(g)
	bfs.AddSource(a)
	bfs.Run()

	p := bfs.Path(d)
	require.NotNil(t, p)
	assert.Equal(t, a, p.FirstNode())
	assert.Equal(t, d, p.LastNode())
	assert.Len(t, p.OrderedArcs(), 2)
}
