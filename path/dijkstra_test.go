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

// weightedDiamond builds a->b(1), a->c(4), b->c(1), b->d(5), c->d(1)
// so the shortest a->d path goes through b then c.
func weightedDiamond() (g *graph.Graph, a, b, c, d graph.Node, cost graph.CostFunc) {
	g = graph.New()
	a, b, c, d = g.AddNode(), g.AddNode(), g.AddNode(), g.AddNode()
	w := make(map[int64]float64)
	set := func(u, v graph.Node, weight float64) {
		arc := g.AddArc(u, v, graph.Directed)
		w[arc.ID()] = weight
	}
	set(a, b, 1)
	set(a, c, 4)
	set(b, c, 1)
	set(b, d, 5)
	set(c, d, 1)
	cost = func(arc graph.Arc) float64 { return w[arc.ID()] }
	return g, a, b, c, d, cost
}

func TestDijkstraSumShortestPath(t *testing.T) {
	src, a, _, c, d, costFn := weightedDiamond()

	d1 := path.NewDijkstra(src, costFn, path.Sum)
	d1.AddSource(a)
	d1.Run()

	assert.Equal(t, 3.0, d1.GetDistance(d)) // a->b(1)->c(1)->d(1)
	assert.Equal(t, 2.0, d1.GetDistance(c)) // a->b(1)->c(1), cheaper than a->c(4)

	p := d1.GetPath(d)
	require.NotNil(t, p)
	assert.Equal(t, a, p.FirstNode())
	assert.Equal(t, d, p.LastNode())
	assert.Len(t, p.OrderedArcs(), 3)
}

func TestDijkstraMaximumBottleneck(t *testing.T) {
	src, a, _, _, d, costFn := weightedDiamond()

	d1 := path.NewDijkstra(src, costFn, path.Maximum)
	d1.AddSource(a)
	d1.Run()

	// a->b(1)->c(1)->d(1): bottleneck 1, beats a->c(4)->d(1): bottleneck 4.
	assert.Equal(t, 1.0, d1.GetDistance(d))
}

func TestDijkstraUnreachedNodeHasInfiniteDistance(t *testing.T) {
	g := graph.New()
	a := g.AddNode()
	isolated := g.AddNode()
	d1 := path.NewDijkstra(g, func(graph.Arc) float64 { return 1 }, path.Sum)
	d1.AddSource(a)
	d1.Run()

	assert.False(t, d1.Reached(isolated))
	assert.True(t, d1.GetDistance(isolated) > 1e300)
	assert.Nil(t, d1.GetPath(isolated))
}

func TestDijkstraNegativeCostUnderSumPanics(t *testing.T) {
	g := graph.New()
	a, b := g.AddNode(), g.AddNode()
	g.AddArc(a, b, graph.Directed)

	d1 := path.NewDijkstra(g, func(graph.Arc) float64 { return -1 }, path.Sum)
	d1.AddSource(a)
	assert.Panics(t, func() { d1.Run() })
}

func TestDijkstraRunUntilFixedStopsEarly(t *testing.T) {
	src, a, b, _, _, costFn := weightedDiamond()
	d1 := path.NewDijkstra(src, costFn, path.Sum)
	d1.AddSource(a)
	require.True(t, d1.RunUntilFixed(b))
	assert.True(t, d1.Fixed(b))
}
