// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/arcgraph/arcgraph/graph"

// BellmanFord computes single-source shortest paths under Sum
// aggregation, tolerating negative arc costs, and detects a
// u-reachable negative cycle when one exists.
type BellmanFord struct {
	g    graph.Interface
	cost graph.CostFunc

	dist   map[int64]float64
	parent map[int64]graph.Arc
	source graph.Node
}

// NewBellmanFord returns a Bellman-Ford search over g from source.
func NewBellmanFord(g graph.Interface, cost graph.CostFunc, source graph.Node) *BellmanFord {
	b := &BellmanFord{
		g:      g,
		cost:   cost,
		dist:   make(map[int64]float64),
		parent: make(map[int64]graph.Arc),
		source: source,
	}
	b.dist[source.ID()] = 0
	b.parent[source.ID()] = graph.InvalidArc
	return b
}

// Run relaxes every arc |V|-1 times, then performs one additional
// pass to detect a negative cycle reachable from the source. It
// returns a NegativeCycleError naming a witness arc on such a cycle,
// or nil.
func (b *BellmanFord) Run() error {
	nodes := b.g.Nodes()
	arcs := b.g.Arcs(graph.All)

	for i := 0; i < len(nodes)-1; i++ {
		changed := false
		for _, a := range arcs {
			if b.relax(a) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, a := range arcs {
		if b.relax(a) {
			// a may lie downstream of the cycle; walking |V| parent arcs
			// back from the node it just updated lands on the cycle.
			cur := b.g.V(a)
			if b.parent[cur.ID()].ID() != a.ID() {
				cur = b.g.U(a)
			}
			for i := 0; i < len(nodes); i++ {
				cur = b.g.Other(b.parent[cur.ID()], cur)
			}
			return &graph.NegativeCycleError{Witness: b.parent[cur.ID()]}
		}
	}
	return nil
}

// relax applies the arc in both directions it is traversable
// (forward for directed arcs, both ways for edges), returning true if
// it improved a distance.
func (b *BellmanFord) relax(a graph.Arc) bool {
	improved := false
	u, v := b.g.U(a), b.g.V(a)
	if b.tryRelax(u, v, a) {
		improved = true
	}
	if b.g.IsEdge(a) && b.tryRelax(v, u, a) {
		improved = true
	}
	return improved
}

func (b *BellmanFord) tryRelax(u, v graph.Node, a graph.Arc) bool {
	du, ok := b.dist[u.ID()]
	if !ok {
		return false
	}
	w := b.cost(a)
	joint := du + w
	dv, seen := b.dist[v.ID()]
	if !seen || joint < dv {
		b.dist[v.ID()] = joint
		b.parent[v.ID()] = a
		return true
	}
	return false
}

// Reached reports whether v has a finite distance from the source.
func (b *BellmanFord) Reached(v graph.Node) bool {
	_, ok := b.dist[v.ID()]
	return ok
}

// GetDistance returns v's shortest distance, or +Inf if unreached.
func (b *BellmanFord) GetDistance(v graph.Node) float64 {
	if w, ok := b.dist[v.ID()]; ok {
		return w
	}
	return posInf
}

// GetPath reconstructs the shortest path from the source to v, or nil
// if v is unreached.
func (b *BellmanFord) GetPath(v graph.Node) *graph.Path {
	if !b.Reached(v) {
		return nil
	}
	return reconstructPath(b.g, b.parent, v)
}
