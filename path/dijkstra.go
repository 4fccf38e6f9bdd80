// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package path implements the shortest-path family over
// graph.Interface: Dijkstra (Sum and Maximum aggregation), Bellman-Ford,
// A*, bidirectional Dijkstra, and edge/node-disjoint shortest paths,
// grounded on the teacher's graph/path package (Dijkstra, BellmanFord,
// AStar, priorityQueue) but rebuilt as finite-state Step/Run objects
// over the intrusive internal/queue rather than container/heap.
package path

import (
	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/internal/queue"
)

// Mode selects how arc costs accumulate along a path: Sum adds them
// (the ordinary notion of path length), Maximum takes the largest arc
// cost on the path (a bottleneck/widest-path style metric).
type Mode int

const (
	Sum Mode = iota
	Maximum
)

func (m Mode) combine(base, w float64) float64 {
	if m == Maximum {
		if w > base {
			return w
		}
		return base
	}
	return base + w
}

// Dijkstra is a finite-state single-source shortest-path search.
// Costs must be nonnegative under Sum mode; Step panics via
// graph.PreconditionError if it discovers otherwise.
type Dijkstra struct {
	g    graph.Interface
	cost graph.CostFunc
	mode Mode

	dist     map[int64]float64
	parent   map[int64]graph.Arc
	fixed    map[int64]bool
	pq       *queue.Queue[int64, float64]
	nodeByID map[int64]graph.Node
}

// NewDijkstra returns a Dijkstra search over g using cost under mode.
func NewDijkstra(g graph.Interface, cost graph.CostFunc, mode Mode) *Dijkstra {
	return &Dijkstra{
		g:      g,
		cost:   cost,
		mode:   mode,
		dist:     make(map[int64]float64),
		parent:   make(map[int64]graph.Arc),
		fixed:    make(map[int64]bool),
		pq:       queue.New[int64, float64](),
		nodeByID: make(map[int64]graph.Node),
	}
}

// AddSource seeds v at distance 0. Multiple sources may be added
// before the first Step, yielding a multi-source search.
func (d *Dijkstra) AddSource(v graph.Node) {
	if cur, ok := d.dist[v.ID()]; ok && cur <= 0 {
		return
	}
	d.nodeByID[v.ID()] = v
	d.dist[v.ID()] = 0
	d.parent[v.ID()] = graph.InvalidArc
	d.pq.Set(v.ID(), 0)
}

// Step fixes the next-closest unfixed node and relaxes its outgoing
// arcs, returning false once the frontier is empty.
func (d *Dijkstra) Step() bool {
	id, dist, ok := d.pq.Pop()
	if !ok {
		return false
	}
	d.fixed[id] = true
	u := d.nodeByID[id]
	for _, a := range d.g.ArcsAt(u, graph.Forward) {
		w := d.cost(a)
		if d.mode == Sum && w < 0 {
			panic(graph.PreconditionError{Algorithm: "Dijkstra", Rule: "nonnegative arc cost required under Sum mode", Arc: a})
		}
		v := d.g.Other(a, u)
		d.nodeByID[v.ID()] = v
		joint := d.mode.combine(dist, w)
		if cur, seen := d.dist[v.ID()]; !seen || joint < cur {
			d.dist[v.ID()] = joint
			d.parent[v.ID()] = a
			d.pq.Set(v.ID(), joint)
		}
	}
	return true
}

// Run exhausts the frontier, computing distances to every reachable
// node.
func (d *Dijkstra) Run() {
	for d.Step() {
	}
}

// RunUntilFixed runs until target is fixed (returning true) or the
// frontier empties first without reaching it (returning false).
func (d *Dijkstra) RunUntilFixed(target graph.Node) bool {
	if d.fixed[target.ID()] {
		return true
	}
	for d.Step() {
		if d.fixed[target.ID()] {
			return true
		}
	}
	return d.fixed[target.ID()]
}

// frontierMin returns the smallest tentative distance still in the
// queue, or +Inf once the queue is empty; used by Bidirectional's
// stopping criterion.
func (d *Dijkstra) frontierMin() float64 {
	if _, p, ok := d.pq.Peek(); ok {
		return p
	}
	return posInf
}

// Reached reports whether v has a known (possibly not yet fixed)
// distance.
func (d *Dijkstra) Reached(v graph.Node) bool {
	_, ok := d.dist[v.ID()]
	return ok
}

// Fixed reports whether v's shortest distance is finalized.
func (d *Dijkstra) Fixed(v graph.Node) bool { return d.fixed[v.ID()] }

// GetDistance returns v's shortest distance, or +Inf if unreached.
func (d *Dijkstra) GetDistance(v graph.Node) float64 {
	if w, ok := d.dist[v.ID()]; ok {
		return w
	}
	return posInf
}

// GetPath reconstructs the shortest path from the nearest source to
// v, or nil if v is unreached.
func (d *Dijkstra) GetPath(v graph.Node) *graph.Path {
	if !d.Reached(v) {
		return nil
	}
	return reconstructPath(d.g, d.parent, v)
}
