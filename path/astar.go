// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/internal/queue"
)

// AStar is Dijkstra biased by an admissible heuristic toward a fixed
// target: the queue orders on dist+heuristic rather than dist alone,
// same relaxation rule otherwise. An inadmissible (overestimating)
// heuristic is not checked for and will produce a suboptimal path
// rather than panic, matching the teacher's no-verification stance on
// caller-supplied heuristics.
type AStar struct {
	g    graph.Interface
	cost graph.CostFunc
	h    graph.HeuristicFunc

	dist     map[int64]float64
	parent   map[int64]graph.Arc
	fixed    map[int64]bool
	pq       *queue.Queue[int64, float64]
	nodeByID map[int64]graph.Node
	target   graph.Node
}

// NewAStar returns an A* search over g from source to target using
// cost and heuristic h. h(target) must be 0.
func NewAStar(g graph.Interface, cost graph.CostFunc, h graph.HeuristicFunc, source, target graph.Node) *AStar {
	a := &AStar{
		g:        g,
		cost:     cost,
		h:        h,
		dist:     make(map[int64]float64),
		parent:   make(map[int64]graph.Arc),
		fixed:    make(map[int64]bool),
		pq:       queue.New[int64, float64](),
		nodeByID: make(map[int64]graph.Node),
		target:   target,
	}
	a.nodeByID[source.ID()] = source
	a.dist[source.ID()] = 0
	a.parent[source.ID()] = graph.InvalidArc
	a.pq.Set(source.ID(), h(source))
	return a
}

// Step expands the most promising unfixed node, returning false once
// the frontier is empty or the target has just been fixed.
func (a *AStar) Step() bool {
	if a.fixed[a.target.ID()] {
		return false
	}
	id, _, ok := a.pq.Pop()
	if !ok {
		return false
	}
	a.fixed[id] = true
	u := a.nodeByID[id]
	if id == a.target.ID() {
		return false
	}
	du := a.dist[id]
	for _, arc := range a.g.ArcsAt(u, graph.Forward) {
		w := a.cost(arc)
		if w < 0 {
			panic(graph.PreconditionError{Algorithm: "AStar", Rule: "nonnegative arc cost required", Arc: arc})
		}
		v := a.g.Other(arc, u)
		a.nodeByID[v.ID()] = v
		joint := du + w
		if cur, seen := a.dist[v.ID()]; !seen || joint < cur {
			a.dist[v.ID()] = joint
			a.parent[v.ID()] = arc
			a.pq.Set(v.ID(), joint+a.h(v))
		}
	}
	return true
}

// Run exhausts the search (until the target is fixed or the frontier
// empties).
func (a *AStar) Run() {
	for a.Step() {
	}
}

// Reached reports whether the target has a known distance.
func (a *AStar) Reached() bool {
	_, ok := a.dist[a.target.ID()]
	return ok
}

// GetDistance returns the shortest distance found to the target, or
// +Inf if unreached.
func (a *AStar) GetDistance() float64 {
	if w, ok := a.dist[a.target.ID()]; ok {
		return w
	}
	return posInf
}

// GetPath reconstructs the shortest path to the target, or nil if
// unreached.
func (a *AStar) GetPath() *graph.Path {
	if !a.Reached() {
		return nil
	}
	return reconstructPath(a.g, a.parent, a.target)
}
