// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traverse implements breadth-first and depth-first search,
// connected/strongly-connected components, bridges, cut vertices, and
// spanning forests over graph.Interface, grounded on the teacher's
// graph/traverse and graph/topo packages (BreadthFirst/DepthFirst
// walkers, Tarjan's SCC).
package traverse

import "github.com/arcgraph/arcgraph/graph"

// BreadthFirst is a finite state object for a single BFS run, advanced
// by AddSource/Step/Run like the rest of the core's Step/Run family.
type BreadthFirst struct {
	g graph.Interface

	level  map[int64]int
	parent map[int64]graph.Arc
	queue  []graph.Node
	head   int
	seen   map[int64]bool
}

// NewBreadthFirst returns a BFS state over g with no sources yet.
func NewBreadthFirst(g graph.Interface) *BreadthFirst {
	return &BreadthFirst{
		g:      g,
		level:  make(map[int64]int),
		parent: make(map[int64]graph.Arc),
		seen:   make(map[int64]bool),
	}
}

// AddSource marks v reached at level 0 (or resumes a multi-source
// search if called again with another node).
func (b *BreadthFirst) AddSource(v graph.Node) {
	if b.seen[v.ID()] {
		return
	}
	b.seen[v.ID()] = true
	b.level[v.ID()] = 0
	b.parent[v.ID()] = graph.InvalidArc
	b.queue = append(b.queue, v)
}

// Step dequeues one node and relaxes its forward neighbors, returning
// false once the queue is empty.
func (b *BreadthFirst) Step() bool {
	if b.head >= len(b.queue) {
		return false
	}
	u := b.queue[b.head]
	b.head++
	for _, a := range b.g.ArcsAt(u, graph.Forward) {
		v := b.g.Other(a, u)
		if b.seen[v.ID()] {
			continue
		}
		b.seen[v.ID()] = true
		b.level[v.ID()] = b.level[u.ID()] + 1
		b.parent[v.ID()] = a
		b.queue = append(b.queue, v)
	}
	return true
}

// Run exhausts the queue.
func (b *BreadthFirst) Run() {
	for b.Step() {
	}
}

// RunUntilFixed runs until target is dequeued (returning true) or the
// queue empties first (returning false).
func (b *BreadthFirst) RunUntilFixed(target graph.Node) bool {
	if b.seen[target.ID()] {
		// already reached; need it actually dequeued
	}
	for b.head < len(b.queue) {
		if b.queue[b.head].ID() == target.ID() {
			b.Step()
			return true
		}
		if !b.Step() {
			return false
		}
	}
	return b.seen[target.ID()]
}

// Reached reports whether v has been enqueued.
func (b *BreadthFirst) Reached(v graph.Node) bool { return b.seen[v.ID()] }

// Level returns v's BFS level (source=0), or -1 if unreached.
func (b *BreadthFirst) Level(v graph.Node) int {
	if !b.seen[v.ID()] {
		return -1
	}
	return b.level[v.ID()]
}

// ParentArc returns the arc used to first reach v, or InvalidArc for
// a source or an unreached node.
func (b *BreadthFirst) ParentArc(v graph.Node) graph.Arc {
	a, ok := b.parent[v.ID()]
	if !ok {
		return graph.InvalidArc
	}
	return a
}

// Path reconstructs the path from the nearest source to v, or nil if
// v is unreached.
func (b *BreadthFirst) Path(v graph.Node) *graph.Path {
	if !b.seen[v.ID()] {
		return nil
	}
	var chain []graph.Arc
	cur := v
	for {
		a := b.parent[cur.ID()]
		if !a.IsValid() {
			break
		}
		chain = append(chain, a)
		cur = b.g.Other(a, cur)
	}
	p := graph.NewPath(b.g, cur)
	for i := len(chain) - 1; i >= 0; i-- {
		p.Extend(chain[i])
	}
	return p
}
