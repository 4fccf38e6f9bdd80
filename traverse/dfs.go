// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import "github.com/arcgraph/arcgraph/graph"

// DepthFirst is a finite state object for a single DFS run over an
// explicit stack (no recursion, so arbitrarily deep graphs are safe).
type DepthFirst struct {
	g graph.Interface

	visited map[int64]bool
	parent  map[int64]graph.Arc
	order   []graph.Node
	stack   []frame
}

type frame struct {
	node    graph.Node
	arcs    []graph.Arc
	arcIdx  int
}

// NewDepthFirst returns a DFS state over g with no sources yet.
func NewDepthFirst(g graph.Interface) *DepthFirst {
	return &DepthFirst{
		g:       g,
		visited: make(map[int64]bool),
		parent:  make(map[int64]graph.Arc),
	}
}

// AddSource marks v visited and pushes it onto the DFS stack.
func (d *DepthFirst) AddSource(v graph.Node) {
	if d.visited[v.ID()] {
		return
	}
	d.visited[v.ID()] = true
	d.parent[v.ID()] = graph.InvalidArc
	d.order = append(d.order, v)
	d.stack = append(d.stack, frame{node: v, arcs: d.g.ArcsAt(v, graph.Forward)})
}

// Step advances the DFS by one arc, returning false once the stack is
// empty.
func (d *DepthFirst) Step() bool {
	for len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]
		if top.arcIdx >= len(top.arcs) {
			d.stack = d.stack[:len(d.stack)-1]
			continue
		}
		a := top.arcs[top.arcIdx]
		top.arcIdx++
		v := d.g.Other(a, top.node)
		if d.visited[v.ID()] {
			continue
		}
		d.visited[v.ID()] = true
		d.parent[v.ID()] = a
		d.order = append(d.order, v)
		d.stack = append(d.stack, frame{node: v, arcs: d.g.ArcsAt(v, graph.Forward)})
		return true
	}
	return false
}

// Run exhausts the stack.
func (d *DepthFirst) Run() {
	for d.Step() {
	}
}

// Reached reports whether v has been visited.
func (d *DepthFirst) Reached(v graph.Node) bool { return d.visited[v.ID()] }

// ParentArc returns the arc used to first reach v.
func (d *DepthFirst) ParentArc(v graph.Node) graph.Arc { return d.parent[v.ID()] }

// Order returns nodes in the order they were first visited.
func (d *DepthFirst) Order() []graph.Node { return append([]graph.Node(nil), d.order...) }

// WalkAll runs DFS from every unvisited node of g, in g.Nodes() order,
// calling during for each newly visited node and after once each tree
// is exhausted; ConnectedComponents (connectivity.go) is built on it.
func WalkAll(g graph.Interface, during func(graph.Node), after func()) {
	d := NewDepthFirst(g)
	for _, n := range g.Nodes() {
		if d.Reached(n) {
			continue
		}
		d.AddSource(n)
		during(n)
		for d.Step() {
			during(d.order[len(d.order)-1])
		}
		after()
	}
}
