// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Path is a graph view whose node set is a walk and whose arcs are
// the walk's arcs in order (spec.md §3). It is built incrementally
// with Extend, normally by reading back a parent-arc chain produced
// by a shortest-path algorithm.
type Path struct {
	base  Interface
	nodes []Node
	arcs  []Arc
}

// NewPath returns a length-zero path starting at start.
func NewPath(base Interface, start Node) *Path {
	return &Path{base: base, nodes: []Node{start}}
}

// Extend appends a to the path; a must be incident to the path's
// current last node. It panics otherwise, enforcing path soundness
// (consecutive arcs share a node, chained through Other).
func (p *Path) Extend(a Arc) {
	last := p.nodes[len(p.nodes)-1]
	next := p.base.Other(a, last)
	p.arcs = append(p.arcs, a)
	p.nodes = append(p.nodes, next)
}

// FirstNode returns the path's starting node.
func (p *Path) FirstNode() Node { return p.nodes[0] }

// LastNode returns the path's current ending node.
func (p *Path) LastNode() Node { return p.nodes[len(p.nodes)-1] }

// OrderedArcs returns the path's arcs in walk order (spec.md §3's
// Arcs()); renamed to avoid colliding with the Interface method of
// the same name that additionally takes an ArcFilter. The caller must
// not modify the returned slice.
func (p *Path) OrderedArcs() []Arc { return p.arcs }

// IsCycle reports whether the path is non-empty and returns to its
// starting node.
func (p *Path) IsCycle() bool {
	return len(p.arcs) > 0 && p.FirstNode().ID() == p.LastNode().ID()
}

// Weight sums (or, in Maximum mode, takes the max of) cost(a) over
// the path's arcs, matching the aggregation modes used by the
// shortest-path family (spec.md §4.4). An empty path has weight 0.
func (p *Path) Weight(cost CostFunc, maximum bool) float64 {
	if len(p.arcs) == 0 {
		return 0
	}
	w := cost(p.arcs[0])
	for _, a := range p.arcs[1:] {
		c := cost(a)
		if maximum {
			if c > w {
				w = c
			}
		} else {
			w += c
		}
	}
	return w
}

// Nodes returns the walk's nodes in order, first to last.
func (p *Path) Nodes() []Node { return append([]Node(nil), p.nodes...) }

func (p *Path) nodeOrder(n Node) (int, bool) {
	for i, v := range p.nodes {
		if v.ID() == n.ID() {
			return i, true
		}
	}
	return 0, false
}

// the remaining methods implement Interface so a Path can be handed
// to any generic graph algorithm.

func (p *Path) Arcs(filter ArcFilter) []Arc {
	if filter != EdgeFilter {
		return p.arcs
	}
	var out []Arc
	for _, a := range p.arcs {
		if p.base.IsEdge(a) {
			out = append(out, a)
		}
	}
	return out
}

func (p *Path) NodeCount() int { return len(p.nodes) }

func (p *Path) ArcCount(filter ArcFilter) int { return len(p.Arcs(filter)) }

func (p *Path) ArcsAt(v Node, filter ArcFilter) []Arc {
	i, ok := p.nodeOrder(v)
	if !ok {
		return nil
	}
	var out []Arc
	if i > 0 && (filter == All || filter == Backward || (filter == EdgeFilter && p.base.IsEdge(p.arcs[i-1]))) {
		out = append(out, p.arcs[i-1])
	}
	if i < len(p.arcs) && (filter == All || filter == Forward || (filter == EdgeFilter && p.base.IsEdge(p.arcs[i]))) {
		out = append(out, p.arcs[i])
	}
	return out
}

func (p *Path) U(a Arc) Node { return p.base.U(a) }
func (p *Path) V(a Arc) Node { return p.base.V(a) }

func (p *Path) Other(a Arc, v Node) Node { return p.base.Other(a, v) }

func (p *Path) IsEdge(a Arc) bool { return p.base.IsEdge(a) }

func (p *Path) NodeAt(index int) Node {
	if index < 0 || index >= len(p.nodes) {
		return InvalidNode
	}
	return p.nodes[index]
}

func (p *Path) ArcAt(index int) Arc {
	if index < 0 || index >= len(p.arcs) {
		return InvalidArc
	}
	return p.arcs[index]
}

var _ Interface = (*Path)(nil)
