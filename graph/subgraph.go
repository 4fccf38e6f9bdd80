// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Subgraph is a read-only view over a base graph defined by a pair of
// mutable node/arc toggles. Toggling a node off transparently hides
// its incident arcs from enumeration, even though the arc toggle
// itself is untouched, satisfying the "node filter implies arc
// filter" guarantee from spec.md §4.3.
type Subgraph struct {
	base Interface

	disabledNodes map[int64]bool
	disabledArcs  map[int64]bool
}

// NewSubgraph wraps base with all nodes and arcs initially enabled.
func NewSubgraph(base Interface) *Subgraph {
	return &Subgraph{
		base:          base,
		disabledNodes: make(map[int64]bool),
		disabledArcs:  make(map[int64]bool),
	}
}

// EnableNode re-admits a previously disabled node.
func (s *Subgraph) EnableNode(n Node) { delete(s.disabledNodes, n.ID()) }

// DisableNode hides n and, transparently, every arc incident to it.
func (s *Subgraph) DisableNode(n Node) { s.disabledNodes[n.ID()] = true }

// EnableArc re-admits a previously disabled arc.
func (s *Subgraph) EnableArc(a Arc) { delete(s.disabledArcs, a.ID()) }

// DisableArc hides a without affecting its endpoints.
func (s *Subgraph) DisableArc(a Arc) { s.disabledArcs[a.ID()] = true }

func (s *Subgraph) nodeLive(n Node) bool { return !s.disabledNodes[n.ID()] }

func (s *Subgraph) arcLive(a Arc) bool {
	if s.disabledArcs[a.ID()] {
		return false
	}
	return s.nodeLive(s.base.U(a)) && s.nodeLive(s.base.V(a))
}

func (s *Subgraph) Nodes() []Node {
	var out []Node
	for _, n := range s.base.Nodes() {
		if s.nodeLive(n) {
			out = append(out, n)
		}
	}
	return out
}

func (s *Subgraph) Arcs(filter ArcFilter) []Arc {
	var out []Arc
	for _, a := range s.base.Arcs(filter) {
		if s.arcLive(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Subgraph) NodeCount() int { return len(s.Nodes()) }

func (s *Subgraph) ArcCount(filter ArcFilter) int { return len(s.Arcs(filter)) }

func (s *Subgraph) ArcsAt(v Node, filter ArcFilter) []Arc {
	if !s.nodeLive(v) {
		return nil
	}
	var out []Arc
	for _, a := range s.base.ArcsAt(v, filter) {
		if s.arcLive(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Subgraph) U(a Arc) Node                { return s.base.U(a) }
func (s *Subgraph) V(a Arc) Node                { return s.base.V(a) }
func (s *Subgraph) Other(a Arc, v Node) Node    { return s.base.Other(a, v) }
func (s *Subgraph) IsEdge(a Arc) bool           { return s.base.IsEdge(a) }
func (s *Subgraph) NodeAt(index int) Node {
	n := s.base.NodeAt(index)
	if n.IsValid() && !s.nodeLive(n) {
		return InvalidNode
	}
	return n
}
func (s *Subgraph) ArcAt(index int) Arc {
	a := s.base.ArcAt(index)
	if a.IsValid() && !s.arcLive(a) {
		return InvalidArc
	}
	return a
}

var _ Interface = (*Subgraph)(nil)
