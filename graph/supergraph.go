// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Supergraph wraps a base graph and adds extra nodes and arcs on top,
// presenting the union as a single graph. The overlay is its own
// small mutable graph; the base graph is never written to. Node and
// arc id spaces are kept disjoint by biasing the overlay's ids past
// the highest id the base graph had when the Supergraph was created
// (consistent with spec.md's read-only-while-an-algorithm-holds-it
// adaptor lifecycle: the base is not expected to mutate underneath a
// live Supergraph).
type Supergraph struct {
	base Interface

	extra    *Graph
	nodeBias int64
	arcBias  int64

	// baseMirror maps a base node's id to its mirrored Node inside
	// extra, created lazily the first time an overlay arc touches it.
	baseMirror       map[int64]Node
	baseMirrorInverse map[int64]int64 // extra node id -> base node id
}

// NewSupergraph wraps base with an initially-empty overlay.
func NewSupergraph(base Interface) *Supergraph {
	s := &Supergraph{
		base:              base,
		extra:             New(),
		baseMirror:        make(map[int64]Node),
		baseMirrorInverse: make(map[int64]int64),
	}
	for _, n := range base.Nodes() {
		if n.id+1 > s.nodeBias {
			s.nodeBias = n.id + 1
		}
	}
	for _, a := range base.Arcs(All) {
		if a.id+1 > s.arcBias {
			s.arcBias = a.id + 1
		}
	}
	return s
}

func (s *Supergraph) mirrorOf(base Node) Node {
	if m, ok := s.baseMirror[base.ID()]; ok {
		return m
	}
	m := s.extra.AddNode()
	s.baseMirror[base.ID()] = m
	s.baseMirrorInverse[m.ID()] = base.ID()
	return m
}

// AddNode adds a new overlay node, disjoint from every base node.
func (s *Supergraph) AddNode() Node {
	n := s.extra.AddNode()
	return Node{id: n.id + s.nodeBias}
}

func (s *Supergraph) isOverlayNode(n Node) bool { return n.id >= s.nodeBias }
func (s *Supergraph) toExtraNode(n Node) Node   { return Node{id: n.id - s.nodeBias} }

// AddArc adds an arc between u and v, either or both of which may be
// base or overlay nodes, and returns a new overlay arc handle.
func (s *Supergraph) AddArc(u, v Node, d Directedness) Arc {
	eu := s.resolveToExtra(u)
	ev := s.resolveToExtra(v)
	a := s.extra.AddArc(eu, ev, d)
	return Arc{id: a.id + s.arcBias}
}

func (s *Supergraph) resolveToExtra(n Node) Node {
	if s.isOverlayNode(n) {
		return s.toExtraNode(n)
	}
	return s.mirrorOf(n)
}

func (s *Supergraph) isOverlayArc(a Arc) bool { return a.id >= s.arcBias }
func (s *Supergraph) toExtraArc(a Arc) Arc    { return Arc{id: a.id - s.arcBias} }

func (s *Supergraph) fromExtraNode(n Node) Node {
	if baseID, ok := s.baseMirrorInverse[n.ID()]; ok {
		return Node{id: baseID}
	}
	return Node{id: n.id + s.nodeBias}
}

func (s *Supergraph) Nodes() []Node {
	out := append([]Node(nil), s.base.Nodes()...)
	for _, n := range s.extra.Nodes() {
		if _, mirrored := s.baseMirrorInverse[n.ID()]; !mirrored {
			out = append(out, Node{id: n.id + s.nodeBias})
		}
	}
	return out
}

func (s *Supergraph) Arcs(filter ArcFilter) []Arc {
	out := append([]Arc(nil), s.base.Arcs(filter)...)
	for _, a := range s.extra.Arcs(filter) {
		out = append(out, Arc{id: a.id + s.arcBias})
	}
	return out
}

func (s *Supergraph) NodeCount() int                { return len(s.Nodes()) }
func (s *Supergraph) ArcCount(filter ArcFilter) int { return len(s.Arcs(filter)) }

func (s *Supergraph) ArcsAt(v Node, filter ArcFilter) []Arc {
	var out []Arc
	if !s.isOverlayNode(v) {
		out = append(out, s.base.ArcsAt(v, filter)...)
	}
	ev := s.resolveToExtra(v)
	for _, a := range s.extra.ArcsAt(ev, filter) {
		out = append(out, Arc{id: a.id + s.arcBias})
	}
	return out
}

func (s *Supergraph) U(a Arc) Node {
	if s.isOverlayArc(a) {
		return s.fromExtraNode(s.extra.U(s.toExtraArc(a)))
	}
	return s.base.U(a)
}

func (s *Supergraph) V(a Arc) Node {
	if s.isOverlayArc(a) {
		return s.fromExtraNode(s.extra.V(s.toExtraArc(a)))
	}
	return s.base.V(a)
}

func (s *Supergraph) Other(a Arc, v Node) Node {
	u, vv := s.U(a), s.V(a)
	switch v.ID() {
	case u.ID():
		return vv
	case vv.ID():
		return u
	default:
		panic("graph: Supergraph.Other called with a node that is not an endpoint")
	}
}

func (s *Supergraph) IsEdge(a Arc) bool {
	if s.isOverlayArc(a) {
		return s.extra.IsEdge(s.toExtraArc(a))
	}
	return s.base.IsEdge(a)
}

func (s *Supergraph) NodeAt(index int) Node {
	for _, n := range s.Nodes() {
		if int(n.ID()) == index {
			return n
		}
	}
	return InvalidNode
}

func (s *Supergraph) ArcAt(index int) Arc {
	for _, a := range s.Arcs(All) {
		if int(a.ID()) == index {
			return a
		}
	}
	return InvalidArc
}

var _ Interface = (*Supergraph)(nil)
