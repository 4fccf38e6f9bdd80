// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Reversed is a read-only adaptor that swaps U and V for every
// directed arc of the base graph and flips Forward/Backward
// enumeration accordingly; edges are unchanged, since an edge's
// orientation is only a enumeration convenience, not a direction.
type Reversed struct {
	base Interface
}

// NewReversed wraps base so that all directed arcs appear reversed.
func NewReversed(base Interface) *Reversed { return &Reversed{base: base} }

func flip(f ArcFilter) ArcFilter {
	switch f {
	case Forward:
		return Backward
	case Backward:
		return Forward
	default:
		return f
	}
}

func (r *Reversed) Nodes() []Node                { return r.base.Nodes() }
func (r *Reversed) Arcs(filter ArcFilter) []Arc   { return r.base.Arcs(filter) }
func (r *Reversed) NodeCount() int                { return r.base.NodeCount() }
func (r *Reversed) ArcCount(filter ArcFilter) int { return r.base.ArcCount(filter) }

func (r *Reversed) ArcsAt(v Node, filter ArcFilter) []Arc {
	return r.base.ArcsAt(v, flip(filter))
}

func (r *Reversed) U(a Arc) Node {
	if r.base.IsEdge(a) {
		return r.base.U(a)
	}
	return r.base.V(a)
}

func (r *Reversed) V(a Arc) Node {
	if r.base.IsEdge(a) {
		return r.base.V(a)
	}
	return r.base.U(a)
}

func (r *Reversed) Other(a Arc, v Node) Node { return r.base.Other(a, v) }
func (r *Reversed) IsEdge(a Arc) bool        { return r.base.IsEdge(a) }
func (r *Reversed) NodeAt(index int) Node    { return r.base.NodeAt(index) }
func (r *Reversed) ArcAt(index int) Arc      { return r.base.ArcAt(index) }

var _ Interface = (*Reversed)(nil)
