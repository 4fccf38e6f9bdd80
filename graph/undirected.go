// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// UndirectedView is a read-only view that declares every arc of the base
// graph an edge, regardless of how the base graph stored it. Forward
// and Backward at a node both collapse to the node's full incidence
// set, matching the edge semantics of §3.
type UndirectedView struct {
	base Interface
}

// NewUndirected wraps base so IsEdge is true for every arc.
func NewUndirected(base Interface) *UndirectedView { return &UndirectedView{base: base} }

func (u *UndirectedView) Nodes() []Node { return u.base.Nodes() }

func (u *UndirectedView) Arcs(filter ArcFilter) []Arc {
	if filter == EdgeFilter {
		return u.base.Arcs(All)
	}
	return u.base.Arcs(filter)
}

func (u *UndirectedView) NodeCount() int                { return u.base.NodeCount() }
func (u *UndirectedView) ArcCount(filter ArcFilter) int { return len(u.Arcs(filter)) }

func (u *UndirectedView) ArcsAt(v Node, filter ArcFilter) []Arc {
	switch filter {
	case Forward, Backward, EdgeFilter:
		return u.base.ArcsAt(v, All)
	default:
		return u.base.ArcsAt(v, filter)
	}
}

func (u *UndirectedView) U(a Arc) Node             { return u.base.U(a) }
func (u *UndirectedView) V(a Arc) Node             { return u.base.V(a) }
func (u *UndirectedView) Other(a Arc, v Node) Node { return u.base.Other(a, v) }
func (u *UndirectedView) IsEdge(a Arc) bool        { return true }
func (u *UndirectedView) NodeAt(index int) Node    { return u.base.NodeAt(index) }
func (u *UndirectedView) ArcAt(index int) Arc      { return u.base.ArcAt(index) }

var _ Interface = (*UndirectedView)(nil)
