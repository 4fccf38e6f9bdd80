// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "github.com/arcgraph/arcgraph/internal/uf"

// Contracted overlays a disjoint-set quotient on the nodes of a base
// graph: each group is presented through a single representative
// node. Arcs within a group are hidden (their U and V both map to the
// same representative); inter-group arcs are renumbered to their
// representatives via U/V. Merge is the adaptor's mutator, grounded
// on spec.md §4.3's "contracted-graph quotient with incremental
// merges -> DisjointSet over nodes; arc enumeration maps endpoints
// through Find on demand".
type Contracted struct {
	base Interface
	sets *uf.Set
}

// NewContracted returns a Contracted view over base with every node
// initially its own singleton group.
func NewContracted(base Interface) *Contracted {
	c := &Contracted{base: base, sets: uf.New()}
	for _, n := range base.Nodes() {
		c.sets.MakeSet(n.ID())
	}
	return c
}

// Merge joins the groups containing a and b and returns the new
// representative node.
func (c *Contracted) Merge(a, b Node) Node {
	rep := c.sets.Union(a.ID(), b.ID())
	return Node{id: rep}
}

// Representative returns the representative node of n's group.
func (c *Contracted) Representative(n Node) Node {
	return Node{id: c.sets.Find(n.ID())}
}

func (c *Contracted) sameGroup(a, b Node) bool {
	return c.sets.Find(a.ID()) == c.sets.Find(b.ID())
}

// Nodes returns one node per group: the representative.
func (c *Contracted) Nodes() []Node {
	seen := make(map[int64]bool)
	var out []Node
	for _, n := range c.base.Nodes() {
		rep := c.sets.Find(n.ID())
		if !seen[rep] {
			seen[rep] = true
			out = append(out, Node{id: rep})
		}
	}
	return out
}

// Arcs returns the inter-group arcs of the base graph; intra-group
// arcs are hidden.
func (c *Contracted) Arcs(filter ArcFilter) []Arc {
	var out []Arc
	for _, a := range c.base.Arcs(filter) {
		if !c.sameGroup(c.base.U(a), c.base.V(a)) {
			out = append(out, a)
		}
	}
	return out
}

func (c *Contracted) NodeCount() int { return len(c.Nodes()) }

func (c *Contracted) ArcCount(filter ArcFilter) int { return len(c.Arcs(filter)) }

// ArcsAt returns the inter-group arcs incident to any node sharing
// v's group.
func (c *Contracted) ArcsAt(v Node, filter ArcFilter) []Arc {
	var out []Arc
	for _, n := range c.base.Nodes() {
		if !c.sameGroup(n, v) {
			continue
		}
		for _, a := range c.base.ArcsAt(n, filter) {
			if !c.sameGroup(c.base.U(a), c.base.V(a)) {
				out = append(out, a)
			}
		}
	}
	return out
}

func (c *Contracted) U(a Arc) Node { return c.Representative(c.base.U(a)) }
func (c *Contracted) V(a Arc) Node { return c.Representative(c.base.V(a)) }

func (c *Contracted) Other(a Arc, v Node) Node {
	u, vv := c.U(a), c.V(a)
	switch v.ID() {
	case u.ID():
		return vv
	case vv.ID():
		return u
	default:
		panic("graph: Contracted.Other called with a node that is not an endpoint")
	}
}

func (c *Contracted) IsEdge(a Arc) bool { return c.base.IsEdge(a) }

func (c *Contracted) NodeAt(index int) Node {
	n := c.base.NodeAt(index)
	if !n.IsValid() {
		return InvalidNode
	}
	return c.Representative(n)
}

func (c *Contracted) ArcAt(index int) Arc {
	a := c.base.ArcAt(index)
	if a.IsValid() && c.sameGroup(c.base.U(a), c.base.V(a)) {
		return InvalidArc
	}
	return a
}

var _ Interface = (*Contracted)(nil)
