// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Graph is the concrete mutable graph. It stores nodes and arcs in
// two insertion-ordered tables keyed by monotonic ids (the arena +
// stable-index pattern: NodeAt/ArcAt index into these tables, and the
// index assigned to a node or arc never changes for the lifetime of
// the graph). Per node it maintains four secondary indices (All,
// Edge, Forward, Backward) materialized as slices of Arc so that
// filtered enumeration is O(deg). Deletion is linear in the affected
// adjacency lists; removed handles are never reused.
type Graph struct {
	nodes []nodeEntry
	arcs  []arcEntry

	// adjacency[filter][nodeIndex] -> arc indices, filter in
	// {All, EdgeFilter, Forward, Backward}.
	adjacency [4]map[int][]int
}

type nodeEntry struct {
	id    int64
	alive bool
}

type arcEntry struct {
	id    int64
	u, v  int // node indices, not ids
	dir   Directedness
	alive bool
}

// New returns an empty mutable graph.
func New() *Graph {
	g := &Graph{}
	for i := range g.adjacency {
		g.adjacency[i] = make(map[int][]int)
	}
	return g
}

func (g *Graph) nodeIndex(n Node) int {
	// Node ids and indices coincide by construction (ids are assigned
	// as 0, 1, 2, ... and never reused), so the id doubles as the
	// stable index into g.nodes.
	return int(n.id)
}

func (g *Graph) arcIndex(a Arc) int {
	return int(a.id)
}

func (g *Graph) nodeAliveAt(idx int) bool {
	return idx >= 0 && idx < len(g.nodes) && g.nodes[idx].alive
}

func (g *Graph) arcAliveAt(idx int) bool {
	return idx >= 0 && idx < len(g.arcs) && g.arcs[idx].alive
}

// AddNode creates a new node and returns its handle. O(1).
func (g *Graph) AddNode() Node {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, nodeEntry{id: int64(idx), alive: true})
	return Node{id: int64(idx)}
}

// AddArc creates an arc (or, for Undirected, an edge) from u to v and
// returns its handle. AddArc updates the All/Edge/Forward/Backward
// secondary indices of both endpoints according to d. O(1) amortized.
func (g *Graph) AddArc(u, v Node, d Directedness) Arc {
	ui, vi := g.nodeIndex(u), g.nodeIndex(v)
	if !g.nodeAliveAt(ui) || !g.nodeAliveAt(vi) {
		panic("graph: AddArc with node not in graph")
	}
	idx := len(g.arcs)
	g.arcs = append(g.arcs, arcEntry{id: int64(idx), u: ui, v: vi, dir: d, alive: true})

	if d == Undirected {
		g.adjacency[edgeIdx][ui] = append(g.adjacency[edgeIdx][ui], idx)
		g.adjacency[edgeIdx][vi] = append(g.adjacency[edgeIdx][vi], idx)
		g.adjacency[forwardIdx][ui] = append(g.adjacency[forwardIdx][ui], idx)
		g.adjacency[forwardIdx][vi] = append(g.adjacency[forwardIdx][vi], idx)
		g.adjacency[backwardIdx][ui] = append(g.adjacency[backwardIdx][ui], idx)
		g.adjacency[backwardIdx][vi] = append(g.adjacency[backwardIdx][vi], idx)
	} else {
		g.adjacency[forwardIdx][ui] = append(g.adjacency[forwardIdx][ui], idx)
		g.adjacency[backwardIdx][vi] = append(g.adjacency[backwardIdx][vi], idx)
	}
	g.adjacency[allIdx][ui] = append(g.adjacency[allIdx][ui], idx)
	if vi != ui {
		g.adjacency[allIdx][vi] = append(g.adjacency[allIdx][vi], idx)
	}

	return Arc{id: int64(idx)}
}

const (
	allIdx      = int(All)
	edgeIdx     = int(EdgeFilter)
	forwardIdx  = int(Forward)
	backwardIdx = int(Backward)
)

// Clear removes every node and arc, invalidating all previously
// issued handles.
func (g *Graph) Clear() {
	g.nodes = nil
	g.arcs = nil
	for i := range g.adjacency {
		g.adjacency[i] = make(map[int][]int)
	}
}

// DeleteArc removes a. It is a no-op if a is already deleted or does
// not belong to this graph. Linear in the degree of a's endpoints.
func (g *Graph) DeleteArc(a Arc) {
	idx := g.arcIndex(a)
	if !g.arcAliveAt(idx) {
		return
	}
	e := g.arcs[idx]
	g.arcs[idx].alive = false
	for f := range g.adjacency {
		g.adjacency[f][e.u] = removeArcIndex(g.adjacency[f][e.u], idx)
		if e.v != e.u {
			g.adjacency[f][e.v] = removeArcIndex(g.adjacency[f][e.v], idx)
		}
	}
}

// DeleteNode removes v and every arc incident to it.
func (g *Graph) DeleteNode(v Node) {
	idx := g.nodeIndex(v)
	if !g.nodeAliveAt(idx) {
		return
	}
	for _, ai := range append([]int(nil), g.adjacency[allIdx][idx]...) {
		g.DeleteArc(Arc{id: int64(ai)})
	}
	g.nodes[idx].alive = false
	for f := range g.adjacency {
		delete(g.adjacency[f], idx)
	}
}

func removeArcIndex(s []int, idx int) []int {
	for i, x := range s {
		if x == idx {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// Nodes returns every live node.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if n.alive {
			out = append(out, Node{id: n.id})
		}
	}
	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	n := 0
	for _, e := range g.nodes {
		if e.alive {
			n++
		}
	}
	return n
}

// Arcs returns every live arc matching filter. For whole-graph
// enumeration, EdgeFilter returns only edges; Forward and Backward
// are treated as All (they are node-relative filters).
func (g *Graph) Arcs(filter ArcFilter) []Arc {
	out := make([]Arc, 0, len(g.arcs))
	for _, e := range g.arcs {
		if !e.alive {
			continue
		}
		if filter == EdgeFilter && e.dir != Undirected {
			continue
		}
		out = append(out, Arc{id: e.id})
	}
	return out
}

// ArcCount returns the number of live arcs matching filter.
func (g *Graph) ArcCount(filter ArcFilter) int {
	n := 0
	for _, e := range g.arcs {
		if !e.alive {
			continue
		}
		if filter == EdgeFilter && e.dir != Undirected {
			continue
		}
		n++
	}
	return n
}

// ArcsAt returns the arcs incident to v matching filter.
func (g *Graph) ArcsAt(v Node, filter ArcFilter) []Arc {
	idx := g.nodeIndex(v)
	if !g.nodeAliveAt(idx) {
		return nil
	}
	ids := g.adjacency[int(filter)][idx]
	out := make([]Arc, 0, len(ids))
	for _, ai := range ids {
		if g.arcAliveAt(ai) {
			out = append(out, Arc{id: int64(ai)})
		}
	}
	return out
}

// U returns the designated U-end of a.
func (g *Graph) U(a Arc) Node {
	return Node{id: int64(g.arcs[g.arcIndex(a)].u)}
}

// V returns the designated V-end of a.
func (g *Graph) V(a Arc) Node {
	return Node{id: int64(g.arcs[g.arcIndex(a)].v)}
}

// Other returns the endpoint of a that is not v.
func (g *Graph) Other(a Arc, v Node) Node {
	e := g.arcs[g.arcIndex(a)]
	vi := g.nodeIndex(v)
	switch vi {
	case e.u:
		return Node{id: int64(e.v)}
	case e.v:
		return Node{id: int64(e.u)}
	default:
		panic("graph: Other called with a node that is not an endpoint of the arc")
	}
}

// IsEdge reports whether a is an undirected edge.
func (g *Graph) IsEdge(a Arc) bool {
	return g.arcs[g.arcIndex(a)].dir == Undirected
}

// NodeAt returns the node at the given stable index, or InvalidNode
// if index is out of range or the node has been deleted.
func (g *Graph) NodeAt(index int) Node {
	if !g.nodeAliveAt(index) {
		return InvalidNode
	}
	return Node{id: int64(index)}
}

// ArcAt returns the arc at the given stable index, or InvalidArc if
// index is out of range or the arc has been deleted.
func (g *Graph) ArcAt(index int) Arc {
	if !g.arcAliveAt(index) {
		return InvalidArc
	}
	return Arc{id: int64(index)}
}

var _ Interface = (*Graph)(nil)
var _ Mutable = (*Graph)(nil)
