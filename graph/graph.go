// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph defines the node/arc handle types and the graph
// capability interface shared by the concrete mutable graph and all
// of its read-only adaptors (subgraph, reversed, contracted,
// supergraph, path-as-graph, undirected view).
package graph

import "fmt"

// Node is an opaque handle identifying a vertex. Equality is by
// identity (the embedded id), not by any payload; Node carries no
// intrinsic payload of its own.
type Node struct {
	id int64
}

// InvalidNode is the sentinel "no such node" value.
var InvalidNode = Node{id: -1}

// ID returns the node's 64-bit identity.
func (n Node) ID() int64 { return n.id }

// IsValid reports whether n is anything other than InvalidNode.
func (n Node) IsValid() bool { return n.id >= 0 }

func (n Node) String() string {
	if !n.IsValid() {
		return "Node(invalid)"
	}
	return fmt.Sprintf("Node(%d)", n.id)
}

// Arc is an opaque handle identifying a directed arc or, when its
// Directedness is Undirected, an edge. Each arc carries a designated
// U-end and V-end; for an edge the orientation is only used to
// enumerate "forward" neighbors consistently (see ArcFilter).
type Arc struct {
	id int64
}

// InvalidArc is the sentinel "no such arc" value.
var InvalidArc = Arc{id: -1}

// ID returns the arc's 64-bit identity.
func (a Arc) ID() int64 { return a.id }

// IsValid reports whether a is anything other than InvalidArc.
func (a Arc) IsValid() bool { return a.id >= 0 }

func (a Arc) String() string {
	if !a.IsValid() {
		return "Arc(invalid)"
	}
	return fmt.Sprintf("Arc(%d)", a.id)
}

// Directedness distinguishes directed arcs from undirected edges.
type Directedness int

const (
	// Directed marks an arc with a single orientation, U -> V.
	Directed Directedness = iota
	// Undirected marks an edge: U and V are interchangeable endpoints.
	Undirected
)

func (d Directedness) String() string {
	if d == Undirected {
		return "Undirected"
	}
	return "Directed"
}

// ArcFilter restricts arc enumeration to a subset of the arcs
// touching a node.
type ArcFilter int

const (
	// All enumerates every arc incident to the node, directed or not.
	All ArcFilter = iota
	// EdgeFilter enumerates only the edges (undirected arcs) incident
	// to the node.
	EdgeFilter
	// Forward enumerates directed arcs with U = node plus edges
	// incident to node.
	Forward
	// Backward enumerates directed arcs with V = node plus edges
	// incident to node.
	Backward
)

func (f ArcFilter) String() string {
	switch f {
	case EdgeFilter:
		return "Edge"
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "All"
	}
}

// Interface is the polymorphic read-only capability every adaptor and
// concrete graph satisfies. It is named Interface (rather than Graph)
// so that the common embedding pattern `graph.Interface` reads
// naturally at call sites that also need to talk about a concrete
// *graph.Graph value.
type Interface interface {
	// Nodes returns all nodes of the graph in an unspecified but
	// stable-within-a-call order.
	Nodes() []Node

	// Arcs returns all arcs matching filter. EdgeFilter returns only
	// the edges; Forward and Backward are meaningless for the
	// whole-graph enumeration and are treated as All; per-node
	// enumeration is where they apply.
	Arcs(filter ArcFilter) []Arc

	// NodeCount returns len(Nodes()) without materializing the slice.
	NodeCount() int

	// ArcCount returns the number of arcs of the graph matching filter.
	ArcCount(filter ArcFilter) int

	// ArcsAt returns the arcs incident to v matching filter.
	ArcsAt(v Node, filter ArcFilter) []Arc

	// U returns the designated U-end of a.
	U(a Arc) Node
	// V returns the designated V-end of a.
	V(a Arc) Node
	// Other returns the endpoint of a that is not v. It panics if v
	// is not an endpoint of a.
	Other(a Arc, v Node) Node

	// IsEdge reports whether a is an undirected edge.
	IsEdge(a Arc) bool

	// NodeAt and ArcAt look nodes and arcs up by their stable index
	// within this graph instance (0 <= index < count). They are used
	// by algorithms that maintain parallel dense tables.
	NodeAt(index int) Node
	ArcAt(index int) Arc
}

// Mutable additionally supports structural edits. Concrete graphs
// implement it; adaptors generally do not (Subgraph and Contracted
// expose their own narrower mutators, Enable/Disable and Merge,
// instead of satisfying Mutable).
type Mutable interface {
	Interface

	// AddNode creates a new node and returns its handle.
	AddNode() Node
	// AddArc creates an arc (or edge, for Undirected) between u and v
	// and returns its handle.
	AddArc(u, v Node, d Directedness) Arc
	// Clear removes every node and arc, invalidating all handles.
	Clear()
	// DeleteNode removes v and every arc incident to it. DeleteNode
	// is linear in the size of v's adjacency.
	DeleteNode(v Node)
	// DeleteArc removes a. DeleteArc is linear in the size of the
	// adjacency of a's endpoints.
	DeleteArc(a Arc)
}

// CostFunc assigns a real cost to an arc. Algorithms document their
// own sign constraints.
type CostFunc func(Arc) float64

// CapacityFunc assigns a nonnegative capacity, or +Inf, to an arc.
type CapacityFunc func(Arc) float64

// HeuristicFunc estimates a nonnegative remaining cost from a node to
// a fixed (algorithm-specific) target.
type HeuristicFunc func(Node) float64

// NodeFilterFunc is a node membership predicate, used by Subgraph and
// spanning-forest style algorithms.
type NodeFilterFunc func(Node) bool

// ArcFilterFunc is an arc membership predicate.
type ArcFilterFunc func(Arc) bool

// BipartitionFunc classifies a node into one of the two sides of a
// bipartite graph; true is conventionally the "left" side.
type BipartitionFunc func(Node) bool
