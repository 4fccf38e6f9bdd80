// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsp

import "github.com/arcgraph/arcgraph/graph"

// IsomorphicTo reports whether a and b are structurally isomorphic:
// there exists a bijection between their nodes preserving adjacency
// (arc direction and edge-ness included). It uses degree-sequence
// pruning followed by backtracking search, practical for the small
// graphs this library's callers construct in memory; it is not meant
// for the hundred-thousand-node regime.
func IsomorphicTo(a, b graph.Interface) bool {
	an, bn := a.Nodes(), b.Nodes()
	if len(an) != len(bn) {
		return false
	}
	if a.ArcCount(graph.All) != b.ArcCount(graph.All) {
		return false
	}

	aAdj := adjacencySignature(a, an)
	bAdj := adjacencySignature(b, bn)

	aDeg := degreeMultiset(aAdj)
	bDeg := degreeMultiset(bAdj)
	if !sameMultiset(aDeg, bDeg) {
		return false
	}

	mapping := make(map[int64]int64, len(an))
	used := make(map[int64]bool, len(bn))
	return backtrack(0, an, bn, aAdj, bAdj, mapping, used)
}

// adjacencySignature maps each node id to the set of (neighborID,
// forward, isEdge) relations, used for both degree pruning and the
// adjacency-preservation check during backtracking.
type relation struct {
	neighbor int64
	forward  bool
	isEdge   bool
}

func adjacencySignature(g graph.Interface, nodes []graph.Node) map[int64][]relation {
	out := make(map[int64][]relation, len(nodes))
	for _, n := range nodes {
		var rels []relation
		for _, arc := range g.ArcsAt(n, graph.All) {
			other := g.Other(arc, n)
			fwd := g.IsEdge(arc) || g.U(arc).ID() == n.ID() // edges have no orientation
			rels = append(rels, relation{other.ID(), fwd, g.IsEdge(arc)})
		}
		out[n.ID()] = rels
	}
	return out
}

func degreeMultiset(adj map[int64][]relation) []int {
	var out []int
	for _, rels := range adj {
		out = append(out, len(rels))
	}
	return out
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int)
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

func backtrack(i int, aNodes, bNodes []graph.Node, aAdj, bAdj map[int64][]relation, mapping map[int64]int64, used map[int64]bool) bool {
	if i == len(aNodes) {
		return true
	}
	u := aNodes[i]
	for _, v := range bNodes {
		if used[v.ID()] {
			continue
		}
		if len(aAdj[u.ID()]) != len(bAdj[v.ID()]) {
			continue
		}
		if !consistent(u, v, aAdj, bAdj, mapping) {
			continue
		}
		mapping[u.ID()] = v.ID()
		used[v.ID()] = true
		if backtrack(i+1, aNodes, bNodes, aAdj, bAdj, mapping, used) {
			return true
		}
		delete(mapping, u.ID())
		used[v.ID()] = false
	}
	return false
}

// consistent checks that every already-mapped neighbor of u
// corresponds to a matching relation from v, and vice versa for
// neighbors of v that are already some node's image.
func consistent(u, v graph.Node, aAdj, bAdj map[int64][]relation, mapping map[int64]int64) bool {
	for _, r := range aAdj[u.ID()] {
		mapped, ok := mapping[r.neighbor]
		if !ok {
			continue
		}
		if !hasRelation(bAdj[v.ID()], mapped, r.forward, r.isEdge) {
			return false
		}
	}
	inverse := make(map[int64]int64, len(mapping))
	for from, to := range mapping {
		inverse[to] = from
	}
	for _, r := range bAdj[v.ID()] {
		pre, ok := inverse[r.neighbor]
		if !ok {
			continue
		}
		if !hasRelation(aAdj[u.ID()], pre, r.forward, r.isEdge) {
			return false
		}
	}
	return true
}

func hasRelation(rels []relation, neighbor int64, forward, isEdge bool) bool {
	for _, r := range rels {
		if r.neighbor == neighbor && r.forward == forward && r.isEdge == isEdge {
			return true
		}
	}
	return false
}
