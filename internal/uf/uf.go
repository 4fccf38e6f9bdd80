// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uf implements a disjoint-set (union-find) forest with path
// compression and union by rank, grounded on the djSet/dsNode pattern
// used by the teacher's shortest-path package for its own internal
// cycle bookkeeping, generalized here to an exported, reusable
// component per spec.md §4.2: used by spanning forest construction
// (traverse.SpanningForest) and the graph.Contracted adaptor. Blossom
// matching and network simplex do not use it.
package uf

// Set is a disjoint-set forest over int64 elements. The zero value is
// not ready for use; call New.
type Set struct {
	parent map[int64]int64
	rank   map[int64]int
}

// New returns an empty disjoint-set forest.
func New() *Set {
	return &Set{parent: make(map[int64]int64), rank: make(map[int64]int)}
}

// MakeSet adds e as a new singleton set if it is not already present.
func (s *Set) MakeSet(e int64) {
	if _, ok := s.parent[e]; ok {
		return
	}
	s.parent[e] = e
	s.rank[e] = 0
}

// Find returns the representative of the set containing e, applying
// path compression along the way. It panics if e was never added via
// MakeSet.
func (s *Set) Find(e int64) int64 {
	p, ok := s.parent[e]
	if !ok {
		panic("uf: Find of unknown element")
	}
	if p != e {
		root := s.Find(p)
		s.parent[e] = root
		return root
	}
	return e
}

// Union merges the sets containing a and b, returning the new
// representative. Union by rank keeps the resulting tree shallow.
func (s *Set) Union(a, b int64) int64 {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return ra
	}
	if s.rank[ra] < s.rank[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	if s.rank[ra] == s.rank[rb] {
		s.rank[ra]++
	}
	return ra
}

// Connected reports whether a and b are in the same set.
func (s *Set) Connected(a, b int64) bool {
	return s.Find(a) == s.Find(b)
}
