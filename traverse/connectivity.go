// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import (
	"sort"

	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/internal/uf"
)

// ConnectedComponents returns the connected components of g, treating
// every arc as undirected (All filter), one slice of nodes per
// component.
func ConnectedComponents(g graph.Interface) [][]graph.Node {
	var (
		cur []graph.Node
		out [][]graph.Node
	)
	WalkAll(graph.NewUndirected(g), func(n graph.Node) {
		cur = append(cur, n)
	}, func() {
		out = append(out, cur)
		cur = nil
	})
	return out
}

// StronglyConnectedComponents returns the strongly connected
// components of the directed graph g using Kosaraju's two-pass
// algorithm: a DFS over g recording finish order, then a DFS over the
// reversed graph processed in reverse finish order.
func StronglyConnectedComponents(g graph.Interface) [][]graph.Node {
	finishOrder := postOrderAll(g)

	rev := graph.NewReversed(g)
	visited := make(map[int64]bool)
	var out [][]graph.Node
	for i := len(finishOrder) - 1; i >= 0; i-- {
		root := finishOrder[i]
		if visited[root.ID()] {
			continue
		}
		var comp []graph.Node
		stack := []graph.Node{root}
		visited[root.ID()] = true
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, n)
			for _, a := range rev.ArcsAt(n, graph.Forward) {
				v := rev.Other(a, n)
				if !visited[v.ID()] {
					visited[v.ID()] = true
					stack = append(stack, v)
				}
			}
		}
		out = append(out, comp)
	}
	return out
}

// postOrderAll returns every node of g in DFS post-order (finish
// order), covering every component.
func postOrderAll(g graph.Interface) []graph.Node {
	visited := make(map[int64]bool)
	var order []graph.Node
	for _, root := range g.Nodes() {
		if visited[root.ID()] {
			continue
		}
		type step struct {
			n        graph.Node
			children []graph.Node
			idx      int
		}
		stack := []*step{{n: root}}
		visited[root.ID()] = true
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.children == nil {
				for _, a := range g.ArcsAt(top.n, graph.Forward) {
					top.children = append(top.children, g.Other(a, top.n))
				}
			}
			advanced := false
			for top.idx < len(top.children) {
				c := top.children[top.idx]
				top.idx++
				if !visited[c.ID()] {
					visited[c.ID()] = true
					stack = append(stack, &step{n: c})
					advanced = true
					break
				}
			}
			if advanced {
				continue
			}
			order = append(order, top.n)
			stack = stack[:len(stack)-1]
		}
	}
	return order
}

// Bridges returns the bridges (cut edges) of the undirected graph g:
// edges whose removal increases the number of connected components.
// Computed via Tarjan's lowlink DFS.
func Bridges(g graph.Interface) []graph.Arc {
	disc := make(map[int64]int)
	low := make(map[int64]int)
	var bridges []graph.Arc
	counter := 0

	var dfs func(u graph.Node, parentArc graph.Arc)
	dfs = func(u graph.Node, parentArc graph.Arc) {
		disc[u.ID()] = counter
		low[u.ID()] = counter
		counter++
		for _, a := range g.ArcsAt(u, graph.All) {
			if parentArc.IsValid() && a.ID() == parentArc.ID() {
				continue
			}
			v := g.Other(a, u)
			if _, seen := disc[v.ID()]; !seen {
				dfs(v, a)
				if low[v.ID()] < low[u.ID()] {
					low[u.ID()] = low[v.ID()]
				}
				if low[v.ID()] > disc[u.ID()] {
					bridges = append(bridges, a)
				}
			} else if low[v.ID()] < low[u.ID()] {
				low[u.ID()] = low[v.ID()]
			}
		}
	}

	for _, n := range g.Nodes() {
		if _, seen := disc[n.ID()]; !seen {
			dfs(n, graph.InvalidArc)
		}
	}
	return bridges
}

// CutVertices returns the articulation points of the undirected graph
// g: nodes whose removal increases the number of connected
// components.
func CutVertices(g graph.Interface) []graph.Node {
	disc := make(map[int64]int)
	low := make(map[int64]int)
	isCut := make(map[int64]bool)
	counter := 0

	var dfs func(u graph.Node, parentArc graph.Arc) int
	dfs = func(u graph.Node, parentArc graph.Arc) int {
		disc[u.ID()] = counter
		low[u.ID()] = counter
		counter++
		children := 0
		for _, a := range g.ArcsAt(u, graph.All) {
			if parentArc.IsValid() && a.ID() == parentArc.ID() {
				continue
			}
			v := g.Other(a, u)
			if _, seen := disc[v.ID()]; !seen {
				children++
				dfs(v, a)
				if low[v.ID()] < low[u.ID()] {
					low[u.ID()] = low[v.ID()]
				}
				if parentArc.IsValid() && low[v.ID()] >= disc[u.ID()] {
					isCut[u.ID()] = true
				}
			} else if low[v.ID()] < low[u.ID()] {
				low[u.ID()] = low[v.ID()]
			}
		}
		return children
	}

	for _, n := range g.Nodes() {
		if _, seen := disc[n.ID()]; !seen {
			rootChildren := dfs(n, graph.InvalidArc)
			if rootChildren > 1 {
				isCut[n.ID()] = true
			}
		}
	}

	var out []graph.Node
	for _, n := range g.Nodes() {
		if isCut[n.ID()] {
			out = append(out, n)
		}
	}
	return out
}

// SpanningForest returns a spanning forest of g (one tree per
// connected component) as its constituent arcs. When cost is
// non-nil, Kruskal's algorithm (via disjoint-set union) selects the
// minimum-weight forest; otherwise a BFS tree per component is used.
func SpanningForest(g graph.Interface, cost graph.CostFunc) []graph.Arc {
	if cost == nil {
		var out []graph.Arc
		b := NewBreadthFirst(graph.NewUndirected(g))
		for _, n := range g.Nodes() {
			if b.Reached(n) {
				continue
			}
			b.AddSource(n)
			for b.Step() {
			}
		}
		for _, n := range g.Nodes() {
			if a := b.ParentArc(n); a.IsValid() {
				out = append(out, a)
			}
		}
		return out
	}

	arcs := append([]graph.Arc(nil), g.Arcs(graph.All)...)
	sort.Slice(arcs, func(i, j int) bool { return cost(arcs[i]) < cost(arcs[j]) })

	sets := uf.New()
	for _, n := range g.Nodes() {
		sets.MakeSet(n.ID())
	}
	var out []graph.Arc
	for _, a := range arcs {
		u, v := g.U(a), g.V(a)
		if !sets.Connected(u.ID(), v.ID()) {
			sets.Union(u.ID(), v.ID())
			out = append(out, a)
		}
	}
	return out
}
