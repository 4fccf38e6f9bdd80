// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/arcgraph/arcgraph/graph"

// DisjointMode selects what "disjoint" means across the returned
// collection of paths.
type DisjointMode int

const (
	// EdgeDisjoint forbids reusing an arc across the returned paths.
	EdgeDisjoint DisjointMode = iota
	// NodeDisjoint additionally forbids reusing any interior node
	// (source and target are exempt).
	NodeDisjoint
)

// DisjointShortestPaths finds up to k mutually disjoint source-target
// paths by repeated Dijkstra over a graph with used arcs (and, under
// NodeDisjoint, arcs touching used interior nodes) excluded in each
// round. Each round takes the shortest path that remains, so the
// combined cost of the collection is not guaranteed to be the minimum
// over all sets of k disjoint paths. This is the general, any-k form; callers
// needing exactly two disjoint paths should prefer
// TwoDisjointShortestPaths, which uses the cheaper residual-reweighting
// construction instead of naive re-search.
func DisjointShortestPaths(g graph.Interface, cost graph.CostFunc, source, target graph.Node, k int, mode DisjointMode) []*graph.Path {
	usedArcs := make(map[int64]bool)
	usedNodes := make(map[int64]bool)

	var out []*graph.Path
	for i := 0; i < k; i++ {
		filtered := graph.NewSubgraph(g)
		for _, a := range g.Arcs(graph.All) {
			if usedArcs[a.ID()] {
				filtered.DisableArc(a)
				continue
			}
			if mode == NodeDisjoint {
				u, v := g.U(a), g.V(a)
				if (usedNodes[u.ID()] && u.ID() != source.ID() && u.ID() != target.ID()) ||
					(usedNodes[v.ID()] && v.ID() != source.ID() && v.ID() != target.ID()) {
					filtered.DisableArc(a)
				}
			}
		}

		d := NewDijkstra(filtered, cost, Sum)
		d.AddSource(source)
		if !d.RunUntilFixed(target) {
			break
		}
		p := d.GetPath(target)
		if p == nil {
			break
		}
		out = append(out, p)
		for _, a := range p.OrderedArcs() {
			usedArcs[a.ID()] = true
			if mode == NodeDisjoint {
				usedNodes[g.U(a).ID()] = true
				usedNodes[g.V(a).ID()] = true
			}
		}
	}
	return out
}

// TwoDisjointShortestPaths finds two edge-disjoint source-target
// paths of minimum combined cost using Suurballe's construction: a
// first ordinary Dijkstra, a second Dijkstra over arc costs reweighted
// by the first search's potentials (making the first path's reverse
// arcs free and every other arc's reduced cost nonnegative), then an
// interference-removal pass that cancels any shared arc traversed in
// opposite directions by the two raw paths.
func TwoDisjointShortestPaths(g graph.Interface, cost graph.CostFunc, source, target graph.Node) []*graph.Path {
	d1 := NewDijkstra(g, cost, Sum)
	d1.AddSource(source)
	d1.Run()
	if !d1.Reached(target) {
		return nil
	}
	p1 := d1.GetPath(target)

	reduced := func(a graph.Arc) float64 {
		u, v := g.U(a), g.V(a)
		du, dv := d1.GetDistance(u), d1.GetDistance(v)
		if du == posInf || dv == posInf {
			return cost(a)
		}
		return cost(a) + du - dv
	}

	// the second search runs on the residual graph: the first path's
	// arcs are removed and replaced by their free reverse arcs.
	residual := graph.NewSubgraph(g)
	for _, a := range p1.OrderedArcs() {
		residual.DisableArc(a)
	}
	overlay := graph.NewSupergraph(residual)
	reversedOnPath := make(map[int64]graph.Arc)
	forwardCost := make(map[int64]float64)
	for _, a := range p1.OrderedArcs() {
		u, v := g.U(a), g.V(a)
		ra := overlay.AddArc(v, u, graph.Directed)
		reversedOnPath[ra.ID()] = a
		forwardCost[ra.ID()] = 0
	}

	cost2 := func(a graph.Arc) float64 {
		if _, ok := forwardCost[a.ID()]; ok {
			return 0
		}
		return reduced(a)
	}

	d2 := NewDijkstra(overlay, cost2, Sum)
	d2.AddSource(source)
	d2.Run()
	if !d2.Reached(target) {
		return []*graph.Path{p1}
	}
	p2raw := d2.GetPath(target)

	type step struct {
		u, v graph.Node
		arc  graph.Arc
	}
	var steps1, steps2 []step
	cur := p1.FirstNode()
	for _, a := range p1.OrderedArcs() {
		nxt := g.Other(a, cur)
		steps1 = append(steps1, step{cur, nxt, a})
		cur = nxt
	}
	cur = p2raw.FirstNode()
	for _, a := range p2raw.OrderedArcs() {
		var nxt graph.Node
		if orig, ok := reversedOnPath[a.ID()]; ok {
			nxt = g.U(orig)
			a = orig
		} else {
			nxt = overlay.Other(a, cur)
		}
		steps2 = append(steps2, step{cur, nxt, a})
		cur = nxt
	}

	// cancel interference: an arc traversed u->v by one walk and v->u
	// by the other contributes to neither final path.
	cancel := make(map[int64]bool)
	for _, s1 := range steps1 {
		for _, s2 := range steps2 {
			if s1.arc.ID() == s2.arc.ID() && s1.u.ID() == s2.v.ID() && s1.v.ID() == s2.u.ID() {
				cancel[s1.arc.ID()] = true
			}
		}
	}

	// Re-stitch from the symmetric-difference arc set rather than
	// filtering each raw walk in place: when a cancelled arc is
	// interior to a walk, the surviving steps of that walk alone are
	// no longer contiguous, so they must instead be reassembled by
	// following whichever surviving directed step leaves the current
	// node, picking up steps from either raw walk as needed.
	adj := make(map[int64][]step)
	for _, s := range steps1 {
		if !cancel[s.arc.ID()] {
			adj[s.u.ID()] = append(adj[s.u.ID()], s)
		}
	}
	for _, s := range steps2 {
		if !cancel[s.arc.ID()] {
			adj[s.u.ID()] = append(adj[s.u.ID()], s)
		}
	}

	walk := func() *graph.Path {
		p := graph.NewPath(g, source)
		cur := source
		for cur.ID() != target.ID() {
			opts := adj[cur.ID()]
			if len(opts) == 0 {
				break
			}
			s := opts[0]
			adj[cur.ID()] = opts[1:]
			p.Extend(s.arc)
			cur = s.v
		}
		return p
	}

	return []*graph.Path{walk(), walk()}
}
