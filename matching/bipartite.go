// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matching

import (
	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/path"
)

// Mode selects whether bipartite matching must saturate the smaller
// side (Perfect) or may stop at the best matching found so far
// (BestEffort), mirroring the Sum/Maximum two-valued enum style used
// by the rest of the shortest-path family.
type Mode int

const (
	// BestEffort returns the largest (for Max) or cheapest-subject-to-
	// largest (for MinCost) matching achievable, even if it does not
	// saturate either side.
	BestEffort Mode = iota
	// Perfect requires every left node to be matched; MinCost returns
	// graph.ErrInfeasible if no such matching exists.
	Perfect
)

// Bipartite computes maximum-cardinality matchings (MaxCardinality)
// and minimum-cost matchings (MinCost) over a bipartite graph whose
// two sides are identified by left.
type Bipartite struct {
	g     graph.Interface
	left  graph.BipartitionFunc
	nodes []graph.Node
}

// NewBipartite returns a Bipartite matcher over g, whose left side is
// exactly the nodes for which left returns true.
func NewBipartite(g graph.Interface, left graph.BipartitionFunc) *Bipartite {
	return &Bipartite{g: g, left: left, nodes: g.Nodes()}
}

// MaxCardinality returns a maximum matching using Kuhn's algorithm
// (repeated augmenting-path search from each unmatched left node).
func (b *Bipartite) MaxCardinality() []graph.Arc {
	var lefts, rights []graph.Node
	for _, n := range b.nodes {
		if b.left(n) {
			lefts = append(lefts, n)
		} else {
			rights = append(rights, n)
		}
	}
	rIdx := make(map[int64]int, len(rights))
	for i, r := range rights {
		rIdx[r.ID()] = i
	}

	matchR := make([]int, len(rights)) // rights[j] matched to lefts index, -1 if free
	matchArc := make([]graph.Arc, len(rights))
	for i := range matchR {
		matchR[i] = -1
	}

	var tryKuhn func(li int, visited []bool) bool
	tryKuhn = func(li int, visited []bool) bool {
		for _, a := range b.g.ArcsAt(lefts[li], graph.All) {
			r := b.g.Other(a, lefts[li])
			rj, ok := rIdx[r.ID()]
			if !ok || visited[rj] {
				continue
			}
			visited[rj] = true
			if matchR[rj] == -1 || tryKuhn(matchR[rj], visited) {
				matchR[rj] = li
				matchArc[rj] = a
				return true
			}
		}
		return false
	}

	for li := range lefts {
		visited := make([]bool, len(rights))
		tryKuhn(li, visited)
	}

	var out []graph.Arc
	for j, li := range matchR {
		if li != -1 {
			out = append(out, matchArc[j])
		}
	}
	return out
}

// MinCost computes a minimum-cost matching via successive shortest
// augmenting paths with Johnson-style potentials (each augmentation
// is one Dijkstra over the current admissible residual graph, so
// total cost is O(k) Dijkstra runs for a k-edge matching). mode
// controls whether every left node must end up matched.
func (b *Bipartite) MinCost(cost graph.CostFunc, mode Mode) ([]graph.Arc, error) {
	var lefts, rights []graph.Node
	for _, n := range b.nodes {
		if b.left(n) {
			lefts = append(lefts, n)
		} else {
			rights = append(rights, n)
		}
	}

	matchedTo := make(map[int64]graph.Node) // right id -> left node currently matched
	matchedArc := make(map[int64]graph.Arc)
	potential := make(map[int64]float64)
	for _, n := range b.nodes {
		potential[n.ID()] = 0
	}

	sinkPot := 0.0 // potential of the synthetic sink, carried across rounds
	for _, l := range lefts {
		aug := graph.NewSupergraph(b.g)
		src := aug.AddNode()
		sink := aug.AddNode()

		arcOf := make(map[int64]graph.Arc)
		reduced := make(map[int64]float64)

		aug.AddArc(src, l, graph.Directed)
		reduced[arcKey(src, l)] = 0

		for _, r := range rights {
			if matched, ok := matchedTo[r.ID()]; ok {
				// reversed arc: r -> matched-left, free to re-route
				aug.AddArc(r, matched, graph.Directed)
				arcOf[arcKey(r, matched)] = matchedArc[r.ID()]
				reduced[arcKey(r, matched)] = 0
			} else {
				aug.AddArc(r, sink, graph.Directed)
				reduced[arcKey(r, sink)] = potential[r.ID()] - sinkPot
			}
		}
		for _, l2 := range lefts {
			for _, a := range b.g.ArcsAt(l2, graph.Forward) {
				r := b.g.Other(a, l2)
				if b.left(r) {
					continue
				}
				if matched, ok := matchedTo[r.ID()]; ok && matched.ID() == l2.ID() {
					continue // this direction already represented as the reverse arc above
				}
				aug.AddArc(l2, r, graph.Directed)
				c := cost(a) + potential[l2.ID()] - potential[r.ID()]
				reduced[arcKey(l2, r)] = c
				arcOf[arcKey(l2, r)] = a
			}
		}

		costFn := func(a graph.Arc) float64 {
			// identify by endpoints since overlay arcs carry fresh ids
			u, v := aug.U(a), aug.V(a)
			if w, ok := reduced[arcKey(u, v)]; ok {
				return w
			}
			return 0
		}

		d := path.NewDijkstra(aug, costFn, path.Sum)
		d.AddSource(src)
		if !d.RunUntilFixed(sink) {
			if mode == Perfect {
				return nil, graph.ErrInfeasible
			}
			continue
		}
		p := d.GetPath(sink)

		// update potentials by the distances just computed (Johnson's
		// re-weighting step, with every distance capped at the sink's so
		// nodes not settled this round stay consistent), then apply the
		// augmenting path.
		sinkDist := d.GetDistance(sink)
		for _, n := range b.nodes {
			dn := d.GetDistance(n)
			if dn > sinkDist {
				dn = sinkDist
			}
			potential[n.ID()] += dn
		}
		sinkPot += sinkDist

		// walk is src, l1, r1, l2, r2, ..., lk, rk, sink; each
		// consecutive (l_i, r_i) pair becomes a matched edge.
		walk := p.Nodes()
		for i := 2; i+1 < len(walk); i += 2 {
			newLeft, r := walk[i-1], walk[i]
			matchedTo[r.ID()] = newLeft
			matchedArc[r.ID()] = arcOf[arcKey(newLeft, r)]
		}
	}

	var out []graph.Arc
	for _, a := range matchedArc {
		if a.IsValid() {
			out = append(out, a)
		}
	}
	if mode == Perfect && len(matchedArc) != len(lefts) {
		return nil, graph.ErrInfeasible
	}
	return out, nil
}

func arcKey(u, v graph.Node) int64 {
	return u.ID()<<32 ^ v.ID()
}
