// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/arcgraph/arcgraph/graph"

// Bidirectional runs a forward Dijkstra from the source and a
// backward Dijkstra (over the Reversed adaptor) from the target
// simultaneously, alternating one Step of each. Every node reached by
// both searches is a candidate join point; the search stops once the
// sum of the two frontiers' smallest open distances is no less than
// the best join found, which is then the shortest source-target
// distance (not necessarily through the first node both searches met).
type Bidirectional struct {
	g      graph.Interface
	cost   graph.CostFunc
	source graph.Node
	target graph.Node

	fwd *Dijkstra
	bwd *Dijkstra

	best     float64
	bestNode graph.Node
	done     bool
}

// NewBidirectional returns a bidirectional Dijkstra search over g
// between source and target using cost. Costs must be nonnegative.
func NewBidirectional(g graph.Interface, cost graph.CostFunc, source, target graph.Node) *Bidirectional {
	rev := graph.NewReversed(g)
	fwd := NewDijkstra(g, cost, Sum)
	bwd := NewDijkstra(rev, cost, Sum)
	fwd.AddSource(source)
	bwd.AddSource(target)
	return &Bidirectional{
		g: g, cost: cost, source: source, target: target,
		fwd: fwd, bwd: bwd, best: posInf, bestNode: graph.InvalidNode,
	}
}

// Step advances each of the two frontiers by one node, updating the
// best known join candidate, and returns false once
// both frontiers are exhausted or the stopping criterion is met.
func (b *Bidirectional) Step() bool {
	if b.done {
		return false
	}
	fok := b.fwd.Step()
	bok := b.bwd.Step()
	if !fok && !bok {
		b.done = true
		return false
	}
	for _, n := range b.g.Nodes() {
		if b.fwd.Reached(n) && b.bwd.Reached(n) {
			joint := b.fwd.GetDistance(n) + b.bwd.GetDistance(n)
			if joint < b.best {
				b.best = joint
				b.bestNode = n
			}
		}
	}
	// Stopping criterion: once the sum of both frontiers' smallest
	// unexplored tentative distance exceeds the best candidate found
	// so far, no cheaper join point remains to be discovered.
	if b.bestNode.IsValid() && b.best <= b.fwd.frontierMin()+b.bwd.frontierMin() {
		b.done = true
		return false
	}
	return true
}

// Run exhausts the search.
func (b *Bidirectional) Run() {
	for b.Step() {
	}
}

// Reached reports whether any source-target join point was found.
func (b *Bidirectional) Reached() bool { return b.bestNode.IsValid() }

// GetDistance returns the shortest source-target distance found, or
// +Inf if the target is unreachable.
func (b *Bidirectional) GetDistance() float64 { return b.best }

// GetPath reconstructs the shortest source-target path by joining the
// forward tree's path to the meeting node with the backward tree's
// path (read in reverse), or nil if unreached.
func (b *Bidirectional) GetPath() *graph.Path {
	if !b.Reached() {
		return nil
	}
	fwdPath := b.fwd.GetPath(b.bestNode)
	bwdPath := b.bwd.GetPath(b.bestNode) // path in the reversed graph, target -> meeting node

	p := graph.NewPath(b.g, b.source)
	for _, a := range fwdPath.OrderedArcs() {
		p.Extend(a)
	}
	arcs := bwdPath.OrderedArcs()
	for i := len(arcs) - 1; i >= 0; i-- {
		p.Extend(arcs[i])
	}
	return p
}
