// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flow implements maximum flow via the highest-label
// preflow-push algorithm (Goldberg-Tarjan), grounded on the gap
// heuristic and global-relabel structure of the teacher pack's
// push_relabel.go, rebuilt as a Step/Run finite-state object over
// graph.Interface and an internally tracked residual network rather
// than a standalone ResidualGraph type.
package flow

import (
	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/internal/queue"
)

// Preflow computes the maximum flow from source to sink by the
// highest-label push-relabel method: a preflow is pushed downhill
// through a height labeling, vertices with no admissible push are
// relabeled, and the gap heuristic plus periodic global relabeling
// keep the height function close to exact distances to the sink.
type Preflow struct {
	g      graph.Interface
	cap    graph.CapacityFunc
	source graph.Node
	sink   graph.Node

	nodes   []graph.Node
	nodeIdx map[int64]int

	residual []map[int]float64 // residual[i][j] = residual capacity i->j, indices into nodes
	height   []int
	excess   []float64
	heightCt []int
	curArc   []int
	neighbor [][]int // neighbor[i] = node indices j with a residual entry i->j (any capacity, map order)

	maxHeight int
	active    *queue.Queue[int64, float64] // keyed by node id, priority -height (max-heap via negation)
	discharge int // operation counter, drives periodic global relabel
}

// NewPreflow builds a Preflow search over g from source to sink using
// cap for arc capacities. Edges (undirected arcs) get residual
// capacity cap(a) in both directions; directed arcs get it in the U->V
// direction only.
func NewPreflow(g graph.Interface, cap graph.CapacityFunc, source, sink graph.Node) *Preflow {
	nodes := g.Nodes()
	n := len(nodes)
	nodeIdx := make(map[int64]int, n)
	for i, v := range nodes {
		nodeIdx[v.ID()] = i
	}

	p := &Preflow{
		g: g, cap: cap, source: source, sink: sink,
		nodes: nodes, nodeIdx: nodeIdx,
		residual:  make([]map[int]float64, n),
		height:    make([]int, n),
		excess:    make([]float64, n),
		heightCt:  make([]int, 2*n+2),
		curArc:    make([]int, n),
		neighbor:  make([][]int, n),
		maxHeight: 2*n - 1,
		active:    queue.New[int64, float64](),
	}
	for i := range p.residual {
		p.residual[i] = make(map[int]float64)
	}

	addResidual := func(ui, vi int, c float64) {
		p.residual[ui][vi] += c
		if _, ok := p.residual[vi][ui]; !ok {
			p.residual[vi][ui] = 0
		}
	}
	for _, a := range g.Arcs(graph.All) {
		ui, vi := nodeIdx[g.U(a).ID()], nodeIdx[g.V(a).ID()]
		c := cap(a)
		addResidual(ui, vi, c)
		if g.IsEdge(a) {
			addResidual(vi, ui, c)
		}
	}
	for i := range p.neighbor {
		for j := range p.residual[i] {
			p.neighbor[i] = append(p.neighbor[i], j)
		}
	}

	si := nodeIdx[source.ID()]
	p.height[si] = n
	for i := range nodes {
		p.heightCt[p.height[i]]++
	}

	for vi, c := range p.residual[si] {
		if c <= 0 {
			continue
		}
		p.residual[si][vi] -= c
		p.residual[vi][si] += c
		p.excess[vi] += c
		p.excess[si] -= c
		if vi != si && nodes[vi].ID() != sink.ID() {
			p.active.Set(nodes[vi].ID(), float64(-p.height[vi]))
		}
	}
	p.globalRelabel()
	return p
}

// Step discharges the single highest-labeled active vertex, returning
// false once no vertex has positive excess.
func (p *Preflow) Step() bool {
	id, _, ok := p.active.Pop()
	if !ok {
		return false
	}
	i := p.nodeIdx[id]
	if p.excess[i] <= 0 || p.height[i] > p.maxHeight {
		return p.Step()
	}
	p.dischargeNode(i)

	p.discharge++
	if p.discharge%len(p.nodes) == 0 {
		p.globalRelabel()
	}
	return true
}

// Run exhausts the active-vertex set.
func (p *Preflow) Run() {
	for p.Step() {
	}
}

func (p *Preflow) dischargeNode(i int) {
	si, ti := p.nodeIdx[p.source.ID()], p.nodeIdx[p.sink.ID()]
	for p.excess[i] > 0 && p.height[i] <= p.maxHeight {
		if p.curArc[i] >= len(p.neighbor[i]) {
			if !p.relabel(i) {
				break
			}
			p.curArc[i] = 0
			continue
		}
		j := p.neighbor[i][p.curArc[i]]
		c := p.residual[i][j]
		if c > 0 && p.height[i] == p.height[j]+1 {
			delta := p.excess[i]
			if c < delta {
				delta = c
			}
			p.residual[i][j] -= delta
			p.residual[j][i] += delta
			p.excess[i] -= delta
			p.excess[j] += delta
			if j != si && j != ti {
				p.active.Set(p.nodes[j].ID(), float64(-p.height[j]))
			}
		} else {
			p.curArc[i]++
		}
	}
	if p.excess[i] > 0 && p.height[i] <= p.maxHeight {
		id := p.nodes[i].ID()
		if id != p.source.ID() && id != p.sink.ID() {
			p.active.Set(id, float64(-p.height[i]))
		}
	}
}

func (p *Preflow) relabel(i int) bool {
	old := p.height[i]
	if old > p.maxHeight {
		return false
	}
	minH := p.maxHeight + 1
	for _, j := range p.neighbor[i] {
		if p.residual[i][j] > 0 && p.height[j] < minH {
			minH = p.height[j]
		}
	}
	newH := minH + 1
	if newH > p.maxHeight {
		p.bumpToUnreachable(i, old)
		return false
	}
	p.heightCt[old]--
	if p.heightCt[old] == 0 && old < len(p.nodes) {
		p.applyGapHeuristic(old)
	}
	p.heightCt[newH]++
	p.height[i] = newH
	return true
}

func (p *Preflow) bumpToUnreachable(i, old int) {
	p.heightCt[old]--
	p.height[i] = p.maxHeight + 1
}

// applyGapHeuristic raises every vertex above gapHeight (other than
// the source) to an unreachable height once gapHeight itself empties,
// since no vertex below the gap can any longer discharge toward them.
func (p *Preflow) applyGapHeuristic(gapHeight int) {
	si := p.nodeIdx[p.source.ID()]
	for i, h := range p.height {
		if h > gapHeight && h <= p.maxHeight && i != si {
			p.heightCt[h]--
			p.height[i] = p.maxHeight + 1
		}
	}
}

// globalRelabel recomputes every height as the exact residual
// distance to the sink via reverse BFS, the same recovery step the
// teacher's push_relabel.go runs periodically to keep heights close
// to optimal.
func (p *Preflow) globalRelabel() {
	n := len(p.nodes)
	for i := range p.heightCt {
		p.heightCt[i] = 0
	}
	newHeight := make([]int, n)
	for i := range newHeight {
		newHeight[i] = p.maxHeight + 1
	}
	ti := p.nodeIdx[p.sink.ID()]
	newHeight[ti] = 0
	queueIdx := []int{ti}
	head := 0
	for head < len(queueIdx) {
		u := queueIdx[head]
		head++
		for v := range p.residual {
			if c, ok := p.residual[v][u]; ok && c > 0 && newHeight[v] > p.maxHeight {
				newHeight[v] = newHeight[u] + 1
				queueIdx = append(queueIdx, v)
			}
		}
	}
	si := p.nodeIdx[p.source.ID()]
	newHeight[si] = n
	p.height = newHeight
	for _, h := range p.height {
		if h <= p.maxHeight {
			p.heightCt[h]++
		}
	}
	for i := range p.curArc {
		p.curArc[i] = 0
	}
	// rebuild the active set against the refreshed heights
	p.active.Clear()
	for i, ex := range p.excess {
		id := p.nodes[i].ID()
		if ex > 0 && id != p.source.ID() && id != p.sink.ID() && p.height[i] <= p.maxHeight {
			p.active.Set(id, float64(-p.height[i]))
		}
	}
}

// FlowValue returns the value of the maximum flow found so far (the
// sink's accumulated excess); accurate once Run has been called to
// completion.
func (p *Preflow) FlowValue() float64 {
	return p.excess[p.nodeIdx[p.sink.ID()]]
}

// Flow returns the net flow carried on arc a in its U->V orientation.
// Arcs joining the same two nodes share one residual entry, so each of
// them reports the pair's combined net flow; a directed arc reports 0
// when that flow runs against it.
func (p *Preflow) Flow(a graph.Arc) float64 {
	u, v := p.g.U(a), p.g.V(a)
	ui, vi := p.nodeIdx[u.ID()], p.nodeIdx[v.ID()]
	initial := 0.0 // v->u residual capacity the pair started with
	for _, b := range p.g.ArcsAt(v, graph.All) {
		bu, bv := p.g.U(b).ID(), p.g.V(b).ID()
		if (bu == v.ID() && bv == u.ID()) || (p.g.IsEdge(b) && bu == u.ID() && bv == v.ID()) {
			initial += p.cap(b)
		}
	}
	net := p.residual[vi][ui] - initial
	if !p.g.IsEdge(a) && net < 0 {
		return 0
	}
	return net
}

// Cut returns the arcs crossing the minimum source-side/sink-side cut
// induced by the final residual graph: nodes reachable from the
// source in the residual graph form the source side, and Cut returns
// every original arc leaving that side.
func (p *Preflow) Cut() []graph.Arc {
	si := p.nodeIdx[p.source.ID()]
	reachable := make([]bool, len(p.nodes))
	reachable[si] = true
	stack := []int{si}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v, c := range p.residual[u] {
			if c > 0 && !reachable[v] {
				reachable[v] = true
				stack = append(stack, v)
			}
		}
	}
	var out []graph.Arc
	for _, a := range p.g.Arcs(graph.All) {
		u, v := p.g.U(a), p.g.V(a)
		ui, vi := p.nodeIdx[u.ID()], p.nodeIdx[v.ID()]
		if reachable[ui] && !reachable[vi] {
			out = append(out, a)
		}
	}
	return out
}
