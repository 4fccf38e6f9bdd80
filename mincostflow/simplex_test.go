// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mincostflow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/mincostflow"
)

// transshipment builds s->a(cost 1)->t(cost 1) and a costlier direct
// s->t(cost 5) route, all with capacity 10, so the minimum-cost way
// to ship 4 units from s to t goes entirely through a.
func transshipment() (g *graph.Graph, s, a, t graph.Node, cost, capacity graph.CapacityFunc) {
	g = graph.New()
	s, a, t = g.AddNode(), g.AddNode(), g.AddNode()
	c := make(map[int64]float64)
	cap := make(map[int64]float64)
	set := func(u, v graph.Node, arcCost, arcCap float64) {
		arc := g.AddArc(u, v, graph.Directed)
		c[arc.ID()] = arcCost
		cap[arc.ID()] = arcCap
	}
	set(s, a, 1, 10)
	set(a, t, 1, 10)
	set(s, t, 5, 10)
	cost = func(arc graph.Arc) float64 { return c[arc.ID()] }
	capacity = func(arc graph.Arc) float64 { return cap[arc.ID()] }
	return g, s, a, t, cost, capacity
}

func TestSolveRoutesFlowThroughCheaperPath(t *testing.T) {
	g, s, _, sink, cost, capacity := transshipment()
	lower := func(graph.Arc) float64 { return 0 }
	supply := func(n graph.Node) float64 {
		switch n.ID() {
		case s.ID():
			return 4
		case sink.ID():
			return -4
		default:
			return 0
		}
	}

	res, err := mincostflow.Solve(g, cost, lower, capacity, supply)
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.TotalCost()) // 4 units * (1+1) through a

	var directFlow float64
	for _, arc := range g.Arcs(graph.All) {
		if g.U(arc).ID() == s.ID() && g.V(arc).ID() == sink.ID() {
			directFlow = res.Flow(arc)
		}
	}
	assert.Equal(t, 0.0, directFlow)
}

func TestSolveConservesFlowAtTransshipmentNode(t *testing.T) {
	g, s, a, sink, cost, capacity := transshipment()
	lower := func(graph.Arc) float64 { return 0 }
	supply := func(n graph.Node) float64 {
		switch n.ID() {
		case s.ID():
			return 4
		case sink.ID():
			return -4
		default:
			return 0
		}
	}

	res, err := mincostflow.Solve(g, cost, lower, capacity, supply)
	require.NoError(t, err)

	var into, out float64
	for _, arc := range g.Arcs(graph.All) {
		if g.V(arc).ID() == a.ID() {
			into += res.Flow(arc)
		}
		if g.U(arc).ID() == a.ID() {
			out += res.Flow(arc)
		}
	}
	assert.InDelta(t, into, out, 1e-7)
}

func TestSolveRespectsArcUpperBound(t *testing.T) {
	g, s, _, sink, cost, _ := transshipment()
	lower := func(graph.Arc) float64 { return 0 }
	tightCap := func(arc graph.Arc) float64 { return 2 } // forces overflow onto the expensive direct arc
	supply := func(n graph.Node) float64 {
		switch n.ID() {
		case s.ID():
			return 4
		case sink.ID():
			return -4
		default:
			return 0
		}
	}

	res, err := mincostflow.Solve(g, cost, lower, tightCap, supply)
	require.NoError(t, err)

	for _, arc := range g.Arcs(graph.All) {
		assert.LessOrEqual(t, res.Flow(arc), tightCap(arc)+1e-7)
	}
	// with every arc capped at 2, 4 units can only move by also using
	// the direct s->t arc, so the total cost must exceed the uncapped
	// optimum of 8.
	assert.Greater(t, res.TotalCost(), 8.0)
}

func TestSolveReturnsErrInfeasibleWhenSuppliesCannotBeSatisfied(t *testing.T) {
	g := graph.New()
	s, _ := g.AddNode(), g.AddNode()
	zero := func(graph.Arc) float64 { return 0 }
	supply := func(n graph.Node) float64 {
		if n.ID() == s.ID() {
			return 5
		}
		return -5
	}

	_, err := mincostflow.Solve(g, zero, zero, zero, supply)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrInfeasible))
}

func TestMaxFlowOfMinCostPicksCheaperOfEqualCapacityRoutes(t *testing.T) {
	g, s, _, sink, cost, capacity := transshipment()

	res, err := mincostflow.MaxFlowOfMinCost(g, cost, capacity, s, sink, 4)
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.TotalCost())
}

func TestResultBasisMarksSpanningTreeArcs(t *testing.T) {
	g, s, _, sink, cost, capacity := transshipment()
	lower := func(graph.Arc) float64 { return 0 }
	supply := func(n graph.Node) float64 {
		switch n.ID() {
		case s.ID():
			return 4
		case sink.ID():
			return -4
		default:
			return 0
		}
	}

	res, err := mincostflow.Solve(g, cost, lower, capacity, supply)
	require.NoError(t, err)

	var basisCount int
	for _, arc := range g.Arcs(graph.All) {
		if res.Basis(arc) {
			basisCount++
		}
	}
	assert.Greater(t, basisCount, 0)
}
