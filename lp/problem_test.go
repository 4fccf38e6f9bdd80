// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/lp"
)

// bruteForceSolver exhaustively enumerates every 0/1 assignment of
// a small problem's variables and returns the cheapest one satisfying
// every constraint; good enough to exercise lp.Solver end to end
// without pulling in a real external solver.
type bruteForceSolver struct{}

func (bruteForceSolver) Solve(p *lp.Problem) (*lp.Solution, error) {
	n := len(p.Variables)
	if n > 20 {
		return nil, errTooLarge
	}
	var best *lp.Solution
	for mask := 0; mask < (1 << n); mask++ {
		values := make([]float64, n)
		for i := range values {
			if mask&(1<<i) != 0 {
				values[i] = 1
			}
		}
		if !satisfies(p, values) {
			continue
		}
		obj := objectiveOf(p, values)
		if best == nil || obj < best.Objective {
			best = &lp.Solution{Values: values, Objective: obj}
		}
	}
	if best == nil {
		return nil, errInfeasible
	}
	return best, nil
}

var errInfeasible = assertError("lp_test: no feasible assignment")
var errTooLarge = assertError("lp_test: brute force solver limited to 20 variables")

type assertError string

func (e assertError) Error() string { return string(e) }

func satisfies(p *lp.Problem, values []float64) bool {
	for _, c := range p.Constraints {
		var sum float64
		for _, term := range c.Terms {
			sum += term.Coeff * values[term.Var]
		}
		switch c.Sense {
		case lp.LessEqual:
			if sum > c.RHS+1e-9 {
				return false
			}
		case lp.GreaterEqual:
			if sum < c.RHS-1e-9 {
				return false
			}
		case lp.Equal:
			if math.Abs(sum-c.RHS) > 1e-9 {
				return false
			}
		}
	}
	return true
}

func objectiveOf(p *lp.Problem, values []float64) float64 {
	var total float64
	for _, term := range p.Objective {
		total += term.Coeff * values[term.Var]
	}
	return total
}

func TestOptimalVertexSetSolvesMinimumVertexCoverOnAPath(t *testing.T) {
	g := graph.New()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	ab := g.AddArc(a, b, graph.Undirected)
	bc := g.AddArc(b, c, graph.Undirected)

	sel := lp.OptimalVertexSet(g, func(graph.Node) float64 { return 1 })
	sel.AddCoverConstraint(g.U(ab), g.V(ab))
	sel.AddCoverConstraint(g.U(bc), g.V(bc))

	sol, err := bruteForceSolver{}.Solve(sel.Problem)
	require.NoError(t, err)

	selected := sel.Selected(sol)
	// the minimum vertex cover of a 3-node path is the middle node alone.
	require.Len(t, selected, 1)
	assert.Equal(t, b.ID(), selected[0].ID())
	assert.Equal(t, 1.0, sol.Objective)
}

func TestOptimalSubgraphSolvesCheapestSpanningChoiceAcrossParallelArcs(t *testing.T) {
	g := graph.New()
	a, b := g.AddNode(), g.AddNode()
	w := make(map[int64]float64)
	set := func(u, v graph.Node, weight float64) graph.Arc {
		arc := g.AddArc(u, v, graph.Directed)
		w[arc.ID()] = weight
		return arc
	}
	cheap := set(a, b, 1)
	set(a, b, 5)
	set(a, b, 9)

	sel := lp.OptimalSubgraph(g, func(arc graph.Arc) float64 { return w[arc.ID()] })
	// require at least one of the three parallel a->b arcs selected.
	var terms []lp.Term
	for _, arc := range g.ArcsAt(a, graph.Forward) {
		terms = append(terms, lp.Term{Var: sel.VarOf(arc), Coeff: 1})
	}
	sel.Problem.AddConstraint(lp.GreaterEqual, 1, terms...)

	sol, err := bruteForceSolver{}.Solve(sel.Problem)
	require.NoError(t, err)

	selected := sel.Selected(sol)
	require.Len(t, selected, 1)
	assert.Equal(t, cheap.ID(), selected[0].ID())
	assert.Equal(t, 1.0, sol.Objective)
}
