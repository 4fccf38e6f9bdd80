// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lp defines the abstract linear-programming capability this
// library hands problems to, and two builders (OptimalSubgraph,
// OptimalVertexSet) that pose node/arc selection problems over a graph
// in terms of it. The package never solves an LP itself: it describes
// variables, constraints and an objective, then reads the solution
// back through the same Solver interface the caller supplied. This
// mirrors the way the core treats heuristics elsewhere in the module
// (AStar takes a caller-supplied heuristic without verifying it; here
// the caller supplies a whole solver without this package inspecting
// its internals).
package lp

import "github.com/arcgraph/arcgraph/graph"

// Sense is the comparison operator of a linear constraint.
type Sense int

const (
	LessEqual Sense = iota
	GreaterEqual
	Equal
)

// Variable describes one decision variable's bounds. Integer variables
// (0/1 selection indicators, as used by OptimalSubgraph/
// OptimalVertexSet) set Lower=0, Upper=1 and rely on the solver to
// enforce integrality; this package never assumes a solver is integral
// unless told so by its own documentation.
type Variable struct {
	Name  string
	Lower float64
	Upper float64
}

// Term is one variable's coefficient within a constraint or the
// objective.
type Term struct {
	Var   int // index into Problem.Variables
	Coeff float64
}

// Constraint is a single linear inequality or equality:
// sum(Terms) Sense RHS.
type Constraint struct {
	Terms []Term
	Sense Sense
	RHS   float64
}

// Problem is a complete linear program: a list of variables, a set of
// linear constraints over them, and a linear objective to minimize.
// Maximization problems are expressed by negating the objective
// coefficients, since that is the convention nearly every external LP
// solver's own API already uses.
type Problem struct {
	Variables   []Variable
	Constraints []Constraint
	Objective   []Term
}

// NewProblem returns an empty problem ready to have variables,
// constraints and objective terms added to it.
func NewProblem() *Problem {
	return &Problem{}
}

// AddVariable appends a variable and returns its index for use in
// Term.Var.
func (p *Problem) AddVariable(name string, lower, upper float64) int {
	p.Variables = append(p.Variables, Variable{Name: name, Lower: lower, Upper: upper})
	return len(p.Variables) - 1
}

// AddConstraint appends a constraint built from the given terms.
func (p *Problem) AddConstraint(sense Sense, rhs float64, terms ...Term) {
	p.Constraints = append(p.Constraints, Constraint{Terms: append([]Term(nil), terms...), Sense: sense, RHS: rhs})
}

// AddObjectiveTerm adds coeff*Variables[v] to the objective to be
// minimized.
func (p *Problem) AddObjectiveTerm(v int, coeff float64) {
	p.Objective = append(p.Objective, Term{Var: v, Coeff: coeff})
}

// Solution reports, for a solved Problem, the value assigned to each
// variable (by index, matching Problem.Variables) and the resulting
// objective value.
type Solution struct {
	Values    []float64
	Objective float64
}

// Value returns the solved value of variable v.
func (s *Solution) Value(v int) float64 { return s.Values[v] }

// Solver is the capability this package's builders hand a Problem to.
// Callers provide their own implementation backed by whatever external
// LP/MIP package they choose (simplex, branch-and-bound, interior
// point); this module never ships one, per its Non-goal of exact LP
// solving.
type Solver interface {
	Solve(p *Problem) (*Solution, error)
}

// NodeSelector builds a 0/1 "is node n selected" Problem over g's
// nodes and, once solved, reports which nodes were selected.
type NodeSelector struct {
	Problem *Problem
	nodes   []graph.Node
	varOf   map[int64]int
}

// OptimalVertexSet poses the generic vertex-selection problem: choose
// a subset of g's nodes minimizing nodeCost while satisfying the
// caller-supplied constraints (added via AddCoverConstraint or
// directly against Problem). It only builds the Problem: the caller
// solves it with a Solver of its choice and reads the chosen nodes
// back with Selected. A typical use is minimum vertex cover: one AddCoverConstraint
// call per arc requiring at least one endpoint selected.
func OptimalVertexSet(g graph.Interface, nodeCost func(graph.Node) float64) *NodeSelector {
	nodes := g.Nodes()
	p := NewProblem()
	varOf := make(map[int64]int, len(nodes))
	for _, n := range nodes {
		v := p.AddVariable(n.String(), 0, 1)
		varOf[n.ID()] = v
		p.AddObjectiveTerm(v, nodeCost(n))
	}
	return &NodeSelector{Problem: p, nodes: nodes, varOf: varOf}
}

// AddCoverConstraint requires at least one of the given nodes to be
// selected (sum of their indicator variables >= 1); used to encode
// vertex-cover-style requirements (every arc of the source graph names
// its two endpoints here).
func (s *NodeSelector) AddCoverConstraint(nodes ...graph.Node) {
	terms := make([]Term, len(nodes))
	for i, n := range nodes {
		terms[i] = Term{Var: s.varOf[n.ID()], Coeff: 1}
	}
	s.Problem.AddConstraint(GreaterEqual, 1, terms...)
}

// Selected reads back, from a solved Problem, the subset of nodes
// whose indicator variable solved to >= 0.5.
func (s *NodeSelector) Selected(sol *Solution) []graph.Node {
	var out []graph.Node
	for _, n := range s.nodes {
		if sol.Value(s.varOf[n.ID()]) >= 0.5 {
			out = append(out, n)
		}
	}
	return out
}

// ArcSelector builds a 0/1 "is arc a selected" Problem over g's arcs.
type ArcSelector struct {
	Problem *Problem
	arcs    []graph.Arc
	varOf   map[int64]int
}

// OptimalSubgraph poses the generic arc-selection problem: choose a
// subset of g's arcs minimizing arcCost subject to caller-supplied
// constraints (e.g. degree or connectivity requirements added directly
// against Problem using the indices this selector hands out via
// VarOf). It only builds the Problem: the caller solves it with a
// Solver of its choice and reads the chosen arcs back with Selected. Typical uses
// include minimum spanning subgraph and matching-as-LP formulations.
func OptimalSubgraph(g graph.Interface, arcCost graph.CostFunc) *ArcSelector {
	arcs := g.Arcs(graph.All)
	p := NewProblem()
	varOf := make(map[int64]int, len(arcs))
	for _, a := range arcs {
		v := p.AddVariable(a.String(), 0, 1)
		varOf[a.ID()] = v
		p.AddObjectiveTerm(v, arcCost(a))
	}
	return &ArcSelector{Problem: p, arcs: arcs, varOf: varOf}
}

// VarOf returns the Problem variable index corresponding to arc a, for
// building custom constraints against ArcSelector.Problem directly.
func (s *ArcSelector) VarOf(a graph.Arc) int { return s.varOf[a.ID()] }

// Selected reads back, from a solved Problem, the subset of arcs whose
// indicator variable solved to >= 0.5.
func (s *ArcSelector) Selected(sol *Solution) []graph.Arc {
	var out []graph.Arc
	for _, a := range s.arcs {
		if sol.Value(s.varOf[a.ID()]) >= 0.5 {
			out = append(out, a)
		}
	}
	return out
}
