// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "fmt"

// PreconditionError reports a violated precondition: a negative cost
// where the algorithm's mode forbids it, a negative capacity, a
// callback that returned NaN, or a missing/invalid source or
// endpoint. Per spec.md §7 this is surfaced immediately and
// terminates the operation; it is never an AlgorithmicOutcome.
type PreconditionError struct {
	Algorithm string
	Rule      string
	Node      Node
	Arc       Arc
}

func (e *PreconditionError) Error() string {
	switch {
	case e.Arc.IsValid():
		return fmt.Sprintf("%s: precondition violated (%s) at arc %v", e.Algorithm, e.Rule, e.Arc)
	case e.Node.IsValid():
		return fmt.Sprintf("%s: precondition violated (%s) at node %v", e.Algorithm, e.Rule, e.Node)
	default:
		return fmt.Sprintf("%s: precondition violated (%s)", e.Algorithm, e.Rule)
	}
}

// InvariantError reports a mid-algorithm invariant break, such as a
// debug-only detection of graph mutation under a stale version
// counter.
type InvariantError struct {
	Algorithm string
	Rule      string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: invariant broken (%s)", e.Algorithm, e.Rule)
}

// NegativeCycleError is returned by Bellman-Ford when a negative
// cycle reachable from a source is detected. Witness is one arc on
// the cycle; following parent arcs from it forms a closed walk of
// negative total cost.
type NegativeCycleError struct {
	Witness Arc
}

func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("bellman-ford: negative cycle detected, witness arc %v", e.Witness)
}

// ErrCancelled is returned by long-running Step/Run loops when the
// caller's cancellation signal fired between outer iterations. State
// computed so far remains partial-but-consistent.
var ErrCancelled = fmt.Errorf("arcgraph: operation cancelled")

// ErrInfeasible is returned by NetworkSimplex when supply cannot be
// routed within the given capacities.
var ErrInfeasible = fmt.Errorf("arcgraph: network flow infeasible")
