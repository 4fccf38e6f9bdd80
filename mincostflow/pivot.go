// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mincostflow

import "math"

// computePotentials rebuilds the basis tree's adjacency from scratch
// and assigns node potentials and parent pointers by a single BFS from
// the root. Recomputing the whole tree on every pivot, rather than
// updating potentials incrementally along the changed subtree, trades
// the textbook O(tree depth) pivot update for a simpler O(n+m) one;
// documented as a deliberate simplicity-over-asymptotics tradeoff.
func computePotentials(nodeIDs []int64, records map[int64]*arcRecord, tree map[int64]bool) (potential map[int64]float64, parentArc map[int64]int64, parentNode map[int64]int64) {
	adj := make(map[int64][]*arcRecord, len(nodeIDs))
	for id := range tree {
		if !tree[id] {
			continue
		}
		r := records[id]
		adj[r.u] = append(adj[r.u], r)
		adj[r.v] = append(adj[r.v], r)
	}

	potential = make(map[int64]float64, len(nodeIDs))
	parentArc = make(map[int64]int64, len(nodeIDs))
	parentNode = make(map[int64]int64, len(nodeIDs))
	visited := make(map[int64]bool, len(nodeIDs))

	potential[rootID] = 0
	visited[rootID] = true
	parentArc[rootID] = 0
	parentNode[rootID] = rootID
	queue := []int64{rootID}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, r := range adj[u] {
			var v int64
			if r.u == u {
				v = r.v
			} else {
				v = r.u
			}
			if visited[v] {
				continue
			}
			visited[v] = true
			// tree-arc rule: cost(i->j) = potential[i] - potential[j]
			if r.u == u {
				potential[v] = potential[u] - r.cost
			} else {
				potential[v] = potential[u] + r.cost
			}
			parentArc[v] = r.id
			parentNode[v] = u
			queue = append(queue, v)
		}
	}
	return potential, parentArc, parentNode
}

// reducedCost returns c_ij - pi(i) + pi(j) for arc r oriented i->j
// where i=r.u, j=r.v.
func reducedCost(r *arcRecord, potential map[int64]float64) float64 {
	return r.cost - potential[r.u] + potential[r.v]
}

// selectEnteringArc scans every nonbasic arc for one that can improve
// the objective: at its lower bound with negative reduced cost
// (increasing its flow helps), or at its upper bound with positive
// reduced cost (decreasing its flow helps). Arcs are scanned in blocks
// of 64 in the records map's iteration order, starting from the first
// arc on every call, and the first improving arc found is taken. No
// scan position is kept between calls, and the arc with the most
// negative reduced cost is not sought.
func selectEnteringArc(records map[int64]*arcRecord, tree map[int64]bool, potential map[int64]float64) (entering *arcRecord, atLower bool) {
	ids := make([]int64, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}

	const blockSize = 64
	for offset := 0; offset < len(ids); offset += blockSize {
		end := offset + blockSize
		if end > len(ids) {
			end = len(ids)
		}
		for _, id := range ids[offset:end] {
			r := records[id]
			if tree[id] {
				continue
			}
			rc := reducedCost(r, potential)
			atLowerBound := r.flow <= r.lower+1e-9
			atUpperBound := !math.IsInf(r.upper, 1) && r.flow >= r.upper-1e-9
			if atLowerBound && rc < -1e-9 {
				return r, true
			}
			if atUpperBound && rc > 1e-9 {
				return r, false
			}
		}
	}
	return nil, false
}

// pivotCycle finds the fundamental cycle formed by adding entering to
// the tree (via the path from its two endpoints up to their lowest
// common tree ancestor) and runs the ratio test along it, returning
// the id of the arc that first reaches a bound and the flow delta to
// apply.
type cycleArc struct {
	r       *arcRecord
	aligned bool // true if traversed in its own u->v direction while going from..to
}

func pivotCycle(entering *arcRecord, atLower bool, records map[int64]*arcRecord, parentArc, parentNode map[int64]int64) (cycle []cycleArc, leavingID int64, delta float64) {
	pathToRoot := func(start int64) []int64 {
		var p []int64
		cur := start
		for {
			p = append(p, cur)
			if cur == rootID {
				break
			}
			cur = parentNode[cur]
		}
		return p
	}

	from, to := entering.u, entering.v
	if !atLower {
		from, to = entering.v, entering.u
	}

	pu := pathToRoot(from)
	pv := pathToRoot(to)
	depthOf := make(map[int64]int, len(pv))
	for i, n := range pv {
		depthOf[n] = i
	}
	var lca int64
	for _, n := range pu {
		if _, ok := depthOf[n]; ok {
			lca = n
			break
		}
	}

	// Flow is pushed around the cycle in the direction to -> lca -> from
	// (closing back through the entering arc from -> to). An arc is
	// "aligned" when its own u->v orientation matches that push
	// direction, regardless of the order arcs are appended to cycle.
	cur := from
	for cur != lca {
		aid := parentArc[cur]
		r := records[aid]
		aligned := r.v == cur // push direction here is parent->cur
		cycle = append(cycle, cycleArc{r, aligned})
		cur = parentNode[cur]
	}
	var upSide []cycleArc
	cur = to
	for cur != lca {
		aid := parentArc[cur]
		r := records[aid]
		aligned := r.u == cur // push direction here is cur->parent, towards lca
		upSide = append(upSide, cycleArc{r, aligned})
		cur = parentNode[cur]
	}
	for i := len(upSide) - 1; i >= 0; i-- {
		cycle = append(cycle, upSide[i])
	}

	delta = math.Inf(1)
	leavingID = entering.id
	if math.IsInf(entering.upper, 1) {
		// entering arc itself bounds delta only from its lower side when
		// leaving at upper is impossible; otherwise unbounded unless some
		// tree arc constrains it, handled in the loop below.
	} else {
		delta = entering.upper - entering.lower
	}

	for _, ca := range cycle {
		var room float64
		if ca.aligned {
			room = ca.r.upper - ca.r.flow
		} else {
			room = ca.r.flow - ca.r.lower
		}
		if room < delta {
			delta = room
			leavingID = ca.r.id
		}
	}

	return cycle, leavingID, delta
}

// applyPivot pushes delta of flow around the cycle (increasing
// aligned arcs, decreasing opposed ones, including the entering arc
// itself), then swaps the entering arc into the tree and the leaving
// arc out.
func applyPivot(entering *arcRecord, atLower bool, cycle []cycleArc, leavingID int64, delta float64, tree map[int64]bool, records map[int64]*arcRecord) {
	if atLower {
		entering.flow += delta
	} else {
		entering.flow -= delta
	}
	for _, ca := range cycle {
		if ca.aligned {
			ca.r.flow += delta
		} else {
			ca.r.flow -= delta
		}
	}
	if leavingID != entering.id {
		tree[entering.id] = true
		tree[leavingID] = false
	}
}
