// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/arcgraph/arcgraph/graph"
)

var posInf = math.Inf(1)

// reconstructPath walks parent backward from v to its root (the node
// mapped to graph.InvalidArc) and returns the resulting graph.Path,
// shared by every shortest-path searcher's GetPath.
func reconstructPath(g graph.Interface, parent map[int64]graph.Arc, v graph.Node) *graph.Path {
	var chain []graph.Arc
	cur := v
	for {
		a, ok := parent[cur.ID()]
		if !ok || !a.IsValid() {
			break
		}
		chain = append(chain, a)
		cur = g.Other(a, cur)
	}
	p := graph.NewPath(g, cur)
	for i := len(chain) - 1; i >= 0; i-- {
		p.Extend(chain[i])
	}
	return p
}
