// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcgraph/arcgraph/graph"
	"github.com/arcgraph/arcgraph/path"
)

func TestAStarMatchesDijkstraWithZeroHeuristic(t *testing.T) {
	src, a, _, _, d, costFn := weightedDiamond()

	zero := func(graph.Node) float64 { return 0 }
	as := path.NewAStar(src, costFn, zero, a, d)
	as.Run()

	require.True(t, as.Reached())
	assert.Equal(t, 3.0, as.GetDistance())

	p := as.GetPath()
	require.NotNil(t, p)
	assert.Equal(t, a, p.FirstNode())
	assert.Equal(t, d, p.LastNode())
}

func TestAStarUnreachedTarget(t *testing.T) {
	g := graph.New()
	a := g.AddNode()
	isolated := g.AddNode()
	as := path.NewAStar(g, func(graph.Arc) float64 { return 1 }, func(graph.Node) float64 { return 0 }, a, isolated)
	as.Run()

	assert.False(t, as.Reached())
	assert.Nil(t, as.GetPath())
}
