// Copyright ©2024 The arcgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcgraph/arcgraph/path"
)

func TestBidirectionalMatchesDijkstraDistance(t *testing.T) {
	src, a, _, _, d, costFn := weightedDiamond()

	bi := path.NewBidirectional(src, costFn, a, d)
	bi.Run()

	require.True(t, bi.Reached())
	assert.Equal(t, 3.0, bi.GetDistance())

	p := bi.GetPath()
	require.NotNil(t, p)
	assert.Equal(t, a, p.FirstNode())
	assert.Equal(t, d, p.LastNode())
	assert.Len(t, p.OrderedArcs(), 3)
}

func TestBidirectionalUnreachableTarget(t *testing.T) {
	src, a, _, _, _, costFn := weightedDiamond()
	isolated := src.AddNode()

	bi := path.NewBidirectional(src, costFn, a, isolated)
	bi.Run()

	assert.False(t, bi.Reached())
	assert.Nil(t, bi.GetPath())
}
