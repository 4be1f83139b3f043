package worm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildEdgeSplitTree mirrors spec.md §8 scenario 6: a node at depth 3
// reached from the root via a 2-digit edge, with its own single child
// reached via a further 2-digit edge down to a leaf.
func buildEdgeSplitTree(t *testing.T) *Tree {
	t.Helper()
	b := NewBuilder()
	require.NoError(t, b.Start(BuildOptions{OffsetSize: 1, ValueSize: 1}))
	require.NoError(t, b.AddNode(path(t), false, 0, false, true))
	require.NoError(t, b.AddNode(path(t, 1, 0, 1), true, 5, true, false))
	require.NoError(t, b.AddNode(path(t, 1, 0, 1, 0, 1, 0), true, 9, false, false))
	require.NoError(t, b.Finish())
	buf := b.ExtractBuffer()

	tr, err := NewTree(buf, 1, 1, false, NewUintCodec(1, false), 16)
	require.NoError(t, err)
	return tr
}

func TestWalkCursorEdgeTraversal(t *testing.T) {
	tr := buildEdgeSplitTree(t)
	c := tr.NewWalkCursor()

	require.True(t, c.AtNode())
	require.False(t, c.AtValue())

	require.True(t, c.GoChild(1))
	require.False(t, c.AtNode(), "position inside the 2-digit edge is not at a node")
	require.True(t, c.CanGoChildNode(0))
	require.False(t, c.CanGoChildNode(1))

	require.True(t, c.GoChild(0))
	require.False(t, c.AtNode())

	require.True(t, c.GoChild(1))
	require.True(t, c.AtNode(), "edge fully consumed, cursor lands on the node")
	require.True(t, c.AtValue())

	v, ok := c.NodeValueRO()
	require.True(t, ok)
	require.Equal(t, uint64(5), v)

	cv, depth, ok := c.CoveringNodeValueRO()
	require.True(t, ok)
	require.Equal(t, uint64(5), cv)
	require.Equal(t, 3, depth)

	// Descend through the second edge to the leaf.
	require.True(t, c.GoChild(0))
	require.True(t, c.GoChild(1))
	require.True(t, c.GoChild(0))
	require.True(t, c.AtNode())
	v, ok = c.NodeValueRO()
	require.True(t, ok)
	require.Equal(t, uint64(9), v)

	require.Equal(t, 3, c.ParentNodeDistance())
	n := c.GoParentNode()
	require.Equal(t, 3, n)
	require.True(t, c.AtNode())
	v, ok = c.NodeValueRO()
	require.True(t, ok)
	require.Equal(t, uint64(5), v)
}

func TestWalkCursorGoChildNodeJumpsEdge(t *testing.T) {
	tr := buildEdgeSplitTree(t)
	c := tr.NewWalkCursor()

	wantPath, ok := c.ChildNodePath(1)
	require.True(t, ok)
	require.Equal(t, 3, wantPath.Size())

	gotPath, ok := c.GoChildNode(1)
	require.True(t, ok)
	require.Equal(t, wantPath.Size(), gotPath.Size())
	require.True(t, c.AtNode())
	v, _ := c.NodeValueRO()
	require.Equal(t, uint64(5), v)
}

func TestWalkCursorGoParentFromRootFails(t *testing.T) {
	tr := buildEdgeSplitTree(t)
	c := tr.NewWalkCursor()
	require.False(t, c.CanGoParent())
	require.False(t, c.GoParent())
}

func TestLookupCursorMemoizesCoveringValue(t *testing.T) {
	tr := buildEdgeSplitTree(t)
	c := tr.NewLookupCursor()

	// No value seen yet at the root.
	_, _, ok := c.CoveringNodeValueRO()
	require.False(t, ok)

	for _, d := range []uint8{1, 0, 1} {
		require.True(t, c.GoChild(d))
	}
	v, depth, ok := c.CoveringNodeValueRO()
	require.True(t, ok)
	require.Equal(t, uint64(5), v)
	require.Equal(t, 3, depth)

	// Continuing past the covering node must not disturb the memoized
	// value until a deeper value is actually found.
	require.True(t, c.GoChild(0))
	v, depth, ok = c.CoveringNodeValueRO()
	require.True(t, ok)
	require.Equal(t, uint64(5), v)
	require.Equal(t, 3, depth)

	for _, d := range []uint8{1, 0} {
		require.True(t, c.GoChild(d))
	}
	v, depth, ok = c.CoveringNodeValueRO()
	require.True(t, ok)
	require.Equal(t, uint64(9), v)
	require.Equal(t, 6, depth)
}

func TestLookupCursorWrongDirectionGoesFree(t *testing.T) {
	tr := buildEdgeSplitTree(t)
	c := tr.NewLookupCursor()
	require.True(t, c.GoChild(1))
	// The edge's next digit is 0; taking 1 instead drops the cursor into
	// free space with no materialized descendant.
	require.True(t, c.GoChild(1))
	require.False(t, c.AtNode())
	require.False(t, c.CanGoChildNode(0))
	require.False(t, c.CanGoChildNode(1))
}

func TestWalkCursorMaxDepthStopsDescent(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Start(BuildOptions{OffsetSize: 1, ValueSize: 1}))
	require.NoError(t, b.AddNode(path(t), true, 1, false, false))
	require.NoError(t, b.Finish())
	buf := b.ExtractBuffer()
	tr, err := NewTree(buf, 1, 1, false, NewUintCodec(1, false), 1)
	require.NoError(t, err)
	c := tr.NewWalkCursor()
	require.True(t, c.GoChild(0))
	require.False(t, c.GoChild(0), "already at max depth")
}
