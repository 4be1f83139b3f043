package radix

import "testing"

func pathOf(t *testing.T, radix, maxDepth int, digits ...uint8) Path {
	t.Helper()
	p := NewPath(radix, maxDepth)
	for _, d := range digits {
		var err error
		p, err = p.PushBack(d)
		if err != nil {
			t.Fatalf("PushBack(%d): %v", d, err)
		}
	}
	return p
}

func driveTo(t *testing.T, c RWCursor[int], digits ...uint8) {
	t.Helper()
	for _, d := range digits {
		if !c.GoChild(d) {
			t.Fatalf("GoChild(%d) failed at path %s", d, c.Path())
		}
	}
}

func TestEmptyTreeRootCursor(t *testing.T) {
	tr := NewPointerTree[int](2, 8)
	c := tr.NewCursor()
	if !c.AtNode() {
		t.Error("root cursor: AtNode() = false, want true")
	}
	if c.AtValue() {
		t.Error("root cursor on empty tree: AtValue() = true, want false")
	}
	if c.CanGoChildNode(0) || c.CanGoChildNode(1) {
		t.Error("empty tree: CanGoChildNode true for either digit")
	}
}

func TestAddNodeIdempotent(t *testing.T) {
	tr := NewPointerTree[int](2, 8)
	c := tr.NewCursor()
	driveTo(t, c, 1, 0, 1)
	c.AddNode().Set(42)

	c2 := tr.NewCursor()
	driveTo(t, c2, 1, 0, 1)
	nv := c2.AddNode()
	v, ok := nv.Get()
	if !ok || v != 42 {
		t.Fatalf("second AddNode at existing node: got (%d,%v), want (42,true)", v, ok)
	}

	// Calling AddNode again must not alter the tree's shape or value.
	nv2 := c2.AddNode()
	v2, ok2 := nv2.Get()
	if !ok2 || v2 != 42 {
		t.Fatalf("third AddNode: got (%d,%v), want (42,true)", v2, ok2)
	}
}

func TestRemoveNodeFailsWithValueOrChildren(t *testing.T) {
	tr := NewPointerTree[int](2, 8)
	c := tr.NewCursor()
	driveTo(t, c, 1, 0)
	c.AddNode().Set(1)
	driveTo(t, c, 1) // now at [1,0,1]
	c.AddNode().Set(2)

	// [1,0,1] has a value: removal must fail.
	if c.RemoveNode() {
		t.Error("RemoveNode on valued leaf: want false")
	}

	// [1,0] has a child: removal must fail even after its own value is cleared.
	parent := tr.NewCursor()
	driveTo(t, parent, 1, 0)
	parent.ClearValue()
	if parent.RemoveNode() {
		t.Error("RemoveNode on branch node with a child: want false")
	}

	// clear the leaf, then it (no value, no children) can be removed.
	leaf := tr.NewCursor()
	driveTo(t, leaf, 1, 0, 1)
	leaf.ClearValue()
	if !leaf.RemoveNode() {
		t.Error("RemoveNode on empty leaf: want true")
	}
	if leaf.AtNode() {
		t.Error("after RemoveNode, cursor should be off-node")
	}
}

func TestCoveringNodeValueRO(t *testing.T) {
	tr := NewPointerTree[string](2, 8)
	root := tr.NewCursor()
	root.AddNode().Set("root-value")

	c := tr.NewCursor()
	driveTo(t, c, 1, 0, 1, 1)
	v, depth, ok := c.CoveringNodeValueRO()
	if !ok || v != "root-value" || depth != 0 {
		t.Fatalf("covering value at depth 4 with only root valued: got (%q,%d,%v), want (root-value,0,true)", v, depth, ok)
	}

	mid := tr.NewCursor()
	driveTo(t, mid, 1, 0)
	mid.AddNode().Set("mid-value")

	c2 := tr.NewCursor()
	driveTo(t, c2, 1, 0, 1, 1)
	v2, depth2, ok2 := c2.CoveringNodeValueRO()
	if !ok2 || v2 != "mid-value" || depth2 != 2 {
		t.Fatalf("covering value after deeper insert: got (%q,%d,%v), want (mid-value,2,true)", v2, depth2, ok2)
	}
}

// TestEdgeSplitDeterminism mirrors the end-to-end edge-split scenario: v1 at
// [1,0,1,0,1], then v2 at [1,0,1] splits the edge leading to v1's node so
// that it now sits two digits ([0,1]) below the new node.
func TestEdgeSplitDeterminism(t *testing.T) {
	tr := NewPointerTree[int](2, 16)
	c1 := tr.NewCursor()
	driveTo(t, c1, 1, 0, 1, 0, 1)
	c1.AddNode().Set(111)

	c2 := tr.NewCursor()
	driveTo(t, c2, 1, 0, 1)
	c2.AddNode().Set(222)

	// both values are still retrievable at their original paths.
	r1 := tr.NewCursor()
	driveTo(t, r1, 1, 0, 1, 0, 1)
	v1, ok1 := r1.NodeValueRO()
	if !ok1 || v1 != 111 {
		t.Fatalf("value at [1,0,1,0,1]: got (%d,%v), want (111,true)", v1, ok1)
	}

	r2 := tr.NewCursor()
	driveTo(t, r2, 1, 0, 1)
	v2, ok2 := r2.NodeValueRO()
	if !ok2 || v2 != 222 {
		t.Fatalf("value at [1,0,1]: got (%d,%v), want (222,true)", v2, ok2)
	}
	if !r2.AtNode() {
		t.Fatal("cursor at [1,0,1] should be at a materialized node")
	}

	// walking [1,0,1] -> 0 -> 1 should land exactly at the deeper node,
	// never detouring through a non-edge digit.
	if !r2.GoChild(0) {
		t.Fatal("GoChild(0) from split node failed")
	}
	if r2.AtNode() {
		t.Fatal("position after one digit of the 2-digit edge should be mid-edge")
	}
	if !r2.GoChild(1) {
		t.Fatal("GoChild(1) along edge failed")
	}
	if !r2.AtNode() {
		t.Fatal("position after both edge digits should be at the deeper node")
	}
	v3, ok3 := r2.NodeValueRO()
	if !ok3 || v3 != 111 {
		t.Fatalf("value reached via edge walk: got (%d,%v), want (111,true)", v3, ok3)
	}
}

// TestDictionaryPreOrder mirrors the binary-dictionary end-to-end scenario:
// words encoded as (letter-'a') digits over a radix-26 tree, pre-order
// enumerating lexicographically.
func TestDictionaryPreOrder(t *testing.T) {
	tr := NewPointerTree[bool](26, 10)
	words := []string{"cat", "cart", "car", "dog"}
	for _, w := range words {
		c := tr.NewCursor()
		for i := 0; i < len(w); i++ {
			d := uint8(w[i] - 'a')
			if !c.GoChild(d) {
				t.Fatalf("GoChild(%d) inserting %q failed", d, w)
			}
		}
		c.AddNode().Set(true)
	}

	var got []string
	walk := tr.NewWalkCursor()
	err := ValuesOnlyPreOrderWalk[bool](walk, false, func(p Path, v bool) error {
		var s []byte
		for i := 0; i < p.Size(); i++ {
			d := p.MustAt(i)
			s = append(s, 'a'+d)
		}
		got = append(got, string(s))
		return nil
	})
	if err != nil {
		t.Fatalf("ValuesOnlyPreOrderWalk: %v", err)
	}

	want := []string{"car", "cart", "cat", "dog"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// TestDictionaryPrefixEnumeration checks that a cursor positioned at a
// prefix still enumerates only the subtree beneath it.
func TestDictionaryPrefixEnumeration(t *testing.T) {
	tr := NewPointerTree[bool](26, 10)
	for _, w := range []string{"cat", "cart", "car", "dog"} {
		c := tr.NewCursor()
		for i := 0; i < len(w); i++ {
			c.GoChild(uint8(w[i] - 'a'))
		}
		c.AddNode().Set(true)
	}

	prefix := tr.NewWalkCursor()
	if !prefix.GoChild(uint8('c' - 'a')) {
		t.Fatal("GoChild('c'): failed")
	}
	if !prefix.GoChild(uint8('a' - 'a')) {
		t.Fatal("GoChild('a'): failed")
	}

	var got []string
	err := ValuesOnlyPreOrderWalk[bool](prefix, false, func(p Path, v bool) error {
		var s []byte
		for i := 0; i < p.Size(); i++ {
			s = append(s, 'a'+p.MustAt(i))
		}
		got = append(got, string(s))
		return nil
	})
	if err != nil {
		t.Fatalf("ValuesOnlyPreOrderWalk: %v", err)
	}
	want := []string{"car", "cart", "cat"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMaxDepthBoundary(t *testing.T) {
	tr := NewPointerTree[int](2, 3)
	c := tr.NewCursor()
	driveTo(t, c, 1, 0)
	if !c.CanGoChild(0) || !c.CanGoChild(1) {
		t.Error("CanGoChild below max depth: want true for both digits")
	}
	driveTo(t, c, 1)
	if c.CanGoChild(0) {
		t.Error("CanGoChild at max depth: want false")
	}
	if c.GoChild(0) {
		t.Error("GoChild at max depth: want false")
	}
	// AddNode must still succeed exactly at max depth.
	nv := c.AddNode()
	nv.Set(7)
	v, ok := nv.Get()
	if !ok || v != 7 {
		t.Fatalf("AddNode at max depth: got (%d,%v), want (7,true)", v, ok)
	}
}

func TestNavCursorParentNavigation(t *testing.T) {
	tr := NewPointerTree[int](2, 8)
	c := tr.NewCursor()
	driveTo(t, c, 1, 0, 1)
	c.AddNode().Set(9)

	if !c.CanGoParent() {
		t.Fatal("CanGoParent at depth 3: want true")
	}
	if !c.GoParent() {
		t.Fatal("GoParent failed")
	}
	if c.Path().Size() != 2 {
		t.Fatalf("after GoParent, path size = %d, want 2", c.Path().Size())
	}

	root := tr.NewCursor()
	if root.CanGoParent() {
		t.Error("CanGoParent at root: want false")
	}
	if root.GoParent() {
		t.Error("GoParent at root: want false")
	}
}

func TestGoChildNodeJumpsPastEdge(t *testing.T) {
	tr := NewPointerTree[int](2, 16)
	c := tr.NewCursor()
	driveTo(t, c, 1, 0, 1, 0, 1)
	c.AddNode().Set(5)

	nav := tr.NewWalkCursor()
	p, ok := nav.GoChildNode(1)
	if !ok {
		t.Fatal("GoChildNode(1) from root: want true")
	}
	if p.Size() != 5 {
		t.Fatalf("GoChildNode jumped to path size %d, want 5 (the full edge)", p.Size())
	}
	v, ok := nav.NodeValueRO()
	if !ok || v != 5 {
		t.Fatalf("value at jumped-to node: got (%d,%v), want (5,true)", v, ok)
	}
}
