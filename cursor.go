package radix

// Cursor is the read-only core of the cursor contract: a position in a
// tree that may be exactly on a node, partway along an edge, or off the
// materialized structure entirely, plus the ability to test and follow
// child digits one at a time.
type Cursor[V any] interface {
	// Path returns the digit sequence walked from the root to reach the
	// current position.
	Path() Path

	// AtNode reports whether the current position coincides exactly with
	// a materialized node.
	AtNode() bool

	// AtValue reports whether the current position is at a node that
	// holds a value.
	AtValue() bool

	// CanGoChild reports whether the cursor has room to descend one more
	// digit, i.e. whether the current depth is below the tree's maximum
	// depth. It does not check whether any node or edge actually exists
	// in direction d; see CanGoChildNode for that.
	CanGoChild(d uint8) bool

	// CanGoChildNode reports whether following digit d, possibly across
	// an edge, leads toward a materialized node.
	CanGoChildNode(d uint8) bool

	// GoChild advances the cursor by one digit d. It fails only when the
	// path is already at maximum depth.
	GoChild(d uint8) bool

	// NodeValueRO returns the value at the current node, if any.
	NodeValueRO() (V, bool)

	// CoveringNodeValueRO returns the value of the deepest ancestor-or-self
	// node with a value along the current path (the longest-prefix match),
	// its depth, and whether one was found.
	CoveringNodeValueRO() (V, int, bool)
}

// NavCursor extends Cursor with the ability to retreat and to jump past
// edges directly to materialized node boundaries.
type NavCursor[V any] interface {
	Cursor[V]

	// CanGoParent reports whether the cursor can retreat at least one
	// digit (it is not already at the root).
	CanGoParent() bool

	// GoParent retreats the cursor by exactly one digit.
	GoParent() bool

	// ParentNodeDistance returns the number of GoParent calls required to
	// reach the nearest ancestor node (not counting the current node, if
	// the cursor is already at one).
	ParentNodeDistance() int

	// GoParentNode retreats directly to the nearest ancestor node and
	// returns the number of digits traversed.
	GoParentNode() int

	// GoChildNode follows digit d and, if it leads to a materialized
	// node, jumps past any intervening edge directly to it, returning the
	// full path walked. It only applies when the cursor starts at a node.
	GoChildNode(d uint8) (Path, bool)

	// ChildNodePath reports the path GoChildNode(d) would walk, without
	// moving the cursor.
	ChildNodePath(d uint8) (Path, bool)
}

// RWCursor extends NavCursor with mutation.
type RWCursor[V any] interface {
	NavCursor[V]

	// AddNode materializes a node at the current position, splitting or
	// extending edges as needed, and returns a handle to its value slot.
	// If a node already exists here, it is returned unchanged.
	AddNode() *NodeValue[V]

	// RemoveNode removes the current node if it has no value and no
	// children. The cursor's path is unchanged; on success the position
	// is now off-node (free).
	RemoveNode() bool

	// ClearValue removes the current node's value, if any, and returns
	// it.
	ClearValue() (V, bool)

	// NodeValue returns a mutable handle to the current node's value
	// slot. The cursor must be at a node.
	NodeValue() *NodeValue[V]
}

// cursor is the concrete read/write navigable cursor. It tracks, for every
// depth from the root to the current path length, the state-machine
// position (history) and, separately, the chain of materialized
// ancestor-or-self nodes actually visited (nodeStack).
type cursor[V any] struct {
	tree      *Tree[V]
	path      Path
	history   []hist
	nodeStack []nodeFrame
}

var (
	_ RWCursor[int] = (*cursor[int])(nil)
)

func (c *cursor[V]) top() nodeFrame {
	return c.nodeStack[len(c.nodeStack)-1]
}

func (c *cursor[V]) cur() hist {
	return c.history[len(c.history)-1]
}

func (c *cursor[V]) Path() Path { return c.path }

func (c *cursor[V]) AtNode() bool {
	return c.cur().state == stAtNode
}

func (c *cursor[V]) AtValue() bool {
	if !c.AtNode() {
		return false
	}
	return c.tree.resolve(c.top().ref).hasValue
}

func (c *cursor[V]) CanGoChild(d uint8) bool {
	return c.path.Size() < c.tree.maxDepth
}

func (c *cursor[V]) CanGoChildNode(d uint8) bool {
	cur := c.cur()
	switch cur.state {
	case stAtNode:
		_, ok := c.tree.resolve(c.top().ref).childRef(d)
		return ok
	case stInEdge:
		desc := c.tree.resolve(cur.descendant)
		return desc.edge.At(cur.edgeMatched) == d
	default:
		return false
	}
}

func (c *cursor[V]) GoChild(d uint8) bool {
	if c.path.Size() >= c.tree.maxDepth {
		return false
	}
	next, push, pushOk := step(c.tree, c.top().ref, c.cur(), d)
	newPath, err := c.path.PushBack(d)
	if err != nil {
		return false
	}
	c.path = newPath
	c.history = append(c.history, next)
	if pushOk {
		c.nodeStack = append(c.nodeStack, nodeFrame{ref: push, depth: c.path.Size()})
	}
	return true
}

func (c *cursor[V]) NodeValueRO() (V, bool) {
	var zero V
	if !c.AtNode() {
		return zero, false
	}
	n := c.tree.resolve(c.top().ref)
	return n.value, n.hasValue
}

func (c *cursor[V]) CoveringNodeValueRO() (V, int, bool) {
	var zero V
	for i := len(c.nodeStack) - 1; i >= 0; i-- {
		n := c.tree.resolve(c.nodeStack[i].ref)
		if n.hasValue {
			return n.value, c.nodeStack[i].depth, true
		}
	}
	return zero, 0, false
}

func (c *cursor[V]) CanGoParent() bool {
	return c.path.Size() > 0
}

func (c *cursor[V]) GoParent() bool {
	if c.path.Size() == 0 {
		return false
	}
	newPath, _, err := c.path.PopBack()
	if err != nil {
		return false
	}
	c.path = newPath
	c.history = c.history[:len(c.history)-1]
	for len(c.nodeStack) > 0 && c.top().depth > c.path.Size() {
		c.nodeStack = c.nodeStack[:len(c.nodeStack)-1]
	}
	return true
}

func (c *cursor[V]) ParentNodeDistance() int {
	cur := c.cur()
	var targetDepth int
	if cur.state == stAtNode {
		if len(c.nodeStack) < 2 {
			return 0
		}
		targetDepth = c.nodeStack[len(c.nodeStack)-2].depth
	} else {
		targetDepth = c.top().depth
	}
	return c.path.Size() - targetDepth
}

func (c *cursor[V]) GoParentNode() int {
	n := c.ParentNodeDistance()
	for i := 0; i < n; i++ {
		c.GoParent()
	}
	return n
}

func (c *cursor[V]) ChildNodePath(d uint8) (Path, bool) {
	if !c.AtNode() {
		return c.path, false
	}
	childRef, ok := c.tree.resolve(c.top().ref).childRef(d)
	if !ok {
		return c.path, false
	}
	child := c.tree.resolve(childRef)
	p, err := c.path.PushBack(d)
	if err != nil {
		return c.path, false
	}
	for i := 0; i < child.edge.Length(); i++ {
		p, err = p.PushBack(child.edge.At(i))
		if err != nil {
			return c.path, false
		}
	}
	return p, true
}

func (c *cursor[V]) GoChildNode(d uint8) (Path, bool) {
	p, ok := c.ChildNodePath(d)
	if !ok {
		return c.path, false
	}
	for c.path.Size() < p.Size() {
		next, _ := p.At(c.path.Size())
		c.GoChild(next)
	}
	return c.path, true
}

// AddNode materializes the current position as a node, splitting an
// existing edge if the cursor diverged mid-edge, or extending the nearest
// ancestor node with a fresh child otherwise. See DESIGN.md for the
// correspondence with the edge-split steps.
func (c *cursor[V]) AddNode() *NodeValue[V] {
	if c.AtNode() {
		return newNodeValue(c.tree.alloc, c.top().ref)
	}

	cur := c.cur()
	topRef := c.top().ref
	topDepth := c.top().depth
	targetDepth := c.path.Size()
	alloc := c.tree.alloc

	if cur.state == stFree && alloc.IsNull(cur.descendant) {
		// Diverged right at an ancestor node with no child in this
		// direction: just attach a fresh node under it.
		slotDigit := c.path.MustAt(topDepth)
		newRef := alloc.New()
		newNode := alloc.Resolve(newRef)
		edgeDigits := make([]uint8, 0, targetDepth-topDepth-1)
		for i := topDepth + 1; i < targetDepth; i++ {
			edgeDigits = append(edgeDigits, c.path.MustAt(i))
		}
		newNode.edge = NewEdge(edgeDigits)
		c.tree.resolve(topRef).setChild(slotDigit, newRef)
	} else {
		// Diverged partway along an existing descendant's edge: split it.
		b := cur.descendant
		m := cur.edgeMatched
		bNode := alloc.Resolve(b)
		splitDepth := topDepth + 1 + m

		slotDigit := c.path.MustAt(topDepth)
		xRef := alloc.New()
		xNode := alloc.Resolve(xRef)
		xNode.edge = bNode.edge.prefix(m)

		bRemainderDigit := bNode.edge.At(m)
		bNode.edge = bNode.edge.suffix(m + 1)
		xNode.setChild(bRemainderDigit, b)
		c.tree.resolve(topRef).setChild(slotDigit, xRef)

		if targetDepth > splitDepth {
			divergeDigit := c.path.MustAt(splitDepth)
			yRef := alloc.New()
			yNode := alloc.Resolve(yRef)
			edgeDigits := make([]uint8, 0, targetDepth-splitDepth-1)
			for i := splitDepth + 1; i < targetDepth; i++ {
				edgeDigits = append(edgeDigits, c.path.MustAt(i))
			}
			yNode.edge = NewEdge(edgeDigits)
			xNode.setChild(divergeDigit, yRef)
		}
	}

	// The tree structure under topRef has changed; relocate the cursor
	// along the same path to pick up the freshly materialized chain.
	*c = *c.tree.locate(c.path)
	return newNodeValue(c.tree.alloc, c.top().ref)
}

func (c *cursor[V]) RemoveNode() bool {
	if !c.AtNode() {
		return false
	}
	n := c.tree.resolve(c.top().ref)
	if n.hasValue || n.childCount() > 0 {
		return false
	}
	if len(c.nodeStack) < 2 {
		// Root node: never detached, so removal fails.
		return false
	}
	parentRef := c.nodeStack[len(c.nodeStack)-2].ref
	parentDepth := c.nodeStack[len(c.nodeStack)-2].depth
	slotDigit := c.path.MustAt(parentDepth)
	c.tree.resolve(parentRef).removeChild(slotDigit)
	c.tree.alloc.Release(c.top().ref)
	*c = *c.tree.locate(c.path)
	return true
}

func (c *cursor[V]) ClearValue() (V, bool) {
	var zero V
	if !c.AtNode() {
		return zero, false
	}
	n := c.tree.resolve(c.top().ref)
	old, had := n.value, n.hasValue
	n.value = zero
	n.hasValue = false
	return old, had
}

func (c *cursor[V]) NodeValue() *NodeValue[V] {
	if !c.AtNode() {
		return nil
	}
	return newNodeValue(c.tree.alloc, c.top().ref)
}
