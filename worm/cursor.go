package worm

import "github.com/axtree/radix"

// WalkCursor is a read-only NavCursor over a WORM buffer: full navigation,
// equivalent in contract to the in-memory cursor, but values always come
// back as owned uint64 copies since WORM storage is not byte-aligned to
// any host value type in general.
type WalkCursor struct {
	tree      *Tree
	path      radix.Path
	history   []wormHist
	nodeStack []wormFrame
}

var _ radix.NavCursor[uint64] = (*WalkCursor)(nil)

// NewWalkCursor returns a WalkCursor positioned at t's root.
func (t *Tree) NewWalkCursor() *WalkCursor {
	return &WalkCursor{
		tree:      t,
		path:      radix.NewPath(2, t.maxDepth),
		history:   []wormHist{{state: wAtNode}},
		nodeStack: []wormFrame{{pos: 0, depth: 0}},
	}
}

func (c *WalkCursor) top() wormFrame { return c.nodeStack[len(c.nodeStack)-1] }
func (c *WalkCursor) cur() wormHist  { return c.history[len(c.history)-1] }

func (c *WalkCursor) Path() radix.Path { return c.path }

func (c *WalkCursor) AtNode() bool { return c.cur().state == wAtNode }

func (c *WalkCursor) AtValue() bool {
	if !c.AtNode() {
		return false
	}
	return c.tree.decodeAt(c.top().pos).hasValue
}

func (c *WalkCursor) CanGoChild(d uint8) bool {
	return c.path.Size() < c.tree.maxDepth
}

func (c *WalkCursor) CanGoChildNode(d uint8) bool {
	cur := c.cur()
	switch cur.state {
	case wAtNode:
		h := c.tree.decodeAt(c.top().pos)
		_, ok := c.tree.childPos(c.top().pos, h, d)
		return ok
	case wInEdge:
		h := c.tree.decodeAt(cur.descendant)
		digits := unpackEdgeDigits(h.edgeDigits, h.edgeLen)
		return digits[cur.edgeMatched] == d
	default:
		return false
	}
}

func (c *WalkCursor) GoChild(d uint8) bool {
	if c.path.Size() >= c.tree.maxDepth {
		return false
	}
	next, push, pushOk := c.tree.step(c.top().pos, c.cur(), d)
	newPath, err := c.path.PushBack(d)
	if err != nil {
		return false
	}
	c.path = newPath
	c.history = append(c.history, next)
	if pushOk {
		c.nodeStack = append(c.nodeStack, wormFrame{pos: push, depth: c.path.Size()})
	}
	return true
}

func (c *WalkCursor) NodeValueRO() (uint64, bool) {
	if !c.AtNode() {
		return 0, false
	}
	h := c.tree.decodeAt(c.top().pos)
	if !h.hasValue {
		return 0, false
	}
	return c.tree.valueAt(c.top().pos, h), true
}

func (c *WalkCursor) CoveringNodeValueRO() (uint64, int, bool) {
	for i := len(c.nodeStack) - 1; i >= 0; i-- {
		h := c.tree.decodeAt(c.nodeStack[i].pos)
		if h.hasValue {
			return c.tree.valueAt(c.nodeStack[i].pos, h), c.nodeStack[i].depth, true
		}
	}
	return 0, 0, false
}

func (c *WalkCursor) CanGoParent() bool { return c.path.Size() > 0 }

func (c *WalkCursor) GoParent() bool {
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

func (c *WalkCursor) ParentNodeDistance() int {
	cur := c.cur()
	var targetDepth int
	if cur.state == wAtNode {
		if len(c.nodeStack) < 2 {
			return 0
		}
		targetDepth = c.nodeStack[len(c.nodeStack)-2].depth
	} else {
		targetDepth = c.top().depth
	}
	return c.path.Size() - targetDepth
}

func (c *WalkCursor) GoParentNode() int {
	n := c.ParentNodeDistance()
	for i := 0; i < n; i++ {
		c.GoParent()
	}
	return n
}

func (c *WalkCursor) ChildNodePath(d uint8) (radix.Path, bool) {
	if !c.AtNode() {
		return c.path, false
	}
	h := c.tree.decodeAt(c.top().pos)
	childPos, ok := c.tree.childPos(c.top().pos, h, d)
	if !ok {
		return c.path, false
	}
	childHeader := c.tree.decodeAt(childPos)
	digits := unpackEdgeDigits(childHeader.edgeDigits, childHeader.edgeLen)
	p, err := c.path.PushBack(d)
	if err != nil {
		return c.path, false
	}
	for _, dig := range digits {
		p, err = p.PushBack(dig)
		if err != nil {
			return c.path, false
		}
	}
	return p, true
}

func (c *WalkCursor) GoChildNode(d uint8) (radix.Path, bool) {
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

// LookupCursor is a read-only, downward-only cursor: the Cursor subset
// only, tuned for longest-prefix-match style lookups. Unlike WalkCursor,
// it does not keep a full ancestor stack; instead it memoizes the deepest
// value seen so far as it descends, making CoveringNodeValueRO O(1)
// instead of a backward scan.
type LookupCursor struct {
	tree *Tree
	path radix.Path
	pos  int
	hist wormHist

	bestValue uint64
	bestDepth int
	bestFound bool
}

var _ radix.Cursor[uint64] = (*LookupCursor)(nil)

// NewLookupCursor returns a LookupCursor positioned at t's root.
func (t *Tree) NewLookupCursor() *LookupCursor {
	c := &LookupCursor{
		tree: t,
		path: radix.NewPath(2, t.maxDepth),
		pos:  0,
		hist: wormHist{state: wAtNode},
	}
	c.memoize()
	return c
}

func (c *LookupCursor) memoize() {
	if c.hist.state != wAtNode {
		return
	}
	h := c.tree.decodeAt(c.pos)
	if h.hasValue {
		c.bestValue = c.tree.valueAt(c.pos, h)
		c.bestDepth = c.path.Size()
		c.bestFound = true
	}
}

func (c *LookupCursor) Path() radix.Path { return c.path }

func (c *LookupCursor) AtNode() bool { return c.hist.state == wAtNode }

func (c *LookupCursor) AtValue() bool {
	if !c.AtNode() {
		return false
	}
	return c.tree.decodeAt(c.pos).hasValue
}

func (c *LookupCursor) CanGoChild(d uint8) bool {
	return c.path.Size() < c.tree.maxDepth
}

func (c *LookupCursor) CanGoChildNode(d uint8) bool {
	switch c.hist.state {
	case wAtNode:
		h := c.tree.decodeAt(c.pos)
		_, ok := c.tree.childPos(c.pos, h, d)
		return ok
	case wInEdge:
		h := c.tree.decodeAt(c.hist.descendant)
		digits := unpackEdgeDigits(h.edgeDigits, h.edgeLen)
		return digits[c.hist.edgeMatched] == d
	default:
		return false
	}
}

func (c *LookupCursor) GoChild(d uint8) bool {
	if c.path.Size() >= c.tree.maxDepth {
		return false
	}
	next, push, pushOk := c.tree.step(c.pos, c.hist, d)
	newPath, err := c.path.PushBack(d)
	if err != nil {
		return false
	}
	c.path = newPath
	c.hist = next
	if pushOk {
		c.pos = push
		c.memoize()
	}
	return true
}

func (c *LookupCursor) NodeValueRO() (uint64, bool) {
	if !c.AtNode() {
		return 0, false
	}
	h := c.tree.decodeAt(c.pos)
	if !h.hasValue {
		return 0, false
	}
	return c.tree.valueAt(c.pos, h), true
}

func (c *LookupCursor) CoveringNodeValueRO() (uint64, int, bool) {
	return c.bestValue, c.bestDepth, c.bestFound
}
