package radix

// LookupCursor is a read-only, downward-only cursor: it exposes exactly the
// Cursor contract (no GoParent, no node-jumping) for code whose only need is
// walking a key digit by digit and consulting CoveringNodeValueRO, such as a
// longest-prefix-match lookup. Unlike the full navigable cursor, it does not
// keep a stack of every materialized ancestor; it memoizes only the deepest
// value seen so far, so CoveringNodeValueRO is O(1) instead of a backward
// scan over the ancestor chain — the same technique worm.LookupCursor uses
// over the on-disk format.
type LookupCursor[V any] struct {
	tree *Tree[V]
	path Path
	top  NodeRef
	h    hist

	bestValue V
	bestDepth int
	bestFound bool
}

var _ Cursor[int] = (*LookupCursor[int])(nil)

func newLookupCursor[V any](t *Tree[V]) *LookupCursor[V] {
	c := &LookupCursor[V]{
		tree: t,
		path: t.EmptyPath(),
		top:  t.root,
		h:    hist{state: stAtNode},
	}
	c.memoize()
	return c
}

func (l *LookupCursor[V]) memoize() {
	if l.h.state != stAtNode {
		return
	}
	n := l.tree.resolve(l.top)
	if n.hasValue {
		l.bestValue = n.value
		l.bestDepth = l.path.Size()
		l.bestFound = true
	}
}

func (l *LookupCursor[V]) Path() Path { return l.path }

func (l *LookupCursor[V]) AtNode() bool { return l.h.state == stAtNode }

func (l *LookupCursor[V]) AtValue() bool {
	if !l.AtNode() {
		return false
	}
	return l.tree.resolve(l.top).hasValue
}

func (l *LookupCursor[V]) CanGoChild(d uint8) bool {
	return l.path.Size() < l.tree.maxDepth
}

func (l *LookupCursor[V]) CanGoChildNode(d uint8) bool {
	switch l.h.state {
	case stAtNode:
		_, ok := l.tree.resolve(l.top).childRef(d)
		return ok
	case stInEdge:
		desc := l.tree.resolve(l.h.descendant)
		return desc.edge.At(l.h.edgeMatched) == d
	default:
		return false
	}
}

func (l *LookupCursor[V]) GoChild(d uint8) bool {
	if l.path.Size() >= l.tree.maxDepth {
		return false
	}
	next, push, pushOk := step(l.tree, l.top, l.h, d)
	newPath, err := l.path.PushBack(d)
	if err != nil {
		return false
	}
	l.path = newPath
	l.h = next
	if pushOk {
		l.top = push
		l.memoize()
	}
	return true
}

func (l *LookupCursor[V]) NodeValueRO() (V, bool) {
	var zero V
	if !l.AtNode() {
		return zero, false
	}
	n := l.tree.resolve(l.top)
	return n.value, n.hasValue
}

func (l *LookupCursor[V]) CoveringNodeValueRO() (V, int, bool) {
	return l.bestValue, l.bestDepth, l.bestFound
}

// LookupWO is a write-only, downward-only cursor: the digit-at-a-time
// counterpart to LookupCursor that may also materialize nodes as it
// descends, for building a tree from a stream of (path, value) pairs
// without needing the full navigable cursor. It eagerly materializes via
// AddNode at every step, so it holds no state that a mutation elsewhere in
// the tree could invalidate.
type LookupWO[V any] struct {
	c *cursor[V]
}

func newLookupWO[V any](t *Tree[V]) *LookupWO[V] {
	return &LookupWO[V]{c: t.locate(t.EmptyPath())}
}

func (l *LookupWO[V]) Path() Path            { return l.c.Path() }
func (l *LookupWO[V]) AtNode() bool          { return l.c.AtNode() }
func (l *LookupWO[V]) AddNode() *NodeValue[V] { return l.c.AddNode() }
func (l *LookupWO[V]) ClearValue() (V, bool) { return l.c.ClearValue() }

// GoChild moves one digit down and materializes a node at the new position.
func (l *LookupWO[V]) GoChild(d uint8) bool {
	if !l.c.GoChild(d) {
		return false
	}
	l.c.AddNode()
	return true
}

// NewLookupWO returns a write-only, downward-only cursor positioned at the
// root of t.
func (t *Tree[V]) NewLookupWO() *LookupWO[V] {
	return newLookupWO[V](t)
}
