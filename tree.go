package radix

// Tree is an edge-compressed radix tree over digits in [0,radix), at most
// maxDepth deep, with values of type V. A Tree owns an Allocator and a root
// reference; all reading and mutation happens through cursors vended by
// NewCursor/NewLookupCursor/NewWalkCursor, never directly on the tree.
type Tree[V any] struct {
	radix    int
	maxDepth int
	alloc    Allocator[V]
	root     NodeRef
}

// NewTree returns an empty tree of the given radix and maximum depth, using
// alloc for node storage.
func NewTree[V any](radix, maxDepth int, alloc Allocator[V]) *Tree[V] {
	if radix <= 0 || radix > 256 {
		panic("radix: NewTree: radix out of range")
	}
	if maxDepth <= 0 {
		panic("radix: NewTree: maxDepth out of range")
	}
	return &Tree[V]{
		radix:    radix,
		maxDepth: maxDepth,
		alloc:    alloc,
		root:     alloc.New(),
	}
}

// NewPointerTree returns an empty tree backed by the pointer allocator.
func NewPointerTree[V any](radix, maxDepth int) *Tree[V] {
	return NewTree[V](radix, maxDepth, NewPointerAllocator[V]())
}

// NewSlabTree returns an empty tree backed by a slab allocator with the
// default warm-cache size.
func NewSlabTree[V any](radix, maxDepth int) *Tree[V] {
	return NewTree[V](radix, maxDepth, NewSlabAllocator[V](DefaultSlabWarmCache))
}

// Radix returns the tree's digit radix.
func (t *Tree[V]) Radix() int { return t.radix }

// MaxDepth returns the tree's maximum path depth.
func (t *Tree[V]) MaxDepth() int { return t.maxDepth }

// EmptyPath returns the empty path for this tree's radix and max depth,
// the natural starting point for NewCursor et al.
func (t *Tree[V]) EmptyPath() Path {
	return NewPath(t.radix, t.maxDepth)
}

// NewCursor returns a read/write navigable cursor positioned at the root.
func (t *Tree[V]) NewCursor() *cursor[V] {
	return t.locate(t.EmptyPath())
}

// NewCursorAt returns a read/write navigable cursor positioned at path,
// which must be a path over this tree's radix and max depth.
func (t *Tree[V]) NewCursorAt(path Path) *cursor[V] {
	return t.locate(path)
}

// NewLookupCursor returns a read-only, downward-only cursor positioned at
// the root, optimized for longest-prefix-match style lookups.
func (t *Tree[V]) NewLookupCursor() *LookupCursor[V] {
	return newLookupCursor[V](t)
}

// NewWalkCursor returns a read-only navigable cursor positioned at the
// root. It supports the same navigation as the read/write cursor but
// rejects mutation.
func (t *Tree[V]) NewWalkCursor() *WalkCursor[V] {
	return &WalkCursor[V]{c: t.locate(t.EmptyPath())}
}

func (t *Tree[V]) resolve(ref NodeRef) *node[V] {
	return t.alloc.Resolve(ref)
}

// locate builds a fresh cursor positioned at path by replaying go-child
// transitions from the root. It is the single source of truth for cursor
// state, used both for vending a cursor at an arbitrary path and for
// resynchronizing a cursor after a mutation changed the structure under it.
func (t *Tree[V]) locate(path Path) *cursor[V] {
	c := &cursor[V]{
		tree:      t,
		path:      NewPath(t.radix, t.maxDepth),
		history:   []hist{{state: stAtNode}},
		nodeStack: []nodeFrame{{ref: t.root, depth: 0}},
	}
	n := path.Size()
	for i := 0; i < n; i++ {
		d := path.MustAt(i)
		if !c.GoChild(d) {
			break
		}
	}
	return c
}
