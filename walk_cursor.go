package radix

// WalkCursor is a read-only navigable cursor: full NavCursor navigation
// (GoParent, GoParentNode, GoChildNode) without the mutating RWCursor
// methods, for code that walks a tree (forward and backward) but must not
// change it, such as a traversal combinator handed a shared tree.
type WalkCursor[V any] struct {
	c *cursor[V]
}

var _ NavCursor[int] = (*WalkCursor[int])(nil)

func (w *WalkCursor[V]) Path() Path                          { return w.c.Path() }
func (w *WalkCursor[V]) AtNode() bool                         { return w.c.AtNode() }
func (w *WalkCursor[V]) AtValue() bool                        { return w.c.AtValue() }
func (w *WalkCursor[V]) CanGoChild(d uint8) bool              { return w.c.CanGoChild(d) }
func (w *WalkCursor[V]) CanGoChildNode(d uint8) bool          { return w.c.CanGoChildNode(d) }
func (w *WalkCursor[V]) GoChild(d uint8) bool                 { return w.c.GoChild(d) }
func (w *WalkCursor[V]) NodeValueRO() (V, bool)               { return w.c.NodeValueRO() }
func (w *WalkCursor[V]) CoveringNodeValueRO() (V, int, bool)  { return w.c.CoveringNodeValueRO() }
func (w *WalkCursor[V]) CanGoParent() bool                    { return w.c.CanGoParent() }
func (w *WalkCursor[V]) GoParent() bool                       { return w.c.GoParent() }
func (w *WalkCursor[V]) ParentNodeDistance() int              { return w.c.ParentNodeDistance() }
func (w *WalkCursor[V]) GoParentNode() int                    { return w.c.GoParentNode() }
func (w *WalkCursor[V]) GoChildNode(d uint8) (Path, bool)     { return w.c.GoChildNode(d) }
func (w *WalkCursor[V]) ChildNodePath(d uint8) (Path, bool)   { return w.c.ChildNodePath(d) }
