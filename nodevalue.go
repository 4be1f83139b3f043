package radix

// NodeValue is a handle to the value slot of a single node, returned by
// RWCursor.AddNode and RWCursor.NodeValue. For the pointer-node
// representation used by this package, a handle aliases the node's storage
// directly (PtrIsCopy reports false): Set/Clear/Swap mutate the node in
// place through the handle. The word-packed trees (WordTree, CompactTree)
// hand back a WordNodeValue instead, which also reports PtrIsCopy false and
// reads and writes the node's slot on every call. The read-only WORM
// cursors (package worm) have no handle and return values as uint64 copies.
type NodeValue[V any] struct {
	alloc Allocator[V]
	ref   NodeRef
}

func newNodeValue[V any](alloc Allocator[V], ref NodeRef) *NodeValue[V] {
	return &NodeValue[V]{alloc: alloc, ref: ref}
}

// PtrIsCopy reports whether mutations through this handle operate on a
// detached copy (true) rather than aliasing the node's storage directly
// (false). Pointer nodes always alias.
func (h *NodeValue[V]) PtrIsCopy() bool { return false }

// Get returns the node's current value and whether one is present.
func (h *NodeValue[V]) Get() (V, bool) {
	n := h.alloc.Resolve(h.ref)
	return n.value, n.hasValue
}

// MustGet returns the node's value, panicking if none is present.
func (h *NodeValue[V]) MustGet() V {
	v, ok := h.Get()
	if !ok {
		panic("radix: NodeValue.MustGet: no value present")
	}
	return v
}

// Set stores v as the node's value.
func (h *NodeValue[V]) Set(v V) {
	n := h.alloc.Resolve(h.ref)
	n.value = v
	n.hasValue = true
}

// Swap stores v as the node's value and returns the previous one, if any.
func (h *NodeValue[V]) Swap(v V) (old V, hadValue bool) {
	n := h.alloc.Resolve(h.ref)
	old, hadValue = n.value, n.hasValue
	n.value = v
	n.hasValue = true
	return old, hadValue
}

// Clear removes the node's value, returning the value that was cleared, if
// any.
func (h *NodeValue[V]) Clear() (old V, hadValue bool) {
	n := h.alloc.Resolve(h.ref)
	old, hadValue = n.value, n.hasValue
	var zero V
	n.value = zero
	n.hasValue = false
	return old, hadValue
}
