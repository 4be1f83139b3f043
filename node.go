package radix

import "github.com/axtree/radix/internal/sparse"

// node is the in-memory representation of one tree node: the edge leading
// to it, an optional value, and its children keyed by digit. Value presence
// is the hasValue flag; children are stored in a popcount-compressed
// sparse.Array, the same technique a routing-table node uses to pack a sparse child set
// without wasting a slot per unused digit.
type node[V any] struct {
	edge     Edge
	hasValue bool
	value    V
	children sparse.Array[NodeRef]
}

func newNode[V any]() *node[V] {
	return &node[V]{}
}

func (n *node[V]) childRef(d uint8) (NodeRef, bool) {
	return n.children.Get(uint(d))
}

func (n *node[V]) setChild(d uint8, ref NodeRef) {
	n.children.InsertAt(uint(d), ref)
}

func (n *node[V]) removeChild(d uint8) {
	n.children.DeleteAt(uint(d))
}

func (n *node[V]) childCount() int {
	return n.children.Len()
}
