package radix

import lru "github.com/hashicorp/golang-lru/v2"

// NodeRef is an opaque reference to a node, vended and resolved by an
// Allocator. Tree and cursor code never inspects a NodeRef directly; it
// always asks the allocator to resolve one to a *node[V]. This is what lets
// a pointer-based allocator and a slab/index-based allocator sit behind the
// same Tree implementation.
type NodeRef interface {
	isNodeRef()
}

// Allocator owns the storage for a tree's nodes. Two implementations are
// provided: NewPointerAllocator, which hands out ordinary heap pointers and
// leaves reclamation to the garbage collector, and NewSlabAllocator, which
// hands out small integer indices into a growable slab, appropriate when a
// tree churns through many short-lived nodes (for example while a WORM
// builder dry-run is being mirrored against an in-memory tree).
type Allocator[V any] interface {
	// New allocates a fresh, zero-valued node and returns its reference.
	New() NodeRef
	// Resolve returns the node a reference points to. Resolving Null() or
	// a released reference is a programmer error and may panic.
	Resolve(NodeRef) *node[V]
	// Release returns a node's storage to the allocator. The node must
	// not be resolved again afterward.
	Release(NodeRef)
	// Null returns the allocator's distinguished "no node" reference.
	Null() NodeRef
	// IsNull reports whether ref is the allocator's null reference.
	IsNull(NodeRef) bool
}

// --- pointer allocator -------------------------------------------------

type ptrRef[V any] struct{ p *node[V] }

func (ptrRef[V]) isNodeRef() {}

type ptrAllocator[V any] struct{}

// NewPointerAllocator returns an Allocator that allocates nodes as ordinary
// heap objects. This is the default allocator: simplest, and correct for
// any tree size, relying on the garbage collector for reclamation.
func NewPointerAllocator[V any]() Allocator[V] {
	return ptrAllocator[V]{}
}

func (ptrAllocator[V]) New() NodeRef {
	return ptrRef[V]{p: newNode[V]()}
}

func (ptrAllocator[V]) Resolve(r NodeRef) *node[V] {
	pr := r.(ptrRef[V])
	if pr.p == nil {
		panic("radix: Resolve: null reference")
	}
	return pr.p
}

func (ptrAllocator[V]) Release(NodeRef) {
	// Nothing to do; the garbage collector reclaims unreachable nodes.
}

func (ptrAllocator[V]) Null() NodeRef {
	return ptrRef[V]{}
}

func (ptrAllocator[V]) IsNull(r NodeRef) bool {
	pr, ok := r.(ptrRef[V])
	return !ok || pr.p == nil
}

// --- slab allocator ------------------------------------------------------

type slabRef int32

func (slabRef) isNodeRef() {}

const nullSlab slabRef = -1

// DefaultSlabWarmCache is the number of freshly-released slab slots kept
// ready for immediate reuse by a slab allocator's LRU cache before older
// freed slots spill over to the plain free list.
const DefaultSlabWarmCache = 256

type slabAllocator[V any] struct {
	slots []*node[V]
	free  []int32
	warm  *lru.Cache[int32, *node[V]]
}

// NewSlabAllocator returns an Allocator backed by a growable slab of nodes
// addressed by a small integer index rather than a heap pointer. Released
// slots are kept warm in a bounded LRU (sized warmCacheSize) so repeated
// insert/delete churn at the same prefix reuses a slot instead of growing
// the slab; slots evicted from the warm cache fall back to a plain free
// list and are reused last-in, first-out from there.
func NewSlabAllocator[V any](warmCacheSize int) Allocator[V] {
	if warmCacheSize <= 0 {
		warmCacheSize = DefaultSlabWarmCache
	}
	a := &slabAllocator[V]{}
	c, err := lru.NewWithEvict[int32, *node[V]](warmCacheSize, func(key int32, _ *node[V]) {
		a.free = append(a.free, key)
	})
	if err != nil {
		panic(err)
	}
	a.warm = c
	return a
}

func (a *slabAllocator[V]) New() NodeRef {
	if a.warm.Len() > 0 {
		keys := a.warm.Keys()
		idx := keys[0]
		if n, ok := a.warm.Peek(idx); ok {
			a.warm.Remove(idx)
			*n = node[V]{}
			a.slots[idx] = n
			return slabRef(idx)
		}
	}
	if len(a.free) > 0 {
		idx := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		a.slots[idx] = &node[V]{}
		return slabRef(idx)
	}
	a.slots = append(a.slots, &node[V]{})
	return slabRef(int32(len(a.slots) - 1))
}

func (a *slabAllocator[V]) Resolve(r NodeRef) *node[V] {
	idx := r.(slabRef)
	if idx == nullSlab {
		panic("radix: Resolve: null reference")
	}
	n := a.slots[idx]
	if n == nil {
		panic("radix: Resolve: released reference")
	}
	return n
}

func (a *slabAllocator[V]) Release(r NodeRef) {
	idx := r.(slabRef)
	n := a.slots[idx]
	a.slots[idx] = nil
	a.warm.Add(int32(idx), n)
}

func (a *slabAllocator[V]) Null() NodeRef {
	return nullSlab
}

func (a *slabAllocator[V]) IsNull(r NodeRef) bool {
	idx, ok := r.(slabRef)
	return !ok || idx == nullSlab
}
