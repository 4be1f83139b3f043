package radix

// Order selects the relative position at which a node is reported during a
// depth-first traversal.
type Order int

const (
	// PreOrder reports a node before any of its children.
	PreOrder Order = iota
	// PostOrder reports a node after all of its children.
	PostOrder
	// InOrder reports a node between its first and second half of
	// children (requires an even radix).
	InOrder
)

type iterFrame struct {
	next        int
	midEmitted  bool
}

// CursorIterator drives a NavCursor through a depth-first walk of its tree,
// reporting nodes (or, with valuesOnly, only nodes holding a value) in
// pre-, post-, or in-order. It moves the cursor it was given; callers that
// need the cursor left untouched should hand the iterator a throwaway
// cursor (for example one obtained from Tree.NewWalkCursor).
type CursorIterator[V any] struct {
	cur        NavCursor[V]
	order      Order
	reverse    bool
	valuesOnly bool
	radix      int
	mid        int

	stack    []iterFrame
	started  bool
	finished bool

	pendingPath  Path
	pendingValue V
	pendingOk    bool
}

// NewCursorIterator returns an iterator over cur's tree starting from cur's
// current position. If reverse is true, children are visited from highest
// digit to lowest. If valuesOnly is true, only nodes holding a value are
// reported; otherwise every materialized node is reported.
func NewCursorIterator[V any](cur NavCursor[V], order Order, reverse bool, valuesOnly bool) *CursorIterator[V] {
	radix := cur.Path().Radix()
	return &CursorIterator[V]{
		cur:        cur,
		order:      order,
		reverse:    reverse,
		valuesOnly: valuesOnly,
		radix:      radix,
		mid:        radix / 2,
	}
}

func (it *CursorIterator[V]) childDigit(k int) uint8 {
	if it.reverse {
		return uint8(it.radix - 1 - k)
	}
	return uint8(k)
}

func (it *CursorIterator[V]) tryEmit() bool {
	if it.valuesOnly && !it.cur.AtValue() {
		return false
	}
	it.pendingPath = it.cur.Path()
	it.pendingValue, it.pendingOk = it.cur.NodeValueRO()
	return true
}

// Next advances the iterator and reports whether a node is available via
// Path/Value.
func (it *CursorIterator[V]) Next() bool {
	if it.finished {
		return false
	}
	if !it.started {
		it.started = true
		it.stack = append(it.stack, iterFrame{})
		if it.order == PreOrder {
			if it.tryEmit() {
				return true
			}
		}
	}

	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		if it.order == InOrder && it.radix%2 == 0 && !top.midEmitted && top.next == it.mid {
			top.midEmitted = true
			if it.tryEmit() {
				return true
			}
		}

		if top.next >= it.radix {
			if it.order == PostOrder {
				emit := it.tryEmit()
				it.cur.GoParentNode()
				it.stack = it.stack[:len(it.stack)-1]
				if emit {
					return true
				}
				continue
			}
			it.cur.GoParentNode()
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		d := it.childDigit(top.next)
		top.next++

		if it.cur.CanGoChildNode(d) {
			if _, ok := it.cur.GoChildNode(d); ok {
				it.stack = append(it.stack, iterFrame{})
				if it.order == PreOrder {
					if it.tryEmit() {
						return true
					}
				}
			}
		}
	}

	it.finished = true
	return false
}

// Path returns the path of the most recently reported node.
func (it *CursorIterator[V]) Path() Path { return it.pendingPath }

// Value returns the value of the most recently reported node, if any.
func (it *CursorIterator[V]) Value() (V, bool) { return it.pendingValue, it.pendingOk }

// Reset rewinds the cursor to the root and restarts the iterator.
func (it *CursorIterator[V]) Reset() {
	for it.cur.CanGoParent() {
		it.cur.GoParent()
	}
	it.stack = nil
	it.started = false
	it.finished = false
}
