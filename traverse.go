package radix

// VisitFunc is called once per node visited by a traversal combinator. ok
// reports whether the node holds a value.
type VisitFunc[V any] func(p Path, v V, ok bool) error

// PreOrderWalk visits every node of cur's tree in pre-order, starting from
// cur's current position.
func PreOrderWalk[V any](cur NavCursor[V], reverse bool, visit VisitFunc[V]) error {
	it := NewCursorIterator(cur, PreOrder, reverse, false)
	for it.Next() {
		v, ok := it.Value()
		if err := visit(it.Path(), v, ok); err != nil {
			return err
		}
	}
	return nil
}

// PostOrderWalk visits every node of cur's tree in post-order.
func PostOrderWalk[V any](cur NavCursor[V], reverse bool, visit VisitFunc[V]) error {
	it := NewCursorIterator(cur, PostOrder, reverse, false)
	for it.Next() {
		v, ok := it.Value()
		if err := visit(it.Path(), v, ok); err != nil {
			return err
		}
	}
	return nil
}

// InOrderWalk visits every node of cur's tree in in-order. The tree's
// radix must be even.
func InOrderWalk[V any](cur NavCursor[V], reverse bool, visit VisitFunc[V]) error {
	it := NewCursorIterator(cur, InOrder, reverse, false)
	for it.Next() {
		v, ok := it.Value()
		if err := visit(it.Path(), v, ok); err != nil {
			return err
		}
	}
	return nil
}

// PrePostOrderWalk visits every node twice: once via onDescend before its
// children, once via onAscend after them. It is the combinator to use when
// a traversal needs to push and pop state around a subtree (for example,
// accumulating a WORM builder's per-level statistics).
func PrePostOrderWalk[V any](cur NavCursor[V], reverse bool, onDescend, onAscend VisitFunc[V]) error {
	radix := cur.Path().Radix()
	childDigit := func(k int) uint8 {
		if reverse {
			return uint8(radix - 1 - k)
		}
		return uint8(k)
	}

	var descend func() error
	descend = func() error {
		v, ok := cur.NodeValueRO()
		if err := onDescend(cur.Path(), v, ok); err != nil {
			return err
		}
		for k := 0; k < radix; k++ {
			d := childDigit(k)
			if !cur.CanGoChildNode(d) {
				continue
			}
			if _, ok := cur.GoChildNode(d); !ok {
				continue
			}
			if err := descend(); err != nil {
				return err
			}
			cur.GoParentNode()
		}
		v, ok = cur.NodeValueRO()
		return onAscend(cur.Path(), v, ok)
	}
	return descend()
}

// CompoundVisitFunc is called once per position visited by
// PreOrderWalkCompound, with the N-tuple of paths and values at that
// position.
type CompoundVisitFunc[V any] func(paths []Path, values []V, oks []bool) error

// PreOrderWalkCompound drives a Compound cursor through a synchronized
// pre-order walk: it descends digit by digit (since Compound does not
// support jumping past edges) and reports every position where the group's
// AtNode holds.
func PreOrderWalkCompound[V any](c *Compound[V], reverse bool, visit CompoundVisitFunc[V]) error {
	radix := c.Paths()[0].Radix()
	childDigit := func(k int) uint8 {
		if reverse {
			return uint8(radix - 1 - k)
		}
		return uint8(k)
	}

	var descend func() error
	descend = func() error {
		if c.AtNode() {
			vs, oks := c.NodeValuesRO()
			if err := visit(c.Paths(), vs, oks); err != nil {
				return err
			}
		}
		for k := 0; k < radix; k++ {
			d := childDigit(k)
			if !c.CanGoChildNode(d) {
				continue
			}
			c.GoChild(d)
			if err := descend(); err != nil {
				return err
			}
			c.GoParent()
		}
		return nil
	}
	return descend()
}

// ValuesOnlyPreOrderWalk is PreOrderWalk restricted to nodes holding a
// value, the common case for enumerating a tree's entries.
func ValuesOnlyPreOrderWalk[V any](cur NavCursor[V], reverse bool, visit func(p Path, v V) error) error {
	it := NewCursorIterator(cur, PreOrder, reverse, true)
	for it.Next() {
		v, _ := it.Value()
		if err := visit(it.Path(), v); err != nil {
			return err
		}
	}
	return nil
}

// PostOrderWalkCompound is PreOrderWalkCompound's post-order counterpart:
// it visits each position after descending into every child instead of
// before.
func PostOrderWalkCompound[V any](c *Compound[V], reverse bool, visit CompoundVisitFunc[V]) error {
	radix := c.Paths()[0].Radix()
	childDigit := func(k int) uint8 {
		if reverse {
			return uint8(radix - 1 - k)
		}
		return uint8(k)
	}

	var descend func() error
	descend = func() error {
		for k := 0; k < radix; k++ {
			d := childDigit(k)
			if !c.CanGoChildNode(d) {
				continue
			}
			c.GoChild(d)
			if err := descend(); err != nil {
				return err
			}
			c.GoParent()
		}
		if c.AtNode() {
			vs, oks := c.NodeValuesRO()
			if err := visit(c.Paths(), vs, oks); err != nil {
				return err
			}
		}
		return nil
	}
	return descend()
}

// InOrderWalkCompound is PreOrderWalkCompound's in-order counterpart; the
// shared radix of the constituent cursors must be even.
func InOrderWalkCompound[V any](c *Compound[V], reverse bool, visit CompoundVisitFunc[V]) error {
	radix := c.Paths()[0].Radix()
	mid := radix / 2
	childDigit := func(k int) uint8 {
		if reverse {
			return uint8(radix - 1 - k)
		}
		return uint8(k)
	}

	var descend func() error
	descend = func() error {
		emitted := false
		emit := func() error {
			if emitted || !c.AtNode() {
				return nil
			}
			emitted = true
			vs, oks := c.NodeValuesRO()
			return visit(c.Paths(), vs, oks)
		}
		for k := 0; k < radix; k++ {
			if k == mid {
				if err := emit(); err != nil {
					return err
				}
			}
			d := childDigit(k)
			if !c.CanGoChildNode(d) {
				continue
			}
			c.GoChild(d)
			if err := descend(); err != nil {
				return err
			}
			c.GoParent()
		}
		return emit()
	}
	return descend()
}

// PreOrderFollow drives a pre-order walk over leaders with follower along
// for the ride: follower never affects AtNode or AtValue (see NewFollow).
func PreOrderFollow[V any](follower NavCursor[V], leaders []NavCursor[V], reverse bool, visit CompoundVisitFunc[V]) error {
	return PreOrderWalkCompound(NewFollow(follower, leaders...), reverse, visit)
}

// PreOrderFollowOver is PreOrderFollow, except follower's value
// participates in AtValue (see NewFollowOver).
func PreOrderFollowOver[V any](follower NavCursor[V], leaders []NavCursor[V], reverse bool, visit CompoundVisitFunc[V]) error {
	return PreOrderWalkCompound(NewFollowOver(follower, leaders...), reverse, visit)
}

// PostOrderFollow is PreOrderFollow's post-order counterpart.
func PostOrderFollow[V any](follower NavCursor[V], leaders []NavCursor[V], reverse bool, visit CompoundVisitFunc[V]) error {
	return PostOrderWalkCompound(NewFollow(follower, leaders...), reverse, visit)
}

// PostOrderFollowOver is PreOrderFollowOver's post-order counterpart.
func PostOrderFollowOver[V any](follower NavCursor[V], leaders []NavCursor[V], reverse bool, visit CompoundVisitFunc[V]) error {
	return PostOrderWalkCompound(NewFollowOver(follower, leaders...), reverse, visit)
}

// InOrderFollow is PreOrderFollow's in-order counterpart.
func InOrderFollow[V any](follower NavCursor[V], leaders []NavCursor[V], reverse bool, visit CompoundVisitFunc[V]) error {
	return InOrderWalkCompound(NewFollow(follower, leaders...), reverse, visit)
}

// InOrderFollowOver is PreOrderFollowOver's in-order counterpart.
func InOrderFollowOver[V any](follower NavCursor[V], leaders []NavCursor[V], reverse bool, visit CompoundVisitFunc[V]) error {
	return InOrderWalkCompound(NewFollowOver(follower, leaders...), reverse, visit)
}
