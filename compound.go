package radix

// compoundMode distinguishes plain synchronized traversal from the two
// follower arrangements: Follow, where cursors[0] rides along but never
// affects the group's AtNode/AtValue predicates, and FollowOver, where it
// partially participates (it contributes to AtValue but still never gates
// AtNode, since its tree may not have a node at every position the leaders
// do).
type compoundMode int

const (
	modeNormal compoundMode = iota
	modeFollow
	modeFollowOver
)

// Compound is an N-way cursor synchronized over trees that share the same
// radix and max depth: every GoChild/GoParent call advances or retreats all
// constituent cursors by the same digit. Paths and per-node values become
// N-tuples, one entry per constituent, in the order the cursors were
// supplied to the constructor used to build it.
//
// Compound intentionally does not expose GoChildNode/ChildNodePath: jumping
// past an edge advances a cursor by that edge's length, which generally
// differs node to node between trees of different shape, and would desync
// the constituents' path lengths. Only single-digit GoChild/GoParent are
// offered.
type Compound[V any] struct {
	cursors []NavCursor[V]
	mode    compoundMode
}

// NewCompound returns a compound cursor where every constituent
// participates equally in AtNode/AtValue.
func NewCompound[V any](cursors ...NavCursor[V]) *Compound[V] {
	if len(cursors) == 0 {
		panic("radix: NewCompound: at least one cursor required")
	}
	return &Compound[V]{cursors: cursors, mode: modeNormal}
}

// NewFollow returns a compound cursor where follower is driven in lock-step
// with leaders but never affects AtNode or AtValue: it is purely along for
// the ride, useful for mirroring writes into a side tree while iterating
// leaders.
func NewFollow[V any](follower NavCursor[V], leaders ...NavCursor[V]) *Compound[V] {
	if len(leaders) == 0 {
		panic("radix: NewFollow: at least one leader required")
	}
	return &Compound[V]{cursors: append([]NavCursor[V]{follower}, leaders...), mode: modeFollow}
}

// NewFollowOver returns a compound cursor like NewFollow, except the
// follower's own value contributes to AtValue (it partially participates),
// while AtNode is still gated by the leaders alone.
func NewFollowOver[V any](follower NavCursor[V], leaders ...NavCursor[V]) *Compound[V] {
	if len(leaders) == 0 {
		panic("radix: NewFollowOver: at least one leader required")
	}
	return &Compound[V]{cursors: append([]NavCursor[V]{follower}, leaders...), mode: modeFollowOver}
}

func (c *Compound[V]) leaders() []NavCursor[V] {
	if c.mode == modeNormal {
		return c.cursors
	}
	return c.cursors[1:]
}

// Len returns the number of constituent cursors.
func (c *Compound[V]) Len() int { return len(c.cursors) }

// Paths returns the current path of every constituent cursor.
func (c *Compound[V]) Paths() []Path {
	out := make([]Path, len(c.cursors))
	for i, cur := range c.cursors {
		out[i] = cur.Path()
	}
	return out
}

// NodeValuesRO returns the value and presence flag of every constituent
// cursor's current node.
func (c *Compound[V]) NodeValuesRO() ([]V, []bool) {
	vs := make([]V, len(c.cursors))
	oks := make([]bool, len(c.cursors))
	for i, cur := range c.cursors {
		vs[i], oks[i] = cur.NodeValueRO()
	}
	return vs, oks
}

// AtNode reports whether at least one leader cursor is exactly at a node
// (union semantics, like every other compound predicate: see DESIGN.md for
// why the intersection reading does not work for a merge-style walk over
// trees whose materialized nodes do not coincide). The follower, if any, is
// not consulted. AllAtNode is exposed separately for callers that want the
// intersection instead.
func (c *Compound[V]) AtNode() bool {
	for _, l := range c.leaders() {
		if l.AtNode() {
			return true
		}
	}
	return false
}

// AllAtNode reports whether every leader cursor is exactly at a node.
func (c *Compound[V]) AllAtNode() bool {
	for _, l := range c.leaders() {
		if !l.AtNode() {
			return false
		}
	}
	return true
}

// AtValue reports whether at least one participating cursor is at a node
// holding a value. In Follow mode, only leaders participate; in Normal and
// FollowOver modes, every constituent (including the follower) does.
func (c *Compound[V]) AtValue() bool {
	participants := c.cursors
	if c.mode == modeFollow {
		participants = c.leaders()
	}
	for _, cur := range participants {
		if cur.AtValue() {
			return true
		}
	}
	return false
}

// AllAtValue reports whether every participating cursor is at a node
// holding a value (the intersection form the compound cursor's contract
// names alongside AtNode).
func (c *Compound[V]) AllAtValue() bool {
	participants := c.cursors
	if c.mode == modeFollow {
		participants = c.leaders()
	}
	for _, cur := range participants {
		if !cur.AtValue() {
			return false
		}
	}
	return true
}

// CanGoChild reports whether at least one leader still has depth to spare
// before the shared max depth — union semantics, like every other compound
// predicate (see AtNode above).
func (c *Compound[V]) CanGoChild(d uint8) bool {
	for _, l := range c.leaders() {
		if l.CanGoChild(d) {
			return true
		}
	}
	return false
}

// CanGoChildNode reports whether at least one leader can advance toward a
// materialized node along digit d — the union semantics spelled out for
// every compound predicate, not an intersection: a combinator must still
// descend in a direction where only one of several constituent trees has a
// node, or it would silently skip that tree's whole subtree.
func (c *Compound[V]) CanGoChildNode(d uint8) bool {
	for _, l := range c.leaders() {
		if l.CanGoChildNode(d) {
			return true
		}
	}
	return false
}

// GoChild advances every constituent cursor by digit d. It returns true
// only if every cursor accepted the step; on partial failure (which can
// only happen at max depth, since GoChild never rejects a digit otherwise)
// the cursors that did advance are left advanced, matching the underlying
// NavCursor contract of GoChild never needing to be undone by the caller.
func (c *Compound[V]) GoChild(d uint8) bool {
	ok := true
	for _, cur := range c.cursors {
		if !cur.GoChild(d) {
			ok = false
		}
	}
	return ok
}

// GoParent retreats every constituent cursor by one digit.
func (c *Compound[V]) GoParent() bool {
	ok := true
	for _, cur := range c.cursors {
		if !cur.GoParent() {
			ok = false
		}
	}
	return ok
}

// CanGoParent reports whether every constituent cursor can retreat.
func (c *Compound[V]) CanGoParent() bool {
	for _, cur := range c.cursors {
		if !cur.CanGoParent() {
			return false
		}
	}
	return true
}
