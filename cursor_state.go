package radix

// curState is the cursor's position relative to the nearest materialized
// ancestor-or-self node: exactly on it (atNode), partway along the edge
// leading to a deeper materialized node (inEdge), or past any materialized
// structure (free). See cursor.go for the transition rules.
type curState int

const (
	stAtNode curState = iota
	stInEdge
	stFree
)

// hist is the cursor's state at one particular path depth.
type hist struct {
	state       curState
	descendant  NodeRef // valid in stInEdge, and retained (not cleared) in stFree so AddNode can still find the edge it diverged from
	edgeMatched int     // digits of descendant's edge matched so far
}

// nodeFrame records a materialized ancestor-or-self node and the path
// depth at which it sits.
type nodeFrame struct {
	ref   NodeRef
	depth int
}

// step computes the cursor transition for following digit d from state cur,
// whose nearest materialized node (per nodeStack) is topRef. It returns the
// next hist entry and, if a new node boundary was reached, the node to push
// onto nodeStack.
func step[V any](t *Tree[V], topRef NodeRef, cur hist, d uint8) (next hist, push NodeRef, pushOk bool) {
	switch cur.state {
	case stAtNode:
		n := t.resolve(topRef)
		childRef, ok := n.childRef(d)
		if !ok {
			return hist{state: stFree}, nil, false
		}
		child := t.resolve(childRef)
		if child.edge.Length() == 0 {
			return hist{state: stAtNode}, childRef, true
		}
		return hist{state: stInEdge, descendant: childRef, edgeMatched: 0}, nil, false

	case stInEdge:
		desc := t.resolve(cur.descendant)
		expected := desc.edge.At(cur.edgeMatched)
		if d != expected {
			return hist{state: stFree, descendant: cur.descendant, edgeMatched: cur.edgeMatched}, nil, false
		}
		if cur.edgeMatched+1 == desc.edge.Length() {
			return hist{state: stAtNode}, cur.descendant, true
		}
		return hist{state: stInEdge, descendant: cur.descendant, edgeMatched: cur.edgeMatched + 1}, nil, false

	default: // stFree
		return hist{state: stFree, descendant: cur.descendant, edgeMatched: cur.edgeMatched}, nil, false
	}
}
