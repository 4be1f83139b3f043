package radix

import "testing"

func TestPreOrderWalkVisitsUnvaluedNodes(t *testing.T) {
	tr := buildSampleTree(t)
	var sawRoot bool
	var valued, unvalued int
	err := PreOrderWalk[int](tr.NewWalkCursor(), false, func(p Path, v int, ok bool) error {
		if p.Size() == 0 {
			sawRoot = true
		}
		if ok {
			valued++
		} else {
			unvalued++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("PreOrderWalk: %v", err)
	}
	if !sawRoot {
		t.Error("PreOrderWalk did not visit the root")
	}
	if valued != 5 {
		t.Errorf("valued visits = %d, want 5", valued)
	}
	if unvalued != 1 {
		t.Errorf("unvalued visits = %d, want 1 (root only)", unvalued)
	}
}

func TestPostOrderWalkVisitsRootLast(t *testing.T) {
	tr := buildSampleTree(t)
	var order []int
	err := PostOrderWalk[int](tr.NewWalkCursor(), false, func(p Path, v int, ok bool) error {
		if ok {
			order = append(order, v)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("PostOrderWalk: %v", err)
	}
	assertIntSlice(t, order, []int{2, 1, 4, 5, 3})
}

func TestInOrderWalkMatchesIterator(t *testing.T) {
	tr := buildSampleTree(t)
	var order []int
	err := InOrderWalk[int](tr.NewWalkCursor(), false, func(p Path, v int, ok bool) error {
		if ok {
			order = append(order, v)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("InOrderWalk: %v", err)
	}
	assertIntSlice(t, order, []int{1, 2, 4, 3, 5})
}

func TestPrePostOrderWalkBalancedCalls(t *testing.T) {
	tr := buildSampleTree(t)
	var descends, ascends int
	var lastAscendIsRoot bool
	err := PrePostOrderWalk[int](tr.NewWalkCursor(), false,
		func(p Path, v int, ok bool) error {
			descends++
			return nil
		},
		func(p Path, v int, ok bool) error {
			ascends++
			lastAscendIsRoot = p.Size() == 0
			return nil
		},
	)
	if err != nil {
		t.Fatalf("PrePostOrderWalk: %v", err)
	}
	if descends != ascends {
		t.Fatalf("descends=%d ascends=%d, want equal", descends, ascends)
	}
	if descends != 6 {
		t.Errorf("visited node count = %d, want 6 (root + 5 values)", descends)
	}
	if !lastAscendIsRoot {
		t.Error("the final onAscend call should be for the root, after every subtree")
	}
}

func TestPreOrderWalkCompoundVisitsUnionOfNodes(t *testing.T) {
	a := buildPathsTree(t, 2, 4, [][]uint8{{0}})
	b := buildPathsTree(t, 2, 4, [][]uint8{{1}})
	cmp := NewCompound[int](a.NewWalkCursor(), b.NewWalkCursor())

	var paths []string
	err := PreOrderWalkCompound[int](cmp, false, func(ps []Path, vs []int, oks []bool) error {
		paths = append(paths, ps[0].String())
		return nil
	})
	if err != nil {
		t.Fatalf("PreOrderWalkCompound: %v", err)
	}
	// root, [0], [1]: three positions where at least one constituent has a node.
	if len(paths) != 3 {
		t.Fatalf("visited %d positions %v, want 3", len(paths), paths)
	}
}

func TestPostOrderWalkCompoundVisitsRootLast(t *testing.T) {
	a := buildPathsTree(t, 2, 4, [][]uint8{{0}})
	b := buildPathsTree(t, 2, 4, [][]uint8{{1}})
	cmp := NewCompound[int](a.NewWalkCursor(), b.NewWalkCursor())

	var last []Path
	err := PostOrderWalkCompound[int](cmp, false, func(ps []Path, vs []int, oks []bool) error {
		last = ps
		return nil
	})
	if err != nil {
		t.Fatalf("PostOrderWalkCompound: %v", err)
	}
	if last[0].Size() != 0 {
		t.Errorf("last visited position should be the root, got size %d", last[0].Size())
	}
}

func TestInOrderWalkCompound(t *testing.T) {
	a := buildPathsTree(t, 2, 4, [][]uint8{{0}})
	b := buildPathsTree(t, 2, 4, [][]uint8{{1}})
	cmp := NewCompound[int](a.NewWalkCursor(), b.NewWalkCursor())

	count := 0
	err := InOrderWalkCompound[int](cmp, false, func(ps []Path, vs []int, oks []bool) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("InOrderWalkCompound: %v", err)
	}
	if count != 3 {
		t.Errorf("visited %d positions, want 3", count)
	}
}

// TestFollowCombinatorsVisitLeaderStructureOnly checks that the set of
// positions visited by the Follow/FollowOver walk combinators is dictated
// entirely by the leader's materialized nodes: a follower-only node (one
// the leader never reaches) must not be visited, even though the follower
// itself holds a value there.
func TestFollowCombinatorsVisitLeaderStructureOnly(t *testing.T) {
	leader := NewPointerTree[int](2, 4)
	lc := leader.NewCursor()
	lc.GoChild(0)
	lc.AddNode()

	follower := NewPointerTree[int](2, 4)
	fc := follower.NewCursor()
	fc.GoChild(1) // a position the leader never materializes
	fc.AddNode().Set(9)

	leaders := []NavCursor[int]{leader.NewWalkCursor()}

	var sawFollowerOnlyNode bool
	err := PostOrderFollow[int](follower.NewWalkCursor(), leaders, false, func(ps []Path, vs []int, oks []bool) error {
		if ps[0].Size() > 0 && ps[0].MustAt(0) == 1 {
			sawFollowerOnlyNode = true
		}
		return nil
	})
	if err != nil {
		t.Fatalf("PostOrderFollow: %v", err)
	}
	if sawFollowerOnlyNode {
		t.Error("PostOrderFollow visited a position the leader never materializes")
	}

	var sawLeaderValueAtFollowOver bool
	err = InOrderFollowOver[int](follower.NewWalkCursor(), leaders, false, func(ps []Path, vs []int, oks []bool) error {
		if ps[0].Size() > 0 && oks[1] {
			sawLeaderValueAtFollowOver = true
		}
		return nil
	})
	if err != nil {
		t.Fatalf("InOrderFollowOver: %v", err)
	}
	if sawLeaderValueAtFollowOver {
		t.Error("leader never set a value at the node it materializes")
	}
}
