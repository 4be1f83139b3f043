package worm

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/axtree/radix"
)

// Fprint writes a human-readable, indented dump of t to w, one line per
// node, in the same dotted-indent style as radix.Tree.Fprint. Every node in
// the buffer gets a line, including scaffold nodes the Builder synthesized
// for edges longer than EdgeCapacity, so the dump matches the in-memory
// tree's line for line only where both hold the same nodes.
//
//	..path: [1,0] depth: 2 value: 37
//	...path: [1,0,1] depth: 3
func (t *Tree) Fprint(w io.Writer) error {
	cur := t.NewWalkCursor()
	return radix.PreOrderWalk[uint64](cur, false, func(p radix.Path, v uint64, ok bool) error {
		indent := strings.Repeat(".", p.Size())
		if ok {
			_, err := fmt.Fprintf(w, "%spath: %s depth: %d value: %v\n", indent, p, p.Size(), v)
			return err
		}
		_, err := fmt.Fprintf(w, "%spath: %s depth: %d\n", indent, p, p.Size())
		return err
	})
}

// DumpEntry is one (path, value) pair as produced by DumpList.
type DumpEntry struct {
	Path  string `json:"path"`
	Value uint64 `json:"value"`
}

// DumpList enumerates every valued node of t in pre-order, the flat form a
// JSON dump or a rebuild-from-scratch routine wants instead of the
// indented tree Fprint renders. Mirrors radix.Tree.DumpList.
func (t *Tree) DumpList() []DumpEntry {
	var out []DumpEntry
	cur := t.NewWalkCursor()
	_ = radix.ValuesOnlyPreOrderWalk[uint64](cur, false, func(p radix.Path, v uint64) error {
		out = append(out, DumpEntry{Path: p.String(), Value: v})
		return nil
	})
	return out
}

// MarshalJSON dumps t as a flat, order-preserving array of (path, value)
// pairs, the JSON counterpart to DumpList.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpList())
}
