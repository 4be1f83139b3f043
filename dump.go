package radix

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Fprint writes a human-readable, indented dump of t to w, one line per
// node, depth indicated by a run of dots.
//
//	..path: [1,0] depth: 2 value: 37
//	...path: [1,0,1] depth: 3
func (t *Tree[V]) Fprint(w io.Writer) error {
	cur := t.NewWalkCursor()
	return PreOrderWalk[V](cur, false, func(p Path, v V, ok bool) error {
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
type DumpEntry[V any] struct {
	Path  string `json:"path"`
	Value V      `json:"value"`
}

// DumpList enumerates every valued node of t in pre-order, the flat form a
// JSON dump or a rebuild-from-scratch routine wants instead of the
// indented tree Fprint renders.
func (t *Tree[V]) DumpList() []DumpEntry[V] {
	var out []DumpEntry[V]
	cur := t.NewWalkCursor()
	_ = ValuesOnlyPreOrderWalk[V](cur, false, func(p Path, v V) error {
		out = append(out, DumpEntry[V]{Path: p.String(), Value: v})
		return nil
	})
	return out
}

// MarshalJSON dumps t as a flat, order-preserving array of (path, value)
// pairs, the JSON counterpart to DumpList.
func (t *Tree[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpList())
}
