package worm

import "fmt"

// Metadata is the (offset_size, value_size, little_endian) parameter triple
// a reader needs to make sense of an otherwise self-describing-free WORM
// buffer, plus the codec identifier as a sanity check. The wire format
// itself carries none of this inline: a caller persists Metadata alongside
// the buffer however its host application already persists small
// structured values (a file header, a database column, a sidecar record).
type Metadata struct {
	OffsetSize   int
	ValueSize    int
	LittleEndian bool
	CodecID      string
}

// Tree is a read-only handle to a WORM buffer. Rather than dispatching at
// construction to one of a family of concrete implementations generated
// per (offset_size, value_size) pair, it carries the triple as plain
// fields and threads them through every decode: Go generics would need a
// distinct instantiation per byte width to get a compile-time dispatch,
// which buys nothing here since the header and codec helpers already take
// the widths as runtime parameters. This is the "generic wrapper" in
// spirit, just unified at the value level instead of the type level.
type Tree struct {
	buf          []byte
	offsetSize   int
	valueSize    int
	littleEndian bool
	codec        Codec
	maxDepth     int
}

// NewTree wraps buf, built with the given parameter triple, as a Tree.
// codec must agree with valueSize in width.
func NewTree(buf []byte, offsetSize, valueSize int, littleEndian bool, codec Codec, maxDepth int) (*Tree, error) {
	if offsetSize < 1 || offsetSize > 8 {
		return nil, fmt.Errorf("worm: NewTree: offset size %d out of range: %w", offsetSize, ErrOutOfRange)
	}
	if valueSize < 1 || valueSize > 8 {
		return nil, fmt.Errorf("worm: NewTree: value size %d out of range: %w", valueSize, ErrOutOfRange)
	}
	if codec.Size() != valueSize {
		return nil, fmt.Errorf("worm: NewTree: codec size %d does not match value size %d: %w", codec.Size(), valueSize, ErrInvalidState)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("worm: NewTree: empty buffer: %w", ErrParse)
	}
	return &Tree{
		buf:          buf,
		offsetSize:   offsetSize,
		valueSize:    valueSize,
		littleEndian: littleEndian,
		codec:        codec,
		maxDepth:     maxDepth,
	}, nil
}

// NewTreeFromMetadata is NewTree taking a Metadata record, as produced by
// Tree.Metadata or reconstructed from wherever the caller stashed it. It
// additionally checks that meta.CodecID names the built-in unsigned
// integer codec this package knows how to read.
func NewTreeFromMetadata(buf []byte, meta Metadata, maxDepth int) (*Tree, error) {
	codec := NewUintCodec(meta.ValueSize, meta.LittleEndian)
	if codec.ID() != meta.CodecID {
		return nil, fmt.Errorf("worm: NewTreeFromMetadata: codec id %q does not match %q: %w", meta.CodecID, codec.ID(), ErrParse)
	}
	return NewTree(buf, meta.OffsetSize, meta.ValueSize, meta.LittleEndian, codec, maxDepth)
}

// Metadata returns the parameter triple needed to re-open this Tree's
// buffer later.
func (t *Tree) Metadata() Metadata {
	return Metadata{
		OffsetSize:   t.offsetSize,
		ValueSize:    t.valueSize,
		LittleEndian: t.littleEndian,
		CodecID:      t.codec.ID(),
	}
}

// Radix is always 2: the WORM format only ever encodes binary trees.
func (t *Tree) Radix() int { return 2 }

// MaxDepth returns the maximum path depth cursors over this Tree enforce.
func (t *Tree) MaxDepth() int { return t.maxDepth }

// Buffer returns the raw backing buffer. Any number of cursors may read it
// concurrently; nothing in this package ever mutates it after NewTree.
func (t *Tree) Buffer() []byte { return t.buf }

func (t *Tree) nodeSize(h header) int {
	n := HeaderSize(t.offsetSize, h.hasLeft, h.hasRight)
	if h.hasValue {
		n += t.valueSize
	}
	return n
}

func (t *Tree) decodeAt(pos int) header {
	return decodeHeader(t.buf[pos:], t.offsetSize, t.littleEndian)
}

func (t *Tree) valueAt(pos int, h header) uint64 {
	off := pos + HeaderSize(t.offsetSize, h.hasLeft, h.hasRight)
	return t.codec.Read(t.buf[off : off+t.valueSize])
}

func (t *Tree) leftChildPos(pos int, h header) int {
	return pos + t.nodeSize(h)
}

func (t *Tree) rightChildPos(pos int, h header) int {
	if h.hasLeft {
		return pos + int(h.rightOffset)
	}
	return pos + t.nodeSize(h)
}

func (t *Tree) childPos(pos int, h header, d uint8) (int, bool) {
	if d == 0 {
		if !h.hasLeft {
			return 0, false
		}
		return t.leftChildPos(pos, h), true
	}
	if !h.hasRight {
		return 0, false
	}
	return t.rightChildPos(pos, h), true
}

// wormState mirrors the root package's curState but is keyed by byte
// offset into the buffer instead of a NodeRef.
type wormState int

const (
	wAtNode wormState = iota
	wInEdge
	wFree
)

type wormHist struct {
	state       wormState
	descendant  int // byte offset of the descendant node's header, valid in wInEdge and retained in wFree
	edgeMatched int
}

type wormFrame struct {
	pos   int
	depth int
}

// step is the WORM equivalent of the root package's step function: it
// computes the transition for following digit d from cur, whose nearest
// materialized node header sits at topPos.
func (t *Tree) step(topPos int, cur wormHist, d uint8) (next wormHist, push int, pushOk bool) {
	switch cur.state {
	case wAtNode:
		h := t.decodeAt(topPos)
		childPos, ok := t.childPos(topPos, h, d)
		if !ok {
			return wormHist{state: wFree}, 0, false
		}
		child := t.decodeAt(childPos)
		if child.edgeLen == 0 {
			return wormHist{state: wAtNode}, childPos, true
		}
		return wormHist{state: wInEdge, descendant: childPos, edgeMatched: 0}, 0, false

	case wInEdge:
		h := t.decodeAt(cur.descendant)
		digits := unpackEdgeDigits(h.edgeDigits, h.edgeLen)
		if d != digits[cur.edgeMatched] {
			return wormHist{state: wFree, descendant: cur.descendant, edgeMatched: cur.edgeMatched}, 0, false
		}
		if cur.edgeMatched+1 == h.edgeLen {
			return wormHist{state: wAtNode}, cur.descendant, true
		}
		return wormHist{state: wInEdge, descendant: cur.descendant, edgeMatched: cur.edgeMatched + 1}, 0, false

	default: // wFree
		return wormHist{state: wFree, descendant: cur.descendant, edgeMatched: cur.edgeMatched}, 0, false
	}
}
