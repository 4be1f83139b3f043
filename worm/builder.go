package worm

import (
	"fmt"

	"github.com/axtree/radix"
)

// Stats is the per-category bookkeeping a Builder accumulates across a
// build, whether or not it actually emits bytes (see BuildOptions.StatsOnly).
// A dry-run build (maximum offset/value widths) followed by a real build at
// the widths Stats recommends is the canonical two-pass sequence described
// in the package doc.
type Stats struct {
	ValueNodes    int
	NoChildNodes  int
	OneChildNodes int
	TwoChildNodes int

	// MaxRightOffset is the largest right-child offset, in bytes, seen
	// across every two-child node written so far. It is measured at
	// whatever offset width the build actually used, which makes it a
	// safe (if occasionally non-minimal) upper bound for any smaller
	// width: shrinking the offset field only shrinks every two-child
	// header uniformly, which can only shrink gaps further. See
	// DESIGN.md for why this monotonicity argument is good enough
	// instead of iterating to a fixed point.
	MaxRightOffset uint64

	// MaxValue is the largest value written so far, zero-extended.
	MaxValue uint64
}

// MinBytesForOffset returns the smallest offset width in 1..8 able to
// represent MaxRightOffset.
func (s Stats) MinBytesForOffset() int {
	return minBytesForUint(s.MaxRightOffset)
}

// MinBytesForValue returns the smallest value width in 1..8 able to
// represent MaxValue.
func (s Stats) MinBytesForValue() int {
	return minBytesForUint(s.MaxValue)
}

// BuildOptions parameterizes a Builder.Start call.
type BuildOptions struct {
	// StatsOnly skips emitting the byte buffer, producing only Stats.
	// Use this for the dry-run pass of the canonical build sequence.
	StatsOnly bool

	// OffsetSize and ValueSize are the fixed per-tree widths, in bytes
	// (1..8), used to encode right-child offsets and value blobs.
	OffsetSize int
	ValueSize  int

	// LittleEndian selects the byte order for multi-byte integer
	// fields (offsets and unsigned-integer values).
	LittleEndian bool

	// RejectEmptyLeaf, if true, makes AddNode return ErrInvalidState for
	// a non-root node with neither a value nor any children. The root
	// is always exempt.
	RejectEmptyLeaf bool
}

// frame tracks one ancestor-or-self node (as supplied by the caller, never
// a synthesized scaffold) that is still missing at least one child it
// declared. The builder only ever needs a stack of these: scaffold nodes
// inserted to span a gap longer than EdgeCapacity are resolved entirely
// within the AddNode call that created them, since a scaffold's single
// child is always the very next thing written.
type frame struct {
	path                radix.Path
	hasLeft, hasRight   bool
	leftDone, rightDone bool
	headerStart         int // byte offset of this node's header
	offsetPatchPos      int // byte offset to patch once the right child's position is known; -1 if none
}

// Builder writes a WORM buffer by receiving nodes in pre-order: the
// caller drives a pre-order traversal of an existing tree and feeds every
// "significant" node (one with two children, or with a value) to AddNode;
// the builder itself synthesizes the pure single-child scaffolding nodes
// a gap between two significant nodes requires.
type Builder struct {
	started bool
	opts    BuildOptions
	codec   Codec

	buf        []byte
	virtualPos int // tracks what len(buf) would be in stats-only mode, where buf stays empty
	stack      []frame
	stats      Stats
}

// NewBuilder returns an unstarted Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Start opens a build. It must be called (again, if the builder was
// previously used) before the first AddNode.
func (b *Builder) Start(opts BuildOptions) error {
	if opts.OffsetSize < 1 || opts.OffsetSize > 8 {
		return fmt.Errorf("worm: Builder.Start: offset size %d out of range: %w", opts.OffsetSize, ErrOutOfRange)
	}
	if opts.ValueSize < 1 || opts.ValueSize > 8 {
		return fmt.Errorf("worm: Builder.Start: value size %d out of range: %w", opts.ValueSize, ErrOutOfRange)
	}
	*b = Builder{
		started: true,
		opts:    opts,
		codec:   NewUintCodec(opts.ValueSize, opts.LittleEndian),
	}
	return nil
}

func (b *Builder) requireStarted() error {
	if !b.started {
		return fmt.Errorf("worm: Builder: not started: %w", ErrInvalidState)
	}
	return nil
}

// AddNode adds the next node in pre-order. path must have radix 2. The
// node must either hold a value or have at least one child, unless it is
// the root (path.Size() == 0) or BuildOptions.RejectEmptyLeaf is false.
func (b *Builder) AddNode(path radix.Path, hasValue bool, value uint64, hasLeft, hasRight bool) error {
	if err := b.requireStarted(); err != nil {
		return err
	}
	if path.Radix() != 2 {
		return fmt.Errorf("worm: Builder.AddNode: path radix %d, want 2: %w", path.Radix(), ErrOutOfRange)
	}
	if !hasValue && !hasLeft && !hasRight && path.Size() != 0 && b.opts.RejectEmptyLeaf {
		return fmt.Errorf("worm: Builder.AddNode: empty non-root leaf rejected: %w", ErrInvalidState)
	}

	digits := pathDigits(path)

	if len(b.stack) == 0 {
		if path.Size() != 0 {
			return fmt.Errorf("worm: Builder.AddNode: first node must be the root: %w", ErrInvalidState)
		}
		b.writeNode(path, nil, 0, hasValue, value, hasLeft, hasRight, true)
		return nil
	}

	// Pop ancestors whose subtree is already complete and that do not
	// contain path, verifying each was fully satisfied before it is
	// left behind.
	for len(b.stack) > 0 && !isPrefix(b.stack[len(b.stack)-1].path, path) {
		top := b.stack[len(b.stack)-1]
		if (top.hasLeft && !top.leftDone) || (top.hasRight && !top.rightDone) {
			return fmt.Errorf("worm: Builder.AddNode: node at %s never received its declared child: %w", top.path, ErrInvalidState)
		}
		b.stack = b.stack[:len(b.stack)-1]
	}

	if len(b.stack) == 0 {
		return fmt.Errorf("worm: Builder.AddNode: no ancestor found for %s: %w", path, ErrInvalidState)
	}

	parentIdx := len(b.stack) - 1
	parent := &b.stack[parentIdx]
	parentDepth := parent.path.Size()
	if path.Size() <= parentDepth {
		return fmt.Errorf("worm: Builder.AddNode: out of pre-order at %s: %w", path, ErrInvalidState)
	}
	slotDigit := digits[parentDepth]

	switch slotDigit {
	case 0:
		if !parent.hasLeft || parent.leftDone {
			return fmt.Errorf("worm: Builder.AddNode: unexpected left child at %s: %w", path, ErrInvalidState)
		}
		parent.leftDone = true
	default:
		if !parent.hasRight || parent.rightDone {
			return fmt.Errorf("worm: Builder.AddNode: unexpected right child at %s: %w", path, ErrInvalidState)
		}
		if parent.hasLeft && !parent.leftDone {
			return fmt.Errorf("worm: Builder.AddNode: right child before left at %s: %w", path, ErrInvalidState)
		}
		parent.rightDone = true
		if parent.offsetPatchPos >= 0 {
			pos := len(b.buf)
			if b.opts.StatsOnly {
				pos = b.virtualPos
			}
			gap := uint64(pos - parent.headerStart)
			if !b.opts.StatsOnly {
				encodeUint(b.buf[parent.offsetPatchPos:parent.offsetPatchPos+b.opts.OffsetSize], gap, b.opts.OffsetSize, b.opts.LittleEndian)
			}
			if gap > b.stats.MaxRightOffset {
				b.stats.MaxRightOffset = gap
			}
		}
	}

	// edgeDigits is everything between the slot digit and the node's
	// own path, split into scaffold-sized chunks of EdgeCapacity.
	edgeDigits := digits[parentDepth+1:]
	b.emitChain(path, edgeDigits, hasValue, value, hasLeft, hasRight)
	return nil
}

// emitChain writes the chain of scaffold nodes (if edgeDigits is longer
// than EdgeCapacity) followed by the real node at the chain's end, all
// immediately adjacent since every node but the last has exactly one
// child and needs no offset field.
func (b *Builder) emitChain(fullPath radix.Path, edgeDigits []uint8, hasValue bool, value uint64, hasLeft, hasRight bool) {
	depth := fullPath.Size() - len(edgeDigits)
	for len(edgeDigits) > EdgeCapacity {
		chunk := edgeDigits[:EdgeCapacity]
		nextDigit := edgeDigits[EdgeCapacity]
		edgeDigits = edgeDigits[EdgeCapacity+1:]
		depth += EdgeCapacity
		scaffoldHasLeft := nextDigit == 0
		scaffoldHasRight := !scaffoldHasLeft
		scaffoldPath := prefixOf(fullPath, depth)
		b.writeNode(scaffoldPath, chunk, depth, false, 0, scaffoldHasLeft, scaffoldHasRight, false)
		depth++ // the scaffold's child-slot digit
	}
	b.writeNode(fullPath, edgeDigits, depth, hasValue, value, hasLeft, hasRight, true)
}

// writeNode appends a single header (plus value blob) to the buffer (or
// just updates counters in stats-only mode) and, if the node expects any
// child, pushes a frame for it.
func (b *Builder) writeNode(path radix.Path, edgeDigits []uint8, edgeDepth int, hasValue bool, value uint64, hasLeft, hasRight bool, persist bool) {
	h := header{
		hasLeft:    hasLeft,
		hasRight:   hasRight,
		hasValue:   hasValue,
		edgeLen:    len(edgeDigits),
		edgeDigits: packEdgeDigitsFull(edgeDigits),
	}
	size := HeaderSize(b.opts.OffsetSize, hasLeft, hasRight)
	if hasValue {
		size += b.opts.ValueSize
	}

	var headerStart int
	offsetPatchPos := -1

	if b.opts.StatsOnly {
		// Stats-only mode tracks what len(buf) would be without ever
		// allocating it, so gap computations still make sense.
		headerStart = b.virtualPos
		b.virtualPos += size
	} else {
		headerStart = len(b.buf)
		buf := make([]byte, size)
		encodeHeader(buf, b.opts.OffsetSize, b.opts.LittleEndian, h)
		if hasValue {
			b.codec.Write(buf[HeaderSize(b.opts.OffsetSize, hasLeft, hasRight):], value)
		}
		b.buf = append(b.buf, buf...)
	}
	if hasLeft && hasRight {
		offsetPatchPos = headerStart + FixedHeaderBytes
	}

	switch {
	case hasValue:
		b.stats.ValueNodes++
		if value > b.stats.MaxValue {
			b.stats.MaxValue = value
		}
	}
	switch {
	case hasLeft && hasRight:
		b.stats.TwoChildNodes++
	case hasLeft || hasRight:
		b.stats.OneChildNodes++
	default:
		b.stats.NoChildNodes++
	}

	if persist && (hasLeft || hasRight) {
		b.stack = append(b.stack, frame{
			path:           path,
			hasLeft:        hasLeft,
			hasRight:       hasRight,
			headerStart:    headerStart,
			offsetPatchPos: offsetPatchPos,
		})
	}
}

// Finish closes the build, failing if any node on the stack never
// received a child it declared.
func (b *Builder) Finish() error {
	if err := b.requireStarted(); err != nil {
		return err
	}
	for _, f := range b.stack {
		if (f.hasLeft && !f.leftDone) || (f.hasRight && !f.rightDone) {
			return fmt.Errorf("worm: Builder.Finish: node at %s never received its declared child: %w", f.path, ErrInvalidState)
		}
	}
	return nil
}

// ExtractBuffer moves the built byte buffer out of the Builder and resets
// it to the unstarted state. It is a no-op returning nil in stats-only
// mode (there is no buffer to extract).
func (b *Builder) ExtractBuffer() []byte {
	buf := b.buf
	b.buf = nil
	b.started = false
	return buf
}

// TreeStats returns the counters accumulated so far. It may be called
// before Finish to inspect an in-progress build, though the canonical use
// is after a stats-only dry run completes.
func (b *Builder) TreeStats() Stats {
	return b.stats
}

func pathDigits(p radix.Path) []uint8 {
	out := make([]uint8, p.Size())
	for i := range out {
		out[i] = p.MustAt(i)
	}
	return out
}

func isPrefix(short radix.Path, long radix.Path) bool {
	if short.Size() > long.Size() {
		return false
	}
	for i := 0; i < short.Size(); i++ {
		if short.MustAt(i) != long.MustAt(i) {
			return false
		}
	}
	return true
}

func prefixOf(p radix.Path, n int) radix.Path {
	out := radix.NewPath(p.Radix(), p.MaxDepth())
	for i := 0; i < n; i++ {
		out, _ = out.PushBack(p.MustAt(i))
	}
	return out
}

func packEdgeDigitsFull(digits []uint8) uint8 {
	return packEdgeDigits(digits)
}
