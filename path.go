package radix

import (
	"fmt"
	"strings"
)

// Path is an immutable-style sequence of digits in [0,radix), bounded to at
// most maxDepth digits. Every mutating method returns a new Path value
// rather than modifying the receiver in place, so a Path handed to one
// cursor is never silently changed by another cursor that happens to share
// history with it.
type Path struct {
	radix    int
	maxDepth int
	digits   []uint8
}

// NewPath returns the empty path for a tree of the given radix and maximum
// depth. Both must be positive, and radix must fit in a byte's worth of
// digit values (radix <= 256).
func NewPath(radix, maxDepth int) Path {
	if radix <= 0 || radix > 256 {
		panic("radix: NewPath: radix out of range")
	}
	if maxDepth <= 0 {
		panic("radix: NewPath: maxDepth out of range")
	}
	return Path{radix: radix, maxDepth: maxDepth}
}

// Radix returns the path's digit radix.
func (p Path) Radix() int { return p.radix }

// MaxDepth returns the maximum number of digits the path may hold.
func (p Path) MaxDepth() int { return p.maxDepth }

// Size returns the number of digits currently in the path.
func (p Path) Size() int { return len(p.digits) }

// At returns the digit at position i (0-indexed from the root).
//
// It returns ErrOutOfRange wrapped with the offending index if i is not a
// valid position.
func (p Path) At(i int) (uint8, error) {
	if i < 0 || i >= len(p.digits) {
		return 0, fmt.Errorf("radix: Path.At(%d): %w", i, ErrOutOfRange)
	}
	return p.digits[i], nil
}

// MustAt is like At but panics instead of returning an error. Cursor
// internals use it once a position has already been validated.
func (p Path) MustAt(i int) uint8 {
	d, err := p.At(i)
	if err != nil {
		panic(err)
	}
	return d
}

// Digits returns a copy of the path's digits, safe for the caller to
// retain or mutate.
func (p Path) Digits() []uint8 {
	out := make([]uint8, len(p.digits))
	copy(out, p.digits)
	return out
}

// PushBack returns a new Path with digit d appended. It fails with
// ErrOutOfRange if d is not a valid digit for the path's radix, or if the
// path is already at maxDepth.
func (p Path) PushBack(d uint8) (Path, error) {
	if int(d) >= p.radix {
		return p, fmt.Errorf("radix: Path.PushBack(%d): %w", d, ErrOutOfRange)
	}
	if len(p.digits) >= p.maxDepth {
		return p, fmt.Errorf("radix: Path.PushBack: at max depth %d: %w", p.maxDepth, ErrOutOfRange)
	}
	out := make([]uint8, len(p.digits)+1)
	copy(out, p.digits)
	out[len(p.digits)] = d
	p.digits = out
	return p, nil
}

// PopBack returns a new Path with the last digit removed, and the digit
// that was removed. It fails with ErrOutOfRange if the path is empty.
func (p Path) PopBack() (Path, uint8, error) {
	if len(p.digits) == 0 {
		return p, 0, fmt.Errorf("radix: Path.PopBack: %w", ErrOutOfRange)
	}
	d := p.digits[len(p.digits)-1]
	p.digits = p.digits[:len(p.digits)-1 : len(p.digits)-1]
	return p, d, nil
}

// TrimBack returns a new Path with the last k digits removed.
func (p Path) TrimBack(k int) (Path, error) {
	if k < 0 || k > len(p.digits) {
		return p, fmt.Errorf("radix: Path.TrimBack(%d): %w", k, ErrOutOfRange)
	}
	n := len(p.digits) - k
	p.digits = p.digits[:n:n]
	return p, nil
}

// TrimFront returns a new Path with the first k digits removed.
func (p Path) TrimFront(k int) (Path, error) {
	if k < 0 || k > len(p.digits) {
		return p, fmt.Errorf("radix: Path.TrimFront(%d): %w", k, ErrOutOfRange)
	}
	out := make([]uint8, len(p.digits)-k)
	copy(out, p.digits[k:])
	p.digits = out
	return p, nil
}

// Append returns a new Path with the digits of other appended. Both paths
// must share the same radix.
func (p Path) Append(other Path) (Path, error) {
	if other.radix != p.radix {
		return p, fmt.Errorf("radix: Path.Append: radix mismatch: %w", ErrOutOfRange)
	}
	if len(p.digits)+len(other.digits) > p.maxDepth {
		return p, fmt.Errorf("radix: Path.Append: exceeds max depth %d: %w", p.maxDepth, ErrOutOfRange)
	}
	out := make([]uint8, len(p.digits)+len(other.digits))
	copy(out, p.digits)
	copy(out[len(p.digits):], other.digits)
	p.digits = out
	return p, nil
}

// Clear returns the empty path, preserving radix and maxDepth.
func (p Path) Clear() Path {
	p.digits = nil
	return p
}

// Equal reports whether p and o hold the same digit sequence.
func (p Path) Equal(o Path) bool {
	if len(p.digits) != len(o.digits) {
		return false
	}
	for i := range p.digits {
		if p.digits[i] != o.digits[i] {
			return false
		}
	}
	return true
}

// CommonPrefixLen returns the number of leading digits p and o share.
func (p Path) CommonPrefixLen(o Path) int {
	n := len(p.digits)
	if len(o.digits) < n {
		n = len(o.digits)
	}
	for i := 0; i < n; i++ {
		if p.digits[i] != o.digits[i] {
			return i
		}
	}
	return n
}

// String renders the path as a comma-separated list of digits, e.g.
// "[1,0,3]".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, d := range p.digits {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	sb.WriteByte(']')
	return sb.String()
}
