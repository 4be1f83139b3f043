package worm

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Codec abstracts how a value is read from and written to a WORM value
// blob. The built-in family stores plain unsigned integers, zero-extended
// to a fixed width and byte order, identified as "AKAMAI-UINT-<endian>-<size>".
type Codec interface {
	// ID returns the codec's identifier, carried as metadata alongside a
	// WORM buffer so a reader can confirm it is using the matching codec.
	ID() string
	// Size returns the fixed width, in bytes, of an encoded value.
	Size() int
	// Read decodes a value from buf, which must be at least Size() bytes.
	Read(buf []byte) uint64
	// Write encodes v into buf, which must be at least Size() bytes.
	Write(buf []byte, v uint64)
}

type uintCodec struct {
	size         int
	littleEndian bool
}

// NewUintCodec returns the built-in unsigned-integer Codec for the given
// width (1..8 bytes) and byte order.
func NewUintCodec(size int, littleEndian bool) Codec {
	if size < 1 || size > 8 {
		panic("worm: NewUintCodec: size out of range")
	}
	return uintCodec{size: size, littleEndian: littleEndian}
}

func (c uintCodec) ID() string {
	endian := "BE"
	if c.littleEndian {
		endian = "LE"
	}
	return fmt.Sprintf("AKAMAI-UINT-%s-%d", endian, c.size)
}

func (c uintCodec) Size() int { return c.size }

func (c uintCodec) Read(buf []byte) uint64 {
	return decodeUint(buf, c.size, c.littleEndian)
}

func (c uintCodec) Write(buf []byte, v uint64) {
	encodeUint(buf, v, c.size, c.littleEndian)
}

// MinBytesForValue returns the smallest width in 1..8 able to hold v
// zero-extended, used by the dry-run pass to pick value_size.
func MinBytesForValue(v uint64) int {
	return minBytesForUint(v)
}

// minBytesForUint returns the smallest byte width in 1..8 able to represent
// v without truncation, generic over any unsigned integer width so it
// serves both the 64-bit value/offset counters Stats accumulates and
// narrower caller-supplied counters without a separate copy per width.
func minBytesForUint[T constraints.Unsigned](v T) int {
	n := 1
	for v>>(8*uint(n)) != 0 {
		n++
		if n == 8 {
			break
		}
	}
	return n
}
