/*
Copyright 2014 Will Fitzgerald. All rights reserved.
Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file.
*/

// Package bitset implements a variable-length bitset, a mapping between
// non-negative integers and boolean values, used throughout this module as
// the presence map of a popcount-compressed sparse array (see
// internal/sparse). Unlike a bitset fixed at 256 bits, the backing slice
// grows to whatever radix the tree was constructed with.
//
// Studied github.com/bits-and-blooms/bitset inside out and stripped it down
// to the operations a popcount-compressed array actually needs.
package bitset

import (
	"math/bits"
)

const wordSize = 64
const log2WordSize = 6

// A BitSet is a slice of words.
type BitSet []uint64

func (b *BitSet) extendSet(i uint) {
	nsize := wordsNeeded(i)
	if b == nil {
		*b = make([]uint64, nsize)
	} else if len(*b) < nsize {
		newset := make([]uint64, nsize)
		copy(newset, *b)
		*b = newset
	}
}

func (b BitSet) bitsCapacity() uint {
	return uint(len(b) * 64)
}

func wordsNeeded(i uint) int {
	return int(i+wordSize) >> log2WordSize
}

func bitsIndex(i uint) uint {
	return i & (wordSize - 1)
}

// Test whether bit i is set.
func (b BitSet) Test(i uint) bool {
	if i >= b.bitsCapacity() {
		return false
	}
	return b[i>>log2WordSize]&(1<<bitsIndex(i)) != 0
}

// Set bit i to 1, growing the bitset if necessary.
func (b *BitSet) Set(i uint) {
	if i >= b.bitsCapacity() {
		b.extendSet(i)
	}
	(*b)[i>>log2WordSize] |= (1 << bitsIndex(i))
}

// Clear bit i to 0.
func (b *BitSet) Clear(i uint) {
	if i >= b.bitsCapacity() {
		return
	}
	(*b)[i>>log2WordSize] &^= (1 << bitsIndex(i))
}

// Clone returns a new BitSet with the same bits set.
func (b BitSet) Clone() BitSet {
	c := BitSet(make([]uint64, len(b)))
	copy(c, b)
	return c
}

// Compact shrinks the BitSet to the smallest backing slice that still
// preserves all set bits.
func (b *BitSet) Compact() {
	idx := len(*b) - 1
	for ; idx >= 0; idx-- {
		if (*b)[idx] != 0 {
			newset := make([]uint64, idx+1)
			copy(newset, (*b)[:idx+1])
			*b = newset
			return
		}
	}
	*b = nil
}

// NextSet returns the next bit set from the specified index, including
// possibly the current index, along with an ok code.
func (b BitSet) NextSet(i uint) (uint, bool) {
	x := int(i >> log2WordSize)
	if x >= len(b) {
		return 0, false
	}
	word := b[x] >> bitsIndex(i)
	if word != 0 {
		return i + uint(bits.TrailingZeros64(word)), true
	}
	x++
	for x < len(b) {
		if b[x] != 0 {
			return uint(x*wordSize + bits.TrailingZeros64(b[x])), true
		}
		x++
	}
	return 0, false
}

// NextSetMany returns many next bits set from the specified index, up to
// cap(buffer). If the returned slice has length zero, no more bits are set.
func (b BitSet) NextSetMany(i uint, buffer []uint) (uint, []uint) {
	myanswer := buffer
	capacity := cap(buffer)
	x := int(i >> log2WordSize)
	if x >= len(b) || capacity == 0 {
		return 0, myanswer[:0]
	}
	word := b[x] >> bitsIndex(i)
	myanswer = myanswer[:capacity]
	size := 0
	for word != 0 {
		r := uint(bits.TrailingZeros64(word))
		t := word & ((^word) + 1)
		myanswer[size] = r + i
		size++
		if size == capacity {
			goto End
		}
		word ^= t
	}
	x++
	for idx, w := range b[x:] {
		for w != 0 {
			r := uint(bits.TrailingZeros64(w))
			t := w & ((^w) + 1)
			myanswer[size] = r + (uint(x+idx) << 6)
			size++
			if size == capacity {
				goto End
			}
			w ^= t
		}
	}
End:
	if size > 0 {
		return myanswer[size-1], myanswer[:size]
	}
	return 0, myanswer[:0]
}

// IntersectionCardinality computes the cardinality of the intersection.
func (b BitSet) IntersectionCardinality(c BitSet) int {
	if len(b) <= len(c) {
		return popcntAndSlice(b, c)
	}
	return popcntAndSlice(c, b)
}

// InPlaceIntersection overwrites and computes the intersection of
// base set with the compare set. This is the BitSet equivalent of & (and).
func (b *BitSet) InPlaceIntersection(c BitSet) {
	bLen := len(*b)
	cLen := len(c)

	if bLen >= cLen {
		for i := range cLen {
			(*b)[i] &= c[i]
		}
		for i := cLen; i < bLen; i++ {
			(*b)[i] = 0
		}
		return
	}

	for i := range bLen {
		(*b)[i] &= c[i]
	}

	newset := make([]uint64, cLen)
	copy(newset, *b)
	*b = newset
}

// InPlaceUnion creates the destructive union of base set with compare set.
// This is the BitSet equivalent of | (or).
func (b *BitSet) InPlaceUnion(c BitSet) {
	bLen := len(*b)
	cLen := len(c)

	if bLen >= cLen {
		for i := range cLen {
			(*b)[i] |= c[i]
		}
		return
	}

	newset := make([]uint64, cLen)
	copy(newset, *b)
	*b = newset

	for i := range cLen {
		(*b)[i] |= c[i]
	}
}

// Count returns the number of set bits (popcount).
func (b BitSet) Count() int {
	return popcntSlice(b)
}

// Rank returns the number of set bits up to and including index.
func (b BitSet) Rank(index uint) int {
	wordIdx := int((index + 1) >> log2WordSize)

	if wordIdx >= len(b) {
		return popcntSlice(b)
	}

	answer := popcntSlice(b[:wordIdx])

	bitsIdx := bitsIndex(index + 1)
	if bitsIdx == 0 {
		return answer
	}

	return answer + bits.OnesCount64(b[wordIdx]<<(64-bitsIdx))
}

// Rank0 returns Rank(index)-1, ready to use as a slice index into a
// popcount-compressed array.
func (b BitSet) Rank0(index uint) int {
	return b.Rank(index) - 1
}

func popcntSlice(s []uint64) int {
	var cnt int
	for _, x := range s {
		cnt += bits.OnesCount64(x)
	}
	return cnt
}

// popcntAndSlice assumes len(s) <= len(m).
func popcntAndSlice(s, m []uint64) int {
	var cnt int
	for i := range s {
		cnt += bits.OnesCount64(s[i] & m[i])
	}
	return cnt
}
