package worm

import "github.com/axtree/radix"

// Error kinds mirror the root package's: OutOfRange, InvalidState, and
// Parse apply equally to the on-disk format.
var (
	ErrOutOfRange   = radix.ErrOutOfRange
	ErrInvalidState = radix.ErrInvalidState
	ErrParse        = radix.ErrParse
)
