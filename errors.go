package radix

import "errors"

// Sentinel errors returned by package operations. Use errors.Is to test for
// them; call sites wrap them with fmt.Errorf("...: %w", ErrX) to attach
// context.
var (
	// ErrOutOfRange is returned when a digit, depth, or index argument
	// falls outside the value range the operation accepts.
	ErrOutOfRange = errors.New("radix: argument out of range")

	// ErrInvalidState is returned when an operation is attempted from a
	// cursor position or tree state that does not support it (for
	// example, reading a value through a handle whose node was removed).
	ErrInvalidState = errors.New("radix: invalid state")

	// ErrParse is returned when a textual or binary encoding cannot be
	// decoded into a Path, Edge, or WORM buffer.
	ErrParse = errors.New("radix: parse error")
)
