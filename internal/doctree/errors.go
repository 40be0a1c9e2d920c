package doctree

import "errors"

// Sentinel errors for path traversal failures. Callers match with errors.Is;
// the wrapped messages carry the offending path and segment.
var (
	// ErrTypeMismatch reports a shape conflict: a key segment met a sequence
	// node, or an index segment met a mapping or scalar node.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfRange reports a non-contiguous sequence write or a read
	// past the end of a sequence. Sequences only grow by appending.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrKeyNotFound reports a read through a path segment that is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrBadPath reports a path string that cannot be split into segments,
	// such as one with an empty segment.
	ErrBadPath = errors.New("malformed path")
)
