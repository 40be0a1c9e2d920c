package doctree

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is a single element of a dotted path: either a mapping key or a
// sequence index. A segment consisting solely of decimal digits is an index;
// everything else is a key.
type Segment struct {
	Key   string
	Index int // -1 for key segments
}

// NewKeySegment returns a segment addressing a mapping key.
func NewKeySegment(key string) Segment {
	return Segment{Key: key, Index: -1}
}

// NewIndexSegment returns a segment addressing a sequence position.
func NewIndexSegment(index int) Segment {
	return Segment{Key: strconv.Itoa(index), Index: index}
}

// IsIndex reports whether the segment addresses a sequence position.
func (s Segment) IsIndex() bool {
	return s.Index >= 0
}

// String returns the segment as it appears in a dotted path.
func (s Segment) String() string {
	return s.Key
}

// Path is a pre-split dotted address into a document tree.
type Path []Segment

// ParsePath splits a dotted string into path segments. Digit-only segments
// become sequence indices, everything else mapping keys. An empty string or
// an empty segment (leading, trailing, or doubled dot) is a malformed path.
func ParsePath(raw string) (Path, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}

	parts := strings.Split(raw, ".")
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrBadPath, raw)
		}
		if idx, ok := parseIndex(part); ok {
			path = append(path, NewIndexSegment(idx))
			continue
		}
		path = append(path, NewKeySegment(part))
	}
	return path, nil
}

// MustParsePath is ParsePath for compile-time-constant paths; it panics on a
// malformed input.
func MustParsePath(raw string) Path {
	path, err := ParsePath(raw)
	if err != nil {
		panic(err)
	}
	return path
}

// parseIndex reports whether the segment is a non-negative decimal integer.
// Signed forms like "-1" or "+2" are deliberately treated as mapping keys; an
// index can only be non-negative.
func parseIndex(part string) (int, bool) {
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(part)
	if err != nil {
		// Digits only but unparseable means overflow.
		return 0, false
	}
	return idx, true
}

// Tail returns the final segment of the path.
func (p Path) Tail() Segment {
	return p[len(p)-1]
}

// Child returns a copy of the path extended by one key segment.
func (p Path) Child(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, NewKeySegment(key))
}

// String serializes the path back into its canonical dotted form.
func (p Path) String() string {
	var sb strings.Builder
	for i, seg := range p {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(seg.String())
	}
	return sb.String()
}
