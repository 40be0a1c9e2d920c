package doctree

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Tree is a mutable document tree rooted at a mapping. All access goes
// through dotted paths; see the package documentation for the traversal
// rules.
type Tree struct {
	root *Node
}

// New returns a tree holding an empty root mapping.
func New() *Tree {
	return &Tree{root: NewMapping()}
}

// Root returns the root mapping node.
func (t *Tree) Root() *Node {
	return t.root
}

// SetValue writes a scalar value at the given path.
func (t *Tree) SetValue(path Path, value cty.Value) error {
	return t.SetNode(path, NewScalar(value))
}

// SetNode writes a node at the given path, creating missing intermediate
// nodes along the way. The shape of a created intermediate follows the
// segment that will address into it: an index segment creates a sequence,
// a key segment a mapping. Writing through an existing node of the wrong
// shape fails with ErrTypeMismatch; a sequence index more than one past the
// end fails with ErrIndexOutOfRange. The final segment overwrites whatever
// is already there, or appends when it equals the sequence length.
func (t *Tree) SetNode(path Path, node *Node) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrBadPath)
	}

	current := t.root
	for i := range path[:len(path)-1] {
		next, err := descend(current, path, i, true)
		if err != nil {
			return err
		}
		current = next
	}

	return writeLeaf(current, path, node)
}

// Get resolves the path and returns the addressed node. A missing segment
// fails with ErrKeyNotFound; shape conflicts fail with ErrTypeMismatch.
func (t *Tree) Get(path Path) (*Node, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}

	current := t.root
	for i := range path {
		next, err := descend(current, path, i, false)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Contains reports whether the path resolves to an existing node. Unlike Get
// it never fails: traversal errors of any kind read as absence.
func (t *Tree) Contains(path Path) bool {
	_, err := t.Get(path)
	return err == nil
}

// Append adds an element to the sequence addressed by the path. The sequence
// must already exist; callers that need create-on-first-append set an empty
// sequence node first.
func (t *Tree) Append(path Path, node *Node) error {
	target, err := t.Get(path)
	if err != nil {
		return err
	}
	if target.Kind() != KindSequence {
		return fmt.Errorf("%w: cannot append to %s at %q", ErrTypeMismatch, target.Kind(), path)
	}
	target.appendItem(node)
	return nil
}

// descend resolves path[i] against current and returns the next node. With
// create set, missing children are initialized (mapping or sequence depending
// on the following segment) and an index equal to the sequence length appends
// a fresh element.
func descend(current *Node, path Path, i int, create bool) (*Node, error) {
	seg := path[i]

	switch current.Kind() {
	case KindMapping:
		if seg.IsIndex() {
			return nil, fmt.Errorf("%w: segment %q of %q indexes into a mapping", ErrTypeMismatch, seg, path)
		}
		child := current.child(seg.Key)
		if child == nil {
			if !create {
				return nil, fmt.Errorf("%w: %q has no key %q", ErrKeyNotFound, path, seg.Key)
			}
			child = newIntermediate(path, i)
			current.setChild(seg.Key, child)
		}
		return child, nil

	case KindSequence:
		if !seg.IsIndex() {
			return nil, fmt.Errorf("%w: segment %q of %q keys into a sequence", ErrTypeMismatch, seg, path)
		}
		switch {
		case seg.Index < current.Len():
			return current.items[seg.Index], nil
		case seg.Index == current.Len() && create:
			child := newIntermediate(path, i)
			current.appendItem(child)
			return child, nil
		case create:
			return nil, fmt.Errorf("%w: index %d of %q skips past length %d", ErrIndexOutOfRange, seg.Index, path, current.Len())
		default:
			return nil, fmt.Errorf("%w: %q has no element %d", ErrKeyNotFound, path, seg.Index)
		}

	default:
		return nil, fmt.Errorf("%w: segment %q of %q traverses a scalar", ErrTypeMismatch, seg, path)
	}
}

// newIntermediate picks the shape of an auto-created node at position i from
// the segment that will descend into it next.
func newIntermediate(path Path, i int) *Node {
	if i+1 < len(path) && path[i+1].IsIndex() {
		return NewSequence()
	}
	return NewMapping()
}

// writeLeaf places node at the final segment of path inside parent.
func writeLeaf(parent *Node, path Path, node *Node) error {
	seg := path.Tail()

	switch parent.Kind() {
	case KindMapping:
		if seg.IsIndex() {
			return fmt.Errorf("%w: segment %q of %q indexes into a mapping", ErrTypeMismatch, seg, path)
		}
		parent.setChild(seg.Key, node)
		return nil

	case KindSequence:
		if !seg.IsIndex() {
			return fmt.Errorf("%w: segment %q of %q keys into a sequence", ErrTypeMismatch, seg, path)
		}
		switch {
		case seg.Index < parent.Len():
			parent.items[seg.Index] = node
			return nil
		case seg.Index == parent.Len():
			parent.appendItem(node)
			return nil
		default:
			return fmt.Errorf("%w: index %d of %q skips past length %d", ErrIndexOutOfRange, seg.Index, path, parent.Len())
		}

	default:
		return fmt.Errorf("%w: segment %q of %q traverses a scalar", ErrTypeMismatch, seg, path)
	}
}
