package doctree

import "github.com/zclconf/go-cty/cty"

// Kind tags the shape of a node. Every node is exactly one of these.
type Kind int

const (
	KindMapping Kind = iota
	KindSequence
	KindScalar
)

// String returns the kind's name for error messages.
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Node is a single tagged node in a document tree: a string-keyed mapping, an
// ordered sequence, or a typed scalar. Mappings remember insertion order so
// the serialized document is stable across runs.
type Node struct {
	kind    Kind
	entries map[string]*Node
	keys    []string
	items   []*Node
	value   cty.Value
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node {
	return &Node{kind: KindMapping, entries: make(map[string]*Node)}
}

// NewSequence returns an empty sequence node.
func NewSequence() *Node {
	return &Node{kind: KindSequence}
}

// NewScalar returns a scalar node holding the given typed value.
func NewScalar(value cty.Value) *Node {
	return &Node{kind: KindScalar, value: value}
}

// NewStringSequence returns a sequence node of string scalars, one per input,
// in input order.
func NewStringSequence(values ...string) *Node {
	seq := NewSequence()
	for _, v := range values {
		seq.items = append(seq.items, NewScalar(cty.StringVal(v)))
	}
	return seq
}

// Kind returns the node's shape tag.
func (n *Node) Kind() Kind {
	return n.kind
}

// Value returns the scalar payload. It is only meaningful for scalar nodes;
// for other kinds it returns cty.NilVal.
func (n *Node) Value() cty.Value {
	if n.kind != KindScalar {
		return cty.NilVal
	}
	return n.value
}

// Len returns the number of entries in a mapping or elements in a sequence,
// and 0 for scalars.
func (n *Node) Len() int {
	switch n.kind {
	case KindMapping:
		return len(n.entries)
	case KindSequence:
		return len(n.items)
	default:
		return 0
	}
}

// child returns the mapping entry for key, or nil.
func (n *Node) child(key string) *Node {
	return n.entries[key]
}

// setChild writes a mapping entry, recording first-insertion order.
func (n *Node) setChild(key string, child *Node) {
	if _, exists := n.entries[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.entries[key] = child
}

// appendItem appends an element to a sequence.
func (n *Node) appendItem(item *Node) {
	n.items = append(n.items, item)
}

// Keys returns the mapping's keys in insertion order.
func (n *Node) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Items returns the sequence's elements in order.
func (n *Node) Items() []*Node {
	out := make([]*Node, len(n.items))
	copy(out, n.items)
	return out
}
