/*
Package doctree provides the mutable document tree the renderer assembles the
Prometheus configuration into, addressed by dotted paths in the canonical
format `a.b.0.c`.

A path is a dot-separated sequence of segments. A segment of decimal digits
addresses a position in an ordered sequence; any other segment addresses a key
in a mapping. Nodes are tagged as exactly one of mapping, sequence, or scalar,
so a concrete path never resolves ambiguously.

Writes auto-create missing intermediate nodes, and a sequence index equal to
the current length appends a new element. Sparse writes (an index more than
one past the end) and shape conflicts (a key segment meeting a sequence, an
index segment meeting a mapping) fail eagerly with typed errors.
*/
package doctree
