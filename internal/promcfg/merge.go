package promcfg

import (
	"errors"
	"fmt"

	"github.com/autometrics-dev/render-prometheus/internal/coerce"
	"github.com/autometrics-dev/render-prometheus/internal/doctree"
)

// ApplyOption folds one option entry into the tree under the merge policy.
//
// Decision order:
//
//  1. The path addresses a populated mapping: fail with ErrConflict. A nested
//     structure is never silently clobbered by a scalar assignment.
//  2. The path addresses an existing sequence: append. A list stays a list
//     whether or not its tail is declared list-typed.
//  3. The path's tail is a declared-list field: initialize a one-element
//     sequence on first assignment (rule 2 takes over on later ones).
//  4. Otherwise: overwrite the scalar.
//
// Rules 2 and 3 are both load-bearing: rule 3 alone would not accumulate into
// lists seeded by the default skeleton, and rule 2 alone would never
// initialize a list from its first assignment.
func ApplyOption(tree *doctree.Tree, entry OptionEntry) error {
	value := coerce.Coerce(entry.Raw)
	scalar := doctree.NewScalar(value)

	existing, err := tree.Get(entry.Path)
	switch {
	case err == nil:
		switch existing.Kind() {
		case doctree.KindMapping:
			if existing.Len() > 0 {
				return fmt.Errorf("%w: %q already holds a nested structure", ErrConflict, entry.Path)
			}
			// An empty placeholder mapping carries no information; fall
			// through to the declared-list and overwrite rules.
		case doctree.KindSequence:
			return tree.Append(entry.Path, scalar)
		}
	case errors.Is(err, doctree.ErrKeyNotFound):
		// Absent is fine; the write below creates the location.
	default:
		// Shape conflicts and sparse indices on the way down are fatal.
		return err
	}

	if listDeclared(entry.Path) {
		if err := tree.SetNode(entry.Path, doctree.NewSequence()); err != nil {
			return err
		}
		return tree.Append(entry.Path, scalar)
	}

	return tree.SetNode(entry.Path, scalar)
}
