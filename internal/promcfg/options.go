package promcfg

import (
	"strings"

	"github.com/autometrics-dev/render-prometheus/internal/doctree"
)

// OptionEntry is one parsed `key=value` pair: a dotted path into the
// document plus the raw, not-yet-coerced value. Entries are transient; the
// assembler folds them into the tree and drops them.
type OptionEntry struct {
	Path doctree.Path
	Raw  string
}

// ParseOptions splits a `;`-separated option string into entries. Each entry
// splits on its first `=` only, so values may themselves contain `=`. Empty
// entries (a trailing or doubled `;`) are skipped; an entry without `=` or
// with an empty key is a ValidationError.
func ParseOptions(raw string) ([]OptionEntry, error) {
	if raw == "" {
		return nil, nil
	}

	var entries []OptionEntry
	for _, part := range strings.Split(raw, ";") {
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			return nil, Validation(part, "option entry has no '='")
		}
		if key == "" {
			return nil, Validation(part, "option entry has an empty key")
		}
		path, err := doctree.ParsePath(key)
		if err != nil {
			return nil, Validation(key, "option key is not a valid path: %v", err)
		}
		entries = append(entries, OptionEntry{Path: path, Raw: value})
	}
	return entries, nil
}
