package promcfg

import "github.com/autometrics-dev/render-prometheus/internal/doctree"

// listDeclaredTails is the fixed set of path tails known to hold list-typed
// values in the Prometheus configuration grammar. The merge policy consults
// it when the addressed location does not already hold a value; it is never
// modified at run time.
var listDeclaredTails = map[string]struct{}{
	"rule_files":             {},
	"scrape_configs":         {},
	"static_configs":         {},
	"relabel_configs":        {},
	"metric_relabel_configs": {},
	"alertmanagers":          {},
	"file_sd_configs":        {},
	"dns_sd_configs":         {},
}

// listDeclared reports whether the path's tail segment names a declared-list
// field. Index tails never match: an index addresses a position inside a
// list, not the list itself.
func listDeclared(path doctree.Path) bool {
	tail := path.Tail()
	if tail.IsIndex() {
		return false
	}
	_, ok := listDeclaredTails[tail.Key]
	return ok
}
