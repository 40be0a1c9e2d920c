package promcfg

import (
	"context"

	"github.com/autometrics-dev/render-prometheus/internal/ctxlog"
	"github.com/autometrics-dev/render-prometheus/internal/doctree"
	"github.com/zclconf/go-cty/cty"
)

// Default skeleton values. All of them are plain option-reachable fields, so
// a global option can override any of them.
const (
	DefaultScrapeInterval = "15s"
	DefaultScrapeTimeout  = "10s"
	DefaultMonitorLabel   = "exporter"
	DefaultRuleFilesGlob  = "/etc/prometheus/*.rules"
)

var scrapeConfigsPath = doctree.MustParsePath("scrape_configs")

// Assembler builds the configuration document in three phases: seed the
// default skeleton, fold the global options, then fold one job block per
// target declaration. It runs once per invocation; any error aborts the
// whole build and no partial document escapes.
type Assembler struct {
	GlobalOptions []OptionEntry
	Targets       []*TargetDeclaration
}

// Assemble runs the three phases and returns the finished document tree.
func (a *Assembler) Assemble(ctx context.Context) (*doctree.Tree, error) {
	logger := ctxlog.FromContext(ctx)

	tree := doctree.New()
	if err := seedDefaults(tree); err != nil {
		return nil, err
	}
	logger.Debug("Default skeleton seeded.")

	for _, entry := range a.GlobalOptions {
		if err := ApplyOption(tree, entry); err != nil {
			return nil, err
		}
	}
	logger.Debug("Global options applied.", "count", len(a.GlobalOptions))

	seen := make(map[string]struct{}, len(a.Targets))
	for _, target := range a.Targets {
		name := target.JobName()
		if _, dup := seen[name]; dup {
			return nil, Validation(name, "duplicate target name")
		}
		seen[name] = struct{}{}

		job, err := buildJobBlock(target)
		if err != nil {
			return nil, err
		}
		if err := appendJob(tree, job); err != nil {
			return nil, err
		}
		logger.Debug("Scrape job assembled.", "job_name", name, "addresses", len(target.Addresses))
	}

	return tree, nil
}

// seedDefaults constructs the fixed skeleton every document starts from.
func seedDefaults(tree *doctree.Tree) error {
	defaults := []struct {
		path  string
		value string
	}{
		{"global.scrape_interval", DefaultScrapeInterval},
		{"global.scrape_timeout", DefaultScrapeTimeout},
		{"global.external_labels.monitor", DefaultMonitorLabel},
	}
	for _, d := range defaults {
		if err := tree.SetValue(doctree.MustParsePath(d.path), cty.StringVal(d.value)); err != nil {
			return err
		}
	}

	ruleFiles := doctree.MustParsePath("rule_files")
	if err := tree.SetNode(ruleFiles, doctree.NewSequence()); err != nil {
		return err
	}
	return tree.Append(ruleFiles, doctree.NewScalar(cty.StringVal(DefaultRuleFilesGlob)))
}

// buildJobBlock renders one target declaration into a standalone job block:
// {job_name, static_configs: [{targets: [...]}]} plus the target's own
// options folded in under the same merge policy.
func buildJobBlock(target *TargetDeclaration) (*doctree.Node, error) {
	block := doctree.New()

	if err := block.SetValue(doctree.MustParsePath("job_name"), cty.StringVal(target.JobName())); err != nil {
		return nil, err
	}
	if err := block.SetNode(doctree.MustParsePath("static_configs.0.targets"), doctree.NewStringSequence(target.Addresses...)); err != nil {
		return nil, err
	}

	for _, entry := range target.Options {
		if err := ApplyOption(block, entry); err != nil {
			return nil, err
		}
	}
	return block.Root(), nil
}

// appendJob appends a finished job block to the top-level scrape_configs
// list, creating the list on first use.
func appendJob(tree *doctree.Tree, job *doctree.Node) error {
	if !tree.Contains(scrapeConfigsPath) {
		if err := tree.SetNode(scrapeConfigsPath, doctree.NewSequence()); err != nil {
			return err
		}
	}
	return tree.Append(scrapeConfigsPath, job)
}
