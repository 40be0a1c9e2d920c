package hclcfg

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/autometrics-dev/render-prometheus/internal/ctxlog"
	"github.com/autometrics-dev/render-prometheus/internal/doctree"
	"github.com/autometrics-dev/render-prometheus/internal/fsutil"
	"github.com/autometrics-dev/render-prometheus/internal/promcfg"
)

// Overlay is everything an HCL overlay contributes to one assembly run.
type Overlay struct {
	GlobalOptions []promcfg.OptionEntry
	Targets       []*promcfg.TargetDeclaration
}

// Options are accepted in two spellings at both the top level and inside a
// target: a bare `options { ... }` block, or an `options = { ... }` map
// attribute. Only the map form can carry quoted dotted keys, since block
// attribute names must be plain identifiers.
var (
	rootSchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "options"},
		},
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "options"},
			{Type: "target", LabelNames: []string{"name"}},
		},
	}

	targetSchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "addresses", Required: true},
			{Name: "options"},
		},
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "options"},
		},
	}
)

// Loader parses overlay files into assembly inputs.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new overlay loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads one .hcl file, or every .hcl file under a directory, and merges
// the declared options and targets in file order. HCL diagnostics surface as
// plain errors; address validation follows the same rules as environment
// input.
func (l *Loader) Load(ctx context.Context, path string) (*Overlay, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.findFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Overlay files discovered.", "count", len(files))

	overlay := &Overlay{}
	for _, file := range files {
		if err := l.loadFile(file, overlay); err != nil {
			return nil, err
		}
	}

	logger.Debug("Overlay loaded.", "targets", len(overlay.Targets), "global_options", len(overlay.GlobalOptions))
	return overlay, nil
}

func (l *Loader) findFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("overlay path %q: %w", path, err)
	}
	if info.IsDir() {
		return fsutil.FindFilesByExtension(path, ".hcl")
	}
	return []string{path}, nil
}

func (l *Loader) loadFile(file string, overlay *Overlay) error {
	hclFile, diags := l.parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse overlay file %s: %w", file, diags)
	}

	content, diags := hclFile.Body.Content(rootSchema)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode overlay file %s: %w", file, diags)
	}

	if attr, ok := content.Attributes["options"]; ok {
		entries, err := optionEntries(attr.Expr, true)
		if err != nil {
			return fmt.Errorf("overlay file %s: %w", file, err)
		}
		overlay.GlobalOptions = append(overlay.GlobalOptions, entries...)
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "options":
			entries, err := blockEntries(block.Body, true)
			if err != nil {
				return fmt.Errorf("overlay file %s: %w", file, err)
			}
			overlay.GlobalOptions = append(overlay.GlobalOptions, entries...)

		case "target":
			decl, err := translateTarget(block)
			if err != nil {
				return fmt.Errorf("overlay file %s: %w", file, err)
			}
			overlay.Targets = append(overlay.Targets, decl)
		}
	}
	return nil
}

// translateTarget converts a target block into a validated declaration.
func translateTarget(block *hcl.Block) (*promcfg.TargetDeclaration, error) {
	name := block.Labels[0]

	content, diags := block.Body.Content(targetSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("target %q: %w", name, diags)
	}

	var addresses []string
	if diags := gohcl.DecodeExpression(content.Attributes["addresses"].Expr, nil, &addresses); diags.HasErrors() {
		return nil, fmt.Errorf("target %q: %w", name, diags)
	}

	var options []promcfg.OptionEntry
	if attr, ok := content.Attributes["options"]; ok {
		entries, err := optionEntries(attr.Expr, false)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", name, err)
		}
		options = append(options, entries...)
	}
	for _, inner := range content.Blocks {
		entries, err := blockEntries(inner.Body, false)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", name, err)
		}
		options = append(options, entries...)
	}

	return promcfg.NewTargetDeclaration(name, addresses, options)
}

// optionEntries converts an `options = { ... }` map expression into option
// entries in source order. Map keys may be bare identifiers or quoted dotted
// paths; in a global map a bare key lands under global.<key> unless it names
// a known top-level field.
func optionEntries(expr hcl.Expression, global bool) ([]promcfg.OptionEntry, error) {
	// An absent optional attribute can decode as a null literal rather than
	// a nil expression; treat that as no options.
	if v, diags := expr.Value(nil); !diags.HasErrors() && v.IsNull() {
		return nil, nil
	}

	pairs, diags := hcl.ExprMap(expr)
	if diags.HasErrors() {
		return nil, fmt.Errorf("options must be a map of scalars: %w", diags)
	}

	entries := make([]promcfg.OptionEntry, 0, len(pairs))
	for _, pair := range pairs {
		key, err := rawString(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("option key: %w", err)
		}
		value, err := rawString(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", key, err)
		}
		entry, err := optionEntry(key, value, global)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// blockEntries converts an `options { ... }` block body into option entries.
// HCL hands block attributes back as a map, so source order is recovered from
// the attribute ranges before folding.
func blockEntries(body hcl.Body, global bool) ([]promcfg.OptionEntry, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("options block: %w", diags)
	}

	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start.Byte < sorted[j].Range.Start.Byte
	})

	entries := make([]promcfg.OptionEntry, 0, len(sorted))
	for _, attr := range sorted {
		value, err := rawString(attr.Expr)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", attr.Name, err)
		}
		entry, err := optionEntry(attr.Name, value, global)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// optionEntry parses a key into a path, prefixing bare keys with global.
// when the entry comes from the global options map.
func optionEntry(key, raw string, global bool) (promcfg.OptionEntry, error) {
	path, err := doctree.ParsePath(key)
	if err != nil {
		return promcfg.OptionEntry{}, promcfg.Validation(key, "option key is not a valid path: %v", err)
	}
	if global && len(path) == 1 && !path.Tail().IsIndex() && !topLevelKey(path.Tail().Key) {
		path = doctree.Path{doctree.NewKeySegment("global"), path.Tail()}
	}
	return promcfg.OptionEntry{Path: path, Raw: raw}, nil
}

// topLevelKey reports whether a bare global option key already names a
// top-level document field and should not be nested under global.
func topLevelKey(key string) bool {
	switch key {
	case "rule_files", "scrape_configs", "alerting":
		return true
	default:
		return false
	}
}

// rawString evaluates a literal expression down to the raw string form the
// coercion layer expects. Strings pass through untouched; numbers and
// booleans stringify, and coercion later recovers their type.
func rawString(expr hcl.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("expression is not a literal: %w", diags)
	}
	if val.IsNull() {
		return "", fmt.Errorf("expression is null")
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("value is not a scalar: %w", err)
	}
	return str.AsString(), nil
}
