package promcfg

import (
	"testing"

	"github.com/autometrics-dev/render-prometheus/internal/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func entry(t *testing.T, key, raw string) OptionEntry {
	t.Helper()
	path, err := doctree.ParsePath(key)
	require.NoError(t, err)
	return OptionEntry{Path: path, Raw: raw}
}

func TestApplyOption_ScalarOverwrite(t *testing.T) {
	t.Parallel()

	tree := doctree.New()
	require.NoError(t, ApplyOption(tree, entry(t, "global.scrape_interval", "15s")))
	require.NoError(t, ApplyOption(tree, entry(t, "global.scrape_interval", "3s")))

	node, err := tree.Get(doctree.MustParsePath("global.scrape_interval"))
	require.NoError(t, err)
	require.Equal(t, doctree.KindScalar, node.Kind())
	assert.True(t, cty.StringVal("3s").RawEquals(node.Value()))
}

func TestApplyOption_DeclaredListAccumulates(t *testing.T) {
	t.Parallel()

	tree := doctree.New()
	require.NoError(t, ApplyOption(tree, entry(t, "rule_files", "one.rules")))
	require.NoError(t, ApplyOption(tree, entry(t, "rule_files", "two.rules")))

	node, err := tree.Get(doctree.MustParsePath("rule_files"))
	require.NoError(t, err)
	require.Equal(t, doctree.KindSequence, node.Kind())
	require.Equal(t, 2, node.Len())
	assert.True(t, cty.StringVal("one.rules").RawEquals(node.Items()[0].Value()))
	assert.True(t, cty.StringVal("two.rules").RawEquals(node.Items()[1].Value()))
}

// TestApplyOption_ExistingListStaysAList covers rule 2: a location that
// already holds a sequence appends even when its tail is not declared
// list-typed.
func TestApplyOption_ExistingListStaysAList(t *testing.T) {
	t.Parallel()

	tree := doctree.New()
	path := doctree.MustParsePath("custom_field")
	require.NoError(t, tree.SetNode(path, doctree.NewSequence()))

	require.NoError(t, ApplyOption(tree, entry(t, "custom_field", "a")))
	require.NoError(t, ApplyOption(tree, entry(t, "custom_field", "b")))

	node, err := tree.Get(path)
	require.NoError(t, err)
	require.Equal(t, doctree.KindSequence, node.Kind())
	assert.Equal(t, 2, node.Len())
}

func TestApplyOption_PopulatedMappingConflicts(t *testing.T) {
	t.Parallel()

	tree := doctree.New()
	require.NoError(t, tree.SetValue(doctree.MustParsePath("global.external_labels.monitor"), cty.StringVal("m")))

	err := ApplyOption(tree, entry(t, "global.external_labels", "oops"))
	require.ErrorIs(t, err, ErrConflict)

	// The nested structure must be untouched after the failed merge.
	node, err := tree.Get(doctree.MustParsePath("global.external_labels.monitor"))
	require.NoError(t, err)
	assert.True(t, cty.StringVal("m").RawEquals(node.Value()))
}

func TestApplyOption_TraversalErrorsPropagate(t *testing.T) {
	t.Parallel()

	tree := doctree.New()
	require.NoError(t, tree.SetValue(doctree.MustParsePath("a.0.b"), cty.StringVal("x")))

	// a is a sequence; a.key is a shape conflict on the way down.
	err := ApplyOption(tree, entry(t, "a.key", "v"))
	require.ErrorIs(t, err, doctree.ErrTypeMismatch)

	// Skipping an index is a contiguity violation.
	err = ApplyOption(tree, entry(t, "a.5.b", "v"))
	require.ErrorIs(t, err, doctree.ErrIndexOutOfRange)
}

func TestApplyOption_CoercesValues(t *testing.T) {
	t.Parallel()

	tree := doctree.New()
	require.NoError(t, ApplyOption(tree, entry(t, "honor_labels", "true")))
	require.NoError(t, ApplyOption(tree, entry(t, "sample_limit", "5000")))
	require.NoError(t, ApplyOption(tree, entry(t, "version", `"2"`)))

	honor, err := tree.Get(doctree.MustParsePath("honor_labels"))
	require.NoError(t, err)
	assert.True(t, cty.True.RawEquals(honor.Value()))

	limit, err := tree.Get(doctree.MustParsePath("sample_limit"))
	require.NoError(t, err)
	assert.True(t, cty.NumberIntVal(5000).RawEquals(limit.Value()))

	version, err := tree.Get(doctree.MustParsePath("version"))
	require.NoError(t, err)
	assert.True(t, cty.StringVal("2").RawEquals(version.Value()))
}

func TestListDeclared(t *testing.T) {
	t.Parallel()

	assert.True(t, listDeclared(doctree.MustParsePath("rule_files")))
	assert.True(t, listDeclared(doctree.MustParsePath("scrape_configs.0.relabel_configs")))
	assert.False(t, listDeclared(doctree.MustParsePath("global.scrape_interval")))
	// An index tail addresses one element, not the list field itself.
	assert.False(t, listDeclared(doctree.MustParsePath("rule_files.0")))
}
