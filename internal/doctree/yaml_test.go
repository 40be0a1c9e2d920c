package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

func TestTree_YAML(t *testing.T) {
	t.Parallel()

	tree := New()
	require.NoError(t, tree.SetValue(MustParsePath("global.scrape_interval"), cty.StringVal("15s")))
	require.NoError(t, tree.SetValue(MustParsePath("global.honor_labels"), cty.True))
	require.NoError(t, tree.SetValue(MustParsePath("global.sample_limit"), cty.NumberIntVal(5000)))
	require.NoError(t, tree.SetValue(MustParsePath("global.ratio"), cty.NumberFloatVal(0.5)))
	require.NoError(t, tree.SetNode(MustParsePath("rule_files"), NewStringSequence("/etc/prometheus/*.rules")))

	data, err := tree.YAML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	global, ok := decoded["global"].(map[string]any)
	require.True(t, ok, "global must decode as a mapping")
	assert.Equal(t, "15s", global["scrape_interval"])
	assert.Equal(t, true, global["honor_labels"])
	assert.Equal(t, 5000, global["sample_limit"])
	assert.Equal(t, 0.5, global["ratio"])
	assert.Equal(t, []any{"/etc/prometheus/*.rules"}, decoded["rule_files"])
}

// TestTree_YAML_StringTyping verifies that strings whose spelling collides
// with another YAML type stay strings on the wire.
func TestTree_YAML_StringTyping(t *testing.T) {
	t.Parallel()

	tree := New()
	require.NoError(t, tree.SetValue(MustParsePath("a"), cty.StringVal("true")))
	require.NoError(t, tree.SetValue(MustParsePath("b"), cty.StringVal("42")))

	data, err := tree.YAML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "true", decoded["a"])
	assert.Equal(t, "42", decoded["b"])
}

// TestTree_YAML_KeyOrder verifies mapping keys serialize in insertion order,
// keeping rendered documents diffable across runs.
func TestTree_YAML_KeyOrder(t *testing.T) {
	t.Parallel()

	tree := New()
	for _, key := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, tree.SetValue(Path{NewKeySegment(key)}, cty.StringVal("v")))
	}

	data, err := tree.YAML()
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Len(t, doc.Content, 1)
	mapping := doc.Content[0]
	require.Equal(t, yaml.MappingNode, mapping.Kind)

	var keys []string
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}
