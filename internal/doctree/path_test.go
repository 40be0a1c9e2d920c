package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected Path
	}{
		{
			name:     "single key",
			raw:      "global",
			expected: Path{NewKeySegment("global")},
		},
		{
			name:     "nested keys",
			raw:      "global.external_labels.monitor",
			expected: Path{NewKeySegment("global"), NewKeySegment("external_labels"), NewKeySegment("monitor")},
		},
		{
			name:     "index segment",
			raw:      "static_configs.0.targets",
			expected: Path{NewKeySegment("static_configs"), NewIndexSegment(0), NewKeySegment("targets")},
		},
		{
			name:     "multi digit index",
			raw:      "a.15",
			expected: Path{NewKeySegment("a"), NewIndexSegment(15)},
		},
		{
			name:     "negative number is a key",
			raw:      "a.-1",
			expected: Path{NewKeySegment("a"), NewKeySegment("-1")},
		},
		{
			name:     "hyphenated key",
			raw:      "front-end.scheme",
			expected: Path{NewKeySegment("front-end"), NewKeySegment("scheme")},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path, err := ParsePath(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, path)
		})
	}
}

func TestParsePath_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", ".", "a..b", ".a", "a."} {
		raw := raw
		t.Run("raw="+raw, func(t *testing.T) {
			t.Parallel()
			_, err := ParsePath(raw)
			require.ErrorIs(t, err, ErrBadPath)
		})
	}
}

func TestPath_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"a", "a.b.c", "scrape_configs.0.static_configs.0.targets"} {
		raw := raw
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			path, err := ParsePath(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, path.String())
		})
	}
}

func TestPath_Tail(t *testing.T) {
	t.Parallel()

	path := MustParsePath("a.b.rule_files")
	assert.Equal(t, NewKeySegment("rule_files"), path.Tail())
	assert.False(t, path.Tail().IsIndex())

	indexed := MustParsePath("a.3")
	assert.True(t, indexed.Tail().IsIndex())
	assert.Equal(t, 3, indexed.Tail().Index)
}

func TestPath_Child(t *testing.T) {
	t.Parallel()

	base := MustParsePath("scrape_configs")
	child := base.Child("job_name")
	assert.Equal(t, "scrape_configs.job_name", child.String())
	// The parent path must not be aliased by the extension.
	assert.Equal(t, "scrape_configs", base.String())
}
