package promcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	entries, err := ParseOptions("global.scrape_interval=3s;scheme=https")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "global.scrape_interval", entries[0].Path.String())
	assert.Equal(t, "3s", entries[0].Raw)
	assert.Equal(t, "scheme", entries[1].Path.String())
	assert.Equal(t, "https", entries[1].Raw)
}

func TestParseOptions_SplitsOnFirstEqualsOnly(t *testing.T) {
	t.Parallel()

	entries, err := ParseOptions("params.match[]=up=1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "up=1", entries[0].Raw)
}

func TestParseOptions_EmptyAndTrailing(t *testing.T) {
	t.Parallel()

	entries, err := ParseOptions("")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = ParseOptions("a=1;;b=2;")
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestParseOptions_Malformed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
	}{
		{name: "no equals", raw: "justakey"},
		{name: "empty key", raw: "=value"},
		{name: "bad path", raw: "a..b=value"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseOptions(tc.raw)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestParseOptions_ValueMayBeEmpty(t *testing.T) {
	t.Parallel()

	entries, err := ParseOptions("label=")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Raw)
}
