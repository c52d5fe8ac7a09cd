package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []PathToken
	}{
		{
			name:     "single name",
			path:     "server",
			expected: []PathToken{NameToken("server")},
		},
		{
			name:     "dotted names",
			path:     "server.network.port",
			expected: []PathToken{NameToken("server"), NameToken("network"), NameToken("port")},
		},
		{
			name:     "name with index",
			path:     "servers[2]",
			expected: []PathToken{NameToken("servers"), IndexToken(2)},
		},
		{
			name: "mixed names and indices",
			path: "a.b[2][0].c",
			expected: []PathToken{
				NameToken("a"), NameToken("b"), IndexToken(2), IndexToken(0), NameToken("c"),
			},
		},
		{
			name:     "underscore identifier",
			path:     "_internal.value_1",
			expected: []PathToken{NameToken("_internal"), NameToken("value_1")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := SplitPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestSplitPathErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"double dot", "a..b", "subsequent path separators found in config path (a..b)"},
		{"leading dot", ".a", "subsequent path separators found in config path (.a)"},
		{"trailing dot", "a.", "subsequent path separators found in config path (a.)"},
		{"empty index", "a[]", "subsequent path separators found in config path (a[])"},
		{"bad token", "a.b-c", "failed to parse config path (a.b-c) at token b-c"},
		{"digit-leading name", "a.1b", "failed to parse config path (a.1b) at token 1b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitPath(tt.path)
			require.Error(t, err)
			assert.True(t, IsLookupError(err))
			assert.EqualError(t, err, tt.expected)
		})
	}
}

func TestJoinPath(t *testing.T) {
	paths := []string{
		"server",
		"server.network.port",
		"servers[2]",
		"a.b[2][0].c",
	}

	for _, path := range paths {
		tokens, err := SplitPath(path)
		require.NoError(t, err)
		assert.Equal(t, path, JoinPath(tokens))
	}
}
