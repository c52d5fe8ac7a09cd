package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFixture(t *testing.T) *Group {
	t.Helper()
	f, err := Parse(`
server {
   port = 8080;
   name = "web";
   hosts = ["a", "b"];
}
`)
	require.NoError(t, err)
	return f.Root()
}

func TestLookupNotFound(t *testing.T) {
	root := lookupFixture(t)

	tests := []struct {
		name string
		path string
	}{
		{"missing key", "server.missing"},
		{"missing group", "client.port"},
		{"index into group", "server[0]"},
		{"key into list", "server.hosts.first"},
		{"index out of range", "server.hosts[5]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lookup[string](root, tt.path)
			require.Error(t, err)
			assert.True(t, IsLookupError(err))
			assert.EqualError(t, err, "config setting not found ("+tt.path+")")
		})
	}
}

func TestLookupCoercionFailure(t *testing.T) {
	root := lookupFixture(t)

	// A present value of the wrong shape is a coercion problem, not a
	// lookup problem.
	_, err := Lookup[int64](root, "server.name")
	require.Error(t, err)
	assert.False(t, IsLookupError(err))
	var ce *CoercionError
	assert.ErrorAs(t, err, &ce)
}

func TestLookupOr(t *testing.T) {
	root := lookupFixture(t)

	port, err := LookupOr[int64](root, "server.port", 1234)
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)

	fallback, err := LookupOr[int64](root, "server.timeout", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(30), fallback)

	malformed, err := LookupOr[int64](root, "server..port", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(30), malformed)

	// Coercion failures must not be papered over by the default.
	_, err = LookupOr[int64](root, "server.name", 30)
	require.Error(t, err)
	assert.False(t, IsLookupError(err))
}

func TestResolveElementKinds(t *testing.T) {
	root := lookupFixture(t)

	e, err := Resolve(root, "server")
	require.NoError(t, err)
	g, err := AsGroup(e)
	require.NoError(t, err)
	assert.True(t, g.Has("port"))

	_, err = AsList(e)
	require.Error(t, err)
	assert.True(t, IsLookupError(err))

	e, err = Resolve(root, "server.hosts")
	require.NoError(t, err)
	l, err := AsList(e)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
}
