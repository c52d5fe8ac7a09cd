package schema

import (
	"testing"

	"github.com/jasal82/cconfig/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `
title required (string);
server required (group)
{
   port required default = 8080 (int);
   ratio optional (float);
   enabled (bool);
   tags (array) { (string) };
   endpoints min = 1 (list)
   {
      (group)
      {
         host required (string);
         weight optional (int);
      }
   };
};
`

func TestParseSchema(t *testing.T) {
	s, err := Parse(sampleSchema)
	require.NoError(t, err)

	root := s.Root()
	assert.Equal(t, []string{"server", "title"}, root.ChildNames())

	title, ok := root.Child("title").(*AtomNode)
	require.True(t, ok)
	assert.Equal(t, config.StringKind, title.Type())
	assert.True(t, title.Required())

	server, ok := root.Child("server").(*GroupNode)
	require.True(t, ok)
	assert.True(t, server.Required())

	port, ok := server.Child("port").(*AtomNode)
	require.True(t, ok)
	assert.Equal(t, config.IntKind, port.Type())
	assert.True(t, port.Required())
	def, err := Attr[int64](port, "default")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), def)

	ratio, ok := server.Child("ratio").(*AtomNode)
	require.True(t, ok)
	assert.Equal(t, config.FloatKind, ratio.Type())
	assert.False(t, ratio.Required())

	// No flag means optional.
	enabled := server.Child("enabled")
	require.NotNil(t, enabled)
	assert.False(t, enabled.Required())

	tags, ok := server.Child("tags").(*ListNode)
	require.True(t, ok)
	elem, ok := tags.Elem().(*AtomNode)
	require.True(t, ok)
	assert.Equal(t, config.StringKind, elem.Type())

	endpoints, ok := server.Child("endpoints").(*ListNode)
	require.True(t, ok)
	min, err := Attr[int64](endpoints, "min")
	require.NoError(t, err)
	assert.Equal(t, int64(1), min)

	endpoint, ok := endpoints.Elem().(*GroupNode)
	require.True(t, ok)
	assert.Equal(t, []string{"host", "weight"}, endpoint.ChildNames())
	assert.True(t, endpoint.Child("host").Required())
}

func TestParseSchemaAttributes(t *testing.T) {
	s, err := Parse(`v label = "speed" scale = 0.5 signed = true (int);`)
	require.NoError(t, err)

	n := s.Root().Child("v")
	require.NotNil(t, n)

	label, err := Attr[string](n, "label")
	require.NoError(t, err)
	assert.Equal(t, "speed", label)

	scale, err := Attr[float64](n, "scale")
	require.NoError(t, err)
	assert.Equal(t, 0.5, scale)

	signed, err := Attr[bool](n, "signed")
	require.NoError(t, err)
	assert.True(t, signed)
}

func TestParseSchemaErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains string
	}{
		{"unknown type", `v (number);`, `unknown type "number"`},
		{"duplicate declaration", `v (int); v (string);`, `duplicate declaration "v"`},
		{"missing semicolon", `v (int)`, "expected ';'"},
		{"empty group", `g (group) { };`, "group type must declare at least one member"},
		{"two list elements", `l (list) { (int) (string) };`, "list type takes exactly one element type"},
		{"array of groups", `a (array) { (group) };`, "array element type must be primitive"},
		{"duplicate attribute", `v min = 1 min = 2 (int);`, `duplicate attribute "min"`},
		{"non-literal attribute", `v min = x (int);`, "expected literal attribute value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Contains(t, pe.Message, tt.contains)
		})
	}
}

func TestParseSchemaErrorPosition(t *testing.T) {
	_, err := Parse("a (int);\nb (number);\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}
