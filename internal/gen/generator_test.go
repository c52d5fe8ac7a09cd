package gen

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/jasal82/cconfig/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wrapperSchema = `
title required (string);
server required (group)
{
   port required default = 8080 (int);
   ratio default = 0.5 (float);
   name default = "web" (string);
   enabled default = false (bool);
   tags (array) { (string) };
   endpoints min = 1 (list)
   {
      (group)
      {
         host required (string);
         weight (int);
      }
   };
};
`

func generateFixture(t *testing.T, opts Options) string {
	t.Helper()
	s, err := schema.Parse(wrapperSchema)
	require.NoError(t, err)
	src, err := GenerateWrapper(s, opts)
	require.NoError(t, err)
	return string(src)
}

func TestGenerateWrapperDeclarations(t *testing.T) {
	src := generateFixture(t, Options{Package: "appconfig", SchemaFile: "app.schema"})

	assert.Contains(t, src, "// Code generated by cconfig from app.schema. DO NOT EDIT.")
	assert.Contains(t, src, "package appconfig")

	// One aggregate type per group and list, named by safe URI.
	assert.Contains(t, src, "type Config struct {")
	assert.Contains(t, src, "type Group_server struct {")
	assert.Contains(t, src, "type Group_server_endpoints_unnamed struct {")
	assert.Contains(t, src, "type List_server_tags []string")
	assert.Contains(t, src, "type List_server_endpoints []Group_server_endpoints_unnamed")

	// Exported fields keep the setting key, capitalized. Field columns are
	// gofmt-aligned, so match with flexible spacing.
	assert.Regexp(t, `Title\s+string`, src)
	assert.Regexp(t, `Server\s+Group_server`, src)
	assert.Regexp(t, `Port\s+int64`, src)
	assert.Regexp(t, `Endpoints\s+List_server_endpoints`, src)

	// Constructors apply declared defaults.
	assert.Regexp(t, `Port:\s+8080,`, src)
	assert.Regexp(t, `Ratio:\s+0\.5,`, src)
	assert.Regexp(t, `Name:\s+"web",`, src)

	// Extraction functions and entry points.
	assert.Contains(t, src, "func extractConfig(e config.Element, n schema.Node) (Config, error)")
	assert.Contains(t, src, "func extractGroup_server(")
	assert.Contains(t, src, "func extractList_server_endpoints(")
	assert.Contains(t, src, "func GenerateSchema() *schema.Schema")
	assert.Contains(t, src, "func LoadConfig(path string) (Config, error)")
}

func TestGenerateWrapperTreeBuilder(t *testing.T) {
	src := generateFixture(t, Options{Package: "appconfig", SchemaFile: "app.schema"})

	assert.Contains(t, src, "schema.NewGroupNode()")
	assert.Contains(t, src, "schema.NewListNode()")
	assert.Contains(t, src, "schema.NewAtomNode(config.IntKind)")
	assert.Contains(t, src, `AddAttribute("default", schema.IntAttr(8080))`)
	assert.Contains(t, src, `AddAttribute("min", schema.IntAttr(1))`)
	assert.Contains(t, src, `AddChild("server", var`)
}

func TestGenerateWrapperRevisionStamp(t *testing.T) {
	src := generateFixture(t, Options{
		Package:    "appconfig",
		SchemaFile: "app.schema",
		Revision:   "3f2a9c1d (main)",
	})
	assert.Contains(t, src, "// Schema revision: 3f2a9c1d (main)")

	src = generateFixture(t, Options{Package: "appconfig", SchemaFile: "app.schema"})
	assert.NotContains(t, src, "Schema revision")
}

func TestGenerateWrapperIsValidGo(t *testing.T) {
	src := generateFixture(t, Options{Package: "appconfig", SchemaFile: "app.schema"})

	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "wrapper.go", src, 0)
	require.NoError(t, err)
}

func TestGenerateWrapperEmptySchema(t *testing.T) {
	s := schema.New()
	s.SetRoot(schema.NewGroupNode())

	src, err := GenerateWrapper(s, Options{Package: "appconfig", SchemaFile: "empty.schema"})
	require.NoError(t, err)

	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "wrapper.go", string(src), 0)
	require.NoError(t, err)
	assert.Contains(t, string(src), "type Config struct")
}

func TestGenerateWrapperRejectsFieldNameCollision(t *testing.T) {
	tests := []struct {
		name   string
		source string
		field  string
	}{
		{name: "case-folded siblings", source: "port (int);\nPort (string);", field: "Port"},
		{name: "underscore prefix siblings", source: "_x (int);\nX_x (string);", field: "X_x"},
		{name: "nested group siblings", source: "server (group)\n{\n   port (int);\n   Port (string);\n};", field: "Port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := schema.Parse(tt.source)
			require.NoError(t, err)

			_, err = GenerateWrapper(s, Options{Package: "appconfig", SchemaFile: "dup.schema"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "both map to struct field "+tt.field)
		})
	}
}

func TestGenerateWrapperRejectsBadDefault(t *testing.T) {
	s, err := schema.Parse(`v default = "oops" (int);`)
	require.NoError(t, err)

	_, err = GenerateWrapper(s, Options{Package: "appconfig", SchemaFile: "bad.schema"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad default for /v")
}
