package gen

import (
	"testing"

	"github.com/jasal82/cconfig/pkg/config"
	"github.com/jasal82/cconfig/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStub(t *testing.T) {
	s, err := schema.Parse(`
title required (string);
server required (group)
{
   port required (int);
   ratio (float);
   enabled (bool);
   tags (array) { (string) };
   endpoints (list)
   {
      (group)
      {
         host required (string);
      }
   };
};
`)
	require.NoError(t, err)

	stub := GenerateStub(s)

	assert.Contains(t, stub, `title = "";`)
	assert.Contains(t, stub, "port = 0;")
	assert.Contains(t, stub, "ratio = 0.0;")
	assert.Contains(t, stub, "enabled = false;")
	assert.Contains(t, stub, `tags = [""];`)
	// A group-shaped list gets one element skeleton inside parentheses.
	assert.Contains(t, stub, "endpoints = (")
	assert.Contains(t, stub, `host = "";`)
}

func TestStubValidatesAgainstItsSchema(t *testing.T) {
	schemas := []string{
		`v required (int);`,
		`g required (group) { a required (string); b (bool); };`,
		`a (array) { (float) };`,
		`l (list) { (group) { x required (int); } };`,
		`outer (group) { inner (group) { deep (list) { (array) { (int) } }; }; };`,
	}

	for _, src := range schemas {
		s, err := schema.Parse(src)
		require.NoError(t, err)

		stub := GenerateStub(s)
		f, err := config.Parse(stub)
		require.NoError(t, err, "stub does not parse:\n%s", stub)

		r := s.Validate(f, false)
		assert.True(t, r.Valid, "stub invalid at %s: %s\n%s", r.URI, r.Message, stub)
	}
}
