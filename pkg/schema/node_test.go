package schema

import (
	"testing"

	"github.com/jasal82/cconfig/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURI(t *testing.T) {
	port := NewAtomNode(config.IntKind)
	server := NewGroupNode()
	server.AddChild("port", port, true)

	hosts := NewListNode()
	hosts.SetElem(NewAtomNode(config.StringKind))
	server.AddChild("hosts", hosts, false)

	endpoints := NewListNode()
	endpoint := NewGroupNode()
	endpoint.AddChild("host", NewAtomNode(config.StringKind), true)
	endpoints.SetElem(endpoint)
	server.AddChild("endpoints", endpoints, false)

	root := NewGroupNode()
	root.AddChild("server", server, false)

	assert.Equal(t, "/", URI(root))
	assert.Equal(t, "/server", URI(server))
	assert.Equal(t, "/server/port", URI(port))
	assert.Equal(t, "/server/hosts[]", URI(hosts))
	assert.Equal(t, "/server/endpoints[]", URI(endpoints))
	// List elements carry no name of their own.
	assert.Equal(t, "/server/endpoints[]/unnamed", URI(endpoint))
}

func TestURISafe(t *testing.T) {
	hosts := NewListNode()
	hosts.SetElem(NewAtomNode(config.StringKind))
	server := NewGroupNode()
	server.AddChild("hosts", hosts, false)
	root := NewGroupNode()
	root.AddChild("server", server, false)

	assert.Equal(t, "_", URISafe(root))
	assert.Equal(t, "_server", URISafe(server))
	assert.Equal(t, "_server_hosts", URISafe(hosts))
}

func TestRequiredPropagation(t *testing.T) {
	// Attaching a required child marks the parent group required too, and
	// that mark keeps propagating when the parent is attached upward, even
	// if every attachment along the way is declared optional.
	leaf := NewAtomNode(config.IntKind)
	inner := NewGroupNode()
	inner.AddChild("leaf", leaf, true)
	assert.True(t, inner.Required())

	outer := NewGroupNode()
	outer.AddChild("inner", inner, false)
	assert.True(t, inner.Required())
	assert.True(t, outer.Required())
}

func TestOptionalSubtreeStaysOptional(t *testing.T) {
	leaf := NewAtomNode(config.IntKind)
	inner := NewGroupNode()
	inner.AddChild("leaf", leaf, false)

	outer := NewGroupNode()
	outer.AddChild("inner", inner, false)

	assert.False(t, leaf.Required())
	assert.False(t, inner.Required())
	assert.False(t, outer.Required())
}

func TestAttr(t *testing.T) {
	n := NewListNode()
	n.SetElem(NewAtomNode(config.IntKind))
	n.AddAttribute("min", IntAttr(2))
	n.AddAttribute("label", StringAttr("ports"))

	min, err := Attr[int64](n, "min")
	require.NoError(t, err)
	assert.Equal(t, int64(2), min)

	label, err := Attr[string](n, "label")
	require.NoError(t, err)
	assert.Equal(t, "ports", label)

	_, err = Attr[int64](n, "max")
	require.Error(t, err)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.EqualError(t, err, "attribute not found (max)")

	_, err = Attr[string](n, "min")
	require.Error(t, err)
	require.ErrorAs(t, err, &se)
	assert.Contains(t, err.Error(), "invalid conversion requested for attribute min")
}

func TestAttributesCopy(t *testing.T) {
	n := NewAtomNode(config.IntKind)
	n.AddAttribute("default", IntAttr(7))

	attrs := Attributes(n)
	require.Len(t, attrs, 1)
	assert.Equal(t, config.IntKind, attrs["default"].Kind())

	// Mutating the copy must not touch the node.
	attrs["extra"] = BoolAttr(true)
	assert.False(t, n.HasAttribute("extra"))
}
