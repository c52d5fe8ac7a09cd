package schema

import (
	"sort"
	"strings"

	"github.com/jasal82/cconfig/pkg/config"
)

// AttrValue is a free-form schema attribute value: one of int64, bool,
// float64 or string.
type AttrValue struct {
	kind config.ValueKind
	b    bool
	i    int64
	f    float64
	s    string
}

// IntAttr returns an integer attribute value.
func IntAttr(v int64) AttrValue { return AttrValue{kind: config.IntKind, i: v} }

// BoolAttr returns a boolean attribute value.
func BoolAttr(v bool) AttrValue { return AttrValue{kind: config.BoolKind, b: v} }

// FloatAttr returns a float attribute value.
func FloatAttr(v float64) AttrValue { return AttrValue{kind: config.FloatKind, f: v} }

// StringAttr returns a string attribute value.
func StringAttr(v string) AttrValue { return AttrValue{kind: config.StringKind, s: v} }

// Kind returns the primitive kind of the attribute value.
func (v AttrValue) Kind() config.ValueKind { return v.kind }

// Node is a single node of a schema tree, mirroring the element tree's
// group/list/atom shape but describing types and constraints instead of
// values. The variant set is closed: a Node is always a *GroupNode,
// *ListNode or *AtomNode.
type Node interface {
	// Kind returns the shape this node validates against.
	Kind() config.Kind

	// Name returns the name assigned by the parent group at attach time;
	// list children and the root remain unnamed.
	Name() string

	// Required reports whether this node (or, for groups, something inside
	// it) must be present for validation to pass.
	Required() bool

	// Parent returns the non-owning back-reference to the parent node, used
	// only for URI reconstruction; nil on the root.
	Parent() Node

	// HasAttribute reports whether the named attribute is set.
	HasAttribute(name string) bool

	// AddAttribute sets a free-form attribute such as "default" or "min".
	AddAttribute(name string, value AttrValue)

	// Validate recursively checks element e against this schema subtree.
	Validate(e config.Element, strict bool) Result

	// common exposes the shared node state and seals the interface.
	common() *nodeCommon
}

// nodeCommon carries the state shared by all schema node variants. Name,
// parent and the propagated required flag are unknown until the node is
// attached to its parent, because schema trees are built bottom-up.
type nodeCommon struct {
	name     string
	required bool
	parent   Node
	attrs    map[string]AttrValue
}

func (c *nodeCommon) Name() string   { return c.name }
func (c *nodeCommon) Required() bool { return c.required }
func (c *nodeCommon) Parent() Node   { return c.parent }

func (c *nodeCommon) common() *nodeCommon { return c }

func (c *nodeCommon) HasAttribute(name string) bool {
	_, ok := c.attrs[name]
	return ok
}

func (c *nodeCommon) AddAttribute(name string, value AttrValue) {
	if c.attrs == nil {
		c.attrs = make(map[string]AttrValue)
	}
	c.attrs[name] = value
}

// attrNames returns the attribute names in sorted order.
func (c *nodeCommon) attrNames() []string {
	names := make([]string, 0, len(c.attrs))
	for n := range c.attrs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Attr retrieves a typed attribute from a node. A missing attribute or a
// request for the wrong type is a SchemaError: a defect in the schema
// definition, not a validation outcome.
func Attr[T config.Scalar](n Node, name string) (T, error) {
	var zero T
	v, ok := n.common().attrs[name]
	if !ok {
		return zero, schemaErrorf("attribute not found (%s)", name)
	}
	switch p := any(&zero).(type) {
	case *bool:
		if v.kind != config.BoolKind {
			return zero, schemaErrorf("invalid conversion requested for attribute %s (stored kind is %s)", name, v.kind)
		}
		*p = v.b
	case *int64:
		if v.kind != config.IntKind {
			return zero, schemaErrorf("invalid conversion requested for attribute %s (stored kind is %s)", name, v.kind)
		}
		*p = v.i
	case *float64:
		if v.kind != config.FloatKind {
			return zero, schemaErrorf("invalid conversion requested for attribute %s (stored kind is %s)", name, v.kind)
		}
		*p = v.f
	case *string:
		if v.kind != config.StringKind {
			return zero, schemaErrorf("invalid conversion requested for attribute %s (stored kind is %s)", name, v.kind)
		}
		*p = v.s
	}
	return zero, nil
}

// Attributes returns a node's attributes keyed by name; the map is a copy.
// The generator uses this to rebuild attribute sets in emitted code.
func Attributes(n Node) map[string]AttrValue {
	src := n.common().attrs
	out := make(map[string]AttrValue, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// GroupNode describes a group: a set of named child schemas.
type GroupNode struct {
	nodeCommon
	children map[string]Node
}

// NewGroupNode returns an empty group schema node.
func NewGroupNode() *GroupNode {
	return &GroupNode{children: make(map[string]Node)}
}

func (g *GroupNode) Kind() config.Kind { return config.KindGroup }

// AddChild attaches n under name. The child's name and parent are assigned
// here because bottom-up construction means they are unknown earlier. The
// required flag propagates upward: if the attachment is explicitly required,
// or the child already carries required-ness inherited from its own
// descendants, both the child and this group are marked required. A group
// marked required this way means "this group or something inside it is
// mandatory".
func (g *GroupNode) AddChild(name string, n Node, required bool) {
	g.children[name] = n
	c := n.common()
	c.name = name
	c.parent = g
	if required || c.required {
		c.required = true
		g.required = true
	}
}

// Child returns the child schema stored under name, or nil.
func (g *GroupNode) Child(name string) Node {
	return g.children[name]
}

// ChildNames returns the child names in sorted order.
func (g *GroupNode) ChildNames() []string {
	names := make([]string, 0, len(g.children))
	for n := range g.children {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ListNode describes a homogeneous list: every element of a matching
// configuration list validates against the single element schema. This is a
// deliberate schema-language limitation: a configuration list mixing element
// kinds can never validate against any list schema.
type ListNode struct {
	nodeCommon
	elem Node
}

// NewListNode returns a list schema node with no element schema yet.
func NewListNode() *ListNode {
	return &ListNode{}
}

func (l *ListNode) Kind() config.Kind { return config.KindList }

// SetElem installs the single element schema, replacing any previous one.
// The schema parser guarantees exactly one element type per list.
func (l *ListNode) SetElem(n Node) {
	l.elem = n
	n.common().parent = l
}

// Elem returns the element schema, or nil if none was set.
func (l *ListNode) Elem() Node { return l.elem }

// AtomNode describes a leaf value of a fixed primitive kind.
type AtomNode struct {
	nodeCommon
	typ config.ValueKind
}

// NewAtomNode returns an atom schema node expecting the given primitive kind.
func NewAtomNode(typ config.ValueKind) *AtomNode {
	return &AtomNode{typ: typ}
}

func (a *AtomNode) Kind() config.Kind { return config.KindAtom }

// Type returns the expected primitive kind.
func (a *AtomNode) Type() config.ValueKind { return a.typ }

// URI reconstructs the slash-joined path from the schema root to n by
// walking parent links. The root renders as "/", list nodes carry a "[]"
// suffix and unnamed non-root nodes render as "unnamed". URIs are purely
// diagnostic: they locate validation failures and seed generated-code
// identifiers.
func URI(n Node) string {
	if n.Parent() == nil {
		return "/"
	}
	var parts []string
	for cur := n; cur != nil; cur = cur.Parent() {
		var part string
		switch {
		case cur.Parent() == nil:
			part = ""
		case cur.Name() == "":
			part = "unnamed"
		default:
			part = cur.Name()
		}
		if cur.Kind() == config.KindList {
			part += "[]"
		}
		parts = append([]string{part}, parts...)
	}
	return strings.Join(parts, "/")
}

// URISafe renders n's URI as an identifier fragment: slashes become
// underscores and "[]" suffixes are stripped. Safe URIs are unique per node
// and collision-free, which is what keys all generated declarations.
func URISafe(n Node) string {
	u := strings.ReplaceAll(URI(n), "/", "_")
	return strings.ReplaceAll(u, "[]", "")
}
