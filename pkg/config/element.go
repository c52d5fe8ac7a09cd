package config

import "sort"

// Kind identifies the variant of a configuration element.
type Kind int

const (
	KindGroup Kind = iota
	KindList
	KindAtom
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindList:
		return "list"
	case KindAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// Element is a single node of a parsed configuration tree. The variant set is
// closed: an Element is always a *Group, *List or *Atom. Elements are built
// during parsing and must be treated as read-only afterwards; a fully built
// tree is safe for concurrent readers.
type Element interface {
	// Kind returns the variant tag of this element.
	Kind() Kind

	// sealed prevents implementations outside this package so that switches
	// over the three variants stay exhaustive.
	sealed()
}

// Group is a named mapping of configuration entries. Keys are unique and
// iteration order is the sorted key order, not insertion order.
type Group struct {
	settings map[string]Element
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{settings: make(map[string]Element)}
}

func (g *Group) Kind() Kind { return KindGroup }
func (g *Group) sealed()    {}

// Insert attaches a child element under key. It is intended for parse-time
// construction only; inserting a duplicate key replaces the previous entry.
func (g *Group) Insert(key string, value Element) {
	g.settings[key] = value
}

// Get returns the child stored under key, or a LookupError if absent.
func (g *Group) Get(key string) (Element, error) {
	e, ok := g.settings[key]
	if !ok {
		return nil, lookupErrorf("element not found (%s)", key)
	}
	return e, nil
}

// Has reports whether key is present.
func (g *Group) Has(key string) bool {
	_, ok := g.settings[key]
	return ok
}

// Len returns the number of entries in the group.
func (g *Group) Len() int {
	return len(g.settings)
}

// Keys returns the entry keys in sorted order.
func (g *Group) Keys() []string {
	keys := make([]string, 0, len(g.settings))
	for k := range g.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List is an ordered sequence of configuration elements. A list parsed from a
// general "( ... )" literal may mix element kinds; one parsed from an
// "[ ... ]" array literal is homogeneous.
type List struct {
	settings []Element
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

func (l *List) Kind() Kind { return KindList }
func (l *List) sealed()    {}

// Append adds an element at the end of the list (parse-time construction).
func (l *List) Append(value Element) {
	l.settings = append(l.settings, value)
}

// Get returns the element at index, or a LookupError if out of range.
func (l *List) Get(index int) (Element, error) {
	if index < 0 || index >= len(l.settings) {
		return nil, lookupErrorf("index out of range (%d)", index)
	}
	return l.settings[index], nil
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.settings)
}

// Empty reports whether the list has no elements.
func (l *List) Empty() bool {
	return len(l.settings) == 0
}

// AsGroup narrows e to a group; it fails with a LookupError for any other
// element kind.
func AsGroup(e Element) (*Group, error) {
	g, ok := e.(*Group)
	if !ok {
		return nil, lookupErrorf("config setting is not a group")
	}
	return g, nil
}

// AsList narrows e to a list; it fails with a LookupError for any other
// element kind.
func AsList(e Element) (*List, error) {
	l, ok := e.(*List)
	if !ok {
		return nil, lookupErrorf("config setting is not a list")
	}
	return l, nil
}

// AsAtom narrows e to an atom; it fails with a LookupError for any other
// element kind.
func AsAtom(e Element) (*Atom, error) {
	a, ok := e.(*Atom)
	if !ok {
		return nil, lookupErrorf("config setting is not an atom")
	}
	return a, nil
}

// Child fetches the named entry of e, which must be a group. This is the
// single-step counterpart of Lookup and the primitive used by generated
// wrapper code.
func Child(e Element, key string) (Element, error) {
	g, err := AsGroup(e)
	if err != nil {
		return nil, err
	}
	return g.Get(key)
}

// At fetches the element at index of e, which must be a list.
func At(e Element, index int) (Element, error) {
	l, err := AsList(e)
	if err != nil {
		return nil, err
	}
	return l.Get(index)
}
