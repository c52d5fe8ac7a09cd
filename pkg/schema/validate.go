package schema

import (
	"fmt"

	"github.com/jasal82/cconfig/pkg/config"
)

// Result is the structured outcome of validating an element tree against a
// schema tree. Validation never fails with an error for a data problem; a
// bad configuration yields Valid=false together with the URI of the schema
// node where the first mismatch was found and a human-readable message.
type Result struct {
	Valid   bool
	URI     string
	Message string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(uri, format string, args ...any) Result {
	return Result{URI: uri, Message: fmt.Sprintf(format, args...)}
}

// Validate checks e against this group schema. Each declared child is looked
// up by name in the element: a missing required child fails at this group's
// URI, a missing optional child is skipped, a present child recurses. In
// strict mode every key present in the element must also be declared in the
// schema, which catches typos. Validation is depth-first over sorted child
// names and stops at the first failure.
func (g *GroupNode) Validate(e config.Element, strict bool) Result {
	eg, err := config.AsGroup(e)
	if err != nil {
		return invalid(URI(g), "Group required")
	}

	for _, name := range g.ChildNames() {
		child := g.children[name]
		ce, err := eg.Get(name)
		if err != nil {
			if child.Required() {
				return invalid(URI(g), "Missing required attribute '%s'", name)
			}
			continue
		}
		if r := child.Validate(ce, strict); !r.Valid {
			return r
		}
	}

	if strict {
		for _, key := range eg.Keys() {
			if _, ok := g.children[key]; !ok {
				return invalid(URI(g),
					"Attribute '%s' not found in schema (strict validation). This might possibly be a typo.", key)
			}
		}
	}

	return valid()
}

// Validate checks e against this list schema: e must be a list and every
// element must satisfy the single declared element schema. A "min" attribute
// sets a lower bound on the list length. A mistyped "min" is a defect in the
// schema file itself and panics with a SchemaError rather than producing a
// validation result.
func (l *ListNode) Validate(e config.Element, strict bool) Result {
	el, err := config.AsList(e)
	if err != nil {
		return invalid(URI(l), "List required")
	}

	if l.elem != nil {
		for i := 0; i < el.Len(); i++ {
			ce, err := el.Get(i)
			if err != nil {
				return invalid(URI(l), "List required")
			}
			if r := l.elem.Validate(ce, strict); !r.Valid {
				return r
			}
		}
	}

	if l.HasAttribute("min") {
		min, err := Attr[int64](l, "min")
		if err != nil {
			panic(err)
		}
		if int64(el.Len()) < min {
			return invalid(URI(l), "List has not enough entries, need at least %d", min)
		}
	}

	return valid()
}

// Validate checks e against this atom schema: e must be an atom whose
// runtime kind exactly equals the declared kind. No cross-type coercion
// happens here; an integer value against a float schema is a mismatch even
// though a float lookup would coerce it.
func (a *AtomNode) Validate(e config.Element, strict bool) Result {
	ea, err := config.AsAtom(e)
	if err != nil {
		return invalid(URI(a), "Atom required")
	}
	if ea.Type() != a.typ {
		return invalid(URI(a), "Type mismatch, %s required", a.typ)
	}
	return valid()
}
