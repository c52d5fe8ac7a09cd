package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Render formats an element tree back into configuration syntax. Groups are
// emitted in sorted key order, so rendering is deterministic; parsing the
// output yields an equal tree.
func Render(root *Group) string {
	var b strings.Builder
	for _, key := range root.Keys() {
		child, _ := root.Get(key)
		renderDefinition(&b, key, child, 0)
	}
	return b.String()
}

func renderDefinition(b *strings.Builder, key string, e Element, indent int) {
	renderIndent(b, indent)
	if g, ok := e.(*Group); ok {
		b.WriteString(key)
		b.WriteString(" {\n")
		for _, k := range g.Keys() {
			child, _ := g.Get(k)
			renderDefinition(b, k, child, indent+1)
		}
		renderIndent(b, indent)
		b.WriteString("}\n")
		return
	}
	b.WriteString(key)
	b.WriteString(" = ")
	renderValue(b, e, indent)
	b.WriteString(";\n")
}

func renderValue(b *strings.Builder, e Element, indent int) {
	switch v := e.(type) {
	case *Atom:
		b.WriteString(renderAtom(v))
	case *List:
		if isArray(v) {
			renderArray(b, v)
			return
		}
		renderList(b, v, indent)
	case *Group:
		b.WriteString("{\n")
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			renderDefinition(b, k, child, indent+1)
		}
		renderIndent(b, indent)
		b.WriteString("}")
	}
}

// isArray reports whether a list can round-trip through array syntax: all
// elements are atoms of one primitive kind, and there is at least one. Empty
// and mixed lists use the general "( ... )" form.
func isArray(l *List) bool {
	if l.Empty() {
		return false
	}
	var kind ValueKind
	for i := 0; i < l.Len(); i++ {
		e, _ := l.Get(i)
		a, ok := e.(*Atom)
		if !ok {
			return false
		}
		if i == 0 {
			kind = a.Type()
		} else if a.Type() != kind {
			return false
		}
	}
	return true
}

func renderArray(b *strings.Builder, l *List) {
	b.WriteString("[")
	for i := 0; i < l.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		e, _ := l.Get(i)
		b.WriteString(renderAtom(e.(*Atom)))
	}
	b.WriteString("]")
}

func renderList(b *strings.Builder, l *List, indent int) {
	if l.Empty() {
		b.WriteString("()")
		return
	}
	b.WriteString("(\n")
	for i := 0; i < l.Len(); i++ {
		e, _ := l.Get(i)
		renderIndent(b, indent+1)
		renderValue(b, e, indent+1)
		if i < l.Len()-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	renderIndent(b, indent)
	b.WriteString(")")
}

func renderAtom(a *Atom) string {
	switch a.Type() {
	case BoolKind:
		return strconv.FormatBool(a.b)
	case IntKind:
		return strconv.FormatInt(a.i, 10)
	case FloatKind:
		s := strconv.FormatFloat(a.f, 'g', -1, 64)
		// Keep a float mark so the value parses back as a float.
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	default:
		return quoteString(a.s)
	}
}

// quoteString renders a string literal using only the escape sequences the
// grammar defines.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '\b':
			b.WriteString(`\b`)
		default:
			if r < 0x20 {
				b.WriteString(fmt.Sprintf(`\u%04x`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func renderIndent(b *strings.Builder, n int) {
	b.WriteString(strings.Repeat("   ", n))
}
