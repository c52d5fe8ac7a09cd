package gen

import (
	"strings"

	"github.com/jasal82/cconfig/pkg/config"
	"github.com/jasal82/cconfig/pkg/schema"
)

// GenerateStub renders a configuration skeleton for a schema: every setting
// appears with a zero-valued placeholder so users can fill in a new
// configuration file without consulting the schema source. The output parses
// back and passes non-strict validation against the same schema.
func GenerateStub(s *schema.Schema) string {
	var b strings.Builder
	root := s.Root()
	for _, name := range root.ChildNames() {
		b.WriteString(name)
		b.WriteString(" = ")
		stubNode(&b, root.Child(name), 0)
		b.WriteString(";\n")
	}
	return b.String()
}

func stubNode(b *strings.Builder, n schema.Node, indent int) {
	switch v := n.(type) {
	case *schema.GroupNode:
		b.WriteString("{\n")
		for _, name := range v.ChildNames() {
			indentStub(b, indent+1)
			b.WriteString(name)
			b.WriteString(" = ")
			stubNode(b, v.Child(name), indent+1)
			b.WriteString(";\n")
		}
		indentStub(b, indent)
		b.WriteString("}")

	case *schema.ListNode:
		// An atom element means this is an array; anything else needs the
		// general list syntax with a single element stub inside.
		if _, ok := v.Elem().(*schema.AtomNode); ok {
			b.WriteString("[")
			stubNode(b, v.Elem(), indent+1)
			b.WriteString("]")
			return
		}
		b.WriteString("(\n")
		indentStub(b, indent+1)
		stubNode(b, v.Elem(), indent+1)
		b.WriteString("\n")
		indentStub(b, indent)
		b.WriteString(")")

	case *schema.AtomNode:
		switch v.Type() {
		case config.BoolKind:
			b.WriteString("false")
		case config.IntKind:
			b.WriteString("0")
		case config.FloatKind:
			b.WriteString("0.0")
		default:
			b.WriteString(`""`)
		}
	}
}

func indentStub(b *strings.Builder, n int) {
	b.WriteString(strings.Repeat("   ", n))
}
