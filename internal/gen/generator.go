package gen

import (
	"embed"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/jasal82/cconfig/pkg/config"
	"github.com/jasal82/cconfig/pkg/schema"
)

// Embed the wrapper file skeleton at compile time.
//
//go:embed wrapper.go.tmpl
var templates embed.FS

// Options configures wrapper generation.
type Options struct {
	// Package is the package name of the generated file.
	Package string
	// SchemaFile names the schema source in the generated header.
	SchemaFile string
	// Revision optionally stamps the schema's VCS revision in the header.
	Revision string
}

// GenerateWrapper emits the typed wrapper source for a schema: one
// aggregate type per group/list node with default-valued constructors,
// per-node extraction functions, a GenerateSchema tree builder and a
// LoadConfig entry point. The output is gofmt-formatted Go source.
func GenerateWrapper(s *schema.Schema, opts Options) ([]byte, error) {
	g := &generator{}

	if err := g.declarations(s.Root()); err != nil {
		return nil, err
	}
	g.extractors(s.Root())
	g.treeBuilder(s.Root())
	g.entryPoints()

	tmpl, err := template.ParseFS(templates, "wrapper.go.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse wrapper template: %w", err)
	}

	var b strings.Builder
	data := struct {
		Package    string
		SchemaFile string
		Revision   string
		Decls      string
	}{
		Package:    opts.Package,
		SchemaFile: opts.SchemaFile,
		Revision:   opts.Revision,
		Decls:      renderDecls(g.decls),
	}
	if err := tmpl.Execute(&b, data); err != nil {
		return nil, fmt.Errorf("failed to render wrapper: %w", err)
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("generated wrapper does not format: %w", err)
	}
	return src, nil
}

type generator struct {
	decls []Decl
}

// ============================================================================
// Naming
// ============================================================================

// typeName returns the generated Go type for a schema node, keyed by the
// node's safe URI so names stay collision-free across the whole tree.
func typeName(n schema.Node) string {
	switch v := n.(type) {
	case *schema.GroupNode:
		if v.Parent() == nil {
			return "Config"
		}
		return "Group" + schema.URISafe(v)
	case *schema.ListNode:
		return "List" + schema.URISafe(v)
	case *schema.AtomNode:
		return goType(v.Type())
	default:
		return ""
	}
}

func goType(k config.ValueKind) string {
	switch k {
	case config.BoolKind:
		return "bool"
	case config.IntKind:
		return "int64"
	case config.FloatKind:
		return "float64"
	default:
		return "string"
	}
}

func ctorName(n schema.Node) string {
	return "new" + typeName(n)
}

// extractName returns the extraction function for a node; atoms share the
// four primitive extractors from the file skeleton.
func extractName(n schema.Node) string {
	if a, ok := n.(*schema.AtomNode); ok {
		switch a.Type() {
		case config.BoolKind:
			return "extractBool"
		case config.IntKind:
			return "extractInt64"
		case config.FloatKind:
			return "extractFloat64"
		default:
			return "extractString"
		}
	}
	return "extract" + typeName(n)
}

// fieldName exports a configuration key as a struct field name. The mapping
// only capitalizes the first letter and keeps the rest of the key verbatim.
// Distinct keys can still map to the same field ("port" and "Port", or "_x"
// and "X_x"); the declaration pass rejects such siblings.
func fieldName(key string) string {
	if strings.HasPrefix(key, "_") {
		return "X" + key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

// ============================================================================
// Declaration pass
// ============================================================================

// declarations emits, bottom-up, one aggregate type per group/list schema
// plus a default-valued constructor per group.
func (g *generator) declarations(n schema.Node) error {
	switch v := n.(type) {
	case *schema.GroupNode:
		for _, name := range v.ChildNames() {
			if err := g.declarations(v.Child(name)); err != nil {
				return err
			}
		}

		st := &StructDecl{Name: typeName(v)}
		if v.Parent() == nil {
			st.Doc = "Config is the typed view of a validated configuration file."
		}
		seen := map[string]string{}
		for _, name := range v.ChildNames() {
			field := fieldName(name)
			if prev, ok := seen[field]; ok {
				return fmt.Errorf("settings %q and %q in %s both map to struct field %s", prev, name, schema.URI(v), field)
			}
			seen[field] = name
			st.Fields = append(st.Fields, Field{Name: field, Type: typeName(v.Child(name))})
		}
		g.decls = append(g.decls, st)

		ctor := &FuncDecl{Name: ctorName(v), Results: typeName(v)}
		var inits []Stmt
		for _, name := range v.ChildNames() {
			switch c := v.Child(name).(type) {
			case *schema.AtomNode:
				if !c.HasAttribute("default") {
					continue
				}
				lit, err := defaultLiteral(c)
				if err != nil {
					return err
				}
				inits = append(inits, Linef("%s: %s,", fieldName(name), lit))
			case *schema.GroupNode:
				inits = append(inits, Linef("%s: %s(),", fieldName(name), ctorName(c)))
			}
		}
		ctor.Body = []Stmt{&Block{
			Head: fmt.Sprintf("return %s{", typeName(v)),
			Body: inits,
			Tail: "}",
		}}
		g.decls = append(g.decls, ctor)
		return nil

	case *schema.ListNode:
		if v.Elem() == nil {
			return fmt.Errorf("list schema %s has no element type", schema.URI(v))
		}
		if err := g.declarations(v.Elem()); err != nil {
			return err
		}
		g.decls = append(g.decls, &SliceDecl{Name: typeName(v), Elem: typeName(v.Elem())})
		return nil

	default:
		return nil
	}
}

// defaultLiteral renders an atom's "default" attribute as a Go literal. The
// attribute must match the declared primitive kind; a mismatch is a schema
// defect that aborts generation.
func defaultLiteral(a *schema.AtomNode) (string, error) {
	switch a.Type() {
	case config.BoolKind:
		v, err := schema.Attr[bool](a, "default")
		if err != nil {
			return "", fmt.Errorf("bad default for %s: %w", schema.URI(a), err)
		}
		return strconv.FormatBool(v), nil
	case config.IntKind:
		v, err := schema.Attr[int64](a, "default")
		if err != nil {
			return "", fmt.Errorf("bad default for %s: %w", schema.URI(a), err)
		}
		return strconv.FormatInt(v, 10), nil
	case config.FloatKind:
		v, err := schema.Attr[float64](a, "default")
		if err != nil {
			return "", fmt.Errorf("bad default for %s: %w", schema.URI(a), err)
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		v, err := schema.Attr[string](a, "default")
		if err != nil {
			return "", fmt.Errorf("bad default for %s: %w", schema.URI(a), err)
		}
		return strconv.Quote(v), nil
	}
}

// ============================================================================
// Extraction pass
// ============================================================================

// extractors emits, bottom-up, one extraction function per group and list
// schema. Atoms are served by the fixed primitive extractors.
func (g *generator) extractors(n schema.Node) {
	switch v := n.(type) {
	case *schema.GroupNode:
		for _, name := range v.ChildNames() {
			g.extractors(v.Child(name))
		}
		g.decls = append(g.decls, g.groupExtractor(v))
	case *schema.ListNode:
		g.extractors(v.Elem())
		g.decls = append(g.decls, g.listExtractor(v))
	}
}

func (g *generator) groupExtractor(v *schema.GroupNode) *FuncDecl {
	tn := typeName(v)
	fn := &FuncDecl{
		Name:    extractName(v),
		Params:  "e config.Element, n schema.Node",
		Results: fmt.Sprintf("(%s, error)", tn),
	}
	fn.Body = append(fn.Body, Linef("r := %s()", ctorName(v)))

	if len(v.ChildNames()) == 0 {
		fn.Body = append(fn.Body, Line("return r, nil"))
		return fn
	}

	fn.Body = append(fn.Body,
		Line("g, ok := n.(*schema.GroupNode)"),
		&Block{Head: "if !ok {", Body: []Stmt{
			Linef("return r, fmt.Errorf(\"schema node mismatch for %s\")", tn),
		}},
	)

	for _, name := range v.ChildNames() {
		child := v.Child(name)
		field := fieldName(name)

		if child.Required() {
			fn.Body = append(fn.Body, &Block{Head: "{", Body: []Stmt{
				Linef("cn := g.Child(%q)", name),
				Linef("ce, err := config.Child(e, %q)", name),
				&Block{Head: "if err != nil {", Body: []Stmt{Line("return r, err")}},
				Linef("v, err := %s(ce, cn)", extractName(child)),
				&Block{Head: "if err != nil {", Body: []Stmt{Line("return r, err")}},
				Linef("r.%s = v", field),
			}})
			continue
		}

		// Optional: a lookup failure keeps the constructor default; only a
		// coercion failure aborts.
		fn.Body = append(fn.Body, &Block{Head: "{", Body: []Stmt{
			Linef("cn := g.Child(%q)", name),
			&Block{
				Head: fmt.Sprintf("if ce, err := config.Child(e, %q); err == nil {", name),
				Body: []Stmt{
					Linef("v, verr := %s(ce, cn)", extractName(child)),
					&Block{Head: "if verr != nil && !config.IsLookupError(verr) {", Body: []Stmt{
						Line("return r, verr"),
					}},
					&Block{Head: "if verr == nil {", Body: []Stmt{
						Linef("r.%s = v", field),
					}},
				},
			},
		}})
	}

	fn.Body = append(fn.Body, Line("return r, nil"))
	return fn
}

func (g *generator) listExtractor(v *schema.ListNode) *FuncDecl {
	tn := typeName(v)
	fn := &FuncDecl{
		Name:    extractName(v),
		Params:  "e config.Element, n schema.Node",
		Results: fmt.Sprintf("(%s, error)", tn),
	}
	fn.Body = []Stmt{
		Linef("var r %s", tn),
		Line("ln, ok := n.(*schema.ListNode)"),
		&Block{Head: "if !ok {", Body: []Stmt{
			Linef("return r, fmt.Errorf(\"schema node mismatch for %s\")", tn),
		}},
		Line("cn := ln.Elem()"),
		Line("l, err := config.AsList(e)"),
		&Block{Head: "if err != nil {", Body: []Stmt{Line("return r, err")}},
		&Block{
			Head: "for i := 0; i < l.Len(); i++ {",
			Body: []Stmt{
				Line("ce, err := l.Get(i)"),
				&Block{Head: "if err != nil {", Body: []Stmt{Line("return r, err")}},
				Linef("v, err := %s(ce, cn)", extractName(v.Elem())),
				&Block{Head: "if err != nil {", Body: []Stmt{Line("return r, err")}},
				Line("r = append(r, v)"),
			},
		},
		Line("return r, nil"),
	}
	return fn
}

// ============================================================================
// Tree-builder pass
// ============================================================================

// treeBuilder emits GenerateSchema, which reconstructs the schema tree at
// generated-code runtime so configurations can be re-validated without the
// schema file. Every node gets a unique synthetic variable name from a
// monotonic counter.
func (g *generator) treeBuilder(root *schema.GroupNode) {
	id := 0
	body := g.buildNode(root, &id)
	body = append(body,
		Line(""),
		Line("s := schema.New()"),
		Line("s.SetRoot(var0)"),
		Line("return s"),
	)
	g.decls = append(g.decls, &FuncDecl{
		Doc:     "GenerateSchema reconstructs the schema tree without re-reading the\nschema file.",
		Name:    "GenerateSchema",
		Results: "*schema.Schema",
		Body:    body,
	})
}

// buildNode emits the construction statements for one node, using *id as the
// current variable number and incrementing it for each descendant.
func (g *generator) buildNode(n schema.Node, id *int) []Stmt {
	varname := fmt.Sprintf("var%d", *id)
	var body []Stmt

	switch v := n.(type) {
	case *schema.GroupNode:
		body = append(body, Linef("%s := schema.NewGroupNode()", varname))
		body = append(body, attrStmts(v, varname)...)
		for _, name := range v.ChildNames() {
			child := v.Child(name)
			*id++
			childvar := fmt.Sprintf("var%d", *id)
			inner := g.buildNode(child, id)
			inner = append(inner, Linef("%s.AddChild(%q, %s, %t)", varname, name, childvar, child.Required()))
			body = append(body, &Block{Head: "{", Body: inner})
		}
	case *schema.ListNode:
		body = append(body, Linef("%s := schema.NewListNode()", varname))
		body = append(body, attrStmts(v, varname)...)
		*id++
		childvar := fmt.Sprintf("var%d", *id)
		inner := g.buildNode(v.Elem(), id)
		inner = append(inner, Linef("%s.SetElem(%s)", varname, childvar))
		body = append(body, &Block{Head: "{", Body: inner})
	case *schema.AtomNode:
		body = append(body, Linef("%s := schema.NewAtomNode(config.%s)", varname, kindConst(v.Type())))
		body = append(body, attrStmts(v, varname)...)
	}

	return body
}

func kindConst(k config.ValueKind) string {
	switch k {
	case config.BoolKind:
		return "BoolKind"
	case config.IntKind:
		return "IntKind"
	case config.FloatKind:
		return "FloatKind"
	default:
		return "StringKind"
	}
}

// attrStmts emits AddAttribute calls for a node's attributes in sorted
// order.
func attrStmts(n schema.Node, varname string) []Stmt {
	attrs := schema.Attributes(n)
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	var stmts []Stmt
	for _, name := range names {
		stmts = append(stmts, Linef("%s.AddAttribute(%q, %s)", varname, name, attrLiteral(n, name, attrs[name].Kind())))
	}
	return stmts
}

// attrLiteral renders an attribute as its constructor expression. The typed
// reads cannot fail: name and kind both come from the node's own attribute
// map.
func attrLiteral(n schema.Node, name string, kind config.ValueKind) string {
	switch kind {
	case config.BoolKind:
		b, _ := schema.Attr[bool](n, name)
		return fmt.Sprintf("schema.BoolAttr(%t)", b)
	case config.IntKind:
		i, _ := schema.Attr[int64](n, name)
		return fmt.Sprintf("schema.IntAttr(%d)", i)
	case config.FloatKind:
		f, _ := schema.Attr[float64](n, name)
		return fmt.Sprintf("schema.FloatAttr(%s)", strconv.FormatFloat(f, 'g', -1, 64))
	default:
		s, _ := schema.Attr[string](n, name)
		return fmt.Sprintf("schema.StringAttr(%s)", strconv.Quote(s))
	}
}

// ============================================================================
// Entry points
// ============================================================================

func (g *generator) entryPoints() {
	g.decls = append(g.decls, &FuncDecl{
		Doc:     "LoadConfig parses the configuration at path, validates it strictly\nagainst the embedded schema and returns the typed result.",
		Name:    "LoadConfig",
		Params:  "path string",
		Results: "(Config, error)",
		Body: []Stmt{
			Line("f, err := config.Load(path)"),
			&Block{Head: "if err != nil {", Body: []Stmt{Line("return Config{}, err")}},
			Line("s := GenerateSchema()"),
			&Block{Head: "if r := s.Validate(f, true); !r.Valid {", Body: []Stmt{
				Line("return Config{}, &ValidationError{URI: r.URI, Message: r.Message}"),
			}},
			Line("return extractConfig(f.Root(), s.Root())"),
		},
	})
}
