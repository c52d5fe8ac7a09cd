// Package gen turns a schema tree into Go source: typed declarations,
// extraction functions, a tree builder that reconstructs the schema at
// generated-code runtime, and configuration stubs.
//
// Emission goes through a small intermediate representation instead of
// direct string concatenation: the schema walk produces declaration and
// statement nodes, and a single rendering pass handles indentation and
// literal quoting. Identifier and literal escaping therefore lives in one
// place only.
package gen

import (
	"fmt"
	"strings"
)

// Decl is a top-level declaration of the generated file.
type Decl interface {
	emit(w *writer)
}

// Stmt is a statement inside a generated function body.
type Stmt interface {
	emitStmt(w *writer)
}

// writer accumulates rendered source with indentation tracking.
type writer struct {
	b      strings.Builder
	indent int
}

func (w *writer) line(s string) {
	if s == "" {
		w.b.WriteByte('\n')
		return
	}
	w.b.WriteString(strings.Repeat("\t", w.indent))
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *writer) linef(format string, args ...any) {
	w.line(fmt.Sprintf(format, args...))
}

// StructDecl is a generated struct type.
type StructDecl struct {
	Doc    string
	Name   string
	Fields []Field
}

// Field is one struct field.
type Field struct {
	Name string
	Type string
}

func (d *StructDecl) emit(w *writer) {
	if d.Doc != "" {
		w.linef("// %s", d.Doc)
	}
	w.linef("type %s struct {", d.Name)
	w.indent++
	for _, f := range d.Fields {
		w.linef("%s %s", f.Name, f.Type)
	}
	w.indent--
	w.line("}")
	w.line("")
}

// SliceDecl is a generated named slice type.
type SliceDecl struct {
	Doc  string
	Name string
	Elem string
}

func (d *SliceDecl) emit(w *writer) {
	if d.Doc != "" {
		w.linef("// %s", d.Doc)
	}
	w.linef("type %s []%s", d.Name, d.Elem)
	w.line("")
}

// FuncDecl is a generated function.
type FuncDecl struct {
	Doc     string
	Name    string
	Params  string
	Results string
	Body    []Stmt
}

func (d *FuncDecl) emit(w *writer) {
	if d.Doc != "" {
		for _, l := range strings.Split(d.Doc, "\n") {
			w.linef("// %s", l)
		}
	}
	sig := fmt.Sprintf("func %s(%s)", d.Name, d.Params)
	if d.Results != "" {
		sig += " " + d.Results
	}
	w.line(sig + " {")
	w.indent++
	for _, s := range d.Body {
		s.emitStmt(w)
	}
	w.indent--
	w.line("}")
	w.line("")
}

// Line is a single statement line.
type Line string

func (l Line) emitStmt(w *writer) {
	w.line(string(l))
}

// Linef builds a formatted statement line.
func Linef(format string, args ...any) Line {
	return Line(fmt.Sprintf(format, args...))
}

// Block is a braced statement group: Head opens it ("if x {", "for ... {"
// or just "{"), Tail closes it.
type Block struct {
	Head string
	Body []Stmt
	Tail string
}

func (b *Block) emitStmt(w *writer) {
	w.line(b.Head)
	w.indent++
	for _, s := range b.Body {
		s.emitStmt(w)
	}
	w.indent--
	tail := b.Tail
	if tail == "" {
		tail = "}"
	}
	w.line(tail)
}

// renderDecls renders declarations in order into a single source fragment.
func renderDecls(decls []Decl) string {
	w := &writer{}
	for _, d := range decls {
		d.emit(w)
	}
	return w.b.String()
}
