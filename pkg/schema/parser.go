package schema

import (
	"errors"
	"fmt"

	"github.com/jasal82/cconfig/internal/scan"
	"github.com/jasal82/cconfig/pkg/config"
)

// ParseError reports a syntax error in a schema source with its position.
type ParseError struct {
	File    string
	Line    int
	Col     int
	Message string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// parser is a recursive-descent parser for the schema grammar:
//
//	decl := ident [required|optional] attr* '(' kind ')' body? ';'
//	attr := ident '=' literal
//	kind := int | string | bool | float | array | group | list
//
// where an array body holds a primitive type, a group body holds further
// declarations and a list body holds a single nested type. Nodes are built
// bottom-up: a declaration's subtree is complete before it is attached to
// its parent group, which is when name, parent and the propagated required
// flag are assigned.
type parser struct {
	lx  *scan.Lexer
	cur scan.Token
}

func parseSchema(file, src string) (*GroupNode, error) {
	p := &parser{lx: scan.NewLexer(file, src)}
	if err := p.next(); err != nil {
		return nil, asParseError(err)
	}

	root := NewGroupNode()
	for p.cur.Type != scan.EOF {
		if err := p.parseDecl(root); err != nil {
			return nil, asParseError(err)
		}
	}
	return root, nil
}

func asParseError(err error) error {
	var se *scan.Error
	if errors.As(err, &se) {
		return &ParseError{File: se.File, Line: se.Line, Col: se.Col, Message: se.Message}
	}
	return err
}

func (p *parser) next() error {
	t, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) expect(typ scan.TokenType) (scan.Token, error) {
	if p.cur.Type != typ {
		return scan.Token{}, p.errorf("expected %s, found %s", typ, describe(p.cur))
	}
	t := p.cur
	if err := p.next(); err != nil {
		return scan.Token{}, err
	}
	return t, nil
}

func (p *parser) errorf(format string, args ...any) *scan.Error {
	return scan.Errorf(p.lx.File(), p.cur.Line, p.cur.Col, format, args...)
}

func describe(t scan.Token) string {
	if t.Type == scan.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

// parseDecl parses one named declaration and attaches it to parent. The
// attachment happens last, after the declaration's whole subtree exists.
func (p *parser) parseDecl(parent *GroupNode) error {
	name, err := p.expect(scan.Ident)
	if err != nil {
		return err
	}
	if parent.Child(name.Lexeme) != nil {
		return p.errorf("duplicate declaration %q", name.Lexeme)
	}

	required := false
	if p.cur.Type == scan.Ident && (p.cur.Lexeme == "required" || p.cur.Lexeme == "optional") {
		required = p.cur.Lexeme == "required"
		if err := p.next(); err != nil {
			return err
		}
	}

	n, err := p.parseType()
	if err != nil {
		return err
	}
	if _, err := p.expect(scan.Semi); err != nil {
		return err
	}

	parent.AddChild(name.Lexeme, n, required)
	return nil
}

// parseType parses "attr* ( kind ) body?" and returns the finished node.
func (p *parser) parseType() (Node, error) {
	attrs, err := p.parseAttrs()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(scan.LParen); err != nil {
		return nil, err
	}
	kind, err := p.expect(scan.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scan.RParen); err != nil {
		return nil, err
	}

	var n Node
	switch kind.Lexeme {
	case "int":
		n = NewAtomNode(config.IntKind)
	case "string":
		n = NewAtomNode(config.StringKind)
	case "bool":
		n = NewAtomNode(config.BoolKind)
	case "float":
		n = NewAtomNode(config.FloatKind)
	case "array":
		n, err = p.parseArrayBody()
	case "group":
		n, err = p.parseGroupBody()
	case "list":
		n, err = p.parseListBody()
	default:
		return nil, p.errorf("unknown type %q, expected int, string, bool, float, array, group or list", kind.Lexeme)
	}
	if err != nil {
		return nil, err
	}

	for name, value := range attrs {
		n.AddAttribute(name, value)
	}
	return n, nil
}

// parseAttrs parses leading "ident = literal" attribute pairs.
func (p *parser) parseAttrs() (map[string]AttrValue, error) {
	attrs := make(map[string]AttrValue)
	for p.cur.Type == scan.Ident {
		name := p.cur
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(scan.Assign); err != nil {
			return nil, err
		}

		var value AttrValue
		switch p.cur.Type {
		case scan.Int:
			value = IntAttr(p.cur.Literal.(int64))
		case scan.Float:
			value = FloatAttr(p.cur.Literal.(float64))
		case scan.Bool:
			value = BoolAttr(p.cur.Literal.(bool))
		case scan.String:
			value = StringAttr(p.cur.Literal.(string))
		default:
			return nil, p.errorf("expected literal attribute value, found %s", describe(p.cur))
		}
		if err := p.next(); err != nil {
			return nil, err
		}

		if _, ok := attrs[name.Lexeme]; ok {
			return nil, scan.Errorf(p.lx.File(), name.Line, name.Col, "duplicate attribute %q", name.Lexeme)
		}
		attrs[name.Lexeme] = value
	}
	return attrs, nil
}

// parseArrayBody parses "{ (primitive) }"; the element schema of an array is
// always an atom.
func (p *parser) parseArrayBody() (*ListNode, error) {
	if _, err := p.expect(scan.LBrace); err != nil {
		return nil, err
	}
	if _, err := p.expect(scan.LParen); err != nil {
		return nil, err
	}
	kind, err := p.expect(scan.Ident)
	if err != nil {
		return nil, err
	}
	var elem *AtomNode
	switch kind.Lexeme {
	case "int":
		elem = NewAtomNode(config.IntKind)
	case "string":
		elem = NewAtomNode(config.StringKind)
	case "bool":
		elem = NewAtomNode(config.BoolKind)
	case "float":
		elem = NewAtomNode(config.FloatKind)
	default:
		return nil, p.errorf("array element type must be primitive, found %q", kind.Lexeme)
	}
	if _, err := p.expect(scan.RParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(scan.RBrace); err != nil {
		return nil, err
	}

	l := NewListNode()
	l.SetElem(elem)
	return l, nil
}

// parseGroupBody parses "{ decl+ }".
func (p *parser) parseGroupBody() (*GroupNode, error) {
	if _, err := p.expect(scan.LBrace); err != nil {
		return nil, err
	}
	g := NewGroupNode()
	for p.cur.Type != scan.RBrace {
		if p.cur.Type == scan.EOF {
			return nil, p.errorf("unexpected end of input inside group type")
		}
		if err := p.parseDecl(g); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(scan.RBrace); err != nil {
		return nil, err
	}
	if len(g.children) == 0 {
		return nil, p.errorf("group type must declare at least one member")
	}
	return g, nil
}

// parseListBody parses "{ type }". A list type takes exactly one element
// type; heterogeneous lists are not expressible in the schema language.
func (p *parser) parseListBody() (*ListNode, error) {
	if _, err := p.expect(scan.LBrace); err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != scan.RBrace {
		return nil, p.errorf("list type takes exactly one element type")
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	l := NewListNode()
	l.SetElem(elem)
	return l, nil
}
