package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/jasal82/cconfig/internal/scan"
)

// File is a loaded configuration file: the root group of the element tree
// plus the source path it was read from.
type File struct {
	path string
	root *Group
}

// Root returns the root group of the configuration tree.
func (f *File) Root() *Group { return f.root }

// Path returns the source path, or "" when parsed from memory.
func (f *File) Path() string { return f.path }

// Get resolves a dotted/bracketed path against the root group and coerces
// the result to T.
func Get[T Scalar](f *File, path string) (T, error) {
	return Lookup[T](f.root, path)
}

// Load reads and parses a configuration file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	root, err := parseConfig(path, string(data))
	if err != nil {
		return nil, err
	}
	return &File{path: path, root: root}, nil
}

// Parse parses configuration source from memory.
func Parse(src string) (*File, error) {
	root, err := parseConfig("", src)
	if err != nil {
		return nil, err
	}
	return &File{root: root}, nil
}

// parser is a recursive-descent parser for the configuration grammar.
type parser struct {
	lx  *scan.Lexer
	cur scan.Token
}

func parseConfig(file, src string) (*Group, error) {
	p := &parser{lx: scan.NewLexer(file, src)}
	if err := p.next(); err != nil {
		return nil, asParseError(err)
	}

	root := NewGroup()
	for p.cur.Type != scan.EOF {
		if err := p.parseDefinition(root); err != nil {
			return nil, asParseError(err)
		}
	}
	return root, nil
}

// asParseError converts scanner errors into the package's ParseError type.
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

// parseDefinition parses either a named group "ident { ... }" or a variable
// "ident = value ;" and inserts it into parent.
func (p *parser) parseDefinition(parent *Group) error {
	name, err := p.expect(scan.Ident)
	if err != nil {
		return err
	}
	if parent.Has(name.Lexeme) {
		return p.errorf("duplicate setting %q", name.Lexeme)
	}

	switch p.cur.Type {
	case scan.LBrace:
		g, err := p.parseGroupBody()
		if err != nil {
			return err
		}
		parent.Insert(name.Lexeme, g)
		return nil
	case scan.Assign:
		if err := p.next(); err != nil {
			return err
		}
		v, err := p.parseValue()
		if err != nil {
			return err
		}
		if _, err := p.expect(scan.Semi); err != nil {
			return err
		}
		parent.Insert(name.Lexeme, v)
		return nil
	default:
		return p.errorf("expected '{' or '=' after %q, found %s", name.Lexeme, describe(p.cur))
	}
}

// parseGroupBody parses "{ definition* }".
func (p *parser) parseGroupBody() (*Group, error) {
	if _, err := p.expect(scan.LBrace); err != nil {
		return nil, err
	}
	g := NewGroup()
	for p.cur.Type != scan.RBrace {
		if p.cur.Type == scan.EOF {
			return nil, p.errorf("unexpected end of input inside group")
		}
		if err := p.parseDefinition(g); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(scan.RBrace); err != nil {
		return nil, err
	}
	return g, nil
}

// parseValue parses a list, array, group literal or atom.
func (p *parser) parseValue() (Element, error) {
	switch p.cur.Type {
	case scan.LParen:
		return p.parseList()
	case scan.LBracket:
		return p.parseArray()
	case scan.LBrace:
		return p.parseGroupBody()
	default:
		return p.parseAtom()
	}
}

// parseList parses a general "( elem, elem, ... )" list; elements may mix
// kinds and include nested groups, lists and arrays.
func (p *parser) parseList() (*List, error) {
	if _, err := p.expect(scan.LParen); err != nil {
		return nil, err
	}
	l := NewList()
	if p.cur.Type == scan.RParen {
		return l, p.next()
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		l.Append(v)
		if p.cur.Type != scan.Comma {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(scan.RParen); err != nil {
		return nil, err
	}
	return l, nil
}

// parseArray parses a "[ v, v, ... ]" array literal. All elements must be
// atoms of the same primitive kind; the first element determines the kind.
func (p *parser) parseArray() (*List, error) {
	if _, err := p.expect(scan.LBracket); err != nil {
		return nil, err
	}
	l := NewList()
	if p.cur.Type == scan.RBracket {
		return l, p.next()
	}
	var kind ValueKind
	for i := 0; ; i++ {
		line, col := p.cur.Line, p.cur.Col
		a, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		if i == 0 {
			kind = a.Type()
		} else if a.Type() != kind {
			return nil, scan.Errorf(p.lx.File(), line, col, "mixed types in array, expected %s", kind)
		}
		l.Append(a)
		if p.cur.Type != scan.Comma {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(scan.RBracket); err != nil {
		return nil, err
	}
	return l, nil
}

// parseAtom parses a primitive literal.
func (p *parser) parseAtom() (*Atom, error) {
	var a *Atom
	switch p.cur.Type {
	case scan.Bool:
		a = BoolAtom(p.cur.Literal.(bool))
	case scan.Int:
		a = IntAtom(p.cur.Literal.(int64))
	case scan.Float:
		a = FloatAtom(p.cur.Literal.(float64))
	case scan.String:
		a = StringAtom(p.cur.Literal.(string))
	default:
		return nil, p.errorf("expected value, found %s", describe(p.cur))
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return a, nil
}
