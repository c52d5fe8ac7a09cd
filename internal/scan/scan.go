// Package scan implements the shared lexical layer of the configuration and
// schema languages. Both grammars use the same identifiers, literals,
// punctuation and comment forms; only their parsers differ.
package scan

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType is the kind of a source token.
type TokenType int

const (
	EOF TokenType = iota
	Ident
	Int
	Float
	Bool
	String
	LBrace   // {
	RBrace   // }
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	Assign   // =
	Comma    // ,
	Semi     // ;
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	case Float:
		return "float"
	case Bool:
		return "boolean"
	case String:
		return "string"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Assign:
		return "'='"
	case Comma:
		return "','"
	case Semi:
		return "';'"
	default:
		return "unknown token"
	}
}

// Token is a lexical token with its decoded literal value and position.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any // int64, float64, bool or decoded string
	Line    int
	Col     int
}

// Error is a lexical or syntactic error with source position. File may be
// empty when scanning from memory.
type Error struct {
	File    string
	Line    int
	Col     int
	Message string
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// Errorf builds an Error at the given position.
func Errorf(file string, line, col int, format string, args ...any) *Error {
	return &Error{File: file, Line: line, Col: col, Message: fmt.Sprintf(format, args...)}
}

// Lexer scans source text into tokens.
type Lexer struct {
	file string
	src  string
	pos  int
	line int
	col  int
}

// NewLexer returns a lexer over src; file is used in error positions only.
func NewLexer(file, src string) *Lexer {
	return &Lexer{file: file, src: src, line: 1, col: 1}
}

// File returns the file name the lexer was created with.
func (lx *Lexer) File() string { return lx.file }

func (lx *Lexer) errorf(line, col int, format string, args ...any) *Error {
	return Errorf(lx.file, line, col, format, args...)
}

func (lx *Lexer) peek() byte {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *Lexer) peekAt(off int) byte {
	if lx.pos+off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+off]
}

func (lx *Lexer) advance() byte {
	c := lx.src[lx.pos]
	lx.pos++
	if c == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return c
}

// skipSpace consumes whitespace, line comments and block comments.
func (lx *Lexer) skipSpace() error {
	for lx.pos < len(lx.src) {
		c := lx.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			lx.advance()
		case c == '/' && lx.peekAt(1) == '/':
			for lx.pos < len(lx.src) && lx.peek() != '\n' {
				lx.advance()
			}
		case c == '/' && lx.peekAt(1) == '*':
			line, col := lx.line, lx.col
			lx.advance()
			lx.advance()
			closed := false
			for lx.pos < len(lx.src) {
				if lx.peek() == '*' && lx.peekAt(1) == '/' {
					lx.advance()
					lx.advance()
					closed = true
					break
				}
				lx.advance()
			}
			if !closed {
				return lx.errorf(line, col, "unterminated block comment")
			}
		default:
			return nil
		}
	}
	return nil
}

// Next scans and returns the next token.
func (lx *Lexer) Next() (Token, error) {
	if err := lx.skipSpace(); err != nil {
		return Token{}, err
	}

	line, col := lx.line, lx.col
	if lx.pos >= len(lx.src) {
		return Token{Type: EOF, Line: line, Col: col}, nil
	}

	c := lx.peek()
	switch {
	case c == '{':
		lx.advance()
		return Token{Type: LBrace, Lexeme: "{", Line: line, Col: col}, nil
	case c == '}':
		lx.advance()
		return Token{Type: RBrace, Lexeme: "}", Line: line, Col: col}, nil
	case c == '(':
		lx.advance()
		return Token{Type: LParen, Lexeme: "(", Line: line, Col: col}, nil
	case c == ')':
		lx.advance()
		return Token{Type: RParen, Lexeme: ")", Line: line, Col: col}, nil
	case c == '[':
		lx.advance()
		return Token{Type: LBracket, Lexeme: "[", Line: line, Col: col}, nil
	case c == ']':
		lx.advance()
		return Token{Type: RBracket, Lexeme: "]", Line: line, Col: col}, nil
	case c == '=':
		lx.advance()
		return Token{Type: Assign, Lexeme: "=", Line: line, Col: col}, nil
	case c == ',':
		lx.advance()
		return Token{Type: Comma, Lexeme: ",", Line: line, Col: col}, nil
	case c == ';':
		lx.advance()
		return Token{Type: Semi, Lexeme: ";", Line: line, Col: col}, nil
	case c == '"':
		return lx.scanString(line, col)
	case c == '+' || c == '-' || c == '.' || isDigit(c):
		return lx.scanNumber(line, col)
	case isIdentStart(c):
		return lx.scanIdent(line, col)
	default:
		return Token{}, lx.errorf(line, col, "unexpected character %q", string(c))
	}
}

func (lx *Lexer) scanIdent(line, col int) (Token, error) {
	start := lx.pos
	for lx.pos < len(lx.src) && isIdentPart(lx.peek()) {
		lx.advance()
	}
	word := lx.src[start:lx.pos]
	switch word {
	case "true":
		return Token{Type: Bool, Lexeme: word, Literal: true, Line: line, Col: col}, nil
	case "false":
		return Token{Type: Bool, Lexeme: word, Literal: false, Line: line, Col: col}, nil
	}
	return Token{Type: Ident, Lexeme: word, Literal: word, Line: line, Col: col}, nil
}

// scanNumber handles integers with optional sign and floats with optional
// sign, exponent and leading dot.
func (lx *Lexer) scanNumber(line, col int) (Token, error) {
	start := lx.pos
	if c := lx.peek(); c == '+' || c == '-' {
		lx.advance()
	}
	isFloat := false
	for lx.pos < len(lx.src) && isDigit(lx.peek()) {
		lx.advance()
	}
	if lx.peek() == '.' {
		isFloat = true
		lx.advance()
		for lx.pos < len(lx.src) && isDigit(lx.peek()) {
			lx.advance()
		}
	}
	if c := lx.peek(); c == 'e' || c == 'E' {
		isFloat = true
		lx.advance()
		if c := lx.peek(); c == '+' || c == '-' {
			lx.advance()
		}
		for lx.pos < len(lx.src) && isDigit(lx.peek()) {
			lx.advance()
		}
	}

	text := lx.src[start:lx.pos]
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, lx.errorf(line, col, "invalid float literal %q", text)
		}
		return Token{Type: Float, Lexeme: text, Literal: v, Line: line, Col: col}, nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, lx.errorf(line, col, "invalid integer literal %q", text)
	}
	return Token{Type: Int, Lexeme: text, Literal: v, Line: line, Col: col}, nil
}

// scanString decodes a double-quoted string literal supporting the escapes
// \b \t \n \f \r \" \' \\, octal escapes and 4-hex-digit unicode escapes.
func (lx *Lexer) scanString(line, col int) (Token, error) {
	lx.advance() // opening quote
	var b strings.Builder
	for {
		if lx.pos >= len(lx.src) {
			return Token{}, lx.errorf(line, col, "unterminated string literal")
		}
		c := lx.advance()
		if c == '"' {
			break
		}
		if c == '\n' {
			return Token{}, lx.errorf(line, col, "unterminated string literal")
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if lx.pos >= len(lx.src) {
			return Token{}, lx.errorf(line, col, "unterminated string literal")
		}
		esc := lx.advance()
		switch esc {
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case '\\':
			b.WriteByte('\\')
		case 'u':
			var hex strings.Builder
			for i := 0; i < 4; i++ {
				if lx.pos >= len(lx.src) || !isHexDigit(lx.peek()) {
					return Token{}, lx.errorf(line, col, "invalid unicode escape in string literal")
				}
				hex.WriteByte(lx.advance())
			}
			v, err := strconv.ParseUint(hex.String(), 16, 32)
			if err != nil {
				return Token{}, lx.errorf(line, col, "invalid unicode escape in string literal")
			}
			b.WriteRune(rune(v))
		case '0', '1', '2', '3', '4', '5', '6', '7':
			oct := string(esc)
			for i := 0; i < 2 && lx.pos < len(lx.src) && isOctDigit(lx.peek()); i++ {
				oct += string(lx.advance())
			}
			v, err := strconv.ParseUint(oct, 8, 32)
			if err != nil || v > 0xFF {
				return Token{}, lx.errorf(line, col, "invalid octal escape in string literal")
			}
			b.WriteByte(byte(v))
		default:
			return Token{}, lx.errorf(line, col, "invalid escape sequence '\\%s'", string(esc))
		}
	}
	s := b.String()
	return Token{Type: String, Lexeme: s, Literal: s, Line: line, Col: col}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isOctDigit(c byte) bool { return c >= '0' && c <= '7' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Identifiers are ASCII only; treating bytes above 0x7f as letters would
// lex multi-byte input byte-wise instead of rejecting it.
func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
