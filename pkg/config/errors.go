package config

import (
	"errors"
	"fmt"
)

// LookupError reports a structural failure while navigating a configuration
// tree: a malformed lookup path, a missing key or index, or a request for the
// wrong node kind. Callers either guard with [LookupOr] or let it propagate.
type LookupError struct {
	Message string
}

func (e *LookupError) Error() string {
	return e.Message
}

// lookupErrorf builds a LookupError with a formatted message.
func lookupErrorf(format string, args ...any) *LookupError {
	return &LookupError{Message: fmt.Sprintf(format, args...)}
}

// IsLookupError reports whether err is (or wraps) a LookupError. Generated
// wrapper code uses this to decide whether an optional field may keep its
// default.
func IsLookupError(err error) bool {
	var le *LookupError
	return errors.As(err, &le)
}

// CoercionError reports a failed atom value conversion: an arithmetic value
// that does not fit the target type, or a string that does not parse as the
// requested kind. Unlike LookupError it is never swallowed by LookupOr.
type CoercionError struct {
	From    ValueKind
	To      ValueKind
	Message string
}

func (e *CoercionError) Error() string {
	return e.Message
}

func coercionErrorf(from, to ValueKind, format string, args ...any) *CoercionError {
	return &CoercionError{From: from, To: to, Message: fmt.Sprintf(format, args...)}
}

// ParseError reports a syntax error in a configuration source with its
// position. File may be empty when parsing from memory.
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
