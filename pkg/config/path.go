package config

import (
	"regexp"
	"strconv"
	"strings"
)

// PathToken is one step of a lookup path: either a group key (name) or a
// list position (index).
type PathToken struct {
	Name    string
	Index   int
	IsIndex bool
}

// NameToken returns a token that selects a group entry.
func NameToken(name string) PathToken {
	return PathToken{Name: name}
}

// IndexToken returns a token that selects a list position.
func IndexToken(index int) PathToken {
	return PathToken{Index: index, IsIndex: true}
}

// nameRe matches an identifier path segment.
var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// indexRe matches a non-negative index segment.
var indexRe = regexp.MustCompile(`^[0-9]+$`)

// SplitPath tokenizes a lookup path such as "a.b[2][0].c" into alternating
// name and index tokens. Closing brackets are stripped first and the rest is
// split on '.' and '['; every resulting piece must be either all digits
// (index) or an identifier (name). Empty pieces, e.g. from "a..b" or a
// leading dot, and pieces matching neither pattern are malformed-path
// lookup errors.
func SplitPath(path string) ([]PathToken, error) {
	stripped := strings.ReplaceAll(path, "]", "")

	var tokens []PathToken
	for _, piece := range strings.Split(stripped, ".") {
		for _, sub := range strings.Split(piece, "[") {
			if sub == "" {
				return nil, lookupErrorf("subsequent path separators found in config path (%s)", path)
			}
			switch {
			case indexRe.MatchString(sub):
				n, err := strconv.Atoi(sub)
				if err != nil {
					return nil, lookupErrorf("failed to parse config path (%s) at token %s", path, sub)
				}
				tokens = append(tokens, IndexToken(n))
			case nameRe.MatchString(sub):
				tokens = append(tokens, NameToken(sub))
			default:
				return nil, lookupErrorf("failed to parse config path (%s) at token %s", path, sub)
			}
		}
	}
	return tokens, nil
}

// JoinPath renders tokens back into path syntax: names joined with dots,
// indices rendered as bracketed suffixes. It is the semantic inverse of
// SplitPath.
func JoinPath(tokens []PathToken) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.IsIndex {
			b.WriteString("[")
			b.WriteString(strconv.Itoa(t.Index))
			b.WriteString("]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(t.Name)
	}
	return b.String()
}
