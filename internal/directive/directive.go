// Package directive parses reqwire directives from Go source comments.
//
// Directives are line comments attached to a type declaration:
//
//	//reqwire:request method=GET path=/api/users/{id} response=User
//	//reqwire:client base_url=https://api.example.com requests=GetUser,CreateUser=new_user
//
// The request directive marks a struct as a REST request type; the client
// directive marks a struct as a client configuration type. Arguments are
// space-separated key or key=value tokens; values may be double-quoted when
// they contain spaces. Unknown directive kinds, unknown keys, and repeated
// keys are hard failures so mistakes surface at generation time, not at use
// time.
package directive

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

// Prefix introduces every reqwire directive comment.
const Prefix = "//reqwire:"

// Kind represents the type of directive.
type Kind string

const (
	KindRequest Kind = "request"
	KindClient  Kind = "client"
)

// Arg is a single key or key=value argument.
type Arg struct {
	Key      string
	Value    string
	HasValue bool
}

// Directive represents a parsed reqwire directive.
type Directive struct {
	Kind Kind
	Args []Arg
	Pos  token.Position
}

// Lookup returns the argument with the given key, if present.
func (d *Directive) Lookup(key string) (Arg, bool) {
	for _, a := range d.Args {
		if a.Key == key {
			return a, true
		}
	}
	return Arg{}, false
}

// String returns the string value of key, or "" when absent.
func (d *Directive) String(key string) string {
	a, _ := d.Lookup(key)
	return a.Value
}

// Flag reports whether the bare key is present.
func (d *Directive) Flag(key string) bool {
	_, ok := d.Lookup(key)
	return ok
}

// requestKeys and clientKeys define the recognized argument surface per
// directive kind. The bool records whether the key takes a value.
var requestKeys = map[string]bool{
	"method":       true,
	"path":         true,
	"response":     true,
	"query_config": true,
	"into":         false,
	"default":      false,
}

var clientKeys = map[string]bool{
	"base_url": true,
	"requests": true,
}

// FromComment parses a single comment line. It returns (nil, nil) when the
// comment is not a reqwire directive at all.
func FromComment(text string, pos token.Position) (*Directive, error) {
	if !strings.HasPrefix(text, Prefix) {
		return nil, nil
	}
	rest := strings.TrimPrefix(text, Prefix)

	kindStr, argStr, _ := strings.Cut(rest, " ")
	kind := Kind(kindStr)

	var keys map[string]bool
	switch kind {
	case KindRequest:
		keys = requestKeys
	case KindClient:
		keys = clientKeys
	default:
		return nil, fmt.Errorf("%s: unknown directive //reqwire:%s", pos, kindStr)
	}

	tokens, err := splitArgs(argStr)
	if err != nil {
		return nil, fmt.Errorf("%s: //reqwire:%s: %w", pos, kindStr, err)
	}

	d := &Directive{Kind: kind, Pos: pos}
	seen := make(map[string]bool)
	for _, tok := range tokens {
		key, value, hasValue := strings.Cut(tok, "=")
		wantsValue, known := keys[key]
		if !known {
			return nil, fmt.Errorf("%s: unsupported //reqwire:%s key %q", pos, kindStr, key)
		}
		if seen[key] {
			return nil, fmt.Errorf("%s: //reqwire:%s: repeated key %q", pos, kindStr, key)
		}
		seen[key] = true
		if wantsValue && !hasValue {
			return nil, fmt.Errorf("%s: //reqwire:%s: key %q requires a value", pos, kindStr, key)
		}
		if !wantsValue && hasValue {
			return nil, fmt.Errorf("%s: //reqwire:%s: key %q does not take a value", pos, kindStr, key)
		}
		d.Args = append(d.Args, Arg{Key: key, Value: unquote(value), HasValue: hasValue})
	}
	return d, nil
}

// FromDoc scans a declaration's doc comment group for a reqwire directive.
// At most one directive is allowed per declaration.
func FromDoc(fset *token.FileSet, doc *ast.CommentGroup) (*Directive, error) {
	if doc == nil {
		return nil, nil
	}

	var found *Directive
	for _, c := range doc.List {
		d, err := FromComment(c.Text, fset.Position(c.Pos()))
		if err != nil {
			return nil, err
		}
		if d == nil {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%s: multiple reqwire directives on one declaration (first at %s)",
				d.Pos, found.Pos)
		}
		found = d
	}
	return found, nil
}

// splitArgs tokenizes the argument portion of a directive. Tokens are
// separated by spaces; a value may be double-quoted to include spaces, as in
// base_url="https://example.com/v 1".
func splitArgs(s string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inQuote := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '"':
			inQuote = !inQuote
			cur.WriteByte(ch)
		case ch == ' ' && !inQuote:
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(ch)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in arguments")
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

// unquote strips a single level of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
