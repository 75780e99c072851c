// Package pointer implements RFC 6901 JSON Pointers as the location type used
// throughout the validator for both instance_location and schema_location.
package pointer

import (
	"fmt"
	"strconv"
	"strings"
)

// Pointer is an immutable sequence of reference tokens. The zero value is the
// empty (root) pointer.
type Pointer struct {
	tokens []string
}

// Root is the empty pointer, addressing the document root.
func Root() Pointer { return Pointer{} }

// Parse decodes a JSON Pointer string (e.g. "/items/2/price") per RFC 6901.
// The empty string and "/" both parse to the root pointer.
func Parse(s string) Pointer {
	if s == "" || s == "/" {
		return Root()
	}
	s = strings.TrimPrefix(s, "/")
	parts := strings.Split(s, "/")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = unescape(p)
	}
	return Pointer{tokens: tokens}
}

// Field returns a new pointer with a property-name token appended, escaping
// '~' and '/' per RFC 6901.
func (p Pointer) Field(name string) Pointer {
	return p.append(name)
}

// Index returns a new pointer with a non-negative array-index token appended.
func (p Pointer) Index(i int) Pointer {
	return p.append(strconv.Itoa(i))
}

// Combine appends a raw, already-unescaped segment (string or int) and
// returns a new pointer. It never mutates the receiver.
func (p Pointer) Combine(segment any) Pointer {
	switch s := segment.(type) {
	case int:
		return p.Index(s)
	case string:
		return p.Field(s)
	default:
		return p.Field(fmt.Sprint(s))
	}
}

func (p Pointer) append(tok string) Pointer {
	next := make([]string, len(p.tokens)+1)
	copy(next, p.tokens)
	next[len(p.tokens)] = tok
	return Pointer{tokens: next}
}

// Tokens returns the unescaped reference tokens, in order. Callers must not
// mutate the returned slice.
func (p Pointer) Tokens() []string { return p.tokens }

// IsRoot reports whether the pointer addresses the document root.
func (p Pointer) IsRoot() bool { return len(p.tokens) == 0 }

// String serializes the pointer. The root pointer renders as "/" (matching
// the Issue.Path convention used across this module) rather than RFC 6901's
// technically-correct empty string.
func (p Pointer) String() string {
	if len(p.tokens) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, t := range p.tokens {
		b.WriteByte('/')
		b.WriteString(escape(t))
	}
	return b.String()
}

var escaper = strings.NewReplacer("~", "~0", "/", "~1")
var unescaper = strings.NewReplacer("~1", "/", "~0", "~")

func escape(s string) string { return escaper.Replace(s) }

func unescape(s string) string {
	// Order matters: ~1 before ~0 is what RFC 6901 requires for decode,
	// achieved here by replacing ~1 first via a single-pass replacer table
	// that always resolves ~0 last (strings.Replacer already applies the
	// longest match and does not re-scan replaced text).
	return unescaper.Replace(s)
}
