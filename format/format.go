// Package format implements the "format" assertion vocabulary: a set of
// named string checks (date-time, email, hostname, ipv4, ipv6, uri, regex)
// that the validator runs as annotations by default and as assertions only
// when Options opts in, per 2019-09+ semantics.
package format

import (
	"net"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Checker validates a string against one named format. It returns false for
// a value that does not satisfy the format; a Checker never errors on
// malformed input, it simply reports non-conformance.
type Checker func(s string) bool

// Registry is the set of known format names. Unknown format names are
// ignored by the validator (format is advisory for names it does not
// recognize), matching the behavior the retrieved example validators
// document for unrecognized format values.
var Registry = map[string]Checker{
	"date-time": DateTime,
	"date":      Date,
	"time":      Time,
	"email":     Email,
	"hostname":  Hostname,
	"ipv4":      IPv4,
	"ipv6":      IPv6,
	"uri":       URI,
	"uri-reference": URIReference,
	"regex":     Regex,
}

// Lookup returns the Checker for a format name, and whether it is known.
func Lookup(name string) (Checker, bool) {
	c, ok := Registry[name]
	return c, ok
}

// DateTime reports whether s is a valid RFC 3339 date-time, grounded on the
// same time.Parse(time.RFC3339...) approach the validator's predecessor used
// for its RFC3339 codec. A trailing fractional-second component is optional.
func DateTime(s string) bool {
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// Date reports whether s is a valid full-date (RFC 3339 section 5.6).
func Date(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Time reports whether s is a valid full-time (RFC 3339 section 5.6).
func Time(s string) bool {
	if _, err := time.Parse("15:04:05Z07:00", s); err == nil {
		return true
	}
	_, err := time.Parse("15:04:05.999999999Z07:00", s)
	return err == nil
}

// Email reports whether s is a syntactically valid email address per
// net/mail's address parser, rejecting display-name forms ("Name <a@b>")
// since the format assertion expects a bare address.
func Email(s string) bool {
	if strings.ContainsAny(s, "<>") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// Hostname reports whether s is a syntactically valid DNS hostname (RFC
// 1123 label rules).
func Hostname(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}
	s = strings.TrimSuffix(s, ".")
	labels := strings.Split(s, ".")
	for _, label := range labels {
		if !validHostLabel(label) {
			return false
		}
	}
	return true
}

func validHostLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}

// IPv4 reports whether s is a dotted-quad IPv4 address.
func IPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && strings.Count(s, ":") == 0
}

// IPv6 reports whether s is an IPv6 address.
func IPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() == nil && strings.Contains(s, ":")
}

// URI reports whether s is an absolute URI (scheme required), per RFC 3986.
func URI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// URIReference reports whether s is any valid URI reference, absolute or
// relative.
func URIReference(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

// Regex reports whether s is a valid ECMA-262 regular expression, using the
// same dlclark/regexp2 engine the validator's pattern keyword compiles
// against, so a string accepted here is guaranteed compilable as a pattern
// elsewhere.
func Regex(s string) bool {
	_, err := regexp2.Compile(s, regexp2.ECMAScript)
	return err == nil
}
