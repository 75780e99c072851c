package schema

import (
	"fmt"
	"strings"

	"github.com/schemacore/jsonschema/pointer"
)

// OutputFormat selects how a Result tree is rendered.
type OutputFormat int

const (
	Flag OutputFormat = iota
	Basic
	Detailed
	Verbose
)

// Result is one entry in the validation result tree: the outcome of
// applying one keyword (or nested schema) at one location.
type Result struct {
	InstanceLocation pointer.Pointer
	SchemaLocation   pointer.Pointer
	KeywordLocation  string
	Valid            bool
	Code             string
	Error            string
	Annotations      map[string]any
	Children         []Result
}

// Flag renders only the top-level boolean.
func (r Result) Flag() bool { return r.Valid }

// BasicEntry is one line of Basic output.
type BasicEntry struct {
	InstanceLocation string
	KeywordLocation  string
	Code             string
	Error            string
}

// Basic renders a flat list of every failing leaf.
func (r Result) Basic() []BasicEntry {
	var out []BasicEntry
	r.collectFailures(&out)
	return out
}

func (r Result) collectFailures(out *[]BasicEntry) {
	if !r.Valid && r.Error != "" {
		*out = append(*out, BasicEntry{
			InstanceLocation: r.InstanceLocation.String(),
			KeywordLocation:  r.KeywordLocation,
			Code:             r.Code,
			Error:            r.Error,
		})
	}
	for _, c := range r.Children {
		c.collectFailures(out)
	}
}

// Detailed prunes the tree to branches containing a failure, preserving
// hierarchy.
func (r Result) Detailed() (Result, bool) {
	if r.Valid {
		return Result{}, false
	}
	pruned := r
	pruned.Children = nil
	for _, c := range r.Children {
		if d, ok := c.Detailed(); ok {
			pruned.Children = append(pruned.Children, d)
		}
	}
	return pruned, true
}

// Verbose returns the tree unchanged, including passing branches.
func (r Result) Verbose() Result { return r }

// Render dispatches to the rendering named by format.
func (r Result) Render(format OutputFormat) string {
	switch format {
	case Flag:
		return fmt.Sprintf("%t", r.Valid)
	case Basic:
		var b strings.Builder
		for _, e := range r.Basic() {
			fmt.Fprintf(&b, "%s: %s (%s)\n", e.InstanceLocation, e.Error, e.KeywordLocation)
		}
		if b.Len() == 0 {
			return "valid\n"
		}
		return b.String()
	case Detailed:
		d, ok := r.Detailed()
		if !ok {
			return "valid\n"
		}
		var b strings.Builder
		d.writeTree(&b, 0)
		return b.String()
	case Verbose:
		var b strings.Builder
		r.writeTree(&b, 0)
		return b.String()
	default:
		return fmt.Sprintf("%t", r.Valid)
	}
}

func (r Result) writeTree(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	status := "pass"
	if !r.Valid {
		status = "fail"
	}
	fmt.Fprintf(b, "%s%s %s", indent, status, r.KeywordLocation)
	if r.Error != "" {
		fmt.Fprintf(b, ": %s", r.Error)
	}
	if r.Code != "" {
		fmt.Fprintf(b, " [%s]", r.Code)
	}
	b.WriteByte('\n')
	for _, c := range r.Children {
		c.writeTree(b, depth+1)
	}
}
