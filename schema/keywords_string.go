package schema

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/schemacore/jsonschema/format"
	"github.com/schemacore/jsonschema/value"
)

func init() {
	registerKeyword("minLength", parseMinLength)
	registerKeyword("maxLength", parseMaxLength)
	registerKeyword("pattern", parsePattern)
	registerKeyword("format", parseFormat)
}

// utf16Len counts UTF-16 code units in s, the unit minLength/maxLength use
// (a surrogate-pair astral character like an emoji counts as 2, not 1).
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

type minLengthKeyword struct{ min int }

func parseMinLength(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil || !n.IsInteger() {
		return nil, &compileError{path: "/minLength", msg: "minLength must be a non-negative integer"}
	}
	f, _ := n.Float64()
	return minLengthKeyword{min: int(f)}, nil
}

func (minLengthKeyword) Name() string { return "minLength" }

func (k minLengthKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	s, err := args.inst.AsString()
	if err != nil {
		return pass(args)
	}
	if utf16Len(s) >= k.min {
		return pass(args)
	}
	return failCode(args, IssueTooShort, fmt.Sprintf("string is shorter than minLength %d", k.min))
}

type maxLengthKeyword struct{ max int }

func parseMaxLength(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil || !n.IsInteger() {
		return nil, &compileError{path: "/maxLength", msg: "maxLength must be a non-negative integer"}
	}
	f, _ := n.Float64()
	return maxLengthKeyword{max: int(f)}, nil
}

func (maxLengthKeyword) Name() string { return "maxLength" }

func (k maxLengthKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	s, err := args.inst.AsString()
	if err != nil {
		return pass(args)
	}
	if utf16Len(s) <= k.max {
		return pass(args)
	}
	return failCode(args, IssueTooLong, fmt.Sprintf("string is longer than maxLength %d", k.max))
}

type patternKeyword struct {
	source string
	re     *regexp2.Regexp
}

// parsePattern compiles against the ECMAScript dialect via regexp2, not
// Go's native RE2 (regexp), because RE2 cannot express backreferences or
// lookaround that ECMA-262 patterns in schema documents may use.
func parsePattern(member value.Node, s *Schema, d Draft) (Keyword, error) {
	src, err := member.AsString()
	if err != nil {
		return nil, &compileError{path: "/pattern", msg: "pattern must be a string"}
	}
	re, err := regexp2.Compile(src, regexp2.ECMAScript)
	if err != nil {
		return nil, &compileError{path: "/pattern", msg: "invalid regular expression: " + err.Error()}
	}
	return patternKeyword{source: src, re: re}, nil
}

func (patternKeyword) Name() string { return "pattern" }

func (k patternKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	s, err := args.inst.AsString()
	if err != nil {
		return pass(args)
	}
	matched, err := k.re.MatchString(s)
	if err == nil && matched {
		return pass(args)
	}
	return failCode(args, IssuePattern, fmt.Sprintf("string does not match pattern %q", k.source))
}

type formatKeyword struct {
	name   string
	assert bool
}

func parseFormat(member value.Node, s *Schema, d Draft) (Keyword, error) {
	name, err := member.AsString()
	if err != nil {
		return nil, &compileError{path: "/format", msg: "format must be a string"}
	}
	return formatKeyword{name: name}, nil
}

func (formatKeyword) Name() string { return "format" }

// Evaluate always runs the check (to surface the name annotation) but only
// turns a mismatch into a failure when ctx.Opts.AssertFormat is set, per
// 2019-09+ semantics where format is annotation-only by default.
func (k formatKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	s, err := args.inst.AsString()
	if err != nil {
		return pass(args)
	}
	checker, known := format.Lookup(k.name)
	res := pass(args)
	res.Annotations = map[string]any{"format": k.name}
	if !known {
		return res
	}
	if checker(s) {
		return res
	}
	if !ctx.Opts.AssertFormat {
		return res
	}
	return failCode(args, IssueFormat, fmt.Sprintf("string does not satisfy format %q", k.name))
}
