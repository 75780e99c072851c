package schema

import (
	"github.com/schemacore/jsonschema/pointer"
	"github.com/schemacore/jsonschema/value"
)

// EvalOptions are the knobs threaded through evaluation of a compiled
// Schema, mirroring the teacher's ParseOpt bundling (one struct of
// orthogonal knobs rather than functional options).
type EvalOptions struct {
	Draft              Draft
	ApplyOptimizations bool
	AssertFormat       bool
}

// RefResolver resolves a $ref URI (possibly relative to base) to a compiled
// Schema. It is implemented by the registry package; Context depends only
// on this small interface so schema and registry do not import each other.
type RefResolver interface {
	Resolve(ref, base string) (*Schema, error)
}

// Context carries per-validation-run state: options, the $ref resolver, and
// cycle detection for recursive schemas.
type Context struct {
	Opts     EvalOptions
	Resolver RefResolver

	refStack []refFrame
}

// refFrame identifies one in-flight $ref application: the absolute schema
// URI being dereferenced together with the instance location it is being
// applied to. Keying on the pair (rather than the URI alone) distinguishes
// a genuinely recursive schema applied to distinct, ever-deepening parts of
// the instance (e.g. a linked-list or tree schema, which must keep
// recursing) from an actual cycle, where the same schema is reapplied to
// the very same instance node and would otherwise recurse forever.
type refFrame struct {
	uri     string
	instLoc string
}

func (c *Context) pushRef(uri string, instLoc pointer.Pointer) bool {
	key := refFrame{uri: uri, instLoc: instLoc.String()}
	for _, f := range c.refStack {
		if f == key {
			return false
		}
	}
	c.refStack = append(c.refStack, key)
	return true
}

func (c *Context) popRef() {
	if n := len(c.refStack); n > 0 {
		c.refStack = c.refStack[:n-1]
	}
}

// evalArgs locates one keyword application within the result tree.
type evalArgs struct {
	instLoc    pointer.Pointer
	schemaLoc  pointer.Pointer
	keywordLoc string
	inst       value.Node
}

// applyState accumulates annotations produced by sibling keywords within a
// single schema application, for keywords that consume them
// (additionalProperties/unevaluatedProperties/unevaluatedItems).
type applyState struct {
	evaluatedProps map[string]bool
	evaluatedItems map[int]bool
}

func newApplyState() *applyState {
	return &applyState{evaluatedProps: map[string]bool{}, evaluatedItems: map[int]bool{}}
}

func (s *applyState) markProp(name string)  { s.evaluatedProps[name] = true }
func (s *applyState) markItem(i int)        { s.evaluatedItems[i] = true }
func (s *applyState) propEvaluated(n string) bool { return s.evaluatedProps[n] }
func (s *applyState) itemEvaluated(i int) bool    { return s.evaluatedItems[i] }

// Keyword evaluates one schema keyword against an instance.
type Keyword interface {
	// Name is the JSON Schema keyword this implementation handles.
	Name() string
	// Evaluate applies the keyword and returns its Result. state is shared
	// with sibling keywords evaluated in the same schema application.
	Evaluate(ctx *Context, args evalArgs, state *applyState) Result
}

// priority controls evaluation order within a schema object: keywords that
// produce annotations other keywords consume (properties before
// additionalProperties, items before unevaluatedItems) must run first.
// Keywords absent from this table get priority 6: after
// additionalProperties/propertyNames, before unevaluatedItems/
// unevaluatedProperties. Keywords with equal priority run in keyword-name
// order.
var priority = map[string]int{
	"$ref":                 0,
	"type":                 1,
	"enum":                 1,
	"const":                1,
	"properties":           2,
	"patternProperties":    2,
	"prefixItems":          2,
	"items":                3,
	"additionalItems":      4,
	"contains":             4,
	"additionalProperties": 5,
	"propertyNames":        5,
	"unevaluatedItems":     8,
	"unevaluatedProperties": 9,
}

func keywordPriority(name string) int {
	if p, ok := priority[name]; ok {
		return p
	}
	return 6
}

// draftIntroduced records the oldest draft (numerically largest, per the
// newest-first Draft ordering) a keyword is valid under. Keywords absent
// here are treated as valid under every draft this validator supports.
var draftIntroduced = map[string]Draft{
	"$recursiveRef":         Draft2019_09,
	"$recursiveAnchor":      Draft2019_09,
	"$dynamicRef":           Draft2020_12,
	"$dynamicAnchor":        Draft2020_12,
	"$anchor":               Draft2019_09,
	"$defs":                 Draft2019_09,
	"prefixItems":           Draft2020_12,
	"unevaluatedItems":      Draft2019_09,
	"unevaluatedProperties": Draft2019_09,
	"dependentRequired":     Draft2019_09,
	"dependentSchemas":      Draft2019_09,
	"minContains":           Draft2019_09,
	"maxContains":           Draft2019_09,
	"if":                    Draft7,
	"then":                  Draft7,
	"else":                  Draft7,
	"contentEncoding":       Draft7,
	"contentMediaType":      Draft7,
	"contentSchema":         Draft2019_09,
}

// draftRetired records the newest draft (numerically smallest) under which a
// keyword still applies; it is ignored by newer drafts in favor of a
// replacement (definitions -> $defs, dependencies -> dependentSchemas /
// dependentRequired).
var draftRetired = map[string]Draft{
	"definitions": Draft7,
	"dependencies": Draft7,
	"additionalItems": Draft2019_09,
}

func keywordAppliesUnder(name string, d Draft) bool {
	if min, ok := draftIntroduced[name]; ok && !d.atLeast(min) {
		return false
	}
	if max, ok := draftRetired[name]; ok && d.atLeast(max) && d != max {
		return false
	}
	return true
}
