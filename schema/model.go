package schema

import (
	"sort"

	"github.com/schemacore/jsonschema/value"
)

// Schema is a compiled JSON Schema: either a boolean schema (true accepts
// everything, false rejects everything) or a structured schema holding its
// compiled keyword set.
type Schema struct {
	boolValue *bool

	raw      value.Node
	id       string
	anchor   string
	baseURI  string
	keywords []boundKeyword
}

type boundKeyword struct {
	name string
	kw   Keyword
}

// BoolSchema wraps a literal true/false schema.
func BoolSchema(v bool) *Schema { return &Schema{boolValue: &v} }

// IsBoolean reports whether this is a boolean schema, and its value.
func (s *Schema) IsBoolean() (bool, bool) {
	if s.boolValue == nil {
		return false, false
	}
	return *s.boolValue, true
}

// Compile parses a raw schema document (already decoded into a value.Node)
// into a Schema, recursively compiling nested subschemas. baseURI is the
// resolution base for any relative $ref/$id found in this document; d
// selects which keywords are recognized.
func Compile(doc value.Node, baseURI string, d Draft) (*Schema, error) {
	return compileAt(doc, baseURI, d)
}

func compileAt(doc value.Node, baseURI string, d Draft) (*Schema, error) {
	if doc.IsBool() {
		b, _ := doc.AsBool()
		return BoolSchema(b), nil
	}
	if !doc.IsObject() {
		return nil, &compileError{path: "/", msg: "schema must be an object or boolean"}
	}

	s := &Schema{raw: doc, baseURI: baseURI}

	if idNode, ok := doc.Get("$id"); ok {
		if id, err := idNode.AsString(); err == nil {
			s.id = id
			s.baseURI = resolveURI(baseURI, id)
		}
	}
	if anchorNode, ok := doc.Get("$anchor"); ok {
		if a, err := anchorNode.AsString(); err == nil {
			s.anchor = a
		}
	}

	keys, err := doc.Keys()
	if err != nil {
		return nil, &compileError{path: "/", msg: "schema object has no keys"}
	}

	var names []string
	for _, k := range keys {
		if !keywordAppliesUnder(k, d) {
			continue
		}
		if _, ok := parsers[k]; ok {
			names = append(names, k)
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		pi, pj := keywordPriority(names[i]), keywordPriority(names[j])
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		member, _ := doc.Get(name)
		parse := parsers[name]
		kw, err := parse(member, s, d)
		if err != nil {
			return nil, err
		}
		if kw != nil {
			s.keywords = append(s.keywords, boundKeyword{name: name, kw: kw})
		}
	}

	return s, nil
}

// keywordParser builds a Keyword from its raw member value. s is the
// enclosing (partially built) Schema, for resolving sibling state such as
// baseURI during nested compilation.
type keywordParser func(member value.Node, s *Schema, d Draft) (Keyword, error)

var parsers = map[string]keywordParser{}

func registerKeyword(name string, p keywordParser) { parsers[name] = p }

// RegisterKeyword installs a keyword implementation under name, for custom
// vocabularies the validation-vocabulary descriptor table does not cover.
// Registration is idempotent; registering the same name again replaces the
// previous parser, matching the teacher's SetJSONDriver-style global-setter
// idiom for pluggable behavior.
func RegisterKeyword(name string, p func(member value.Node, s *Schema, d Draft) (Keyword, error)) {
	parsers[name] = p
}

// compileError is a lightweight structural error returned by Compile; the
// jsonschema package wraps these into its own ParseError type.
type compileError struct {
	path string
	msg  string
}

func (e *compileError) Error() string { return e.msg }
func (e *compileError) Path() string  { return e.path }

// Code returns "" for an ordinary structural compileError; wrapCompileErr
// in the jsonschema root package falls back to CodeParseError in that case.
func (e *compileError) Code() string { return "" }
