package schema

import "github.com/schemacore/jsonschema/value"

func init() {
	registerKeyword("$id", noopKeyword("$id"))
	registerKeyword("$anchor", noopKeyword("$anchor"))
	registerKeyword("$schema", noopKeyword("$schema"))
	registerKeyword("$comment", noopKeyword("$comment"))
	registerKeyword("$defs", noopKeyword("$defs"))
	registerKeyword("definitions", noopKeyword("definitions"))
	registerKeyword("title", noopKeyword("title"))
	registerKeyword("description", noopKeyword("description"))
	registerKeyword("default", noopKeyword("default"))
	registerKeyword("examples", noopKeyword("examples"))
	registerKeyword("readOnly", noopKeyword("readOnly"))
	registerKeyword("writeOnly", noopKeyword("writeOnly"))
	registerKeyword("deprecated", noopKeyword("deprecated"))
	registerKeyword("contentEncoding", noopKeyword("contentEncoding"))
	registerKeyword("contentMediaType", noopKeyword("contentMediaType"))
	registerKeyword("contentSchema", noopKeyword("contentSchema"))
}

// structuralKeyword never fails; it exists only so the schema compiler
// recognizes the member (for round-tripping and draft gating) without
// producing a spurious "unknown keyword" concern. $id/$anchor are already
// consumed directly by compileAt before keyword parsing runs; registering
// them here just keeps them out of any future strict-unknown-keyword mode.
type structuralKeyword struct{ name string }

func (k structuralKeyword) Name() string { return k.name }

func (k structuralKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	return pass(args)
}

func noopKeyword(name string) keywordParser {
	return func(member value.Node, s *Schema, d Draft) (Keyword, error) {
		return structuralKeyword{name: name}, nil
	}
}
