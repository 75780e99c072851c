package schema

import "github.com/schemacore/jsonschema/value"

// PredicateCheck is a custom keyword expressed as a single boolean check:
// does inst satisfy some condition derived from member, the keyword's raw
// value in the schema document. It covers the common vendor-keyword case
// that needs no nested schema or annotations of its own.
type PredicateCheck func(member value.Node, inst value.Node) (bool, string)

// RegisterPredicateKeyword installs a custom keyword under name backed by a
// PredicateCheck, for packages (like vocab) that want to extend the
// registry without implementing the Keyword interface's internally-typed
// Evaluate method directly.
func RegisterPredicateKeyword(name string, check PredicateCheck) {
	RegisterKeyword(name, func(member value.Node, s *Schema, d Draft) (Keyword, error) {
		return predicateKeyword{name: name, member: member, check: check}, nil
	})
}

type predicateKeyword struct {
	name   string
	member value.Node
	check  PredicateCheck
}

func (k predicateKeyword) Name() string { return k.name }

func (k predicateKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	ok, msg := k.check(k.member, args.inst)
	if ok {
		return pass(args)
	}
	return fail(args, msg)
}
