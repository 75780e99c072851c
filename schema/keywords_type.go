package schema

import (
	"fmt"

	"github.com/schemacore/jsonschema/i18n"
	"github.com/schemacore/jsonschema/value"
)

func init() {
	registerKeyword("type", parseType)
	registerKeyword("enum", parseEnum)
	registerKeyword("const", parseConst)
	registerKeyword("not", parseNot)
	registerKeyword("allOf", parseAllOf)
	registerKeyword("anyOf", parseAnyOf)
	registerKeyword("oneOf", parseOneOf)
	registerKeyword("if", parseIf)
}

// ---- type ----

type typeKeyword struct{ names []string }

func parseType(member value.Node, s *Schema, d Draft) (Keyword, error) {
	if member.IsString() {
		n, _ := member.AsString()
		return typeKeyword{names: []string{n}}, nil
	}
	items, err := member.Items()
	if err != nil {
		return nil, &compileError{path: "/type", msg: "type must be a string or array of strings"}
	}
	var names []string
	for _, it := range items {
		n, err := it.AsString()
		if err != nil {
			return nil, &compileError{path: "/type", msg: "type array must contain only strings"}
		}
		names = append(names, n)
	}
	return typeKeyword{names: names}, nil
}

func (typeKeyword) Name() string { return "type" }

func (k typeKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	kind := instanceTypeName(args.inst)
	for _, n := range k.names {
		if n == kind {
			return pass(args)
		}
		if n == "integer" && kind == "number" {
			if num, err := args.inst.AsNumber(); err == nil && num.IsInteger() {
				return pass(args)
			}
		}
	}
	return failCode(args, IssueInvalidType, fmt.Sprintf("expected type %v, got %s", k.names, kind))
}

func instanceTypeName(n value.Node) string {
	switch n.Kind() {
	case value.KindNull:
		return "null"
	case value.KindBool:
		return "boolean"
	case value.KindNumber:
		return "number"
	case value.KindString:
		return "string"
	case value.KindArray:
		return "array"
	case value.KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// ---- enum ----

type enumKeyword struct{ values []value.Node }

func parseEnum(member value.Node, s *Schema, d Draft) (Keyword, error) {
	items, err := member.Items()
	if err != nil {
		return nil, &compileError{path: "/enum", msg: "enum must be an array"}
	}
	return enumKeyword{values: items}, nil
}

func (enumKeyword) Name() string { return "enum" }

func (k enumKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	if value.Contains(k.values, args.inst) {
		return pass(args)
	}
	return failCode(args, IssueEnum, "")
}

// ---- const ----

type constKeyword struct{ value value.Node }

func parseConst(member value.Node, s *Schema, d Draft) (Keyword, error) {
	return constKeyword{value: member}, nil
}

func (constKeyword) Name() string { return "const" }

func (k constKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	if value.Equal(k.value, args.inst) {
		return pass(args)
	}
	return failCode(args, IssueConst, "")
}

// ---- not ----

type notKeyword struct{ sub *Schema }

func parseNot(member value.Node, s *Schema, d Draft) (Keyword, error) {
	sub, err := compileAt(member, s.baseURI, d)
	if err != nil {
		return nil, err
	}
	return notKeyword{sub: sub}, nil
}

func (notKeyword) Name() string { return "not" }

func (k notKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	inner := k.sub.Evaluate(ctx, args.inst, args.instLoc, args.schemaLoc)
	if inner.Valid {
		return failCode(args, IssueNot, "")
	}
	return pass(args)
}

// ---- allOf / anyOf / oneOf ----

type allOfKeyword struct{ subs []*Schema }

func parseAllOf(member value.Node, s *Schema, d Draft) (Keyword, error) {
	subs, err := compileSubList(member, s, d, "allOf")
	if err != nil {
		return nil, err
	}
	return allOfKeyword{subs: subs}, nil
}

func (allOfKeyword) Name() string { return "allOf" }

func (k allOfKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	res := pass(args)
	for i, sub := range k.subs {
		child := sub.Evaluate(ctx, args.inst, args.instLoc, args.schemaLoc.Index(i))
		res.Children = append(res.Children, child)
		mergeEvaluated(state, child)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Code = IssueAllOf
		res.Error = i18n.T(IssueAllOf, nil)
	}
	return res
}

type anyOfKeyword struct{ subs []*Schema }

func parseAnyOf(member value.Node, s *Schema, d Draft) (Keyword, error) {
	subs, err := compileSubList(member, s, d, "anyOf")
	if err != nil {
		return nil, err
	}
	return anyOfKeyword{subs: subs}, nil
}

func (anyOfKeyword) Name() string { return "anyOf" }

func (k anyOfKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	res := Result{InstanceLocation: args.instLoc, SchemaLocation: args.schemaLoc, KeywordLocation: args.keywordLoc}
	anyValid := false
	for i, sub := range k.subs {
		child := sub.Evaluate(ctx, args.inst, args.instLoc, args.schemaLoc.Index(i))
		res.Children = append(res.Children, child)
		if child.Valid {
			anyValid = true
			mergeEvaluated(state, child)
		}
	}
	res.Valid = anyValid
	if !anyValid {
		res.Code = IssueAnyOf
		res.Error = i18n.T(IssueAnyOf, nil)
	}
	return res
}

type oneOfKeyword struct{ subs []*Schema }

func parseOneOf(member value.Node, s *Schema, d Draft) (Keyword, error) {
	subs, err := compileSubList(member, s, d, "oneOf")
	if err != nil {
		return nil, err
	}
	return oneOfKeyword{subs: subs}, nil
}

func (oneOfKeyword) Name() string { return "oneOf" }

func (k oneOfKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	res := Result{InstanceLocation: args.instLoc, SchemaLocation: args.schemaLoc, KeywordLocation: args.keywordLoc}
	matches := 0
	for i, sub := range k.subs {
		child := sub.Evaluate(ctx, args.inst, args.instLoc, args.schemaLoc.Index(i))
		res.Children = append(res.Children, child)
		if child.Valid {
			matches++
			mergeEvaluated(state, child)
		}
	}
	res.Valid = matches == 1
	if !res.Valid {
		res.Code = IssueOneOf
		// Wording is load-bearing: callers match on "Expected N matching
		// subschema(s) but found M" rather than on Code alone.
		res.Error = fmt.Sprintf("Expected 1 matching subschema but found %d", matches)
	}
	return res
}

func compileSubList(member value.Node, s *Schema, d Draft, kw string) ([]*Schema, error) {
	items, err := member.Items()
	if err != nil {
		return nil, &compileError{path: "/" + kw, msg: kw + " must be an array of schemas"}
	}
	subs := make([]*Schema, len(items))
	for i, it := range items {
		sub, err := compileAt(it, s.baseURI, d)
		if err != nil {
			return nil, err
		}
		subs[i] = sub
	}
	return subs, nil
}

// ---- if / then / else ----
// if is compiled as a single keyword that also captures sibling then/else,
// since evaluating if requires knowing both at once.

type ifKeyword struct {
	condition  *Schema
	thenSchema *Schema
	elseSchema *Schema
}

func parseIf(member value.Node, s *Schema, d Draft) (Keyword, error) {
	cond, err := compileAt(member, s.baseURI, d)
	if err != nil {
		return nil, err
	}
	k := ifKeyword{condition: cond}
	if thenNode, ok := s.raw.Get("then"); ok {
		k.thenSchema, err = compileAt(thenNode, s.baseURI, d)
		if err != nil {
			return nil, err
		}
	}
	if elseNode, ok := s.raw.Get("else"); ok {
		k.elseSchema, err = compileAt(elseNode, s.baseURI, d)
		if err != nil {
			return nil, err
		}
	}
	return k, nil
}

func (ifKeyword) Name() string { return "if" }

func (k ifKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	condResult := k.condition.Evaluate(ctx, args.inst, args.instLoc, args.schemaLoc)
	var branch *Schema
	if condResult.Valid {
		branch = k.thenSchema
	} else {
		branch = k.elseSchema
	}
	if branch == nil {
		return pass(args)
	}
	child := branch.Evaluate(ctx, args.inst, args.instLoc, args.schemaLoc)
	mergeEvaluated(state, child)
	res := pass(args)
	res.Children = []Result{child}
	res.Valid = child.Valid
	if !res.Valid {
		res.Error = "if/then/else branch failed"
	}
	return res
}

func pass(args evalArgs) Result {
	return Result{InstanceLocation: args.instLoc, SchemaLocation: args.schemaLoc, KeywordLocation: args.keywordLoc, Valid: true}
}

func fail(args evalArgs, msg string) Result {
	return Result{InstanceLocation: args.instLoc, SchemaLocation: args.schemaLoc, KeywordLocation: args.keywordLoc, Valid: false, Error: msg}
}

// failCode builds a failing Result carrying code (one of the Issue*/Code*
// constants), translated through i18n.T, with an optional detail string
// appended for the specifics a locale-independent dictionary entry can't
// express (counts, offending values, and the like).
func failCode(args evalArgs, code, detail string) Result {
	msg := i18n.T(code, nil)
	if detail != "" {
		msg = msg + ": " + detail
	}
	return Result{InstanceLocation: args.instLoc, SchemaLocation: args.schemaLoc, KeywordLocation: args.keywordLoc, Valid: false, Code: code, Error: msg}
}

// mergeEvaluated folds a nested schema evaluation's own property/item
// tracking into the enclosing applyState, so unevaluatedProperties and
// unevaluatedItems at the top level see annotations produced inside allOf/
// anyOf/oneOf/if branches.
func mergeEvaluated(state *applyState, child Result) {
	if child.Annotations == nil {
		return
	}
	if props, ok := child.Annotations["properties"].([]string); ok {
		for _, p := range props {
			state.markProp(p)
		}
	}
	if n, ok := child.Annotations["items"].(int); ok {
		for i := 0; i < n; i++ {
			state.markItem(i)
		}
	}
}
