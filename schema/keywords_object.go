package schema

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/schemacore/jsonschema/i18n"
	"github.com/schemacore/jsonschema/value"
)

func init() {
	registerKeyword("properties", parseProperties)
	registerKeyword("patternProperties", parsePatternProperties)
	registerKeyword("additionalProperties", parseAdditionalProperties)
	registerKeyword("required", parseRequired)
	registerKeyword("propertyNames", parsePropertyNames)
	registerKeyword("minProperties", parseMinProperties)
	registerKeyword("maxProperties", parseMaxProperties)
	registerKeyword("dependentRequired", parseDependentRequired)
	registerKeyword("dependentSchemas", parseDependentSchemas)
	registerKeyword("dependencies", parseDependencies)
	registerKeyword("unevaluatedProperties", parseUnevaluatedProperties)
}

// ---- properties ----

type propertiesKeyword struct {
	names []string
	subs  map[string]*Schema
}

func parseProperties(member value.Node, s *Schema, d Draft) (Keyword, error) {
	keys, err := member.Keys()
	if err != nil {
		return nil, &compileError{path: "/properties", msg: "properties must be an object"}
	}
	subs := make(map[string]*Schema, len(keys))
	for _, k := range keys {
		v, _ := member.Get(k)
		sub, err := compileAt(v, s.baseURI, d)
		if err != nil {
			return nil, err
		}
		subs[k] = sub
	}
	return propertiesKeyword{names: keys, subs: subs}, nil
}

func (propertiesKeyword) Name() string { return "properties" }

func (k propertiesKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	res := pass(args)
	var matched []string
	for _, name := range k.names {
		v, ok := args.inst.Get(name)
		if !ok {
			continue
		}
		sub := k.subs[name]
		child := sub.Evaluate(ctx, v, args.instLoc.Field(name), args.schemaLoc.Field(name))
		res.Children = append(res.Children, child)
		matched = append(matched, name)
		state.markProp(name)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Error = "one or more properties did not validate"
	}
	res.Annotations = map[string]any{"properties": matched}
	return res
}

// ---- patternProperties ----

type patternPropEntry struct {
	source string
	re     *regexp2.Regexp
	sub    *Schema
}

type patternPropertiesKeyword struct{ entries []patternPropEntry }

func parsePatternProperties(member value.Node, s *Schema, d Draft) (Keyword, error) {
	keys, err := member.Keys()
	if err != nil {
		return nil, &compileError{path: "/patternProperties", msg: "patternProperties must be an object"}
	}
	var entries []patternPropEntry
	for _, k := range keys {
		re, err := regexp2.Compile(k, regexp2.ECMAScript)
		if err != nil {
			return nil, &compileError{path: "/patternProperties", msg: "invalid regular expression: " + err.Error()}
		}
		v, _ := member.Get(k)
		sub, err := compileAt(v, s.baseURI, d)
		if err != nil {
			return nil, err
		}
		entries = append(entries, patternPropEntry{source: k, re: re, sub: sub})
	}
	return patternPropertiesKeyword{entries: entries}, nil
}

func (patternPropertiesKeyword) Name() string { return "patternProperties" }

func (k patternPropertiesKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	keys, err := args.inst.Keys()
	if err != nil {
		return pass(args)
	}
	res := pass(args)
	var matched []string
	for _, name := range keys {
		v, _ := args.inst.Get(name)
		for _, entry := range k.entries {
			ok, err := entry.re.MatchString(name)
			if err != nil || !ok {
				continue
			}
			child := entry.sub.Evaluate(ctx, v, args.instLoc.Field(name), args.schemaLoc.Field(entry.source))
			res.Children = append(res.Children, child)
			matched = append(matched, name)
			state.markProp(name)
			if !child.Valid {
				res.Valid = false
			}
		}
	}
	if !res.Valid {
		res.Error = "one or more patternProperties did not validate"
	}
	res.Annotations = map[string]any{"properties": matched}
	return res
}

// ---- additionalProperties ----

type additionalPropertiesKeyword struct{ sub *Schema }

func parseAdditionalProperties(member value.Node, s *Schema, d Draft) (Keyword, error) {
	sub, err := compileAt(member, s.baseURI, d)
	if err != nil {
		return nil, err
	}
	return additionalPropertiesKeyword{sub: sub}, nil
}

func (additionalPropertiesKeyword) Name() string { return "additionalProperties" }

func (k additionalPropertiesKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	keys, err := args.inst.Keys()
	if err != nil {
		return pass(args)
	}
	res := pass(args)
	var matched []string
	for _, name := range keys {
		if state.propEvaluated(name) {
			continue
		}
		v, _ := args.inst.Get(name)
		child := k.sub.Evaluate(ctx, v, args.instLoc.Field(name), args.schemaLoc)
		res.Children = append(res.Children, child)
		matched = append(matched, name)
		state.markProp(name)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Code = IssueAdditionalProperty
		res.Error = i18n.T(IssueAdditionalProperty, nil)
	}
	res.Annotations = map[string]any{"properties": matched}
	return res
}

// ---- required ----

type requiredKeyword struct{ names []string }

func parseRequired(member value.Node, s *Schema, d Draft) (Keyword, error) {
	items, err := member.Items()
	if err != nil {
		return nil, &compileError{path: "/required", msg: "required must be an array of strings"}
	}
	names := make([]string, len(items))
	for i, it := range items {
		n, err := it.AsString()
		if err != nil {
			return nil, &compileError{path: "/required", msg: "required array must contain only strings"}
		}
		names[i] = n
	}
	return requiredKeyword{names: names}, nil
}

func (requiredKeyword) Name() string { return "required" }

func (k requiredKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	if !args.inst.IsObject() {
		return pass(args)
	}
	var missing []string
	for _, name := range k.names {
		if !args.inst.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return pass(args)
	}
	return failCode(args, IssueRequired, fmt.Sprintf("missing required properties: %v", missing))
}

// ---- propertyNames ----

type propertyNamesKeyword struct{ sub *Schema }

func parsePropertyNames(member value.Node, s *Schema, d Draft) (Keyword, error) {
	sub, err := compileAt(member, s.baseURI, d)
	if err != nil {
		return nil, err
	}
	return propertyNamesKeyword{sub: sub}, nil
}

func (propertyNamesKeyword) Name() string { return "propertyNames" }

func (k propertyNamesKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	keys, err := args.inst.Keys()
	if err != nil {
		return pass(args)
	}
	res := pass(args)
	for _, name := range keys {
		child := k.sub.Evaluate(ctx, value.String(name), args.instLoc.Field(name), args.schemaLoc)
		res.Children = append(res.Children, child)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Code = IssuePropertyNames
		res.Error = i18n.T(IssuePropertyNames, nil)
	}
	return res
}

// ---- minProperties / maxProperties ----

type minPropertiesKeyword struct{ min int }

func parseMinProperties(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil || !n.IsInteger() {
		return nil, &compileError{path: "/minProperties", msg: "minProperties must be a non-negative integer"}
	}
	f, _ := n.Float64()
	return minPropertiesKeyword{min: int(f)}, nil
}

func (minPropertiesKeyword) Name() string { return "minProperties" }

func (k minPropertiesKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	keys, err := args.inst.Keys()
	if err != nil {
		return pass(args)
	}
	if len(keys) >= k.min {
		return pass(args)
	}
	return failCode(args, IssueTooFewProperties, fmt.Sprintf("object has fewer than minProperties %d members", k.min))
}

type maxPropertiesKeyword struct{ max int }

func parseMaxProperties(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil || !n.IsInteger() {
		return nil, &compileError{path: "/maxProperties", msg: "maxProperties must be a non-negative integer"}
	}
	f, _ := n.Float64()
	return maxPropertiesKeyword{max: int(f)}, nil
}

func (maxPropertiesKeyword) Name() string { return "maxProperties" }

func (k maxPropertiesKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	keys, err := args.inst.Keys()
	if err != nil {
		return pass(args)
	}
	if len(keys) <= k.max {
		return pass(args)
	}
	return failCode(args, IssueTooManyProperties, fmt.Sprintf("object has more than maxProperties %d members", k.max))
}

// ---- dependentRequired (2019-09+) / dependencies (draft 6/7) ----

type dependentRequiredKeyword struct{ deps map[string][]string }

func parseDependentRequired(member value.Node, s *Schema, d Draft) (Keyword, error) {
	keys, err := member.Keys()
	if err != nil {
		return nil, &compileError{path: "/dependentRequired", msg: "dependentRequired must be an object"}
	}
	deps := make(map[string][]string, len(keys))
	for _, k := range keys {
		v, _ := member.Get(k)
		items, err := v.Items()
		if err != nil {
			return nil, &compileError{path: "/dependentRequired", msg: "dependentRequired values must be arrays of strings"}
		}
		names := make([]string, len(items))
		for i, it := range items {
			names[i], _ = it.AsString()
		}
		deps[k] = names
	}
	return dependentRequiredKeyword{deps: deps}, nil
}

func (dependentRequiredKeyword) Name() string { return "dependentRequired" }

func (k dependentRequiredKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	if !args.inst.IsObject() {
		return pass(args)
	}
	for trigger, required := range k.deps {
		if !args.inst.Has(trigger) {
			continue
		}
		for _, r := range required {
			if !args.inst.Has(r) {
				return failCode(args, IssueDependentRequired, fmt.Sprintf("property %q requires property %q", trigger, r))
			}
		}
	}
	return pass(args)
}

// ---- dependentSchemas (2019-09+) ----

type dependentSchemasKeyword struct{ schemas map[string]*Schema }

func parseDependentSchemas(member value.Node, s *Schema, d Draft) (Keyword, error) {
	keys, err := member.Keys()
	if err != nil {
		return nil, &compileError{path: "/dependentSchemas", msg: "dependentSchemas must be an object"}
	}
	schemas := make(map[string]*Schema, len(keys))
	for _, name := range keys {
		v, _ := member.Get(name)
		sub, err := compileAt(v, s.baseURI, d)
		if err != nil {
			return nil, err
		}
		schemas[name] = sub
	}
	return dependentSchemasKeyword{schemas: schemas}, nil
}

func (dependentSchemasKeyword) Name() string { return "dependentSchemas" }

func (k dependentSchemasKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	if !args.inst.IsObject() {
		return pass(args)
	}
	res := pass(args)
	for trigger, sub := range k.schemas {
		if !args.inst.Has(trigger) {
			continue
		}
		child := sub.Evaluate(ctx, args.inst, args.instLoc, args.schemaLoc.Field(trigger))
		res.Children = append(res.Children, child)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Error = "one or more dependentSchemas did not validate"
	}
	return res
}

// dependencies (draft 6/7) is each key's value either an array of required
// property names (dependentRequired's predecessor) or a schema applied
// whenever the key is present (dependentSchemas' predecessor).
type dependenciesKeyword struct {
	required map[string][]string
	schemas  map[string]*Schema
}

func parseDependencies(member value.Node, s *Schema, d Draft) (Keyword, error) {
	if d.atLeast(Draft2019_09) {
		return nil, nil
	}
	keys, err := member.Keys()
	if err != nil {
		return nil, &compileError{path: "/dependencies", msg: "dependencies must be an object"}
	}
	k := dependenciesKeyword{required: map[string][]string{}, schemas: map[string]*Schema{}}
	for _, name := range keys {
		v, _ := member.Get(name)
		if v.IsArray() {
			items, _ := v.Items()
			names := make([]string, len(items))
			for i, it := range items {
				names[i], _ = it.AsString()
			}
			k.required[name] = names
			continue
		}
		sub, err := compileAt(v, s.baseURI, d)
		if err != nil {
			return nil, err
		}
		k.schemas[name] = sub
	}
	return k, nil
}

func (dependenciesKeyword) Name() string { return "dependencies" }

func (k dependenciesKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	if !args.inst.IsObject() {
		return pass(args)
	}
	for trigger, required := range k.required {
		if !args.inst.Has(trigger) {
			continue
		}
		for _, r := range required {
			if !args.inst.Has(r) {
				return failCode(args, IssueDependentRequired, fmt.Sprintf("property %q requires property %q", trigger, r))
			}
		}
	}
	res := pass(args)
	for trigger, sub := range k.schemas {
		if !args.inst.Has(trigger) {
			continue
		}
		child := sub.Evaluate(ctx, args.inst, args.instLoc, args.schemaLoc.Field(trigger))
		res.Children = append(res.Children, child)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Error = "one or more dependency schemas did not validate"
	}
	return res
}

// ---- unevaluatedProperties ----

type unevaluatedPropertiesKeyword struct{ sub *Schema }

func parseUnevaluatedProperties(member value.Node, s *Schema, d Draft) (Keyword, error) {
	sub, err := compileAt(member, s.baseURI, d)
	if err != nil {
		return nil, err
	}
	return unevaluatedPropertiesKeyword{sub: sub}, nil
}

func (unevaluatedPropertiesKeyword) Name() string { return "unevaluatedProperties" }

func (k unevaluatedPropertiesKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	keys, err := args.inst.Keys()
	if err != nil {
		return pass(args)
	}
	res := pass(args)
	for _, name := range keys {
		if state.propEvaluated(name) {
			continue
		}
		v, _ := args.inst.Get(name)
		child := k.sub.Evaluate(ctx, v, args.instLoc.Field(name), args.schemaLoc)
		res.Children = append(res.Children, child)
		state.markProp(name)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Code = IssueUnevaluatedProperty
		res.Error = i18n.T(IssueUnevaluatedProperty, nil)
	}
	return res
}
