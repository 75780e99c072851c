package schema

import (
	"fmt"

	"github.com/schemacore/jsonschema/i18n"
	"github.com/schemacore/jsonschema/value"
)

func init() {
	registerKeyword("prefixItems", parsePrefixItems)
	registerKeyword("items", parseItems)
	registerKeyword("additionalItems", parseAdditionalItems)
	registerKeyword("minItems", parseMinItems)
	registerKeyword("maxItems", parseMaxItems)
	registerKeyword("uniqueItems", parseUniqueItems)
	registerKeyword("contains", parseContains)
	registerKeyword("unevaluatedItems", parseUnevaluatedItems)
}

// ---- prefixItems (2020-12 tuple form) ----

type prefixItemsKeyword struct{ subs []*Schema }

func parsePrefixItems(member value.Node, s *Schema, d Draft) (Keyword, error) {
	subs, err := compileSubList(member, s, d, "prefixItems")
	if err != nil {
		return nil, err
	}
	return prefixItemsKeyword{subs: subs}, nil
}

func (prefixItemsKeyword) Name() string { return "prefixItems" }

func (k prefixItemsKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	items, err := args.inst.Items()
	if err != nil {
		return pass(args)
	}
	res := pass(args)
	n := len(k.subs)
	if n > len(items) {
		n = len(items)
	}
	for i := 0; i < n; i++ {
		child := k.subs[i].Evaluate(ctx, items[i], args.instLoc.Index(i), args.schemaLoc.Index(i))
		res.Children = append(res.Children, child)
		state.markItem(i)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Error = "one or more prefixItems schemas did not validate"
	}
	res.Annotations = map[string]any{"items": n}
	return res
}

// ---- items ----
// Under Draft2020_12 items is a single trailing schema applied at indices at
// or beyond however many prefixItems this schema declares. Under older
// drafts items may be a single schema (applies to every element) or an
// array (positional tuple validation, with additionalItems covering the
// remainder).

type itemsSingleKeyword struct {
	sub    *Schema
	offset int // 0 except under 2020-12 with sibling prefixItems
}

type itemsTupleKeyword struct{ subs []*Schema }

func parseItems(member value.Node, s *Schema, d Draft) (Keyword, error) {
	if !member.IsArray() || d.atLeast(Draft2020_12) {
		sub, err := compileAt(member, s.baseURI, d)
		if err != nil {
			return nil, err
		}
		offset := 0
		if d.atLeast(Draft2020_12) {
			if pre, ok := s.raw.Get("prefixItems"); ok {
				if items, err := pre.Items(); err == nil {
					offset = len(items)
				}
			}
		}
		return itemsSingleKeyword{sub: sub, offset: offset}, nil
	}
	subs, err := compileSubList(member, s, d, "items")
	if err != nil {
		return nil, err
	}
	return itemsTupleKeyword{subs: subs}, nil
}

func (itemsSingleKeyword) Name() string { return "items" }

func (k itemsSingleKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	items, err := args.inst.Items()
	if err != nil {
		return pass(args)
	}
	res := pass(args)
	for i := k.offset; i < len(items); i++ {
		child := k.sub.Evaluate(ctx, items[i], args.instLoc.Index(i), args.schemaLoc)
		res.Children = append(res.Children, child)
		state.markItem(i)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Error = "one or more items did not validate"
	}
	res.Annotations = map[string]any{"items": len(items)}
	return res
}

func (itemsTupleKeyword) Name() string { return "items" }

func (k itemsTupleKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	items, err := args.inst.Items()
	if err != nil {
		return pass(args)
	}
	res := pass(args)
	n := len(k.subs)
	if n > len(items) {
		n = len(items)
	}
	for i := 0; i < n; i++ {
		child := k.subs[i].Evaluate(ctx, items[i], args.instLoc.Index(i), args.schemaLoc.Index(i))
		res.Children = append(res.Children, child)
		state.markItem(i)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Error = "one or more positional items did not validate"
	}
	res.Annotations = map[string]any{"items": n}
	return res
}

// ---- additionalItems (pre-2019-09 trailing schema after a tuple items) ----

type additionalItemsKeyword struct {
	sub     *Schema
	tupleLen int
}

func parseAdditionalItems(member value.Node, s *Schema, d Draft) (Keyword, error) {
	itemsNode, ok := s.raw.Get("items")
	if !ok || !itemsNode.IsArray() {
		// Only meaningful alongside a tuple-form items; otherwise a no-op.
		return nil, nil
	}
	sub, err := compileAt(member, s.baseURI, d)
	if err != nil {
		return nil, err
	}
	items, _ := itemsNode.Items()
	return additionalItemsKeyword{sub: sub, tupleLen: len(items)}, nil
}

func (additionalItemsKeyword) Name() string { return "additionalItems" }

func (k additionalItemsKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	items, err := args.inst.Items()
	if err != nil {
		return pass(args)
	}
	res := pass(args)
	for i := k.tupleLen; i < len(items); i++ {
		child := k.sub.Evaluate(ctx, items[i], args.instLoc.Index(i), args.schemaLoc)
		res.Children = append(res.Children, child)
		state.markItem(i)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Error = "one or more additional items did not validate"
	}
	return res
}

// ---- minItems / maxItems ----

type minItemsKeyword struct{ min int }

func parseMinItems(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil || !n.IsInteger() {
		return nil, &compileError{path: "/minItems", msg: "minItems must be a non-negative integer"}
	}
	f, _ := n.Float64()
	return minItemsKeyword{min: int(f)}, nil
}

func (minItemsKeyword) Name() string { return "minItems" }

func (k minItemsKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	items, err := args.inst.Items()
	if err != nil {
		return pass(args)
	}
	if len(items) >= k.min {
		return pass(args)
	}
	return failCode(args, IssueTooFewItems, fmt.Sprintf("array has fewer than minItems %d elements", k.min))
}

type maxItemsKeyword struct{ max int }

func parseMaxItems(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil || !n.IsInteger() {
		return nil, &compileError{path: "/maxItems", msg: "maxItems must be a non-negative integer"}
	}
	f, _ := n.Float64()
	return maxItemsKeyword{max: int(f)}, nil
}

func (maxItemsKeyword) Name() string { return "maxItems" }

func (k maxItemsKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	items, err := args.inst.Items()
	if err != nil {
		return pass(args)
	}
	if len(items) <= k.max {
		return pass(args)
	}
	return failCode(args, IssueTooManyItems, fmt.Sprintf("array has more than maxItems %d elements", k.max))
}

// ---- uniqueItems ----

type uniqueItemsKeyword struct{ enabled bool }

func parseUniqueItems(member value.Node, s *Schema, d Draft) (Keyword, error) {
	b, err := member.AsBool()
	if err != nil {
		return nil, &compileError{path: "/uniqueItems", msg: "uniqueItems must be a boolean"}
	}
	return uniqueItemsKeyword{enabled: b}, nil
}

func (uniqueItemsKeyword) Name() string { return "uniqueItems" }

func (k uniqueItemsKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	if !k.enabled {
		return pass(args)
	}
	items, err := args.inst.Items()
	if err != nil {
		return pass(args)
	}
	for i := 1; i < len(items); i++ {
		if value.Contains(items[:i], items[i]) {
			return failCode(args, IssueUniqueItems, fmt.Sprintf("array elements at index %d duplicates an earlier element", i))
		}
	}
	return pass(args)
}

// ---- contains / minContains / maxContains ----

type containsKeyword struct {
	sub         *Schema
	min, max    int
	hasMin      bool
	hasMax      bool
}

func parseContains(member value.Node, s *Schema, d Draft) (Keyword, error) {
	sub, err := compileAt(member, s.baseURI, d)
	if err != nil {
		return nil, err
	}
	k := containsKeyword{sub: sub}
	if d.atLeast(Draft2019_09) {
		if mc, ok := s.raw.Get("minContains"); ok {
			if n, err := mc.AsNumber(); err == nil {
				if f, ok := n.Float64(); ok {
					k.min, k.hasMin = int(f), true
				}
			}
		}
		if mc, ok := s.raw.Get("maxContains"); ok {
			if n, err := mc.AsNumber(); err == nil {
				if f, ok := n.Float64(); ok {
					k.max, k.hasMax = int(f), true
				}
			}
		}
	}
	return k, nil
}

func (containsKeyword) Name() string { return "contains" }

func (k containsKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	items, err := args.inst.Items()
	if err != nil {
		return pass(args)
	}
	count := 0
	for i, it := range items {
		child := k.sub.Evaluate(ctx, it, args.instLoc.Index(i), args.schemaLoc)
		if child.Valid {
			count++
			state.markItem(i)
		}
	}
	min := k.min
	if !k.hasMin {
		min = 1
	}
	if count < min {
		return failCode(args, IssueContains, fmt.Sprintf("array contains %d matching elements, fewer than the required %d", count, min))
	}
	if k.hasMax && count > k.max {
		return failCode(args, IssueContains, fmt.Sprintf("array contains %d matching elements, more than the allowed %d", count, k.max))
	}
	return pass(args)
}

// minContains/maxContains are consumed as part of contains above; they are
// structural modifiers with no independent evaluation, so they register as
// no-ops to keep the descriptor table aware of them for draft gating.

func init() {
	registerKeyword("minContains", noopKeyword("minContains"))
	registerKeyword("maxContains", noopKeyword("maxContains"))
}

// ---- unevaluatedItems ----

type unevaluatedItemsKeyword struct{ sub *Schema }

func parseUnevaluatedItems(member value.Node, s *Schema, d Draft) (Keyword, error) {
	sub, err := compileAt(member, s.baseURI, d)
	if err != nil {
		return nil, err
	}
	return unevaluatedItemsKeyword{sub: sub}, nil
}

func (unevaluatedItemsKeyword) Name() string { return "unevaluatedItems" }

func (k unevaluatedItemsKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	items, err := args.inst.Items()
	if err != nil {
		return pass(args)
	}
	res := pass(args)
	for i, it := range items {
		if state.itemEvaluated(i) {
			continue
		}
		child := k.sub.Evaluate(ctx, it, args.instLoc.Index(i), args.schemaLoc)
		res.Children = append(res.Children, child)
		state.markItem(i)
		if !child.Valid {
			res.Valid = false
		}
	}
	if !res.Valid {
		res.Code = IssueUnevaluatedItem
		res.Error = i18n.T(IssueUnevaluatedItem, nil)
	}
	return res
}
