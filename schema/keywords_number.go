package schema

import (
	"fmt"

	"github.com/schemacore/jsonschema/value"
)

func init() {
	registerKeyword("minimum", parseMinimum)
	registerKeyword("maximum", parseMaximum)
	registerKeyword("exclusiveMinimum", parseExclusiveMinimum)
	registerKeyword("exclusiveMaximum", parseExclusiveMaximum)
	registerKeyword("multipleOf", parseMultipleOf)
}

type minimumKeyword struct{ bound value.Number }

// minimum is always an inclusive bound in every draft this validator
// supports (Draft6, Draft7, 2019-09, 2020-12). The boolean-modifier form
// of exclusiveMinimum ("minimum": X, "exclusiveMinimum": true) belongs to
// Draft 4, which predates this validator's supported-draft range, so it is
// never consulted here.
func parseMinimum(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil {
		return nil, &compileError{path: "/minimum", msg: "minimum must be a number"}
	}
	return minimumKeyword{bound: n}, nil
}

func (minimumKeyword) Name() string { return "minimum" }

func (k minimumKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	n, err := args.inst.AsNumber()
	if err != nil {
		return pass(args)
	}
	cmp, ok := n.Cmp(k.bound)
	if !ok || cmp >= 0 {
		return pass(args)
	}
	return failCode(args, IssueMinimum, fmt.Sprintf("%s is less than the minimum of %s", n.String(), k.bound.String()))
}

type maximumKeyword struct{ bound value.Number }

func parseMaximum(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil {
		return nil, &compileError{path: "/maximum", msg: "maximum must be a number"}
	}
	return maximumKeyword{bound: n}, nil
}

func (maximumKeyword) Name() string { return "maximum" }

func (k maximumKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	n, err := args.inst.AsNumber()
	if err != nil {
		return pass(args)
	}
	cmp, ok := n.Cmp(k.bound)
	if !ok || cmp <= 0 {
		return pass(args)
	}
	return failCode(args, IssueMaximum, fmt.Sprintf("%s is greater than the maximum of %s", n.String(), k.bound.String()))
}

// exclusiveMinimum/exclusiveMaximum are independent numeric keywords under
// every draft this validator supports; unlike minimum/maximum's boolean
// modifier, that form never applies here (see above).

type exclusiveMinimumKeyword struct{ bound value.Number }

func parseExclusiveMinimum(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil {
		return nil, &compileError{path: "/exclusiveMinimum", msg: "exclusiveMinimum must be a number"}
	}
	return exclusiveMinimumKeyword{bound: n}, nil
}

func (exclusiveMinimumKeyword) Name() string { return "exclusiveMinimum" }

func (k exclusiveMinimumKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	n, err := args.inst.AsNumber()
	if err != nil {
		return pass(args)
	}
	cmp, ok := n.Cmp(k.bound)
	if !ok || cmp > 0 {
		return pass(args)
	}
	return failCode(args, IssueMinimum, fmt.Sprintf("%s is not strictly greater than %s", n.String(), k.bound.String()))
}

type exclusiveMaximumKeyword struct{ bound value.Number }

func parseExclusiveMaximum(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil {
		return nil, &compileError{path: "/exclusiveMaximum", msg: "exclusiveMaximum must be a number"}
	}
	return exclusiveMaximumKeyword{bound: n}, nil
}

func (exclusiveMaximumKeyword) Name() string { return "exclusiveMaximum" }

func (k exclusiveMaximumKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	n, err := args.inst.AsNumber()
	if err != nil {
		return pass(args)
	}
	cmp, ok := n.Cmp(k.bound)
	if !ok || cmp < 0 {
		return pass(args)
	}
	return failCode(args, IssueMaximum, fmt.Sprintf("%s is not strictly less than %s", n.String(), k.bound.String()))
}

type multipleOfKeyword struct{ divisor value.Number }

func parseMultipleOf(member value.Node, s *Schema, d Draft) (Keyword, error) {
	n, err := member.AsNumber()
	if err != nil {
		return nil, &compileError{path: "/multipleOf", msg: "multipleOf must be a number"}
	}
	return multipleOfKeyword{divisor: n}, nil
}

func (multipleOfKeyword) Name() string { return "multipleOf" }

func (k multipleOfKeyword) Evaluate(ctx *Context, args evalArgs, state *applyState) Result {
	n, err := args.inst.AsNumber()
	if err != nil {
		return pass(args)
	}
	divisible, ok := n.DivisibleBy(k.divisor)
	if !ok || divisible {
		return pass(args)
	}
	return failCode(args, IssueMultipleOf, fmt.Sprintf("%s is not a multiple of %s", n.String(), k.divisor.String()))
}
