package schema

import (
	"github.com/schemacore/jsonschema/pointer"
	"github.com/schemacore/jsonschema/value"
)

// Evaluate applies the schema to inst located at instLoc within the overall
// instance document, with schemaLoc locating this schema node within the
// overall (possibly $ref-traversed) schema document.
func (s *Schema) Evaluate(ctx *Context, inst value.Node, instLoc, schemaLoc pointer.Pointer) Result {
	if b, ok := s.IsBoolean(); ok {
		return Result{
			InstanceLocation: instLoc,
			SchemaLocation:   schemaLoc,
			KeywordLocation:  s.keywordLocation(schemaLoc),
			Valid:            b,
			Error:            boolSchemaError(b),
		}
	}

	state := newApplyState()
	root := Result{
		InstanceLocation: instLoc,
		SchemaLocation:   schemaLoc,
		KeywordLocation:  s.keywordLocation(schemaLoc),
		Valid:            true,
	}

	for _, bk := range s.keywords {
		args := evalArgs{
			instLoc:    instLoc,
			schemaLoc:  schemaLoc.Field(bk.name),
			keywordLoc: s.keywordLocation(schemaLoc.Field(bk.name)),
			inst:       inst,
		}
		child := bk.kw.Evaluate(ctx, args, state)
		root.Children = append(root.Children, child)
		if !child.Valid {
			root.Valid = false
			if ctx.Opts.ApplyOptimizations {
				// The loop continues past a failing keyword even with
				// optimizations on: applicators that feed annotations
				// (properties, items, etc.) still need to run so
				// unevaluatedProperties/unevaluatedItems see accurate
				// state, so we do not break here.
			}
		}
	}

	if root.Valid {
		root.Annotations = collectAnnotations(root.Children)
	}
	return root
}

func boolSchemaError(b bool) string {
	if b {
		return ""
	}
	// Wording is load-bearing: callers match this exact string for the
	// false schema (rather than the usual per-keyword failure message,
	// since a boolean false schema has no keywords to attach one to).
	return "All values fail against the false schema"
}

func (s *Schema) keywordLocation(schemaLoc pointer.Pointer) string {
	return s.baseURI + "#" + schemaLoc.String()
}

func collectAnnotations(children []Result) map[string]any {
	out := map[string]any{}
	for _, c := range children {
		for k, v := range c.Annotations {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
