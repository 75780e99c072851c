package schema

import (
	"testing"

	"github.com/schemacore/jsonschema/pointer"
	"github.com/schemacore/jsonschema/value"
)

func compileString(t *testing.T, doc string, d Draft) *Schema {
	t.Helper()
	n, err := value.DecodeBytes([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s, err := Compile(n, "https://example.com/schema.json", d)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return s
}

func evalString(t *testing.T, s *Schema, inst string) Result {
	t.Helper()
	n, err := value.DecodeBytes([]byte(inst))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ctx := &Context{Opts: EvalOptions{Draft: Draft2020_12, ApplyOptimizations: true}}
	return s.Evaluate(ctx, n, pointer.Root(), pointer.Root())
}

func TestBooleanSchemas(t *testing.T) {
	n, _ := value.DecodeBytes([]byte(`"anything"`))
	ctx := &Context{}

	trueSchema := BoolSchema(true)
	if !trueSchema.Evaluate(ctx, n, pointer.Root(), pointer.Root()).Valid {
		t.Fatalf("expected true schema to validate")
	}

	falseSchema := BoolSchema(false)
	if falseSchema.Evaluate(ctx, n, pointer.Root(), pointer.Root()).Valid {
		t.Fatalf("expected false schema to reject")
	}
}

func TestTypeKeyword(t *testing.T) {
	s := compileString(t, `{"type": "string"}`, Draft2020_12)
	if !evalString(t, s, `"hello"`).Valid {
		t.Fatalf("expected string to validate")
	}
	if evalString(t, s, `42`).Valid {
		t.Fatalf("expected number to fail")
	}
}

func TestIntegerAcceptsWholeNumberFloat(t *testing.T) {
	s := compileString(t, `{"type": "integer"}`, Draft2020_12)
	if !evalString(t, s, `4.0`).Valid {
		t.Fatalf("expected 4.0 to validate as integer")
	}
	if evalString(t, s, `4.5`).Valid {
		t.Fatalf("expected 4.5 to fail as integer")
	}
}

func TestRequiredKeyword(t *testing.T) {
	s := compileString(t, `{"required": ["a", "b"]}`, Draft2020_12)
	if !evalString(t, s, `{"a": 1, "b": 2}`).Valid {
		t.Fatalf("expected object with both required properties to validate")
	}
	if evalString(t, s, `{"a": 1}`).Valid {
		t.Fatalf("expected object missing a required property to fail")
	}
}

func TestPropertiesAndAdditionalProperties(t *testing.T) {
	s := compileString(t, `{
		"properties": {"a": {"type": "number"}},
		"additionalProperties": false
	}`, Draft2020_12)
	if !evalString(t, s, `{"a": 1}`).Valid {
		t.Fatalf("expected known property to validate")
	}
	if evalString(t, s, `{"a": 1, "b": 2}`).Valid {
		t.Fatalf("expected additional property to fail")
	}
}

func TestMinimumMaximumExclusive(t *testing.T) {
	s := compileString(t, `{"minimum": 0, "exclusiveMaximum": 10}`, Draft2020_12)
	if !evalString(t, s, `5`).Valid {
		t.Fatalf("expected 5 to validate")
	}
	if evalString(t, s, `10`).Valid {
		t.Fatalf("expected 10 to fail exclusiveMaximum")
	}
	if evalString(t, s, `-1`).Valid {
		t.Fatalf("expected -1 to fail minimum")
	}
}

func TestMultipleOf(t *testing.T) {
	s := compileString(t, `{"multipleOf": 0.01}`, Draft2020_12)
	if !evalString(t, s, `9.8`).Valid {
		t.Fatalf("expected 9.8 to validate")
	}
	if evalString(t, s, `9.845`).Valid {
		t.Fatalf("expected 9.845 to fail")
	}
}

func TestEnumAndConst(t *testing.T) {
	s := compileString(t, `{"enum": ["a", "b", 1]}`, Draft2020_12)
	if !evalString(t, s, `"a"`).Valid {
		t.Fatalf("expected \"a\" to validate")
	}
	if !evalString(t, s, `1.0`).Valid {
		t.Fatalf("expected 1.0 to validate against enum value 1")
	}
	if evalString(t, s, `"c"`).Valid {
		t.Fatalf("expected \"c\" to fail")
	}

	cs := compileString(t, `{"const": 42}`, Draft2020_12)
	if !evalString(t, cs, `42`).Valid {
		t.Fatalf("expected 42 to validate")
	}
	if evalString(t, cs, `43`).Valid {
		t.Fatalf("expected 43 to fail")
	}
}

func TestAllOfAnyOfOneOf(t *testing.T) {
	all := compileString(t, `{"allOf": [{"type": "number"}, {"minimum": 0}]}`, Draft2020_12)
	if !evalString(t, all, `5`).Valid {
		t.Fatalf("expected 5 to validate allOf")
	}
	if evalString(t, all, `-5`).Valid {
		t.Fatalf("expected -5 to fail allOf")
	}

	any := compileString(t, `{"anyOf": [{"type": "string"}, {"type": "number"}]}`, Draft2020_12)
	if !evalString(t, any, `"x"`).Valid {
		t.Fatalf("expected \"x\" to validate anyOf")
	}
	if evalString(t, any, `true`).Valid {
		t.Fatalf("expected true to fail anyOf")
	}

	one := compileString(t, `{"oneOf": [{"multipleOf": 2}, {"multipleOf": 3}]}`, Draft2020_12)
	if !evalString(t, one, `4`).Valid {
		t.Fatalf("expected 4 to validate oneOf")
	}
	if evalString(t, one, `6`).Valid {
		t.Fatalf("expected 6 to fail oneOf (matches both branches)")
	}
}

func TestIfThenElse(t *testing.T) {
	s := compileString(t, `{
		"if": {"properties": {"kind": {"const": "a"}}},
		"then": {"required": ["x"]},
		"else": {"required": ["y"]}
	}`, Draft2020_12)
	if !evalString(t, s, `{"kind": "a", "x": 1}`).Valid {
		t.Fatalf("expected then-branch to validate")
	}
	if evalString(t, s, `{"kind": "a"}`).Valid {
		t.Fatalf("expected then-branch to fail without x")
	}
	if !evalString(t, s, `{"kind": "b", "y": 1}`).Valid {
		t.Fatalf("expected else-branch to validate")
	}
}

func TestPattern(t *testing.T) {
	s := compileString(t, `{"pattern": "^[a-z]+$"}`, Draft2020_12)
	if !evalString(t, s, `"abc"`).Valid {
		t.Fatalf("expected \"abc\" to validate")
	}
	if evalString(t, s, `"ABC"`).Valid {
		t.Fatalf("expected \"ABC\" to fail")
	}
}

func TestFormatAssertionOptIn(t *testing.T) {
	n, _ := value.DecodeBytes([]byte(`"not-an-email"`))
	s := compileString(t, `{"format": "email"}`, Draft2020_12)

	lenient := &Context{Opts: EvalOptions{Draft: Draft2020_12}}
	if !s.Evaluate(lenient, n, pointer.Root(), pointer.Root()).Valid {
		t.Fatalf("expected format to be annotation-only without AssertFormat")
	}

	strict := &Context{Opts: EvalOptions{Draft: Draft2020_12, AssertFormat: true}}
	if s.Evaluate(strict, n, pointer.Root(), pointer.Root()).Valid {
		t.Fatalf("expected format to assert with AssertFormat set")
	}
}

func TestArrayItemsPrefixItemsAndContains(t *testing.T) {
	s := compileString(t, `{
		"prefixItems": [{"type": "string"}],
		"items": {"type": "number"},
		"contains": {"const": 7}
	}`, Draft2020_12)
	if !evalString(t, s, `["a", 1, 2, 7]`).Valid {
		t.Fatalf("expected array to validate")
	}
	if evalString(t, s, `["a", 1, 2]`).Valid {
		t.Fatalf("expected array missing contains match to fail")
	}
	if evalString(t, s, `[1, 1, 2, 7]`).Valid {
		t.Fatalf("expected array with wrong prefixItems type to fail")
	}
}

func TestUniqueItems(t *testing.T) {
	s := compileString(t, `{"uniqueItems": true}`, Draft2020_12)
	if !evalString(t, s, `[1, 2, 3]`).Valid {
		t.Fatalf("expected distinct elements to validate")
	}
	if evalString(t, s, `[1, 2, 1]`).Valid {
		t.Fatalf("expected duplicate elements to fail")
	}
	if evalString(t, s, `[1.0, 1]`).Valid {
		t.Fatalf("expected 1.0 and 1 to be treated as duplicates")
	}
}

func TestUnevaluatedProperties(t *testing.T) {
	s := compileString(t, `{
		"allOf": [{"properties": {"a": true}}],
		"unevaluatedProperties": false
	}`, Draft2020_12)
	if !evalString(t, s, `{"a": 1}`).Valid {
		t.Fatalf("expected evaluated property to validate")
	}
	if evalString(t, s, `{"a": 1, "b": 2}`).Valid {
		t.Fatalf("expected unevaluated property to fail")
	}
}

func TestDraft7ExclusiveMinimumIsNumeric(t *testing.T) {
	// The boolean-modifier form belongs to Draft 4, which predates this
	// validator's supported-draft range; under Draft7 exclusiveMinimum is
	// the standalone numeric keyword, the same as 2019-09+.
	s := compileString(t, `{"exclusiveMinimum": 0}`, Draft7)
	if evalString(t, s, `0`).Valid {
		t.Fatalf("expected 0 to fail exclusiveMinimum 0")
	}
	if !evalString(t, s, `1`).Valid {
		t.Fatalf("expected 1 to pass exclusiveMinimum 0")
	}
}

func TestBasicAndDetailedRendering(t *testing.T) {
	s := compileString(t, `{"properties": {"a": {"type": "string"}}}`, Draft2020_12)
	res := evalString(t, s, `{"a": 1}`)
	if res.Valid {
		t.Fatalf("expected invalid result")
	}
	if len(res.Basic()) == 0 {
		t.Fatalf("expected non-empty Basic entries")
	}

	detailed, ok := res.Detailed()
	if !ok {
		t.Fatalf("expected Detailed to report ok")
	}
	if detailed.Valid {
		t.Fatalf("expected detailed result to be invalid")
	}
}
