package jsonschema_test

import (
	"testing"

	"github.com/schemacore/jsonschema"
	"github.com/schemacore/jsonschema/value"
)

func mustDecode(t *testing.T, raw string) value.Node {
	t.Helper()
	n, err := value.DecodeBytes([]byte(raw))
	if err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return n
}

func TestCompileAndValidateBasicObjectSchema(t *testing.T) {
	schemaDoc := mustDecode(t, `{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer", "minimum": 0}
		},
		"required": ["name"]
	}`)

	opts := jsonschema.DefaultOptions()
	s, err := jsonschema.Compile(schemaDoc, "", opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	good := mustDecode(t, `{"name": "ada", "age": 36}`)
	result := s.Validate(good)
	if !result.Valid {
		t.Fatalf("expected valid, got invalid")
	}

	bad := mustDecode(t, `{"age": -1}`)
	result = s.Validate(bad)
	if result.Valid {
		t.Fatalf("expected invalid")
	}
	basic := result.Basic()
	if len(basic) == 0 {
		t.Fatalf("expected at least one failing entry")
	}
}

func TestCompileBytesRejectsDuplicateKeys(t *testing.T) {
	opts := jsonschema.DefaultOptions()
	_, err := jsonschema.CompileBytes([]byte(`{"type":"string","type":"number"}`), "", opts)
	if err == nil {
		t.Fatalf("expected an error for duplicate keys")
	}
}

func TestValidateBytesEndToEnd(t *testing.T) {
	opts := jsonschema.DefaultOptions()
	s, err := jsonschema.CompileBytes([]byte(`{"type":"array","minItems":1}`), "", opts)
	if err != nil {
		t.Fatalf("CompileBytes: %v", err)
	}

	result, err := s.ValidateBytes([]byte(`[1,2,3]`))
	if err != nil {
		t.Fatalf("ValidateBytes: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid")
	}

	result, err = s.ValidateBytes([]byte(`[]`))
	if err != nil {
		t.Fatalf("ValidateBytes: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected invalid for empty array")
	}
}

func TestDraftGatingExclusiveMinimumNumericUnderDraft7(t *testing.T) {
	// exclusiveMinimum is always the standalone numeric keyword under every
	// draft this validator supports; Draft 7 does not get the
	// boolean-modifier form, which belongs to Draft 4.
	schemaDoc := mustDecode(t, `{"exclusiveMinimum": 0}`)

	opts := jsonschema.DefaultOptions()
	opts.ValidatingAs = jsonschema.Draft7
	s, err := jsonschema.Compile(schemaDoc, "", opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	zero := mustDecode(t, `0`)
	if s.Validate(zero).Valid {
		t.Fatalf("expected 0 to fail exclusiveMinimum 0")
	}

	one := mustDecode(t, `1`)
	if !s.Validate(one).Valid {
		t.Fatalf("expected 1 to pass exclusiveMinimum 0")
	}
}

func TestCompileRejectsUnsupportedDraft(t *testing.T) {
	schemaDoc := mustDecode(t, `{"type": "string"}`)
	opts := jsonschema.DefaultOptions()
	opts.ValidatingAs = jsonschema.Draft(99)
	_, err := jsonschema.Compile(schemaDoc, "", opts)
	if err == nil {
		t.Fatalf("expected an error for an out-of-range draft")
	}
	pe, ok := err.(*jsonschema.ParseError)
	if !ok {
		t.Fatalf("expected *jsonschema.ParseError, got %T", err)
	}
	if pe.Code != jsonschema.CodeUnsupportedDraft {
		t.Fatalf("expected code %q, got %q", jsonschema.CodeUnsupportedDraft, pe.Code)
	}
}

func TestCompileRejectsDuplicateID(t *testing.T) {
	schemaDoc := mustDecode(t, `{
		"$defs": {
			"a": {"$id": "https://example.com/dup"},
			"b": {"$id": "https://example.com/dup"}
		}
	}`)
	opts := jsonschema.DefaultOptions()
	_, err := jsonschema.Compile(schemaDoc, "", opts)
	if err == nil {
		t.Fatalf("expected an error for duplicate $id")
	}
	pe, ok := err.(*jsonschema.ParseError)
	if !ok {
		t.Fatalf("expected *jsonschema.ParseError, got %T", err)
	}
	if pe.Code != jsonschema.CodeDuplicateID {
		t.Fatalf("expected code %q, got %q", jsonschema.CodeDuplicateID, pe.Code)
	}
}

func TestRefResolutionAcrossSchema(t *testing.T) {
	schemaDoc := mustDecode(t, `{
		"$defs": {
			"posInt": {"type": "integer", "minimum": 0}
		},
		"type": "object",
		"properties": {
			"count": {"$ref": "#/$defs/posInt"}
		}
	}`)

	opts := jsonschema.DefaultOptions()
	s, err := jsonschema.Compile(schemaDoc, "", opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if !s.Validate(mustDecode(t, `{"count": 3}`)).Valid {
		t.Fatalf("expected count: 3 to validate")
	}
	if s.Validate(mustDecode(t, `{"count": -3}`)).Valid {
		t.Fatalf("expected count: -3 to fail")
	}
}

func TestOutputFormats(t *testing.T) {
	schemaDoc := mustDecode(t, `{"type": "string"}`)
	opts := jsonschema.DefaultOptions()
	s, err := jsonschema.Compile(schemaDoc, "", opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	result := s.Validate(mustDecode(t, `5`))
	if result.Valid {
		t.Fatalf("expected invalid")
	}
	if got := result.Render(jsonschema.Flag); got != "false" {
		t.Fatalf("Flag render = %q, want %q", got, "false")
	}
	if result.Render(jsonschema.Basic) == "" {
		t.Fatalf("expected non-empty Basic render")
	}
	if result.Render(jsonschema.Detailed) == "" {
		t.Fatalf("expected non-empty Detailed render")
	}
	if result.Render(jsonschema.Verbose) == "" {
		t.Fatalf("expected non-empty Verbose render")
	}
}
