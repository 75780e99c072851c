package value

import (
	"testing"

	"github.com/schemacore/jsonschema/internal/engine"
)

func TestDecodeBytesScalarsAndContainers(t *testing.T) {
	n, err := DecodeBytes([]byte(`{"a": 1, "b": [true, null, "x"], "c": {"d": 2}}`))
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if !n.IsObject() {
		t.Fatalf("expected an object Node")
	}

	keys, err := n.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Fatalf("keys = %v, want [a b c]", keys)
	}

	a, ok := n.Get("a")
	if !ok {
		t.Fatalf("expected key a")
	}
	num, err := a.AsNumber()
	if err != nil {
		t.Fatalf("AsNumber: %v", err)
	}
	if num.String() != "1" {
		t.Fatalf("num.String() = %q, want %q", num.String(), "1")
	}

	b, ok := n.Get("b")
	if !ok {
		t.Fatalf("expected key b")
	}
	items, err := b.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	bv, err := items[0].AsBool()
	if err != nil {
		t.Fatalf("AsBool: %v", err)
	}
	if !bv {
		t.Fatalf("expected items[0] to be true")
	}
	if !items[1].IsNull() {
		t.Fatalf("expected items[1] to be null")
	}

	c, ok := n.Get("c")
	if !ok {
		t.Fatalf("expected key c")
	}
	d, ok := c.Get("d")
	if !ok {
		t.Fatalf("expected key c.d")
	}
	num, err = d.AsNumber()
	if err != nil {
		t.Fatalf("AsNumber: %v", err)
	}
	if num.String() != "2" {
		t.Fatalf("num.String() = %q, want %q", num.String(), "2")
	}
}

func TestDecodeBytesPreservesMemberOrder(t *testing.T) {
	n, err := DecodeBytes([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	keys, err := n.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Fatalf("keys = %v, want [z a m]", keys)
	}
}

func TestDecodeBytesEnforcedRejectsDuplicateKeys(t *testing.T) {
	_, err := DecodeBytesEnforced([]byte(`{"a": 1, "a": 2}`), engine.EnforceOptions{
		OnDuplicate: engine.DupError,
	})
	if err == nil {
		t.Fatalf("expected an error for duplicate keys")
	}
}

func TestDecodeBytesEnforcedRejectsExcessiveDepth(t *testing.T) {
	_, err := DecodeBytesEnforced([]byte(`{"a": {"b": {"c": 1}}}`), engine.EnforceOptions{
		MaxDepth: 2,
	})
	if err == nil {
		t.Fatalf("expected an error for excessive depth")
	}
}

func TestDecodeBytesEnforcedAllowsWellFormedDocument(t *testing.T) {
	n, err := DecodeBytesEnforced([]byte(`{"a": 1}`), engine.EnforceOptions{
		MaxDepth: 4,
		MaxBytes: 1 << 20,
	})
	if err != nil {
		t.Fatalf("DecodeBytesEnforced: %v", err)
	}
	if !n.IsObject() {
		t.Fatalf("expected an object Node")
	}
}
