package value

import (
	"reflect"
	"testing"
)

func TestFromAnySortsObjectKeys(t *testing.T) {
	n := FromAny(map[string]any{"b": 1, "a": 2})
	keys, err := n.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys = %v, want [a b]", keys)
	}
}

func TestFromAnyScalars(t *testing.T) {
	if !FromAny(nil).IsNull() {
		t.Fatalf("expected nil to convert to a null Node")
	}
	if !FromAny(true).IsBool() {
		t.Fatalf("expected true to convert to a bool Node")
	}
	if !FromAny("s").IsString() {
		t.Fatalf("expected \"s\" to convert to a string Node")
	}
	if !FromAny(1.5).IsNumber() {
		t.Fatalf("expected 1.5 to convert to a number Node")
	}
}

func TestFromAnyArray(t *testing.T) {
	n := FromAny([]any{1.0, "x", nil})
	if !n.IsArray() {
		t.Fatalf("expected an array Node")
	}
	if n.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", n.Len())
	}
}

func TestFromAnyPassesThroughNode(t *testing.T) {
	inner := String("already a node")
	if !reflect.DeepEqual(FromAny(inner), inner) {
		t.Fatalf("expected FromAny to pass an existing Node through unchanged")
	}
}
