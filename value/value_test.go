package value

import (
	"errors"
	"testing"
)

func TestKindAccessorsMismatch(t *testing.T) {
	n := String("hi")
	_, err := n.AsNumber()
	if err == nil {
		t.Fatalf("expected an error")
	}
	var km *KindMismatch
	if !errors.As(err, &km) {
		t.Fatalf("expected err to be a *KindMismatch, got %T", err)
	}
	if km.Want != KindNumber {
		t.Fatalf("want = %v, expected %v", km.Want, KindNumber)
	}
	if km.Got != KindString {
		t.Fatalf("got = %v, expected %v", km.Got, KindString)
	}
}

func TestObjectGetPreservesOrder(t *testing.T) {
	obj := Object([]string{"b", "a"}, []Node{Bool(true), Bool(false)})
	keys, err := obj.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("keys = %v, want [b a]", keys)
	}

	v, ok := obj.Get("a")
	if !ok {
		t.Fatalf("expected key a to be present")
	}
	b, err := v.AsBool()
	if err != nil {
		t.Fatalf("AsBool: %v", err)
	}
	if b {
		t.Fatalf("expected a's value to be false")
	}

	_, ok = obj.Get("missing")
	if ok {
		t.Fatalf("expected missing key to report not-ok")
	}
}

func TestArrayItemsAndLen(t *testing.T) {
	arr := Array([]Node{String("x"), String("y"), String("z")})
	if arr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", arr.Len())
	}
	items, err := arr.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
}

func TestRawRoundTripsNestedContainers(t *testing.T) {
	obj := Object([]string{"k"}, []Node{Array([]Node{Bool(true), Null()})})
	raw := obj.Raw()
	m, ok := raw.(map[string]any)
	if !ok {
		t.Fatalf("expected raw to be a map[string]any, got %T", raw)
	}
	arr, ok := m["k"].([]any)
	if !ok {
		t.Fatalf("expected m[\"k\"] to be a []any, got %T", m["k"])
	}
	want := []any{true, nil}
	if len(arr) != len(want) || arr[0] != want[0] || arr[1] != want[1] {
		t.Fatalf("arr = %v, want %v", arr, want)
	}
}

func TestZeroNodeIsNull(t *testing.T) {
	var n Node
	if !n.IsNull() {
		t.Fatalf("expected zero Node to be null")
	}
	if n.Kind() != KindNull {
		t.Fatalf("Kind() = %v, want KindNull", n.Kind())
	}
}
