package pointer_test

import (
	"testing"

	"github.com/schemacore/jsonschema/pointer"
)

func TestRootSerializesToSlash(t *testing.T) {
	if pointer.Root().String() != "/" {
		t.Fatalf("Root().String() = %q, want %q", pointer.Root().String(), "/")
	}
	if !pointer.Root().IsRoot() {
		t.Fatalf("expected Root() to report IsRoot")
	}
}

func TestFieldEscaping(t *testing.T) {
	p := pointer.Root().Field("a/b").Field("c~d")
	if got, want := p.String(), "/a~1b/c~0d"; got != want {
		t.Fatalf("p.String() = %q, want %q", got, want)
	}
}

func TestIndexAppend(t *testing.T) {
	p := pointer.Root().Field("items").Index(2).Field("price")
	if got, want := p.String(), "/items/2/price"; got != want {
		t.Fatalf("p.String() = %q, want %q", got, want)
	}
	tokens := p.Tokens()
	want := []string{"items", "2", "price"}
	if len(tokens) != len(want) {
		t.Fatalf("Tokens() = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("Tokens() = %v, want %v", tokens, want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	cases := []string{"/", "/items/2/price", "/a~1b/c~0d", "/minLength"}
	for _, c := range cases {
		got := pointer.Parse(c).String()
		if got != c {
			t.Fatalf("Parse(%q).String() = %q, want %q", c, got, c)
		}
	}
}

func TestParseEmptyIsRoot(t *testing.T) {
	if !pointer.Parse("").IsRoot() {
		t.Fatalf("expected Parse(\"\") to report IsRoot")
	}
	if !pointer.Parse("/").IsRoot() {
		t.Fatalf("expected Parse(\"/\") to report IsRoot")
	}
}

func TestCombineDoesNotMutateReceiver(t *testing.T) {
	base := pointer.Root().Field("x")
	a := base.Combine("y")
	b := base.Combine(1)
	if got, want := base.String(), "/x"; got != want {
		t.Fatalf("base.String() = %q, want %q", got, want)
	}
	if got, want := a.String(), "/x/y"; got != want {
		t.Fatalf("a.String() = %q, want %q", got, want)
	}
	if got, want := b.String(), "/x/1"; got != want {
		t.Fatalf("b.String() = %q, want %q", got, want)
	}
}
