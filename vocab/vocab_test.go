package vocab

import (
	"testing"

	"github.com/schemacore/jsonschema/pointer"
	"github.com/schemacore/jsonschema/schema"
	"github.com/schemacore/jsonschema/value"
)

func TestRegisterPredicateKeywordParticipatesInValidation(t *testing.T) {
	RegisterPredicate("x-even", func(member, inst value.Node) (bool, string) {
		n, err := inst.AsNumber()
		if err != nil {
			return true, ""
		}
		f, _ := n.Float64()
		if int(f)%2 == 0 {
			return true, ""
		}
		return false, "value is not even"
	})
	if !Registered("x-even") {
		t.Fatalf("expected x-even to be registered")
	}

	doc, err := value.DecodeBytes([]byte(`{"x-even": true}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s, err := schema.Compile(doc, "https://example.com/s.json", schema.Draft2020_12)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	ctx := &schema.Context{Opts: schema.EvalOptions{Draft: schema.Draft2020_12}}
	four, _ := value.DecodeBytes([]byte(`4`))
	if !s.Evaluate(ctx, four, pointer.Root(), pointer.Root()).Valid {
		t.Fatalf("expected 4 to validate x-even")
	}

	five, _ := value.DecodeBytes([]byte(`5`))
	if s.Evaluate(ctx, five, pointer.Root(), pointer.Root()).Valid {
		t.Fatalf("expected 5 to fail x-even")
	}
}
