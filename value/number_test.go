package value

import "testing"

func TestNumberCmpIgnoresLexicalForm(t *testing.T) {
	a := NewNumber("1.0")
	b := NewNumber("1")
	cmp, ok := a.Cmp(b)
	if !ok {
		t.Fatalf("expected Cmp to report ok")
	}
	if cmp != 0 {
		t.Fatalf("expected 1.0 and 1 to compare equal, got %d", cmp)
	}
}

func TestNumberIsIntegerAcrossForms(t *testing.T) {
	if !NewNumber("1.0").IsInteger() {
		t.Fatalf("expected 1.0 to be an integer")
	}
	if !NewNumber("1e2").IsInteger() {
		t.Fatalf("expected 1e2 to be an integer")
	}
	if NewNumber("1.5").IsInteger() {
		t.Fatalf("expected 1.5 not to be an integer")
	}
}

func TestNumberDivisibleBy(t *testing.T) {
	ok, valid := NewNumber("9").DivisibleBy(NewNumber("3"))
	if !valid || !ok {
		t.Fatalf("expected 9 divisible by 3, got ok=%v valid=%v", ok, valid)
	}

	ok, valid = NewNumber("0.0075").DivisibleBy(NewNumber("0.0001"))
	if !valid || !ok {
		t.Fatalf("expected 0.0075 divisible by 0.0001, got ok=%v valid=%v", ok, valid)
	}

	ok, valid = NewNumber("10").DivisibleBy(NewNumber("3"))
	if !valid || ok {
		t.Fatalf("expected 10 not divisible by 3, got ok=%v valid=%v", ok, valid)
	}
}

func TestNumberDivisibleByZeroIsInvalid(t *testing.T) {
	_, valid := NewNumber("5").DivisibleBy(NewNumber("0"))
	if valid {
		t.Fatalf("expected division by zero to be invalid")
	}
}

func TestNumberCmpInvalidLexicalForm(t *testing.T) {
	_, ok := NewNumber("not-a-number").Cmp(NewNumber("1"))
	if ok {
		t.Fatalf("expected Cmp to report not-ok for a malformed number")
	}
}
