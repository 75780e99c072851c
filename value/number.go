package value

import (
	"math/big"
	"strconv"
)

// Number preserves a JSON number's exact lexical form (needed so multipleOf
// and integer-typed checks are not corrupted by float64 rounding) while
// offering arbitrary-precision comparison via math/big.
//
// No third-party arbitrary-precision rational library appeared anywhere in
// the retrieved example corpus, so this is the one place the validator
// reaches for the standard library over an ecosystem package -- there was
// nothing to ground a replacement on.
type Number struct {
	lexical string
}

// NewNumber wraps the exact lexical form of a JSON number (e.g. "1.50",
// "3e2").
func NewNumber(lexical string) Number { return Number{lexical: lexical} }

// String returns the original lexical form.
func (n Number) String() string { return n.lexical }

// Rat converts the number to an arbitrary-precision rational. ok is false if
// the lexical form is not a valid JSON number.
func (n Number) Rat() (r *big.Rat, ok bool) {
	r = new(big.Rat)
	_, ok = r.SetString(n.lexical)
	return r, ok
}

// Float64 returns a best-effort float64 conversion, for contexts (e.g.
// format checks) that do not need exactness.
func (n Number) Float64() (float64, bool) {
	f, err := strconv.ParseFloat(n.lexical, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsInteger reports whether the number is mathematically integral regardless
// of lexical form (so 1.0, 1e0, and 1 are all integers).
func (n Number) IsInteger() bool {
	r, ok := n.Rat()
	if !ok {
		return false
	}
	return r.IsInt()
}

// Cmp compares two numbers exactly using arbitrary-precision rationals.
// ok is true only when both parse successfully; otherwise it returns (0, false).
func (n Number) Cmp(other Number) (cmp int, ok bool) {
	a, okA := n.Rat()
	b, okB := other.Rat()
	if !okA || !okB {
		return 0, false
	}
	return a.Cmp(b), true
}

// DivisibleBy reports whether n is an exact multiple of other under
// arbitrary-precision rational arithmetic (the definition multipleOf uses).
func (n Number) DivisibleBy(other Number) (bool, bool) {
	a, okA := n.Rat()
	b, okB := other.Rat()
	if !okA || !okB || b.Sign() == 0 {
		return false, false
	}
	q := new(big.Rat).Quo(a, b)
	return q.IsInt(), true
}
