package units

import (
	"sort"
	"strings"
)

// Term is one unit-to-the-power-of-Exponent factor of a DerivedUnit.
type Term struct {
	Unit     *Unit
	Exponent int
}

// DerivedUnit is a normalized product of unit powers, e.g. "m/s" or "N·m".
type DerivedUnit struct {
	Terms []Term
}

// Single builds a DerivedUnit from one unit at exponent 1; it is
// equivalent to that Unit alone.
func Single(u *Unit) DerivedUnit {
	return Normalize(DerivedUnit{Terms: []Term{{Unit: u, Exponent: 1}}})
}

// Dimensionless is the empty DerivedUnit.
var Dimensionless = DerivedUnit{}

// IsDimensionless reports whether d has no (surviving) terms.
func (d DerivedUnit) IsDimensionless() bool {
	return len(d.Terms) == 0
}

// AsUnit returns the single unit d is equivalent to, if it has exactly one
// exponent-1 term.
func (d DerivedUnit) AsUnit() (*Unit, bool) {
	if len(d.Terms) == 1 && d.Terms[0].Exponent == 1 {
		return d.Terms[0].Unit, true
	}
	return nil, false
}

// Normalize merges equal units by summing exponents, drops exponent-0
// terms, and sorts by (exponent > 0 first, then dimension id) for a stable
// presentation order.
func Normalize(d DerivedUnit) DerivedUnit {
	merged := map[string]*Term{}
	var order []string
	for _, t := range d.Terms {
		key := t.Unit.ID
		if existing, ok := merged[key]; ok {
			existing.Exponent += t.Exponent
		} else {
			cp := t
			merged[key] = &cp
			order = append(order, key)
		}
	}

	var out []Term
	for _, key := range order {
		t := merged[key]
		if t.Exponent != 0 {
			out = append(out, *t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		iPos := out[i].Exponent > 0
		jPos := out[j].Exponent > 0
		if iPos != jPos {
			return iPos
		}
		return out[i].Unit.DimensionID < out[j].Unit.DimensionID
	})

	return DerivedUnit{Terms: out}
}

// Signature is the dimension-id -> summed-exponent map that determines
// compatibility for addition, subtraction, and comparison.
func (d DerivedUnit) Signature() map[string]int {
	sig := map[string]int{}
	for _, t := range d.Terms {
		sig[t.Unit.DimensionID] += t.Exponent
	}
	for k, v := range sig {
		if v == 0 {
			delete(sig, k)
		}
	}
	return sig
}

// Compatible reports whether a and b have identical dimension signatures.
func Compatible(a, b DerivedUnit) bool {
	sigA, sigB := a.Signature(), b.Signature()
	if len(sigA) != len(sigB) {
		return false
	}
	for k, v := range sigA {
		if sigB[k] != v {
			return false
		}
	}
	return true
}

// multiplyOrDivide appends b's terms to a's (negated if invert) and
// normalizes.
func multiplyOrDivide(a, b DerivedUnit, invert bool) DerivedUnit {
	terms := make([]Term, 0, len(a.Terms)+len(b.Terms))
	terms = append(terms, a.Terms...)
	for _, t := range b.Terms {
		if invert {
			t.Exponent = -t.Exponent
		}
		terms = append(terms, t)
	}
	return Normalize(DerivedUnit{Terms: terms})
}

// Multiply combines a*b. Terms merge only when they name the same unit,
// so same-dimension terms in different units stay separate (m * ft is
// m·ft, not m^2); no unit is converted into another here.
func Multiply(a, b DerivedUnit) DerivedUnit { return multiplyOrDivide(a, b, false) }

// Divide combines a/b (b's exponents negated).
func Divide(a, b DerivedUnit) DerivedUnit { return multiplyOrDivide(a, b, true) }

// Pow raises every term's exponent to the k-th power (k must be an
// integer; rational exponents are handled by the evaluator, which only
// calls Pow after validating the result has integer exponents).
func Pow(d DerivedUnit, k int) DerivedUnit {
	terms := make([]Term, len(d.Terms))
	for i, t := range d.Terms {
		terms[i] = Term{Unit: t.Unit, Exponent: t.Exponent * k}
	}
	return Normalize(DerivedUnit{Terms: terms})
}

// String renders e.g. "m/s^2" for display/debugging.
func (d DerivedUnit) String() string {
	if d.IsDimensionless() {
		return ""
	}
	var pos, neg []string
	for _, t := range d.Terms {
		sym := t.Unit.Symbol()
		switch {
		case t.Exponent == 1:
			pos = append(pos, sym)
		case t.Exponent == -1:
			neg = append(neg, sym)
		case t.Exponent > 0:
			pos = append(pos, sym+"^"+itoa(t.Exponent))
		default:
			neg = append(neg, sym+"^"+itoa(-t.Exponent))
		}
	}
	switch {
	case len(neg) == 0:
		return strings.Join(pos, "·")
	case len(pos) == 0:
		return "1/" + strings.Join(neg, "·")
	default:
		return strings.Join(pos, "·") + "/" + strings.Join(neg, "·")
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}
