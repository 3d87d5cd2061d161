package units

import "github.com/shopspring/decimal"

// CompositeComponent is one presentation term of a CompositeValue, e.g. the
// "5 ft" in "5 ft 3 in".
type CompositeComponent struct {
	Magnitude decimal.Decimal
	Unit      *Unit
}

// Split breaks a base-unit magnitude into components against targets
// (largest unit first), using integer division for every component except
// the last, which keeps the decimal remainder. Targets must share a
// dimension; callers are expected to have sorted them largest-to-smallest
// by base-unit factor.
func Split(baseMagnitude decimal.Decimal, targets []*Unit, variant string) []CompositeComponent {
	if len(targets) == 0 {
		return nil
	}
	remaining := baseMagnitude
	out := make([]CompositeComponent, 0, len(targets))
	for i, u := range targets {
		inUnit := FromBase(u, remaining, variant)
		if i == len(targets)-1 {
			out = append(out, CompositeComponent{Magnitude: inUnit, Unit: u})
			break
		}
		floor := inUnit.Floor()
		out = append(out, CompositeComponent{Magnitude: floor, Unit: u})
		consumed := ToBase(u, floor, variant)
		remaining = remaining.Sub(consumed)
	}
	return out
}
