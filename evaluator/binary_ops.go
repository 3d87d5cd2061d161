package evaluator

import (
	"math"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/currency"
	"github.com/paperlang/paper/temporal"
	"github.com/paperlang/paper/types"
	"github.com/paperlang/paper/units"
	"github.com/shopspring/decimal"
)

// Binary operator dispatch.
//
// Arithmetic (+ - * / % ^) and bitwise (& | << >>) operators are handled
// per concrete left/right value shape below; comparisons share the same
// dispatch but always reduce to a Boolean. Percentage-literal addition and
// subtraction follow the rule "x + p%" means x + x*p/100, not x + p.

func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp) (types.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	if isComparison(n.Operator) {
		return e.evalComparison(n.Operator, left, right, n.Range)
	}

	switch l := left.(type) {
	case *types.Number:
		switch r := right.(type) {
		case *types.Number:
			return e.numberNumberOp(n.Operator, l, r, n.Range)
		case *types.Currency:
			return e.numberCurrencyOp(n.Operator, l, r, n.Range)
		case *types.DurationValue:
			return e.numberDurationOp(n.Operator, l, r, n.Range)
		}
	case *types.Currency:
		switch r := right.(type) {
		case *types.Currency:
			return e.currencyCurrencyOp(n.Operator, l, r, n.Range)
		case *types.Number:
			return e.currencyNumberOp(n.Operator, l, r, n.Range)
		}
	case *types.Composite:
		if r, ok := right.(*types.Composite); ok {
			return e.compositeCompositeOp(n.Operator, l, r, n.Range)
		}
	case *types.PlainDateValue:
		return e.dateOp(n.Operator, l, right, n.Range)
	case *types.PlainTimeValue:
		return e.timeOp(n.Operator, l, right, n.Range)
	case *types.PlainDateTimeValue:
		return e.dateTimeOp(n.Operator, l, right, n.Range)
	case *types.InstantValue:
		return e.instantOp(n.Operator, l, right, n.Range)
	case *types.ZonedDateTimeValue:
		return e.zonedOp(n.Operator, l, right, n.Range)
	case *types.DurationValue:
		return e.durationLeftOp(n.Operator, l, right, n.Range)
	}

	return nil, errf("domain_error", n.Range, "operator %q does not apply between %s and %s", n.Operator, left.TypeName(), right.TypeName())
}

func isComparison(op string) bool {
	switch op {
	case "<", ">", "<=", ">=", "==", "!=":
		return true
	}
	return false
}

// --- Number op Number ---

func (e *Evaluator) numberNumberOp(op string, l, r *types.Number, rng *ast.Range) (types.Value, error) {
	switch op {
	case "+", "-":
		if r.IsPercent && !l.IsPercent {
			pct := r.Magnitude.Div(decimal.NewFromInt(100))
			if op == "+" {
				return &types.Number{Magnitude: l.Magnitude.Add(l.Magnitude.Mul(pct)), Derived: l.Derived}, nil
			}
			return &types.Number{Magnitude: l.Magnitude.Sub(l.Magnitude.Mul(pct)), Derived: l.Derived}, nil
		}
		rVal, err := e.alignMagnitude(l.Derived, r, rng)
		if err != nil {
			return nil, err
		}
		if op == "+" {
			return &types.Number{Magnitude: l.Magnitude.Add(rVal), Derived: l.Derived}, nil
		}
		return &types.Number{Magnitude: l.Magnitude.Sub(rVal), Derived: l.Derived}, nil

	case "*":
		return &types.Number{Magnitude: l.Magnitude.Mul(r.Magnitude), Derived: units.Multiply(l.Derived, r.Derived)}, nil

	case "/":
		if r.Magnitude.IsZero() {
			return nil, errf("division_by_zero", rng, "division by zero")
		}
		return &types.Number{Magnitude: l.Magnitude.Div(r.Magnitude), Derived: units.Divide(l.Derived, r.Derived)}, nil

	case "%":
		if r.Magnitude.IsZero() {
			return nil, errf("division_by_zero", rng, "division by zero")
		}
		return &types.Number{Magnitude: l.Magnitude.Mod(r.Magnitude), Derived: l.Derived}, nil

	case "^", "**":
		if !l.Derived.IsDimensionless() {
			return nil, errf("domain_error", rng, "exponent base must be dimensionless")
		}
		return &types.Number{Magnitude: powDecimal(l.Magnitude, r.Magnitude)}, nil

	case "&", "|", "<<", ">>":
		return bitwiseOp(op, l, r, rng)

	default:
		return nil, errf("domain_error", rng, "unknown operator %q", op)
	}
}

// alignMagnitude converts r onto unit into which's dimension before +/-,
// erroring if the dimensions are incompatible.
func (e *Evaluator) alignMagnitude(into units.DerivedUnit, r *types.Number, rng *ast.Range) (decimal.Decimal, error) {
	if into.IsDimensionless() && r.Derived.IsDimensionless() {
		return r.Magnitude, nil
	}
	if !units.Compatible(into, r.Derived) {
		return decimal.Zero, errf("dimension_mismatch", rng, "cannot add/subtract %s and %s", into, r.Derived)
	}
	lu, lok := into.AsUnit()
	ru, rok := r.Derived.AsUnit()
	if lok && rok {
		return units.Convert(ru, lu, r.Magnitude, e.Settings.ImperialVariant), nil
	}
	// Derived (multi-term) units of matching signature: rescale r through
	// the product of each term's base-unit factor.
	factor := func(d units.DerivedUnit) decimal.Decimal {
		f := decimal.NewFromInt(1)
		for _, t := range d.Terms {
			scale := t.Unit.Conversion.Resolve(e.Settings.ImperialVariant).Factor
			f = f.Mul(powDecimal(scale, decimal.NewFromInt(int64(t.Exponent))))
		}
		return f
	}
	return r.Magnitude.Mul(factor(r.Derived)).Div(factor(into)), nil
}

func powDecimal(base, exp decimal.Decimal) decimal.Decimal {
	if exp.IsInteger() {
		k := exp.IntPart()
		if k >= 0 {
			return base.Pow(decimal.NewFromInt(k))
		}
		return decimal.NewFromInt(1).Div(base.Pow(decimal.NewFromInt(-k)))
	}
	bf, _ := base.Float64()
	ef, _ := exp.Float64()
	return decimal.NewFromFloat(math.Pow(bf, ef))
}

func bitwiseOp(op string, l, r *types.Number, rng *ast.Range) (types.Value, error) {
	if !l.Magnitude.IsInteger() || !r.Magnitude.IsInteger() {
		return nil, errf("domain_error", rng, "bitwise operator %q requires integer operands", op)
	}
	a, b := l.Magnitude.IntPart(), r.Magnitude.IntPart()
	var result int64
	switch op {
	case "&":
		result = a & b
	case "|":
		result = a | b
	case "<<":
		result = a << uint(b)
	case ">>":
		result = a >> uint(b)
	}
	return types.NewPlainNumber(decimal.NewFromInt(result)), nil
}

// --- Number / Currency mixed arithmetic ---

func (e *Evaluator) numberCurrencyOp(op string, l *types.Number, r *types.Currency, rng *ast.Range) (types.Value, error) {
	switch op {
	case "*":
		return &types.Currency{Amount: l.Magnitude.Mul(r.Amount), Code: r.Code, Symbol: r.Symbol}, nil
	case "/":
		if r.Amount.IsZero() {
			return nil, errf("division_by_zero", rng, "division by zero")
		}
		// number / currency: inverse rate, unit drops.
		return types.NewPlainNumber(l.Magnitude.Div(r.Amount)), nil
	default:
		return nil, errf("domain_error", rng, "operator %q does not apply between Number and Currency", op)
	}
}

func (e *Evaluator) currencyNumberOp(op string, l *types.Currency, r *types.Number, rng *ast.Range) (types.Value, error) {
	if !r.Derived.IsDimensionless() {
		return nil, errf("domain_error", rng, "cannot combine Currency with a unit-bearing Number")
	}
	switch op {
	case "+", "-":
		if r.IsPercent {
			pct := r.Magnitude.Div(decimal.NewFromInt(100))
			if op == "+" {
				return &types.Currency{Amount: l.Amount.Add(l.Amount.Mul(pct)), Code: l.Code, Symbol: l.Symbol}, nil
			}
			return &types.Currency{Amount: l.Amount.Sub(l.Amount.Mul(pct)), Code: l.Code, Symbol: l.Symbol}, nil
		}
		return nil, errf("domain_error", rng, "cannot %s a plain Number to a Currency", opName(op))
	case "*":
		return &types.Currency{Amount: l.Amount.Mul(r.Magnitude), Code: l.Code, Symbol: l.Symbol}, nil
	case "/":
		if r.Magnitude.IsZero() {
			return nil, errf("division_by_zero", rng, "division by zero")
		}
		return &types.Currency{Amount: l.Amount.Div(r.Magnitude), Code: l.Code, Symbol: l.Symbol}, nil
	default:
		return nil, errf("domain_error", rng, "operator %q does not apply between Currency and Number", op)
	}
}

func opName(op string) string {
	if op == "+" {
		return "add"
	}
	return "subtract"
}

// --- Currency op Currency ---

func (e *Evaluator) currencyCurrencyOp(op string, l, r *types.Currency, rng *ast.Range) (types.Value, error) {
	switch op {
	case "+", "-":
		rAmount := r.Amount
		if l.Code != r.Code {
			converted, err := currency.Convert(e.Settings.Rates, r.Amount, r.Code, l.Code)
			if err != nil {
				return nil, errf("currency_unavailable", rng, "%v", err)
			}
			rAmount = converted
		}
		if op == "+" {
			return &types.Currency{Amount: l.Amount.Add(rAmount), Code: l.Code, Symbol: l.Symbol}, nil
		}
		return &types.Currency{Amount: l.Amount.Sub(rAmount), Code: l.Code, Symbol: l.Symbol}, nil
	case "/":
		if r.Amount.IsZero() {
			return nil, errf("division_by_zero", rng, "division by zero")
		}
		rAmount := r.Amount
		if l.Code != r.Code {
			converted, err := currency.Convert(e.Settings.Rates, r.Amount, r.Code, l.Code)
			if err != nil {
				return nil, errf("currency_unavailable", rng, "%v", err)
			}
			rAmount = converted
		}
		return types.NewPlainNumber(l.Amount.Div(rAmount)), nil
	default:
		return nil, errf("domain_error", rng, "operator %q does not apply between two Currency values", op)
	}
}

// --- Composite op Composite ---

func (e *Evaluator) compositeCompositeOp(op string, l, r *types.Composite, rng *ast.Range) (types.Value, error) {
	variant := e.Settings.ImperialVariant
	lBase := l.BaseMagnitude(variant)
	rBase := r.BaseMagnitude(variant)
	lu := l.LargestUnit()
	if lu == nil {
		return nil, errf("domain_error", rng, "empty composite value")
	}
	switch op {
	case "+":
		return &types.Number{Magnitude: units.FromBase(lu, lBase.Add(rBase), variant), Derived: units.Single(lu)}, nil
	case "-":
		return &types.Number{Magnitude: units.FromBase(lu, lBase.Sub(rBase), variant), Derived: units.Single(lu)}, nil
	default:
		return nil, errf("domain_error", rng, "operator %q does not apply between composite values", op)
	}
}

// --- Temporal arithmetic ---

func (e *Evaluator) dateOp(op string, l *types.PlainDateValue, right types.Value, rng *ast.Range) (types.Value, error) {
	switch r := right.(type) {
	case *types.DurationValue:
		if op != "+" && op != "-" {
			return nil, errf("domain_error", rng, "operator %q does not apply between Date and Duration", op)
		}
		d := r.Duration
		if op == "-" {
			d = d.Negate()
		}
		widened := temporal.AddDateTimeDuration(temporal.PlainDateTime{Date: l.Date}, d)
		return &types.PlainDateValue{Date: widened.Date}, nil
	case *types.PlainDateValue:
		if op != "-" {
			return nil, errf("domain_error", rng, "operator %q does not apply between two Date values", op)
		}
		dt := temporal.SubtractDateTime(temporal.PlainDateTime{Date: r.Date}, temporal.PlainDateTime{Date: l.Date})
		return &types.DurationValue{Duration: dt}, nil
	}
	return nil, errf("domain_error", rng, "operator %q does not apply between Date and %s", op, right.TypeName())
}

func (e *Evaluator) timeOp(op string, l *types.PlainTimeValue, right types.Value, rng *ast.Range) (types.Value, error) {
	switch r := right.(type) {
	case *types.DurationValue:
		d := r.Duration
		if op == "-" {
			d = d.Negate()
		}
		if op != "+" && op != "-" {
			return nil, errf("domain_error", rng, "operator %q does not apply between Time and Duration", op)
		}
		wrapped, widened := temporal.AddTimeDuration(l.Time, d, temporal.PlainDate{Year: 1970, Month: 1, Day: 1})
		if widened != nil {
			return &types.PlainDateTimeValue{DateTime: *widened}, nil
		}
		return &types.PlainTimeValue{Time: wrapped}, nil
	case *types.PlainTimeValue:
		if op != "-" {
			return nil, errf("domain_error", rng, "operator %q does not apply between two Time values", op)
		}
		deltaMs := l.Time.MillisOfDay() - r.Time.MillisOfDay()
		return &types.DurationValue{Duration: temporal.Reduce(temporal.Duration{Millis: deltaMs})}, nil
	}
	return nil, errf("domain_error", rng, "operator %q does not apply between Time and %s", op, right.TypeName())
}

func (e *Evaluator) dateTimeOp(op string, l *types.PlainDateTimeValue, right types.Value, rng *ast.Range) (types.Value, error) {
	switch r := right.(type) {
	case *types.DurationValue:
		d := r.Duration
		if op == "-" {
			d = d.Negate()
		}
		if op != "+" && op != "-" {
			return nil, errf("domain_error", rng, "operator %q does not apply between DateTime and Duration", op)
		}
		return &types.PlainDateTimeValue{DateTime: temporal.AddDateTimeDuration(l.DateTime, d)}, nil
	case *types.PlainDateTimeValue:
		if op != "-" {
			return nil, errf("domain_error", rng, "operator %q does not apply between two DateTime values", op)
		}
		return &types.DurationValue{Duration: temporal.SubtractDateTime(r.DateTime, l.DateTime)}, nil
	}
	return nil, errf("domain_error", rng, "operator %q does not apply between DateTime and %s", op, right.TypeName())
}

func (e *Evaluator) instantOp(op string, l *types.InstantValue, right types.Value, rng *ast.Range) (types.Value, error) {
	switch r := right.(type) {
	case *types.DurationValue:
		d := r.Duration
		if op == "-" {
			d = d.Negate()
		}
		if op != "+" && op != "-" {
			return nil, errf("domain_error", rng, "operator %q does not apply between Instant and Duration", op)
		}
		return &types.InstantValue{Instant: temporal.AddInstantDuration(l.Instant, d)}, nil
	case *types.InstantValue:
		if op != "-" {
			return nil, errf("domain_error", rng, "operator %q does not apply between two Instant values", op)
		}
		return &types.DurationValue{Duration: temporal.SubtractInstant(r.Instant, l.Instant)}, nil
	}
	return nil, errf("domain_error", rng, "operator %q does not apply between Instant and %s", op, right.TypeName())
}

func (e *Evaluator) zonedOp(op string, l *types.ZonedDateTimeValue, right types.Value, rng *ast.Range) (types.Value, error) {
	switch r := right.(type) {
	case *types.DurationValue:
		d := r.Duration
		if op == "-" {
			d = d.Negate()
		}
		if op != "+" && op != "-" {
			return nil, errf("domain_error", rng, "operator %q does not apply between ZonedDateTime and Duration", op)
		}
		return &types.ZonedDateTimeValue{Zoned: temporal.AddZonedDuration(l.Zoned, d)}, nil
	case *types.ZonedDateTimeValue:
		if op != "-" {
			return nil, errf("domain_error", rng, "operator %q does not apply between two ZonedDateTime values", op)
		}
		return &types.DurationValue{Duration: temporal.SubtractZoned(r.Zoned, l.Zoned)}, nil
	}
	return nil, errf("domain_error", rng, "operator %q does not apply between ZonedDateTime and %s", op, right.TypeName())
}

func (e *Evaluator) durationLeftOp(op string, l *types.DurationValue, right types.Value, rng *ast.Range) (types.Value, error) {
	switch r := right.(type) {
	case *types.DurationValue:
		switch op {
		case "+":
			return &types.DurationValue{Duration: temporal.Add(l.Duration, r.Duration)}, nil
		case "-":
			return &types.DurationValue{Duration: temporal.Sub(l.Duration, r.Duration)}, nil
		default:
			return nil, errf("domain_error", rng, "operator %q does not apply between two Duration values", op)
		}
	case *types.Number:
		if !r.Derived.IsDimensionless() {
			return nil, errf("domain_error", rng, "Duration can only be scaled by a plain Number")
		}
		switch op {
		case "*":
			return &types.DurationValue{Duration: temporal.Scale(l.Duration, r.Magnitude)}, nil
		case "/":
			if r.Magnitude.IsZero() {
				return nil, errf("division_by_zero", rng, "division by zero")
			}
			return &types.DurationValue{Duration: temporal.Scale(l.Duration, decimal.NewFromInt(1).Div(r.Magnitude))}, nil
		default:
			return nil, errf("domain_error", rng, "operator %q does not apply between Duration and Number", op)
		}
	}
	return nil, errf("domain_error", rng, "operator %q does not apply between Duration and %s", op, right.TypeName())
}

// --- Number op Duration (Duration * n commutes) ---

func (e *Evaluator) numberDurationOp(op string, l *types.Number, r *types.DurationValue, rng *ast.Range) (types.Value, error) {
	if op != "*" {
		return nil, errf("domain_error", rng, "operator %q does not apply between Number and Duration", op)
	}
	if !l.Derived.IsDimensionless() {
		return nil, errf("domain_error", rng, "Duration can only be scaled by a plain Number")
	}
	return &types.DurationValue{Duration: temporal.Scale(r.Duration, l.Magnitude)}, nil
}
