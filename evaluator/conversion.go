package evaluator

import (
	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/currency"
	"github.com/paperlang/paper/temporal"
	"github.com/paperlang/paper/types"
	"github.com/paperlang/paper/units"
)

// evalConversion handles the `expr to target` operator. Presentation
// targets (to binary, to base 7, to ISO 8601) don't change the underlying
// value at all; they are a display hint the format package reads back off
// the Conversion AST node, so here they simply pass the evaluated operand
// through unchanged.
func (e *Evaluator) evalConversion(n *ast.Conversion) (types.Value, error) {
	v, err := e.Eval(n.Expr)
	if err != nil {
		return nil, err
	}

	switch target := n.Target.(type) {
	case ast.UnitTarget:
		return e.convertToUnit(v, target, n.Range)
	case ast.CompositeTarget:
		return e.convertToComposite(v, target, n.Range)
	case ast.PresentationTarget:
		return v, nil
	case ast.TimezoneTarget:
		return e.convertToTimezone(v, target, n.Range)
	default:
		return nil, errf("domain_error", n.Range, "unknown conversion target")
	}
}

func (e *Evaluator) convertToUnit(v types.Value, target ast.UnitTarget, rng *ast.Range) (types.Value, error) {
	if cur, ok := v.(*types.Currency); ok {
		if id, ok := target.Expr.(*ast.Identifier); ok {
			amount, err := currency.Convert(e.Settings.Rates, cur.Amount, cur.Code, id.Name)
			if err != nil {
				return nil, errf("currency_unavailable", rng, "%v", err)
			}
			return &types.Currency{Amount: amount, Code: id.Name}, nil
		}
	}

	targetUnit, targetDerived, err := e.resolveUnitExpr(target.Expr, rng)
	if err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case *types.Number:
		if !units.Compatible(val.Derived, targetDerived) {
			return nil, errf("dimension_mismatch", rng, "cannot convert %s to %s", val.Derived, targetDerived)
		}
		if targetUnit != nil {
			if srcUnit, ok := val.Derived.AsUnit(); ok {
				return &types.Number{Magnitude: units.Convert(srcUnit, targetUnit, val.Magnitude, e.Settings.ImperialVariant), Derived: units.Single(targetUnit)}, nil
			}
		}
		// Derived (multi-term) target: signatures already match, so
		// alignMagnitude rescales the magnitude through base-unit factors.
		mag, err := e.alignMagnitude(targetDerived, val, rng)
		if err != nil {
			return nil, err
		}
		return &types.Number{Magnitude: mag, Derived: targetDerived}, nil

	case *types.Composite:
		variant := e.Settings.ImperialVariant
		base := val.BaseMagnitude(variant)
		if targetUnit == nil {
			return nil, errf("domain_error", rng, "cannot convert a composite value to a derived unit")
		}
		return &types.Number{Magnitude: units.FromBase(targetUnit, base, variant), Derived: units.Single(targetUnit)}, nil

	default:
		return nil, errf("domain_error", rng, "cannot convert %s to a unit", v.TypeName())
	}
}

// resolveUnitExpr evaluates a unit-expression node (itself built from
// UnitSuffix/BinaryOp("*"/"/")/Grouping nodes by the parser) into both the
// concrete *units.Unit, when it names exactly one, and its DerivedUnit
// signature, used for compatibility checking either way.
func (e *Evaluator) resolveUnitExpr(expr ast.Node, rng *ast.Range) (*units.Unit, units.DerivedUnit, error) {
	switch n := expr.(type) {
	case *ast.Identifier:
		u, ok := e.resolveUnit(n.Name)
		if !ok {
			return nil, units.Dimensionless, errf("invalid_conversion", rng, "unknown unit %q", n.Name)
		}
		return u, units.Single(u), nil
	case *ast.UnitSuffix:
		u, ok := e.resolveUnit(n.Unit)
		if !ok {
			return nil, units.Dimensionless, errf("invalid_conversion", rng, "unknown unit %q", n.Unit)
		}
		return u, units.Single(u), nil
	case *ast.BinaryOp:
		_, lderived, err := e.resolveUnitExpr(n.Left, rng)
		if err != nil {
			return nil, units.Dimensionless, err
		}
		_, rderived, err := e.resolveUnitExpr(n.Right, rng)
		if err != nil {
			return nil, units.Dimensionless, err
		}
		var combined units.DerivedUnit
		switch n.Operator {
		case "*":
			combined = units.Multiply(lderived, rderived)
		case "/":
			combined = units.Divide(lderived, rderived)
		default:
			return nil, units.Dimensionless, errf("invalid_conversion", rng, "invalid unit expression operator %q", n.Operator)
		}
		if single, ok := combined.AsUnit(); ok {
			return single, combined, nil
		}
		return nil, combined, nil
	case *ast.Grouping:
		return e.resolveUnitExpr(n.Expr, rng)
	default:
		return nil, units.Dimensionless, errf("invalid_conversion", rng, "invalid unit expression")
	}
}

func (e *Evaluator) convertToComposite(v types.Value, target ast.CompositeTarget, rng *ast.Range) (types.Value, error) {
	num, ok := v.(*types.Number)
	if !ok {
		return nil, errf("domain_error", rng, "cannot convert %s to a composite unit list", v.TypeName())
	}
	targets := make([]*units.Unit, 0, len(target.Units))
	for _, name := range target.Units {
		u, ok := e.resolveUnit(name)
		if !ok {
			return nil, errf("invalid_conversion", rng, "unknown unit %q", name)
		}
		if !units.Compatible(num.Derived, units.Single(u)) {
			return nil, errf("dimension_mismatch", rng, "cannot convert %s to %s", num.Derived, u.Symbol())
		}
		targets = append(targets, u)
	}
	variant := e.Settings.ImperialVariant
	srcUnit, ok := num.Derived.AsUnit()
	if !ok {
		return nil, errf("domain_error", rng, "cannot split a derived-unit value into a composite")
	}
	base := units.ToBase(srcUnit, num.Magnitude, variant)
	return &types.Composite{Components: units.Split(base, targets, variant)}, nil
}

func (e *Evaluator) convertToTimezone(v types.Value, target ast.TimezoneTarget, rng *ast.Range) (types.Value, error) {
	if e.Timezones == nil {
		return nil, errf("invalid_conversion", rng, "no timezone data installed")
	}
	offset, ok := e.Timezones.OffsetMinutes(target.Name)
	if !ok {
		return nil, errf("invalid_conversion", rng, "unknown timezone %q", target.Name)
	}

	switch val := v.(type) {
	case *types.ZonedDateTimeValue:
		instant := temporal.ToInstant(val.Zoned)
		return &types.ZonedDateTimeValue{Zoned: temporal.FromInstant(instant, target.Name, offset)}, nil
	case *types.InstantValue:
		return &types.ZonedDateTimeValue{Zoned: temporal.FromInstant(val.Instant, target.Name, offset)}, nil
	case *types.PlainDateTimeValue:
		instant := temporal.FromDateTimeUTC(val.DateTime)
		return &types.ZonedDateTimeValue{Zoned: temporal.FromInstant(instant, target.Name, offset)}, nil
	default:
		return nil, errf("domain_error", rng, "cannot convert %s to a timezone", v.TypeName())
	}
}
