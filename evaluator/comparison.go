package evaluator

import (
	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/currency"
	"github.com/paperlang/paper/temporal"
	"github.com/paperlang/paper/types"
)

func (e *Evaluator) evalComparison(op string, left, right types.Value, rng *ast.Range) (types.Value, error) {
	switch l := left.(type) {
	case *types.Number:
		r, ok := right.(*types.Number)
		if !ok {
			return nil, errf("domain_error", rng, "cannot compare Number with %s", right.TypeName())
		}
		rVal, err := e.alignMagnitude(l.Derived, r, rng)
		if err != nil {
			return nil, err
		}
		return boolResult(op, l.Magnitude.Cmp(rVal)), nil

	case *types.Currency:
		r, ok := right.(*types.Currency)
		if !ok {
			return nil, errf("domain_error", rng, "cannot compare Currency with %s", right.TypeName())
		}
		rAmount := r.Amount
		if l.Code != r.Code {
			converted, err := currency.Convert(e.Settings.Rates, r.Amount, r.Code, l.Code)
			if err != nil {
				return nil, errf("currency_unavailable", rng, "%v", err)
			}
			rAmount = converted
		}
		return boolResult(op, l.Amount.Cmp(rAmount)), nil

	case *types.Boolean:
		r, ok := right.(*types.Boolean)
		if !ok {
			return nil, errf("domain_error", rng, "cannot compare Boolean with %s", right.TypeName())
		}
		return equalityOnly(op, l.B == r.B, rng)

	case *types.PlainDateValue:
		r, ok := right.(*types.PlainDateValue)
		if !ok {
			return nil, errf("domain_error", rng, "cannot compare Date with %s", right.TypeName())
		}
		return boolResult(op, temporal.CompareDate(l.Date, r.Date)), nil

	case *types.PlainDateTimeValue:
		r, ok := right.(*types.PlainDateTimeValue)
		if !ok {
			return nil, errf("domain_error", rng, "cannot compare DateTime with %s", right.TypeName())
		}
		return boolResult(op, temporal.CompareDateTime(l.DateTime, r.DateTime)), nil

	case *types.InstantValue:
		r, ok := right.(*types.InstantValue)
		if !ok {
			return nil, errf("domain_error", rng, "cannot compare Instant with %s", right.TypeName())
		}
		return boolResult(op, compareInt64(l.Instant.Millis, r.Instant.Millis)), nil

	case *types.PlainTimeValue:
		r, ok := right.(*types.PlainTimeValue)
		if !ok {
			return nil, errf("domain_error", rng, "cannot compare Time with %s", right.TypeName())
		}
		return boolResult(op, compareInt64(l.Time.MillisOfDay(), r.Time.MillisOfDay())), nil

	default:
		return nil, errf("domain_error", rng, "operator %q does not apply to %s", op, left.TypeName())
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolResult(op string, cmp int) *types.Boolean {
	switch op {
	case "<":
		return &types.Boolean{B: cmp < 0}
	case ">":
		return &types.Boolean{B: cmp > 0}
	case "<=":
		return &types.Boolean{B: cmp <= 0}
	case ">=":
		return &types.Boolean{B: cmp >= 0}
	case "==":
		return &types.Boolean{B: cmp == 0}
	case "!=":
		return &types.Boolean{B: cmp != 0}
	default:
		return &types.Boolean{B: false}
	}
}

func equalityOnly(op string, equal bool, rng *ast.Range) (types.Value, error) {
	switch op {
	case "==":
		return &types.Boolean{B: equal}, nil
	case "!=":
		return &types.Boolean{B: !equal}, nil
	default:
		return nil, errf("domain_error", rng, "operator %q does not apply to Boolean", op)
	}
}
