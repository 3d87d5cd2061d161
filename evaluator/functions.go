package evaluator

import (
	"strings"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/mathfn"
	"github.com/paperlang/paper/types"
	"github.com/shopspring/decimal"
)

// builtins are function calls the evaluator handles directly because they
// need Value-level information (units, Scope) that mathfn's pure
// decimal.Decimal functions don't see.
var builtins = map[string]bool{
	"round": true, "floor": true, "ceil": true, "trunc": true,
	"random": true, "sum": true, "avg": true, "min": true, "max": true,
}

func (e *Evaluator) evalCall(n *ast.Call) (types.Value, error) {
	name := strings.ToLower(n.Name)
	args := make([]types.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if builtins[name] {
		return e.callBuiltin(name, args, n.Range)
	}
	return e.callMathFn(name, args, n.Range)
}

// callMathFn dispatches to mathfn.Call for every plain-number trig/log/
// combinatoric function; unit-bearing arguments are rejected since none of
// those functions are unit-aware.
func (e *Evaluator) callMathFn(name string, args []types.Value, rng *ast.Range) (types.Value, error) {
	decimals := make([]decimal.Decimal, len(args))
	for i, a := range args {
		num, ok := a.(*types.Number)
		if !ok || !num.Derived.IsDimensionless() {
			return nil, errf("domain_error", rng, "%s() requires plain Number arguments, got %s", name, a.TypeName())
		}
		decimals[i] = num.Magnitude
	}
	result, err := mathfn.Call(e.fnContext(), name, decimals)
	if err != nil {
		return nil, mapMathFnError(name, err, rng)
	}
	return types.NewPlainNumber(result), nil
}

func mapMathFnError(name string, err error, rng *ast.Range) error {
	switch err.(type) {
	case *mathfn.DomainError:
		return errf("domain_error", rng, "%v", err)
	case *mathfn.ArityError:
		return errf("domain_error", rng, "%v", err)
	default:
		return errf("domain_error", rng, "unknown function %q", name)
	}
}

func (e *Evaluator) callBuiltin(name string, args []types.Value, rng *ast.Range) (types.Value, error) {
	switch name {
	case "round", "floor", "ceil", "trunc":
		return e.callRounding(name, args, rng)
	case "random":
		return e.callRandom(args, rng)
	case "sum", "avg", "min", "max":
		return e.callAggregate(name, args, rng)
	default:
		return nil, errf("domain_error", rng, "unknown function %q", name)
	}
}

var roundModes = map[string]mathfn.RoundMode{
	"round": mathfn.RoundNearest, "floor": mathfn.RoundFloor,
	"ceil": mathfn.RoundCeil, "trunc": mathfn.RoundTrunc,
}

// callRounding implements round/floor/ceil/trunc(x) and the two-argument
// round/floor/ceil/trunc(x, nearest) form, which rounds to the nearest
// multiple of `nearest` instead of to an integer. When x carries a unit,
// nearest must share its dimension.
func (e *Evaluator) callRounding(name string, args []types.Value, rng *ast.Range) (types.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, errf("domain_error", rng, "%s() expects 1-2 arguments, got %d", name, len(args))
	}
	x, ok := args[0].(*types.Number)
	if !ok {
		return nil, errf("domain_error", rng, "%s() requires a Number, got %s", name, args[0].TypeName())
	}
	mode := roundModes[name]
	nearest := decimal.NewFromInt(1)
	if len(args) == 2 {
		n, ok := args[1].(*types.Number)
		if !ok {
			return nil, errf("domain_error", rng, "%s() nearest argument must be a Number", name)
		}
		aligned, err := e.alignMagnitude(x.Derived, n, rng)
		if err != nil {
			return nil, err
		}
		nearest = aligned
	}
	return &types.Number{Magnitude: mathfn.RoundToNearest(x.Magnitude, nearest, mode), Derived: x.Derived}, nil
}

// callRandom implements random(), random(max), random(min, max), and
// random(min, max, step).
func (e *Evaluator) callRandom(args []types.Value, rng *ast.Range) (types.Value, error) {
	nums := make([]decimal.Decimal, len(args))
	for i, a := range args {
		n, ok := a.(*types.Number)
		if !ok || !n.Derived.IsDimensionless() {
			return nil, errf("domain_error", rng, "random() arguments must be plain Numbers")
		}
		nums[i] = n.Magnitude
	}
	switch len(args) {
	case 0:
		return types.NewPlainNumber(mathfn.RandomUniform(e.Rand)), nil
	case 1:
		return types.NewPlainNumber(mathfn.RandomMax(e.Rand, nums[0].IntPart())), nil
	case 2:
		return types.NewPlainNumber(mathfn.RandomRange(e.Rand, nums[0].IntPart(), nums[1].IntPart())), nil
	case 3:
		return types.NewPlainNumber(mathfn.RandomStep(e.Rand, nums[0], nums[1], nums[2])), nil
	default:
		return nil, errf("domain_error", rng, "random() expects 0-3 arguments, got %d", len(args))
	}
}

// callAggregate implements sum/avg/min/max over a variadic argument list,
// each a plain Number or a Number sharing the first argument's dimension.
func (e *Evaluator) callAggregate(name string, args []types.Value, rng *ast.Range) (types.Value, error) {
	if len(args) == 0 {
		return nil, errf("domain_error", rng, "%s() requires at least one argument", name)
	}
	first, ok := args[0].(*types.Number)
	if !ok {
		return nil, errf("domain_error", rng, "%s() requires Number arguments, got %s", name, args[0].TypeName())
	}
	values := make([]decimal.Decimal, len(args))
	values[0] = first.Magnitude
	for i, a := range args[1:] {
		n, ok := a.(*types.Number)
		if !ok {
			return nil, errf("domain_error", rng, "%s() requires Number arguments, got %s", name, a.TypeName())
		}
		aligned, err := e.alignMagnitude(first.Derived, n, rng)
		if err != nil {
			return nil, err
		}
		values[i+1] = aligned
	}

	switch name {
	case "sum":
		total := decimal.Zero
		for _, v := range values {
			total = total.Add(v)
		}
		return &types.Number{Magnitude: total, Derived: first.Derived}, nil
	case "avg":
		total := decimal.Zero
		for _, v := range values {
			total = total.Add(v)
		}
		return &types.Number{Magnitude: total.Div(decimal.NewFromInt(int64(len(values)))), Derived: first.Derived}, nil
	case "min":
		m := values[0]
		for _, v := range values[1:] {
			if v.LessThan(m) {
				m = v
			}
		}
		return &types.Number{Magnitude: m, Derived: first.Derived}, nil
	case "max":
		m := values[0]
		for _, v := range values[1:] {
			if v.GreaterThan(m) {
				m = v
			}
		}
		return &types.Number{Magnitude: m, Derived: first.Derived}, nil
	default:
		return nil, errf("domain_error", rng, "unknown aggregate %q", name)
	}
}
