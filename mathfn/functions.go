// Package mathfn implements the table-driven math function registry:
// trig, hyperbolic, log, rounding, and combinatorics. Every function
// validates arity and domain before applying.
package mathfn

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// AngleUnit selects how trig functions interpret/produce angle values that
// have no explicit unit.
type AngleUnit string

const (
	Radian AngleUnit = "radian"
	Degree AngleUnit = "degree"
)

// DomainError is returned when an argument falls outside a function's
// valid domain (e.g. sqrt of a negative number).
type DomainError struct {
	Func    string
	Message string
}

func (e *DomainError) Error() string { return fmt.Sprintf("%s: %s", e.Func, e.Message) }

// ArityError is returned when a function is called with the wrong number
// of arguments.
type ArityError struct {
	Func          string
	Got, Min, Max int
}

func (e *ArityError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("%s expects %d argument(s), got %d", e.Func, e.Min, e.Got)
	}
	return fmt.Sprintf("%s expects %d-%d arguments, got %d", e.Func, e.Min, e.Max, e.Got)
}

// Func is one entry in the registry.
type Func struct {
	MinArity, MaxArity int
	Call               func(ctx *Context, args []decimal.Decimal) (decimal.Decimal, error)
}

// Context carries the settings a function call needs beyond its
// arguments: the active angle convention and (for random) a pluggable
// source, so callers can seed deterministic tests.
type Context struct {
	AngleUnit AngleUnit
	Rand      Source
}

func toRadians(ctx *Context, v float64) float64 {
	if ctx.AngleUnit == Degree {
		return v * math.Pi / 180
	}
	return v
}

func fromRadians(ctx *Context, v float64) float64 {
	if ctx.AngleUnit == Degree {
		return v * 180 / math.Pi
	}
	return v
}

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// Registry is the name -> Func table. Names are matched case-insensitively
// by callers (the evaluator lowercases before lookup).
var Registry = map[string]Func{
	"sqrt": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		if f < 0 {
			return decimal.Zero, &DomainError{"sqrt", "argument must be >= 0"}
		}
		return d(math.Sqrt(f)), nil
	}},
	"cbrt": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		return d(math.Cbrt(f)), nil
	}},
	"log": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		if f <= 0 {
			return decimal.Zero, &DomainError{"log", "argument must be > 0"}
		}
		return d(math.Log10(f)), nil
	}},
	"ln": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		if f <= 0 {
			return decimal.Zero, &DomainError{"ln", "argument must be > 0"}
		}
		return d(math.Log(f)), nil
	}},
	"exp": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		return d(math.Exp(f)), nil
	}},
	"abs": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		return a[0].Abs(), nil
	}},
	"sin": {1, 1, trig(math.Sin)},
	"cos": {1, 1, trig(math.Cos)},
	"tan": {1, 1, trig(math.Tan)},
	"asin": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		if f < -1 || f > 1 {
			return decimal.Zero, &DomainError{"asin", "argument must be within [-1, 1]"}
		}
		return d(fromRadians(ctx, math.Asin(f))), nil
	}},
	"acos": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		if f < -1 || f > 1 {
			return decimal.Zero, &DomainError{"acos", "argument must be within [-1, 1]"}
		}
		return d(fromRadians(ctx, math.Acos(f))), nil
	}},
	"atan": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		return d(fromRadians(ctx, math.Atan(f))), nil
	}},
	"atan2": {2, 2, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		y, _ := a[0].Float64()
		x, _ := a[1].Float64()
		return d(fromRadians(ctx, math.Atan2(y, x))), nil
	}},
	"sinh": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		return d(math.Sinh(f)), nil
	}},
	"cosh": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		return d(math.Cosh(f)), nil
	}},
	"tanh": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		return d(math.Tanh(f)), nil
	}},
	"asinh": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		return d(math.Asinh(f)), nil
	}},
	"acosh": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		if f < 1 {
			return decimal.Zero, &DomainError{"acosh", "argument must be >= 1"}
		}
		return d(math.Acosh(f)), nil
	}},
	"atanh": {1, 1, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		f, _ := a[0].Float64()
		if f <= -1 || f >= 1 {
			return decimal.Zero, &DomainError{"atanh", "argument must be within (-1, 1)"}
		}
		return d(math.Atanh(f)), nil
	}},
	"perm": {2, 2, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		return permComb(a, true)
	}},
	"comb": {2, 2, func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		return permComb(a, false)
	}},
}

func trig(f func(float64) float64) func(*Context, []decimal.Decimal) (decimal.Decimal, error) {
	return func(ctx *Context, a []decimal.Decimal) (decimal.Decimal, error) {
		v, _ := a[0].Float64()
		return d(f(toRadians(ctx, v))), nil
	}
}

func permComb(a []decimal.Decimal, permutation bool) (decimal.Decimal, error) {
	name := "comb"
	if permutation {
		name = "perm"
	}
	n := a[0].IntPart()
	k := a[1].IntPart()
	if !a[0].Equal(decimal.NewFromInt(n)) || !a[1].Equal(decimal.NewFromInt(k)) {
		return decimal.Zero, &DomainError{name, "arguments must be integers"}
	}
	if n < 0 || k < 0 {
		return decimal.Zero, &DomainError{name, "arguments must be non-negative"}
	}
	if k > n {
		return decimal.Zero, &DomainError{name, "k must be <= n"}
	}
	result := decimal.NewFromInt(1)
	if permutation {
		for i := int64(0); i < k; i++ {
			result = result.Mul(decimal.NewFromInt(n - i))
		}
		return result, nil
	}
	result = decimal.NewFromInt(1)
	for i := int64(0); i < k; i++ {
		result = result.Mul(decimal.NewFromInt(n - i)).Div(decimal.NewFromInt(i + 1))
	}
	return result, nil
}

// Call looks up a function by its exact registry name (the lookup is
// case-sensitive; the evaluator lowercases names before calling) and
// invokes it, validating arity first.
func Call(ctx *Context, name string, args []decimal.Decimal) (decimal.Decimal, error) {
	fn, ok := Registry[name]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown function %q", name)
	}
	if len(args) < fn.MinArity || len(args) > fn.MaxArity {
		return decimal.Zero, &ArityError{Func: name, Got: len(args), Min: fn.MinArity, Max: fn.MaxArity}
	}
	return fn.Call(ctx, args)
}

// RoundMode selects the rounding direction RoundToNearest applies.
type RoundMode int

const (
	RoundNearest RoundMode = iota
	RoundFloor
	RoundCeil
	RoundTrunc
)

// RoundToNearest rounds x to the nearest multiple of m (used by
// round/floor/ceil/trunc's optional second argument). mode selects the
// rounding direction.
func RoundToNearest(x, m decimal.Decimal, mode RoundMode) decimal.Decimal {
	if m.IsZero() {
		return x
	}
	quotient := x.Div(m)
	var n decimal.Decimal
	switch mode {
	case RoundFloor:
		n = quotient.Floor()
	case RoundCeil:
		n = quotient.Ceil()
	case RoundTrunc:
		n = quotient.Truncate(0)
	default:
		n = quotient.Round(0)
	}
	return n.Mul(m)
}
