// Package evaluator tree-walks a parsed Document and produces one
// types.Value (or *types.ErrorValue) per line. Evaluation never aborts:
// a failing line is isolated to its own ErrorValue and the rest of the
// document still evaluates, so no one bad line can break the sheet.
package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/currency"
	"github.com/paperlang/paper/mathfn"
	"github.com/paperlang/paper/temporal"
	"github.com/paperlang/paper/types"
	"github.com/paperlang/paper/units"
	"github.com/shopspring/decimal"
)

// Settings bundles the ambient configuration a calculation may depend on:
// angle convention for trig, imperial variant for affine/variant unit
// conversions (US vs UK gallon), and the installed exchange rates.
type Settings struct {
	AngleUnit       mathfn.AngleUnit
	ImperialVariant string
	Rates           *currency.Rates
}

// TimezoneResolver answers named-timezone lookups for `to <city>`
// conversions. data.Loader implements this; evaluator tests may stub it.
type TimezoneResolver interface {
	OffsetMinutes(name string) (int, bool)
}

// Evaluator walks AST nodes against a Scope and a unit Registry.
type Evaluator struct {
	Scope     *Scope
	Units     *units.Registry
	Settings  Settings
	Rand      mathfn.Source
	Timezones TimezoneResolver
}

// New creates an Evaluator. units may be nil only if the document under
// evaluation has no unit-bearing literals (tests commonly do this).
func New(scope *Scope, reg *units.Registry, settings Settings) *Evaluator {
	if scope == nil {
		scope = NewScope()
	}
	return &Evaluator{Scope: scope, Units: reg, Settings: settings, Rand: mathfn.DefaultSource()}
}

func (e *Evaluator) fnContext() *mathfn.Context {
	return &mathfn.Context{AngleUnit: e.Settings.AngleUnit, Rand: e.Rand}
}

// EvalLine evaluates one parsed Line. It never returns a Go error: parse
// vs. heading/comment/blank dispatch already happened, and any evaluation
// failure is captured as a *types.ErrorValue so the caller can display it
// inline without aborting the rest of the document.
func (e *Evaluator) EvalLine(line *ast.Line) types.Value {
	switch line.Kind {
	case ast.LineHeading, ast.LineComment, ast.LineEmpty, ast.LinePlainText:
		return nil
	case ast.LineVariableDefinition:
		v, err := e.Eval(line.Expr)
		if err != nil {
			return toErrorValue(err)
		}
		if err := e.Scope.Set(line.VariableName, v); err != nil {
			return toErrorValue(err)
		}
		return v
	case ast.LineExpression:
		v, err := e.Eval(line.Expr)
		if err != nil {
			return toErrorValue(err)
		}
		return v
	default:
		return nil
	}
}

func toErrorValue(err error) *types.ErrorValue {
	if ee, ok := err.(*EvaluationError); ok {
		return &types.ErrorValue{Kind: mapKind(ee.Kind), Message: ee.Message, Span: ee.Range}
	}
	return &types.ErrorValue{Kind: types.DomainError, Message: err.Error()}
}

func mapKind(kind string) types.ErrorKind {
	switch kind {
	case "undefined_variable":
		return types.UndefinedVariable
	case "dimension_mismatch":
		return types.DimensionMismatch
	case "division_by_zero":
		return types.DivisionByZero
	case "invalid_conversion":
		return types.InvalidConversion
	case "currency_unavailable":
		return types.CurrencyUnavailable
	case "overflow":
		return types.Overflow
	default:
		return types.DomainError
	}
}

// Eval evaluates a single expression node.
func (e *Evaluator) Eval(node ast.Node) (types.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		dec, err := parseNumberLiteral(n.Value)
		if err != nil {
			return nil, errf("domain_error", n.Range, "invalid number literal %q", n.Value)
		}
		return types.NewPlainNumber(dec), nil

	case *ast.UnitSuffix:
		return e.evalUnitSuffix(n)

	case *ast.Composite:
		return e.evalComposite(n)

	case *ast.CurrencyLiteral:
		return e.evalCurrencyLiteral(n)

	case *ast.BooleanLiteral:
		return &types.Boolean{B: n.Value}, nil

	case *ast.DateTimeLiteral:
		return e.evalDateTimeLiteral(n)

	case *ast.Identifier:
		if v, ok := e.Scope.Get(n.Name); ok {
			return v, nil
		}
		return nil, errf("undefined_variable", n.Range, "undefined variable %q", n.Name)

	case *ast.Grouping:
		return e.Eval(n.Expr)

	case *ast.UnaryOp:
		return e.evalUnaryOp(n)

	case *ast.Factorial:
		return e.evalFactorial(n)

	case *ast.BinaryOp:
		return e.evalBinaryOp(n)

	case *ast.LogicalOp:
		return e.evalLogicalOp(n)

	case *ast.Call:
		return e.evalCall(n)

	case *ast.Conversion:
		return e.evalConversion(n)

	case *ast.Conditional:
		return e.evalConditional(n)

	case *ast.Assignment:
		v, err := e.Eval(n.Value)
		if err != nil {
			return nil, err
		}
		if err := e.Scope.Set(n.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	default:
		return nil, errf("domain_error", node.GetRange(), "unhandled node type %T", node)
	}
}

// parseNumberLiteral parses a lexer NUMBER token's text, which may carry a
// 0b/0o/0x base prefix (underscores already stripped by the lexer), into a
// decimal.Decimal. Base-prefixed literals are integral by construction.
func parseNumberLiteral(s string) (decimal.Decimal, error) {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "0x"):
		n, err := strconv.ParseInt(lower[2:], 16, 64)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(n), nil
	case strings.HasPrefix(lower, "0o"):
		n, err := strconv.ParseInt(lower[2:], 8, 64)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(n), nil
	case strings.HasPrefix(lower, "0b"):
		n, err := strconv.ParseInt(lower[2:], 2, 64)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(n), nil
	}
	return decimal.NewFromString(s)
}

func (e *Evaluator) evalUnitSuffix(n *ast.UnitSuffix) (types.Value, error) {
	operand, err := e.Eval(n.Operand)
	if err != nil {
		return nil, err
	}
	num, ok := operand.(*types.Number)
	if !ok {
		return nil, errf("domain_error", n.Range, "cannot attach unit %q to a %s", n.Unit, operand.TypeName())
	}
	if n.Unit == "%" {
		return &types.Number{Magnitude: num.Magnitude, IsPercent: true}, nil
	}
	if !num.Derived.IsDimensionless() {
		return nil, errf("domain_error", n.Range, "value already has a unit")
	}
	u, ok := e.resolveUnit(n.Unit)
	if !ok {
		return nil, errf("invalid_conversion", n.Range, "unknown unit %q", n.Unit)
	}
	return &types.Number{Magnitude: num.Magnitude, Derived: units.Single(u)}, nil
}

func (e *Evaluator) resolveUnit(name string) (*units.Unit, bool) {
	if e.Units == nil {
		return nil, false
	}
	return e.Units.Resolve(name)
}

func (e *Evaluator) evalComposite(n *ast.Composite) (types.Value, error) {
	components := make([]units.CompositeComponent, 0, len(n.Components))
	for _, term := range n.Components {
		v, err := e.Eval(term)
		if err != nil {
			return nil, err
		}
		num, ok := v.(*types.Number)
		if !ok {
			return nil, errf("domain_error", n.Range, "composite term must be a unit-bearing number")
		}
		u, ok := num.Derived.AsUnit()
		if !ok {
			return nil, errf("domain_error", n.Range, "composite term must carry exactly one unit")
		}
		components = append(components, units.CompositeComponent{Magnitude: num.Magnitude, Unit: u})
	}
	return &types.Composite{Components: components}, nil
}

func (e *Evaluator) evalCurrencyLiteral(n *ast.CurrencyLiteral) (types.Value, error) {
	operand, err := e.Eval(n.Operand)
	if err != nil {
		return nil, err
	}
	num, ok := operand.(*types.Number)
	if !ok {
		return nil, errf("domain_error", n.Range, "cannot attach currency to a %s", operand.TypeName())
	}
	if strings.HasPrefix(n.Code, "currency_symbol_") {
		return &types.Currency{Amount: num.Magnitude, Code: n.Code, Symbol: ambiguousSymbolGlyph(n.Code)}, nil
	}
	return &types.Currency{Amount: num.Magnitude, Code: strings.ToUpper(n.Code)}, nil
}

// ambiguousSymbolGlyph recovers a display glyph from a classifier
// dimension id like "currency_symbol_0024" ($) for redisplay before the
// user has disambiguated which ISO currency it denotes.
func ambiguousSymbolGlyph(dimensionID string) string {
	hex := strings.TrimPrefix(dimensionID, "currency_symbol_")
	n, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return ""
	}
	return string(rune(n))
}

func (e *Evaluator) evalDateTimeLiteral(n *ast.DateTimeLiteral) (types.Value, error) {
	switch n.Kind {
	case "time":
		t, err := parseTimeLexeme(n.Lexeme)
		if err != nil {
			return nil, errf("domain_error", n.Range, "%v", err)
		}
		return &types.PlainTimeValue{Time: t}, nil
	default:
		return nil, errf("domain_error", n.Range, "cannot evaluate bare %s literal %q outside a combining expression", n.Kind, n.Lexeme)
	}
}

func parseTimeLexeme(s string) (temporal.PlainTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return temporal.PlainTime{}, fmt.Errorf("invalid time literal %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return temporal.PlainTime{}, err
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return temporal.PlainTime{}, err
	}
	second := 0
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil {
			return temporal.PlainTime{}, err
		}
	}
	return temporal.PlainTime{Hour: hour, Minute: minute, Second: second}, nil
}

func (e *Evaluator) evalConditional(n *ast.Conditional) (types.Value, error) {
	cond, err := e.Eval(n.Condition)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(*types.Boolean)
	if !ok {
		return nil, errf("domain_error", n.Range, "if condition must be a Boolean, got %s", cond.TypeName())
	}
	if b.B {
		return e.Eval(n.Then)
	}
	return e.Eval(n.Else)
}
