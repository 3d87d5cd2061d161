package evaluator

import (
	"testing"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/currency"
	"github.com/paperlang/paper/types"
	"github.com/paperlang/paper/units"
	"github.com/shopspring/decimal"
)

func testRegistry() *units.Registry {
	reg := units.NewRegistry()
	reg.AddDimension(&units.Dimension{ID: "length", Name: "Length"})
	m := &units.Unit{ID: "meter", Names: []string{"m", "meter", "meters"}, DimensionID: "length", Conversion: units.LinearConversion(decimal.NewFromInt(1))}
	km := &units.Unit{ID: "kilometer", Names: []string{"km", "kilometer", "kilometers"}, DimensionID: "length", Conversion: units.LinearConversion(decimal.NewFromInt(1000))}
	ft := &units.Unit{ID: "foot", Names: []string{"ft", "foot", "feet"}, DimensionID: "length", Conversion: units.LinearConversion(decimal.RequireFromString("0.3048"))}
	inch := &units.Unit{ID: "inch", Names: []string{"in", "inch", "inches"}, DimensionID: "length", Conversion: units.LinearConversion(decimal.RequireFromString("0.0254"))}
	reg.AddUnit(m)
	reg.AddUnit(km)
	reg.AddUnit(ft)
	reg.AddUnit(inch)
	return reg
}

func num(n int64) *ast.NumberLiteral { return &ast.NumberLiteral{Value: decimal.NewFromInt(n).String()} }

func requireNumber(t *testing.T, v types.Value) *types.Number {
	t.Helper()
	n, ok := v.(*types.Number)
	if !ok {
		t.Fatalf("expected *types.Number, got %T (%v)", v, v)
	}
	return n
}

func TestEvalNumberLiteral(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	v, err := e.Eval(num(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := requireNumber(t, v)
	if !n.Magnitude.Equal(decimal.NewFromInt(42)) {
		t.Errorf("expected 42, got %s", n.Magnitude)
	}
}

func TestEvalAddition(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	v, err := e.Eval(&ast.BinaryOp{Operator: "+", Left: num(5), Right: num(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := requireNumber(t, v)
	if !n.Magnitude.Equal(decimal.NewFromInt(8)) {
		t.Errorf("expected 8, got %s", n.Magnitude)
	}
}

func TestEvalPercentageAddition(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	pct := &ast.UnitSuffix{Operand: num(20), Unit: "%"}
	v, err := e.Eval(&ast.BinaryOp{Operator: "+", Left: num(100), Right: pct})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := requireNumber(t, v)
	if !n.Magnitude.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected 120, got %s", n.Magnitude)
	}
}

func TestEvalUnitConversion(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	meters := &ast.UnitSuffix{Operand: num(5000), Unit: "m"}
	conv := &ast.Conversion{Expr: meters, Target: ast.UnitTarget{Expr: &ast.Identifier{Name: "km"}}}
	v, err := e.Eval(conv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := requireNumber(t, v)
	if !n.Magnitude.Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected 5, got %s", n.Magnitude)
	}
}

func TestEvalDimensionMismatch(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	meters := &ast.UnitSuffix{Operand: num(5), Unit: "m"}
	plain := num(3)
	_, err := e.Eval(&ast.BinaryOp{Operator: "+", Left: meters, Right: plain})
	if err == nil {
		t.Fatalf("expected a dimension mismatch error")
	}
}

func TestEvalCompositeConversion(t *testing.T) {
	e := New(nil, testRegistry(), Settings{ImperialVariant: "us"})
	meters := &ast.UnitSuffix{Operand: num(2), Unit: "m"}
	conv := &ast.Conversion{Expr: meters, Target: ast.CompositeTarget{Units: []string{"ft", "in"}}}
	v, err := e.Eval(conv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := v.(*types.Composite)
	if !ok {
		t.Fatalf("expected *types.Composite, got %T", v)
	}
	if len(c.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(c.Components))
	}
}

func TestEvalCurrencyMismatchWithoutRates(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	usd := &ast.CurrencyLiteral{Operand: num(10), Code: "USD"}
	eur := &ast.CurrencyLiteral{Operand: num(5), Code: "EUR"}
	_, err := e.Eval(&ast.BinaryOp{Operator: "+", Left: usd, Right: eur})
	if err == nil {
		t.Fatalf("expected an error without installed exchange rates")
	}
}

func TestEvalCurrencyConversionWithRates(t *testing.T) {
	rates := &currency.Rates{Base: "USD", Table: map[string]decimal.Decimal{"eur": decimal.RequireFromString("0.9")}}
	e := New(nil, testRegistry(), Settings{Rates: rates})
	usd := &ast.CurrencyLiteral{Operand: num(10), Code: "USD"}
	eur := &ast.CurrencyLiteral{Operand: num(9), Code: "EUR"}
	v, err := e.Eval(&ast.BinaryOp{Operator: "+", Left: usd, Right: eur})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := v.(*types.Currency)
	if !ok {
		t.Fatalf("expected *types.Currency, got %T", v)
	}
	// 9 EUR -> 10 USD at the 0.9 rate, so 10 + 10 = 20.
	if !c.Amount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected 20, got %s", c.Amount)
	}
}

func TestEvalConditional(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	cond := &ast.Conditional{
		Condition: &ast.BinaryOp{Operator: ">", Left: num(5), Right: num(3)},
		Then:      num(1),
		Else:      num(0),
	}
	v, err := e.Eval(cond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := requireNumber(t, v)
	if !n.Magnitude.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected 1, got %s", n.Magnitude)
	}
}

func TestEvalUndefinedVariable(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	_, err := e.Eval(&ast.Identifier{Name: "x"})
	if err == nil {
		t.Fatalf("expected undefined variable error")
	}
}

func TestEvalAssignmentBindsAfterEvaluation(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	_, err := e.Eval(&ast.Assignment{Name: "x", Value: num(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := e.Eval(&ast.Identifier{Name: "x"})
	if err != nil {
		t.Fatalf("unexpected error resolving x: %v", err)
	}
	n := requireNumber(t, v)
	if !n.Magnitude.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected 10, got %s", n.Magnitude)
	}
}

func TestEvalConstantNotAssignable(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	_, err := e.Eval(&ast.Assignment{Name: "pi", Value: num(3)})
	if err == nil {
		t.Fatalf("expected an error assigning to constant pi")
	}
}

func TestEvalFactorial(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	v, err := e.Eval(&ast.Factorial{Operand: num(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := requireNumber(t, v)
	if !n.Magnitude.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected 120, got %s", n.Magnitude)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	e := New(nil, testRegistry(), Settings{})
	_, err := e.Eval(&ast.BinaryOp{Operator: "/", Left: num(1), Right: num(0)})
	if err == nil {
		t.Fatalf("expected division by zero error")
	}
}
