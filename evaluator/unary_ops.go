package evaluator

import (
	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/types"
	"github.com/shopspring/decimal"
)

func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp) (types.Value, error) {
	operand, err := e.Eval(n.Operand)
	if err != nil {
		return nil, err
	}

	if n.Operator == "!" || n.Operator == "~" {
		b, ok := operand.(*types.Boolean)
		if !ok {
			return nil, errf("domain_error", n.Range, "operator %q requires a Boolean, got %s", n.Operator, operand.TypeName())
		}
		return &types.Boolean{B: !b.B}, nil
	}

	switch v := operand.(type) {
	case *types.Number:
		return &types.Number{Magnitude: applySign(n.Operator, v.Magnitude), Derived: v.Derived}, nil
	case *types.Currency:
		return &types.Currency{Amount: applySign(n.Operator, v.Amount), Code: v.Code, Symbol: v.Symbol}, nil
	default:
		return nil, errf("domain_error", n.Range, "operator %q does not apply to %s", n.Operator, operand.TypeName())
	}
}

func applySign(op string, d decimal.Decimal) decimal.Decimal {
	if op == "-" {
		return d.Neg()
	}
	return d
}

func (e *Evaluator) evalFactorial(n *ast.Factorial) (types.Value, error) {
	operand, err := e.Eval(n.Operand)
	if err != nil {
		return nil, err
	}
	num, ok := operand.(*types.Number)
	if !ok || !num.Derived.IsDimensionless() {
		return nil, errf("domain_error", n.Range, "! requires a plain Number")
	}
	if !num.Magnitude.IsInteger() || num.Magnitude.IsNegative() {
		return nil, errf("domain_error", n.Range, "! requires a non-negative integer, got %s", num.Magnitude.String())
	}
	k := num.Magnitude.IntPart()
	result := decimal.NewFromInt(1)
	for i := int64(2); i <= k; i++ {
		result = result.Mul(decimal.NewFromInt(i))
	}
	return types.NewPlainNumber(result), nil
}

func (e *Evaluator) evalLogicalOp(n *ast.LogicalOp) (types.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(*types.Boolean)
	if !ok {
		return nil, errf("domain_error", n.Range, "operator %q requires Boolean operands, got %s", n.Operator, left.TypeName())
	}

	// Short-circuit before evaluating the right side.
	if n.Operator == "&&" && !lb.B {
		return &types.Boolean{B: false}, nil
	}
	if n.Operator == "||" && lb.B {
		return &types.Boolean{B: true}, nil
	}

	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(*types.Boolean)
	if !ok {
		return nil, errf("domain_error", n.Range, "operator %q requires Boolean operands, got %s", n.Operator, right.TypeName())
	}
	switch n.Operator {
	case "&&":
		return &types.Boolean{B: lb.B && rb.B}, nil
	case "||":
		return &types.Boolean{B: lb.B || rb.B}, nil
	default:
		return nil, errf("domain_error", n.Range, "unknown logical operator %q", n.Operator)
	}
}
