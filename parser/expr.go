package parser

import (
	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/lexer"
)

// parseExpression is the entry point for a full expression: the widest
// precedence level is the `to`/`in`/→ conversion operator, so that
// "a + b to km" converts the whole sum rather than just b.
func (p *parser) parseExpression() (ast.Node, error) {
	return p.parseConversion()
}

func (p *parser) parseConversion() (ast.Node, error) {
	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	for p.checkKeyword("to") || p.checkKeyword("in") || p.check(lexer.ARROW) {
		start := p.previous()
		p.advance()
		target, err := p.parseConversionTarget()
		if err != nil {
			return nil, err
		}
		left = &ast.Conversion{Expr: left, Target: target, Range: p.rangeFrom(start)}
	}
	return left, nil
}

func (p *parser) parseLogicalOr() (ast.Node, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.PIPEPIPE) || p.checkKeyword("or") {
		start := p.previous()
		p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalOp{Operator: "||", Left: left, Right: right, Range: p.rangeFrom(start)}
	}
	return left, nil
}

func (p *parser) parseLogicalAnd() (ast.Node, error) {
	left, err := p.parseBitwiseOr()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.AMPAMP) || p.checkKeyword("and") {
		start := p.previous()
		p.advance()
		right, err := p.parseBitwiseOr()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalOp{Operator: "&&", Left: left, Right: right, Range: p.rangeFrom(start)}
	}
	return left, nil
}

func (p *parser) parseBitwiseOr() (ast.Node, error) {
	left, err := p.parseBitwiseXor()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.PIPE) {
		start := p.previous()
		p.advance()
		right, err := p.parseBitwiseXor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Operator: "|", Left: left, Right: right, Range: p.rangeFrom(start)}
	}
	return left, nil
}

func (p *parser) parseBitwiseXor() (ast.Node, error) {
	left, err := p.parseBitwiseAnd()
	if err != nil {
		return nil, err
	}
	for p.checkKeyword("xor") {
		start := p.previous()
		p.advance()
		right, err := p.parseBitwiseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Operator: "xor", Left: left, Right: right, Range: p.rangeFrom(start)}
	}
	return left, nil
}

func (p *parser) parseBitwiseAnd() (ast.Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.AMP) {
		start := p.previous()
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Operator: "&", Left: left, Right: right, Range: p.rangeFrom(start)}
	}
	return left, nil
}

var comparisonKinds = []lexer.Kind{lexer.EQ, lexer.NEQ, lexer.LT, lexer.LTE, lexer.GT, lexer.GTE}

func (p *parser) parseComparison() (ast.Node, error) {
	left, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for p.matchesAny(comparisonKinds) {
		op := p.previous()
		right, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Operator: op.Lexeme, Left: left, Right: right, Range: p.rangeFrom(op)}
	}
	return left, nil
}

var shiftKinds = []lexer.Kind{lexer.SHL, lexer.SHR}

func (p *parser) parseShift() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.matchesAny(shiftKinds) {
		op := p.previous()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Operator: op.Lexeme, Left: left, Right: right, Range: p.rangeFrom(op)}
	}
	return left, nil
}

func (p *parser) matchesAny(kinds []lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Operator: op.Lexeme, Left: left, Right: right, Range: p.rangeFrom(op)}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		if p.check(lexer.STAR) || p.check(lexer.SLASH) || p.check(lexer.PERCENT) || p.checkKeyword("per") || p.checkKeyword("mod") {
			op := p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			operator := op.Lexeme
			if operator == "per" {
				operator = "/"
			}
			left = &ast.BinaryOp{Operator: operator, Left: left, Right: right, Range: p.rangeFrom(op)}
			continue
		}
		if p.isCompositeContinuation(left) {
			start := p.peek()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = appendComposite(left, right, p.rangeFrom(start))
			continue
		}
		break
	}
	return left, nil
}

// isCompositeContinuation reports whether the upcoming token begins another
// unit-bearing term joined to left with no operator, e.g. the "3 in" after
// "5 ft" in "5 ft 3 in". Only a unit-bearing left side can continue this
// way, and only a NUMBER can start the next term (a bare UNIT or
// IDENTIFIER here would be implicit multiplication instead, which this
// dialect does not support).
func (p *parser) isCompositeContinuation(left ast.Node) bool {
	switch left.(type) {
	case *ast.UnitSuffix, *ast.Composite:
	default:
		return false
	}
	return p.check(lexer.NUMBER)
}

func appendComposite(left ast.Node, right ast.Node, rng *ast.Range) ast.Node {
	if c, ok := left.(*ast.Composite); ok {
		c.Components = append(c.Components, right)
		return c
	}
	return &ast.Composite{Components: []ast.Node{left, right}, Range: rng}
}

var unaryPrefixes = map[lexer.Kind]string{
	lexer.MINUS: "-", lexer.PLUS: "+", lexer.BANG: "!", lexer.TILDE: "~",
}

func (p *parser) parseUnary() (ast.Node, error) {
	if op, ok := unaryPrefixes[p.peek().Kind]; ok {
		start := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Operator: op, Operand: operand, Range: p.rangeFrom(start)}, nil
	}
	if p.checkKeyword("not") {
		start := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Operator: "!", Operand: operand, Range: p.rangeFrom(start)}, nil
	}
	return p.parseExponent()
}

func (p *parser) parseExponent() (ast.Node, error) {
	if err := p.enterDepth(); err != nil {
		return nil, err
	}
	defer p.exitDepth()

	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.CARET) {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Operator: "^", Left: left, Right: right, Range: p.rangeFrom(op)}, nil
	}
	return left, nil
}

func (p *parser) parsePostfix() (ast.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.BANG) {
		start := p.advance()
		left = &ast.Factorial{Operand: left, Range: p.rangeFrom(start)}
	}
	return left, nil
}
