package parser

import (
	"strings"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/lexer"
)

func (p *parser) parsePrimary() (ast.Node, error) {
	switch {
	case p.check(lexer.NUMBER):
		return p.parseNumberAtom()

	case p.check(lexer.UNIT):
		return p.parsePrefixCurrencyAtom()

	case p.check(lexer.IDENTIFIER):
		return p.parseIdentifierAtom()

	case p.check(lexer.BOOLEAN):
		tok := p.advance()
		return &ast.BooleanLiteral{Value: booleanLexemes[tok.Lexeme], Range: p.rangeFrom(tok)}, nil

	case p.check(lexer.DATETIME):
		tok := p.advance()
		return &ast.DateTimeLiteral{Lexeme: tok.Lexeme, Kind: dateTimeKind(tok.Lexeme), Range: p.rangeFrom(tok)}, nil

	case p.check(lexer.LPAREN):
		return p.parseGrouping()

	case p.checkKeyword("if"):
		return p.parseConditionalExpr()

	default:
		return nil, p.errorHere("expected an expression")
	}
}

// parseNumberAtom reads a NUMBER token and then folds in any directly
// attached unit or currency suffix ("5 m", "100 USD").
func (p *parser) parseNumberAtom() (ast.Node, error) {
	tok := p.advance()
	node := ast.Node(&ast.NumberLiteral{Value: tok.Lexeme, Range: p.rangeFrom(tok)})

	if p.check(lexer.UNIT) {
		unitTok := p.advance()
		rng := p.rangeFrom(tok)
		if isCurrencyLexeme(unitTok.Lexeme) {
			return &ast.CurrencyLiteral{Operand: node, Code: unitTok.Lexeme, Range: rng}, nil
		}
		return &ast.UnitSuffix{Operand: node, Unit: unitTok.Lexeme, Range: rng}, nil
	}
	if p.check(lexer.PERCENT) {
		p.advance()
		return &ast.UnitSuffix{Operand: node, Unit: "%", Range: p.rangeFrom(tok)}, nil
	}
	return node, nil
}

// parsePrefixCurrencyAtom handles a UNIT token that the lexer emitted
// ahead of its number, e.g. "$100": the adjacent-symbol table recognizes
// "$" before it has seen the digits that follow.
func (p *parser) parsePrefixCurrencyAtom() (ast.Node, error) {
	unitTok := p.advance()
	if !p.check(lexer.NUMBER) {
		return nil, &Error{Message: "expected a number after unit/currency symbol '" + unitTok.Lexeme + "'", Line: unitTok.Line, Column: unitTok.Column}
	}
	numTok := p.advance()
	operand := &ast.NumberLiteral{Value: numTok.Lexeme, Range: p.rangeFrom(numTok)}
	rng := p.rangeFrom(unitTok)
	if isCurrencyLexeme(unitTok.Lexeme) {
		return &ast.CurrencyLiteral{Operand: operand, Code: unitTok.Lexeme, Range: rng}, nil
	}
	return &ast.UnitSuffix{Operand: operand, Unit: unitTok.Lexeme, Range: rng}, nil
}

func (p *parser) parseIdentifierAtom() (ast.Node, error) {
	tok := p.advance()
	if p.check(lexer.LPAREN) {
		return p.parseCallArgs(tok)
	}
	return &ast.Identifier{Name: tok.Lexeme, Range: p.rangeFrom(tok)}, nil
}

func (p *parser) parseCallArgs(name lexer.Token) (ast.Node, error) {
	p.advance() // '('
	var args []ast.Node
	if !p.check(lexer.RPAREN) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RPAREN, "expected ')' to close call to '"+name.Lexeme+"'"); err != nil {
		return nil, err
	}
	return &ast.Call{Name: name.Lexeme, Args: args, Range: p.rangeFrom(name)}, nil
}

func (p *parser) parseGrouping() (ast.Node, error) {
	if err := p.enterDepth(); err != nil {
		return nil, err
	}
	defer p.exitDepth()

	start := p.advance() // '('
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "expected ')'"); err != nil {
		return nil, err
	}
	return &ast.Grouping{Expr: inner, Range: p.rangeFrom(start)}, nil
}

func (p *parser) parseConditionalExpr() (ast.Node, error) {
	start := p.advance() // 'if'
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.matchKeyword("then") {
		return nil, p.errorHere("expected 'then' after if condition")
	}
	thenExpr, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.matchKeyword("else") {
		return nil, p.errorHere("expected 'else' after then-branch")
	}
	elseExpr, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	return &ast.Conditional{Condition: cond, Then: thenExpr, Else: elseExpr, Range: p.rangeFrom(start)}, nil
}

// isCurrencyLexeme distinguishes a currency-tagged UNIT token from a
// regular unit of measure. The classifier rewrites recognized currency
// symbols/codes/names to an ambiguous-symbol dimension id or an uppercase
// ISO code (see classifier.Classify rules 8-10); a plain unit lexeme never
// takes either shape.
func isCurrencyLexeme(lexeme string) bool {
	if strings.HasPrefix(lexeme, "currency_symbol_") {
		return true
	}
	if len(lexeme) == 3 {
		for _, r := range lexeme {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
		return true
	}
	return false
}

// booleanLexemes mirrors the lexer's own BOOLEAN recognition set (a
// narrower list than evaluator.booleanKeywords, which also resolves
// "on"/"off" by falling through the plain-Identifier path instead).
var booleanLexemes = map[string]bool{
	"true": true, "yes": true, "t": true, "y": true,
	"false": false, "no": false, "f": false, "n": false,
}

var monthWords = map[string]bool{
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "sept": true, "oct": true,
	"nov": true, "dec": true,
}

var weekdayWords = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"mon": true, "tue": true, "wed": true, "thu": true, "fri": true,
	"sat": true, "sun": true,
}

// dateTimeKind classifies a DATETIME token's lexeme for the evaluator,
// which needs to know whether it is combining a time-of-day, a month
// name, a weekday name, or an am/pm marker.
func dateTimeKind(lexeme string) string {
	lower := strings.ToLower(lexeme)
	switch {
	case strings.Contains(lexeme, ":"):
		return "time"
	case lower == "am" || lower == "pm":
		return "ampm"
	case monthWords[lower]:
		return "month"
	case weekdayWords[lower]:
		return "weekday"
	default:
		return "time"
	}
}
