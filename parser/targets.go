package parser

import (
	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/lexer"
)

var presentationKeywords = map[string]bool{
	"binary": true, "octal": true, "hex": true, "scientific": true,
	"ordinal": true, "fraction": true, "iso8601": true, "rfc9557": true,
	"rfc2822": true, "unix": true, "unixms": true,
}

// parseConversionTarget parses what follows to/in/→: a presentation
// keyword, a unit expression (possibly a derived unit like km/h), a
// whitespace-separated composite unit list (ft in), or a bare identifier
// naming a timezone.
func (p *parser) parseConversionTarget() (ast.ConversionTarget, error) {
	if p.checkKeyword("base") {
		p.advance()
		numTok, err := p.expect(lexer.NUMBER, "expected a base number after 'base'")
		if err != nil {
			return nil, err
		}
		if _, convErr := parseNumberToken(numTok); convErr != nil {
			return nil, &Error{Message: "invalid base literal '" + numTok.Lexeme + "'", Line: numTok.Line, Column: numTok.Column}
		}
		return ast.PresentationTarget{Keyword: "base", Arg: &ast.NumberLiteral{Value: numTok.Lexeme, Range: p.rangeFrom(numTok)}}, nil
	}

	if p.check(lexer.KEYWORD) && presentationKeywords[p.peek().Lexeme] {
		kw := p.advance()
		return ast.PresentationTarget{Keyword: kw.Lexeme}, nil
	}

	if p.check(lexer.UNIT) {
		return p.parseUnitOrCompositeTarget()
	}

	if p.check(lexer.IDENTIFIER) {
		name := p.advance()
		return ast.TimezoneTarget{Name: name.Lexeme}, nil
	}

	return nil, p.errorHere("expected a conversion target")
}

func (p *parser) parseUnitOrCompositeTarget() (ast.ConversionTarget, error) {
	first := p.advance()

	if p.check(lexer.STAR) || p.check(lexer.SLASH) {
		left := ast.Node(&ast.Identifier{Name: first.Lexeme, Range: p.rangeFrom(first)})
		for p.check(lexer.STAR) || p.check(lexer.SLASH) {
			op := p.advance()
			rightTok, err := p.expect(lexer.UNIT, "expected a unit after '"+op.Lexeme+"'")
			if err != nil {
				return nil, err
			}
			right := &ast.Identifier{Name: rightTok.Lexeme, Range: p.rangeFrom(rightTok)}
			left = &ast.BinaryOp{Operator: op.Lexeme, Left: left, Right: right, Range: p.rangeFrom(op)}
		}
		return ast.UnitTarget{Expr: left}, nil
	}

	if p.check(lexer.UNIT) {
		units := []string{first.Lexeme}
		for p.check(lexer.UNIT) {
			units = append(units, p.advance().Lexeme)
		}
		return ast.CompositeTarget{Units: units}, nil
	}

	return ast.UnitTarget{Expr: &ast.Identifier{Name: first.Lexeme, Range: p.rangeFrom(first)}}, nil
}
