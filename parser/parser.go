// Package parser turns a classified token stream into per-line ast.Node
// trees via precedence-climbing recursive descent: a flat token slice, a
// cursor, and one method per precedence level.
package parser

import (
	"strconv"
	"strings"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/lexer"
)

// parser holds the cursor state for parsing one line's tokens. A fresh
// parser is created per line so a syntax error on one line can never
// corrupt the cursor for another.
type parser struct {
	tokens  []lexer.Token
	current int
	depth   int
}

func newParser(tokens []lexer.Token) *parser {
	return &parser{tokens: tokens}
}

func (p *parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[p.current]
}

func (p *parser) peekAhead(n int) lexer.Token {
	idx := p.current + n
	if idx >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[idx]
}

func (p *parser) advance() lexer.Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

func (p *parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.peek().Kind == lexer.EOF
}

func (p *parser) check(kind lexer.Kind) bool {
	return !p.isAtEnd() && p.peek().Kind == kind
}

func (p *parser) checkKeyword(word string) bool {
	return p.check(lexer.KEYWORD) && p.peek().Lexeme == word
}

func (p *parser) match(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) matchKeyword(words ...string) bool {
	for _, w := range words {
		if p.checkKeyword(w) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) expect(kind lexer.Kind, message string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorHere(message)
}

func (p *parser) errorHere(message string) error {
	tok := p.peek()
	return &Error{Message: message, Line: tok.Line, Column: tok.Column}
}

func (p *parser) rangeFrom(start lexer.Token) *ast.Range {
	end := p.previous()
	return &ast.Range{
		Start: ast.Position{Line: start.Line, Column: start.Column, Offset: start.Offset},
		End:   ast.Position{Line: end.Line, Column: end.Column, Offset: end.Offset},
	}
}

func (p *parser) previous() lexer.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *parser) enterDepth() error {
	p.depth++
	if p.depth > maxNestingDepth {
		return &depthError{depth: p.depth}
	}
	return nil
}

func (p *parser) exitDepth() { p.depth-- }

// ParseLine parses one line's already-classified tokens (no NEWLINE/EOF)
// into a single ast.Node: either an *ast.Assignment or a bare expression.
func ParseLine(tokens []lexer.Token) (ast.Node, error) {
	p := newParser(tokens)
	node, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.errorHere("unexpected trailing input")
	}
	return node, nil
}

func (p *parser) parseStatement() (ast.Node, error) {
	if p.check(lexer.IDENTIFIER) && p.peekAhead(1).Kind == lexer.ASSIGN {
		name := p.advance()
		if !isAssignableName(name.Lexeme) {
			return nil, &Error{Message: "cannot assign to reserved name '" + name.Lexeme + "'", Line: name.Line, Column: name.Column}
		}
		p.advance() // '='
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Name: name.Lexeme, Value: value, Range: p.rangeFrom(name)}, nil
	}
	return p.parseExpression()
}

func isAssignableName(name string) bool {
	lower := strings.ToLower(name)
	switch lower {
	case "pi", "e", "phi", "golden_ratio":
		return false
	}
	return true
}

// parseNumberToken is a small helper used by target-parsing code that
// needs an integer out of a NUMBER token (e.g. "base 16").
func parseNumberToken(tok lexer.Token) (int, error) {
	return strconv.Atoi(tok.Lexeme)
}
