package parser

import (
	"strconv"
	"strings"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/classifier"
	"github.com/paperlang/paper/lexer"
)

// ParseDocument lexes, classifies, and parses an entire source text into a
// Document, one Line per input line. A syntax error on a line never
// aborts the rest of the document: the offending line becomes a
// LinePlainText line carrying its raw source text, and the error is
// appended to the returned slice.
func ParseDocument(text string, symbols *lexer.SymbolTables, resolver classifier.Resolver) (*ast.Document, []*Error) {
	lx := lexer.New(text, symbols)
	tokens := classifier.Classify(lx.Tokenize(), resolver)
	rawLines := strings.Split(text, "\n")

	doc := &ast.Document{}
	var errs []*Error

	lineTokens := splitLines(tokens)
	for i, toks := range lineTokens {
		raw := ""
		if i < len(rawLines) {
			raw = rawLines[i]
		}
		line, err := parseOneLine(toks, raw)
		if err != nil {
			if perr, ok := err.(*Error); ok {
				errs = append(errs, perr)
			} else {
				errs = append(errs, &Error{Message: err.Error()})
			}
			line = ast.NewLine(ast.LinePlainText)
			line.Text = raw
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc, errs
}

// splitLines breaks a flat classified token stream into one slice per
// source line, dropping the NEWLINE/EOF separators themselves. Every
// NEWLINE the lexer emits corresponds 1:1 to an input "\n", so the
// resulting slices line up index-for-index with strings.Split(text, "\n").
func splitLines(tokens []lexer.Token) [][]lexer.Token {
	var lines [][]lexer.Token
	var current []lexer.Token
	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.NEWLINE:
			lines = append(lines, current)
			current = nil
		case lexer.EOF:
			lines = append(lines, current)
			current = nil
		default:
			current = append(current, tok)
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

func parseOneLine(toks []lexer.Token, raw string) (*ast.Line, error) {
	if len(toks) == 0 {
		return ast.NewLine(ast.LineEmpty), nil
	}

	if len(toks) == 1 && toks[0].Kind == lexer.HEADING {
		level, text := splitHeading(toks[0].Lexeme)
		line := ast.NewLine(ast.LineHeading)
		line.HeadingLevel = level
		line.Text = text
		return line, nil
	}

	node, err := ParseLine(toks)
	if err != nil {
		return nil, err
	}

	if assign, ok := node.(*ast.Assignment); ok {
		line := ast.NewLine(ast.LineVariableDefinition)
		line.VariableName = assign.Name
		line.Expr = assign.Value
		line.Range = assign.Range
		return line, nil
	}

	line := ast.NewLine(ast.LineExpression)
	line.Expr = node
	line.Range = node.GetRange()
	return line, nil
}

func splitHeading(lexeme string) (int, string) {
	idx := strings.IndexByte(lexeme, ':')
	if idx < 0 {
		return 1, lexeme
	}
	level, err := strconv.Atoi(lexeme[:idx])
	if err != nil {
		level = 1
	}
	return level, lexeme[idx+1:]
}
