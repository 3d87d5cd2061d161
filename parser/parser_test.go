package parser

import (
	"testing"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/lexer"
)

func tokensFor(t *testing.T, src string) []lexer.Token {
	t.Helper()
	lx := lexer.New(src, nil)
	toks := lx.Tokenize()
	var out []lexer.Token
	for _, tok := range toks {
		if tok.Kind == lexer.NEWLINE || tok.Kind == lexer.EOF {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func TestParseSimpleAddition(t *testing.T) {
	node, err := ParseLine(tokensFor(t, "5 + 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bin, ok := node.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected *ast.BinaryOp, got %T", node)
	}
	if bin.Operator != "+" {
		t.Errorf("expected '+', got %q", bin.Operator)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	node, err := ParseLine(tokensFor(t, "2 + 3 * 4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bin, ok := node.(*ast.BinaryOp)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected top-level '+', got %#v", node)
	}
	right, ok := bin.Right.(*ast.BinaryOp)
	if !ok || right.Operator != "*" {
		t.Fatalf("expected '*' on the right, got %#v", bin.Right)
	}
}

func TestParseExponentRightAssociative(t *testing.T) {
	node, err := ParseLine(tokensFor(t, "2 ^ 3 ^ 2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, ok := node.(*ast.BinaryOp)
	if !ok || top.Operator != "^" {
		t.Fatalf("expected top-level '^', got %#v", node)
	}
	if _, ok := top.Right.(*ast.BinaryOp); !ok {
		t.Fatalf("expected right-associative nesting on the right operand")
	}
	if _, ok := top.Left.(*ast.NumberLiteral); !ok {
		t.Fatalf("expected a bare literal on the left operand")
	}
}

func TestParseUnaryMinusBindsLooserThanExponent(t *testing.T) {
	// -2^2 should parse as -(2^2), matching ordinary math convention.
	node, err := ParseLine(tokensFor(t, "-2 ^ 2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unary, ok := node.(*ast.UnaryOp)
	if !ok || unary.Operator != "-" {
		t.Fatalf("expected top-level unary '-', got %#v", node)
	}
	if _, ok := unary.Operand.(*ast.BinaryOp); !ok {
		t.Fatalf("expected the exponent to be the unary operand, got %#v", unary.Operand)
	}
}

func TestParseUnitSuffix(t *testing.T) {
	// The bare lexer never emits UNIT tokens (that's the classifier's job),
	// so a unit suffix is exercised here with a hand-built token slice.
	toks := []lexer.Token{
		{Kind: lexer.NUMBER, Lexeme: "5", Line: 1, Column: 1},
		{Kind: lexer.UNIT, Lexeme: "m", Line: 1, Column: 3},
	}
	node, err := ParseLine(toks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	suffix, ok := node.(*ast.UnitSuffix)
	if !ok {
		t.Fatalf("expected *ast.UnitSuffix, got %T", node)
	}
	if suffix.Unit != "m" {
		t.Errorf("expected unit 'm', got %q", suffix.Unit)
	}
}

func TestParseUnclassifiedIdentifierLeavesTrailingInput(t *testing.T) {
	// Without the classifier pass, a bare word after a number is neither
	// combined nor consumed, so it should surface as a syntax error rather
	// than being silently dropped.
	_, err := ParseLine(tokensFor(t, "5 meters"))
	if err == nil {
		t.Fatalf("expected a trailing-input error")
	}
}

func TestParseGrouping(t *testing.T) {
	node, err := ParseLine(tokensFor(t, "(1 + 2) * 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bin, ok := node.(*ast.BinaryOp)
	if !ok || bin.Operator != "*" {
		t.Fatalf("expected top-level '*', got %#v", node)
	}
	if _, ok := bin.Left.(*ast.Grouping); !ok {
		t.Fatalf("expected a Grouping on the left, got %#v", bin.Left)
	}
}

func TestParseFunctionCall(t *testing.T) {
	node, err := ParseLine(tokensFor(t, "round(6.28, 0.1)"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call, ok := node.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call, got %T", node)
	}
	if call.Name != "round" || len(call.Args) != 2 {
		t.Fatalf("expected round(2 args), got %s(%d args)", call.Name, len(call.Args))
	}
}

func TestParseConditional(t *testing.T) {
	node, err := ParseLine(tokensFor(t, "if 5 > 3 then 1 else 0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cond, ok := node.(*ast.Conditional)
	if !ok {
		t.Fatalf("expected *ast.Conditional, got %T", node)
	}
	if _, ok := cond.Condition.(*ast.BinaryOp); !ok {
		t.Fatalf("expected a comparison condition, got %#v", cond.Condition)
	}
}

func TestParseAssignment(t *testing.T) {
	node, err := ParseLine(tokensFor(t, "x = 5 + 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assign, ok := node.(*ast.Assignment)
	if !ok {
		t.Fatalf("expected *ast.Assignment, got %T", node)
	}
	if assign.Name != "x" {
		t.Errorf("expected name 'x', got %q", assign.Name)
	}
}

func TestParseAssignmentToConstantRejected(t *testing.T) {
	_, err := ParseLine(tokensFor(t, "pi = 3"))
	if err == nil {
		t.Fatalf("expected an error assigning to 'pi'")
	}
}

func TestParseFactorial(t *testing.T) {
	node, err := ParseLine(tokensFor(t, "5!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := node.(*ast.Factorial); !ok {
		t.Fatalf("expected *ast.Factorial, got %T", node)
	}
}

func TestParseLogicalAndOr(t *testing.T) {
	node, err := ParseLine(tokensFor(t, "true && false || true"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, ok := node.(*ast.LogicalOp)
	if !ok || top.Operator != "||" {
		t.Fatalf("expected top-level '||', got %#v", node)
	}
}

func TestParseConversionToUnit(t *testing.T) {
	// The bare lexer leaves "km" an IDENTIFIER (a timezone target), so the
	// last token is retagged as the UNIT the classifier would produce.
	toks := tokensFor(t, "5 + 3 to km")
	toks[len(toks)-1].Kind = lexer.UNIT
	node, err := ParseLine(toks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conv, ok := node.(*ast.Conversion)
	if !ok {
		t.Fatalf("expected *ast.Conversion, got %T", node)
	}
	if _, ok := conv.Target.(ast.UnitTarget); !ok {
		t.Fatalf("expected a UnitTarget, got %#v", conv.Target)
	}
	if _, ok := conv.Expr.(*ast.BinaryOp); !ok {
		t.Fatalf("expected the whole sum converted, got %#v", conv.Expr)
	}
}

func TestParseConversionPresentation(t *testing.T) {
	node, err := ParseLine(tokensFor(t, "255 to binary"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conv, ok := node.(*ast.Conversion)
	if !ok {
		t.Fatalf("expected *ast.Conversion, got %T", node)
	}
	pt, ok := conv.Target.(ast.PresentationTarget)
	if !ok || pt.Keyword != "binary" {
		t.Fatalf("expected PresentationTarget(binary), got %#v", conv.Target)
	}
}

func TestParseSyntaxErrorUnexpectedToken(t *testing.T) {
	_, err := ParseLine(tokensFor(t, "+ + +"))
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
}

func TestParseDocumentRecoversFromLineError(t *testing.T) {
	// The trailing "\n" yields a fourth, empty line, matching
	// strings.Split(text, "\n").
	doc, errs := ParseDocument("1 + 1\n* * *\n2 + 2\n", nil, nil)
	if len(doc.Lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(doc.Lines))
	}
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 recorded error, got %d: %v", len(errs), errs)
	}
	if doc.Lines[1].Kind != ast.LinePlainText {
		t.Fatalf("expected the bad line to degrade to LinePlainText, got %v", doc.Lines[1].Kind)
	}
	if doc.Lines[0].Kind != ast.LineExpression || doc.Lines[2].Kind != ast.LineExpression {
		t.Fatalf("expected the surrounding lines to still parse as expressions")
	}
}

func TestParseDocumentHeading(t *testing.T) {
	doc, errs := ParseDocument("# Totals\n1 + 1\n", nil, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if doc.Lines[0].Kind != ast.LineHeading || doc.Lines[0].Text != "Totals" {
		t.Fatalf("expected a heading line with text 'Totals', got %#v", doc.Lines[0])
	}
}

func TestParseDocumentBlankLine(t *testing.T) {
	doc, errs := ParseDocument("1 + 1\n\n2 + 2\n", nil, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if doc.Lines[1].Kind != ast.LineEmpty {
		t.Fatalf("expected an empty middle line, got %v", doc.Lines[1].Kind)
	}
}

func TestParseVariableDefinitionLine(t *testing.T) {
	doc, errs := ParseDocument("x = 5 + 3\n", nil, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	line := doc.Lines[0]
	if line.Kind != ast.LineVariableDefinition || line.VariableName != "x" {
		t.Fatalf("expected a variable definition for 'x', got %#v", line)
	}
}

func TestParseNestingDepthLimit(t *testing.T) {
	src := ""
	for i := 0; i < maxNestingDepth+10; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < maxNestingDepth+10; i++ {
		src += ")"
	}
	_, err := ParseLine(tokensFor(t, src))
	if err == nil {
		t.Fatalf("expected a nesting depth error")
	}
}
