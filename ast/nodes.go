package ast

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Node is the interface every expression-tree node implements.
type Node interface {
	String() string
	GetRange() *Range
}

// NumberLiteral is a bare numeric literal. Value is kept as the original
// decimal-ish source text (with base prefix, exponent, underscores already
// stripped of separators) so the evaluator controls precision.
type NumberLiteral struct {
	Value string
	Range *Range
}

func (n *NumberLiteral) String() string   { return fmt.Sprintf("Number(%s)", n.Value) }
func (n *NumberLiteral) GetRange() *Range { return n.Range }

// UnitSuffix attaches a unit name to a numeric operand, e.g. "5 m".
type UnitSuffix struct {
	Operand Node
	Unit    string
	Range   *Range
}

func (u *UnitSuffix) String() string   { return fmt.Sprintf("UnitSuffix(%s %s)", u.Operand, u.Unit) }
func (u *UnitSuffix) GetRange() *Range { return u.Range }

// Composite is a juxtaposed run of unit-bearing terms of the same dimension,
// e.g. "5 ft 3 in".
type Composite struct {
	Components []Node
	Range      *Range
}

func (c *Composite) String() string {
	parts := make([]string, len(c.Components))
	for i, p := range c.Components {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Composite(%s)", strings.Join(parts, " "))
}
func (c *Composite) GetRange() *Range { return c.Range }

// CurrencyLiteral is a number tagged with a currency symbol or ISO code,
// e.g. "$100" or "100 USD".
type CurrencyLiteral struct {
	Operand Node
	Code    string // canonical ISO code, or an ambiguous-symbol dimension id
	Range   *Range
}

func (c *CurrencyLiteral) String() string {
	return fmt.Sprintf("Currency(%s %s)", c.Operand, c.Code)
}
func (c *CurrencyLiteral) GetRange() *Range { return c.Range }

// BooleanLiteral is true/false/yes/no/...
type BooleanLiteral struct {
	Value bool
	Range *Range
}

func (b *BooleanLiteral) String() string   { return fmt.Sprintf("Boolean(%v)", b.Value) }
func (b *BooleanLiteral) GetRange() *Range { return b.Range }

// DateTimeLiteral is a raw time-of-day or calendar-word token the parser
// must still combine (with am/pm, with a preceding date, etc).
type DateTimeLiteral struct {
	Lexeme string
	Kind   string // "time", "month", "weekday", "ampm"
	Range  *Range
}

func (d *DateTimeLiteral) String() string   { return fmt.Sprintf("DateTime(%s)", d.Lexeme) }
func (d *DateTimeLiteral) GetRange() *Range { return d.Range }

// Identifier is a variable reference or named constant.
type Identifier struct {
	Name  string
	Range *Range
}

func (i *Identifier) String() string   { return fmt.Sprintf("Identifier(%q)", i.Name) }
func (i *Identifier) GetRange() *Range { return i.Range }

// Call is a function invocation, e.g. "round(6200 m, 5 km)".
type Call struct {
	Name  string
	Args  []Node
	Range *Range
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("Call(%s, [%s])", c.Name, strings.Join(args, ", "))
}
func (c *Call) GetRange() *Range { return c.Range }

// Grouping is a parenthesized subexpression.
type Grouping struct {
	Expr  Node
	Range *Range
}

func (g *Grouping) String() string   { return fmt.Sprintf("Group(%s)", g.Expr) }
func (g *Grouping) GetRange() *Range { return g.Range }

// UnaryOp is a prefix unary operator: -, +, !, ~.
type UnaryOp struct {
	Operator string
	Operand  Node
	Range    *Range
}

func (u *UnaryOp) String() string   { return fmt.Sprintf("Unary(%q, %s)", u.Operator, u.Operand) }
func (u *UnaryOp) GetRange() *Range { return u.Range }

// Factorial is the postfix "!" operator.
type Factorial struct {
	Operand Node
	Range   *Range
}

func (f *Factorial) String() string   { return fmt.Sprintf("Factorial(%s)", f.Operand) }
func (f *Factorial) GetRange() *Range { return f.Range }

// BinaryOp covers arithmetic, bitwise, and comparison infix operators.
type BinaryOp struct {
	Operator string
	Left     Node
	Right    Node
	Range    *Range
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("Binary(%q, %s, %s)", b.Operator, b.Left, b.Right)
}
func (b *BinaryOp) GetRange() *Range { return b.Range }

// LogicalOp covers short-circuit && and ||.
type LogicalOp struct {
	Operator string
	Left     Node
	Right    Node
	Range    *Range
}

func (l *LogicalOp) String() string {
	return fmt.Sprintf("Logical(%q, %s, %s)", l.Operator, l.Left, l.Right)
}
func (l *LogicalOp) GetRange() *Range { return l.Range }

// ConversionTarget is the tagged variant accepted after to/in/→.
type ConversionTarget interface {
	targetNode()
	String() string
}

// UnitTarget names a single unit or derived-unit expression, e.g. "to km/h".
type UnitTarget struct {
	Expr Node
}

func (UnitTarget) targetNode()     {}
func (u UnitTarget) String() string { return fmt.Sprintf("UnitTarget(%s)", u.Expr) }

// CompositeTarget names a whitespace-separated unit list, e.g. "to ft in".
type CompositeTarget struct {
	Units []string
}

func (CompositeTarget) targetNode() {}
func (c CompositeTarget) String() string {
	return fmt.Sprintf("CompositeTarget(%s)", strings.Join(c.Units, " "))
}

// PresentationTarget names a formatting-only conversion, e.g. "to binary",
// "to base 7", "to ISO 8601".
type PresentationTarget struct {
	Keyword string
	Arg     Node // e.g. the N in "base N"
}

func (PresentationTarget) targetNode() {}
func (p PresentationTarget) String() string {
	if p.Arg != nil {
		return fmt.Sprintf("PresentationTarget(%s %s)", p.Keyword, p.Arg)
	}
	return fmt.Sprintf("PresentationTarget(%s)", p.Keyword)
}

// TimezoneTarget names a timezone conversion, e.g. "to Tokyo".
type TimezoneTarget struct {
	Name string
}

func (TimezoneTarget) targetNode()       {}
func (t TimezoneTarget) String() string { return fmt.Sprintf("TimezoneTarget(%s)", t.Name) }

// Conversion is the `expr to target` operator.
type Conversion struct {
	Expr   Node
	Target ConversionTarget
	Range  *Range
}

func (c *Conversion) String() string { return fmt.Sprintf("Conversion(%s -> %s)", c.Expr, c.Target) }
func (c *Conversion) GetRange() *Range { return c.Range }

// Conditional is `if cond then a else b`.
type Conditional struct {
	Condition Node
	Then      Node
	Else      Node
	Range     *Range
}

func (c *Conditional) String() string {
	return fmt.Sprintf("If(%s, %s, %s)", c.Condition, c.Then, c.Else)
}
func (c *Conditional) GetRange() *Range { return c.Range }

// Assignment is `name = expr`.
type Assignment struct {
	Name  string
	Value Node
	Range *Range
}

func (a *Assignment) String() string   { return fmt.Sprintf("Assignment(%q, %s)", a.Name, a.Value) }
func (a *Assignment) GetRange() *Range { return a.Range }

// --- Document / Line model ---

// LineKind tags which Line variant is populated.
type LineKind int

const (
	LineHeading LineKind = iota
	LineComment
	LineEmpty
	LineExpression
	LineVariableDefinition
	LinePlainText
)

// Line is one logical input line. Exactly one of the *Kind-specific fields
// is meaningful, selected by Kind.
type Line struct {
	ID   string
	Kind LineKind

	HeadingLevel int
	Text         string // heading/comment/plain-text payload

	Expr         Node   // ExpressionLine / VariableDefinition RHS
	VariableName string // VariableDefinition LHS

	Range *Range
}

// NewLine allocates a Line with a fresh identity, used so editor
// integrations can track a line across incremental re-parses.
func NewLine(kind LineKind) *Line {
	return &Line{ID: uuid.NewString(), Kind: kind}
}

// Document is an ordered list of parsed lines.
type Document struct {
	Lines []*Line
}
