// Package types defines the runtime Value the evaluator produces for every
// expression: a closed tagged-variant interface over the notepad's value
// shapes (Number, Composite, Boolean, the six temporal shapes, Currency,
// and Error).
package types

import (
	"fmt"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/temporal"
	"github.com/paperlang/paper/units"
	"github.com/shopspring/decimal"
)

// Value is the interface every runtime value implements. It is
// intentionally small: String() for display fallback and TypeName() for
// error messages. Exhaustive behavior lives in evaluator dispatch tables
// keyed by concrete type, not on this interface.
type Value interface {
	String() string
	TypeName() string
}

// Number is a magnitude with an optional derived unit. Derived.IsDimensionless()
// true means a plain, unit-less number.
type Number struct {
	Magnitude decimal.Decimal
	Derived   units.DerivedUnit
	// IsPercent marks a literal written with a trailing "%" (e.g. "20%").
	// It does not rescale Magnitude: a binary + or - against a percentage
	// right-hand side applies the base +/- base*pct/100 rule; everywhere
	// else a percentage behaves as a plain number.
	IsPercent bool
}

func NewPlainNumber(d decimal.Decimal) *Number { return &Number{Magnitude: d} }

func NewUnitNumber(d decimal.Decimal, u *units.Unit) *Number {
	return &Number{Magnitude: d, Derived: units.Single(u)}
}

func (n *Number) TypeName() string { return "Number" }

func (n *Number) String() string {
	s := trimTrailingZeros(n.Magnitude)
	if n.IsPercent {
		return s + "%"
	}
	if n.Derived.IsDimensionless() {
		return s
	}
	return s + " " + n.Derived.String()
}

func trimTrailingZeros(d decimal.Decimal) string {
	s := d.String()
	if !containsDot(s) {
		return s
	}
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

func containsDot(s string) bool {
	for _, r := range s {
		if r == '.' {
			return true
		}
	}
	return false
}

// Composite is a multi-term presentation value like "5 ft 3 in" that
// collapses to a single base-unit magnitude for arithmetic (see
// BaseMagnitude) and is only re-split into components for display.
type Composite struct {
	Components []units.CompositeComponent
}

func (c *Composite) TypeName() string { return "Composite" }

func (c *Composite) String() string {
	out := ""
	for i, comp := range c.Components {
		if i > 0 {
			out += " "
		}
		out += trimTrailingZeros(comp.Magnitude) + " " + comp.Unit.Symbol()
	}
	return out
}

// BaseMagnitude collapses a Composite to the base-unit value of its
// dimension, using variant for affine/variant unit resolution.
func (c *Composite) BaseMagnitude(variant string) decimal.Decimal {
	total := decimal.Zero
	for _, comp := range c.Components {
		total = total.Add(units.ToBase(comp.Unit, comp.Magnitude, variant))
	}
	return total
}

// LargestUnit returns the unit of the composite's first (largest) term,
// used as the "unit of largest component" for collapsed arithmetic.
func (c *Composite) LargestUnit() *units.Unit {
	if len(c.Components) == 0 {
		return nil
	}
	return c.Components[0].Unit
}

// Boolean is true/false.
type Boolean struct{ B bool }

func (b *Boolean) TypeName() string { return "Boolean" }
func (b *Boolean) String() string {
	if b.B {
		return "true"
	}
	return "false"
}

// PlainDateValue wraps temporal.PlainDate.
type PlainDateValue struct{ Date temporal.PlainDate }

func (v *PlainDateValue) TypeName() string { return "Date" }
func (v *PlainDateValue) String() string   { return v.Date.String() }

// PlainTimeValue wraps temporal.PlainTime.
type PlainTimeValue struct{ Time temporal.PlainTime }

func (v *PlainTimeValue) TypeName() string { return "Time" }
func (v *PlainTimeValue) String() string   { return v.Time.String() }

// PlainDateTimeValue wraps temporal.PlainDateTime.
type PlainDateTimeValue struct{ DateTime temporal.PlainDateTime }

func (v *PlainDateTimeValue) TypeName() string { return "DateTime" }
func (v *PlainDateTimeValue) String() string   { return v.DateTime.String() }

// InstantValue wraps temporal.Instant.
type InstantValue struct{ Instant temporal.Instant }

func (v *InstantValue) TypeName() string { return "Instant" }
func (v *InstantValue) String() string   { return v.Instant.String() }

// ZonedDateTimeValue wraps temporal.ZonedDateTime.
type ZonedDateTimeValue struct{ Zoned temporal.ZonedDateTime }

func (v *ZonedDateTimeValue) TypeName() string { return "ZonedDateTime" }
func (v *ZonedDateTimeValue) String() string   { return v.Zoned.String() }

// DurationValue wraps temporal.Duration.
type DurationValue struct{ Duration temporal.Duration }

func (v *DurationValue) TypeName() string { return "Duration" }
func (v *DurationValue) String() string {
	d := v.Duration
	s := ""
	add := func(n int64, unit string) {
		if n != 0 {
			if s != "" {
				s += " "
			}
			s += fmt.Sprintf("%d%s", n, unit)
		}
	}
	add(d.Years, "y")
	add(d.Months, "mo")
	add(d.Weeks, "w")
	add(d.Days, "d")
	add(d.Hours, "h")
	add(d.Minutes, "min")
	add(d.Seconds, "s")
	add(d.Millis, "ms")
	if s == "" {
		return "0s"
	}
	return s
}

// Currency is a decimal amount tagged with an ISO currency code (or, while
// still ambiguous, the symbol the user typed).
type Currency struct {
	Amount decimal.Decimal
	Code   string
	// Symbol, when set, is the literal ambiguous symbol to redisplay
	// instead of the ISO code ("$100" stays "$100").
	Symbol string
}

func (c *Currency) TypeName() string { return "Currency" }
func (c *Currency) String() string {
	if c.Symbol != "" {
		return c.Symbol + trimTrailingZeros(c.Amount.Round(2))
	}
	return trimTrailingZeros(c.Amount.Round(2)) + " " + c.Code
}

// ErrorKind classifies a runtime error's subkind.
type ErrorKind string

const (
	UndefinedVariable   ErrorKind = "UndefinedVariable"
	DimensionMismatch   ErrorKind = "DimensionMismatch"
	DomainError         ErrorKind = "DomainError"
	DivisionByZero      ErrorKind = "DivisionByZero"
	InvalidConversion   ErrorKind = "InvalidConversion"
	CurrencyUnavailable ErrorKind = "CurrencyUnavailable"
	Overflow            ErrorKind = "Overflow"
)

// ErrorValue is the Value produced when evaluating a (sub)expression
// fails; it propagates to the enclosing line's result without aborting the
// rest of the document.
type ErrorValue struct {
	Kind    ErrorKind
	Message string
	Span    *ast.Range
}

func (e *ErrorValue) TypeName() string { return "Error" }
func (e *ErrorValue) String() string   { return e.Message }
func (e *ErrorValue) Error() string    { return e.Message }
