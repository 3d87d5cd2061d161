// Package paper orchestrates the lexer, parser, classifier, evaluator,
// and formatter packages into a single entry point: parse a notepad
// document, evaluate it line by line, and hand back a result (or
// isolated error) per line, never aborting the whole document for one
// bad line.
package paper

import (
	"strings"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/classifier"
	"github.com/paperlang/paper/currency"
	"github.com/paperlang/paper/data"
	"github.com/paperlang/paper/evaluator"
	"github.com/paperlang/paper/format"
	"github.com/paperlang/paper/lexer"
	"github.com/paperlang/paper/parser"
	"github.com/paperlang/paper/types"
)

// Calculator binds one *data.Loader's datasets and one Settings value to
// the parse/evaluate/format pipeline. It's stateless across Calculate
// calls (every call gets a fresh Scope); Session adds persistence on top.
type Calculator struct {
	loader   *data.Loader
	settings Settings
	rates    *currency.Rates
}

// NewCalculator builds a Calculator from a loaded dataset and settings.
// loader is a *data.Loader rather than the schematic data.Loader value
// type: every Resolver/TimezoneResolver method data.Loader implements has
// a pointer receiver, so only *data.Loader satisfies classifier.Resolver
// and evaluator.TimezoneResolver.
func NewCalculator(loader *data.Loader, settings Settings) *Calculator {
	loader.SetUserLocale(settings.UserLocale)
	return &Calculator{loader: loader, settings: settings}
}

// LoadExchangeRates installs a currency-conversion snapshot. Until called,
// any `to <currency>` conversion fails with CurrencyUnavailable.
func (c *Calculator) LoadExchangeRates(rates data.ExchangeRates) error {
	if rates.Base == "" {
		return &currency.Error{Message: "exchange rate snapshot has no base currency"}
	}
	c.rates = &currency.Rates{Base: rates.Base, Table: rates.Rates}
	return nil
}

// Parse runs the lexer/classifier/parser stages only, without evaluating
// anything. Used by tooling that only needs the AST (e.g. syntax
// checking, editor integrations).
func (c *Calculator) Parse(text string) (*ast.Document, []error) {
	doc, perrs := parser.ParseDocument(text, c.loader.SymbolTables(), c.loader)
	errs := make([]error, len(perrs))
	for i, e := range perrs {
		errs[i] = e
	}
	return doc, errs
}

// Output is one Calculate() run's full result set.
type Output struct {
	Results []LineResult
	Errors  ErrorBuckets
}

// LineResult is one source line's outcome. ID mirrors the parsed
// ast.Line's own uuid-generated identity so a caller can correlate a
// result back to the line that produced it across re-parses.
type LineResult struct {
	ID           string
	Kind         string
	HeadingLevel int
	Source       string
	Result       string
	Err          string
}

// RenderDoc converts an Output into the formatter-facing view, so any
// registered format package formatter can render the whole document.
func (o Output) RenderDoc() *format.RenderDoc {
	lines := make([]format.RenderLine, len(o.Results))
	for i, r := range o.Results {
		lines[i] = format.RenderLine{
			Kind:         r.Kind,
			HeadingLevel: r.HeadingLevel,
			Source:       r.Source,
			Result:       r.Result,
			Err:          r.Err,
		}
	}
	return &format.RenderDoc{Lines: lines}
}

// Calculate parses and evaluates text in a fresh, unshared Scope: a
// stateless entry point. Use a Session for variables that persist
// across calls.
func (c *Calculator) Calculate(text string) Output {
	_, out := c.evalDocument(text, evaluator.NewScope())
	return out
}

// Render is a convenience that calculates text and renders it through a
// registered format.Formatter in one step.
func (c *Calculator) Render(text, formatName string, opts format.Options) (string, error) {
	out := c.Calculate(text)
	var buf strings.Builder
	if err := format.GetFormatter(formatName, "").Format(&buf, out.RenderDoc(), opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DatasetIssues surfaces any non-fatal problems found while loading the
// installed datasets (bad ISO codes, cross-check mismatches).
func (c *Calculator) DatasetIssues() []string {
	return c.loader.DatasetIssues()
}

func (c *Calculator) evalSettings() evaluator.Settings {
	return evaluator.Settings{
		AngleUnit:       c.settings.angleUnit(),
		ImperialVariant: c.settings.ImperialUnits,
		Rates:           c.rates,
	}
}

// evalDocument runs the full pipeline against scope, isolating lexer,
// parser, and runtime diagnostics into their own ErrorBuckets, and is
// shared by Calculate (fresh scope) and Session.Eval (persistent scope).
func (c *Calculator) evalDocument(text string, scope *evaluator.Scope) (*ast.Document, Output) {
	var out Output

	lx := lexer.New(text, c.loader.SymbolTables())
	lx.Tokenize()
	for _, lerr := range lx.Errors {
		out.Errors.Lexer = append(out.Errors.Lexer, Diagnostic{
			Severity: SeverityError,
			Message:  lerr.Message,
		})
	}

	doc, perrs := parser.ParseDocument(text, c.loader.SymbolTables(), c.loader)
	for _, perr := range perrs {
		out.Errors.Parser = append(out.Errors.Parser, Diagnostic{
			Severity: SeverityError,
			Message:  perr.Message,
		})
	}

	ev := evaluator.New(scope, c.loader.Registry(), c.evalSettings())
	ev.Timezones = c.loader

	rawLines := strings.Split(text, "\n")
	out.Results = make([]LineResult, len(doc.Lines))
	for i, line := range doc.Lines {
		source := ""
		if i < len(rawLines) {
			source = rawLines[i]
		}
		lr := LineResult{
			ID:           line.ID,
			Kind:         lineKindName(line.Kind),
			HeadingLevel: line.HeadingLevel,
			Source:       source,
		}

		val := ev.EvalLine(line)
		if errVal, ok := val.(*types.ErrorValue); ok {
			lr.Err = errVal.Message
			out.Errors.Runtime = append(out.Errors.Runtime, Diagnostic{
				Severity: SeverityError,
				Code:     string(errVal.Kind),
				Message:  errVal.Message,
				Span:     errVal.Span,
			})
		} else if val != nil {
			lr.Result = format.RenderValue(val, c.settings.Settings)
		}
		out.Results[i] = lr
	}

	return doc, out
}

func lineKindName(k ast.LineKind) string {
	switch k {
	case ast.LineHeading:
		return "heading"
	case ast.LineComment:
		return "text"
	case ast.LineEmpty:
		return "empty"
	case ast.LineExpression:
		return "expression"
	case ast.LineVariableDefinition:
		return "definition"
	case ast.LinePlainText:
		return "plaintext"
	default:
		return "unknown"
	}
}

var _ classifier.Resolver = (*data.Loader)(nil)
