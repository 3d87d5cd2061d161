package paper

import (
	"strings"
	"testing"

	"github.com/paperlang/paper/ast"
	"github.com/paperlang/paper/data"
	"github.com/paperlang/paper/format"
	"github.com/shopspring/decimal"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	loader, err := data.NewLoader()
	if err != nil {
		t.Fatalf("data.NewLoader(): %v", err)
	}
	return NewCalculator(loader, DefaultSettings())
}

// nonEmpty filters out LineEmpty results: ParseDocument may or may not
// record a trailing blank line depending on whether text ends with a
// newline, which isn't something callers of Calculate should have to
// account for.
func nonEmpty(results []LineResult) []LineResult {
	var out []LineResult
	for _, r := range results {
		if r.Kind != "empty" {
			out = append(out, r)
		}
	}
	return out
}

func TestCalculateSimpleExpression(t *testing.T) {
	calc := newTestCalculator(t)
	out := calc.Calculate("2 + 2\n")

	if !out.Errors.Empty() {
		t.Fatalf("unexpected errors: %+v", out.Errors)
	}
	results := nonEmpty(out.Results)
	if len(results) != 1 {
		t.Fatalf("got %d non-empty results, want 1", len(results))
	}
	if results[0].Result != "4" {
		t.Errorf("Result = %q, want \"4\"", results[0].Result)
	}
	if results[0].ID == "" {
		t.Error("LineResult.ID is empty")
	}
}

func TestCalculateVariableScopeIsFreshPerCall(t *testing.T) {
	calc := newTestCalculator(t)
	calc.Calculate("x = 10\n")
	out := calc.Calculate("x\n")

	results := nonEmpty(out.Results)
	if len(results) != 1 {
		t.Fatalf("got %d non-empty results, want 1", len(results))
	}
	if results[0].Err == "" {
		t.Error("expected UndefinedVariable error, Calculate should not retain state across calls")
	}
}

func TestCalculateIsolatesLineErrors(t *testing.T) {
	calc := newTestCalculator(t)
	out := calc.Calculate("1 + \n3 + 3\n")

	results := nonEmpty(out.Results)
	if len(results) != 2 {
		t.Fatalf("got %d non-empty results, want 2", len(results))
	}
	if results[1].Result != "6" {
		t.Errorf("second line Result = %q, want \"6\", a bad first line should not break the rest", results[1].Result)
	}
	if out.Errors.Empty() {
		t.Error("expected parser diagnostics for the malformed first line")
	}
}

func TestCalculateCurrencyConversionRequiresRates(t *testing.T) {
	calc := newTestCalculator(t)
	out := calc.Calculate("10 USD to EUR\n")

	results := nonEmpty(out.Results)
	if results[0].Err == "" {
		t.Error("expected CurrencyUnavailable error before LoadExchangeRates is called")
	}

	rates := data.ExchangeRates{
		Base:  "USD",
		Rates: map[string]decimal.Decimal{"eur": decimal.NewFromFloat(0.85)},
	}
	if err := calc.LoadExchangeRates(rates); err != nil {
		t.Fatalf("LoadExchangeRates: %v", err)
	}

	out = calc.Calculate("10 USD to EUR\n")
	results = nonEmpty(out.Results)
	if results[0].Err != "" {
		t.Errorf("unexpected error after installing rates: %q", results[0].Err)
	}
	if results[0].Result != "8.50 EUR" {
		t.Errorf("Result = %q, want \"8.50 EUR\"", results[0].Result)
	}
}

func TestParseReturnsDocumentAndErrors(t *testing.T) {
	calc := newTestCalculator(t)
	doc, errs := calc.Parse("# Heading\n2 + 2\n")

	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(doc.Lines) < 2 {
		t.Fatalf("got %d lines, want at least 2", len(doc.Lines))
	}
	if doc.Lines[0].Kind != ast.LineHeading {
		t.Errorf("first line Kind = %v, want LineHeading", doc.Lines[0].Kind)
	}
}

func TestRenderProducesText(t *testing.T) {
	calc := newTestCalculator(t)
	text, err := calc.Render("2 + 2\n", "text", format.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(text, "4") {
		t.Errorf("rendered text %q does not contain \"4\"", text)
	}
}
