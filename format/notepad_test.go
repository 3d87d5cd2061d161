package format

import (
	"testing"

	"github.com/paperlang/paper/types"
	"github.com/shopspring/decimal"
)

func TestRenderValueGroupsDigits(t *testing.T) {
	settings := DefaultSettings()
	n := types.NewPlainNumber(decimal.NewFromInt(1234567))

	got := RenderValue(n, settings)
	want := "1,234,567"
	if got != want {
		t.Errorf("RenderValue(1234567) = %q, want %q", got, want)
	}
}

func TestRenderValueCustomSeparators(t *testing.T) {
	settings := DefaultSettings()
	settings.DecimalSeparator = ","
	settings.DigitGroupingSeparator = "."
	n := types.NewPlainNumber(decimal.NewFromFloat(1234.5))

	got := RenderValue(n, settings)
	want := "1.234,5"
	if got != want {
		t.Errorf("RenderValue(1234.5) with eu separators = %q, want %q", got, want)
	}
}

func TestRenderValuePercent(t *testing.T) {
	settings := DefaultSettings()
	n := types.NewPlainNumber(decimal.NewFromInt(20))
	n.IsPercent = true

	got := RenderValue(n, settings)
	if got != "20%" {
		t.Errorf("RenderValue(20%%) = %q, want \"20%%\"", got)
	}
}

func TestRenderValueError(t *testing.T) {
	settings := DefaultSettings()
	errVal := &types.ErrorValue{Kind: types.DivisionByZero, Message: "division by zero"}

	got := RenderValue(errVal, settings)
	if got != "Error: division by zero" {
		t.Errorf("RenderValue(error) = %q", got)
	}
}

func TestRenderValueCurrency(t *testing.T) {
	settings := DefaultSettings()
	c := &types.Currency{Amount: decimal.NewFromFloat(1234.5), Code: "USD", Symbol: "$"}

	got := RenderValue(c, settings)
	want := "1,234.50 USD"
	if got != want {
		t.Errorf("RenderValue(currency) = %q, want %q", got, want)
	}
}

func TestValidateLocale(t *testing.T) {
	if _, ok := ValidateLocale("en-US"); !ok {
		t.Error("ValidateLocale(\"en-US\") = false, want true")
	}
	if _, ok := ValidateLocale("not a locale!!"); ok {
		t.Error("ValidateLocale(garbage) = true, want false")
	}
}
