package data

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewLoaderSucceeds(t *testing.T) {
	l, err := NewLoader()
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	if len(l.DatasetIssues()) != 0 {
		t.Errorf("DatasetIssues() = %v, want none for the seed dataset", l.DatasetIssues())
	}
}

func TestCrossCheckIssuesEmpty(t *testing.T) {
	if issues := CrossCheckIssues(); len(issues) != 0 {
		t.Errorf("CrossCheckIssues() = %v, want none", issues)
	}
}

func TestUnitResolution(t *testing.T) {
	l, err := NewLoader()
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}

	cases := []struct {
		name string
		want string
	}{
		{"km", "length_kilometer"},
		{"mile", "length_mile"},
		{"kg", "mass_kilogram"},
		{"Celsius", "temperature_celsius"},
		{"deg", "angle_degree"},
	}
	for _, c := range cases {
		u, ok := l.Registry().Resolve(c.name)
		if !ok {
			t.Errorf("Resolve(%q): not found", c.name)
			continue
		}
		if u.ID != c.want {
			t.Errorf("Resolve(%q).ID = %q, want %q", c.name, u.ID, c.want)
		}
	}

	if !l.IsExactUnitName("km") {
		t.Error("IsExactUnitName(\"km\") = false, want true")
	}
	if !l.IsCaseInsensitiveUnitName("KM") {
		t.Error("IsCaseInsensitiveUnitName(\"KM\") = false, want true")
	}
}

func TestCurrencyLookups(t *testing.T) {
	l, err := NewLoader()
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}

	if !l.IsCurrencyCode("usd") {
		t.Error("IsCurrencyCode(\"usd\") = false, want true")
	}
	if !l.IsCurrencyName("euro") {
		t.Error("IsCurrencyName(\"euro\") = false, want true")
	}
	if code, ok := l.SpacedCurrencySymbol("Kč"); !ok || code != "CZK" {
		t.Errorf("SpacedCurrencySymbol(\"Kč\") = (%q, %v), want (\"CZK\", true)", code, ok)
	}
	if _, ok := l.SpacedCurrencySymbol("nope"); ok {
		t.Error("SpacedCurrencySymbol(\"nope\") = true, want false")
	}

	tables := l.SymbolTables()
	if tables.Unambiguous["US$"] != "USD" {
		t.Errorf("SymbolTables().Unambiguous[\"US$\"] = %q, want \"USD\"", tables.Unambiguous["US$"])
	}
	if tables.Ambiguous["$"] != "currency_symbol_0024" {
		t.Errorf("SymbolTables().Ambiguous[\"$\"] = %q, want \"currency_symbol_0024\"", tables.Ambiguous["$"])
	}

	if l.MinorUnits("JPY") != 0 {
		t.Errorf("MinorUnits(\"JPY\") = %d, want 0", l.MinorUnits("JPY"))
	}
	if l.MinorUnits("USD") != 2 {
		t.Errorf("MinorUnits(\"USD\") = %d, want 2", l.MinorUnits("USD"))
	}
}

func TestTimezoneTerritoryPriority(t *testing.T) {
	l, err := NewLoader()
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	if !l.IsTimezoneName("georgia") {
		t.Fatal("IsTimezoneName(\"georgia\") = false, want true")
	}

	l.SetUserLocale("en-US")
	offset, ok := l.OffsetMinutes("georgia")
	if !ok || offset != -300 {
		t.Errorf("OffsetMinutes(\"georgia\") under en-US = (%d, %v), want (-300, true)", offset, ok)
	}

	l.SetUserLocale("ka-GE")
	offset, ok = l.OffsetMinutes("georgia")
	if !ok || offset != 240 {
		t.Errorf("OffsetMinutes(\"georgia\") under ka-GE = (%d, %v), want (240, true)", offset, ok)
	}

	l.SetUserLocale("fr-FR")
	offset, ok = l.OffsetMinutes("georgia")
	if !ok || offset != -300 {
		t.Errorf("OffsetMinutes(\"georgia\") under fr-FR (no match) = (%d, %v), want first-declared (-300, true)", offset, ok)
	}
}

func TestIsConstantNameDelegatesToEvaluator(t *testing.T) {
	l, err := NewLoader()
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	if !l.IsConstantName("pi") {
		t.Error("IsConstantName(\"pi\") = false, want true")
	}
	if l.IsConstantName("not_a_constant") {
		t.Error("IsConstantName(\"not_a_constant\") = true, want false")
	}
}

func TestParseExchangeRates(t *testing.T) {
	raw := []byte(`
date: "2026-07-30"
usd:
  eur: 0.85
  gbp: 0.73
`)
	rates, err := ParseExchangeRates(raw)
	if err != nil {
		t.Fatalf("ParseExchangeRates: %v", err)
	}
	if rates.Base != "USD" {
		t.Errorf("Base = %q, want USD", rates.Base)
	}
	if rates.Date != "2026-07-30" {
		t.Errorf("Date = %q, want 2026-07-30", rates.Date)
	}
	eur, ok := rates.Rates["eur"]
	if !ok || !eur.Equal(decimal.NewFromFloat(0.85)) {
		t.Errorf("Rates[\"eur\"] = %v, ok=%v, want 0.85", eur, ok)
	}
}
