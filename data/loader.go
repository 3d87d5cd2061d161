package data

import (
	"fmt"
	"strings"

	"github.com/paperlang/paper/lexer"
	"github.com/paperlang/paper/units"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/paperlang/paper/evaluator"
)

// monthOrWeekdayWords backs IsMonthOrWeekday. It's a small fixed list
// rather than a dataset entry: month/weekday names don't vary per
// installation the way units/currencies/timezones do, and parser already
// hardcodes the same words for its own local date/time literal dispatch.
var monthOrWeekdayWords = map[string]bool{
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true, "jul": true,
	"aug": true, "sep": true, "sept": true, "oct": true, "nov": true, "dec": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"mon": true, "tue": true, "wed": true, "thu": true, "fri": true, "sat": true, "sun": true,
}

// Loader parses the embedded unit/currency/timezone datasets once and
// exposes every lookup surface the engine's lexing, classification,
// evaluation, and conversion stages need. It implements
// classifier.Resolver and evaluator.TimezoneResolver directly, so a
// *Loader can be passed wherever either is expected.
type Loader struct {
	registry   *units.Registry
	currencies *currencyIndex
	timezones  *timezoneIndex
	symbols    lexer.SymbolTables

	userLocale string

	issues []string
}

// NewLoader parses the embedded datasets and builds every index. It
// returns an error only for a malformed dataset (bad YAML, a unit whose
// conversion cannot be built); ISO-code and cross-check mismatches are
// non-fatal and surfaced through DatasetIssues instead.
func NewLoader() (*Loader, error) {
	var unitsDoc UnitsDocument
	if err := yaml.Unmarshal(unitsYAML, &unitsDoc); err != nil {
		return nil, fmt.Errorf("data: parsing units.yaml: %w", err)
	}
	var currenciesDoc CurrenciesDocument
	if err := yaml.Unmarshal(currenciesYAML, &currenciesDoc); err != nil {
		return nil, fmt.Errorf("data: parsing currencies.yaml: %w", err)
	}
	var timezonesDoc TimezonesDocument
	if err := yaml.Unmarshal(timezonesYAML, &timezonesDoc); err != nil {
		return nil, fmt.Errorf("data: parsing timezones.yaml: %w", err)
	}

	registry, err := buildRegistry(unitsDoc)
	if err != nil {
		return nil, err
	}

	currencyIdx := buildCurrencyIndex(currenciesDoc)
	timezoneIdx := buildTimezoneIndex(timezonesDoc)

	l := &Loader{
		registry:   registry,
		currencies: currencyIdx,
		timezones:  timezoneIdx,
		symbols:    *currencyIdx.symbolTables(),
		userLocale: "en-US",
	}

	l.issues = append(l.issues, validateISOCodes(currenciesDoc)...)
	l.issues = append(l.issues, CrossCheckIssues()...)

	return l, nil
}

// Registry returns the built unit registry.
func (l *Loader) Registry() *units.Registry { return l.registry }

// SymbolTables returns the adjacent-currency-symbol tables the lexer
// needs at construction time.
func (l *Loader) SymbolTables() *lexer.SymbolTables { return &l.symbols }

// DatasetIssues reports every non-fatal data-quality issue found while
// loading: unrecognized ISO codes and unit-factor cross-check mismatches.
func (l *Loader) DatasetIssues() []string { return l.issues }

// SetUserLocale configures the BCP-47 locale used to break ties between
// same-named timezones in different territories.
func (l *Loader) SetUserLocale(locale string) { l.userLocale = locale }

// IsConstantName delegates to evaluator's reserved-constant list: the
// classifier and the evaluator must agree on exactly which names are
// unassignable constants, so there is only one list.
func (l *Loader) IsConstantName(name string) bool {
	return evaluator.IsConstantName(name)
}

// IsExactUnitName reports whether name matches a unit spelling exactly.
func (l *Loader) IsExactUnitName(name string) bool {
	return l.registry.IsExactUnitName(name)
}

// IsCaseInsensitiveUnitName reports whether name matches a unit spelling
// case-insensitively.
func (l *Loader) IsCaseInsensitiveUnitName(name string) bool {
	return l.registry.IsCaseInsensitiveUnitName(name)
}

// IsMonthOrWeekday reports whether name is a month or weekday word.
func (l *Loader) IsMonthOrWeekday(name string) bool {
	return monthOrWeekdayWords[strings.ToLower(name)]
}

// SpacedCurrencySymbol reports whether name is a currency symbol that
// requires a space before the amount (classifier rule 8), returning the
// ISO code (unambiguous symbols) or a "currency_symbol_XXXX" dimension
// id (ambiguous symbols) to carry forward until a concrete currency is
// chosen.
func (l *Loader) SpacedCurrencySymbol(name string) (string, bool) {
	return l.currencies.spacedSymbol(name)
}

// IsCurrencyCode reports whether name is a recognized ISO 4217 code.
func (l *Loader) IsCurrencyCode(name string) bool {
	return l.currencies.isCode(name)
}

// IsCurrencyName reports whether name is a recognized currency name
// (English name of a settled currency, or an ambiguous group name like
// "dollar").
func (l *Loader) IsCurrencyName(name string) bool {
	return l.currencies.isName(name)
}

// IsTimezoneName reports whether name is a recognized timezone spelling.
func (l *Loader) IsTimezoneName(name string) bool {
	return l.timezones.has(name)
}

// OffsetMinutes implements evaluator.TimezoneResolver, resolving name to
// a UTC offset using the configured user locale to break territory ties.
func (l *Loader) OffsetMinutes(name string) (int, bool) {
	return l.timezones.resolve(name, l.userLocale)
}

// MinorUnits reports how many decimal places a currency code displays
// (e.g. 2 for USD, 0 for JPY), used by currency.RoundForDisplay.
func (l *Loader) MinorUnits(code string) int {
	return l.currencies.minorUnits(code)
}

func buildRegistry(doc UnitsDocument) (*units.Registry, error) {
	reg := units.NewRegistry()
	for _, d := range doc.Dimensions {
		reg.AddDimension(&units.Dimension{ID: d.ID, Name: d.Name, BaseUnitID: d.BaseUnit})
	}
	for _, u := range doc.Units {
		conv, err := buildConversion(u.Conversion)
		if err != nil {
			return nil, fmt.Errorf("data: unit %q: %w", u.ID, err)
		}
		reg.AddUnit(&units.Unit{
			ID:          u.ID,
			Names:       u.Names,
			DimensionID: u.Dimension,
			Conversion:  conv,
		})
	}
	return reg, nil
}

func buildConversion(spec ConversionSpec) (units.Conversion, error) {
	switch spec.Type {
	case "linear":
		factor, err := parseDecimal(spec.Factor)
		if err != nil {
			return units.Conversion{}, fmt.Errorf("linear factor: %w", err)
		}
		return units.LinearConversion(factor), nil
	case "affine":
		factor, err := parseDecimal(spec.Factor)
		if err != nil {
			return units.Conversion{}, fmt.Errorf("affine factor: %w", err)
		}
		offset, err := parseDecimal(spec.Offset)
		if err != nil {
			return units.Conversion{}, fmt.Errorf("affine offset: %w", err)
		}
		return units.AffineConversion(factor, offset), nil
	case "variant":
		variants := make(map[string]units.Conversion, len(spec.Variants))
		for name, row := range spec.Variants {
			conv, err := buildConversion(row)
			if err != nil {
				return units.Conversion{}, fmt.Errorf("variant %q: %w", name, err)
			}
			variants[name] = conv
		}
		return units.VariantConversion(variants), nil
	default:
		return units.Conversion{}, fmt.Errorf("unknown conversion type %q", spec.Type)
	}
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
