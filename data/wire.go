package data

import "github.com/shopspring/decimal"

// UnitsDocument is the wire shape of units.yaml, the units database:
// `{dimensions:[{id,name,baseUnit}], units:[{id,names,dimension,
// conversion}]}`.
type UnitsDocument struct {
	Dimensions []DimensionSpec `yaml:"dimensions"`
	Units      []UnitSpec      `yaml:"units"`
}

// DimensionSpec is one entry of UnitsDocument.Dimensions.
type DimensionSpec struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	BaseUnit string `yaml:"baseUnit"`
}

// UnitSpec is one entry of UnitsDocument.Units.
type UnitSpec struct {
	ID         string         `yaml:"id"`
	Names      []string       `yaml:"names"`
	Dimension  string         `yaml:"dimension"`
	Conversion ConversionSpec `yaml:"conversion"`
}

// ConversionSpec is the wire shape of a unit's conversion rule: `{type:
// 'linear', factor} | {type: 'affine', factor, offset} | {type: 'variant',
// variants: {name: linear|affine}}`. Factor/Offset are kept as strings so
// they parse straight into decimal.Decimal without a float64 round trip.
type ConversionSpec struct {
	Type     string                    `yaml:"type"`
	Factor   string                    `yaml:"factor,omitempty"`
	Offset   string                    `yaml:"offset,omitempty"`
	Variants map[string]ConversionSpec `yaml:"variants,omitempty"`
}

// CurrenciesDocument is the wire shape of currencies.yaml: `{unambiguous:
// [{code,minorUnits,names,symbolAdjacent,symbolSpaced}], ambiguous:{name,
// symbolAdjacent:[{symbol,dimension}],symbolSpaced:[{symbol,dimension}]}}`.
type CurrenciesDocument struct {
	Unambiguous []UnambiguousCurrency `yaml:"unambiguous"`
	Ambiguous   AmbiguousCurrencies   `yaml:"ambiguous"`
}

// UnambiguousCurrency is one currency with a single settled ISO code.
type UnambiguousCurrency struct {
	Code           string   `yaml:"code"`
	MinorUnits     int      `yaml:"minorUnits"`
	Names          []string `yaml:"names"`
	SymbolAdjacent []string `yaml:"symbolAdjacent,omitempty"`
	SymbolSpaced   []string `yaml:"symbolSpaced,omitempty"`
}

// AmbiguousCurrencies groups the spellings that do not resolve to one code
// on their own: a symbol like "$" shared by USD/CAD/AUD/NZD stays tagged by
// dimension id until the reader picks a currency explicitly.
type AmbiguousCurrencies struct {
	Name           []string          `yaml:"name,omitempty"`
	SymbolAdjacent []AmbiguousSymbol `yaml:"symbolAdjacent,omitempty"`
	SymbolSpaced   []AmbiguousSymbol `yaml:"symbolSpaced,omitempty"`
}

// AmbiguousSymbol pairs a symbol spelling with the dimension id the
// classifier/evaluator use to keep it unresolved until converted.
type AmbiguousSymbol struct {
	Symbol    string `yaml:"symbol"`
	Dimension string `yaml:"dimension"`
}

// TimezonesDocument is the wire shape of timezones.yaml: `{timezones:
// [{iana,offsetMinutes,names:[{name,territory?}]}]}`. OffsetMinutes is a
// fixed standard-time offset rather than a full tzdata lookup: full IANA
// tz offsets (DST transitions included) are out of scope, so this is the
// fixed-table middle ground.
type TimezonesDocument struct {
	Timezones []TimezoneSpec `yaml:"timezones"`
}

// TimezoneSpec is one timezone entry, named one or more ways.
type TimezoneSpec struct {
	IANA          string         `yaml:"iana"`
	OffsetMinutes int            `yaml:"offsetMinutes"`
	Names         []TimezoneName `yaml:"names"`
}

// TimezoneName is one accepted spelling for a timezone, optionally scoped
// to a territory for disambiguating a name shared by more than one zone.
type TimezoneName struct {
	Name      string `yaml:"name"`
	Territory string `yaml:"territory,omitempty"`
}

// ExchangeRates is a parsed base-currency rate snapshot, matching a
// `{date, <base_lowercase>: {<code_lowercase>: rate, …}}` wire shape.
// Base and the keys of Rates are uppercase/lowercase respectively,
// matching currency.Rates' own convention.
type ExchangeRates struct {
	Date  string
	Base  string
	Rates map[string]decimal.Decimal
}
