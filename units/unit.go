package units

import "github.com/shopspring/decimal"

// ConversionKind tags which of the Conversion variant's fields apply.
type ConversionKind int

const (
	// Linear: value_in_base = value * Factor.
	Linear ConversionKind = iota
	// Affine: value_in_base = value * Factor + Offset (temperature).
	Affine
	// Variant: conversion depends on the active imperial-unit setting
	// (US vs. UK gallon, etc); Variants holds one Conversion per variant
	// name ("us", "uk").
	Variant
)

// Conversion is the tagged variant describing how a Unit's magnitude maps
// to its dimension's base unit.
type Conversion struct {
	Kind     ConversionKind
	Factor   decimal.Decimal
	Offset   decimal.Decimal
	Variants map[string]Conversion
}

// LinearConversion builds a Linear conversion with the given factor.
func LinearConversion(factor decimal.Decimal) Conversion {
	return Conversion{Kind: Linear, Factor: factor}
}

// AffineConversion builds an Affine conversion.
func AffineConversion(factor, offset decimal.Decimal) Conversion {
	return Conversion{Kind: Affine, Factor: factor, Offset: offset}
}

// VariantConversion builds a Variant conversion over named rows.
func VariantConversion(variants map[string]Conversion) Conversion {
	return Conversion{Kind: Variant, Variants: variants}
}

// Resolve picks the concrete Linear/Affine conversion to use, selecting the
// named row when Kind is Variant.
func (c Conversion) Resolve(variant string) Conversion {
	if c.Kind != Variant {
		return c
	}
	if row, ok := c.Variants[variant]; ok {
		return row
	}
	// Fall back to first inserted-order-independent entry; callers should
	// always supply a known variant, this only guards against misconfigured
	// settings.
	for _, row := range c.Variants {
		return row
	}
	return Conversion{Kind: Linear, Factor: decimal.NewFromInt(1)}
}

// Unit is one named, convertible quantity within a Dimension.
type Unit struct {
	ID          string
	Names       []string // all accepted spellings, Names[0] is canonical
	DimensionID string
	Conversion  Conversion
}

// Symbol returns the shortest accepted name, used as the default display
// symbol.
func (u *Unit) Symbol() string {
	symbol := u.Names[0]
	for _, n := range u.Names {
		if len(n) < len(symbol) {
			symbol = n
		}
	}
	return symbol
}

// ToBase converts value (expressed in u) into the base unit of u's
// dimension.
func ToBase(u *Unit, value decimal.Decimal, variant string) decimal.Decimal {
	c := u.Conversion.Resolve(variant)
	if c.Kind == Affine {
		return value.Mul(c.Factor).Add(c.Offset)
	}
	return value.Mul(c.Factor)
}

// FromBase converts a base-unit value into u.
func FromBase(u *Unit, baseValue decimal.Decimal, variant string) decimal.Decimal {
	c := u.Conversion.Resolve(variant)
	if c.Kind == Affine {
		return baseValue.Sub(c.Offset).Div(c.Factor)
	}
	return baseValue.Div(c.Factor)
}

// Convert moves value from unit `from` to unit `to`, routing through the
// shared base unit. Callers must ensure from and to share a dimension.
func Convert(from, to *Unit, value decimal.Decimal, variant string) decimal.Decimal {
	base := ToBase(from, value, variant)
	return FromBase(to, base, variant)
}

// IsAffine reports whether u's conversion (after variant resolution) has a
// non-zero zero point, meaning addition of two such values is undefined.
func IsAffine(u *Unit, variant string) bool {
	return u.Conversion.Resolve(variant).Kind == Affine
}
