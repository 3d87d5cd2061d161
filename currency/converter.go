// Package currency implements pivot-based currency conversion and
// minor-unit display rounding.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Rates is a base-currency exchange-rate snapshot, e.g. {Base: "USD",
// Table: {"eur": 0.85, "gbp": 0.73}}. Codes in Table are lowercase.
type Rates struct {
	Base  string
	Table map[string]decimal.Decimal
}

// Error reports a currency conversion failure.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Convert converts amount from currency `from` to currency `to` using a
// base-currency pivot rule: identity if equal, direct multiply/divide
// when one side is the base, otherwise via the base.
func Convert(rates *Rates, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return amount, nil
	}
	if rates == nil {
		return decimal.Zero, &Error{Message: "no exchange rates installed"}
	}
	base := strings.ToUpper(rates.Base)

	rate := func(code string) (decimal.Decimal, bool) {
		r, ok := rates.Table[strings.ToLower(code)]
		return r, ok
	}

	if from == base {
		r, ok := rate(to)
		if !ok {
			return decimal.Zero, &Error{Message: fmt.Sprintf("no rate for %s", to)}
		}
		return amount.Mul(r), nil
	}
	if to == base {
		r, ok := rate(from)
		if !ok {
			return decimal.Zero, &Error{Message: fmt.Sprintf("no rate for %s", from)}
		}
		if r.IsZero() {
			return decimal.Zero, &Error{Message: fmt.Sprintf("zero rate for %s", from)}
		}
		return amount.Div(r), nil
	}

	rFrom, ok := rate(from)
	if !ok || rFrom.IsZero() {
		return decimal.Zero, &Error{Message: fmt.Sprintf("no rate for %s", from)}
	}
	rTo, ok := rate(to)
	if !ok {
		return decimal.Zero, &Error{Message: fmt.Sprintf("no rate for %s", to)}
	}
	return decimal.NewFromInt(1).Div(rFrom).Mul(rTo).Mul(amount), nil
}

// RoundForDisplay rounds amount to the currency's minor-unit precision,
// e.g. 2 decimals for USD, 0 for JPY. Arithmetic should always use the
// unrounded value; only display rounds.
func RoundForDisplay(amount decimal.Decimal, minorUnits int) decimal.Decimal {
	return amount.Round(int32(minorUnits))
}
