package data

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ParseExchangeRates decodes a `{date, <base>: {<code>: rate}}` document.
// The base currency is whichever top-level key isn't "date":
// an exchange-rate snapshot is generated per base, so exactly one such key
// is expected.
func ParseExchangeRates(raw []byte) (ExchangeRates, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return ExchangeRates{}, fmt.Errorf("data: parsing exchange rates: %w", err)
	}
	date, _ := doc["date"].(string)
	for key, val := range doc {
		if key == "date" {
			continue
		}
		table, ok := val.(map[string]interface{})
		if !ok {
			continue
		}
		rates := make(map[string]decimal.Decimal, len(table))
		for code, v := range table {
			amount, err := toDecimal(v)
			if err != nil {
				return ExchangeRates{}, fmt.Errorf("data: exchange rate %s.%s: %w", key, code, err)
			}
			rates[strings.ToLower(code)] = amount
		}
		return ExchangeRates{Date: date, Base: strings.ToUpper(key), Rates: rates}, nil
	}
	return ExchangeRates{}, fmt.Errorf("data: exchange rate document has no base-currency table")
}

func toDecimal(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case string:
		return decimal.NewFromString(n)
	default:
		return decimal.Zero, fmt.Errorf("unsupported rate value %#v", v)
	}
}
