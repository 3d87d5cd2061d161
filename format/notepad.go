package format

import (
	"strings"

	"github.com/paperlang/paper/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// RenderValue renders a single evaluated Value as locale-sensitive
// result text. types.Value.String already produces a
// precise, locale-neutral form (used for round-tripping/debugging);
// RenderValue reformats the numeric portion per settings instead of
// asking every Value variant to carry its own locale logic.
func RenderValue(v types.Value, settings Settings) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case *types.Number:
		return renderNumber(val, settings)
	case *types.Currency:
		return renderCurrency(val, settings)
	case *types.ErrorValue:
		return "Error: " + val.Message
	default:
		return v.String()
	}
}

// renderCurrency applies the same locale-sensitive digit grouping and
// decimal separator as renderNumber, always with exactly 2 decimal places
// rather than settings.Precision. The currency's own minor-unit count
// (0 for JPY, for example) is not consulted.
func renderCurrency(c *types.Currency, settings Settings) string {
	amountSettings := settings
	amountSettings.Precision = 2
	magnitude := formatMagnitude(c.Amount, amountSettings, true)
	code := c.Code
	if settings.UnitDisplayStyle == "long" && c.Symbol != "" {
		code = c.Symbol
	}
	return magnitude + " " + code
}

func renderNumber(n *types.Number, settings Settings) string {
	magnitude := formatMagnitude(n.Magnitude, settings, false)
	if n.IsPercent {
		return magnitude + "%"
	}
	if n.Derived.IsDimensionless() {
		return magnitude
	}

	unitText := n.Derived.String()
	if settings.UnitDisplayStyle == "long" {
		if single, ok := n.Derived.AsUnit(); ok && len(single.Names) > 0 {
			unitText = single.Names[len(single.Names)-1]
		}
	}
	return magnitude + " " + unitText
}

func formatMagnitude(d decimal.Decimal, settings Settings, fixed bool) string {
	rounded := d.Round(settings.Precision)
	text := rounded.String()
	if fixed {
		text = d.StringFixed(settings.Precision)
	}

	neg := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")

	intPart, fracPart, hasFrac := strings.Cut(text, ".")
	grouped := groupDigits(intPart, settings.DigitGroupingSize, settings.DigitGroupingSeparator)

	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	out.WriteString(grouped)
	if hasFrac && fracPart != "" {
		out.WriteString(settings.DecimalSeparator)
		out.WriteString(fracPart)
	}
	return out.String()
}

func groupDigits(intPart string, size int, sep string) string {
	if size <= 0 || sep == "" || len(intPart) <= size {
		return intPart
	}
	var groups []string
	for len(intPart) > size {
		groups = append([]string{intPart[len(intPart)-size:]}, groups...)
		intPart = intPart[:len(intPart)-size]
	}
	groups = append([]string{intPart}, groups...)
	return strings.Join(groups, sep)
}

// ValidateLocale parses locale as a BCP-47 tag, reporting whether it's
// well-formed. config uses this to reject a malformed userLocale setting
// at load time instead of silently misbehaving during timezone/number
// formatting later.
func ValidateLocale(locale string) (language.Tag, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish, false
	}
	return tag, true
}
