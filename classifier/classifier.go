// Package classifier resolves the context-sensitive token classes the
// lexer leaves ambiguous: keyword vs. unit vs. identifier priority,
// am/pm vs. attometer/picometer/petameter, and month/weekday words.
//
// It runs as a second pass over the full token slice (rather than inline in
// the lexer) because several of its rules need to look at the previous
// token, which is easiest to express as a pass with full lookback instead of
// lexer-internal state threading.
package classifier

import (
	"regexp"
	"strings"

	"github.com/paperlang/paper/lexer"
)

// Resolver answers the dataset lookups the classifier needs. data.Loader
// implements this; callers may supply a smaller stub in tests.
type Resolver interface {
	IsConstantName(name string) bool
	IsExactUnitName(name string) bool
	IsCaseInsensitiveUnitName(name string) bool
	IsMonthOrWeekday(name string) bool
	SpacedCurrencySymbol(name string) (code string, ok bool)
	IsCurrencyCode(name string) bool
	IsCurrencyName(name string) bool
	IsTimezoneName(name string) bool
}

var integerHour12 = regexp.MustCompile(`^(0?[1-9]|1[0-2])$`)

// Classify rewrites tok.Kind in place for IDENTIFIER tokens (and the
// am/pm special case) according to a fixed priority list, given the full
// token slice for lookback/lookahead.
func Classify(tokens []lexer.Token, r Resolver) []lexer.Token {
	out := make([]lexer.Token, len(tokens))
	copy(out, tokens)

	for i := range out {
		tok := &out[i]
		if tok.Kind != lexer.IDENTIFIER {
			continue
		}
		lower := strings.ToLower(tok.Lexeme)

		// Rule 2: am/pm disambiguation.
		if lower == "am" || lower == "pm" {
			if classifyAmPm(out, i) {
				tok.Kind = lexer.DATETIME
			} else {
				tok.Kind = lexer.UNIT
			}
			continue
		}

		// Rule 3: month/day-of-week word.
		if r != nil && r.IsMonthOrWeekday(tok.Lexeme) {
			tok.Kind = lexer.DATETIME
			continue
		}

		// Rule 4: named mathematical constant.
		if r != nil && r.IsConstantName(tok.Lexeme) {
			continue // stays IDENTIFIER; evaluator resolves the value
		}

		if r == nil {
			continue
		}

		// Rule 5/6: unit name, exact then case-insensitive.
		if r.IsExactUnitName(tok.Lexeme) || r.IsCaseInsensitiveUnitName(tok.Lexeme) {
			tok.Kind = lexer.UNIT
			continue
		}

		// Rule 7: identifier containing a superscript whose prefix is a unit.
		if base, ok := splitSuperscriptSuffix(tok.Lexeme); ok {
			if r.IsExactUnitName(base) || r.IsCaseInsensitiveUnitName(base) {
				tok.Kind = lexer.UNIT
				continue
			}
		}

		// Rule 8: spaced currency symbol (e.g. "USD", "Kč").
		if code, ok := r.SpacedCurrencySymbol(tok.Lexeme); ok {
			tok.Lexeme = code
			tok.Kind = lexer.UNIT
			continue
		}

		// Rule 9/10: currency code or currency name.
		if r.IsCurrencyCode(tok.Lexeme) || r.IsCurrencyName(tok.Lexeme) {
			tok.Kind = lexer.UNIT
			continue
		}

		// Rule 11: timezone name stays an identifier (the parser attaches
		// it as a conversion target by name lookup, not token kind).
		if r.IsTimezoneName(tok.Lexeme) {
			continue
		}

		// Rule 12: else, plain identifier.
	}

	return out
}

// classifyAmPm: am/pm binds to the preceding
// token as a time marker only when that token is an integer 1-12 NUMBER or
// a DATETIME time-literal; otherwise it is the length-unit "am"/"pm".
func classifyAmPm(tokens []lexer.Token, idx int) bool {
	if idx == 0 {
		return false
	}
	prev := tokens[idx-1]
	switch prev.Kind {
	case lexer.NUMBER:
		return integerHour12.MatchString(prev.Lexeme)
	case lexer.DATETIME:
		return looksLikeTimeLiteral(prev.Lexeme)
	}
	return false
}

func looksLikeTimeLiteral(lexeme string) bool {
	return strings.Contains(lexeme, ":")
}

// splitSuperscriptSuffix splits a trailing run of superscript characters
// from an identifier, e.g. "m²" -> ("m", true).
func splitSuperscriptSuffix(s string) (string, bool) {
	runes := []rune(s)
	i := len(runes)
	for i > 0 && isSuperscript(runes[i-1]) {
		i--
	}
	if i == len(runes) || i == 0 {
		return "", false
	}
	return string(runes[:i]), true
}

func isSuperscript(r rune) bool {
	switch r {
	case '⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹', '⁻':
		return true
	}
	return false
}
