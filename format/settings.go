package format

// Settings controls locale-sensitive rendering of a single evaluated
// value: the settings that affect display rather than evaluation.
// paper.Settings embeds this alongside the
// evaluation-only fields (angle unit, imperial variant, user locale is
// shared by both since timezone/locale-tie-break resolution also needs
// it).
type Settings struct {
	DecimalSeparator       string
	DigitGroupingSeparator string
	DigitGroupingSize      int
	Precision              int32
	UnitDisplayStyle       string // "symbol" or "long"
	DateFormat             string
	TimeFormat             string
	DateTimeFormat         string
	UserLocale             string
}

// DefaultSettings returns en-US-shaped defaults used when a setting
// isn't overridden.
func DefaultSettings() Settings {
	return Settings{
		DecimalSeparator:       ".",
		DigitGroupingSeparator: ",",
		DigitGroupingSize:      3,
		Precision:              6,
		UnitDisplayStyle:       "symbol",
		DateFormat:             "2006-01-02",
		TimeFormat:             "15:04",
		DateTimeFormat:         "2006-01-02 15:04",
		UserLocale:             "en-US",
	}
}
