// Package config loads paper's settings from an embedded TOML default
// plus an optional user override file: embedded defaults.toml merged
// with an XDG-standard user file via spf13/viper.
package config

// Config is the root configuration structure.
type Config struct {
	Calculator CalculatorConfig `mapstructure:"calculator"`
	Formatter  FormatterConfig  `mapstructure:"formatter"`
	TUI        TUIConfig        `mapstructure:"tui"`
}

// CalculatorConfig holds everything a Calculate() call needs, both for
// evaluation (angle unit, imperial variant, user locale) and for display
// (the rest).
type CalculatorConfig struct {
	DecimalSeparator       string `mapstructure:"decimal_separator"`
	DigitGroupingSeparator string `mapstructure:"digit_grouping_separator"`
	DigitGroupingSize      int    `mapstructure:"digit_grouping_size"`
	Precision              int32  `mapstructure:"precision"`
	UnitDisplayStyle       string `mapstructure:"unit_display_style"`
	AngleUnit              string `mapstructure:"angle_unit"`
	ImperialUnits          string `mapstructure:"imperial_units"`
	DateFormat             string `mapstructure:"date_format"`
	TimeFormat             string `mapstructure:"time_format"`
	DateTimeFormat         string `mapstructure:"date_time_format"`
	UserLocale             string `mapstructure:"user_locale"`
}

// FormatterConfig holds output-formatter settings for cmd/paper.
type FormatterConfig struct {
	Verbose       bool   `mapstructure:"verbose"`
	IncludeErrors bool   `mapstructure:"include_errors"`
	DefaultFormat string `mapstructure:"default_format"`
}

// TUIConfig holds the paper repl's theme settings.
type TUIConfig struct {
	Theme ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig defines the repl's colors as lipgloss color strings (the
// defaults are ANSI 256-color numbers such as "63"), scaled down to
// what a thin readline-style repl needs: there is no multi-pane editor
// here, so no syntax-highlighting/line-number theme to carry.
type ThemeConfig struct {
	Primary string `mapstructure:"primary"` // prompt, headings
	Accent  string `mapstructure:"accent"`  // borders, separators
	Error   string `mapstructure:"error"`   // error text
	Muted   string `mapstructure:"muted"`   // help/hint text
	Output  string `mapstructure:"output"`  // calculation results
}
