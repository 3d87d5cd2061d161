package cmd

import (
	"fmt"

	"github.com/paperlang/paper/config"
	"github.com/paperlang/paper/data"
	"github.com/paperlang/paper/format"
	"github.com/paperlang/paper/paper"
)

// buildCalculator loads the embedded/user config and datasets and wires
// them into a ready-to-use Calculator, the way cmd/calcmark's subcommands
// all go through config.Load()/Get() before doing anything else.
func buildCalculator() (*paper.Calculator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	loader, err := data.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}

	return paper.NewCalculator(loader, settingsFromConfig(cfg)), nil
}

// buildSession is buildCalculator's stateful counterpart, used by the
// repl so variables persist across lines.
func buildSession() (*paper.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	loader, err := data.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}

	return paper.NewSession(loader, settingsFromConfig(cfg)), nil
}

func settingsFromConfig(cfg *config.Config) paper.Settings {
	return paper.Settings{
		Settings: format.Settings{
			DecimalSeparator:       cfg.Calculator.DecimalSeparator,
			DigitGroupingSeparator: cfg.Calculator.DigitGroupingSeparator,
			DigitGroupingSize:      cfg.Calculator.DigitGroupingSize,
			Precision:              cfg.Calculator.Precision,
			UnitDisplayStyle:       cfg.Calculator.UnitDisplayStyle,
			DateFormat:             cfg.Calculator.DateFormat,
			TimeFormat:             cfg.Calculator.TimeFormat,
			DateTimeFormat:         cfg.Calculator.DateTimeFormat,
			UserLocale:             cfg.Calculator.UserLocale,
		},
		AngleUnit:     cfg.Calculator.AngleUnit,
		ImperialUnits: cfg.Calculator.ImperialUnits,
	}
}
