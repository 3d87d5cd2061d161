package paper

import (
	"github.com/paperlang/paper/format"
	"github.com/paperlang/paper/mathfn"
)

// Settings bundles every user-facing setting: format.Settings covers
// everything display-related, and Settings adds the two evaluation-only
// knobs (angle unit, imperial variant) that never affect rendering, only
// how an expression is computed.
type Settings struct {
	format.Settings
	AngleUnit     string // "radian" or "degree"
	ImperialUnits string // "us" or "uk", selects the gallon/quart variant
}

// DefaultSettings returns the implied defaults: en-US display, radians,
// US customary units.
func DefaultSettings() Settings {
	return Settings{
		Settings:      format.DefaultSettings(),
		AngleUnit:     "radian",
		ImperialUnits: "us",
	}
}

func (s Settings) angleUnit() mathfn.AngleUnit {
	if s.AngleUnit == "degree" {
		return mathfn.Degree
	}
	return mathfn.Radian
}
