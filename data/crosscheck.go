package data

import (
	"fmt"
	"math"

	"github.com/martinlindhe/unit"
)

// crossCheckIssues accumulates mismatches found between the seed unit
// conversion factors baked into units.yaml and the independently sourced
// constants in martinlindhe/unit. A mismatch never aborts loading: it is
// a data-quality signal surfaced through CrossCheckIssues, not a fatal
// error, since the yaml dataset (not the library) is authoritative for
// which units this engine actually supports.
var crossCheckIssues []string

// CrossCheckIssues reports every seed-factor/library mismatch found at
// package init. An empty slice means every cross-checked factor agreed
// with martinlindhe/unit within tolerance.
func CrossCheckIssues() []string {
	return crossCheckIssues
}

const crossCheckTolerance = 1e-9

func init() {
	check("mile in meters", 1609.344, float64(unit.Mile/unit.Meter))
	check("yard in meters", 0.9144, float64(unit.Yard/unit.Meter))
	check("foot in meters", 0.3048, float64(unit.Foot/unit.Meter))
	check("inch in meters", 0.0254, float64(unit.Inch/unit.Meter))
	check("pound in kilograms", 0.45359237, float64(unit.Pound/unit.Kilogram))
	check("ounce in kilograms", 0.028349523125, float64(unit.Ounce/unit.Kilogram))
}

func check(label string, seed, reference float64) {
	if math.Abs(seed-reference) > crossCheckTolerance {
		crossCheckIssues = append(crossCheckIssues, fmt.Sprintf(
			"%s: seed factor %v disagrees with martinlindhe/unit factor %v", label, seed, reference))
	}
}
