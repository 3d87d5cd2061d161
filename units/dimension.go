// Package units implements the dimension-tracked unit algebra: dimensions,
// units with linear/affine/variant conversions, derived-unit reduction, and
// the longest-match unit-name trie.
package units

// Dimension is an equivalence class of units over which addition is
// defined (length, mass, time, currency, ...). Each dimension has exactly
// one base unit that conversions are routed through.
type Dimension struct {
	ID         string
	Name       string
	BaseUnitID string
}
