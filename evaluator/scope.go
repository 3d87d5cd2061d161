package evaluator

import (
	"strings"

	"github.com/paperlang/paper/types"
	"github.com/shopspring/decimal"
)

// constants holds the reserved mathematical names that resolve to a value
// without ever being assignable.
var constants = map[string]string{
	"pi":           "3.14159265358979323846",
	"e":            "2.71828182845904523536",
	"phi":          "1.61803398874989484820",
	"golden_ratio": "1.61803398874989484820",
}

// booleanKeywords maps the recognized boolean spellings to their value:
// the lexer's BOOLEAN spellings plus "on"/"off", which the lexer leaves as
// plain IDENTIFIER tokens, so the evaluator can resolve such an Identifier
// (e.g. a bare "on") rather than only a BooleanLiteral.
var booleanKeywords = map[string]bool{
	"true": true, "yes": true, "t": true, "y": true, "on": true,
	"false": false, "no": false, "f": false, "n": false, "off": false,
}

// IsConstantName reports whether name is a reserved constant, used by the
// classifier (via data.Loader) to keep constant names as IDENTIFIER tokens
// instead of misclassifying them as units.
func IsConstantName(name string) bool {
	_, ok := constants[strings.ToLower(name)]
	return ok
}

// Scope holds the variable bindings accumulated while evaluating a
// document. Constants are not stored here; they resolve through Get
// without ever appearing in the map, which is what makes them
// unassignable.
type Scope struct {
	vars map[string]types.Value
}

// NewScope creates an empty Scope.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]types.Value)}
}

// Set binds name to value. Returns an error if name names a constant.
func (s *Scope) Set(name string, value types.Value) error {
	if IsConstantName(name) {
		return &EvaluationError{Message: "cannot assign to constant '" + name + "'"}
	}
	s.vars[name] = value
	return nil
}

// Get resolves name: first a user variable, then a constant, then a
// boolean keyword. Returns (nil, false) if name is unbound.
func (s *Scope) Get(name string) (types.Value, bool) {
	if v, ok := s.vars[name]; ok {
		return v, true
	}
	lower := strings.ToLower(name)
	if lit, ok := constants[lower]; ok {
		return types.NewPlainNumber(decimal.RequireFromString(lit)), true
	}
	if b, ok := booleanKeywords[lower]; ok {
		return &types.Boolean{B: b}, true
	}
	return nil, false
}

// Has reports whether name is currently resolvable (variable, constant,
// or boolean keyword).
func (s *Scope) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}
