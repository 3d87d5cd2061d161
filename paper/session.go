package paper

import (
	"github.com/paperlang/paper/data"
	"github.com/paperlang/paper/evaluator"
	"github.com/paperlang/paper/types"
)

// Session wraps a Calculator with a Scope that persists across Eval
// calls, for live-editor use: variables defined on one line stay bound
// for the next call.
type Session struct {
	calc  *Calculator
	scope *evaluator.Scope
}

// NewSession creates a stateful Session over loader and settings.
func NewSession(loader *data.Loader, settings Settings) *Session {
	return &Session{calc: NewCalculator(loader, settings), scope: evaluator.NewScope()}
}

// Eval evaluates text against this session's persistent scope. Variables
// assigned here are visible to subsequent Eval calls.
func (s *Session) Eval(text string) Output {
	_, out := s.calc.evalDocument(text, s.scope)
	return out
}

// LoadExchangeRates installs a currency-conversion snapshot for this
// session's Calculator.
func (s *Session) LoadExchangeRates(rates data.ExchangeRates) error {
	return s.calc.LoadExchangeRates(rates)
}

// Reset clears every variable bound in this session.
func (s *Session) Reset() {
	s.scope = evaluator.NewScope()
}

// GetVariable retrieves a bound variable (or a constant/boolean keyword,
// matching Scope.Get's resolution order).
func (s *Session) GetVariable(name string) (types.Value, bool) {
	return s.scope.Get(name)
}
