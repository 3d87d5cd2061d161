// Package data loads the embedded unit, currency, and timezone datasets and
// exposes the lookup surfaces the rest of the engine depends on: a built
// units.Registry, lexer.SymbolTables for adjacent-currency-symbol lexing,
// and the classifier.Resolver/evaluator.TimezoneResolver implementations
// the lexer's classification pass and the evaluator's timezone conversions
// call into. Everything here is read once at NewLoader and never mutated
// except the configured user locale, so a *Loader is safe to share across
// every Calculator built from it.
package data
