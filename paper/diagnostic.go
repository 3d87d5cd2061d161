package paper

import "github.com/paperlang/paper/ast"

// Severity indicates how serious a Diagnostic is, mirrored from the
// teacher's result.go Severity enum.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityHint:
		return "HINT"
	default:
		return "UNKNOWN"
	}
}

// Diagnostic is one issue surfaced while calculating a document: a lexer
// or parser failure, or a runtime *types.ErrorValue converted for
// display. Span is nil for diagnostics that predate AST construction
// (lexer errors have no parsed Range to attach).
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Span     *ast.Range
}

// ErrorBuckets groups a Calculate() run's diagnostics by stage: lexer,
// parser, and runtime errors are kept separate.
type ErrorBuckets struct {
	Lexer   []Diagnostic
	Parser  []Diagnostic
	Runtime []Diagnostic
}

// Empty reports whether no diagnostics were recorded in any bucket.
func (b ErrorBuckets) Empty() bool {
	return len(b.Lexer) == 0 && len(b.Parser) == 0 && len(b.Runtime) == 0
}
