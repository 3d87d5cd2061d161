package evaluator

import (
	"fmt"

	"github.com/paperlang/paper/ast"
)

// EvaluationError is a Go error wrapping a RuntimeError's message and
// source range, returned by evalNode internals before they are turned
// into a *types.ErrorValue at the line boundary.
type EvaluationError struct {
	Kind    string
	Message string
	Range   *ast.Range
}

func (e *EvaluationError) Error() string {
	if e.Range != nil {
		return fmt.Sprintf("%s at %s", e.Message, e.Range.Start)
	}
	return e.Message
}

func errf(kind string, r *ast.Range, format string, args ...any) *EvaluationError {
	return &EvaluationError{Kind: kind, Message: fmt.Sprintf(format, args...), Range: r}
}
