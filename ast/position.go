// Package ast defines the syntax tree produced by the parser.
package ast

import "fmt"

// Position is a single point in the source text.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range spans from Start to End (exclusive) in the source text.
type Range struct {
	Start Position
	End   Position
}

func (r *Range) String() string {
	if r == nil {
		return "?"
	}
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
