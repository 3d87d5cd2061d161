package format

// RenderDoc is the formatter-facing view of a Calculate() run: one
// RenderLine per source line, already carrying its rendered result text
// (via RenderValue) so whole-document formatters never need to know
// about types.Value or the evaluator at all.
type RenderDoc struct {
	Lines []RenderLine
}

// RenderLine is one line of a RenderDoc.
type RenderLine struct {
	Kind         string // "heading", "text", "expression", "definition", "empty", "plaintext"
	HeadingLevel int
	Source       string
	Result       string
	Err          string
}
