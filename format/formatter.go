package format

import "io"

// Formatter renders a whole RenderDoc for output. All formatters must
// implement this interface, generalized to take a RenderDoc since a
// Calculate() run (not a parsed document) is what carries rendered
// results here.
type Formatter interface {
	// Format writes the formatted document to the writer.
	Format(w io.Writer, doc *RenderDoc, opts Options) error

	// Extensions returns file extensions this formatter handles.
	Extensions() []string
}

// Options controls formatter behavior.
type Options struct {
	Verbose       bool // Show source lines alongside results
	IncludeErrors bool // Include error details
}
