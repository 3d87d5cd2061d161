package format

import (
	"fmt"
	"io"
)

// TextFormatter formats a RenderDoc as plain text: the primary formatter
// for interactive use (REPL, CLI).
type TextFormatter struct{}

func (f *TextFormatter) Extensions() []string { return []string{".txt"} }

func (f *TextFormatter) Format(w io.Writer, doc *RenderDoc, opts Options) error {
	for i, line := range doc.Lines {
		if opts.Verbose && line.Source != "" {
			fmt.Fprintln(w, line.Source)
		}
		switch {
		case line.Err != "" && opts.IncludeErrors:
			fmt.Fprintf(w, "Error: %s\n", line.Err)
		case line.Result != "":
			fmt.Fprintln(w, line.Result)
		case line.Kind == "heading" || line.Kind == "text":
			fmt.Fprintln(w, line.Source)
		}
		if i < len(doc.Lines)-1 && opts.Verbose {
			fmt.Fprintln(w)
		}
	}
	return nil
}
