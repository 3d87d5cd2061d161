package format

import (
	"fmt"
	"io"
)

// MarkdownFormatter formats a RenderDoc as Markdown: calculation lines
// in fenced code blocks followed by their result, heading/text lines
// passed through as-is.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Extensions() []string { return []string{".md", ".markdown"} }

func (f *MarkdownFormatter) Format(w io.Writer, doc *RenderDoc, opts Options) error {
	for _, line := range doc.Lines {
		switch line.Kind {
		case "heading", "text":
			fmt.Fprintln(w, line.Source)
		case "empty":
			fmt.Fprintln(w)
		default:
			fmt.Fprintf(w, "```\n%s\n```\n", line.Source)
			if line.Err != "" && opts.IncludeErrors {
				fmt.Fprintf(w, "**Error:** %s\n\n", line.Err)
			} else if line.Result != "" {
				fmt.Fprintf(w, "**Result:** %s\n\n", line.Result)
			}
		}
	}
	return nil
}
