package format

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/gomarkdown/markdown"
)

//go:embed templates/default.html
var defaultHTMLTemplate string

// HTMLFormatter formats a RenderDoc as HTML, using an embedded template.
// Heading/text lines are run through gomarkdown/markdown so inline
// markdown emphasis, links, and lists in comment lines render properly
// instead of showing up as literal source.
type HTMLFormatter struct{}

func (f *HTMLFormatter) Extensions() []string { return []string{".html", ".htm"} }

type htmlLine struct {
	Kind   string
	Source string
	Result string
	Error  string
	HTML   template.HTML
}

func (f *HTMLFormatter) Format(w io.Writer, doc *RenderDoc, opts Options) error {
	tmpl, err := template.New("html").Parse(defaultHTMLTemplate)
	if err != nil {
		return err
	}

	lines := make([]htmlLine, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		hl := htmlLine{Kind: line.Kind, Source: line.Source, Result: line.Result}
		if opts.IncludeErrors {
			hl.Error = line.Err
		}
		if line.Kind == "heading" || line.Kind == "text" {
			rendered := markdown.ToHTML([]byte(line.Source), nil, nil)
			hl.HTML = template.HTML(rendered)
		}
		lines = append(lines, hl)
	}

	return tmpl.Execute(w, struct{ Lines []htmlLine }{Lines: lines})
}
