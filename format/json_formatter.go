package format

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats a RenderDoc as JSON, for programmatic
// consumption and integration with other tools.
type JSONFormatter struct{}

func (f *JSONFormatter) Extensions() []string { return []string{".json"} }

// jsonLine is the wire shape of one RenderLine, omitting fields that are
// empty for that line's kind.
type jsonLine struct {
	Kind         string `json:"kind"`
	HeadingLevel int    `json:"headingLevel,omitempty"`
	Source       string `json:"source,omitempty"`
	Result       string `json:"result,omitempty"`
	Error        string `json:"error,omitempty"`
}

func (f *JSONFormatter) Format(w io.Writer, doc *RenderDoc, opts Options) error {
	lines := make([]jsonLine, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		jl := jsonLine{
			Kind:         line.Kind,
			HeadingLevel: line.HeadingLevel,
			Source:       line.Source,
			Result:       line.Result,
		}
		if opts.IncludeErrors {
			jl.Error = line.Err
		}
		lines = append(lines, jl)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Lines []jsonLine `json:"lines"`
	}{Lines: lines})
}
