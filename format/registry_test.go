package format

import (
	"bytes"
	"io"
	"slices"
	"testing"
)

func TestGetFormatterExplicit(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"text", ".txt"},
		{"json", ".json"},
		{"html", ".html"},
		{"md", ".md"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f := GetFormatter(tt.format, "")
			if !slices.Contains(f.Extensions(), tt.expected) {
				t.Errorf("GetFormatter(%q) extensions = %v, want %q", tt.format, f.Extensions(), tt.expected)
			}
		})
	}
}

func TestGetFormatterByExtension(t *testing.T) {
	tests := []struct {
		filename    string
		expectedExt string
	}{
		{"output.txt", ".txt"},
		{"result.json", ".json"},
		{"page.html", ".html"},
		{"page.htm", ".html"},
		{"doc.md", ".md"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			f := GetFormatter("", tt.filename)
			if !slices.Contains(f.Extensions(), tt.expectedExt) {
				t.Errorf("GetFormatter(\"\", %q) extensions = %v, want %q", tt.filename, f.Extensions(), tt.expectedExt)
			}
		})
	}
}

func TestGetFormatterExplicitOverridesExtension(t *testing.T) {
	f := GetFormatter("json", "output.txt")
	if !slices.Contains(f.Extensions(), ".json") {
		t.Error("explicit format should override filename extension")
	}
}

func TestGetFormatterDefaultsToText(t *testing.T) {
	f := GetFormatter("", "output.xyz")
	if !slices.Contains(f.Extensions(), ".txt") {
		t.Error("unknown extension should default to text formatter")
	}

	f = GetFormatter("unknown", "")
	if !slices.Contains(f.Extensions(), ".txt") {
		t.Error("unknown format name should default to text formatter")
	}
}

type customTestFormatter struct{}

func (f *customTestFormatter) Format(w io.Writer, doc *RenderDoc, opts Options) error {
	_, err := w.Write([]byte("custom"))
	return err
}

func (f *customTestFormatter) Extensions() []string { return []string{".custom"} }

func TestRegisterCustomFormatter(t *testing.T) {
	RegisterFormatter("custom", &customTestFormatter{})

	f := GetFormatter("custom", "")
	if _, ok := f.(*customTestFormatter); !ok {
		t.Error("retrieved formatter is not the registered custom formatter")
	}
}

func TestFormattersDoNotInterfere(t *testing.T) {
	doc := &RenderDoc{Lines: []RenderLine{
		{Kind: "definition", Source: "x = 10", Result: "10"},
	}}

	var buf1, buf2 bytes.Buffer
	if err := GetFormatter("text", "").Format(&buf1, doc, Options{}); err != nil {
		t.Fatalf("text Format: %v", err)
	}
	if err := GetFormatter("json", "").Format(&buf2, doc, Options{}); err != nil {
		t.Fatalf("json Format: %v", err)
	}
	if buf1.String() == "" {
		t.Error("text formatter produced no output")
	}
	if buf2.String() == "" {
		t.Error("json formatter produced no output")
	}
}
