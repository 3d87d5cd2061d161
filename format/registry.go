package format

import (
	"path/filepath"
	"strings"
)

// Global formatter registry.
var formatters = map[string]Formatter{
	"text": &TextFormatter{},
	"json": &JSONFormatter{},
	"html": &HTMLFormatter{},
	"md":   &MarkdownFormatter{},
}

// GetFormatter returns the appropriate formatter based on format name or
// filename extension. An explicit format name takes precedence; failing
// that, the filename extension is used. Falls back to the text
// formatter if neither matches.
func GetFormatter(format, filename string) Formatter {
	if format != "" {
		if f, ok := formatters[format]; ok {
			return f
		}
		return formatters["text"]
	}

	if filename != "" {
		ext := strings.ToLower(filepath.Ext(filename))
		if ext != "" {
			for _, f := range formatters {
				for _, fext := range f.Extensions() {
					if ext == fext {
						return f
					}
				}
			}
		}
	}

	return formatters["text"]
}

// RegisterFormatter adds a custom formatter to the registry, allowing
// third-party formatters to be registered at runtime.
func RegisterFormatter(name string, formatter Formatter) {
	formatters[name] = formatter
}
