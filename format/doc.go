// Package format renders evaluated values and whole documents for
// output. RenderValue implements locale-sensitive "result: string"
// rendering for a single line; the Formatter registry renders a whole
// Calculate() run as text, JSON, HTML, or Markdown.
package format
