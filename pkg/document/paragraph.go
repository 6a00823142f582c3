package document

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Paragraph is one block of rendered help text plus its layout metadata.
// Indents are expressed in levels; the renderer multiplies them by the
// indent width of the active style.
type Paragraph struct {
	InitialIndent    int
	SubsequentIndent int
	LinesBefore      int
	LinesAfter       int

	text strings.Builder
}

// ParagraphData is the serialisable view of a Paragraph.
type ParagraphData struct {
	Text             string `yaml:"text" toml:"text" json:"text"`
	InitialIndent    int    `yaml:"initial_indent" toml:"initial_indent" json:"initial_indent"`
	SubsequentIndent int    `yaml:"subsequent_indent" toml:"subsequent_indent" json:"subsequent_indent"`
	LinesBefore      int    `yaml:"lines_before" toml:"lines_before" json:"lines_before"`
	LinesAfter       int    `yaml:"lines_after" toml:"lines_after" json:"lines_after"`
}

// Write appends text to the paragraph
func (p *Paragraph) Write(text string) {
	p.text.WriteString(text)
}

// String returns the raw accumulated text
func (p *Paragraph) String() string {
	return p.text.String()
}

// Len returns the number of bytes written so far
func (p *Paragraph) Len() int {
	return p.text.Len()
}

// Data returns a copy of the paragraph suitable for marshalling
func (p *Paragraph) Data() ParagraphData {
	return ParagraphData{
		Text:             p.String(),
		InitialIndent:    p.InitialIndent,
		SubsequentIndent: p.SubsequentIndent,
		LinesBefore:      p.LinesBefore,
		LinesAfter:       p.LinesAfter,
	}
}

// Render lays the paragraph out for a terminal of the given width.
// The first line is prefixed by InitialIndent levels and continuation
// lines by SubsequentIndent levels. A width <= 0 disables wrapping.
func (p *Paragraph) Render(width, indentWidth int) string {
	text := strings.TrimRight(p.String(), " \t\n")
	if text == "" {
		return ""
	}

	first := strings.Repeat(" ", max(p.InitialIndent, 0)*indentWidth)
	rest := strings.Repeat(" ", max(p.SubsequentIndent, 0)*indentWidth)

	if width > 0 {
		limit := width - max(len(first), len(rest))
		if limit < 1 {
			limit = 1
		}
		text = wordwrap.String(text, limit)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(p.LinesBefore, 0)))
	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			b.WriteString(first)
		} else {
			b.WriteString(rest)
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("\n", max(p.LinesAfter, 0)))
	return b.String()
}
