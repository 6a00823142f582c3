// Package document holds the paragraph model that help styles write into.
//
// A Document is an ordered list of paragraphs plus two flags consulted when
// parsed text arrives: KeepData drops text entirely while false (used to
// suppress example blocks) and DoTranslation routes text through the word
// translation table while true (used inside code spans and links).
//
// A Document belongs to a single rendering pass and is not safe for
// concurrent use.
package document

import (
	"strings"
)

// Document accumulates paragraphs for one rendering pass
type Document struct {
	DoTranslation bool
	KeepData      bool

	paragraphs   []*Paragraph
	indent       int
	translations map[string]string
}

// New returns an empty document that keeps data
func New() *Document {
	return &Document{
		KeepData:     true,
		translations: make(map[string]string),
	}
}

// AddParagraph starts a new paragraph at the current indentation level
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{
		InitialIndent:    d.indent,
		SubsequentIndent: d.indent,
	}
	d.paragraphs = append(d.paragraphs, p)
	return p
}

// CurrentParagraph returns the last paragraph, creating one if the
// document is still empty
func (d *Document) CurrentParagraph() *Paragraph {
	if len(d.paragraphs) == 0 {
		return d.AddParagraph()
	}
	return d.paragraphs[len(d.paragraphs)-1]
}

// Paragraphs returns the paragraphs in order
func (d *Document) Paragraphs() []*Paragraph {
	out := make([]*Paragraph, len(d.paragraphs))
	copy(out, d.paragraphs)
	return out
}

// Indent raises the level used for paragraphs added from now on
func (d *Document) Indent() {
	d.indent++
}

// Dedent lowers the indentation level, never below zero
func (d *Document) Dedent() {
	if d.indent > 0 {
		d.indent--
	}
}

// IndentLevel reports the current indentation level
func (d *Document) IndentLevel() int {
	return d.indent
}

// SetTranslation registers a word replacement applied while DoTranslation is set
func (d *Document) SetTranslation(word, replacement string) {
	d.translations[word] = replacement
}

// HandleData writes parsed text into the current paragraph, honouring
// KeepData and DoTranslation
func (d *Document) HandleData(data string) {
	if !d.KeepData || data == "" {
		return
	}
	if d.DoTranslation {
		data = d.translate(data)
	}
	d.CurrentParagraph().Write(data)
}

// Write appends style output to the current paragraph. Like HandleData it
// drops everything while KeepData is false, but never translates.
func (d *Document) Write(s string) {
	if !d.KeepData || s == "" {
		return
	}
	d.CurrentParagraph().Write(s)
}

func (d *Document) translate(data string) string {
	if len(d.translations) == 0 {
		return data
	}
	words := strings.Split(data, " ")
	for i, w := range words {
		if r, ok := d.translations[w]; ok {
			words[i] = r
		}
	}
	return strings.Join(words, " ")
}

// Data returns the serialisable view of every paragraph
func (d *Document) Data() []ParagraphData {
	out := make([]ParagraphData, 0, len(d.paragraphs))
	for _, p := range d.paragraphs {
		out = append(out, p.Data())
	}
	return out
}

// Render lays out every non-empty paragraph. Trailing blank lines are
// collapsed so the output ends with exactly one newline.
func (d *Document) Render(width, indentWidth int) string {
	var b strings.Builder
	for _, p := range d.paragraphs {
		b.WriteString(p.Render(width, indentWidth))
	}
	out := strings.Trim(b.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}
